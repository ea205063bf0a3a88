package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTime      = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEndNotAfterStart = errors.New("end time must be after start time")
	ErrNotExactHour     = errors.New("reservation must last exactly one hour")
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
)

const (
	timeLayout     = "15:04:05"
	timeLayoutHM   = "15:04"
	dateLayout     = "2006-01-02"
	slotDuration   = time.Hour
	secondsPerHour = 3600
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	seconds int // seconds since midnight
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, err = time.Parse(timeLayoutHM, s)
		if err != nil {
			return TimeOfDay{}, ErrInvalidTime
		}
	}
	return TimeOfDay{seconds: t.Hour()*secondsPerHour + t.Minute()*60 + t.Second()}, nil
}

func TimeOfDayFromSeconds(seconds int) (TimeOfDay, error) {
	if seconds < 0 || seconds >= 24*secondsPerHour {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{seconds: seconds}, nil
}

func (t TimeOfDay) Seconds() int {
	return t.seconds
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.seconds/secondsPerHour, (t.seconds/60)%60, t.seconds%60)
}

// At anchors the time on the given date.
func (t TimeOfDay) At(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Add(time.Duration(t.seconds) * time.Second)
}

// referenceDate anchors both slot times on the same calendar day so the
// duration check cannot be skewed by date arithmetic.
var referenceDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// TimeSlot is a contiguous interval within one day. Admission requires the
// end to be strictly after the start and the duration to be exactly one hour.
type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	startAt := start.At(referenceDate)
	endAt := end.At(referenceDate)

	if !endAt.After(startAt) {
		return TimeSlot{}, ErrEndNotAfterStart
	}
	if endAt.Sub(startAt) != slotDuration {
		return TimeSlot{}, ErrNotExactHour
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot rehydrates a slot from storage without re-validating.
// Stored rows may predate the current invariants; the admission rules run
// again whenever the slot is mutated.
func ReconstructTimeSlot(start, end TimeOfDay) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() TimeOfDay {
	return ts.start
}

func (ts TimeSlot) End() TimeOfDay {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.At(referenceDate).Sub(ts.start.At(referenceDate))
}

// Date is a civil calendar date.
type Date struct {
	value time.Time // UTC midnight
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: t}, nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{value: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time {
	return d.value
}

func (d Date) String() string {
	return d.value.Format(dateLayout)
}

func (d Date) Equal(other Date) bool {
	return d.value.Equal(other.value)
}
