package reservation

import "time"

// Reservation binds one user and one room to a date and a one-hour slot.
// It holds references only; deleting the user or room is guarded elsewhere.
type Reservation struct {
	id        int64
	userID    int64
	roomID    int64
	date      Date
	slot      TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation admits a new booking. The initial status is always pendiente;
// callers cannot choose another initial state.
func NewReservation(userID, roomID int64, date Date, slot TimeSlot) *Reservation {
	return &Reservation{
		userID: userID,
		roomID: roomID,
		date:   date,
		slot:   slot,
		status: StatusPendiente,
	}
}

func Reconstruct(id, userID, roomID int64, date Date, slot TimeSlot, status Status, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		date:      date,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() int64            { return r.id }
func (r *Reservation) UserID() int64        { return r.userID }
func (r *Reservation) RoomID() int64        { return r.roomID }
func (r *Reservation) Date() Date           { return r.date }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelada
}

// Cancel sets the status to cancelada. Cancelling twice is the one transition
// explicitly guarded; every other transition is applied as requested.
func (r *Reservation) Cancel() error {
	if r.status == StatusCancelada {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelada
	return nil
}

func (r *Reservation) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	return nil
}
