//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"geresaco/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSlot(t *testing.T, start, end string) reservation.TimeSlot {
	t.Helper()
	s, err := reservation.ParseTimeOfDay(start)
	require.NoError(t, err)
	e, err := reservation.ParseTimeOfDay(end)
	require.NoError(t, err)
	slot, err := reservation.NewTimeSlot(s, e)
	require.NoError(t, err)
	return slot
}

func TestNewReservation(t *testing.T) {
	t.Parallel()

	date, err := reservation.ParseDate("2026-03-15")
	require.NoError(t, err)

	res := reservation.NewReservation(1, 2, date, buildSlot(t, "09:00", "10:00"))

	assert.Equal(t, int64(1), res.UserID())
	assert.Equal(t, int64(2), res.RoomID())
	assert.Equal(t, reservation.StatusPendiente, res.Status())
	assert.False(t, res.IsCancelled())
}

func TestReservationCancel(t *testing.T) {
	t.Parallel()

	date, err := reservation.ParseDate("2026-03-15")
	require.NoError(t, err)

	t.Run("cancel from pendiente", func(t *testing.T) {
		t.Parallel()
		res := reservation.NewReservation(1, 2, date, buildSlot(t, "09:00", "10:00"))
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelada, res.Status())
	})

	t.Run("cancel from confirmada", func(t *testing.T) {
		t.Parallel()
		res := reservation.Reconstruct(5, 1, 2, date, buildSlot(t, "09:00", "10:00"),
			reservation.StatusConfirmada, time.Now(), time.Now())
		require.NoError(t, res.Cancel())
		assert.True(t, res.IsCancelled())
	})

	t.Run("cancel twice is rejected", func(t *testing.T) {
		t.Parallel()
		res := reservation.NewReservation(1, 2, date, buildSlot(t, "09:00", "10:00"))
		require.NoError(t, res.Cancel())
		assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
	})
}

func TestReservationSetStatus(t *testing.T) {
	t.Parallel()

	date, err := reservation.ParseDate("2026-03-15")
	require.NoError(t, err)
	res := reservation.NewReservation(1, 2, date, buildSlot(t, "09:00", "10:00"))

	require.NoError(t, res.SetStatus(reservation.StatusConfirmada))
	assert.Equal(t, reservation.StatusConfirmada, res.Status())

	assert.ErrorIs(t, res.SetStatus(reservation.Status("aprobada")), reservation.ErrInvalidStatus)
	assert.Equal(t, reservation.StatusConfirmada, res.Status())
}

func TestNewStatus(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"pendiente", "confirmada", "cancelada"} {
		status, err := reservation.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	_, err := reservation.NewStatus("archivada")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
