//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"geresaco/internal/domain/room"
	"geresaco/internal/pkg/errs"
	"geresaco/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomFixture struct {
	uc           *usecase.RoomUsecase
	rooms        *fakeRoomRepo
	reservations *fakeReservationRepo
}

func newRoomFixture() *roomFixture {
	rooms := newFakeRoomRepo()
	reservations := newFakeReservationRepo()
	return &roomFixture{
		uc:           usecase.NewRoomUsecase(rooms, reservations),
		rooms:        rooms,
		reservations: reservations,
	}
}

func validRoomInput() usecase.CreateRoomInput {
	return usecase.CreateRoomInput{
		Nombre:    "Sala Norte",
		Sede:      "bogota",
		Capacidad: 10,
		Recursos:  "pizarra,proyector",
	}
}

func TestCreateRoom(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("valid room", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		rm, err := f.uc.Create(ctx, validRoomInput())
		require.NoError(t, err)
		assert.Equal(t, "Sala Norte", rm.Nombre)
		assert.Equal(t, "bogota", rm.Sede)
		assert.Equal(t, 10, rm.Capacidad)
	})

	t.Run("resource list is normalized", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		in := validRoomInput()
		in.Recursos = "proyector, pizarra, proyector"
		rm, err := f.uc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "pizarra,proyector", rm.Recursos)
	})

	t.Run("unknown campus", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		in := validRoomInput()
		in.Sede = "medellin"
		_, err := f.uc.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrInvalidField)
	})

	t.Run("bad resource list", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		in := validRoomInput()
		in.Recursos = "pizarra,jacuzzi"
		_, err := f.uc.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrInvalidResourceList)
	})

	t.Run("zero capacity", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		in := validRoomInput()
		in.Capacidad = 0
		_, err := f.uc.Create(ctx, in)
		assert.ErrorIs(t, err, errs.ErrInvalidField)
	})
}

func TestListRooms(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	seed := func(t *testing.T, f *roomFixture, nombre, sede, recursos string) {
		t.Helper()
		in := validRoomInput()
		in.Nombre = nombre
		in.Sede = sede
		in.Recursos = recursos
		_, err := f.uc.Create(ctx, in)
		require.NoError(t, err)
	}

	t.Run("filter by sede", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()
		seed(t, f, "Norte", "bogota", "pizarra")
		seed(t, f, "Sur", "cucuta", "pizarra")

		out, err := f.uc.List(ctx, usecase.ListRoomsInput{Sede: strPtr("cucuta")})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Sur", out[0].Nombre)
	})

	t.Run("filter by recurso", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()
		seed(t, f, "Norte", "bogota", "pizarra")
		seed(t, f, "Sur", "bogota", "televisor,proyector")

		out, err := f.uc.List(ctx, usecase.ListRoomsInput{Recurso: strPtr("televisor")})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Sur", out[0].Nombre)
	})

	t.Run("invalid sede filter", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		_, err := f.uc.List(ctx, usecase.ListRoomsInput{Sede: strPtr("marte")})
		assert.ErrorIs(t, err, errs.ErrInvalidField)
	})

	t.Run("invalid recurso filter", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		_, err := f.uc.List(ctx, usecase.ListRoomsInput{Recurso: strPtr("jacuzzi")})
		assert.ErrorIs(t, err, errs.ErrInvalidField)
	})

	t.Run("filters reach the repository", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		_, err := f.uc.List(ctx, usecase.ListRoomsInput{Sede: strPtr("cajasan"), Recurso: strPtr("pizarra")})
		require.NoError(t, err)
		require.NotNil(t, f.rooms.lastFilter.Campus)
		assert.Equal(t, room.CampusCajasan, *f.rooms.lastFilter.Campus)
		require.NotNil(t, f.rooms.lastFilter.Resource)
		assert.Equal(t, room.TagPizarra, *f.rooms.lastFilter.Resource)
	})
}

func TestUpdateRoom(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	intPtr := func(v int) *int { return &v }
	strPtr := func(s string) *string { return &s }

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		created, err := f.uc.Create(ctx, validRoomInput())
		require.NoError(t, err)

		updated, err := f.uc.Update(ctx, created.ID, usecase.UpdateRoomInput{Capacidad: intPtr(25)})
		require.NoError(t, err)
		assert.Equal(t, 25, updated.Capacidad)
		assert.Equal(t, created.Nombre, updated.Nombre)
		assert.Equal(t, created.Sede, updated.Sede)
		assert.Equal(t, created.Recursos, updated.Recursos)
	})

	t.Run("merged values are re-validated", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		created, err := f.uc.Create(ctx, validRoomInput())
		require.NoError(t, err)

		_, err = f.uc.Update(ctx, created.ID, usecase.UpdateRoomInput{Capacidad: intPtr(-1)})
		assert.ErrorIs(t, err, errs.ErrInvalidField)

		_, err = f.uc.Update(ctx, created.ID, usecase.UpdateRoomInput{Recursos: strPtr("")})
		assert.ErrorIs(t, err, errs.ErrInvalidResourceList)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		_, err := f.uc.Update(ctx, 999, usecase.UpdateRoomInput{Capacidad: intPtr(5)})
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})
}

func TestDeleteRoom(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("delete without reservations", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		created, err := f.uc.Create(ctx, validRoomInput())
		require.NoError(t, err)

		require.NoError(t, f.uc.Delete(ctx, created.ID))
		_, err = f.uc.Get(ctx, created.ID)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})

	t.Run("delete is blocked while reservations exist", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()

		created, err := f.uc.Create(ctx, validRoomInput())
		require.NoError(t, err)

		seedReservation(t, f.reservations, 1, created.ID)

		assert.ErrorIs(t, f.uc.Delete(ctx, created.ID), errs.ErrRoomHasReservations)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newRoomFixture()
		assert.ErrorIs(t, f.uc.Delete(ctx, 999), errs.ErrRoomNotFound)
	})
}

func TestGetRoomWithReservations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newRoomFixture()

	created, err := f.uc.Create(ctx, validRoomInput())
	require.NoError(t, err)

	seedReservation(t, f.reservations, 7, created.ID)
	second := seedReservation(t, f.reservations, 8, created.ID)

	t.Run("embeds every reservation by default", func(t *testing.T) {
		rm, err := f.uc.GetWithReservations(ctx, created.ID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, created.Nombre, rm.Nombre)
		assert.Len(t, rm.Reservas, 2)
	})

	t.Run("honors offset and limit", func(t *testing.T) {
		rm, err := f.uc.GetWithReservations(ctx, created.ID, 1, 1)
		require.NoError(t, err)
		require.Len(t, rm.Reservas, 1)
		assert.Equal(t, second.ID(), rm.Reservas[0].ID)
	})
}
