//go:build unit

package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"geresaco/internal/domain/reservation"
	"geresaco/internal/domain/room"
	"geresaco/internal/domain/user"
	"geresaco/internal/infra"
	"geresaco/internal/infra/repository"
)

// In-memory repository fakes. They reproduce the same error kinds the
// postgres implementations classify, so the usecases under test see the
// store exactly as they would in production.

type fakeUserRepo struct {
	seq   int64
	users map[int64]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*user.User)}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
}

func (f *fakeUserRepo) List(_ context.Context, offset, limit int32) ([]*user.User, error) {
	ids := make([]int64, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*user.User
	for i, id := range ids {
		if int32(i) < offset {
			continue
		}
		if int32(len(out)) >= limit {
			break
		}
		out = append(out, f.users[id])
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	for _, existing := range f.users {
		if existing.Email().Value() == u.Email().Value() {
			return nil, infra.WrapRepoErr(infra.KindDuplicateKey, "duplicate email", nil)
		}
	}
	f.seq++
	now := time.Now()
	stored := user.Reconstruct(f.seq, u.Name(), u.Email(), u.PasswordHash(), u.Role(), now, now)
	f.users[f.seq] = stored
	return stored, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) (*user.User, error) {
	if _, ok := f.users[u.ID()]; !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	for id, existing := range f.users {
		if id != u.ID() && existing.Email().Value() == u.Email().Value() {
			return nil, infra.WrapRepoErr(infra.KindDuplicateKey, "duplicate email", nil)
		}
	}
	f.users[u.ID()] = u
	return u, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "user not found", nil)
	}
	delete(f.users, id)
	return nil
}

type fakeRoomRepo struct {
	seq   int64
	rooms map[int64]*room.Room

	lastFilter repository.RoomFilter
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[int64]*room.Room)}
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id int64) (*room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	return r, nil
}

func (f *fakeRoomRepo) List(_ context.Context, filter repository.RoomFilter) ([]*room.Room, error) {
	f.lastFilter = filter

	ids := make([]int64, 0, len(f.rooms))
	for id := range f.rooms {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*room.Room
	for _, id := range ids {
		r := f.rooms[id]
		if filter.Campus != nil && r.Campus() != *filter.Campus {
			continue
		}
		if filter.Resource != nil && !r.Resources().Contains(*filter.Resource) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Create(_ context.Context, r *room.Room) (*room.Room, error) {
	f.seq++
	now := time.Now()
	stored := room.Reconstruct(f.seq, r.Name(), r.Campus(), r.Capacity(), r.Resources(), now, now)
	f.rooms[f.seq] = stored
	return stored, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, r *room.Room) (*room.Room, error) {
	if _, ok := f.rooms[r.ID()]; !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	f.rooms[r.ID()] = r
	return r, nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	delete(f.rooms, id)
	return nil
}

type fakeReservationRepo struct {
	seq          int64
	reservations map[int64]*reservation.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[int64]*reservation.Reservation)}
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return r, nil
}

func (f *fakeReservationRepo) List(_ context.Context, filter repository.ReservationFilter) ([]*reservation.Reservation, error) {
	ids := make([]int64, 0, len(f.reservations))
	for id := range f.reservations {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var matched []*reservation.Reservation
	for _, id := range ids {
		r := f.reservations[id]
		if filter.UserID != nil && r.UserID() != *filter.UserID {
			continue
		}
		if filter.RoomID != nil && r.RoomID() != *filter.RoomID {
			continue
		}
		if filter.Date != nil && !r.Date().Equal(*filter.Date) {
			continue
		}
		matched = append(matched, r)
	}

	var out []*reservation.Reservation
	for i, r := range matched {
		if int32(i) < filter.Offset {
			continue
		}
		if filter.Limit > 0 && int32(len(out)) >= filter.Limit {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) Create(_ context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
	f.seq++
	now := time.Now()
	stored := reservation.Reconstruct(f.seq, r.UserID(), r.RoomID(), r.Date(), r.Slot(), r.Status(), now, now)
	f.reservations[f.seq] = stored
	return stored, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, r *reservation.Reservation) (*reservation.Reservation, error) {
	if _, ok := f.reservations[r.ID()]; !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	f.reservations[r.ID()] = r
	return r, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.reservations[id]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	delete(f.reservations, id)
	return nil
}

func (f *fakeReservationRepo) CountByUserID(_ context.Context, userID int64) (int64, error) {
	var count int64
	for _, r := range f.reservations {
		if r.UserID() == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) CountByRoomID(_ context.Context, roomID int64) (int64, error) {
	var count int64
	for _, r := range f.reservations {
		if r.RoomID() == roomID {
			count++
		}
	}
	return count, nil
}

func seedReservation(t *testing.T, repo *fakeReservationRepo, userID, roomID int64) *reservation.Reservation {
	t.Helper()

	start, err := reservation.ParseTimeOfDay("09:00")
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	end, err := reservation.ParseTimeOfDay("10:00")
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	date, err := reservation.ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	stored, err := repo.Create(context.Background(), reservation.NewReservation(userID, roomID, date, slot))
	if err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	return stored
}
