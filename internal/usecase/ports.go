package usecase

import (
	"context"

	"geresaco/internal/domain/reservation"
	"geresaco/internal/domain/room"
	"geresaco/internal/domain/user"
	"geresaco/internal/infra"
	"geresaco/internal/infra/repository"
	"geresaco/internal/pkg/errs"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context, offset, limit int32) ([]*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) (*user.User, error)
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	FindByID(ctx context.Context, id int64) (*room.Room, error)
	List(ctx context.Context, filter repository.RoomFilter) ([]*room.Room, error)
	Create(ctx context.Context, rm *room.Room) (*room.Room, error)
	Update(ctx context.Context, rm *room.Room) (*room.Room, error)
	Delete(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	List(ctx context.Context, filter repository.ReservationFilter) ([]*reservation.Reservation, error)
	Create(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	Update(ctx context.Context, res *reservation.Reservation) (*reservation.Reservation, error)
	Delete(ctx context.Context, id int64) error
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	CountByRoomID(ctx context.Context, roomID int64) (int64, error)
}

const (
	defaultLimit int32 = 50
	maxLimit     int32 = 200
)

func normalizePage(offset, limit int32) (int32, int32) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return offset, limit
}

// markNotFound rewrites a repository not-found into the given sentinel and
// lets every other store failure surface untouched.
func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
