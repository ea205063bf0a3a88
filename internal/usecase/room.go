package usecase

import (
	"context"

	"geresaco/internal/domain/room"
	"geresaco/internal/infra/repository"
	"geresaco/internal/pkg/errs"
	"geresaco/internal/pkg/patch"
	"geresaco/internal/usecase/readmodel"
)

type RoomUsecase struct {
	rooms        RoomRepository
	reservations ReservationRepository
}

func NewRoomUsecase(rooms RoomRepository, reservations ReservationRepository) *RoomUsecase {
	return &RoomUsecase{rooms: rooms, reservations: reservations}
}

type ListRoomsInput struct {
	Sede    *string
	Recurso *string
	Offset  int32
	Limit   int32
}

func (uc *RoomUsecase) List(ctx context.Context, in ListRoomsInput) ([]*readmodel.RoomRM, error) {
	filter := repository.RoomFilter{}
	filter.Offset, filter.Limit = normalizePage(in.Offset, in.Limit)

	if in.Sede != nil {
		campus, err := room.NewCampus(*in.Sede)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidField)
		}
		filter.Campus = &campus
	}
	if in.Recurso != nil {
		tag := room.ResourceTag(*in.Recurso)
		if !tag.IsValid() {
			return nil, errs.Mark(errs.Newf("unknown resource %q", *in.Recurso), errs.ErrInvalidField)
		}
		filter.Resource = &tag
	}

	found, err := uc.rooms.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*readmodel.RoomRM, 0, len(found))
	for _, r := range found {
		out = append(out, readmodel.NewRoomRM(r))
	}
	return out, nil
}

func (uc *RoomUsecase) Get(ctx context.Context, id int64) (*readmodel.RoomRM, error) {
	found, err := uc.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}
	return readmodel.NewRoomRM(found), nil
}

func (uc *RoomUsecase) GetWithReservations(ctx context.Context, id int64, offset, limit int32) (*readmodel.RoomWithReservationsRM, error) {
	found, err := uc.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}

	offset, limit = normalizePage(offset, limit)
	reservations, err := uc.reservations.List(ctx, repository.ReservationFilter{
		RoomID: &id,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	out := &readmodel.RoomWithReservationsRM{
		RoomRM:   *readmodel.NewRoomRM(found),
		Reservas: make([]*readmodel.ReservationRM, 0, len(reservations)),
	}
	for _, res := range reservations {
		out.Reservas = append(out.Reservas, readmodel.NewReservationRM(res))
	}
	return out, nil
}

type CreateRoomInput struct {
	Nombre    string
	Sede      string
	Capacidad int
	Recursos  string
}

func (uc *RoomUsecase) Create(ctx context.Context, in CreateRoomInput) (*readmodel.RoomRM, error) {
	campus, err := room.NewCampus(in.Sede)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}
	resources, err := room.NewResources(in.Recursos)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidResourceList)
	}
	entity, err := room.NewRoom(in.Nombre, campus, in.Capacidad, resources)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}

	created, err := uc.rooms.Create(ctx, entity)
	if err != nil {
		return nil, err
	}
	return readmodel.NewRoomRM(created), nil
}

type UpdateRoomInput struct {
	Nombre    *string
	Sede      *string
	Capacidad *int
	Recursos  *string
}

// Update merges the patch over the stored room and runs the full set of
// checks on the merged values, touched or not.
func (uc *RoomUsecase) Update(ctx context.Context, id int64, in UpdateRoomInput) (*readmodel.RoomRM, error) {
	existing, err := uc.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}

	campus, err := room.NewCampus(patch.Coalesce(in.Sede, existing.Campus().String()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}
	resources, err := room.NewResources(patch.Coalesce(in.Recursos, existing.Resources().String()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidResourceList)
	}
	entity, err := room.NewRoom(
		patch.Coalesce(in.Nombre, existing.Name()),
		campus,
		patch.Coalesce(in.Capacidad, existing.Capacity()),
		resources,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}

	merged := room.Reconstruct(existing.ID(), entity.Name(), entity.Campus(), entity.Capacity(), entity.Resources(), existing.CreatedAt(), existing.UpdatedAt())
	updated, err := uc.rooms.Update(ctx, merged)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}
	return readmodel.NewRoomRM(updated), nil
}

// Delete refuses to remove a room that reservations still point at.
func (uc *RoomUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.rooms.FindByID(ctx, id); err != nil {
		return markNotFound(err, errs.ErrRoomNotFound)
	}

	count, err := uc.reservations.CountByRoomID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.Mark(errs.Newf("room %d has %d reservations", id, count), errs.ErrRoomHasReservations)
	}

	if err := uc.rooms.Delete(ctx, id); err != nil {
		return markNotFound(err, errs.ErrRoomNotFound)
	}
	return nil
}
