package usecase

import (
	"context"
	"errors"

	"geresaco/internal/domain/reservation"
	"geresaco/internal/infra"
	"geresaco/internal/infra/repository"
	"geresaco/internal/pkg/errs"
	"geresaco/internal/pkg/patch"
	"geresaco/internal/usecase/readmodel"
)

type ReservationUsecase struct {
	reservations ReservationRepository
	users        UserRepository
	rooms        RoomRepository
}

func NewReservationUsecase(reservations ReservationRepository, users UserRepository, rooms RoomRepository) *ReservationUsecase {
	return &ReservationUsecase{reservations: reservations, users: users, rooms: rooms}
}

type CreateReservationInput struct {
	UsuarioID  int64
	SalaID     int64
	Fecha      string
	HoraInicio string
	HoraFin    string
}

// Create admits a new reservation. Checks run in a fixed order: the user
// reference, then the room reference, then the slot itself. Two reservations
// may share the same room, date and hour; double booking is left to the
// people administering the rooms.
func (uc *ReservationUsecase) Create(ctx context.Context, in CreateReservationInput) (*readmodel.ReservationRM, error) {
	if err := uc.ensureUserExists(ctx, in.UsuarioID); err != nil {
		return nil, err
	}
	if err := uc.ensureRoomExists(ctx, in.SalaID); err != nil {
		return nil, err
	}

	date, slot, err := buildSlot(in.Fecha, in.HoraInicio, in.HoraFin)
	if err != nil {
		return nil, err
	}

	created, err := uc.reservations.Create(ctx, reservation.NewReservation(in.UsuarioID, in.SalaID, date, slot))
	if err != nil {
		return nil, err
	}
	return readmodel.NewReservationRM(created), nil
}

type UpdateReservationInput struct {
	UsuarioID  *int64
	SalaID     *int64
	Fecha      *string
	HoraInicio *string
	HoraFin    *string
	Estado     *string
}

// Update merges the patch over the stored reservation and re-runs the whole
// admission pipeline on the merged values, including the fields the caller
// did not touch. A stored row that would no longer be admitted today cannot
// be updated without also fixing it.
func (uc *ReservationUsecase) Update(ctx context.Context, id int64, in UpdateReservationInput) (*readmodel.ReservationRM, error) {
	existing, err := uc.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}

	userID := patch.Coalesce(in.UsuarioID, existing.UserID())
	roomID := patch.Coalesce(in.SalaID, existing.RoomID())
	if err := uc.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := uc.ensureRoomExists(ctx, roomID); err != nil {
		return nil, err
	}

	date, slot, err := buildSlot(
		patch.Coalesce(in.Fecha, existing.Date().String()),
		patch.Coalesce(in.HoraInicio, existing.Slot().Start().String()),
		patch.Coalesce(in.HoraFin, existing.Slot().End().String()),
	)
	if err != nil {
		return nil, err
	}

	status, err := reservation.NewStatus(patch.Coalesce(in.Estado, existing.Status().String()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}

	merged := reservation.Reconstruct(existing.ID(), userID, roomID, date, slot, status, existing.CreatedAt(), existing.UpdatedAt())
	updated, err := uc.reservations.Update(ctx, merged)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}
	return readmodel.NewReservationRM(updated), nil
}

// Cancel moves the reservation to cancelada from any state except cancelada
// itself. It deliberately skips the admission checks so that rows with stale
// slots can still be cancelled.
func (uc *ReservationUsecase) Cancel(ctx context.Context, id int64) (*readmodel.ReservationRM, error) {
	existing, err := uc.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}

	if err := existing.Cancel(); err != nil {
		if errors.Is(err, reservation.ErrAlreadyCancelled) {
			return nil, errs.Mark(err, errs.ErrAlreadyCancelled)
		}
		return nil, err
	}

	updated, err := uc.reservations.Update(ctx, existing)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}
	return readmodel.NewReservationRM(updated), nil
}

func (uc *ReservationUsecase) Get(ctx context.Context, id int64) (*readmodel.ReservationRM, error) {
	found, err := uc.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}
	return readmodel.NewReservationRM(found), nil
}

// GetDetails embeds snapshots of the related user and room. Dangling
// references yield a nil snapshot instead of failing the whole read.
func (uc *ReservationUsecase) GetDetails(ctx context.Context, id int64) (*readmodel.ReservationDetailsRM, error) {
	found, err := uc.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}
	return uc.composeDetails(ctx, found, nil, nil)
}

type ListReservationsInput struct {
	UsuarioID *int64
	SalaID    *int64
	Fecha     *string
	Offset    int32
	Limit     int32
}

func (uc *ReservationUsecase) List(ctx context.Context, in ListReservationsInput) ([]*readmodel.ReservationRM, error) {
	filter, err := buildReservationFilter(in)
	if err != nil {
		return nil, err
	}

	found, err := uc.reservations.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*readmodel.ReservationRM, 0, len(found))
	for _, res := range found {
		out = append(out, readmodel.NewReservationRM(res))
	}
	return out, nil
}

func (uc *ReservationUsecase) ListDetails(ctx context.Context, in ListReservationsInput) ([]*readmodel.ReservationDetailsRM, error) {
	filter, err := buildReservationFilter(in)
	if err != nil {
		return nil, err
	}

	found, err := uc.reservations.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Snapshot caches keep the per-row lookups from refetching the same
	// user or room across the page.
	userCache := make(map[int64]*readmodel.UserRM)
	roomCache := make(map[int64]*readmodel.RoomRM)

	out := make([]*readmodel.ReservationDetailsRM, 0, len(found))
	for _, res := range found {
		details, err := uc.composeDetails(ctx, res, userCache, roomCache)
		if err != nil {
			return nil, err
		}
		out = append(out, details)
	}
	return out, nil
}

func (uc *ReservationUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.reservations.Delete(ctx, id); err != nil {
		return markNotFound(err, errs.ErrReservationNotFound)
	}
	return nil
}

func (uc *ReservationUsecase) ensureUserExists(ctx context.Context, id int64) error {
	if _, err := uc.users.FindByID(ctx, id); err != nil {
		return markNotFound(err, errs.ErrUserNotFound)
	}
	return nil
}

func (uc *ReservationUsecase) ensureRoomExists(ctx context.Context, id int64) error {
	if _, err := uc.rooms.FindByID(ctx, id); err != nil {
		return markNotFound(err, errs.ErrRoomNotFound)
	}
	return nil
}

func (uc *ReservationUsecase) composeDetails(
	ctx context.Context,
	res *reservation.Reservation,
	userCache map[int64]*readmodel.UserRM,
	roomCache map[int64]*readmodel.RoomRM,
) (*readmodel.ReservationDetailsRM, error) {
	details := &readmodel.ReservationDetailsRM{ReservationRM: *readmodel.NewReservationRM(res)}

	if cached, ok := userCache[res.UserID()]; ok {
		details.Usuario = cached
	} else {
		u, err := uc.users.FindByID(ctx, res.UserID())
		switch {
		case err == nil:
			details.Usuario = readmodel.NewUserRM(u)
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, err
		}
		if userCache != nil {
			userCache[res.UserID()] = details.Usuario
		}
	}

	if cached, ok := roomCache[res.RoomID()]; ok {
		details.Sala = cached
	} else {
		rm, err := uc.rooms.FindByID(ctx, res.RoomID())
		switch {
		case err == nil:
			details.Sala = readmodel.NewRoomRM(rm)
		case !infra.IsKind(err, infra.KindNotFound):
			return nil, err
		}
		if roomCache != nil {
			roomCache[res.RoomID()] = details.Sala
		}
	}

	return details, nil
}

func buildReservationFilter(in ListReservationsInput) (repository.ReservationFilter, error) {
	filter := repository.ReservationFilter{
		UserID: in.UsuarioID,
		RoomID: in.SalaID,
	}
	filter.Offset, filter.Limit = normalizePage(in.Offset, in.Limit)

	if in.Fecha != nil {
		date, err := reservation.ParseDate(*in.Fecha)
		if err != nil {
			return repository.ReservationFilter{}, errs.Mark(err, errs.ErrInvalidField)
		}
		filter.Date = &date
	}
	return filter, nil
}

// buildSlot parses and admits the date and the pair of slot times. The
// interval order check runs before the duration check so the caller always
// sees the more specific failure first.
func buildSlot(fecha, horaInicio, horaFin string) (reservation.Date, reservation.TimeSlot, error) {
	date, err := reservation.ParseDate(fecha)
	if err != nil {
		return reservation.Date{}, reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidField)
	}
	start, err := reservation.ParseTimeOfDay(horaInicio)
	if err != nil {
		return reservation.Date{}, reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidField)
	}
	end, err := reservation.ParseTimeOfDay(horaFin)
	if err != nil {
		return reservation.Date{}, reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidField)
	}

	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrEndNotAfterStart):
			return reservation.Date{}, reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidInterval)
		case errors.Is(err, reservation.ErrNotExactHour):
			return reservation.Date{}, reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidDuration)
		default:
			return reservation.Date{}, reservation.TimeSlot{}, errs.Mark(err, errs.ErrInvalidField)
		}
	}
	return date, slot, nil
}
