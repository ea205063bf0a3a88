package usecase

import (
	"context"

	"geresaco/internal/domain/user"
	"geresaco/internal/infra"
	"geresaco/internal/infra/repository"
	"geresaco/internal/pkg/errs"
	"geresaco/internal/pkg/password"
	"geresaco/internal/pkg/patch"
	"geresaco/internal/usecase/readmodel"
)

type UserUsecase struct {
	users        UserRepository
	reservations ReservationRepository
	hasher       *password.Hasher
}

func NewUserUsecase(users UserRepository, reservations ReservationRepository, hasher *password.Hasher) *UserUsecase {
	return &UserUsecase{users: users, reservations: reservations, hasher: hasher}
}

func (uc *UserUsecase) List(ctx context.Context, offset, limit int32) ([]*readmodel.UserRM, error) {
	offset, limit = normalizePage(offset, limit)
	found, err := uc.users.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*readmodel.UserRM, 0, len(found))
	for _, u := range found {
		out = append(out, readmodel.NewUserRM(u))
	}
	return out, nil
}

func (uc *UserUsecase) Get(ctx context.Context, id int64) (*readmodel.UserRM, error) {
	found, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrUserNotFound)
	}
	return readmodel.NewUserRM(found), nil
}

// GetWithReservations returns the user together with the page of reservations
// that reference them.
func (uc *UserUsecase) GetWithReservations(ctx context.Context, id int64, offset, limit int32) (*readmodel.UserWithReservationsRM, error) {
	found, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrUserNotFound)
	}

	offset, limit = normalizePage(offset, limit)
	reservations, err := uc.reservations.List(ctx, repository.ReservationFilter{
		UserID: &id,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	out := &readmodel.UserWithReservationsRM{
		UserRM:   *readmodel.NewUserRM(found),
		Reservas: make([]*readmodel.ReservationRM, 0, len(reservations)),
	}
	for _, res := range reservations {
		out.Reservas = append(out.Reservas, readmodel.NewReservationRM(res))
	}
	return out, nil
}

type CreateUserInput struct {
	Nombre     string
	Email      string
	Contrasena string
	Rol        string
}

func (uc *UserUsecase) Create(ctx context.Context, in CreateUserInput) (*readmodel.UserRM, error) {
	name, err := user.NewName(in.Nombre)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}
	pass, err := user.NewPassword(in.Contrasena)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}
	role, err := user.NewRole(in.Rol)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}

	hash, err := uc.hasher.Hash(pass.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	created, err := uc.users.Create(ctx, user.NewUser(name, email, hash, role))
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, err
	}
	return readmodel.NewUserRM(created), nil
}

type UpdateUserInput struct {
	Nombre     *string
	Email      *string
	Contrasena *string
	Rol        *string
}

// Update merges the provided fields over the stored record and re-validates
// the merged result as a whole before persisting it.
func (uc *UserUsecase) Update(ctx context.Context, id int64, in UpdateUserInput) (*readmodel.UserRM, error) {
	existing, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrUserNotFound)
	}

	name, err := user.NewName(patch.Coalesce(in.Nombre, existing.Name().Value()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}
	email, err := user.NewEmail(patch.Coalesce(in.Email, existing.Email().Value()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}
	role, err := user.NewRole(patch.Coalesce(in.Rol, existing.Role().String()))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidField)
	}

	hash := existing.PasswordHash()
	if in.Contrasena != nil {
		pass, err := user.NewPassword(*in.Contrasena)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidField)
		}
		hash, err = uc.hasher.Hash(pass.Value())
		if err != nil {
			return nil, errs.Wrap(err, "failed to hash password")
		}
	}

	merged := user.Reconstruct(existing.ID(), name, email, hash, role, existing.CreatedAt(), existing.UpdatedAt())
	updated, err := uc.users.Update(ctx, merged)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		return nil, markNotFound(err, errs.ErrUserNotFound)
	}
	return readmodel.NewUserRM(updated), nil
}

// Delete refuses to remove a user who still has reservations on file,
// whatever their status.
func (uc *UserUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.users.FindByID(ctx, id); err != nil {
		return markNotFound(err, errs.ErrUserNotFound)
	}

	count, err := uc.reservations.CountByUserID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.Mark(errs.Newf("user %d has %d reservations", id, count), errs.ErrUserHasReservations)
	}

	if err := uc.users.Delete(ctx, id); err != nil {
		return markNotFound(err, errs.ErrUserNotFound)
	}
	return nil
}
