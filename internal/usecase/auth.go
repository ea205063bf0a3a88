package usecase

import (
	"context"

	"geresaco/internal/domain/user"
	"geresaco/internal/infra"
	"geresaco/internal/pkg/errs"
	"geresaco/internal/pkg/jwt"
	"geresaco/internal/pkg/password"
	"geresaco/internal/usecase/readmodel"
)

type AuthUsecase struct {
	users  UserRepository
	hasher *password.Hasher
	tokens *jwt.Service
}

func NewAuthUsecase(users UserRepository, hasher *password.Hasher, tokens *jwt.Service) *AuthUsecase {
	return &AuthUsecase{users: users, hasher: hasher, tokens: tokens}
}

type RegisterInput struct {
	Nombre     string
	Email      string
	Contrasena string
	Rol        string
}

type AuthResult struct {
	Token string
	User  *readmodel.UserRM
}

// Register creates a user account and signs them in. An omitted role defaults
// to the regular user role; an unknown role is rejected rather than coerced.
func (uc *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
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

	role := user.RoleUser
	if in.Rol != "" {
		role, err = user.NewRole(in.Rol)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidField)
		}
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

	token, err := uc.tokens.GenerateToken(created.ID(), created.Email().Value(), created.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}
	return &AuthResult{Token: token, User: readmodel.NewUserRM(created)}, nil
}

// Login never reveals whether the email or the password was the wrong half;
// both paths answer with the same credentials error.
func (uc *AuthUsecase) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	creds, err := user.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	found, err := uc.users.FindByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := uc.hasher.Compare(found.PasswordHash(), creds.Password().Value()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := uc.tokens.GenerateToken(found.ID(), found.Email().Value(), found.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}
	return &AuthResult{Token: token, User: readmodel.NewUserRM(found)}, nil
}

// VerifyToken checks the signature and resolves the bearer against the store,
// so tokens of deleted accounts stop working immediately.
func (uc *AuthUsecase) VerifyToken(ctx context.Context, token string) (*readmodel.UserRM, error) {
	claims, err := uc.tokens.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidToken)
	}

	found, err := uc.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidToken)
		}
		return nil, err
	}
	return readmodel.NewUserRM(found), nil
}

func (uc *AuthUsecase) GetCurrentUser(ctx context.Context, userID int64) (*readmodel.UserRM, error) {
	found, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, markNotFound(err, errs.ErrUserNotFound)
	}
	return readmodel.NewUserRM(found), nil
}
