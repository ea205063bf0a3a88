package bootstrap

import (
	"geresaco/internal/pkg/config"
	"geresaco/internal/pkg/jwt"
	"geresaco/internal/pkg/password"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		NewJWTService,
		NewPasswordHasher,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}

func NewPasswordHasher(cfg config.Config) *password.Hasher {
	return password.NewHasher(cfg.Auth.BcryptCost)
}
