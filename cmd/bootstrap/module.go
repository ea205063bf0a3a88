package bootstrap

import (
	"geresaco/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	AuthModule,
	components.RepositoryModule,
	components.UsecaseModule,
	components.HandlerModule,
)
