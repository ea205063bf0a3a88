package components

import (
	"geresaco/internal/handler"
	"geresaco/internal/handler/api"
	"geresaco/internal/handler/middleware"
	"geresaco/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
