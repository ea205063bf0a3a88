package components

import (
	"geresaco/internal/usecase"

	"go.uber.org/fx"
)

var UsecaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAuthUsecase,
		usecase.NewUserUsecase,
		usecase.NewRoomUsecase,
		usecase.NewReservationUsecase,
	),
)
