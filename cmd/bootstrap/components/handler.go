package components

import (
	"tablestay/internal/handler"
	"tablestay/internal/handler/api"
	"tablestay/internal/handler/middleware"
	"tablestay/internal/pkg/config"
	"tablestay/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(authUseCase usecase.AuthUseCase, cfg config.Config) *api.AuthHandler {
			return api.NewAuthHandler(authUseCase, cfg.Cookie)
		},
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
