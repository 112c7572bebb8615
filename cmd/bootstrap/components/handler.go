package components

import (
	"invoice-dashboard/internal/handler"
	"invoice-dashboard/internal/handler/api"
	"invoice-dashboard/internal/handler/middleware"
	"invoice-dashboard/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInvoiceHandler,
		api.NewCustomerHandler,
		middleware.NewAuthMiddleware,
		middleware.NewMetrics,
		func(cfg config.Config) *middleware.LoginLimiter {
			return middleware.NewLoginLimiter(cfg.Login)
		},
	),
	fx.Invoke(handler.NewRouter),
)
