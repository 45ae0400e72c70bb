package components

import (
	"campground/internal/handler"
	"campground/internal/handler/api"
	"campground/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewBlockHandler,
		api.NewDashboardHandler,
		api.NewAccessPassHandler,
		api.NewPaymentHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
