package components

import (
	"campground/internal/infra/cache"
	"campground/internal/pkg/clock"
	"campground/internal/pkg/config"
	"campground/internal/usecase"
	"campground/internal/usecase/commands"
	"campground/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.BookingConfig {
		return cfg.Booking
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		NewMetricsQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewBlockCommands,
		commands.NewPaymentCommands,
		usecase.NewAccessPassUseCase,
	),
)

// NewMetricsQueries layers the redis cache over the aggregation when a
// cache client is available.
func NewMetricsQueries(store queries.MetricsReadStore, clk clock.Clock, client *redis.Client, cfg config.Config) queries.MetricsQueries {
	base := queries.NewMetricsQueries(store, clk)
	if client == nil {
		return base
	}
	return cache.NewCachedMetricsQueries(base, client, cfg.Redis)
}
