package bootstrap

import (
	"context"
	"log/slog"

	"campground/internal/infra/cache"
	"campground/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis opens the dashboard cache client. A broken cache never stops
// the service: on connect failure it returns a nil client and the
// aggregation runs uncached.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, dashboard cache disabled", "error", err)
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client
}
