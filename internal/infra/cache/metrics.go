package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"campground/internal/domain/schedule"
	"campground/internal/pkg/config"
	"campground/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// Connect opens the redis client used for dashboard caching and verifies
// the connection.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}

// CachedMetricsQueries decorates the aggregation with a short redis TTL.
// The dashboard polls aggressively; a stale-by-seconds answer is fine.
// Cache failures always fall through to the live computation.
type CachedMetricsQueries struct {
	inner  queries.MetricsQueries
	client *redis.Client
	ttl    time.Duration
}

func NewCachedMetricsQueries(inner queries.MetricsQueries, client *redis.Client, cfg config.RedisConfig) *CachedMetricsQueries {
	return &CachedMetricsQueries{
		inner:  inner,
		client: client,
		ttl:    cfg.MetricsTTL,
	}
}

func (c *CachedMetricsQueries) Compute(ctx context.Context, kind schedule.PeriodKind, anchor time.Time) (*queries.Metrics, error) {
	key := metricsKey(kind, anchor)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var m queries.Metrics
		if unmarshalErr := json.Unmarshal(raw, &m); unmarshalErr == nil {
			return &m, nil
		}
	} else if err != redis.Nil {
		slog.Warn("metrics cache read failed", "key", key, "error", err)
	}

	m, err := c.inner.Compute(ctx, kind, anchor)
	if err != nil {
		return nil, err
	}

	if raw, marshalErr := json.Marshal(m); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			slog.Warn("metrics cache write failed", "key", key, "error", setErr)
		}
	}
	return m, nil
}

// FleetStatuses is intentionally uncached: the live pitch picture drives
// operator decisions and must not lag.
func (c *CachedMetricsQueries) FleetStatuses(ctx context.Context) ([]*queries.PitchStatusView, error) {
	return c.inner.FleetStatuses(ctx)
}

func metricsKey(kind schedule.PeriodKind, anchor time.Time) string {
	return fmt.Sprintf("metrics:%s:%s", kind, schedule.Truncate(anchor).Format(schedule.DateLayout))
}
