package bootstrap

import (
	"context"
	"log/slog"

	"campground/internal/pkg/config"
	"campground/internal/queue"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewAMQPConfig,
		queue.NewPaymentConsumer,
	),
	fx.Invoke(StartPaymentConsumer),
)

func NewAMQPConfig(cfg config.Config) config.AMQPConfig {
	return cfg.AMQP
}

// StartPaymentConsumer runs the broker consumer for the lifetime of the
// app. Deployments without a broker leave AMQP_URL empty and rely on the
// HTTP webhook alone.
func StartPaymentConsumer(lc fx.Lifecycle, cfg config.Config, consumer *queue.PaymentConsumer) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, payment queue consumer disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go consumer.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
