// Package queue holds the background consumer that applies payment
// provider events delivered over the message bus.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campground/internal/domain/booking"
	"campground/internal/pkg/config"
	"campground/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const maxReconnectBackoff = 30 * time.Second

// PaymentConsumer drains the payment event queue and feeds each event
// through the same command the HTTP webhook uses.
type PaymentConsumer struct {
	cfg      config.AMQPConfig
	payments commands.PaymentCommands
}

func NewPaymentConsumer(cfg config.AMQPConfig, payments commands.PaymentCommands) *PaymentConsumer {
	return &PaymentConsumer{cfg: cfg, payments: payments}
}

// Run connects to the broker and consumes until the context is canceled,
// reconnecting with backoff on broker failures.
func (c *PaymentConsumer) Run(ctx context.Context) {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}

		conn, err := amqp.Dial(c.cfg.URL)
		if err != nil {
			slog.Warn("payment consumer failed to dial broker",
				"url", c.cfg.URL, "retry_in", backoff, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < maxReconnectBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consumeLoop(ctx, conn); err != nil {
			slog.Warn("payment consume loop ended, reconnecting", "error", err)
		}
		_ = conn.Close()
	}
}

func (c *PaymentConsumer) consumeLoop(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		slog.Warn("payment consumer set QoS failed", "error", err)
	}

	if _, err := ch.QueueDeclare(c.cfg.PaymentQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(c.cfg.PaymentQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

func (c *PaymentConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var ev PaymentEvent
	if err := json.Unmarshal(d.Body, &ev); err != nil {
		slog.Error("payment event unmarshal failed", "error", err)
		_ = d.Nack(false, false)
		return
	}

	err := c.payments.ApplyPaymentEvent(ctx, ev.ReservationID, booking.PaymentStatus(ev.NewStatus))
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errors.Is(err, commands.ErrReservationNotFound),
		errors.Is(err, commands.ErrInvalidTransition):
		// Poison or stale message, requeueing would loop forever.
		slog.Warn("payment event rejected",
			"reservation_id", ev.ReservationID, "new_status", ev.NewStatus, "error", err)
		_ = d.Nack(false, false)
	default:
		slog.Error("payment event processing failed, requeueing",
			"reservation_id", ev.ReservationID, "error", err)
		_ = d.Nack(false, true)
	}
}
