package queue

import "github.com/google/uuid"

// PaymentEvent is the broker-side mirror of the payment webhook payload:
// providers that push through the message bus instead of HTTP land here.
type PaymentEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	NewStatus     string    `json:"new_status"`
}
