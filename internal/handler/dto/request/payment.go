package request

import "github.com/google/uuid"

// PaymentWebhookRequest is the provider callback payload. The provider
// retries on non-2xx, so handlers must answer idempotently.
type PaymentWebhookRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	NewStatus     string    `json:"new_status" binding:"required,oneof=pending paid refunded"`
}
