package response

import (
	"time"

	"campground/internal/usecase"

	"github.com/google/uuid"
)

type AccessPassResponse struct {
	Granted       bool       `json:"granted"`
	ReservationID uuid.UUID  `json:"reservationId"`
	QRPass        string     `json:"qrPass,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

func FromIssueResult(r *usecase.IssueResult) *AccessPassResponse {
	return &AccessPassResponse{
		Granted:       r.Granted,
		ReservationID: r.ReservationID,
		QRPass:        r.Pass,
		ExpiresAt:     r.ExpiresAt,
		Reason:        r.Reason,
	}
}
