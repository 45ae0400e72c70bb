package queries

import (
	"time"

	"github.com/google/uuid"
)

type ExtraLineView struct {
	ExtraID         int32  `json:"extra_id"`
	Code            string `json:"code"`
	Quantity        int32  `json:"quantity"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
	LineTotalCents  int64  `json:"line_total_cents"`
}

type ReservationView struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	PitchID            *int32          `json:"pitch_id"`
	StartOn            time.Time       `json:"start_on"`
	EndOn              time.Time       `json:"end_on"`
	Nights             int             `json:"nights"`
	PaymentStatus      string          `json:"payment_status"`
	NightlyAmountCents int64           `json:"nightly_amount_cents"`
	TotalAmountCents   int64           `json:"total_amount_cents"`
	FullName           string          `json:"full_name"`
	AccessExpiresAt    *time.Time      `json:"access_expires_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	Extras             []ExtraLineView `json:"extras"`
}

type BlockView struct {
	ID        uuid.UUID `json:"id"`
	PitchID   int32     `json:"pitch_id"`
	StartOn   time.Time `json:"start_on"`
	EndOn     time.Time `json:"end_on"`
	Kind      string    `json:"kind"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PitchStatusView struct {
	ID     int32  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type ExtraView struct {
	ID              int32  `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
	Kind            string `json:"kind"`
	MaxUnits        int32  `json:"max_units"`
}

// Metrics is the operator dashboard payload. The fleet counts
// (occupied/free/maintenance) are always evaluated as of the current
// instant, while the reservation-based figures follow the requested
// period.
type Metrics struct {
	PeriodKind         string           `json:"period_kind"`
	PeriodStart        time.Time        `json:"period_start"`
	PeriodEnd          time.Time        `json:"period_end"`
	OccupiedCount      int              `json:"occupied_count"`
	FreeCount          int              `json:"free_count"`
	MaintenanceCount   int              `json:"maintenance_count"`
	OccupancyPct       int              `json:"occupancy_pct"`
	CheckIns           int              `json:"check_ins"`
	CheckOuts          int              `json:"check_outs"`
	StaysRevenueCents  int64            `json:"stays_revenue_cents"`
	ExtrasRevenueCents map[string]int64 `json:"extras_revenue_cents_by_code"`
	TotalRevenueCents  int64            `json:"total_revenue_cents"`
	ActiveReservations int              `json:"active_reservations"`
}
