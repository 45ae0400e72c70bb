package response

import (
	"time"

	"campground/internal/usecase/queries"

	"github.com/google/uuid"
)

type ExtraLineResponse struct {
	ExtraID         int32  `json:"extraId"`
	Code            string `json:"code"`
	Quantity        int32  `json:"quantity"`
	UnitAmountCents int64  `json:"unitAmountCents"`
	LineTotalCents  int64  `json:"lineTotalCents"`
}

type BookingResponse struct {
	ID                 uuid.UUID           `json:"id"`
	UserID             uuid.UUID           `json:"userId"`
	PitchID            *int32              `json:"pitchId,omitempty"`
	StartDate          string              `json:"startDate"`
	EndDate            string              `json:"endDate"`
	Nights             int                 `json:"nights"`
	PaymentStatus      string              `json:"paymentStatus"`
	NightlyAmountCents int64               `json:"nightlyAmountCents"`
	TotalAmountCents   int64               `json:"totalAmountCents"`
	GuestName          string              `json:"guestName"`
	Extras             []ExtraLineResponse `json:"extras"`
	CreatedAt          time.Time           `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *BookingResponse {
	extras := make([]ExtraLineResponse, len(rm.Extras))
	for i, l := range rm.Extras {
		extras[i] = ExtraLineResponse{
			ExtraID:         l.ExtraID,
			Code:            l.Code,
			Quantity:        l.Quantity,
			UnitAmountCents: l.UnitAmountCents,
			LineTotalCents:  l.LineTotalCents,
		}
	}
	return &BookingResponse{
		ID:                 rm.ID,
		UserID:             rm.UserID,
		PitchID:            rm.PitchID,
		StartDate:          rm.StartOn.Format("2006-01-02"),
		EndDate:            rm.EndOn.Format("2006-01-02"),
		Nights:             rm.Nights,
		PaymentStatus:      rm.PaymentStatus,
		NightlyAmountCents: rm.NightlyAmountCents,
		TotalAmountCents:   rm.TotalAmountCents,
		GuestName:          rm.FullName,
		Extras:             extras,
		CreatedAt:          rm.CreatedAt,
	}
}

func FromReservationViews(rms []*queries.ReservationView) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromReservationView(rm)
	}
	return out
}
