//go:build unit || e2e

package builder

import (
	"time"

	"campground/internal/domain/booking"
	"campground/internal/domain/schedule"
	reqdto "campground/internal/handler/dto/request"
	"campground/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	PitchID      int32
	StartDate    string
	EndDate      string
	Status       booking.PaymentStatus
	NightlyCents int64
	FullName     string
	DNI          string
	Phone        string
	LicensePlate string
	Extras       []booking.ExtraSelection
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		PitchID:      1,
		StartDate:    "2026-07-10",
		EndDate:      "2026-07-13",
		Status:       booking.StatusUnpaid,
		NightlyCents: 1500,
		FullName:     "Ana García",
		DNI:          "12345678Z",
		Phone:        "+34600111222",
		LicensePlate: "1234ABC",
		CreatedAt:    time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Stay() schedule.Range {
	r, err := schedule.ParseRange(b.StartDate, b.EndDate)
	if err != nil {
		panic(err)
	}
	return r
}

func (b *BookingBuilder) BuildDomain() (*booking.Reservation, error) {
	guest, err := booking.NewGuest(b.FullName, b.DNI, b.Phone, b.LicensePlate)
	if err != nil {
		return nil, err
	}
	return booking.NewReservation(b.UserID, b.Stay(), b.NightlyCents, nil, guest, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	extras := make([]reqdto.ExtraSelectionRequest, len(b.Extras))
	for i, e := range b.Extras {
		extras[i] = reqdto.ExtraSelectionRequest{ExtraID: e.ExtraID, Quantity: e.Quantity}
	}
	return reqdto.CreateBookingRequest{
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Guest: reqdto.GuestRequest{
			FullName:     b.FullName,
			DNI:          b.DNI,
			Phone:        b.Phone,
			LicensePlate: b.LicensePlate,
		},
		Extras: extras,
	}
}

func (b *BookingBuilder) BuildView() *queries.ReservationView {
	stay := b.Stay()
	pitchID := b.PitchID
	return &queries.ReservationView{
		ID:                 b.ID,
		UserID:             b.UserID,
		PitchID:            &pitchID,
		StartOn:            stay.Start(),
		EndOn:              stay.End(),
		Nights:             stay.Nights(),
		PaymentStatus:      string(b.Status),
		NightlyAmountCents: b.NightlyCents,
		TotalAmountCents:   b.NightlyCents * int64(stay.Nights()),
		FullName:           b.FullName,
		CreatedAt:          b.CreatedAt,
		Extras:             []queries.ExtraLineView{},
	}
}
