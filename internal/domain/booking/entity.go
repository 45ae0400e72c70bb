package booking

import (
	"errors"
	"time"

	"campground/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid payment status transition")
	ErrNotPaid           = errors.New("reservation is not paid")
)

// DefaultNightlyCents is the flat nightly rate for a pitch.
const DefaultNightlyCents = 1500

// AccessWindowLead is how long before check-in the gate pass becomes
// available.
const AccessWindowLead = 2 * time.Hour

// Reservation is a guest stay: a date range, the pitch it holds (nil
// until assignment), payment state and the priced totals.
type Reservation struct {
	id                 uuid.UUID
	userID             uuid.UUID
	pitchID            *int32
	stay               schedule.Range
	status             PaymentStatus
	nightlyAmountCents int64
	totalAmountCents   int64
	guest              Guest
	accessExpiresAt    *time.Time
	createdAt          time.Time
}

// NewReservation prices a stay with its extras and opens it in the
// unpaid state. The pitch is assigned separately by the resolver.
func NewReservation(userID uuid.UUID, stay schedule.Range, nightlyCents int64, lines []ExtraLine, guest Guest, now time.Time) (*Reservation, error) {
	nightly, err := NewMoney(nightlyCents)
	if err != nil {
		return nil, err
	}
	total := nightly.MultiplyNights(stay.Nights()).Add(ExtrasTotal(lines))
	return &Reservation{
		id:                 uuid.New(),
		userID:             userID,
		stay:               stay,
		status:             StatusUnpaid,
		nightlyAmountCents: nightly.Cents(),
		totalAmountCents:   total.Cents(),
		guest:              guest,
		createdAt:          now,
	}, nil
}

func ReconstructReservation(
	id, userID uuid.UUID,
	pitchID *int32,
	stay schedule.Range,
	status PaymentStatus,
	nightlyCents, totalCents int64,
	guest Guest,
	accessExpiresAt *time.Time,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		userID:             userID,
		pitchID:            pitchID,
		stay:               stay,
		status:             status,
		nightlyAmountCents: nightlyCents,
		totalAmountCents:   totalCents,
		guest:              guest,
		accessExpiresAt:    accessExpiresAt,
		createdAt:          createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) UserID() uuid.UUID           { return r.userID }
func (r *Reservation) PitchID() *int32             { return r.pitchID }
func (r *Reservation) Stay() schedule.Range        { return r.stay }
func (r *Reservation) Status() PaymentStatus       { return r.status }
func (r *Reservation) NightlyAmountCents() int64   { return r.nightlyAmountCents }
func (r *Reservation) TotalAmountCents() int64     { return r.totalAmountCents }
func (r *Reservation) Guest() Guest                { return r.guest }
func (r *Reservation) AccessExpiresAt() *time.Time { return r.accessExpiresAt }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }

func (r *Reservation) IsPaid() bool {
	return r.status == StatusPaid
}

// HoldsPitch reports whether this reservation keeps its pitch exclusively
// reserved against new assignments.
func (r *Reservation) HoldsPitch() bool {
	switch r.status {
	case StatusUnpaid, StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

func (r *Reservation) AssignPitch(pitchID int32) {
	r.pitchID = &pitchID
}

func (r *Reservation) Transition(next PaymentStatus) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

// AccessWindow is the interval during which a gate pass may be issued:
// from two hours before check-in until the end of stay, or until the
// explicit override timestamp when one is set.
func AccessWindow(stayStart, stayEnd time.Time, override *time.Time) (time.Time, time.Time) {
	start := stayStart.Add(-AccessWindowLead)
	end := stayEnd
	if override != nil {
		end = *override
	}
	return start, end
}

func (r *Reservation) AccessWindow() (time.Time, time.Time) {
	return AccessWindow(r.stay.Start(), r.stay.End(), r.accessExpiresAt)
}

func (r *Reservation) InAccessWindow(now time.Time) bool {
	start, end := r.AccessWindow()
	return !now.Before(start) && !now.After(end)
}
