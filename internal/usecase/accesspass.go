package usecase

import (
	"context"
	"time"

	"campground/internal/domain/booking"
	"campground/internal/pkg/clock"
	"campground/internal/pkg/errs"
	"campground/internal/pkg/qrpass"
	"campground/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrPassIssueFailed = errs.New("failed to issue access pass")

// Denial reasons surfaced verbatim to the guest QR screen.
const (
	DenyReasonNotFound     = "reservation not found"
	DenyReasonNotPaid      = "reservation is not paid"
	DenyReasonOutsideStay  = "outside the access window for this stay"
	DenyReasonAccessClosed = "access for this reservation has been closed"
)

// IssueResult is the outcome of a pass request. A denial is data, not an
// error: the QR screen renders the reason and keeps polling.
type IssueResult struct {
	Granted       bool       `json:"granted"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	Pass          string     `json:"qr_pass,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Reason        string     `json:"reason,omitempty"`
}

type AccessPassUseCase interface {
	Issue(ctx context.Context, reservationID, userID uuid.UUID, operator bool) (*IssueResult, error)
}

type accessPassUseCaseImpl struct {
	reservations queries.ReservationQueries
	issuer       *qrpass.Issuer
	clock        clock.Clock
}

func NewAccessPassUseCase(reservations queries.ReservationQueries, issuer *qrpass.Issuer, clk clock.Clock) AccessPassUseCase {
	return &accessPassUseCaseImpl{
		reservations: reservations,
		issuer:       issuer,
		clock:        clk,
	}
}

// Issue runs the gate checks in order (reservation exists and belongs to
// the caller, is paid, current time inside the access window) and mints a
// short-lived pass when all hold. Each call is independent; clients
// re-request on the pass validity cadence.
func (u *accessPassUseCaseImpl) Issue(ctx context.Context, reservationID, userID uuid.UUID, operator bool) (*IssueResult, error) {
	denied := func(reason string) *IssueResult {
		return &IssueResult{ReservationID: reservationID, Reason: reason}
	}

	view, err := u.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errs.Is(err, queries.ErrReservationNotFound) {
			return denied(DenyReasonNotFound), nil
		}
		return nil, errs.Mark(err, ErrPassIssueFailed)
	}
	// Non-owners learn nothing beyond "not found".
	if !operator && view.UserID != userID {
		return denied(DenyReasonNotFound), nil
	}

	if view.PaymentStatus != booking.StatusPaid.String() {
		return denied(DenyReasonNotPaid), nil
	}

	now := u.clock.Now()
	start, end := booking.AccessWindow(view.StartOn, view.EndOn, view.AccessExpiresAt)
	if now.Before(start) {
		return denied(DenyReasonOutsideStay), nil
	}
	if now.After(end) {
		if view.AccessExpiresAt != nil {
			return denied(DenyReasonAccessClosed), nil
		}
		return denied(DenyReasonOutsideStay), nil
	}

	pass, expiresAt, err := u.issuer.Mint(reservationID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrPassIssueFailed)
	}
	return &IssueResult{
		Granted:       true,
		ReservationID: reservationID,
		Pass:          pass,
		ExpiresAt:     &expiresAt,
	}, nil
}
