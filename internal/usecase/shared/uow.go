package shared

import (
	"context"
	"errors"
	"time"

	"campground/internal/domain/booking"
	"campground/internal/domain/pitch"
	"campground/internal/domain/schedule"

	"github.com/google/uuid"
)

// ErrTxRetriesExhausted marks a transaction that kept losing to
// concurrent writers after bounded retries; callers surface it as a
// retryable conflict.
var ErrTxRetriesExhausted = errors.New("transaction retries exhausted")

type ReservationRepository interface {
	Create(ctx context.Context, res *booking.Reservation) error
	AddExtraLines(ctx context.Context, lines []booking.ExtraLine) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.PaymentStatus) error
	UpdatePitch(ctx context.Context, id uuid.UUID, pitchID int32) error
	ListPaidEndingAfter(ctx context.Context, pitchID int32, cutoff time.Time) ([]*booking.Reservation, error)
	CancelUnpaidCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type PitchRepository interface {
	AcquireAssignmentLock(ctx context.Context) error
	FirstAvailable(ctx context.Context, stay schedule.Range, exclude *int32) (int32, error)
	IsFree(ctx context.Context, pitchID int32, stay schedule.Range, ignoreReservation uuid.UUID) (bool, error)
}

type BlockRepository interface {
	Create(ctx context.Context, b pitch.Block) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Tx hands out repositories bound to one database transaction.
type Tx interface {
	Reservations() ReservationRepository
	Pitches() PitchRepository
	Blocks() BlockRepository
}

// UnitOfWork owns transaction boundaries. WithinAssignment is the
// resolver's atomic unit: serializable isolation plus the assignment
// advisory lock, retried on serialization failure.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinAssignment(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
