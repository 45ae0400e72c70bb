package commands

import (
	"context"

	"campground/internal/domain/booking"
	"campground/internal/infra"
	"campground/internal/pkg/errs"
	"campground/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidTransition   = errs.New("invalid payment status transition")
)

type PaymentCommands interface {
	ApplyPaymentEvent(ctx context.Context, reservationID uuid.UUID, newStatus booking.PaymentStatus) error
}

type paymentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentCommands(uow shared.UnitOfWork) PaymentCommands {
	return &paymentCommandsImpl{uow: uow}
}

// ApplyPaymentEvent moves a reservation along the payment status machine.
// The row is locked for the duration so concurrent provider callbacks for
// the same reservation serialize instead of clobbering each other.
func (c *paymentCommandsImpl) ApplyPaymentEvent(ctx context.Context, reservationID uuid.UUID, newStatus booking.PaymentStatus) error {
	if !newStatus.IsValid() {
		return ErrInvalidTransition
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}

		if err := res.Transition(newStatus); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		return tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status())
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case errs.Is(err, ErrInvalidTransition):
		return err
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
