package commands

import (
	"context"

	"campground/internal/domain/booking"
	"campground/internal/domain/schedule"
	"campground/internal/infra"
	"campground/internal/pkg/clock"
	"campground/internal/pkg/config"
	"campground/internal/pkg/errs"
	"campground/internal/usecase/queries"
	"campground/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay = errs.New("invalid stay range")
	ErrBadExtras   = errs.New("invalid extras selection")
	ErrBadGuest    = errs.New("incomplete guest details")
	// ErrNoAvailability is an expected outcome, not a failure: no pitch is
	// free for the requested nights.
	ErrNoAvailability = errs.New("no pitch available for the requested dates")
	// ErrAssignmentConflict is transient: the assignment transaction lost
	// against concurrent writers even after retries.
	ErrAssignmentConflict      = errs.New("assignment conflict, retry the booking")
	ErrPitchUnavailable        = errs.New("pitch not available for override")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ExtraCatalog supplies the priced add-on definitions at checkout.
type ExtraCatalog interface {
	Catalog(ctx context.Context) ([]booking.Extra, error)
}

type CreateBookingParams struct {
	UserID    uuid.UUID
	StartDate string
	EndDate   string
	Guest     booking.Guest
	Extras    []booking.ExtraSelection
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.ReservationView, error)
	AssignPitchOverride(ctx context.Context, reservationID uuid.UUID, pitchID int32) error
	ExpireStaleHolds(ctx context.Context) (int64, error)
}

type bookingCommandsImpl struct {
	uow                shared.UnitOfWork
	extras             ExtraCatalog
	reservationQueries queries.ReservationQueries
	clock              clock.Clock
	cfg                config.BookingConfig
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	extras ExtraCatalog,
	reservationQueries queries.ReservationQueries,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:                uow,
		extras:             extras,
		reservationQueries: reservationQueries,
		clock:              clk,
		cfg:                cfg,
	}
}

// CreateBooking prices the stay, then runs the check-then-assign sequence
// as one atomic unit: first free pitch (lowest id, no holding reservation
// or block overlapping the stay) is bound to the new reservation before
// anything commits.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.ReservationView, error) {
	stay, err := schedule.ParseRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	guest, err := booking.NewGuest(params.Guest.FullName, params.Guest.DNI, params.Guest.Phone, params.Guest.LicensePlate)
	if err != nil {
		return nil, errs.Mark(err, ErrBadGuest)
	}

	catalog, err := c.extras.Catalog(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	lines, err := booking.PriceExtras(catalog, params.Extras, stay.Nights())
	if err != nil {
		return nil, errs.Mark(err, ErrBadExtras)
	}

	res, err := booking.NewReservation(params.UserID, stay, c.cfg.NightlyCents, lines, guest, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	err = c.uow.WithinAssignment(ctx, func(ctx context.Context, tx shared.Tx) error {
		pitchID, err := tx.Pitches().FirstAvailable(ctx, stay, nil)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoAvailability
			}
			return err
		}
		res.AssignPitch(pitchID)

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}

		for i := range lines {
			lines[i].ReservationID = res.ID()
		}
		return tx.Reservations().AddExtraLines(ctx, lines)
	})
	if err != nil {
		return nil, c.mapAssignmentErr(err)
	}

	view, err := c.reservationQueries.GetByID(ctx, res.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// AssignPitchOverride is the operator escape hatch: bind a reservation to
// a specific pitch. The target must be free for the stay; the check and
// the write share the assignment's atomic unit.
func (c *bookingCommandsImpl) AssignPitchOverride(ctx context.Context, reservationID uuid.UUID, pitchID int32) error {
	err := c.uow.WithinAssignment(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}

		free, err := tx.Pitches().IsFree(ctx, pitchID, res.Stay(), res.ID())
		if err != nil {
			return err
		}
		if !free {
			return ErrPitchUnavailable
		}
		return tx.Reservations().UpdatePitch(ctx, res.ID(), pitchID)
	})
	return c.mapAssignmentErr(err)
}

func (c *bookingCommandsImpl) ExpireStaleHolds(ctx context.Context) (int64, error) {
	cutoff := c.clock.Now().Add(-c.cfg.HoldTTL)

	var expired int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reservations().CancelUnpaidCreatedBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		expired = n
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return expired, nil
}

func (c *bookingCommandsImpl) mapAssignmentErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, ErrNoAvailability),
		errs.Is(err, ErrPitchUnavailable):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case infra.IsKind(err, infra.KindConflict),
		errs.Is(err, shared.ErrTxRetriesExhausted):
		return errs.Mark(err, ErrAssignmentConflict)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
