package commands

import (
	"context"
	"log/slog"

	"campground/internal/domain/pitch"
	"campground/internal/domain/schedule"
	"campground/internal/infra"
	"campground/internal/pkg/clock"
	"campground/internal/pkg/errs"
	"campground/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidBlockKind = errs.New("invalid block kind")
	ErrBlockNotFound    = errs.New("block not found")
)

type CreateBlockParams struct {
	PitchID   int32
	StartDate string
	EndDate   string
	Kind      string
	Reason    *string
}

// ReassignmentReport summarizes what happened to paid reservations that
// were sitting on a newly blocked pitch. Unresolved reservations keep
// their pitch and need operator attention.
type ReassignmentReport struct {
	BlockID    uuid.UUID
	Reassigned int
	Unresolved []uuid.UUID
}

type BlockCommands interface {
	CreateBlock(ctx context.Context, params CreateBlockParams) (*ReassignmentReport, error)
	DeleteBlock(ctx context.Context, id uuid.UUID) error
}

type blockCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBlockCommands(uow shared.UnitOfWork, clk clock.Clock) BlockCommands {
	return &blockCommandsImpl{uow: uow, clock: clk}
}

// CreateBlock records the unavailability window, then, for maintenance
// blocks only, tries to move each conflicting paid reservation to
// another free pitch. The block commits regardless of how the
// reassignments go; partial success is reported, not rolled back.
func (c *blockCommandsImpl) CreateBlock(ctx context.Context, params CreateBlockParams) (*ReassignmentReport, error) {
	window, err := schedule.ParseRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStay)
	}

	blk, err := pitch.NewBlock(params.PitchID, window, pitch.BlockKind(params.Kind), params.Reason)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBlockKind)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blocks().Create(ctx, blk)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	report := &ReassignmentReport{BlockID: blk.ID}
	if blk.Kind != pitch.BlockMaintenance {
		return report, nil
	}

	c.reassignConflicting(ctx, blk, report)
	return report, nil
}

// reassignConflicting runs one assignment unit per affected reservation
// so that a single unsolvable stay does not undo the others.
func (c *blockCommandsImpl) reassignConflicting(ctx context.Context, blk pitch.Block, report *ReassignmentReport) {
	now := c.clock.Now()

	var affected []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		candidates, err := tx.Reservations().ListPaidEndingAfter(ctx, blk.PitchID, now)
		if err != nil {
			return err
		}
		for _, res := range candidates {
			if res.Stay().Overlaps(blk.Window) {
				affected = append(affected, res.ID())
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to list reservations for reassignment",
			"block_id", blk.ID, "pitch_id", blk.PitchID, "error", err)
		return
	}

	for _, id := range affected {
		if err := c.reassignOne(ctx, id, blk.PitchID); err != nil {
			slog.Warn("reservation left unresolved after block",
				"reservation_id", id, "blocked_pitch_id", blk.PitchID, "error", err)
			report.Unresolved = append(report.Unresolved, id)
			continue
		}
		report.Reassigned++
	}
}

func (c *blockCommandsImpl) reassignOne(ctx context.Context, reservationID uuid.UUID, blockedPitch int32) error {
	return c.uow.WithinAssignment(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}

		target, err := tx.Pitches().FirstAvailable(ctx, res.Stay(), &blockedPitch)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoAvailability
			}
			return err
		}
		return tx.Reservations().UpdatePitch(ctx, res.ID(), target)
	})
}

func (c *blockCommandsImpl) DeleteBlock(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blocks().Delete(ctx, id)
	})
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrBlockNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
