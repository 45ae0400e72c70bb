package repository

import (
	"context"

	"campground/internal/domain/pitch"
	"campground/internal/infra"
	"campground/internal/infra/db"
	"campground/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockRepository struct {
	db db.DBTX
}

func NewBlockRepository(dbtx db.DBTX) *BlockRepository {
	return &BlockRepository{db: dbtx}
}

func (r *BlockRepository) Create(ctx context.Context, b pitch.Block) error {
	const q = `
		INSERT INTO blocks (id, pitch_id, start_on, end_on, kind, reason)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q,
		b.ID, b.PitchID, b.Window.Start(), b.Window.End(),
		string(b.Kind), pgconv.StringPtrToPgtype(b.Reason))
	if err != nil {
		return infra.WrapRepoErr("failed to create block", err)
	}
	return nil
}

func (r *BlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blocks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete block", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("block not found", nil, infra.KindNotFound)
	}
	return nil
}
