package readstore

import (
	"context"
	"time"

	"campground/internal/domain/schedule"
	"campground/internal/infra"
	"campground/internal/infra/db"
	"campground/internal/pkg/pgconv"
	"campground/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

// SoldOutDates walks the calendar server-side: a date is sold out when no
// active pitch is free of holds and blocks for that night.
func (r *AvailabilityReadStore) SoldOutDates(ctx context.Context, window schedule.Range) ([]time.Time, error) {
	const q = `
		SELECT d::date
		FROM generate_series($1::date, $2::date - 1, interval '1 day') AS d
		WHERE NOT EXISTS (
			SELECT 1 FROM pitches p
			WHERE p.active
			  AND NOT EXISTS (
				SELECT 1 FROM reservations r
				WHERE r.pitch_id = p.id
				  AND r.payment_status IN ('unpaid', 'pending', 'paid')
				  AND r.start_on <= d AND r.end_on > d
			  )
			  AND NOT EXISTS (
				SELECT 1 FROM blocks b
				WHERE b.pitch_id = p.id
				  AND b.start_on <= d AND b.end_on > d
			  )
		)
		ORDER BY d`

	rows, err := r.db.Query(ctx, q, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute sold-out dates", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, infra.WrapRepoErr("failed to scan sold-out date", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sold-out dates", err)
	}
	return dates, nil
}

func (r *AvailabilityReadStore) ListActiveExtras(ctx context.Context) ([]*queries.ExtraView, error) {
	const q = `
		SELECT id, code, name, unit_amount_cents, kind, max_units
		FROM extras WHERE active ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list extras", err)
	}
	defer rows.Close()

	var out []*queries.ExtraView
	for rows.Next() {
		var v queries.ExtraView
		if err := rows.Scan(&v.ID, &v.Code, &v.Name, &v.UnitAmountCents, &v.Kind, &v.MaxUnits); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extras", err)
	}
	return out, nil
}

func (r *AvailabilityReadStore) ListBlocks(ctx context.Context) ([]*queries.BlockView, error) {
	const q = `
		SELECT id, pitch_id, start_on, end_on, kind, reason, created_at
		FROM blocks ORDER BY start_on, pitch_id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocks", err)
	}
	defer rows.Close()

	var out []*queries.BlockView
	for rows.Next() {
		var (
			v      queries.BlockView
			reason pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.PitchID, &v.StartOn, &v.EndOn, &v.Kind, &reason, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan block", err)
		}
		v.Reason = pgconv.StringPtrFromPgtype(reason)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocks", err)
	}
	return out, nil
}
