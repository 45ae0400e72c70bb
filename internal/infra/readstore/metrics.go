package readstore

import (
	"context"
	"time"

	"campground/internal/domain/pitch"
	"campground/internal/domain/schedule"
	"campground/internal/infra"
	"campground/internal/infra/db"
	"campground/internal/pkg/pgconv"
	"campground/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MetricsReadStore struct {
	db db.DBTX
}

func NewMetricsReadStore(dbtx db.DBTX) *MetricsReadStore {
	return &MetricsReadStore{db: dbtx}
}

// PaidStaysTouching uses a relaxed predicate (end_on >= window start
// instead of >) so that stays checking out on the window's first day are
// included for check-out counting.
func (r *MetricsReadStore) PaidStaysTouching(ctx context.Context, window schedule.Range) ([]queries.StayRow, error) {
	const q = `
		SELECT id, pitch_id, start_on, end_on, nightly_amount_cents
		FROM reservations
		WHERE payment_status = 'paid'
		  AND start_on < $2 AND end_on >= $1`

	rows, err := r.db.Query(ctx, q, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list paid stays", err)
	}
	defer rows.Close()

	var out []queries.StayRow
	for rows.Next() {
		var (
			id             uuid.UUID
			pitchID        pgtype.Int4
			startOn, endOn time.Time
			nightly        int64
		)
		if err := rows.Scan(&id, &pitchID, &startOn, &endOn, &nightly); err != nil {
			return nil, infra.WrapRepoErr("failed to scan paid stay", err)
		}
		stay, err := schedule.NewRange(startOn, endOn)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has invalid range", err)
		}
		out = append(out, queries.StayRow{
			ID:                 id,
			PitchID:            pgconv.Int32PtrFromPgtype(pitchID),
			Stay:               stay,
			NightlyAmountCents: nightly,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate paid stays", err)
	}
	return out, nil
}

func (r *MetricsReadStore) ExtrasRevenueByCode(ctx context.Context, window schedule.Range) (map[string]int64, error) {
	const q = `
		SELECT re.code, COALESCE(SUM(re.line_total_cents), 0)
		FROM reservation_extras re
		JOIN reservations res ON res.id = re.reservation_id
		WHERE res.payment_status = 'paid'
		  AND res.start_on < $2 AND res.end_on > $1
		GROUP BY re.code`

	rows, err := r.db.Query(ctx, q, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate extras revenue", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			code  string
			cents int64
		)
		if err := rows.Scan(&code, &cents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extras revenue", err)
		}
		out[code] = cents
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extras revenue", err)
	}
	return out, nil
}

func (r *MetricsReadStore) ListPitches(ctx context.Context) ([]pitch.Pitch, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, active FROM pitches ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pitches", err)
	}
	defer rows.Close()

	var out []pitch.Pitch
	for rows.Next() {
		var p pitch.Pitch
		if err := rows.Scan(&p.ID, &p.Name, &p.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pitch", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pitches", err)
	}
	return out, nil
}

func (r *MetricsReadStore) BlocksCoveringDay(ctx context.Context, day time.Time) ([]pitch.Block, error) {
	const q = `
		SELECT id, pitch_id, start_on, end_on, kind, reason
		FROM blocks
		WHERE start_on <= $1 AND end_on > $1`

	d := schedule.Truncate(day)
	rows, err := r.db.Query(ctx, q, d)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocks for day", err)
	}
	defer rows.Close()

	var out []pitch.Block
	for rows.Next() {
		var (
			b              pitch.Block
			startOn, endOn time.Time
			kind           string
			reason         pgtype.Text
		)
		if err := rows.Scan(&b.ID, &b.PitchID, &startOn, &endOn, &kind, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan block", err)
		}
		window, err := schedule.NewRange(startOn, endOn)
		if err != nil {
			return nil, infra.WrapRepoErr("stored block has invalid range", err)
		}
		b.Window = window
		b.Kind = pitch.BlockKind(kind)
		b.Reason = pgconv.StringPtrFromPgtype(reason)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocks", err)
	}
	return out, nil
}

func (r *MetricsReadStore) PaidOccupanciesCoveringDay(ctx context.Context, day time.Time) ([]queries.OccupancyRow, error) {
	const q = `
		SELECT pitch_id, start_on, end_on
		FROM reservations
		WHERE payment_status = 'paid'
		  AND pitch_id IS NOT NULL
		  AND start_on <= $1 AND end_on > $1`

	d := schedule.Truncate(day)
	rows, err := r.db.Query(ctx, q, d)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupancies for day", err)
	}
	defer rows.Close()

	var out []queries.OccupancyRow
	for rows.Next() {
		var (
			pitchID        int32
			startOn, endOn time.Time
		)
		if err := rows.Scan(&pitchID, &startOn, &endOn); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy", err)
		}
		stay, err := schedule.NewRange(startOn, endOn)
		if err != nil {
			return nil, infra.WrapRepoErr("stored reservation has invalid range", err)
		}
		out = append(out, queries.OccupancyRow{PitchID: pitchID, Stay: stay})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupancies", err)
	}
	return out, nil
}
