package readstore

import (
	"context"

	"campground/internal/domain/booking"
	"campground/internal/infra"
	"campground/internal/infra/db"
)

type ExtraReadStore struct {
	db db.DBTX
}

func NewExtraReadStore(dbtx db.DBTX) *ExtraReadStore {
	return &ExtraReadStore{db: dbtx}
}

// Catalog returns every extra, inactive ones included; pricing rejects
// inactive selections with a distinct error rather than "unknown".
func (r *ExtraReadStore) Catalog(ctx context.Context) ([]booking.Extra, error) {
	const q = `
		SELECT id, code, name, unit_amount_cents, active, kind, max_units
		FROM extras ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load extras catalog", err)
	}
	defer rows.Close()

	var out []booking.Extra
	for rows.Next() {
		var (
			e    booking.Extra
			kind string
		)
		if err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.UnitAmountCents, &e.Active, &kind, &e.MaxUnits); err != nil {
			return nil, infra.WrapRepoErr("failed to scan extra", err)
		}
		e.Kind = booking.ExtraKind(kind)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate extras catalog", err)
	}
	return out, nil
}
