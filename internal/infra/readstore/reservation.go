package readstore

import (
	"context"
	"time"

	"campground/internal/infra"
	"campground/internal/infra/db"
	"campground/internal/pkg/pgconv"
	"campground/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewColumns = `
	SELECT id, user_id, pitch_id, start_on, end_on, payment_status,
	       nightly_amount_cents, total_amount_cents, full_name,
	       access_expires_at, created_at`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const q = reservationViewColumns + ` FROM reservations WHERE id = $1`

	view, err := r.scanView(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachExtras(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	const q = reservationViewColumns + `
		FROM reservations WHERE user_id = $1 ORDER BY start_on`

	return r.list(ctx, q, userID)
}

func (r *ReservationReadStore) ListAll(ctx context.Context, status *string) ([]*queries.ReservationView, error) {
	const q = reservationViewColumns + `
		FROM reservations
		WHERE $1::text IS NULL OR payment_status = $1
		ORDER BY start_on DESC`

	return r.list(ctx, q, pgconv.StringPtrToPgtype(status))
}

func (r *ReservationReadStore) list(ctx context.Context, q string, arg any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, q, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var out []*queries.ReservationView
	for rows.Next() {
		view, err := r.scanView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}

	for _, view := range out {
		if err := r.attachExtras(ctx, view); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ReservationReadStore) scanView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view            queries.ReservationView
		pitchID         pgtype.Int4
		startOn, endOn  time.Time
		accessExpiresAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.UserID, &pitchID, &startOn, &endOn,
		&view.PaymentStatus, &view.NightlyAmountCents, &view.TotalAmountCents,
		&view.FullName, &accessExpiresAt, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation view", err)
	}

	view.PitchID = pgconv.Int32PtrFromPgtype(pitchID)
	view.StartOn = startOn
	view.EndOn = endOn
	view.Nights = int(endOn.Sub(startOn).Hours() / 24)
	view.AccessExpiresAt = pgconv.TimePtrFromPgtype(accessExpiresAt)
	return &view, nil
}

func (r *ReservationReadStore) attachExtras(ctx context.Context, view *queries.ReservationView) error {
	const q = `
		SELECT extra_id, code, quantity, unit_amount_cents, line_total_cents
		FROM reservation_extras WHERE reservation_id = $1 ORDER BY extra_id`

	rows, err := r.db.Query(ctx, q, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to list reservation extras", err)
	}
	defer rows.Close()

	view.Extras = []queries.ExtraLineView{}
	for rows.Next() {
		var line queries.ExtraLineView
		if err := rows.Scan(&line.ExtraID, &line.Code, &line.Quantity,
			&line.UnitAmountCents, &line.LineTotalCents); err != nil {
			return infra.WrapRepoErr("failed to scan extra line", err)
		}
		view.Extras = append(view.Extras, line)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate extra lines", err)
	}
	return nil
}
