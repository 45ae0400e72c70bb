package repository

import (
	"context"
	"errors"
	"time"

	"campground/internal/domain/booking"
	"campground/internal/domain/schedule"
	"campground/internal/infra"
	"campground/internal/infra/db"
	"campground/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/google/uuid"
)

const pgErrCodeExclusionViolation = "23P01"

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) error {
	const q = `
		INSERT INTO reservations (
			id, user_id, pitch_id, start_on, end_on, payment_status,
			nightly_amount_cents, total_amount_cents,
			full_name, dni, phone, license_plate, access_expires_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	guest := res.Guest()
	_, err := r.db.Exec(ctx, q,
		res.ID(), res.UserID(), pgconv.Int32PtrToPgtype(res.PitchID()),
		res.Stay().Start(), res.Stay().End(), res.Status().String(),
		res.NightlyAmountCents(), res.TotalAmountCents(),
		guest.FullName, guest.DNI, guest.Phone, guest.LicensePlate,
		pgconv.TimePtrToPgtype(res.AccessExpiresAt()), res.CreatedAt(),
	)
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr("overlapping hold on pitch", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) AddExtraLines(ctx context.Context, lines []booking.ExtraLine) error {
	const q = `
		INSERT INTO reservation_extras (
			reservation_id, extra_id, code, quantity, unit_amount_cents, line_total_cents
		) VALUES ($1, $2, $3, $4, $5, $6)`

	for _, l := range lines {
		if _, err := r.db.Exec(ctx, q,
			l.ReservationID, l.ExtraID, l.Code, l.Quantity, l.UnitAmountCents, l.LineTotalCents,
		); err != nil {
			return infra.WrapRepoErr("failed to insert extra line", err)
		}
	}
	return nil
}

// FindByIDForUpdate loads a reservation with a row lock so status and
// pitch updates read-modify-write safely within the enclosing tx.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	const q = reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, q, id))
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.PaymentStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET payment_status = $2 WHERE id = $1`, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdatePitch(ctx context.Context, id uuid.UUID, pitchID int32) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET pitch_id = $2 WHERE id = $1`, id, pitchID)
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr("overlapping hold on pitch", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update reservation pitch", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ListPaidEndingAfter returns paid reservations on a pitch whose stay is
// still upcoming or in progress at the cutoff: the reassignment set.
func (r *ReservationRepository) ListPaidEndingAfter(ctx context.Context, pitchID int32, cutoff time.Time) ([]*booking.Reservation, error) {
	const q = reservationColumns + `
		FROM reservations
		WHERE pitch_id = $1 AND payment_status = 'paid' AND end_on > $2
		ORDER BY start_on`

	rows, err := r.db.Query(ctx, q, pitchID, schedule.Truncate(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list paid reservations", err)
	}
	defer rows.Close()

	var out []*booking.Reservation
	for rows.Next() {
		res, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return out, nil
}

// CancelUnpaidCreatedBefore expires stale checkout holds, releasing their
// pitches for new assignments.
func (r *ReservationRepository) CancelUnpaidCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations SET payment_status = 'canceled'
		 WHERE payment_status = 'unpaid' AND created_at < $1`, cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel stale holds", err)
	}
	return tag.RowsAffected(), nil
}

const reservationColumns = `
	SELECT id, user_id, pitch_id, start_on, end_on, payment_status,
	       nightly_amount_cents, total_amount_cents,
	       full_name, dni, phone, license_plate, access_expires_at, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ReservationRepository) scanOne(row rowScanner) (*booking.Reservation, error) {
	var (
		id, userID      uuid.UUID
		pitchID         pgtype.Int4
		startOn, endOn  time.Time
		status          string
		nightly, total  int64
		fullName, dni   string
		phone, plate    string
		accessExpiresAt pgtype.Timestamptz
		createdAt       time.Time
	)
	err := row.Scan(&id, &userID, &pitchID, &startOn, &endOn, &status,
		&nightly, &total, &fullName, &dni, &phone, &plate, &accessExpiresAt, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	stay, err := schedule.NewRange(startOn, endOn)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has invalid range", err)
	}

	return booking.ReconstructReservation(
		id, userID,
		pgconv.Int32PtrFromPgtype(pitchID),
		stay,
		booking.PaymentStatus(status),
		nightly, total,
		booking.Guest{FullName: fullName, DNI: dni, Phone: phone, LicensePlate: plate},
		pgconv.TimePtrFromPgtype(accessExpiresAt),
		createdAt,
	), nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeExclusionViolation
}
