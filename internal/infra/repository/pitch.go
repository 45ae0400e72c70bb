package repository

import (
	"context"

	"github.com/google/uuid"

	"campground/internal/domain/schedule"
	"campground/internal/infra"
	"campground/internal/infra/db"
	"campground/internal/pkg/pgconv"
)

// assignmentLockKey serializes pitch assignment across sessions. A single
// key is enough for a fleet this size and keeps lock ordering trivial.
const assignmentLockKey = 815031

type PitchRepository struct {
	db db.DBTX
}

func NewPitchRepository(dbtx db.DBTX) *PitchRepository {
	return &PitchRepository{db: dbtx}
}

// AcquireAssignmentLock takes the transaction-scoped advisory lock that
// serializes concurrent check-then-assign attempts. Released on commit
// or rollback.
func (r *PitchRepository) AcquireAssignmentLock(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, assignmentLockKey); err != nil {
		return infra.WrapRepoErr("failed to acquire assignment lock", err)
	}
	return nil
}

// FirstAvailable returns the lowest-id active pitch with no holding
// reservation and no block overlapping the stay. Overlap is filtered
// server-side with the half-open predicate (start_on < end AND
// end_on > start). KindNotFound signals no availability.
func (r *PitchRepository) FirstAvailable(ctx context.Context, stay schedule.Range, exclude *int32) (int32, error) {
	const q = `
		SELECT p.id
		FROM pitches p
		WHERE p.active
		  AND ($3::integer IS NULL OR p.id <> $3)
		  AND NOT EXISTS (
			SELECT 1 FROM reservations r
			WHERE r.pitch_id = p.id
			  AND r.payment_status IN ('unpaid', 'pending', 'paid')
			  AND r.start_on < $2 AND r.end_on > $1
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM blocks b
			WHERE b.pitch_id = p.id
			  AND b.start_on < $2 AND b.end_on > $1
		  )
		ORDER BY p.id
		LIMIT 1`

	var id int32
	err := r.db.QueryRow(ctx, q, stay.Start(), stay.End(), pgconv.Int32PtrToPgtype(exclude)).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("no pitch available for range", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find available pitch", err)
	}
	return id, nil
}

// IsFree reports whether the specific pitch is active and has neither a
// holding reservation nor a block overlapping the stay. The reservation
// identified by ignoreReservation is excluded from the conflict check so
// an existing booking can be re-pinned onto its own pitch.
func (r *PitchRepository) IsFree(ctx context.Context, pitchID int32, stay schedule.Range, ignoreReservation uuid.UUID) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM pitches p
			WHERE p.id = $1
			  AND p.active
			  AND NOT EXISTS (
				SELECT 1 FROM reservations r
				WHERE r.pitch_id = p.id
				  AND r.id <> $4
				  AND r.payment_status IN ('unpaid', 'pending', 'paid')
				  AND r.start_on < $3 AND r.end_on > $2
			  )
			  AND NOT EXISTS (
				SELECT 1 FROM blocks b
				WHERE b.pitch_id = p.id
				  AND b.start_on < $3 AND b.end_on > $2
			  )
		)`

	var free bool
	if err := r.db.QueryRow(ctx, q, pitchID, stay.Start(), stay.End(), ignoreReservation).Scan(&free); err != nil {
		return false, infra.WrapRepoErr("failed to check pitch availability", err)
	}
	return free, nil
}
