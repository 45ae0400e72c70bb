package queries

import (
	"context"
	"math"
	"time"

	"campground/internal/domain/pitch"
	"campground/internal/domain/schedule"
	"campground/internal/pkg/clock"
	"campground/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidPeriod = errs.New("invalid reporting period")

// StayRow is the raw reservation data the aggregation works from: one
// paid reservation whose stay touches the reporting window.
type StayRow struct {
	ID                 uuid.UUID
	PitchID            *int32
	Stay               schedule.Range
	NightlyAmountCents int64
}

// OccupancyRow ties a paid stay to its pitch for live status derivation.
type OccupancyRow struct {
	PitchID int32
	Stay    schedule.Range
}

type MetricsReadStore interface {
	// PaidStaysTouching fetches paid reservations whose range overlaps the
	// window or whose checkout day falls inside it (an adjacent-ending
	// stay contributes a check-out without overlapping).
	PaidStaysTouching(ctx context.Context, window schedule.Range) ([]StayRow, error)
	// ExtrasRevenueByCode sums line totals per extra code over paid
	// reservations overlapping the window.
	ExtrasRevenueByCode(ctx context.Context, window schedule.Range) (map[string]int64, error)
	ListPitches(ctx context.Context) ([]pitch.Pitch, error)
	BlocksCoveringDay(ctx context.Context, day time.Time) ([]pitch.Block, error)
	PaidOccupanciesCoveringDay(ctx context.Context, day time.Time) ([]OccupancyRow, error)
}

type MetricsQueries interface {
	Compute(ctx context.Context, kind schedule.PeriodKind, anchor time.Time) (*Metrics, error)
	FleetStatuses(ctx context.Context) ([]*PitchStatusView, error)
}

type metricsQueriesImpl struct {
	store MetricsReadStore
	clock clock.Clock
}

func NewMetricsQueries(store MetricsReadStore, clk clock.Clock) MetricsQueries {
	return &metricsQueriesImpl{store: store, clock: clk}
}

func (q *metricsQueriesImpl) Compute(ctx context.Context, kind schedule.PeriodKind, anchor time.Time) (*Metrics, error) {
	period, err := schedule.NewPeriod(kind, anchor)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}
	window := period.Bounds()

	stays, err := q.store.PaidStaysTouching(ctx, window)
	if err != nil {
		return nil, err
	}

	extras, err := q.store.ExtrasRevenueByCode(ctx, window)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		PeriodKind:         string(kind),
		PeriodStart:        window.Start(),
		PeriodEnd:          window.End(),
		ExtrasRevenueCents: extras,
	}

	for _, s := range stays {
		if s.Stay.Overlaps(window) {
			m.ActiveReservations++
			m.StaysRevenueCents += s.NightlyAmountCents * int64(s.Stay.Nights())
		}
		if window.ContainsDay(s.Stay.Start()) {
			m.CheckIns++
		}
		if window.ContainsDay(s.Stay.End()) {
			m.CheckOuts++
		}
	}

	m.TotalRevenueCents = m.StaysRevenueCents
	for _, cents := range extras {
		m.TotalRevenueCents += cents
	}

	if err := q.fillFleetCounts(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// fillFleetCounts computes the live pitch picture as of now, regardless
// of the reporting period.
func (q *metricsQueriesImpl) fillFleetCounts(ctx context.Context, m *Metrics) error {
	statuses, err := q.FleetStatuses(ctx)
	if err != nil {
		return err
	}

	var active int
	for _, s := range statuses {
		switch pitch.Status(s.Status) {
		case pitch.StatusOccupied:
			m.OccupiedCount++
			active++
		case pitch.StatusMaintenance:
			m.MaintenanceCount++
			active++
		case pitch.StatusFree:
			m.FreeCount++
			active++
		}
	}

	if active > 0 {
		m.OccupancyPct = int(math.Round(float64(m.OccupiedCount) / float64(active) * 100))
	}
	return nil
}

func (q *metricsQueriesImpl) FleetStatuses(ctx context.Context) ([]*PitchStatusView, error) {
	now := q.clock.Now()

	pitches, err := q.store.ListPitches(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := q.store.BlocksCoveringDay(ctx, now)
	if err != nil {
		return nil, err
	}
	occupancies, err := q.store.PaidOccupanciesCoveringDay(ctx, now)
	if err != nil {
		return nil, err
	}

	views := make([]*PitchStatusView, 0, len(pitches))
	for _, p := range pitches {
		var paid []pitch.Occupancy
		for _, o := range occupancies {
			if o.PitchID == p.ID {
				paid = append(paid, pitch.Occupancy{Stay: o.Stay})
			}
		}
		status := pitch.DeriveStatus(p, blocks, paid, now)
		views = append(views, &PitchStatusView{ID: p.ID, Name: p.Name, Status: string(status)})
	}
	return views, nil
}
