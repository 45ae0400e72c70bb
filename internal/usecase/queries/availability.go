package queries

import (
	"context"
	"time"

	"campground/internal/domain/schedule"
	"campground/internal/pkg/errs"
)

var ErrInvalidWindow = errs.New("invalid availability window")

// maxSoldOutWindowDays bounds the calendar scan a single request may ask for.
const maxSoldOutWindowDays = 366

type AvailabilityReadStore interface {
	// SoldOutDates returns the dates in [from, to) with no bookable pitch:
	// every active pitch is either held by a reservation or blocked.
	SoldOutDates(ctx context.Context, window schedule.Range) ([]time.Time, error)
	ListActiveExtras(ctx context.Context) ([]*ExtraView, error)
	ListBlocks(ctx context.Context) ([]*BlockView, error)
}

type AvailabilityQueries interface {
	SoldOutDates(ctx context.Context, from, to string) ([]string, error)
	ListExtras(ctx context.Context) ([]*ExtraView, error)
	ListBlocks(ctx context.Context) ([]*BlockView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) SoldOutDates(ctx context.Context, from, to string) ([]string, error) {
	window, err := schedule.ParseRange(from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidWindow)
	}
	if window.Nights() > maxSoldOutWindowDays {
		return nil, ErrInvalidWindow
	}

	dates, err := q.store.SoldOutDates(ctx, window)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(schedule.DateLayout)
	}
	return out, nil
}

func (q *availabilityQueriesImpl) ListExtras(ctx context.Context) ([]*ExtraView, error) {
	return q.store.ListActiveExtras(ctx)
}

func (q *availabilityQueriesImpl) ListBlocks(ctx context.Context) ([]*BlockView, error) {
	return q.store.ListBlocks(ctx)
}
