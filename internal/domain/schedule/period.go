package schedule

import (
	"errors"
	"time"
)

type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

var ErrInvalidPeriodKind = errors.New("invalid period kind")

func (k PeriodKind) IsValid() bool {
	switch k {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}

// Period is a reporting window identified by a kind and any date inside it.
type Period struct {
	Kind   PeriodKind
	Anchor time.Time
}

func NewPeriod(kind PeriodKind, anchor time.Time) (Period, error) {
	if !kind.IsValid() {
		return Period{}, ErrInvalidPeriodKind
	}
	return Period{Kind: kind, Anchor: Truncate(anchor)}, nil
}

// Bounds expands the period into its date range. Weeks are ISO weeks
// (Monday-based), months and years follow the calendar.
func (p Period) Bounds() Range {
	a := Truncate(p.Anchor)
	var start, end time.Time
	switch p.Kind {
	case PeriodDay:
		start = a
		end = a.AddDate(0, 0, 1)
	case PeriodWeek:
		offset := (int(a.Weekday()) + 6) % 7
		start = a.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 7)
	case PeriodMonth:
		start = time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, 0)
	case PeriodYear:
		start = time.Date(a.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(1, 0, 0)
	default:
		start = a
		end = a.AddDate(0, 0, 1)
	}
	// Constructed bounds are always valid, the error path is unreachable.
	r, _ := NewRange(start, end)
	return r
}
