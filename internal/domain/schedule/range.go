package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("range end must be after start")

const DateLayout = "2006-01-02"

// Range is a half-open date interval [start, end): a stay occupies the
// nights start..end-1 and checkout day equals the next guest's check-in day.
type Range struct {
	start time.Time
	end   time.Time
}

func NewRange(start, end time.Time) (Range, error) {
	s := Truncate(start)
	e := Truncate(end)
	if !e.After(s) {
		return Range{}, ErrInvalidRange
	}
	return Range{start: s, end: e}, nil
}

func ParseRange(start, end string) (Range, error) {
	s, err := time.ParseInLocation(DateLayout, start, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.ParseInLocation(DateLayout, end, time.UTC)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return NewRange(s, e)
}

// Truncate normalizes an instant to its UTC calendar date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r Range) Start() time.Time { return r.start }
func (r Range) End() time.Time   { return r.end }

func (r Range) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Overlaps reports whether the two intervals share at least one night.
// Adjacent ranges ([a,b) and [b,c)) do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// ContainsDay reports whether the given date is one of the occupied nights.
func (r Range) ContainsDay(day time.Time) bool {
	d := Truncate(day)
	return !d.Before(r.start) && d.Before(r.end)
}

// CoversInstant reports whether an instant falls inside the stay. The
// checkout boundary is exclusive, matching the night semantics.
func (r Range) CoversInstant(t time.Time) bool {
	return !t.Before(r.start) && t.Before(r.end)
}

// EndsAfter reports whether the stay is still in progress or upcoming
// at the given instant.
func (r Range) EndsAfter(t time.Time) bool {
	return r.end.After(t)
}

// Days yields each occupied night in ascending order.
func (r Range) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r Range) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format(DateLayout), r.end.Format(DateLayout))
}
