package pitch

import (
	"time"

	"campground/internal/domain/schedule"
)

// Status is derived, never stored: maintenance wins over occupied, which
// wins over free. The same derivation serves the live dashboard grid
// ("as of now") and the reassignment engine ("as of a future range").
type Status string

const (
	StatusFree        Status = "free"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
)

// Occupancy is the reservation data the derivation needs: the stay of a
// paid reservation currently bound to the pitch.
type Occupancy struct {
	Stay schedule.Range
}

// DeriveStatus computes the pitch state at instant t from its blocks and
// paid reservations.
func DeriveStatus(p Pitch, blocks []Block, paid []Occupancy, t time.Time) Status {
	if !p.Active {
		return StatusInactive
	}
	occupied := false
	for _, b := range blocks {
		if b.PitchID != p.ID || !b.Window.CoversInstant(t) {
			continue
		}
		if b.Kind == BlockMaintenance {
			return StatusMaintenance
		}
		occupied = true
	}
	if occupied {
		return StatusOccupied
	}
	for _, o := range paid {
		if o.Stay.CoversInstant(t) {
			return StatusOccupied
		}
	}
	return StatusFree
}
