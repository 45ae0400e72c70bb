package pitch

import (
	"errors"

	"campground/internal/domain/schedule"

	"github.com/google/uuid"
)

// Pitch is a physical camping spot. The fleet is provisioned out of
// band; a pitch is deactivated by flag and never deleted while
// reservations reference it.
type Pitch struct {
	ID     int32
	Name   string
	Active bool
}

type BlockKind string

const (
	// BlockMaintenance makes a pitch unavailable and triggers
	// reassignment of conflicting paid reservations.
	BlockMaintenance BlockKind = "maintenance"
	// BlockOccupied is a manual hold (e.g. owner's own use); conflicting
	// reservations are left for the operator to resolve.
	BlockOccupied BlockKind = "occupied"
)

func (k BlockKind) IsValid() bool {
	return k == BlockMaintenance || k == BlockOccupied
}

var ErrInvalidBlockKind = errors.New("invalid block kind")

// Block is an operator-declared unavailability window on a pitch,
// distinct from a guest reservation.
type Block struct {
	ID      uuid.UUID
	PitchID int32
	Window  schedule.Range
	Kind    BlockKind
	Reason  *string
}

func NewBlock(pitchID int32, window schedule.Range, kind BlockKind, reason *string) (Block, error) {
	if !kind.IsValid() {
		return Block{}, ErrInvalidBlockKind
	}
	return Block{
		ID:      uuid.New(),
		PitchID: pitchID,
		Window:  window,
		Kind:    kind,
		Reason:  reason,
	}, nil
}
