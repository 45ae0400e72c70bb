package booking

import (
	"errors"

	"github.com/google/uuid"
)

type ExtraKind string

const (
	// ExtraToggle is an on/off add-on (e.g. electric hookup): quantity is
	// 0 or 1 and still multiplies into the per-night line total.
	ExtraToggle ExtraKind = "toggle"
	// ExtraMetered is a per-unit add-on capped at MaxUnits.
	ExtraMetered ExtraKind = "metered"
)

var (
	ErrUnknownExtra     = errors.New("unknown extra")
	ErrInactiveExtra    = errors.New("extra is not active")
	ErrExtraQuantity    = errors.New("invalid extra quantity")
	ErrDuplicateExtra   = errors.New("extra selected twice")
	ErrInvalidExtraKind = errors.New("invalid extra kind")
)

// Extra is a catalog entry for a bookable add-on.
type Extra struct {
	ID              int32
	Code            string
	Name            string
	UnitAmountCents int64
	Active          bool
	Kind            ExtraKind
	MaxUnits        int32
}

func (e Extra) maxQuantity() int32 {
	if e.Kind == ExtraToggle {
		return 1
	}
	return e.MaxUnits
}

// ExtraLine is an immutable priced line attached to a reservation at
// checkout. LineTotalCents = Quantity * nights * UnitAmountCents; a
// toggle contributes a 0/1 factor rather than a unit count.
type ExtraLine struct {
	ReservationID   uuid.UUID
	ExtraID         int32
	Code            string
	Quantity        int32
	UnitAmountCents int64
	LineTotalCents  int64
}

type ExtraSelection struct {
	ExtraID  int32
	Quantity int32
}

// PriceExtras resolves selections against the catalog and prices one line
// per selected extra for a stay of the given nights.
func PriceExtras(catalog []Extra, selections []ExtraSelection, nights int) ([]ExtraLine, error) {
	byID := make(map[int32]Extra, len(catalog))
	for _, e := range catalog {
		byID[e.ID] = e
	}

	seen := make(map[int32]bool, len(selections))
	lines := make([]ExtraLine, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity == 0 {
			continue
		}
		if seen[sel.ExtraID] {
			return nil, ErrDuplicateExtra
		}
		seen[sel.ExtraID] = true

		extra, ok := byID[sel.ExtraID]
		if !ok {
			return nil, ErrUnknownExtra
		}
		if !extra.Active {
			return nil, ErrInactiveExtra
		}
		if sel.Quantity < 0 || sel.Quantity > extra.maxQuantity() {
			return nil, ErrExtraQuantity
		}

		lines = append(lines, ExtraLine{
			ExtraID:         extra.ID,
			Code:            extra.Code,
			Quantity:        sel.Quantity,
			UnitAmountCents: extra.UnitAmountCents,
			LineTotalCents:  int64(sel.Quantity) * int64(nights) * extra.UnitAmountCents,
		})
	}
	return lines, nil
}

// ExtrasTotal sums the priced lines.
func ExtrasTotal(lines []ExtraLine) Money {
	var total Money
	for _, l := range lines {
		total = total.Add(Money{cents: l.LineTotalCents})
	}
	return total
}
