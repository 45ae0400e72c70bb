//go:build unit

package booking_test

import (
	"testing"

	"campground/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []booking.Extra {
	return []booking.Extra{
		{ID: 1, Code: "PERSON", Name: "Persona adicional", UnitAmountCents: 500, Active: true, Kind: booking.ExtraMetered, MaxUnits: 4},
		{ID: 2, Code: "PET", Name: "Mascota", UnitAmountCents: 200, Active: true, Kind: booking.ExtraMetered, MaxUnits: 4},
		{ID: 3, Code: "POWER", Name: "Conexión eléctrica", UnitAmountCents: 300, Active: true, Kind: booking.ExtraToggle, MaxUnits: 1},
		{ID: 4, Code: "OLD", Name: "Retired add-on", UnitAmountCents: 100, Active: false, Kind: booking.ExtraMetered, MaxUnits: 4},
	}
}

func TestPriceExtras(t *testing.T) {
	t.Run("prices quantity times nights times unit", func(t *testing.T) {
		lines, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 1, Quantity: 2},
			{ExtraID: 3, Quantity: 1},
		}, 3)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.Equal(t, int64(2*3*500), lines[0].LineTotalCents)
		assert.Equal(t, "PERSON", lines[0].Code)
		assert.Equal(t, int64(1*3*300), lines[1].LineTotalCents)
		assert.Equal(t, "POWER", lines[1].Code)
		assert.Equal(t, int64(3900), booking.ExtrasTotal(lines).Cents())
	})

	t.Run("zero quantity selections are skipped", func(t *testing.T) {
		lines, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 1, Quantity: 0},
		}, 2)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("unknown extra", func(t *testing.T) {
		_, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 99, Quantity: 1},
		}, 2)
		assert.ErrorIs(t, err, booking.ErrUnknownExtra)
	})

	t.Run("inactive extra", func(t *testing.T) {
		_, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 4, Quantity: 1},
		}, 2)
		assert.ErrorIs(t, err, booking.ErrInactiveExtra)
	})

	t.Run("toggle quantity above one", func(t *testing.T) {
		_, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 3, Quantity: 2},
		}, 2)
		assert.ErrorIs(t, err, booking.ErrExtraQuantity)
	})

	t.Run("metered quantity above cap", func(t *testing.T) {
		_, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 1, Quantity: 5},
		}, 2)
		assert.ErrorIs(t, err, booking.ErrExtraQuantity)
	})

	t.Run("metered quantity at cap", func(t *testing.T) {
		lines, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 2, Quantity: 4},
		}, 2)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, int64(4*2*200), lines[0].LineTotalCents)
	})

	t.Run("duplicate selection", func(t *testing.T) {
		_, err := booking.PriceExtras(testCatalog(), []booking.ExtraSelection{
			{ExtraID: 1, Quantity: 1},
			{ExtraID: 1, Quantity: 2},
		}, 2)
		assert.ErrorIs(t, err, booking.ErrDuplicateExtra)
	})
}
