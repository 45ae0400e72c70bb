//go:build unit

package booking_test

import (
	"testing"

	"campground/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("stay pricing arithmetic", func(t *testing.T) {
		nightly, err := booking.NewMoney(1500)
		require.NoError(t, err)

		extras, err := booking.NewMoney(600)
		require.NoError(t, err)

		total := nightly.MultiplyNights(3).Add(extras)
		assert.Equal(t, int64(5100), total.Cents())
	})

	t.Run("zero value is zero cents", func(t *testing.T) {
		var m booking.Money
		assert.Equal(t, int64(0), m.Cents())
	})
}
