//go:build unit

package booking_test

import (
	"testing"
	"time"

	"campground/internal/domain/booking"
	"campground/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, start, end string) schedule.Range {
	t.Helper()
	r, err := schedule.ParseRange(start, end)
	require.NoError(t, err)
	return r
}

func mustGuest(t *testing.T) booking.Guest {
	t.Helper()
	g, err := booking.NewGuest("Ana García", "12345678z", "+34600111222", "1234abc")
	require.NoError(t, err)
	return g
}

func TestNewReservation(t *testing.T) {
	stay := mustStay(t, "2026-07-10", "2026-07-13")
	now := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	t.Run("prices stay plus extras", func(t *testing.T) {
		lines := []booking.ExtraLine{
			{ExtraID: 1, Code: "PERSON", Quantity: 2, UnitAmountCents: 500, LineTotalCents: 3000},
			{ExtraID: 3, Code: "POWER", Quantity: 1, UnitAmountCents: 300, LineTotalCents: 900},
		}

		res, err := booking.NewReservation(uuid.New(), stay, 1500, lines, mustGuest(t), now)
		require.NoError(t, err)

		assert.Equal(t, booking.StatusUnpaid, res.Status())
		assert.Nil(t, res.PitchID())
		// 3 nights * 1500 + 3000 + 900
		assert.Equal(t, int64(8400), res.TotalAmountCents())
		assert.Equal(t, now, res.CreatedAt())
	})

	t.Run("negative nightly rejected", func(t *testing.T) {
		_, err := booking.NewReservation(uuid.New(), stay, -1, nil, mustGuest(t), now)
		assert.Error(t, err)
	})

	t.Run("guest snapshot normalized", func(t *testing.T) {
		g := mustGuest(t)
		assert.Equal(t, "12345678Z", g.DNI)
		assert.Equal(t, "1234ABC", g.LicensePlate)
	})

	t.Run("incomplete guest rejected", func(t *testing.T) {
		_, err := booking.NewGuest("Ana García", "", "+34600111222", "1234ABC")
		assert.ErrorIs(t, err, booking.ErrIncompleteGuest)
	})
}

func TestPaymentTransitions(t *testing.T) {
	cases := []struct {
		from, to booking.PaymentStatus
		allowed  bool
	}{
		{booking.StatusUnpaid, booking.StatusPending, true},
		{booking.StatusUnpaid, booking.StatusPaid, true},
		{booking.StatusUnpaid, booking.StatusCanceled, true},
		{booking.StatusPending, booking.StatusPaid, true},
		{booking.StatusPaid, booking.StatusRefunded, true},
		{booking.StatusUnpaid, booking.StatusRefunded, false},
		{booking.StatusPending, booking.StatusUnpaid, false},
		{booking.StatusPending, booking.StatusCanceled, false},
		{booking.StatusPaid, booking.StatusPending, false},
		{booking.StatusRefunded, booking.StatusPaid, false},
		{booking.StatusCanceled, booking.StatusUnpaid, false},
	}

	for _, tc := range cases {
		name := string(tc.from) + "->" + string(tc.to)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	t.Run("entity transition mutates on success only", func(t *testing.T) {
		res, err := booking.NewReservation(uuid.New(), mustStay(t, "2026-07-10", "2026-07-13"), 1500, nil, mustGuest(t), time.Now())
		require.NoError(t, err)

		require.NoError(t, res.Transition(booking.StatusPending))
		assert.Equal(t, booking.StatusPending, res.Status())

		err = res.Transition(booking.StatusUnpaid)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		assert.Equal(t, booking.StatusPending, res.Status())
	})
}

func TestHoldsPitch(t *testing.T) {
	res, err := booking.NewReservation(uuid.New(), mustStay(t, "2026-07-10", "2026-07-13"), 1500, nil, mustGuest(t), time.Now())
	require.NoError(t, err)

	assert.True(t, res.HoldsPitch(), "unpaid holds")
	require.NoError(t, res.Transition(booking.StatusPaid))
	assert.True(t, res.HoldsPitch(), "paid holds")
	require.NoError(t, res.Transition(booking.StatusRefunded))
	assert.False(t, res.HoldsPitch(), "refunded releases")
}

func TestAccessWindow(t *testing.T) {
	stay := mustStay(t, "2026-07-10", "2026-07-13")

	t.Run("defaults to two hours before check-in until end of stay", func(t *testing.T) {
		start, end := booking.AccessWindow(stay.Start(), stay.End(), nil)
		assert.Equal(t, time.Date(2026, 7, 9, 22, 0, 0, 0, time.UTC), start)
		assert.Equal(t, stay.End(), end)
	})

	t.Run("override shortens the window", func(t *testing.T) {
		override := time.Date(2026, 7, 11, 12, 0, 0, 0, time.UTC)
		_, end := booking.AccessWindow(stay.Start(), stay.End(), &override)
		assert.Equal(t, override, end)
	})

	t.Run("entity window honors boundaries", func(t *testing.T) {
		res, err := booking.NewReservation(uuid.New(), stay, 1500, nil, mustGuest(t), time.Now())
		require.NoError(t, err)

		assert.False(t, res.InAccessWindow(time.Date(2026, 7, 9, 21, 59, 59, 0, time.UTC)))
		assert.True(t, res.InAccessWindow(time.Date(2026, 7, 9, 22, 0, 0, 0, time.UTC)))
		assert.True(t, res.InAccessWindow(time.Date(2026, 7, 12, 23, 59, 0, 0, time.UTC)))
		assert.False(t, res.InAccessWindow(time.Date(2026, 7, 13, 0, 0, 1, 0, time.UTC)))
	})
}
