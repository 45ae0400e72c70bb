//go:build unit

package pitch_test

import (
	"testing"
	"time"

	"campground/internal/domain/pitch"
	"campground/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, start, end string) schedule.Range {
	t.Helper()
	r, err := schedule.ParseRange(start, end)
	require.NoError(t, err)
	return r
}

func TestDeriveStatus(t *testing.T) {
	p := pitch.Pitch{ID: 1, Name: "P-01", Active: true}
	today := time.Date(2026, 7, 11, 14, 0, 0, 0, time.UTC)

	maintenance := func(w schedule.Range) pitch.Block {
		b, err := pitch.NewBlock(1, w, pitch.BlockMaintenance, nil)
		require.NoError(t, err)
		return b
	}
	occupiedBlock := func(w schedule.Range) pitch.Block {
		b, err := pitch.NewBlock(1, w, pitch.BlockOccupied, nil)
		require.NoError(t, err)
		return b
	}

	t.Run("free when nothing touches the day", func(t *testing.T) {
		got := pitch.DeriveStatus(p, nil, nil, today)
		assert.Equal(t, pitch.StatusFree, got)
	})

	t.Run("paid stay makes it occupied", func(t *testing.T) {
		paid := []pitch.Occupancy{{Stay: window(t, "2026-07-10", "2026-07-13")}}
		got := pitch.DeriveStatus(p, nil, paid, today)
		assert.Equal(t, pitch.StatusOccupied, got)
	})

	t.Run("checkout day frees the pitch", func(t *testing.T) {
		paid := []pitch.Occupancy{{Stay: window(t, "2026-07-08", "2026-07-11")}}
		got := pitch.DeriveStatus(p, nil, paid, today)
		assert.Equal(t, pitch.StatusFree, got)
	})

	t.Run("maintenance wins over occupied", func(t *testing.T) {
		blocks := []pitch.Block{
			occupiedBlock(window(t, "2026-07-10", "2026-07-12")),
			maintenance(window(t, "2026-07-11", "2026-07-12")),
		}
		paid := []pitch.Occupancy{{Stay: window(t, "2026-07-10", "2026-07-13")}}
		got := pitch.DeriveStatus(p, blocks, paid, today)
		assert.Equal(t, pitch.StatusMaintenance, got)
	})

	t.Run("occupied block without maintenance", func(t *testing.T) {
		blocks := []pitch.Block{occupiedBlock(window(t, "2026-07-10", "2026-07-12"))}
		got := pitch.DeriveStatus(p, blocks, nil, today)
		assert.Equal(t, pitch.StatusOccupied, got)
	})

	t.Run("blocks for other pitches are ignored", func(t *testing.T) {
		b, err := pitch.NewBlock(2, window(t, "2026-07-10", "2026-07-12"), pitch.BlockMaintenance, nil)
		require.NoError(t, err)
		got := pitch.DeriveStatus(p, []pitch.Block{b}, nil, today)
		assert.Equal(t, pitch.StatusFree, got)
	})

	t.Run("inactive wins over everything", func(t *testing.T) {
		inactive := pitch.Pitch{ID: 1, Name: "P-01", Active: false}
		blocks := []pitch.Block{maintenance(window(t, "2026-07-10", "2026-07-12"))}
		got := pitch.DeriveStatus(inactive, blocks, nil, today)
		assert.Equal(t, pitch.StatusInactive, got)
	})
}

func TestNewBlock(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		_, err := pitch.NewBlock(1, window(t, "2026-07-10", "2026-07-12"), "vacation", nil)
		assert.ErrorIs(t, err, pitch.ErrInvalidBlockKind)
	})

	t.Run("assigns an id", func(t *testing.T) {
		b, err := pitch.NewBlock(1, window(t, "2026-07-10", "2026-07-12"), pitch.BlockOccupied, nil)
		require.NoError(t, err)
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", b.ID.String())
	})
}
