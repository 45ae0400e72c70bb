//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"campground/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to DB failure", func(t *testing.T) {
		err := infra.WrapRepoErr("insert failed", errors.New("connection reset"))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
		assert.Contains(t, err.Error(), "DB_FAILURE")
		assert.Contains(t, err.Error(), "insert failed")
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("wrapped cause stays reachable", func(t *testing.T) {
		cause := errors.New("violates exclusion constraint")
		err := infra.WrapRepoErr("overlapping hold on pitch", cause, infra.KindConflict)

		assert.True(t, infra.IsKind(err, infra.KindConflict))
		assert.Contains(t, err.Error(), cause.Error())
	})

	t.Run("foreign errors match no kind", func(t *testing.T) {
		err := errors.New("plain error")
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
		assert.False(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindConflict))
	})
}
