//go:build unit

package qrpass_test

import (
	"testing"
	"time"

	"campground/internal/pkg/qrpass"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndVerify(t *testing.T) {
	issuer := qrpass.NewIssuer("test-pass-secret", 45*time.Second)
	reservationID := uuid.New()
	now := time.Now()

	pass, expiresAt, err := issuer.Mint(reservationID, now)
	require.NoError(t, err)
	assert.NotEmpty(t, pass)
	assert.Equal(t, now.Add(45*time.Second).Unix(), expiresAt.Unix())

	got, err := issuer.Verify(pass)
	require.NoError(t, err)
	assert.Equal(t, reservationID, got)
}

func TestVerifyRejectsExpiredPass(t *testing.T) {
	issuer := qrpass.NewIssuer("test-pass-secret", 45*time.Second)

	// Minted far enough in the past that the expiry has lapsed.
	pass, _, err := issuer.Mint(uuid.New(), time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = issuer.Verify(pass)
	assert.ErrorIs(t, err, qrpass.ErrExpiredPass)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	issuer := qrpass.NewIssuer("test-pass-secret", 45*time.Second)
	other := qrpass.NewIssuer("another-secret", 45*time.Second)

	pass, _, err := other.Mint(uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = issuer.Verify(pass)
	assert.ErrorIs(t, err, qrpass.ErrInvalidPass)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := qrpass.NewIssuer("test-pass-secret", 45*time.Second)

	_, err := issuer.Verify("not-a-jwt")
	assert.ErrorIs(t, err, qrpass.ErrInvalidPass)
}

func TestEachMintIsIndependent(t *testing.T) {
	issuer := qrpass.NewIssuer("test-pass-secret", 45*time.Second)
	id := uuid.New()
	now := time.Now()

	first, _, err := issuer.Mint(id, now)
	require.NoError(t, err)
	second, _, err := issuer.Mint(id, now)
	require.NoError(t, err)

	// Distinct token ids make every mint a fresh pass.
	assert.NotEqual(t, first, second)
}
