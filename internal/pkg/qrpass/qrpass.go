package qrpass

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidPass = errors.New("invalid access pass")
	ErrExpiredPass = errors.New("access pass expired")
)

type Claims struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	jwt.RegisteredClaims
}

// Issuer mints the short-lived opaque pass embedded in the gate QR
// payload. Each mint is independent; clients re-issue on a fixed cadence
// matching the validity window, so a presented pass is verifiable as
// "current" purely by its signature and expiry.
type Issuer struct {
	secretKey []byte
	validity  time.Duration
}

func NewIssuer(secretKey string, validity time.Duration) *Issuer {
	return &Issuer{
		secretKey: []byte(secretKey),
		validity:  validity,
	}
}

func (i *Issuer) Validity() time.Duration {
	return i.validity
}

func (i *Issuer) Mint(reservationID uuid.UUID, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.validity)
	claims := Claims{
		ReservationID: reservationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	pass, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return pass, expiresAt, nil
}

// Verify is the primitive handed to the gate-side verification service:
// it checks signature and expiry and returns the bound reservation.
func (i *Issuer) Verify(pass string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(pass, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidPass
		}
		return i.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredPass
		}
		return uuid.Nil, ErrInvalidPass
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrInvalidPass
	}
	return claims.ReservationID, nil
}
