package booking

import (
	"errors"
	"strings"
)

// Money is an integer cent amount. All pricing goes through it so cent
// arithmetic never mixes with float math.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

var ErrIncompleteGuest = errors.New("guest snapshot is incomplete")

// Guest is the identity snapshot captured at checkout time. Format
// validation of the individual fields happens at the client boundary;
// here only presence matters.
type Guest struct {
	FullName     string
	DNI          string
	Phone        string
	LicensePlate string
}

func NewGuest(fullName, dni, phone, plate string) (Guest, error) {
	g := Guest{
		FullName:     strings.TrimSpace(fullName),
		DNI:          strings.ToUpper(strings.TrimSpace(dni)),
		Phone:        strings.TrimSpace(phone),
		LicensePlate: strings.ToUpper(strings.TrimSpace(plate)),
	}
	if g.FullName == "" || g.DNI == "" || g.Phone == "" || g.LicensePlate == "" {
		return Guest{}, ErrIncompleteGuest
	}
	return g, nil
}
