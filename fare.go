/*
	Package rideshare models a small ride-sharing domain: rides of two service tiers,
	the drivers assigned to them and the riders who requested them. It computes the
	fare of each ride from its tier and distance and renders the driver and rider
	reports as fixed-format text.
*/
package rideshare

import (
	"errors"
	"fmt"
	"strings"
)

// Price is a type for price value
type Price float64

// String renders the price with a leading dollar sign and exactly two decimals
func (p Price) String() string {
	return fmt.Sprintf("$%.2f", float64(p))
}

const (
	// fare amounts based on business rules

	fareBase            = 5.0
	fareStandardPerMile = 1.5
	farePremiumBaseMult = 2
	farePremiumPerMile  = 3.0
)

var ErrUnknownVariant = errors.New("unknown ride variant")

// Variant is the service tier of a ride, it selects the fare formula
type Variant int

const (
	Standard Variant = iota
	Premium
)

// ParseVariant returns the Variant named by s, case-insensitive
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard":
		return Standard, nil
	case "premium":
		return Premium, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) String() string {
	switch v {
	case Standard:
		return "standard"
	case Premium:
		return "premium"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Tag is the prefix printed in front of a ride's details
func (v Variant) Tag() string {
	return "[" + strings.ToUpper(v.String()) + " RIDE] "
}

func (v Variant) valid() bool {
	return v == Standard || v == Premium
}

// fare applies the tier's formula to the base fare and distance
func (v Variant) fare(base, distance float64) Price {
	switch v {
	case Premium:
		return Price(base*farePremiumBaseMult + distance*farePremiumPerMile)
	default:
		return Price(base + distance*fareStandardPerMile)
	}
}
