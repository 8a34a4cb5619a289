package rideshare

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidDistance = errors.New("distance must be a finite non-negative number")

// Ride holds the facts of a single trip. A Ride is immutable once created.
type Ride struct {
	id       string
	pickup   string
	dropoff  string
	distance float64
	baseFare float64
	variant  Variant
}

// NewRide creates a Ride of the given variant.
// An empty id is replaced with a generated one.
func NewRide(id, pickup, dropoff string, distance float64, variant Variant) (*Ride, error) {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return nil, fmt.Errorf("ride %q: %w: %v", id, ErrInvalidDistance, distance)
	}
	if !variant.valid() {
		return nil, fmt.Errorf("ride %q: %w: %v", id, ErrUnknownVariant, variant)
	}
	if id == "" {
		id = uuid.NewString()
	}

	return &Ride{
		id:       id,
		pickup:   pickup,
		dropoff:  dropoff,
		distance: distance,
		baseFare: fareBase,
		variant:  variant,
	}, nil
}

// NewStandardRide is shorthand for NewRide with the Standard variant
func NewStandardRide(id, pickup, dropoff string, distance float64) (*Ride, error) {
	return NewRide(id, pickup, dropoff, distance, Standard)
}

// NewPremiumRide is shorthand for NewRide with the Premium variant
func NewPremiumRide(id, pickup, dropoff string, distance float64) (*Ride, error) {
	return NewRide(id, pickup, dropoff, distance, Premium)
}

func (r *Ride) ID() string        { return r.id }
func (r *Ride) Pickup() string    { return r.pickup }
func (r *Ride) Dropoff() string   { return r.dropoff }
func (r *Ride) Distance() float64 { return r.distance }
func (r *Ride) BaseFare() float64 { return r.baseFare }
func (r *Ride) Variant() Variant  { return r.variant }

// Fare computes the ride fare from its variant, base fare and distance
func (r *Ride) Fare() Price {
	return r.variant.fare(r.baseFare, r.distance)
}

// WriteDetails writes the ride's details block to w
func (r *Ride) WriteDetails(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%sRide ID: %s\nFrom: %s To: %s\nDistance: %.1f miles\nTotal Fare: %s\n",
		r.variant.Tag(), r.id, r.pickup, r.dropoff, r.distance, r.Fare())
	return err
}

// Describe returns the ride's details block
func (r *Ride) Describe() string {
	var b strings.Builder
	_ = r.WriteDetails(&b)
	return b.String()
}
