package rideshare

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const historySeparator = "--------------------------\n"

// Rider holds a rider's identity and the rides it requested
type Rider struct {
	id   string
	name string

	mu    sync.RWMutex
	rides []*Ride
}

// NewRider creates a Rider, an empty id is replaced with a generated one
func NewRider(id, name string) *Rider {
	if id == "" {
		id = uuid.NewString()
	}
	return &Rider{
		id:   id,
		name: name,
	}
}

func (r *Rider) ID() string   { return r.id }
func (r *Rider) Name() string { return r.name }

// RequestRide appends ride to the rider's requested rides
func (r *Rider) RequestRide(ride *Ride) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rides = append(r.rides, ride)
}

// Rides returns the requested rides in the order they were requested
func (r *Rider) Rides() []*Ride {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Ride(nil), r.rides...)
}

func (r *Rider) RideCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rides)
}

// TotalSpent sums the fares of all requested rides
func (r *Rider) TotalSpent() Price {
	var total Price
	for _, ride := range r.Rides() {
		total += ride.Fare()
	}
	return total
}

// WriteHistory writes the ride history header followed by
// each requested ride's details and a separator line
func (r *Rider) WriteHistory(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "--- Ride History for %s ---\n", r.name); err != nil {
		return err
	}
	for _, ride := range r.Rides() {
		if err := ride.WriteDetails(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, historySeparator); err != nil {
			return err
		}
	}

	return nil
}

// ViewRides returns the ride history as text
func (r *Rider) ViewRides() string {
	var b strings.Builder
	_ = r.WriteHistory(&b)
	return b.String()
}
