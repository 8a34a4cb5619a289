package rideshare

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Driver holds a driver's identity and the rides assigned to it.
// The driver does not own its rides.
type Driver struct {
	id     string
	name   string
	rating float64

	mu    sync.RWMutex
	rides []*Ride
}

// NewDriver creates a Driver, an empty id is replaced with a generated one
func NewDriver(id, name string, rating float64) *Driver {
	if id == "" {
		id = uuid.NewString()
	}
	return &Driver{
		id:     id,
		name:   name,
		rating: rating,
	}
}

func (d *Driver) ID() string      { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Rating() float64 { return d.rating }

// AddRide appends ride to the driver's assigned rides
func (d *Driver) AddRide(ride *Ride) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rides = append(d.rides, ride)
}

// Rides returns the assigned rides in the order they were added
func (d *Driver) Rides() []*Ride {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*Ride(nil), d.rides...)
}

// RideCount returns the number of assigned rides
func (d *Driver) RideCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.rides)
}

// WriteReport writes the driver info block to w
func (d *Driver) WriteReport(w io.Writer) error {
	_, err := fmt.Fprintf(w, "--- Driver Info ---\nID: %s | Name: %s | Rating: %.1f/5.0\nCompleted Rides: %d\n\n",
		d.id, d.name, d.rating, d.RideCount())
	return err
}

// Report returns the driver info block
func (d *Driver) Report() string {
	var b strings.Builder
	_ = d.WriteReport(&b)
	return b.String()
}
