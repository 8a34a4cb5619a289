package rideshare

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const banner = "Processing Ride Sharing System Operations...\n\n"

var (
	ErrNilRide       = errors.New("ride is nil")
	ErrDuplicateRide = errors.New("ride already registered")
)

// System owns the rides of a session and hands them out
// to drivers and riders by reference
type System struct {
	log   *zap.Logger
	rides []*Ride
	index map[string]*Ride
}

// NewSystem creates a System, a nil logger discards all logs
func NewSystem(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &System{
		log:   logger,
		index: make(map[string]*Ride),
	}
}

// AddRide registers ride with the system
func (s *System) AddRide(ride *Ride) error {
	if ride == nil {
		return ErrNilRide
	}
	if _, ok := s.index[ride.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRide, ride.ID())
	}

	s.rides = append(s.rides, ride)
	s.index[ride.ID()] = ride
	s.log.Debug("ride registered",
		zap.String("ride_id", ride.ID()),
		zap.Stringer("variant", ride.Variant()),
		zap.Float64("distance", ride.Distance()),
		zap.Float64("fare", float64(ride.Fare())),
	)

	return nil
}

// Ride looks up a registered ride by id
func (s *System) Ride(id string) (*Ride, bool) {
	ride, ok := s.index[id]
	return ride, ok
}

// Rides returns the registered rides in registration order
func (s *System) Rides() []*Ride {
	return append([]*Ride(nil), s.rides...)
}

// Dispatch has rider request every registered ride and assigns each one to driver
func (s *System) Dispatch(driver *Driver, rider *Rider) {
	for _, ride := range s.rides {
		rider.RequestRide(ride)
		driver.AddRide(ride)
	}

	s.log.Debug("rides dispatched",
		zap.String("driver_id", driver.ID()),
		zap.String("rider_id", rider.ID()),
		zap.Int("rides", len(s.rides)),
	)
}

// Run dispatches the registered rides and writes the session report to w:
// the banner, the driver info and the rider's ride history
func (s *System) Run(w io.Writer, driver *Driver, rider *Rider) error {
	if _, err := io.WriteString(w, banner); err != nil {
		return err
	}

	s.Dispatch(driver, rider)

	if err := driver.WriteReport(w); err != nil {
		return fmt.Errorf("driver report: %w", err)
	}
	if err := rider.WriteHistory(w); err != nil {
		return fmt.Errorf("ride history: %w", err)
	}

	return nil
}
