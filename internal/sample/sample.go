// Package sample holds the fixed demo data of the rideshare CLI.
package sample

import "github.com/cubny/rideshare"

type rideSpec struct {
	id, pickup, dropoff string
	distance            float64
	variant             rideshare.Variant
}

var rides = []rideSpec{
	{"S101", "Downtown", "Airport", 15.5, rideshare.Standard},
	{"P202", "Luxury Hotel", "Convention Center", 5.2, rideshare.Premium},
	{"S103", "Suburb A", "Suburb B", 8.0, rideshare.Standard},
}

// Rides creates the demo rides, two Standard and one Premium
func Rides() ([]*rideshare.Ride, error) {
	out := make([]*rideshare.Ride, 0, len(rides))
	for _, spec := range rides {
		ride, err := rideshare.NewRide(spec.id, spec.pickup, spec.dropoff, spec.distance, spec.variant)
		if err != nil {
			return nil, err
		}
		out = append(out, ride)
	}
	return out, nil
}

func Driver() *rideshare.Driver {
	return rideshare.NewDriver("D77", "John Doe", 4.8)
}

func Rider() *rideshare.Rider {
	return rideshare.NewRider("R55", "Alice Smith")
}
