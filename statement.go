package rideshare

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrMalformedRecord = errors.New("malformed ride record")

// Line is a slice of strings
type Line []string

const rideRecordFields = 5

// ReadRides reads rides from CSV records of the form
// (id, variant, pickup, dropoff, distance)
func ReadRides(r io.Reader) ([]*Ride, error) {
	in := csv.NewReader(r)
	in.FieldsPerRecord = rideRecordFields
	in.TrimLeadingSpace = true

	var rides []*Ride
	for n := 1; ; n++ {
		record, err := in.Read()
		switch {
		case err == io.EOF:
			return rides, nil
		case err != nil:
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}

		ride, err := rideFromLine(Line(record))
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		rides = append(rides, ride)
	}
}

// rideFromLine creates a Ride out of a tuple of strings
func rideFromLine(line Line) (*Ride, error) {
	variant, err := ParseVariant(line[1])
	if err != nil {
		return nil, err
	}

	distance, err := strconv.ParseFloat(line[4], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: distance %q", ErrMalformedRecord, line[4])
	}

	return NewRide(line[0], line[2], line[3], distance, variant)
}

// WriteStatement writes one (id, variant, fare) CSV record per ride to w
func WriteStatement(w io.Writer, rides []*Ride) error {
	output := csv.NewWriter(w)
	for _, ride := range rides {
		fare := strconv.FormatFloat(float64(ride.Fare()), 'f', 2, 64)
		record := Line{ride.ID(), ride.Variant().String(), fare}
		if err := output.Write(record); err != nil {
			return err
		}
	}

	output.Flush()
	return output.Error()
}
