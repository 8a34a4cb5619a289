package rideshare

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSystem_AddRide(t *testing.T) {
	system := NewSystem(nil)
	rides := newTestRides(t, 3)
	for _, ride := range rides {
		require.NoError(t, system.AddRide(ride))
	}

	assert.ErrorIs(t, system.AddRide(nil), ErrNilRide)
	assert.ErrorIs(t, system.AddRide(rides[1]), ErrDuplicateRide)
	assert.Equal(t, rides, system.Rides())

	got, ok := system.Ride("S1")
	assert.True(t, ok)
	assert.Same(t, rides[1], got)

	_, ok = system.Ride("missing")
	assert.False(t, ok)
}

func TestSystem_Dispatch(t *testing.T) {
	system := NewSystem(nil)
	rides := newTestRides(t, 3)
	for _, ride := range rides {
		require.NoError(t, system.AddRide(ride))
	}

	driver := NewDriver("D1", "Jane", 4.5)
	rider := NewRider("R1", "Ann")
	system.Dispatch(driver, rider)

	assert.Equal(t, rides, driver.Rides())
	assert.Equal(t, rides, rider.Rides())
	// both parties share the rides owned by the system
	assert.Same(t, rides[2], driver.Rides()[2])
	assert.Same(t, driver.Rides()[0], rider.Rides()[0])
}

func TestSystem_Run(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	system := NewSystem(zap.New(core))
	for _, ride := range newTestRides(t, 3) {
		require.NoError(t, system.AddRide(ride))
	}

	out := &bytes.Buffer{}
	err := system.Run(out, NewDriver("D77", "John Doe", 4.8), NewRider("R55", "Alice Smith"))
	require.NoError(t, err)

	report := out.String()
	assert.True(t, strings.HasPrefix(report, "Processing Ride Sharing System Operations...\n\n--- Driver Info ---\n"))
	assert.Contains(t, report, "Completed Rides: 3\n\n--- Ride History for Alice Smith ---\n")
	assert.Equal(t, 3, strings.Count(report, historySeparator))
	assert.True(t, strings.HasSuffix(report, historySeparator))

	assert.Equal(t, 3, logs.FilterMessage("ride registered").Len())
	dispatched := logs.FilterMessage("rides dispatched").All()
	require.Len(t, dispatched, 1)
	assert.Equal(t, "D77", dispatched[0].ContextMap()["driver_id"])
	assert.Equal(t, int64(3), dispatched[0].ContextMap()["rides"])
}

func TestSystem_Run_WriteError(t *testing.T) {
	system := NewSystem(nil)
	err := system.Run(failingWriter{}, NewDriver("D1", "Jane", 4.5), NewRider("R1", "Ann"))
	assert.Equal(t, assert.AnError, err)
}
