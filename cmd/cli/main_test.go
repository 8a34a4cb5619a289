package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const expected = `Processing Ride Sharing System Operations...

--- Driver Info ---
ID: D77 | Name: John Doe | Rating: 4.8/5.0
Completed Rides: 3

--- Ride History for Alice Smith ---
[STANDARD RIDE] Ride ID: S101
From: Downtown To: Airport
Distance: 15.5 miles
Total Fare: $28.25
--------------------------
[PREMIUM RIDE] Ride ID: P202
From: Luxury Hotel To: Convention Center
Distance: 5.2 miles
Total Fare: $25.60
--------------------------
[STANDARD RIDE] Ride ID: S103
From: Suburb A To: Suburb B
Distance: 8.0 miles
Total Fare: $17.00
--------------------------
`

func TestRun(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, zap.NewNop()))
	assert.Equal(t, expected, out.String())
}
