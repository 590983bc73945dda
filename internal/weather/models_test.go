package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeries_ClosestTo(t *testing.T) {
	now := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)

	// Samples at 0,3,6,...,21 hours from now, the usual 3-hour grid.
	series := Series{City: "Tokyo", Country: "JP"}
	for i := 0; i < 8; i++ {
		series.Samples = append(series.Samples, Snapshot{
			Temperature: float64(10 + i),
			Timestamp:   now.Add(time.Duration(i*3) * time.Hour),
		})
	}

	tests := []struct {
		name       string
		hoursAhead int
		wantTemp   float64
	}{
		{"target 10h picks the 9h sample", 10, 13},
		{"target 0h picks the first sample", 0, 10},
		{"exact grid point", 12, 14},
		{"past the window clamps to the last sample", 36, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := now.Add(time.Duration(tt.hoursAhead) * time.Hour)
			got := series.ClosestTo(target)
			assert.Equal(t, tt.wantTemp, got.Temperature)
			assert.Equal(t, "Tokyo", got.City, "city metadata must be attached")
			assert.Equal(t, "JP", got.Country)
		})
	}
}

func TestSeries_ClosestTo_TieBreaksOnFirstEncountered(t *testing.T) {
	now := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
	series := Series{
		City: "Oslo",
		Samples: []Snapshot{
			{Temperature: 1, Timestamp: now.Add(3 * time.Hour)},
			{Temperature: 2, Timestamp: now.Add(6 * time.Hour)},
		},
	}

	// Target is equidistant between the two samples; the earlier one wins.
	got := series.ClosestTo(now.Add(4*time.Hour + 30*time.Minute))
	assert.Equal(t, 1.0, got.Temperature)
}

func TestSeries_ClosestTo_EmptySeries(t *testing.T) {
	got := Series{City: "Nowhere"}.ClosestTo(time.Now())
	assert.True(t, got.IsZero())
}

func TestSnapshot_IsZero(t *testing.T) {
	assert.True(t, Snapshot{}.IsZero())
	assert.False(t, Snapshot{Temperature: 0.1}.IsZero())
	assert.False(t, Snapshot{City: "Pune"}.IsZero())
}
