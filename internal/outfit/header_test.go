package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

func TestMoodTag(t *testing.T) {
	tests := []struct {
		name      string
		style     query.Style
		condition string
		expected  string
	}{
		{"casual clear", query.StyleCasual, "clear sky", "Effortless Sunshine Vibes"},
		{"casual clouds", query.StyleCasual, "scattered clouds", "Cozy Urban Explorer"},
		{"formal rain", query.StyleFormal, "light rain", "Executive Weather Warrior"},
		{"sporty snow", query.StyleSporty, "heavy snow", "Winter Sports Enthusiast"},
		{"mist falls outside the table", query.StyleCasual, "mist", "Casual & Weather-Ready"},
		{"unknown condition defaults to clear", query.StyleSporty, "dust storm", "Athletic Sunshine Ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MoodTag(tt.style, tt.condition))
		})
	}
}

func TestDescribeWeather(t *testing.T) {
	tests := []struct {
		name     string
		snap     weather.Snapshot
		expected string
	}{
		{
			name:     "known phrase, mild numbers",
			snap:     weather.Snapshot{Condition: "clear sky", Temperature: 18, WindSpeed: 5},
			expected: "Bright & Beautiful",
		},
		{
			name:     "unknown condition title-cased",
			snap:     weather.Snapshot{Condition: "volcanic ash", Temperature: 18, WindSpeed: 5},
			expected: "Volcanic Ash",
		},
		{
			name:     "breezy between 15 and 25",
			snap:     weather.Snapshot{Condition: "clear sky", Temperature: 18, WindSpeed: 18},
			expected: "Bright & Beautiful & Breezy",
		},
		{
			name:     "windy at 25",
			snap:     weather.Snapshot{Condition: "clear sky", Temperature: 18, WindSpeed: 25},
			expected: "Bright & Beautiful & Windy",
		},
		{
			name:     "cool between 5 and 10",
			snap:     weather.Snapshot{Condition: "mist", Temperature: 8, WindSpeed: 5},
			expected: "Mysterious & Misty & Cool",
		},
		{
			name:     "cold at 5",
			snap:     weather.Snapshot{Condition: "snow", Temperature: 5, WindSpeed: 5},
			expected: "Winter Wonderland & Cold",
		},
		{
			name:     "warm between 25 and 30",
			snap:     weather.Snapshot{Condition: "few clouds", Temperature: 27, WindSpeed: 5},
			expected: "Partly Cloudy & Pleasant & Warm",
		},
		{
			name:     "hot at 30",
			snap:     weather.Snapshot{Condition: "clear sky", Temperature: 30, WindSpeed: 5},
			expected: "Bright & Beautiful & Hot",
		},
		{
			name:     "wind and temperature qualifiers stack",
			snap:     weather.Snapshot{Condition: "overcast clouds", Temperature: 3, WindSpeed: 30},
			expected: "Moody & Atmospheric & Windy & Cold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DescribeWeather(tt.snap))
		})
	}
}
