package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

const forecastDays = 5

// Forecast renders the multi-day outlook, one line per calendar day. Each
// day is represented by its sample closest to midday (11:00-14:59), falling
// back to the first sample of the day.
func Forecast(series weather.Series) string {
	if len(series.Samples) == 0 {
		return ""
	}

	byDay := make(map[string][]weather.Snapshot)
	var order []string
	for _, s := range series.Samples {
		day := s.Timestamp.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] = append(byDay[day], s)
	}
	sort.Strings(order)
	if len(order) > forecastDays {
		order = order[:forecastDays]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s📅 5-Day Forecast for %s:%s\n", Cyan, series.City, Reset)
	for _, day := range order {
		pick := middaySample(byDay[day])
		fmt.Fprintf(&b, "%s%s (%s):%s %s%s°C, %s%s\n",
			Yellow, pick.Timestamp.Format("Monday"), pick.Timestamp.Format("2 Jan"), Reset,
			White, num(pick.Temperature), pick.Condition, Reset)
	}
	return b.String()
}

func middaySample(samples []weather.Snapshot) weather.Snapshot {
	for _, s := range samples {
		h := s.Timestamp.Hour()
		if h >= 11 && h <= 14 {
			return s
		}
	}
	return samples[0]
}
