package weather

import "time"

// Snapshot is a single point-in-time weather reading, normalized to the
// fields consumed downstream. Metric units throughout.
type Snapshot struct {
	Temperature float64   `json:"temperature"` // Celsius
	FeelsLike   float64   `json:"feelsLike"`   // Celsius
	Humidity    int       `json:"humidity"`    // percentage
	WindSpeed   float64   `json:"windSpeed"`   // km/h
	Condition   string    `json:"condition"`   // description text, e.g. "light rain"
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Timestamp   time.Time `json:"timestamp"`
}

// IsZero reports whether the snapshot carries no data. Forecast selection over
// an empty series yields a zero snapshot; callers treat it as "no data".
func (s Snapshot) IsZero() bool {
	return s == Snapshot{}
}

// Coordinates is an optional lat/lon pair. When present it takes precedence
// over the location name in outbound queries.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Series is an ordered, chronological forecast series. Per-sample entries omit
// the top-level city metadata, which lives on the series itself.
type Series struct {
	City    string     `json:"city"`
	Country string     `json:"country"`
	Samples []Snapshot `json:"samples"`
}

// ClosestTo selects the sample minimizing the absolute distance to target.
// Iteration follows the series' natural chronological order, so the first
// minimal value wins and ties are stable. The series' city metadata is
// attached to the chosen sample, since per-sample entries omit it. An empty
// series yields a zero snapshot.
func (s Series) ClosestTo(target time.Time) Snapshot {
	var chosen Snapshot
	var found bool
	var best time.Duration

	for _, sample := range s.Samples {
		diff := sample.Timestamp.Sub(target)
		if diff < 0 {
			diff = -diff
		}
		if !found || diff < best {
			found = true
			best = diff
			chosen = sample
		}
	}

	if !found {
		return Snapshot{}
	}
	chosen.City = s.City
	chosen.Country = s.Country
	return chosen
}
