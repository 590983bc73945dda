package query

// TimeIntent is the parsed time component of a free-text query.
// Invariant: IsFuture == false implies HoursOffset == 0.
type TimeIntent struct {
	IsFuture    bool `json:"isFuture"`
	HoursOffset int  `json:"hoursOffset"`
}

// LocationIntent is the parsed location component of a free-text query.
// CurrentLocation set means "resolve via IP geolocation, not by name".
type LocationIntent struct {
	Name            string `json:"name"`
	CurrentLocation bool   `json:"currentLocation"`
}

// IsEmpty reports whether extraction produced no usable location. Callers must
// treat this as a validation failure before any network call.
func (l LocationIntent) IsEmpty() bool {
	return !l.CurrentLocation && l.Name == ""
}

// Style is the user-selected clothing tone.
type Style string

const (
	StyleCasual Style = "casual"
	StyleFormal Style = "formal"
	StyleSporty Style = "sporty"
)

func (s Style) Title() string {
	switch s {
	case StyleCasual:
		return "Casual"
	case StyleFormal:
		return "Formal"
	case StyleSporty:
		return "Sporty"
	}
	return string(s)
}
