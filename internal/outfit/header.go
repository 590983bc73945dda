package outfit

import (
	"fmt"
	"strings"

	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// conditionCategories is an ordered table; the first key found as a substring
// of the condition description wins, defaulting to "clear".
var conditionCategories = []string{"clear", "cloud", "rain", "snow", "mist", "fog"}

func conditionCategory(condition string) string {
	cond := strings.ToLower(condition)
	for _, key := range conditionCategories {
		if strings.Contains(cond, key) {
			return key
		}
	}
	return "clear"
}

type moodKey struct {
	Style    query.Style
	Category string
}

var moodTags = map[moodKey]string{
	{query.StyleCasual, "clear"}:  "Effortless Sunshine Vibes",
	{query.StyleCasual, "cloud"}:  "Cozy Urban Explorer",
	{query.StyleCasual, "rain"}:   "Chic Storm Chaser",
	{query.StyleCasual, "snow"}:   "Winter Wonderland Wanderer",
	{query.StyleFormal, "clear"}:  "Polished Perfection",
	{query.StyleFormal, "cloud"}:  "Sophisticated City Dweller",
	{query.StyleFormal, "rain"}:   "Executive Weather Warrior",
	{query.StyleFormal, "snow"}:   "Elegant Winter Professional",
	{query.StyleSporty, "clear"}:  "Athletic Sunshine Ready",
	{query.StyleSporty, "cloud"}:  "Urban Athlete Meets Cool Breeze",
	{query.StyleSporty, "rain"}:   "Storm-Proof Fitness Champion",
	{query.StyleSporty, "snow"}:   "Winter Sports Enthusiast",
}

// MoodTag derives a mood label from the style and condition category,
// defaulting to a templated tag for combinations outside the table.
func MoodTag(style query.Style, condition string) string {
	if tag, ok := moodTags[moodKey{style, conditionCategory(condition)}]; ok {
		return tag
	}
	return fmt.Sprintf("%s & Weather-Ready", style.Title())
}

var conditionPhrases = map[string]string{
	"clear":            "Bright & Beautiful",
	"clear sky":        "Bright & Beautiful",
	"few clouds":       "Partly Cloudy & Pleasant",
	"scattered clouds": "Cloudy with Character",
	"broken clouds":    "Dramatically Overcast",
	"overcast clouds":  "Moody & Atmospheric",
	"light rain":       "Gentle Drizzle",
	"moderate rain":    "Refreshing Rainfall",
	"heavy rain":       "Intense Downpour",
	"light snow":       "Delicate Snowfall",
	"snow":             "Winter Wonderland",
	"mist":             "Mysterious & Misty",
	"fog":              "Dreamy & Ethereal",
}

// DescribeWeather turns a condition description plus numeric readings into a
// display phrase. Wind past 15 km/h adds "Breezy", upgraded to "Windy" at 25;
// temperatures at or below 10° add "Cool" ("Cold" at or below 5°), and at or
// above 25° add "Warm" ("Hot" from 30° up).
func DescribeWeather(snap weather.Snapshot) string {
	desc, ok := conditionPhrases[strings.ToLower(snap.Condition)]
	if !ok {
		desc = titleCase(snap.Condition)
	}

	if snap.WindSpeed > 15 {
		if snap.WindSpeed < 25 {
			desc += " & Breezy"
		} else {
			desc += " & Windy"
		}
	}

	switch {
	case snap.Temperature <= 10:
		if snap.Temperature > 5 {
			desc += " & Cool"
		} else {
			desc += " & Cold"
		}
	case snap.Temperature >= 25:
		if snap.Temperature < 30 {
			desc += " & Warm"
		} else {
			desc += " & Hot"
		}
	}

	return desc
}
