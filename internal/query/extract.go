// Package query extracts time and location intent from free-text queries.
//
// Extraction is deliberately heuristic: fixed keyword tables evaluated once,
// top to bottom, first match wins. It is not a calendar or NLP parser.
package query

import (
	"strings"
	"time"
)

// futureKeywords mark a query as referring to a future time.
var futureKeywords = []string{
	"tomorrow", "next", "later", "upcoming",
	"evening", "night", "afternoon", "morning",
}

// timeRule is one entry in the ordered offset-refinement table. The first rule
// whose match function returns true determines the hour offset; ties between
// keywords are resolved purely by table order.
type timeRule struct {
	match  func(q string) bool
	offset func(q string, now time.Time) int
}

var timeRules = []timeRule{
	{
		// "tomorrow" takes precedence over any same-day keyword.
		match: func(q string) bool { return strings.Contains(q, "tomorrow") },
		offset: func(q string, _ time.Time) int {
			switch {
			case strings.Contains(q, "afternoon"):
				return 30
			case strings.Contains(q, "evening") || strings.Contains(q, "night"):
				return 36
			default:
				// "tomorrow morning" and bare "tomorrow" both land here.
				return 24
			}
		},
	},
	{
		match: func(q string) bool {
			return strings.Contains(q, "evening") || strings.Contains(q, "night")
		},
		offset: func(_ string, now time.Time) int {
			return hoursUntil(18, now)
		},
	},
	{
		match: func(q string) bool { return strings.Contains(q, "afternoon") },
		offset: func(_ string, now time.Time) int {
			return hoursUntil(12, now)
		},
	},
	{
		// Bare future keyword ("later", "upcoming", "next", "morning") with no
		// refinement rule: keep is_future but offset 0, which degenerates to a
		// current-weather lookup downstream.
		match:  func(string) bool { return true },
		offset: func(string, time.Time) int { return 0 },
	},
}

func hoursUntil(hour int, now time.Time) int {
	if d := hour - now.Hour(); d > 0 {
		return d
	}
	return 0
}

// ExtractTime scans the query for future-indicating keywords and buckets the
// result into an approximate hour offset. now supplies the local clock for the
// same-day evening/afternoon branches.
func ExtractTime(query string, now time.Time) TimeIntent {
	q := strings.ToLower(query)

	if !containsAny(q, futureKeywords) {
		return TimeIntent{}
	}

	for _, rule := range timeRules {
		if rule.match(q) {
			return TimeIntent{IsFuture: true, HoursOffset: rule.offset(q, now)}
		}
	}
	return TimeIntent{IsFuture: true}
}

// locationShortcuts trigger the current-location sentinel; matching is
// case-insensitive substring search anywhere in the query.
var locationShortcuts = []string{
	"here", "my location", "my city", "current location",
	"my area", "where i am", "current position",
}

// timePhrases are stripped literally from the query before tokenizing.
// Ordered longest-first so compound phrases like "tomorrow evening" are
// removed whole rather than leaving a dangling time-of-day token behind.
var timePhrases = []string{
	"tomorrow afternoon", "tomorrow evening", "tomorrow night",
	"tomorrow morning", "in the morning", "this afternoon",
	"this evening", "tomorrow", "tonight", "today",
	"next week", "weekend",
}

var stopwords = map[string]bool{
	"in": true, "at": true, "for": true, "the": true, "a": true, "an": true,
}

// ExtractLocation pulls the most likely place name out of the query. The
// result may legitimately be empty; callers must treat that as a resolution
// failure. No validation of plausibility happens here, the weather lookup is
// the actual validator.
func ExtractLocation(query string) LocationIntent {
	q := strings.ToLower(query)

	for _, shortcut := range locationShortcuts {
		if strings.Contains(q, shortcut) {
			return LocationIntent{CurrentLocation: true}
		}
	}

	for _, phrase := range timePhrases {
		q = strings.ReplaceAll(q, phrase, "")
	}

	var kept []string
	for _, word := range strings.Fields(q) {
		if !stopwords[word] {
			kept = append(kept, word)
		}
	}

	return LocationIntent{Name: strings.TrimSpace(strings.Join(kept, " "))}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
