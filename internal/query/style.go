package query

import "strings"

// NormalizeStyle validates and normalizes a style preference. Empty input
// defaults to casual; unrecognized input also defaults to casual but reports
// warned=true so front ends can tell the user.
func NormalizeStyle(input string) (style Style, warned bool) {
	s := strings.ToLower(strings.TrimSpace(input))

	switch Style(s) {
	case StyleCasual, StyleFormal, StyleSporty:
		return Style(s), false
	}
	if s == "" {
		return StyleCasual, false
	}
	return StyleCasual, true
}
