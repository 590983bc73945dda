// Package render formats pipeline output for terminals (ANSI) and browsers
// (HTML). Output is deterministic: the palette is emitted as literal escape
// sequences so the web adapter can translate them to markup.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SwatiRao07/WeatherWear/internal/outfit"
	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// ANSI palette.
const (
	Reset   = "\x1b[0m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"
)

// Weather renders the colorized weather block.
func Weather(snap weather.Snapshot) string {
	location := snap.City
	if location == "" {
		location = "Unknown"
	}
	if snap.Country != "" {
		location += ", " + snap.Country
	}

	lines := []string{
		fmt.Sprintf("Weather in %s%s%s:", Cyan, location, Reset),
		fmt.Sprintf("🌡️ Temperature: %s%s°C%s (feels like %s°C)", Yellow, num(snap.Temperature), Reset, num(snap.FeelsLike)),
		fmt.Sprintf("💧 Humidity: %s%d%%%s", Blue, snap.Humidity, Reset),
		fmt.Sprintf("💨 Wind: %s%s km/h%s", Green, num(snap.WindSpeed), Reset),
		fmt.Sprintf("☁️ Conditions: %s%s%s", Magenta, titleWords(snap.Condition), Reset),
	}
	return strings.Join(lines, "\n")
}

// Recommendation frames the composed text with the styled header box and
// per-section coloring.
func Recommendation(text string, snap weather.Snapshot, location string, style query.Style) string {
	city := snap.City
	if city == "" {
		city = location
	}

	rule := strings.Repeat("═", 60)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s%s\n", Cyan, rule)
	fmt.Fprintf(&b, "%s👗  WEATHERWEAR STYLE RECOMMENDATION\n", Cyan)
	fmt.Fprintf(&b, "%s%s%s\n", Cyan, rule, Reset)

	fmt.Fprintf(&b, "%s┌─ Location & Style ───────────────────────────────────────┐\n", White)
	fmt.Fprintf(&b, "%s│ 🏙️  %s%s, %s%s\n", White, Yellow, city, snap.Country, Reset)
	fmt.Fprintf(&b, "%s│ 👟  Style: %s%s & Stylish%s\n", White, Magenta, style.Title(), Reset)
	fmt.Fprintf(&b, "%s│ 🌬️  Conditions: %s%s%s\n", White, Green, outfit.DescribeWeather(snap), Reset)
	fmt.Fprintf(&b, "%s│ 💡  Mood: \"%s%s%s\"\n", White, Cyan, outfit.MoodTag(style, snap.Condition), Reset)
	fmt.Fprintf(&b, "%s└──────────────────────────────────────────────────────────┘%s\n\n", White, Reset)

	b.WriteString(colorSections(text))
	fmt.Fprintf(&b, "\n%s%s%s\n", Cyan, rule, Reset)
	return b.String()
}

// sectionColors maps the leading emoji of a recommendation line to its color.
// Evaluated in order; the first prefix match wins.
var sectionColors = []struct {
	prefix string
	color  string
	spaced bool // blank line before the section
	indent bool
}{
	{prefix: "🎽", color: Yellow, spaced: true},
	{prefix: "🧢", color: White},
	{prefix: "👕", color: White},
	{prefix: "👖", color: White},
	{prefix: "👟", color: White},
	{prefix: "🧤", color: White},
	{prefix: "🧠", color: Cyan, spaced: true},
	{prefix: "🌍", color: Green, spaced: true},
	{prefix: "🎒", color: Blue, spaced: true},
	{prefix: "🎵", color: Magenta, spaced: true},
	{prefix: "💬", color: Yellow, spaced: true},
	{prefix: "🗣️", color: Green},
	{prefix: "🧴", color: White, indent: true},
	{prefix: "🔋", color: White, indent: true},
	{prefix: "🧦", color: White, indent: true},
	{prefix: "🧃", color: White, indent: true},
	{prefix: "🧼", color: White, indent: true},
	{prefix: "🌂", color: White, indent: true},
	{prefix: "🕶️", color: White, indent: true},
}

func colorSections(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		for _, sc := range sectionColors {
			if strings.HasPrefix(line, sc.prefix) {
				if sc.spaced {
					out = append(out, "")
				}
				if sc.indent {
					out = append(out, "  "+sc.color+line+Reset)
				} else {
					out = append(out, sc.color+line+Reset)
				}
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// OutfitIntro wraps the recommendation label used by the CLI.
func OutfitIntro() string {
	return fmt.Sprintf("\n%sOutfit recommendation:%s", Green, Reset)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
