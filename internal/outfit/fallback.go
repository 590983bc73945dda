package outfit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// clothingSet is one top/mid/bottom/shoes combination.
type clothingSet struct {
	Top    string
	Mid    string
	Bottom string
	Shoes  string
}

// merge applies non-empty fields of o over s.
func (s clothingSet) merge(o clothingSet) clothingSet {
	if o.Top != "" {
		s.Top = o.Top
	}
	if o.Mid != "" {
		s.Mid = o.Mid
	}
	if o.Bottom != "" {
		s.Bottom = o.Bottom
	}
	if o.Shoes != "" {
		s.Shoes = o.Shoes
	}
	return s
}

// tempBand is one entry of the ordered temperature table; the first band whose
// Min the temperature reaches wins.
type tempBand struct {
	Name string
	Min  float64
	Set  clothingSet
}

var tempBands = []tempBand{
	{
		Name: "hot", Min: 30,
		Set: clothingSet{
			Top:    "Light cotton shirt or breathable tank top",
			Mid:    "Skip the mid-layer - keep it minimal",
			Bottom: "Lightweight shorts or linen pants",
			Shoes:  "Breathable sneakers or sandals",
		},
	},
	{
		Name: "warm", Min: 25,
		Set: clothingSet{
			Top:    "Cotton t-shirt or light blouse",
			Mid:    "Light cardigan or kimono (optional)",
			Bottom: "Comfortable chinos or light jeans",
			Shoes:  "Canvas sneakers or loafers",
		},
	},
	{
		Name: "mild", Min: 20,
		Set: clothingSet{
			Top:    "Long-sleeve shirt or light sweater",
			Mid:    "Denim jacket or light hoodie",
			Bottom: "Jeans or comfortable trousers",
			Shoes:  "Sneakers or casual boots",
		},
	},
	{
		Name: "cool", Min: 15,
		Set: clothingSet{
			Top:    "Warm sweater or fleece",
			Mid:    "Light jacket or blazer",
			Bottom: "Warm pants or dark jeans",
			Shoes:  "Closed-toe shoes or ankle boots",
		},
	},
	{
		Name: "cold", Min: -1 << 30,
		Set: clothingSet{
			Top:    "Warm coat or heavy jacket",
			Mid:    "Thick sweater or hoodie",
			Bottom: "Warm pants with thermal layer",
			Shoes:  "Insulated boots or warm shoes",
		},
	},
}

func bandFor(temp float64) tempBand {
	for _, band := range tempBands {
		if temp >= band.Min {
			return band
		}
	}
	return tempBands[len(tempBands)-1]
}

// styleOverride adjusts the band's set for a style preference, branching once
// more on the 25° boundary. Empty fields keep the band value.
type styleOverride struct {
	Warm clothingSet // temp >= 25
	Cold clothingSet // temp < 25
}

var styleOverrides = map[query.Style]styleOverride{
	query.StyleFormal: {
		Warm: clothingSet{
			Top:    "Lightweight dress shirt or silk blouse",
			Bottom: "Dress pants or midi skirt",
			Shoes:  "Leather loafers or heeled sandals",
		},
		Cold: clothingSet{
			Top:    "Button-down shirt or tailored blouse",
			Mid:    "Blazer or structured cardigan",
			Bottom: "Dress pants or pencil skirt",
			Shoes:  "Oxford shoes or low heels",
		},
	},
	query.StyleSporty: {
		Warm: clothingSet{
			Top:    "Moisture-wicking athletic top",
			Bottom: "Athletic shorts or leggings",
			Shoes:  "Running shoes or training sneakers",
		},
		Cold: clothingSet{
			Top:    "Athletic long-sleeve or hoodie",
			Bottom: "Track pants or athletic leggings",
			Shoes:  "Cross-training shoes or athletic sneakers",
		},
	},
}

func clothingFor(temp float64, style query.Style) clothingSet {
	set := bandFor(temp).Set
	override, ok := styleOverrides[style]
	if !ok {
		return set
	}
	if temp >= 25 {
		return set.merge(override.Warm)
	}
	return set.merge(override.Cold)
}

// conditionRule is one entry of the ordered weather-adjustment table; the
// first matching rule supplies accessories and the adjustment sentence.
type conditionRule struct {
	match       func(s weather.Snapshot) bool
	accessories []string
	adjustment  func(s weather.Snapshot) string
}

var conditionRules = []conditionRule{
	{
		match:       func(s weather.Snapshot) bool { return strings.Contains(strings.ToLower(s.Condition), "rain") },
		accessories: []string{"Waterproof jacket or umbrella", "Water-resistant shoes"},
		adjustment: func(weather.Snapshot) string {
			return "The rain calls for waterproof layers and quick-dry materials."
		},
	},
	{
		match:       func(s weather.Snapshot) bool { return strings.Contains(strings.ToLower(s.Condition), "snow") },
		accessories: []string{"Warm hat and gloves", "Waterproof boots"},
		adjustment: func(weather.Snapshot) string {
			return "Snow means insulation is key - layer up and stay dry."
		},
	},
	{
		match:       func(s weather.Snapshot) bool { return s.WindSpeed > 15 },
		accessories: []string{"Windbreaker or scarf"},
		adjustment: func(s weather.Snapshot) string {
			return fmt.Sprintf("With %s km/h winds, wind-resistant layers will keep you comfortable.", formatNumber(s.WindSpeed))
		},
	},
	{
		match: func(s weather.Snapshot) bool { return s.Humidity > 70 },
		adjustment: func(s weather.Snapshot) string {
			return fmt.Sprintf("High humidity (%d%%) means breathable, moisture-wicking fabrics are your friend.", s.Humidity)
		},
	},
	{
		match: func(s weather.Snapshot) bool {
			cond := strings.ToLower(s.Condition)
			return strings.Contains(cond, "haze") || strings.Contains(cond, "fog")
		},
		adjustment: func(weather.Snapshot) string {
			return "Hazy conditions mean the air might feel thick - opt for breathable layers."
		},
	},
	{
		match: func(weather.Snapshot) bool { return true },
		adjustment: func(s weather.Snapshot) string {
			return fmt.Sprintf("Perfect %s weather - dress comfortably for the temperature.", s.Condition)
		},
	},
}

var defaultAccessories = []string{
	"Sunglasses for UV protection",
	"Light scarf (versatile for style or warmth)",
}

// locationTips holds city-specific styling advice keyed by lowercase city name.
var locationTips = map[string]string{
	"mumbai":    "Mumbai's coastal humidity calls for cotton and linen - avoid synthetic fabrics!",
	"delhi":     "Delhi's dry climate is perfect for layering - add a light jacket for evening temperature drops.",
	"bangalore": "Bangalore's pleasant weather is ideal for smart-casual looks with light layers.",
	"chennai":   "Chennai's heat and humidity require maximum breathability - cotton is king!",
	"kolkata":   "Kolkata's cultural vibe pairs well with comfortable yet stylish ethnic-western fusion.",
	"hyderabad": "Hyderabad's moderate climate allows for versatile styling - perfect for experimenting!",
	"pune":      "Pune's weather is ideal for outdoor activities - dress comfortably for movement.",
	"nagpur":    "Nagpur's central location means variable weather - layering is your best strategy!",
}

func locationTip(city string) string {
	if tip, ok := locationTips[strings.ToLower(city)]; ok {
		return tip
	}
	return fmt.Sprintf("Local %s style embraces comfort with a touch of regional flair!", city)
}

// playlists are keyed by temperature band name.
var playlists = map[string]string{
	"hot":  "Tropical Chill Vibes",
	"warm": "Sunny Day Grooves",
	"mild": "Perfect Weather Playlist",
	"cool": "Cozy Comfort Tunes",
	"cold": "Winter Warmth Beats",
}

// Fallback composes a recommendation without any external call. It is a pure
// function of the snapshot, location label and style; identical inputs always
// yield identical text.
func Fallback(snap weather.Snapshot, location string, style query.Style) string {
	city := snap.City
	if city == "" {
		city = location
	}

	set := clothingFor(snap.Temperature, style)

	var accessories []string
	var adjustment string
	for _, rule := range conditionRules {
		if rule.match(snap) {
			accessories = rule.accessories
			adjustment = rule.adjustment(snap)
			break
		}
	}
	if len(accessories) == 0 {
		accessories = defaultAccessories
	}

	band := bandFor(snap.Temperature)
	playlist := playlists[band.Name]

	layeringNote := ""
	if snap.Temperature < 25 {
		layeringNote = " Light layers you can add or remove are key for comfort."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎽 Your Look, Tailored to %s & %s Vibes\n", titleCase(snap.Condition), city)
	fmt.Fprintf(&b, "%s At %s°C (feels like %s°C), comfort meets style effortlessly.\n\n",
		adjustment, formatNumber(snap.Temperature), formatNumber(snap.FeelsLike))

	fmt.Fprintf(&b, "🧢 Top Layer: %s\n", set.Top)
	fmt.Fprintf(&b, "👕 Mid-Layer: %s\n", set.Mid)
	fmt.Fprintf(&b, "👖 Bottoms: %s\n", set.Bottom)
	fmt.Fprintf(&b, "👟 Shoes: %s\n", set.Shoes)
	fmt.Fprintf(&b, "🧤 Accessories: %s\n\n", strings.Join(accessories, " and "))

	fmt.Fprintf(&b, "🧠 Smart Layering Tip:\n")
	fmt.Fprintf(&b, "With %s°C weather and %d%% humidity, focus on breathable materials that can adapt as temperatures change throughout the day.%s\n\n",
		formatNumber(snap.Temperature), snap.Humidity, layeringNote)

	fmt.Fprintf(&b, "🌍 Local Flavor Add-On:\n%s\n\n", locationTip(city))

	fmt.Fprintf(&b, "🎒 Your Pack & Prep List:\n")
	for _, item := range packList(snap) {
		fmt.Fprintf(&b, "%s\n", item)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "🎵 %s 🎧\n\n", playlist)

	fmt.Fprintf(&b, "💬 Confidence Closer:\n")
	fmt.Fprintf(&b, "Perfect weather calls for perfect style! You're dressed to embrace %s's %s°C %s with confidence and comfort. Whether you're exploring the city or enjoying a casual day out, your look says effortless sophistication.\n",
		city, formatNumber(snap.Temperature), snap.Condition)
	fmt.Fprintf(&b, "🗣️ \"Weather-ready and style-perfect - bring on the day!\"")

	return b.String()
}

func packList(snap weather.Snapshot) []string {
	warm := snap.Temperature >= 25
	items := []string{
		pick(warm, "🧴 Sunscreen SPF 30+", "🧴 Light moisturizer"),
		"🔋 Portable phone charger",
		pick(warm, "🧦 Moisture-wicking socks", "🧦 Comfortable cotton socks"),
		pick(warm, "🧃 Insulated water bottle - stay hydrated!", "🧃 Warm drink in a thermos"),
		pick(warm, "🧼 Cooling face wipes", "🧼 Hand sanitizer and tissues"),
	}
	if strings.Contains(strings.ToLower(snap.Condition), "rain") {
		items = append(items, "🌂 Compact umbrella")
	} else {
		items = append(items, "🕶️ Sunglasses for eye protection")
	}
	return items
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// formatNumber renders floats without a trailing ".0" for whole values.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
