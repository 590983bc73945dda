package outfit

import (
	"fmt"
	"strings"

	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// SectionMarker is the top-level marker a well-formed generated
// recommendation must contain. Responses without it trigger the creative
// retry, then the deterministic fallback.
const SectionMarker = "🎽"

func weatherLines(snap weather.Snapshot, style query.Style) string {
	return fmt.Sprintf(`- Temperature: %s°C (feels like %s°C)
- Humidity: %d%%
- Wind: %s km/h
- Conditions: %s
- Style: %s`,
		formatNumber(snap.Temperature), formatNumber(snap.FeelsLike),
		snap.Humidity, formatNumber(snap.WindSpeed), snap.Condition, style)
}

// primaryPrompt is the structured first-attempt prompt.
func primaryPrompt(snap weather.Snapshot, location string, style query.Style, isFuture bool) string {
	city := snap.City
	if city == "" {
		city = location
	}
	timeContext := "current"
	if isFuture {
		timeContext = "forecasted"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are WeatherWear, an expert fashion stylist who creates detailed, creative, and personalized outfit recommendations.
Create a comprehensive outfit recommendation for %s, %s with the following weather:
%s
- Time context: %s

Structure your response EXACTLY like this format with emojis and sections:

🎽 Your Look, Tailored to [Weather Description] & [Location Vibe]
[Weather mood description]: [Creative description of conditions]

[Detailed clothing recommendations organized by category:]
🧢 Top Layer: [Specific item with creative description]
👕 Mid-Layer: [Specific item with style notes]
👖 Bottoms: [Specific item with practical benefits]
👟 Shoes: [Specific footwear with weather considerations]
🧤 Accessories: [1-2 key accessories with style reasoning]

🧠 Smart Layering Tip:
[Professional styling advice specific to the weather and style]

🌍 Local Flavor Add-On:
[Cultural or location-specific styling suggestion that locals would wear]

🎒 Your Pack & Prep List:
[5-6 practical items with emojis, each on a new line starting with emoji]

🎵 [Creative playlist name related to weather/location] 🎧

💬 Confidence Closer:
[Motivational closing that ties together the weather, location, and style preference. Should be 2-3 sentences ending with a confident quote.]

Make it creative, detailed, and weather-appropriate for %s style. Use vivid descriptions and practical advice.`,
		city, snap.Country, weatherLines(snap, style), timeContext, style)
	return b.String()
}

// creativePrompt is the higher-temperature second attempt used when the first
// response comes back without the expected section marker.
func creativePrompt(snap weather.Snapshot, location string, style query.Style) string {
	city := snap.City
	if city == "" {
		city = location
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are WeatherWear, the world's most creative and diverse fashion stylist who creates stunning, unique outfit recommendations.
Create an absolutely captivating outfit recommendation for %s, %s with this weather:
%s

Be EXTREMELY creative, diverse, and impressive. Use vivid language, unexpected combinations, and trendy details.

Structure your response EXACTLY like this format:

🎽 Your Look, Tailored to [Creative Weather Description] & [Location Vibe]
[Poetic weather mood description with personality and flair]

🧢 Top Layer: [Ultra-specific trendy item with creative description and styling details]
👕 Mid-Layer: [Innovative layering piece with color/texture details and style reasoning]
👖 Bottoms: [Fashion-forward bottom with cut, fit, and trend details]
👟 Shoes: [Stylish footwear with brand vibes and weather-specific features]
🧤 Accessories: [2-3 statement accessories with styling impact and practical benefits]

🧠 Smart Layering Tip:
[Professional styling secret with specific technique for the weather and style - be detailed and expert-level]

🌍 Local Flavor Add-On:
[Cultural fashion insight specific to the location with local style trends and colors]

🎒 Your Pack & Prep List:
[6 practical items with emojis, each with specific brand vibes or creative descriptions]

🎵 [Ultra-creative playlist name mixing weather/location/style] 🎧

💬 Confidence Closer:
[Motivational, inspiring closer that makes them feel like a fashion icon. End with a powerful quote in quotes.]

Make this recommendation UNFORGETTABLE - use unexpected color combinations, trendy pieces, street style inspiration, and make them feel like they're walking a runway in %s!`,
		city, snap.Country, weatherLines(snap, style), city)
	return b.String()
}
