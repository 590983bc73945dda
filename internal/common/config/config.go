package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Weather     WeatherConfig     `mapstructure:"weather"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Geolocation GeolocationConfig `mapstructure:"geolocation"`
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// WeatherConfig holds OpenWeatherMap settings.
type WeatherConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	TimeoutMS int    `mapstructure:"timeout"` // milliseconds
}

// LLMConfig holds Groq chat-completion settings.
type LLMConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	BaseURL   string `mapstructure:"base_url"`
	TimeoutMS int    `mapstructure:"timeout"` // milliseconds
}

// GeolocationConfig holds IP geolocation settings and the fallback location
// used when lookup fails.
type GeolocationConfig struct {
	IPInfoURL    string  `mapstructure:"ipinfo_url"`
	NominatimURL string  `mapstructure:"nominatim_url"`
	UserAgent    string  `mapstructure:"user_agent"`
	TimeoutMS    int     `mapstructure:"timeout"` // milliseconds
	FallbackCity string  `mapstructure:"fallback_city"`
	FallbackLat  float64 `mapstructure:"fallback_lat"`
	FallbackLon  float64 `mapstructure:"fallback_lon"`
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func (c *Config) validate() error {
	if c.Weather.APIKey == "" {
		return fmt.Errorf("weather.api_key is required (set OPENWEATHERMAP_API_KEY)")
	}
	return nil
}
