package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from config.yaml (if present), the environment and
// a discovered .env file, then applies defaults and validates required keys.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env in a few locations so the binary works from the repo
// root and from cmd/ subdirectories.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}
	for _, p := range possiblePaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "weatherwear"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Weather.TimeoutMS == 0 {
		cfg.Weather.TimeoutMS = 10000
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "llama-3.1-70b-versatile"
	}
	if cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.LLM.TimeoutMS == 0 {
		cfg.LLM.TimeoutMS = 30000
	}
	if cfg.Geolocation.IPInfoURL == "" {
		cfg.Geolocation.IPInfoURL = "https://ipinfo.io/json"
	}
	if cfg.Geolocation.NominatimURL == "" {
		cfg.Geolocation.NominatimURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geolocation.UserAgent == "" {
		cfg.Geolocation.UserAgent = "weatherwear"
	}
	if cfg.Geolocation.TimeoutMS == 0 {
		cfg.Geolocation.TimeoutMS = 5000
	}
	if cfg.Geolocation.FallbackCity == "" {
		cfg.Geolocation.FallbackCity = "New York"
		cfg.Geolocation.FallbackLat = 40.7128
		cfg.Geolocation.FallbackLon = -74.0060
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":5000"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

// overrideFromEnv applies the well-known environment variables directly, so a
// bare .env with the original variable names keeps working.
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("OPENWEATHERMAP_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("GROQ_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("WEATHERWEAR_ADDR"); v != "" {
		cfg.Server.Address = v
	}
}
