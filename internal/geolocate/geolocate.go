// Package geolocate resolves the user's current position via IP-based
// geolocation, optionally refined by a reverse-geocoding lookup.
package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/common/metrics"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// Place is a resolved location with coordinates.
type Place struct {
	City    string
	Country string
	Lat     float64
	Lon     float64
}

func (p Place) Label() string {
	if p.Country != "" {
		return p.City + ", " + p.Country
	}
	return p.City
}

func (p Place) Coordinates() *weather.Coordinates {
	return &weather.Coordinates{Lat: p.Lat, Lon: p.Lon}
}

type Config struct {
	IPInfoURL    string
	NominatimURL string
	UserAgent    string
	Timeout      time.Duration
	Fallback     Place
}

type Client struct {
	cfg    Config
	client *http.Client
	logger logger.Logger
}

func NewClient(cfg Config, log logger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: log.With(map[string]interface{}{"component": "geolocate"}),
	}
}

type ipinfoResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Loc     string `json:"loc"` // "lat,lon"
}

type nominatimResponse struct {
	Address struct {
		City string `json:"city"`
	} `json:"address"`
}

// Lookup resolves the caller's position by IP. On any failure it returns the
// configured fallback location and logs a warning; the caller never sees an
// error from this path.
func (c *Client) Lookup(ctx context.Context) Place {
	place, err := c.lookupByIP(ctx)
	if err != nil {
		metrics.UpstreamCalls.WithLabelValues("ipinfo", "error").Inc()
		failure := apperrors.NewGeolocationFailedError(err)
		c.logger.Warn(failure.Message, map[string]interface{}{
			"code":     string(failure.Code),
			"details":  failure.Details,
			"fallback": c.cfg.Fallback.City,
		})
		return c.cfg.Fallback
	}
	metrics.UpstreamCalls.WithLabelValues("ipinfo", "success").Inc()

	// Reverse geocoding gives a more precise city name; failures keep the
	// IP-derived one.
	city, err := c.reverseGeocode(ctx, place.Lat, place.Lon)
	if err != nil {
		metrics.UpstreamCalls.WithLabelValues("nominatim", "error").Inc()
		return place
	}
	metrics.UpstreamCalls.WithLabelValues("nominatim", "success").Inc()
	if city != "" {
		place.City = city
	}
	return place
}

func (c *Client) lookupByIP(ctx context.Context) (Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.IPInfoURL, nil)
	if err != nil {
		return Place{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Place{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("ipinfo status %d", resp.StatusCode)
	}

	var body ipinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Place{}, err
	}

	lat, lon, err := parseLoc(body.Loc)
	if err != nil {
		return Place{}, err
	}

	city := body.City
	if city == "" {
		city = "Unknown"
	}

	return Place{City: city, Country: body.Country, Lat: lat, Lon: lon}, nil
}

func (c *Client) reverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%g&lon=%g", c.cfg.NominatimURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	// Nominatim requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.Address.City, nil
}

func parseLoc(loc string) (float64, float64, error) {
	parts := strings.SplitN(loc, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed loc %q", loc)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}
