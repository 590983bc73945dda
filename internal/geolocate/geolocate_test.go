package geolocate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/common/metrics"
)

var fallback = Place{City: "New York", Lat: 40.7128, Lon: -74.0060}

func newTestClient(t *testing.T, ipinfoURL, nominatimURL string) *Client {
	t.Helper()
	return NewClient(Config{
		IPInfoURL:    ipinfoURL,
		NominatimURL: nominatimURL,
		UserAgent:    "weatherwear-test",
		Timeout:      2 * time.Second,
		Fallback:     fallback,
	}, logger.NewTestLogger(t))
}

func TestClient_Lookup(t *testing.T) {
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "weatherwear-test", r.Header.Get("User-Agent"))
		fmt.Fprint(w, `{"address": {"city": "Shibuya"}}`)
	}))
	defer nominatim.Close()

	ipinfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city": "Tokyo", "country": "JP", "loc": "35.6895,139.6917"}`)
	}))
	defer ipinfo.Close()

	place := newTestClient(t, ipinfo.URL, nominatim.URL).Lookup(context.Background())

	assert.Equal(t, "Shibuya", place.City, "reverse geocode refines the city name")
	assert.Equal(t, "JP", place.Country)
	assert.InDelta(t, 35.6895, place.Lat, 0.0001)
	assert.InDelta(t, 139.6917, place.Lon, 0.0001)
}

func TestClient_Lookup_ReverseGeocodeFailureKeepsIPCity(t *testing.T) {
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer nominatim.Close()

	ipinfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city": "Tokyo", "country": "JP", "loc": "35.6895,139.6917"}`)
	}))
	defer ipinfo.Close()

	place := newTestClient(t, ipinfo.URL, nominatim.URL).Lookup(context.Background())
	assert.Equal(t, "Tokyo", place.City)
}

func TestClient_Lookup_FallsBackOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed coordinates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"city": "Tokyo", "loc": "not-coords"}`)
			},
		},
		{
			name: "invalid body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{{{`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ipinfo := httptest.NewServer(tt.handler)
			defer ipinfo.Close()

			place := newTestClient(t, ipinfo.URL, "http://127.0.0.1:0").Lookup(context.Background())
			assert.Equal(t, fallback, place)
		})
	}
}

func TestClient_Lookup_RecordsUpstreamOutcomes(t *testing.T) {
	ipSuccess := metrics.UpstreamCalls.WithLabelValues("ipinfo", "success")
	nomSuccess := metrics.UpstreamCalls.WithLabelValues("nominatim", "success")
	ipBefore := testutil.ToFloat64(ipSuccess)
	nomBefore := testutil.ToFloat64(nomSuccess)

	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"address": {"city": "Shibuya"}}`)
	}))
	defer nominatim.Close()

	ipinfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"city": "Tokyo", "country": "JP", "loc": "35.6895,139.6917"}`)
	}))
	defer ipinfo.Close()

	newTestClient(t, ipinfo.URL, nominatim.URL).Lookup(context.Background())

	assert.Equal(t, ipBefore+1, testutil.ToFloat64(ipSuccess))
	assert.Equal(t, nomBefore+1, testutil.ToFloat64(nomSuccess))
}

func TestClient_Lookup_FailureLogsGeolocationCode(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	ipinfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ipinfo.Close()

	c := NewClient(Config{
		IPInfoURL:    ipinfo.URL,
		NominatimURL: "http://127.0.0.1:0",
		Timeout:      time.Second,
		Fallback:     fallback,
	}, logger.NewZapAdapter(zap.New(core)))

	place := c.Lookup(context.Background())
	assert.Equal(t, fallback, place)

	entries := logs.FilterMessage("Could not determine current location").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, string(apperrors.ErrCodeGeolocationFailed), fields["code"])
	assert.Equal(t, "ipinfo status 503", fields["details"])
	assert.Equal(t, fallback.City, fields["fallback"])
}

func TestPlace_Label(t *testing.T) {
	assert.Equal(t, "Tokyo, JP", Place{City: "Tokyo", Country: "JP"}.Label())
	assert.Equal(t, "Tokyo", Place{City: "Tokyo"}.Label())
}
