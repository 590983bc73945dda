// Package weather talks to the OpenWeatherMap API and selects the snapshot
// matching a query's time intent.
package weather

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/httpclient"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/common/metrics"
	"github.com/SwatiRao07/WeatherWear/internal/query"
)

// forecastPointCount covers a 24h window at OpenWeatherMap's 3-hour spacing.
const forecastPointCount = 8

type Client struct {
	apiKey  string
	baseURL string
	client  *httpclient.Client
	logger  logger.Logger
	now     func() time.Time
}

func NewClient(apiKey, baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  httpclient.NewClient(timeout),
		logger:  log.With(map[string]interface{}{"component": "weather"}),
		now:     time.Now,
	}
}

// owmCurrent mirrors the /weather response shape.
type owmCurrent struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Dt   int64  `json:"dt"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func (r owmCurrent) toSnapshot() Snapshot {
	snap := Snapshot{
		Temperature: r.Main.Temp,
		FeelsLike:   r.Main.FeelsLike,
		Humidity:    r.Main.Humidity,
		WindSpeed:   r.Wind.Speed,
		City:        r.Name,
		Country:     r.Sys.Country,
		Timestamp:   time.Unix(r.Dt, 0),
	}
	if len(r.Weather) > 0 {
		snap.Condition = r.Weather[0].Description
	}
	return snap
}

// owmForecast mirrors the /forecast response shape.
type owmForecast struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

func (r owmForecast) toSeries() Series {
	series := Series{
		City:    r.City.Name,
		Country: r.City.Country,
	}
	for _, item := range r.List {
		sample := Snapshot{
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			Timestamp:   time.Unix(item.Dt, 0),
		}
		if len(item.Weather) > 0 {
			sample.Condition = item.Weather[0].Description
		}
		series.Samples = append(series.Samples, sample)
	}
	return series
}

// params builds the shared query string. Coordinates, when supplied, take
// precedence over the location name.
func (c *Client) params(location string, coords *Coordinates) url.Values {
	v := url.Values{}
	v.Set("appid", c.apiKey)
	v.Set("units", "metric")
	if coords != nil {
		v.Set("lat", fmt.Sprintf("%g", coords.Lat))
		v.Set("lon", fmt.Sprintf("%g", coords.Lon))
	} else {
		v.Set("q", location)
	}
	return v
}

// getJSON performs the request and records the upstream call outcome.
func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	if err := c.client.GetJSON(ctx, endpoint, out); err != nil {
		metrics.UpstreamCalls.WithLabelValues("openweathermap", "error").Inc()
		return err
	}
	metrics.UpstreamCalls.WithLabelValues("openweathermap", "success").Inc()
	return nil
}

// Current fetches the current weather snapshot for a location.
func (c *Client) Current(ctx context.Context, location string, coords *Coordinates) (Snapshot, error) {
	var resp owmCurrent
	endpoint := c.baseURL + "/weather?" + c.params(location, coords).Encode()
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return Snapshot{}, c.translateError(err, location)
	}
	return resp.toSnapshot(), nil
}

// Forecast fetches the cnt=8 forecast series and selects the sample closest
// to now + hoursAhead.
func (c *Client) Forecast(ctx context.Context, location string, coords *Coordinates, hoursAhead int) (Snapshot, error) {
	params := c.params(location, coords)
	params.Set("cnt", fmt.Sprintf("%d", forecastPointCount))

	var resp owmForecast
	endpoint := c.baseURL + "/forecast?" + params.Encode()
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return Snapshot{}, c.translateError(err, location)
	}

	target := c.now().Add(time.Duration(hoursAhead) * time.Hour)
	snap := resp.toSeries().ClosestTo(target)
	if snap.IsZero() {
		c.logger.Warn("forecast series was empty", map[string]interface{}{
			"location":   location,
			"hoursAhead": hoursAhead,
		})
	}
	return snap, nil
}

// MultiDay fetches the full 5-day/3-hour forecast series unfiltered, for
// day-grouped display.
func (c *Client) MultiDay(ctx context.Context, location string, coords *Coordinates) (Series, error) {
	var resp owmForecast
	endpoint := c.baseURL + "/forecast?" + c.params(location, coords).Encode()
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return Series{}, c.translateError(err, location)
	}
	return resp.toSeries(), nil
}

// ForQuery selects between current and forecast retrieval based on the
// extracted time intent.
func (c *Client) ForQuery(ctx context.Context, location string, coords *Coordinates, intent query.TimeIntent) (Snapshot, error) {
	if intent.IsFuture && intent.HoursOffset > 0 {
		return c.Forecast(ctx, location, coords, intent.HoursOffset)
	}
	return c.Current(ctx, location, coords)
}

// translateError maps transport-level failures onto domain validation errors.
func (c *Client) translateError(err error, location string) error {
	var se *httpclient.StatusError
	if errors.As(err, &se) {
		return apperrors.FromUpstreamStatus(se.Code, location)
	}
	return apperrors.NewWeatherFetchFailedError(err)
}
