// Package recommend orchestrates the full pipeline: query extraction,
// location resolution, weather retrieval, outfit composition, and the
// optional multi-day forecast.
package recommend

import (
	"context"
	"time"

	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/common/metrics"
	"github.com/SwatiRao07/WeatherWear/internal/geolocate"
	"github.com/SwatiRao07/WeatherWear/internal/outfit"
	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// WeatherProvider retrieves weather snapshots and forecast series; satisfied
// by *weather.Client.
type WeatherProvider interface {
	ForQuery(ctx context.Context, location string, coords *weather.Coordinates, intent query.TimeIntent) (weather.Snapshot, error)
	MultiDay(ctx context.Context, location string, coords *weather.Coordinates) (weather.Series, error)
}

// Geolocator resolves the caller's current position; satisfied by
// *geolocate.Client.
type Geolocator interface {
	Lookup(ctx context.Context) geolocate.Place
}

// OutfitComposer produces the recommendation text; satisfied by
// *outfit.Composer.
type OutfitComposer interface {
	Compose(ctx context.Context, snap weather.Snapshot, location string, style query.Style, isFuture bool) (string, outfit.Stage)
}

// Request is one recommendation query.
type Request struct {
	Query        string
	Style        string
	ShowForecast bool
}

// Result carries everything the presentation layer needs.
type Result struct {
	Weather         weather.Snapshot
	Outfit          string
	Stage           outfit.Stage
	Forecast        weather.Series
	ForecastWarning string
	Location        string
	Style           query.Style
	StyleWarned     bool
	Time            query.TimeIntent
}

type Service struct {
	weather  WeatherProvider
	geo      Geolocator
	composer OutfitComposer
	logger   logger.Logger
	now      func() time.Time
}

func NewService(w WeatherProvider, geo Geolocator, composer OutfitComposer, log logger.Logger) *Service {
	return &Service{
		weather:  w,
		geo:      geo,
		composer: composer,
		logger:   log.With(map[string]interface{}{"component": "recommend"}),
		now:      time.Now,
	}
}

// Process runs the pipeline for one request. A missing location fails
// validation before any network call; a forecast failure degrades to a
// warning on an otherwise successful result.
func (s *Service) Process(ctx context.Context, req Request) (*Result, error) {
	start := s.now()
	res, err := s.process(ctx, req)
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.RecommendationsTotal.WithLabelValues("success").Inc()
	return res, nil
}

func (s *Service) process(ctx context.Context, req Request) (*Result, error) {
	timeIntent := query.ExtractTime(req.Query, s.now())
	locIntent := query.ExtractLocation(req.Query)
	if locIntent.IsEmpty() {
		return nil, apperrors.NewLocationEmptyError()
	}

	style, warned := query.NormalizeStyle(req.Style)

	location := locIntent.Name
	var coords *weather.Coordinates
	if locIntent.CurrentLocation {
		place := s.geo.Lookup(ctx)
		location = place.City
		coords = place.Coordinates()
	}

	s.logger.Info("processing recommendation", map[string]interface{}{
		"location":    location,
		"style":       string(style),
		"isFuture":    timeIntent.IsFuture,
		"hoursOffset": timeIntent.HoursOffset,
	})

	snap, err := s.weather.ForQuery(ctx, location, coords, timeIntent)
	if err != nil {
		return nil, err
	}

	text, stage := s.composer.Compose(ctx, snap, location, style, timeIntent.IsFuture)

	res := &Result{
		Weather:     snap,
		Outfit:      text,
		Stage:       stage,
		Location:    location,
		Style:       style,
		StyleWarned: warned,
		Time:        timeIntent,
	}

	if req.ShowForecast {
		series, err := s.weather.MultiDay(ctx, location, coords)
		if err != nil {
			s.logger.Warn("forecast fetch failed", map[string]interface{}{"error": err.Error()})
			res.ForecastWarning = "Could not fetch forecast data"
		} else {
			res.Forecast = series
		}
	}

	return res, nil
}
