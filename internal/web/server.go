// Package web exposes the recommendation pipeline over HTTP: a form page,
// a JSON recommendation endpoint, health, and metrics.
package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/recommend"
	"github.com/SwatiRao07/WeatherWear/internal/render"
)

//go:embed templates/index.html
var indexHTML []byte

// Recommender runs one recommendation request; satisfied by
// *recommend.Service.
type Recommender interface {
	Process(ctx context.Context, req recommend.Request) (*recommend.Result, error)
}

type Server struct {
	router *chi.Mux
	rec    Recommender
	logger logger.Logger
}

func NewServer(rec Recommender, log logger.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		rec:    rec,
		logger: log.With(map[string]interface{}{"component": "web"}),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestLogger)

	s.router.Get("/", s.handleIndex)
	s.router.Post("/recommend", s.handleRecommend)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return s
}

// Handler returns the routed handler for mounting in an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger tags every request with a UUID and logs method, path, status
// and duration on completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		s.logger.Info("request completed", map[string]interface{}{
			"requestId":  requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"durationMs": time.Since(start).Milliseconds(),
		})
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

type recommendRequest struct {
	Location string `json:"location"`
	Style    string `json:"style"`
	Forecast bool   `json:"forecast"`
}

type recommendResponse struct {
	Success  bool   `json:"success"`
	Weather  string `json:"weather,omitempty"`
	Outfit   string `json:"outfit,omitempty"`
	Forecast string `json:"forecast,omitempty"`
	Location string `json:"location,omitempty"`
	Style    string `json:"style,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	req, err := parseRecommendRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, recommendResponse{Success: false, Error: "Malformed request"})
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		writeJSON(w, http.StatusOK, recommendResponse{Success: false, Error: "Please enter a location."})
		return
	}

	res, err := s.rec.Process(r.Context(), recommend.Request{
		Query:        req.Location,
		Style:        req.Style,
		ShowForecast: req.Forecast,
	})
	if err != nil {
		se := apperrors.AsStandard(err)
		status := http.StatusOK
		if !apperrors.IsValidation(err) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, recommendResponse{Success: false, Error: se.UserMessage()})
		return
	}

	forecastHTML := ""
	switch {
	case res.ForecastWarning != "":
		forecastHTML = res.ForecastWarning
	case len(res.Forecast.Samples) > 0:
		forecastHTML = render.HTML(render.Forecast(res.Forecast))
	}

	writeJSON(w, http.StatusOK, recommendResponse{
		Success:  true,
		Weather:  render.HTML(render.Weather(res.Weather)),
		Outfit:   render.HTML(render.Recommendation(res.Outfit, res.Weather, res.Location, res.Style)),
		Forecast: forecastHTML,
		Location: res.Location,
		Style:    res.Style.Title(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseRecommendRequest accepts either a JSON body or a classic form post.
func parseRecommendRequest(r *http.Request) (recommendRequest, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req recommendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return recommendRequest{}, err
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return recommendRequest{}, err
	}
	return recommendRequest{
		Location: r.FormValue("location"),
		Style:    r.FormValue("style"),
		Forecast: r.FormValue("forecast") == "on",
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
