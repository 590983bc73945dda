// Package outfit composes the recommendation text: an LLM-generated primary
// path with a single creative retry, masked by a deterministic rule-based
// fallback when generation is unavailable or malformed.
package outfit

import (
	"context"
	"strings"

	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/common/metrics"
	"github.com/SwatiRao07/WeatherWear/internal/llm"
	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// Stage identifies which pipeline stage produced the recommendation.
type Stage string

const (
	StagePrimary  Stage = "primary"
	StageRetry    Stage = "retry"
	StageFallback Stage = "fallback"
)

// Generator is the text-generation dependency; satisfied by *llm.Client.
type Generator interface {
	Configured() bool
	Complete(ctx context.Context, prompt string, p llm.Params) (string, error)
}

var (
	primaryParams  = llm.Params{Temperature: 0.8, MaxTokens: 800, TopP: 0.9}
	creativeParams = llm.Params{Temperature: 0.9, MaxTokens: 1000, TopP: 0.95}
)

type Composer struct {
	gen    Generator
	logger logger.Logger
}

func NewComposer(gen Generator, log logger.Logger) *Composer {
	return &Composer{
		gen:    gen,
		logger: log.With(map[string]interface{}{"component": "composer"}),
	}
}

// Compose runs the three-stage pipeline: primary prompt, creative retry when
// the section marker is missing, deterministic fallback otherwise. Generation
// failures never propagate; the fallback always yields text.
func (c *Composer) Compose(ctx context.Context, snap weather.Snapshot, location string, style query.Style, isFuture bool) (string, Stage) {
	if !c.gen.Configured() {
		c.logger.Debug("generator not configured, using fallback", nil)
		metrics.ComposerStage.WithLabelValues(string(StageFallback)).Inc()
		return Fallback(snap, location, style), StageFallback
	}

	text, err := c.gen.Complete(ctx, primaryPrompt(snap, location, style, isFuture), primaryParams)
	if err == nil && wellFormed(text) {
		metrics.ComposerStage.WithLabelValues(string(StagePrimary)).Inc()
		return text, StagePrimary
	}
	if err != nil {
		failure := apperrors.NewGenerationFailedError(err)
		c.logger.Warn("primary generation failed", map[string]interface{}{
			"code":    string(failure.Code),
			"details": failure.Details,
		})
	} else {
		c.logger.Warn("primary response missing section marker, retrying with creative prompt", nil)
	}

	// The creative attempt is taken as-is when the call succeeds; only a
	// failed call drops through to the fallback.
	text, err = c.gen.Complete(ctx, creativePrompt(snap, location, style), creativeParams)
	if err == nil {
		metrics.ComposerStage.WithLabelValues(string(StageRetry)).Inc()
		return text, StageRetry
	}
	failure := apperrors.NewGenerationFailedError(err)
	c.logger.Warn("creative generation failed, using fallback", map[string]interface{}{
		"code":    string(failure.Code),
		"details": failure.Details,
	})

	metrics.ComposerStage.WithLabelValues(string(StageFallback)).Inc()
	return Fallback(snap, location, style), StageFallback
}

func wellFormed(text string) bool {
	return strings.Contains(text, SectionMarker)
}
