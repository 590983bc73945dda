package outfit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/SwatiRao07/WeatherWear/internal/common/errors"
	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/llm"
	"github.com/SwatiRao07/WeatherWear/internal/query"
	"github.com/SwatiRao07/WeatherWear/internal/weather"
)

// fakeGenerator scripts a sequence of completion outcomes.
type fakeGenerator struct {
	configured bool
	responses  []string
	errs       []error
	calls      int
	prompts    []string
	params     []llm.Params
}

func (f *fakeGenerator) Configured() bool { return f.configured }

func (f *fakeGenerator) Complete(_ context.Context, prompt string, p llm.Params) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.params = append(f.params, p)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return "", errors.New("unscripted call")
}

var testSnap = weather.Snapshot{
	Temperature: 22, FeelsLike: 21, Humidity: 60, WindSpeed: 10,
	Condition: "scattered clouds", City: "Tokyo", Country: "JP",
}

func TestComposer_PrimarySucceeds(t *testing.T) {
	gen := &fakeGenerator{
		configured: true,
		responses:  []string{"🎽 Your Look\n🧢 Top Layer: something"},
	}
	c := NewComposer(gen, logger.NewTestLogger(t))

	text, stage := c.Compose(context.Background(), testSnap, "Tokyo", query.StyleCasual, false)

	assert.Equal(t, StagePrimary, stage)
	assert.Contains(t, text, "🎽")
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 0.8, gen.params[0].Temperature)
	assert.Equal(t, 800, gen.params[0].MaxTokens)
	assert.Equal(t, 0.9, gen.params[0].TopP)
}

func TestComposer_MissingMarkerTriggersCreativeRetry(t *testing.T) {
	gen := &fakeGenerator{
		configured: true,
		responses:  []string{"plain text without sections", "🎽 Retry look"},
	}
	c := NewComposer(gen, logger.NewTestLogger(t))

	text, stage := c.Compose(context.Background(), testSnap, "Tokyo", query.StyleSporty, true)

	assert.Equal(t, StageRetry, stage)
	assert.Equal(t, "🎽 Retry look", text)
	require.Equal(t, 2, gen.calls)

	// Second attempt uses the hotter creative parameters.
	assert.Equal(t, 0.9, gen.params[1].Temperature)
	assert.Equal(t, 1000, gen.params[1].MaxTokens)
	assert.Equal(t, 0.95, gen.params[1].TopP)
	assert.Contains(t, gen.prompts[1], "EXTREMELY creative")
}

func TestComposer_RetryTextAcceptedEvenWithoutMarker(t *testing.T) {
	gen := &fakeGenerator{
		configured: true,
		responses:  []string{"no marker", "still no marker"},
	}
	c := NewComposer(gen, logger.NewTestLogger(t))

	text, stage := c.Compose(context.Background(), testSnap, "Tokyo", query.StyleCasual, false)
	assert.Equal(t, StageRetry, stage)
	assert.Equal(t, "still no marker", text)
}

func TestComposer_FallbackOnErrors(t *testing.T) {
	gen := &fakeGenerator{
		configured: true,
		errs:       []error{errors.New("boom"), errors.New("boom again")},
	}
	c := NewComposer(gen, logger.NewTestLogger(t))

	text, stage := c.Compose(context.Background(), testSnap, "Tokyo", query.StyleCasual, false)

	assert.Equal(t, StageFallback, stage)
	assert.Contains(t, text, "🎽 Your Look, Tailored to Scattered Clouds & Tokyo Vibes")
	assert.Equal(t, 2, gen.calls)
}

func TestComposer_GenerationFailureLogsTypedCode(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	gen := &fakeGenerator{
		configured: true,
		errs:       []error{errors.New("boom"), errors.New("boom again")},
	}
	c := NewComposer(gen, logger.NewZapAdapter(zap.New(core)))

	_, stage := c.Compose(context.Background(), testSnap, "Tokyo", query.StyleCasual, false)
	assert.Equal(t, StageFallback, stage)

	entries := logs.FilterMessage("primary generation failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, string(apperrors.ErrCodeGenerationFailed), fields["code"])
	assert.Equal(t, "boom", fields["details"])

	entries = logs.FilterMessage("creative generation failed, using fallback").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "boom again", entries[0].ContextMap()["details"])
}

func TestComposer_UnconfiguredGeneratorSkipsNetworkEntirely(t *testing.T) {
	gen := &fakeGenerator{configured: false}
	c := NewComposer(gen, logger.NewTestLogger(t))

	text, stage := c.Compose(context.Background(), testSnap, "Tokyo", query.StyleFormal, false)

	assert.Equal(t, StageFallback, stage)
	assert.NotEmpty(t, text)
	assert.Zero(t, gen.calls)
}

func TestComposer_PromptCarriesWeatherAndTimeContext(t *testing.T) {
	gen := &fakeGenerator{
		configured: true,
		responses:  []string{"🎽 ok"},
	}
	c := NewComposer(gen, logger.NewTestLogger(t))

	_, _ = c.Compose(context.Background(), testSnap, "Tokyo", query.StyleSporty, true)

	require.Len(t, gen.prompts, 1)
	p := gen.prompts[0]
	assert.Contains(t, p, "Tokyo, JP")
	assert.Contains(t, p, "Temperature: 22°C (feels like 21°C)")
	assert.Contains(t, p, "Humidity: 60%")
	assert.Contains(t, p, "Style: sporty")
	assert.Contains(t, p, "Time context: forecasted")
}
