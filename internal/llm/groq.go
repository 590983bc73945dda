// Package llm provides a Groq chat-completion client used for outfit text
// generation.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SwatiRao07/WeatherWear/internal/common/logger"
	"github.com/SwatiRao07/WeatherWear/internal/common/metrics"
)

var (
	ErrNotConfigured = errors.New("llm: no API key configured")
	ErrEmptyResponse = errors.New("llm: completion returned no choices")
)

// Params control a single completion call.
type Params struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  logger.Logger
}

func NewClient(apiKey, model, baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log.With(map[string]interface{}{"component": "llm", "model": model}),
	}
}

// Configured reports whether the client has credentials. An unconfigured
// client fails fast so the composer can fall back without a network call.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single user prompt and returns the trimmed response text.
func (c *Client) Complete(ctx context.Context, prompt string, p Params) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	text, err := c.complete(ctx, prompt, p)
	if err != nil {
		metrics.UpstreamCalls.WithLabelValues("groq", "error").Inc()
		return "", err
	}
	metrics.UpstreamCalls.WithLabelValues("groq", "success").Inc()
	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string, p Params) (string, error) {
	body, _ := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
		TopP:        p.TopP,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	c.logger.Debug("completion received", map[string]interface{}{
		"chars": len(text),
	})
	return text, nil
}
