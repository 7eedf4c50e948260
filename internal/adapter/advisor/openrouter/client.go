// Package openrouter implements the advisor port against an OpenAI-compatible
// chat completions API. Responses are untrusted free text; validation and
// fallback live with the callers, this client only transports and cleans.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/fairyhunter13/resume-analyzer/internal/config"
	"github.com/fairyhunter13/resume-analyzer/internal/domain"
)

const maxResponseBytes = 1 << 20

// Client implements domain.Advisor over HTTP.
type Client struct {
	cfg config.Config
	hc  *http.Client
}

// New constructs a Client with the configured timeout.
func New(cfg config.Config) *Client {
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.AdvisorTimeout},
	}
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool { return c.cfg.AdvisorEnabled() }

// Advise sends the prompt and returns the first choice's content, cleaned of
// markdown fences. Retries transient failures with exponential backoff; a
// non-retryable status or exhausted backoff yields ErrAdvisorUnavailable.
func (c *Client) Advise(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("%w: ADVISOR_API_KEY missing", domain.ErrAdvisorUnavailable)
	}

	body, _ := json.Marshal(map[string]any{
		"model":       c.cfg.AdvisorModel,
		"temperature": 0.2,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	})

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	op := func() error {
		start := time.Now()
		// Recreate the request each attempt to avoid reusing consumed bodies.
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AdvisorBaseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.cfg.AdvisorAPIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			slog.Warn("advisor request failed", slog.Any("error", err))
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		slog.Debug("advisor response",
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)),
			slog.String("model", c.cfg.AdvisorModel))

		switch {
		case resp.StatusCode == http.StatusOK:
			// fallthrough to decode
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("advisor status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("advisor status %d", resp.StatusCode))
		}

		dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
		if err := dec.Decode(&out); err != nil {
			return fmt.Errorf("decode advisor response: %w", err)
		}
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	maxElapsed, initial, maxInterval, multiplier := c.cfg.AdvisorBackoff()
	expo.MaxElapsedTime = maxElapsed
	expo.InitialInterval = initial
	expo.MaxInterval = maxInterval
	expo.Multiplier = multiplier

	if err := backoff.Retry(op, backoff.WithContext(expo, ctx)); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", domain.ErrAdvisorUnavailable)
	}
	return cleanContent(out.Choices[0].Message.Content), nil
}

// cleanContent strips markdown code fences some models wrap output in.
func cleanContent(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
