// Package insight asks an external analytics collaborator for one short
// business tip. The call is strictly best-effort: any failure falls back to a
// static tip and is never surfaced as an error.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const (
	// FallbackTip is returned whenever the collaborator is unreachable or
	// misbehaves.
	FallbackTip = "Tip: keep the key-cutting machines serviced so every cut stays accurate."
	// NotConfiguredTip is returned when no analyst endpoint is configured.
	NotConfiguredTip = "Smart analysis is ready. Configure an analyst endpoint for advanced insights."
)

type request struct {
	Prompt string `json:"prompt"`
}

type response struct {
	Text string `json:"text"`
}

// Service calls the configured analyst endpoint over HTTP.
type Service struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewService creates an insight Service. An empty url disables the remote
// call entirely.
func NewService(url string, timeout time.Duration, logger *slog.Logger) *Service {
	return &Service{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With("component", "insight"),
	}
}

// BusinessTip asks the analyst for one short tip about the given sales
// summary. It never returns an error: failures degrade to a static tip.
func (s *Service) BusinessTip(ctx context.Context, summary string) string {
	if s.url == "" {
		return NotConfiguredTip
	}

	body, err := json.Marshal(request{Prompt: summary})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode insight request", "error", err)
		return FallbackTip
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to build insight request", "error", err)
		return FallbackTip
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "Insight collaborator unreachable", "error", err)
		return FallbackTip
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "Insight collaborator returned non-OK status", "status", resp.StatusCode)
		return FallbackTip
	}
	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Text == "" {
		s.logger.WarnContext(ctx, "Insight collaborator returned an unusable payload", "error", err)
		return FallbackTip
	}
	return parsed.Text
}
