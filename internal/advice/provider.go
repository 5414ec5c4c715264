// Package advice produces the "Financial Navigation" status for the
// dashboard. The external generative service is wrapped in a boundary
// that never fails: callers always receive a usable status, at worst a
// fixed fallback.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"aether/internal/core"
)

const (
	// DefaultModel is the generative model used when none is configured.
	DefaultModel = "gemini-3-flash-preview"

	offlineSafeToSpendCents  = 145000
	degradedSafeToSpendCents = 120000

	offlineMessage  = "Cash flow is optimal. You are on track for your monthly savings goal."
	degradedMessage = "Unable to sync with Aether Intelligence. Showing cached projections."
)

// Config holds provider settings. An empty APIKey is a valid, expected
// state: the provider then serves the local fallback after a simulated
// delay instead of calling out. BaseURL overrides the service endpoint,
// for proxies and for stub servers in tests.
type Config struct {
	APIKey        string
	Model         string
	BaseURL       string
	Timeout       time.Duration
	FallbackDelay time.Duration
}

// Provider calls the generative service for financial advice. The zero
// value is not usable; construct with New.
type Provider struct {
	client        *genai.Client
	model         string
	timeout       time.Duration
	fallbackDelay time.Duration
}

// New creates a provider. Construction is local: no request is made
// until the first Get.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	p := &Provider{
		model:         modelName(cfg.Model),
		timeout:       cfg.Timeout,
		fallbackDelay: cfg.FallbackDelay,
	}
	if p.timeout <= 0 {
		p.timeout = 10 * time.Second
	}

	if cfg.APIKey == "" {
		return p, nil
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("generative client: %w", err)
	}
	p.client = client
	return p, nil
}

// Configured reports whether the external service will actually be called.
func (p *Provider) Configured() bool {
	return p.client != nil
}

// Get returns a financial status for the given balance and recent
// spending. It never fails from the caller's perspective: configuration
// absence yields the offline fallback after a simulated delay, and any
// failure during the call or parsing yields the degraded fallback. Each
// call is independent; there is no retry and no caching.
func (p *Provider) Get(ctx context.Context, balance, recentSpending core.Money) core.FinancialStatus {
	if p.client == nil {
		// Models the latency of a real round trip without making one.
		select {
		case <-time.After(p.fallbackDelay):
		case <-ctx.Done():
		}
		return core.FinancialStatus{
			SafeToSpend: core.Money{Cents: offlineSafeToSpendCents},
			Message:     offlineMessage,
			Mood:        core.MoodOptimistic,
		}
	}

	status, err := p.attempt(ctx, balance, recentSpending)
	if err != nil {
		slog.WarnContext(ctx, "Advice request failed, serving degraded status",
			"error", err, "model", p.model)
		return core.FinancialStatus{
			SafeToSpend: core.Money{Cents: degradedSafeToSpendCents},
			Message:     degradedMessage,
			Mood:        core.MoodCalm,
		}
	}
	return status
}

// attempt is the fallible inner tier: it performs the round trip and
// validates the response shape. Get is the boundary that swallows its
// errors.
func (p *Provider) attempt(ctx context.Context, balance, recentSpending core.Money) (core.FinancialStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Act as a high-end AI financial advisor named Aether.
Context: The user has a current balance of $%.2f and has spent $%.2f this week.
Task: Provide a "Financial Navigation" status.
1. Calculate a "Safe to Spend" amount for the next 7 days (make a reasonable estimate).
2. Write a one-sentence insight that is calm, professional, and reassuring (max 20 words).
3. Determine the financial mood: 'calm', 'alert', or 'optimistic'.`,
		balance.Dollars(), recentSpending.Dollars())

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"safeToSpend": {Type: genai.TypeNumber},
				"message":     {Type: genai.TypeString},
				"mood":        {Type: genai.TypeString, Enum: []string{"calm", "alert", "optimistic"}},
			},
			Required: []string{"safeToSpend", "message", "mood"},
		},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), config)
	if err != nil {
		return core.FinancialStatus{}, fmt.Errorf("generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return core.FinancialStatus{}, err
	}

	var out struct {
		SafeToSpend float64 `json:"safeToSpend"`
		Message     string  `json:"message"`
		Mood        string  `json:"mood"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return core.FinancialStatus{}, fmt.Errorf("parse advice payload: %w", err)
	}

	status := core.FinancialStatus{
		SafeToSpend: core.FromDollars(out.SafeToSpend),
		Message:     strings.TrimSpace(out.Message),
		Mood:        core.Mood(out.Mood),
	}
	if err := status.Validate(); err != nil {
		return core.FinancialStatus{}, fmt.Errorf("invalid advice payload: %w", err)
	}
	return status, nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.New("empty candidate content")
	}
	text := content.Parts[0].Text
	if text == "" {
		return "", errors.New("no text in response")
	}
	return text, nil
}

func modelName(model string) string {
	if model == "" {
		return DefaultModel
	}
	return model
}
