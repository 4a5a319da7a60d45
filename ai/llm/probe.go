package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/voto/ai"
)

// Prober implements ai.Prober. Hosted providers are available when a key is
// configured; Ollama when its /api/tags endpoint answers within the timeout.
type Prober struct {
	client  *http.Client
	timeout time.Duration
	logger  *slog.Logger
}

var _ ai.Prober = (*Prober)(nil)

// NewProber creates a prober.
func NewProber(opts ...Option) (*Prober, error) {
	cfg, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return &Prober{
		client:  cfg.httpClient,
		timeout: cfg.probeTimeout,
		logger:  cfg.logger.With("component", "prober"),
	}, nil
}

// Available reports whether the provider can be used with cfg. It never
// retries; a slow Ollama server counts as unavailable.
func (p *Prober) Available(ctx context.Context, cfg *ai.Config, provider ai.Provider) bool {
	if cfg == nil || !provider.Valid() {
		return false
	}
	if provider != ai.Ollama {
		return cfg.HasAPIKey(provider)
	}
	_, err := p.tags(ctx, cfg.Ollama.BaseURL)
	if err != nil {
		p.logger.Debug("ollama not available", "url", cfg.Ollama.BaseURL, "err", err)
		return false
	}
	return true
}

// ListModels returns the names of the models installed on the Ollama server.
func (p *Prober) ListModels(ctx context.Context, cfg *ai.Config) ([]string, error) {
	if cfg == nil {
		return nil, ai.ErrProviderNotConfigured
	}
	resp, err := p.tags(ctx, cfg.Ollama.BaseURL)
	if err != nil {
		return nil, ai.NewProviderError(ai.Ollama, ai.ErrNetwork, err)
	}
	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (p *Prober) tags(ctx context.Context, baseURL string) (*tagsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", res.Status)
	}
	var tags tagsResponse
	if err := json.NewDecoder(res.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}
	return &tags, nil
}
