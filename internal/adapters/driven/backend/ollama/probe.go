// Package ollama provides a status probe for the Ollama API.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driven"
)

// Ensure Probe implements the interface.
var _ driven.BackendProbe = (*Probe)(nil)

// DefaultTimeout bounds a single probe request.
const DefaultTimeout = 10 * time.Second

// Config holds configuration for the Ollama probe.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Models must all be pulled for the probe to succeed.
	Models []string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration
}

// Probe checks that Ollama is reachable and serves the configured models.
type Probe struct {
	client  *http.Client
	baseURL string
	models  []string
}

// tagsResponse is the Ollama /api/tags response format.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// NewProbe creates a new Ollama probe.
func NewProbe(cfg Config) *Probe {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultOllamaBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Probe{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		models:  cfg.Models,
	}
}

// Kind returns domain.BackendOllama.
func (p *Probe) Kind() domain.BackendKind {
	return domain.BackendOllama
}

// Endpoint returns the API base URL.
func (p *Probe) Endpoint() string {
	return p.baseURL
}

// Probe lists the local models via /api/tags, a lightweight call that
// validates connectivity without running inference.
func (p *Probe) Probe(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return "", fmt.Errorf("ollama: failed to create ping request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama: ping failed: %w: %w", domain.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(io.LimitReader(resp.Body, 512))
		if err != nil {
			return "", fmt.Errorf("ollama: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return "", fmt.Errorf("ollama: %w: API returned status %d: %s",
			domain.ErrBackendUnreachable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return "", fmt.Errorf("ollama: decode response: %w", err)
	}

	available := make(map[string]bool, len(tags.Models))
	for _, m := range tags.Models {
		available[m.Name] = true
	}

	var missing []string
	for _, model := range p.models {
		if !hasModel(available, model) {
			missing = append(missing, model)
		}
	}
	if len(missing) > 0 {
		return "", fmt.Errorf("ollama: %w: %s (run 'ollama pull %s')",
			domain.ErrModelMissing, strings.Join(missing, ", "), missing[0])
	}

	return fmt.Sprintf("%d models available", len(tags.Models)), nil
}

// hasModel matches a configured model against pulled names.
// A model configured without a tag matches its ":latest" variant.
func hasModel(available map[string]bool, model string) bool {
	if available[model] {
		return true
	}
	if !strings.Contains(model, ":") {
		return available[model+":latest"]
	}
	return false
}

// Close releases resources.
func (p *Probe) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
