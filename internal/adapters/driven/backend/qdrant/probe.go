// Package qdrant provides a status probe for the Qdrant REST API.
package qdrant

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

// Probe checks that Qdrant answers on its REST port.
type Probe struct {
	client *http.Client
	url    string
}

type collectionsResponse struct {
	Result struct {
		Collections []struct {
			Name string `json:"name"`
		} `json:"collections"`
	} `json:"result"`
	Status any `json:"status"`
}

// NewProbe creates a Qdrant probe for the given REST URL.
func NewProbe(url string, timeout time.Duration) *Probe {
	if url == "" {
		url = domain.DefaultQdrantURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Probe{
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimRight(url, "/"),
	}
}

// Kind returns domain.BackendQdrant.
func (p *Probe) Kind() domain.BackendKind {
	return domain.BackendQdrant
}

// Endpoint returns the REST URL.
func (p *Probe) Endpoint() string {
	return p.url
}

// Probe lists collections.
func (p *Probe) Probe(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/collections", http.NoBody)
	if err != nil {
		return "", fmt.Errorf("qdrant: create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("qdrant: %w: %w", domain.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("qdrant: %w: API returned status %d: %s",
			domain.ErrBackendUnreachable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out collectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("qdrant: decode response: %w", err)
	}

	n := len(out.Result.Collections)
	if n == 1 {
		return "1 collection", nil
	}
	return fmt.Sprintf("%d collections", n), nil
}

// Close releases resources.
func (p *Probe) Close() error {
	return nil
}
