package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// GetSettingsInput is the input schema for the get_settings tool.
type GetSettingsInput struct{}

// SetDomainInput is the input schema for the set_domain tool.
type SetDomainInput struct {
	Domain string `json:"domain" jsonschema:"the Wikipedia domain to answer questions about, empty for the default"`
}

// SetStrategyInput is the input schema for the set_strategy tool.
type SetStrategyInput struct {
	Strategy string `json:"strategy" jsonschema:"one of vector, graph or hybrid"`
}

// CheckBackendsInput is the input schema for the check_backends tool.
type CheckBackendsInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"probe again even if a recent result exists"`
}

// SettingsOutput is the effective settings. Secrets are never included.
type SettingsOutput struct {
	Domain             string `json:"domain"`
	ArticleLimit       int    `json:"article_limit"`
	Strategy           string `json:"qna_strategy"`
	BatchSize          int    `json:"batch_size"`
	ConcurrentRequests int    `json:"concurrent_requests"`
	CacheEmbeddings    bool   `json:"cache_embeddings"`
	EnableCitations    bool   `json:"enable_citations"`
	Neo4jURI           string `json:"neo4j_uri"`
	QdrantURL          string `json:"qdrant_url"`
	OllamaBaseURL      string `json:"ollama_base_url"`
	EmbeddingModel     string `json:"embedding_model"`
	LLMModel           string `json:"llm_model"`

	// Overridden lists top-level keys set by the environment. Saving
	// one of them does not change the effective value.
	Overridden []string `json:"overridden,omitempty"`
}

// BackendOutput is the result of probing one backend.
type BackendOutput struct {
	Backend   string `json:"backend"`
	Endpoint  string `json:"endpoint"`
	Required  bool   `json:"required"`
	Reachable bool   `json:"reachable"`
	Detail    string `json:"detail,omitempty"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// StatusOutput is the output schema for the check_backends tool.
type StatusOutput struct {
	Strategy  string          `json:"qna_strategy"`
	Ready     bool            `json:"ready"`
	Cached    bool            `json:"cached"`
	CheckedAt string          `json:"checked_at,omitempty"`
	Backends  []BackendOutput `json:"backends"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_settings",
		Description: "Show the effective Wiki-QA settings",
	}, s.handleGetSettings)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_domain",
		Description: "Set the Wikipedia domain questions are answered from",
	}, s.handleSetDomain)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_strategy",
		Description: "Set the Q&A strategy (vector, graph or hybrid)",
	}, s.handleSetStrategy)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_backends",
		Description: "Check that Ollama, Qdrant and Neo4j are reachable",
	}, s.handleCheckBackends)
}

func (s *Server) handleGetSettings(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GetSettingsInput,
) (*mcp.CallToolResult, SettingsOutput, error) {
	out, err := s.currentSettings()
	return nil, out, err
}

func (s *Server) handleSetDomain(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SetDomainInput,
) (*mcp.CallToolResult, SettingsOutput, error) {
	if err := s.ports.Settings.SetDomain(input.Domain); err != nil {
		return nil, SettingsOutput{}, err
	}
	out, err := s.currentSettings()
	return nil, out, err
}

func (s *Server) handleSetStrategy(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SetStrategyInput,
) (*mcp.CallToolResult, SettingsOutput, error) {
	strategy, err := domain.ParseQnAStrategy(input.Strategy)
	if err != nil {
		return nil, SettingsOutput{}, err
	}
	if err := s.ports.Settings.SetStrategy(strategy); err != nil {
		return nil, SettingsOutput{}, err
	}
	out, err := s.currentSettings()
	return nil, out, err
}

func (s *Server) handleCheckBackends(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckBackendsInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	if s.ports.Status == nil {
		return nil, StatusOutput{}, ErrStatusUnavailable
	}
	report, err := s.ports.Status.Check(ctx, input.Refresh)
	if err != nil {
		return nil, StatusOutput{}, fmt.Errorf("checking backends: %w", err)
	}
	return nil, toStatusOutput(report), nil
}

func (s *Server) currentSettings() (SettingsOutput, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return SettingsOutput{}, fmt.Errorf("loading settings: %w", err)
	}
	out := toSettingsOutput(settings)
	for _, key := range domain.TopLevelKeys() {
		if s.ports.Settings.Overridden(key) {
			out.Overridden = append(out.Overridden, key)
		}
	}
	return out, nil
}

func toSettingsOutput(s *domain.Settings) SettingsOutput {
	return SettingsOutput{
		Domain:             s.Domain,
		ArticleLimit:       s.ArticleLimit,
		Strategy:           s.Strategy.String(),
		BatchSize:          s.BatchSize,
		ConcurrentRequests: s.ConcurrentRequests,
		CacheEmbeddings:    s.CacheEmbeddings,
		EnableCitations:    s.EnableCitations,
		Neo4jURI:           s.Neo4j.URI,
		QdrantURL:          s.Qdrant.URL,
		OllamaBaseURL:      s.Ollama.BaseURL,
		EmbeddingModel:     s.Ollama.EmbeddingModel,
		LLMModel:           s.Ollama.LLMModel,
	}
}

func toStatusOutput(r *domain.StatusReport) StatusOutput {
	out := StatusOutput{
		Strategy: r.Settings.Strategy.String(),
		Ready:    r.Ready(),
		Cached:   r.Cached,
		Backends: make([]BackendOutput, len(r.Backends)),
	}
	if !r.CheckedAt.IsZero() {
		out.CheckedAt = r.CheckedAt.Format(time.RFC3339)
	}
	for i, b := range r.Backends {
		out.Backends[i] = BackendOutput{
			Backend:   b.Backend.String(),
			Endpoint:  b.Endpoint,
			Required:  b.Required,
			Reachable: b.Reachable,
			Detail:    b.Detail,
			Error:     b.Error,
			LatencyMS: b.Latency.Milliseconds(),
		}
	}
	return out
}
