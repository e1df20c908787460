package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// QnAStrategy defines how questions are answered over the indexed articles.
type QnAStrategy string

// Available Q&A strategies.
const (
	// StrategyVector answers using semantic similarity search only.
	StrategyVector QnAStrategy = "vector"

	// StrategyGraph answers using knowledge graph traversal only.
	StrategyGraph QnAStrategy = "graph"

	// StrategyHybrid combines vector search and graph traversal.
	StrategyHybrid QnAStrategy = "hybrid"
)

// IsValid returns true if the strategy is recognised.
func (s QnAStrategy) IsValid() bool {
	switch s {
	case StrategyVector, StrategyGraph, StrategyHybrid:
		return true
	default:
		return false
	}
}

// RequiresVectorStore returns true if this strategy queries Qdrant.
func (s QnAStrategy) RequiresVectorStore() bool {
	return s == StrategyVector || s == StrategyHybrid
}

// RequiresGraphStore returns true if this strategy queries Neo4j.
func (s QnAStrategy) RequiresGraphStore() bool {
	return s == StrategyGraph || s == StrategyHybrid
}

// String returns the string representation.
func (s QnAStrategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s QnAStrategy) Description() string {
	switch s {
	case StrategyVector:
		return "Use semantic similarity search only"
	case StrategyGraph:
		return "Use knowledge graph traversal only"
	case StrategyHybrid:
		return "Combine both approaches (recommended)"
	default:
		return unknownDescription
	}
}

// AllQnAStrategies returns all available strategies in menu order.
func AllQnAStrategies() []QnAStrategy {
	return []QnAStrategy{
		StrategyVector,
		StrategyGraph,
		StrategyHybrid,
	}
}

// ParseQnAStrategy converts user input into a strategy.
// Input is trimmed and matched case-insensitively.
func ParseQnAStrategy(s string) (QnAStrategy, error) {
	strategy := QnAStrategy(strings.ToLower(strings.TrimSpace(s)))
	if !strategy.IsValid() {
		return "", &ValidationError{
			Field:  KeyQnAStrategy,
			Value:  s,
			Reason: "must be one of vector, graph, hybrid",
		}
	}
	return strategy, nil
}

// Setting keys as they appear in the settings file.
// Nested keys use dot notation.
//
//nolint:gosec // G101: key names, not credentials.
const (
	KeyDomain             = "domain"
	KeyArticleLimit       = "article_limit"
	KeyQnAStrategy        = "qna_strategy"
	KeyBatchSize          = "batch_size"
	KeyConcurrentRequests = "concurrent_requests"
	KeyCacheEmbeddings    = "cache_embeddings"
	KeyEnableCitations    = "enable_citations"

	KeyNeo4jURI      = "neo4j.uri"
	KeyNeo4jUser     = "neo4j.user"
	KeyNeo4jPassword = "neo4j.password"

	KeyQdrantURL = "qdrant.url"

	KeyOllamaBaseURL        = "ollama.base_url"
	KeyOllamaEmbeddingModel = "ollama.embedding_model"
	KeyOllamaLLMModel       = "ollama.llm_model"
)

// TopLevelKeys returns the keys written when settings are saved.
// Backend connection details stay out of the file so secrets never land on disk.
func TopLevelKeys() []string {
	return []string{
		KeyDomain,
		KeyArticleLimit,
		KeyQnAStrategy,
		KeyBatchSize,
		KeyConcurrentRequests,
		KeyCacheEmbeddings,
		KeyEnableCitations,
	}
}

// BackendKeys returns the keys for backend connection settings.
func BackendKeys() []string {
	return []string{
		KeyNeo4jURI,
		KeyNeo4jUser,
		KeyNeo4jPassword,
		KeyQdrantURL,
		KeyOllamaBaseURL,
		KeyOllamaEmbeddingModel,
		KeyOllamaLLMModel,
	}
}

// AllSettingKeys returns every recognised setting key.
func AllSettingKeys() []string {
	return append(TopLevelKeys(), BackendKeys()...)
}

// IsSecretKey returns true for keys whose values must never be persisted or printed.
func IsSecretKey(key string) bool {
	return key == KeyNeo4jPassword
}

// Limits for numeric settings (inclusive).
const (
	MinArticleLimit       = 1
	MaxArticleLimit       = 10000
	MinBatchSize          = 1
	MaxBatchSize          = 1000
	MinConcurrentRequests = 1
	MaxConcurrentRequests = 50
)

// Default values.
const (
	DefaultDomain               = "Computer Science"
	DefaultArticleLimit         = 1000
	DefaultQnAStrategy          = StrategyHybrid
	DefaultBatchSize            = 50
	DefaultConcurrentRequests   = 10
	DefaultNeo4jURI             = "bolt://localhost:7687"
	DefaultNeo4jUser            = "neo4j"
	DefaultQdrantURL            = "http://localhost:6333"
	DefaultOllamaBaseURL        = "http://localhost:11434"
	DefaultOllamaEmbeddingModel = "nomic-embed-text"
	DefaultOllamaLLMModel       = "llama3.2"
)

// Neo4jSettings holds graph database connection settings.
type Neo4jSettings struct {
	URI      string `json:"uri"`
	User     string `json:"user"`
	Password string `json:"-"`
}

// QdrantSettings holds vector database connection settings.
type QdrantSettings struct {
	URL string `json:"url"`
}

// OllamaSettings holds local model server settings.
type OllamaSettings struct {
	BaseURL        string `json:"base_url"`
	EmbeddingModel string `json:"embedding_model"`
	LLMModel       string `json:"llm_model"`
}

// Settings is the application configuration after defaults, the settings
// file and environment overrides have been merged.
type Settings struct {
	// Domain is the Wikipedia subject area to ingest and query.
	Domain string `json:"domain"`

	// ArticleLimit caps how many articles are ingested for the domain.
	ArticleLimit int `json:"article_limit"`

	// Strategy selects how questions are answered.
	Strategy QnAStrategy `json:"qna_strategy"`

	// BatchSize is the number of articles processed per batch.
	BatchSize int `json:"batch_size"`

	// ConcurrentRequests bounds parallel requests to Wikipedia and Ollama.
	ConcurrentRequests int `json:"concurrent_requests"`

	CacheEmbeddings bool `json:"cache_embeddings"`
	EnableCitations bool `json:"enable_citations"`

	Neo4j  Neo4jSettings  `json:"neo4j"`
	Qdrant QdrantSettings `json:"qdrant"`
	Ollama OllamaSettings `json:"ollama"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Domain:             DefaultDomain,
		ArticleLimit:       DefaultArticleLimit,
		Strategy:           DefaultQnAStrategy,
		BatchSize:          DefaultBatchSize,
		ConcurrentRequests: DefaultConcurrentRequests,
		CacheEmbeddings:    true,
		EnableCitations:    true,
		Neo4j: Neo4jSettings{
			URI:  DefaultNeo4jURI,
			User: DefaultNeo4jUser,
		},
		Qdrant: QdrantSettings{
			URL: DefaultQdrantURL,
		},
		Ollama: OllamaSettings{
			BaseURL:        DefaultOllamaBaseURL,
			EmbeddingModel: DefaultOllamaEmbeddingModel,
			LLMModel:       DefaultOllamaLLMModel,
		},
	}
}

// Validate checks every field against its constraints.
// The first violation is returned as a *ValidationError.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Domain) == "" {
		return &ValidationError{Field: KeyDomain, Value: s.Domain, Reason: "must not be empty"}
	}
	if err := checkRange(KeyArticleLimit, s.ArticleLimit, MinArticleLimit, MaxArticleLimit); err != nil {
		return err
	}
	if !s.Strategy.IsValid() {
		return &ValidationError{
			Field:  KeyQnAStrategy,
			Value:  s.Strategy.String(),
			Reason: "must be one of vector, graph, hybrid",
		}
	}
	if err := checkRange(KeyBatchSize, s.BatchSize, MinBatchSize, MaxBatchSize); err != nil {
		return err
	}
	if err := checkRange(KeyConcurrentRequests, s.ConcurrentRequests,
		MinConcurrentRequests, MaxConcurrentRequests); err != nil {
		return err
	}

	required := map[string]string{
		KeyNeo4jURI:             s.Neo4j.URI,
		KeyQdrantURL:            s.Qdrant.URL,
		KeyOllamaBaseURL:        s.Ollama.BaseURL,
		KeyOllamaEmbeddingModel: s.Ollama.EmbeddingModel,
		KeyOllamaLLMModel:       s.Ollama.LLMModel,
	}
	for _, key := range BackendKeys() {
		val, ok := required[key]
		if ok && strings.TrimSpace(val) == "" {
			return &ValidationError{Field: key, Value: val, Reason: "must not be empty"}
		}
	}
	return nil
}

// CitationsLabel returns "Enabled" or "Disabled" for display.
func (s *Settings) CitationsLabel() string {
	return enabledLabel(s.EnableCitations)
}

// CacheEmbeddingsLabel returns "Enabled" or "Disabled" for display.
func (s *Settings) CacheEmbeddingsLabel() string {
	return enabledLabel(s.CacheEmbeddings)
}

func enabledLabel(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}

func checkRange(field string, val, lo, hi int) error {
	if val < lo || val > hi {
		return &ValidationError{
			Field:  field,
			Value:  fmt.Sprint(val),
			Reason: fmt.Sprintf("must be between %d and %d", lo, hi),
		}
	}
	return nil
}
