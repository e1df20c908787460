package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wikiqa-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Each key falls back to its default when absent or empty.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	r := &settingsReader{store: s.configStore}

	settings := &domain.Settings{
		Domain:             r.getString(domain.KeyDomain, defaults.Domain),
		ArticleLimit:       r.getInt(domain.KeyArticleLimit, defaults.ArticleLimit),
		Strategy:           r.getStrategy(defaults.Strategy),
		BatchSize:          r.getInt(domain.KeyBatchSize, defaults.BatchSize),
		ConcurrentRequests: r.getInt(domain.KeyConcurrentRequests, defaults.ConcurrentRequests),
		CacheEmbeddings:    r.getBool(domain.KeyCacheEmbeddings, defaults.CacheEmbeddings),
		EnableCitations:    r.getBool(domain.KeyEnableCitations, defaults.EnableCitations),
		Neo4j: domain.Neo4jSettings{
			URI:      r.getString(domain.KeyNeo4jURI, defaults.Neo4j.URI),
			User:     r.getString(domain.KeyNeo4jUser, defaults.Neo4j.User),
			Password: r.getString(domain.KeyNeo4jPassword, ""),
		},
		Qdrant: domain.QdrantSettings{
			URL: r.getString(domain.KeyQdrantURL, defaults.Qdrant.URL),
		},
		Ollama: domain.OllamaSettings{
			BaseURL:        r.getString(domain.KeyOllamaBaseURL, defaults.Ollama.BaseURL),
			EmbeddingModel: r.getString(domain.KeyOllamaEmbeddingModel, defaults.Ollama.EmbeddingModel),
			LLMModel:       r.getString(domain.KeyOllamaLLMModel, defaults.Ollama.LLMModel),
		},
	}

	if r.err != nil {
		return nil, fmt.Errorf("load settings: %w", r.err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger.Debug("Settings resolved from %s: domain=%q strategy=%s", s.configStore.Path(),
		settings.Domain, settings.Strategy)
	return settings, nil
}

// Save persists the top-level settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	values := map[string]any{
		domain.KeyDomain:             settings.Domain,
		domain.KeyArticleLimit:       settings.ArticleLimit,
		domain.KeyQnAStrategy:        settings.Strategy.String(),
		domain.KeyBatchSize:          settings.BatchSize,
		domain.KeyConcurrentRequests: settings.ConcurrentRequests,
		domain.KeyCacheEmbeddings:    settings.CacheEmbeddings,
		domain.KeyEnableCitations:    settings.EnableCitations,
	}

	for _, key := range domain.TopLevelKeys() {
		if err := s.configStore.Set(key, values[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	logger.Info("Settings saved to %s", s.configStore.Path())
	return nil
}

// SetDomain updates the Wikipedia domain.
// An empty name resets the domain to its default.
func (s *SettingsService) SetDomain(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultDomain
	}

	if err := s.configStore.Set(domain.KeyDomain, name); err != nil {
		return fmt.Errorf("save domain: %w", err)
	}
	return nil
}

// SetStrategy updates the Q&A strategy.
func (s *SettingsService) SetStrategy(strategy domain.QnAStrategy) error {
	if !strategy.IsValid() {
		return fmt.Errorf("invalid Q&A strategy: %w", &domain.ValidationError{
			Field:  domain.KeyQnAStrategy,
			Value:  strategy.String(),
			Reason: "must be one of vector, graph, hybrid",
		})
	}

	if err := s.configStore.Set(domain.KeyQnAStrategy, strategy.String()); err != nil {
		return fmt.Errorf("save qna strategy: %w", err)
	}
	return nil
}

// overrider is implemented by stores layered over the environment.
type overrider interface {
	Overridden(key string) bool
}

// Overridden reports whether key comes from the environment.
func (s *SettingsService) Overridden(key string) bool {
	o, ok := s.configStore.(overrider)
	return ok && o.Overridden(key)
}

// Validate checks if current settings are valid.
func (s *SettingsService) Validate() error {
	_, err := s.Get()
	return err
}

// Reload re-reads the settings file.
func (s *SettingsService) Reload() error {
	if err := s.configStore.Load(); err != nil {
		return fmt.Errorf("reload settings: %w", err)
	}
	logger.Debug("Settings reloaded from %s", s.configStore.Path())
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Path returns the settings file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// settingsReader converts raw config values and keeps the first conversion error.
type settingsReader struct {
	store driven.ConfigStore
	err   error
}

func (r *settingsReader) fail(key string, val any, reason string) {
	if r.err == nil {
		r.err = &domain.ValidationError{Field: key, Value: fmt.Sprint(val), Reason: reason}
	}
}

func (r *settingsReader) getString(key, defaultVal string) string {
	val, ok := r.store.Get(key)
	if !ok || val == nil {
		return defaultVal
	}

	var str string
	switch v := val.(type) {
	case string:
		str = v
	case int, int64, float64, bool:
		str = fmt.Sprint(v)
	default:
		r.fail(key, val, "must be a string")
		return defaultVal
	}

	if strings.TrimSpace(str) == "" {
		return defaultVal
	}
	return str
}

func (r *settingsReader) getInt(key string, defaultVal int) int {
	val, ok := r.store.Get(key)
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		if v <= math.MaxInt32 {
			return int(v)
		}
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32 {
			return int(v)
		}
	case string:
		if strings.TrimSpace(v) == "" {
			return defaultVal
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return n
		}
	}

	r.fail(key, val, "must be an integer")
	return defaultVal
}

func (r *settingsReader) getBool(key string, defaultVal bool) bool {
	val, ok := r.store.Get(key)
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case bool:
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return defaultVal
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b
		}
	}

	r.fail(key, val, "must be a boolean")
	return defaultVal
}

func (r *settingsReader) getStrategy(defaultVal domain.QnAStrategy) domain.QnAStrategy {
	val := r.getString(domain.KeyQnAStrategy, defaultVal.String())
	// Unknown values are left in place so Validate reports them.
	return domain.QnAStrategy(strings.ToLower(strings.TrimSpace(val)))
}
