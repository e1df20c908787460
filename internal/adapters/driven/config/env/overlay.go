package env

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wikiqa-cli/internal/logger"
)

// Ensure Overlay implements the interface.
var _ driven.ConfigStore = (*Overlay)(nil)

// Prefix is prepended to every environment variable name.
const Prefix = "WIKIQA"

// DotEnvFile is the default dotenv file, relative to the working directory.
const DotEnvFile = ".env"

// aliases are unprefixed variable names accepted for backend settings.
var aliases = map[string][]string{
	domain.KeyNeo4jURI:             {"NEO4J_URI"},
	domain.KeyNeo4jUser:            {"NEO4J_USER"},
	domain.KeyNeo4jPassword:        {"NEO4J_PASSWORD"},
	domain.KeyQdrantURL:            {"QDRANT_URL"},
	domain.KeyOllamaBaseURL:        {"OLLAMA_BASE_URL"},
	domain.KeyOllamaEmbeddingModel: {"OLLAMA_EMBEDDING_MODEL"},
	domain.KeyOllamaLLMModel:       {"OLLAMA_LLM_MODEL"},
}

// Overlay is a driven.ConfigStore that reads environment variables first
// and falls back to an inner store.
type Overlay struct {
	inner driven.ConfigStore
	v     *viper.Viper
}

// NewOverlay wraps inner with environment overrides for all known settings.
func NewOverlay(inner driven.ConfigStore) *Overlay {
	v := viper.New()
	for _, key := range domain.AllSettingKeys() {
		// BindEnv only fails without a key
		_ = v.BindEnv(append([]string{key}, VarNames(key)...)...)
	}

	return &Overlay{inner: inner, v: v}
}

// VarName returns the prefixed environment variable for a settings key.
func VarName(key string) string {
	return Prefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// VarNames returns every environment variable consulted for key, in
// precedence order.
func VarNames(key string) []string {
	return append([]string{VarName(key)}, aliases[key]...)
}

// LoadDotEnv loads variables from a dotenv file into the process
// environment. Variables that are already set are left untouched.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DotEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("Loaded environment from %s", path)
	return nil
}

// Overridden reports whether key currently comes from the environment.
func (o *Overlay) Overridden(key string) bool {
	return o.v.IsSet(key)
}

// Get retrieves a configuration value, preferring the environment.
func (o *Overlay) Get(key string) (any, bool) {
	if o.v.IsSet(key) {
		return o.v.Get(key), true
	}
	return o.inner.Get(key)
}

// GetString retrieves a string configuration value.
func (o *Overlay) GetString(key string) string {
	if o.v.IsSet(key) {
		return o.v.GetString(key)
	}
	return o.inner.GetString(key)
}

// GetInt retrieves an integer configuration value.
// Environment values that are not integers read as 0.
func (o *Overlay) GetInt(key string) int {
	if o.v.IsSet(key) {
		return o.v.GetInt(key)
	}
	return o.inner.GetInt(key)
}

// GetBool retrieves a boolean configuration value.
func (o *Overlay) GetBool(key string) bool {
	if o.v.IsSet(key) {
		return o.v.GetBool(key)
	}
	return o.inner.GetBool(key)
}

// GetStringSlice retrieves a string slice configuration value.
// Environment values are split on commas.
func (o *Overlay) GetStringSlice(key string) []string {
	if o.v.IsSet(key) {
		parts := strings.Split(o.v.GetString(key), ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				result = append(result, p)
			}
		}
		return result
	}
	return o.inner.GetStringSlice(key)
}

// Set writes to the inner store. An active environment override still
// shadows the stored value on the next read.
func (o *Overlay) Set(key string, value any) error {
	if o.v.IsSet(key) {
		logger.Debug("%s is overridden by the environment; saved value is shadowed", key)
	}
	return o.inner.Set(key, value)
}

// Save persists the inner store.
func (o *Overlay) Save() error {
	return o.inner.Save()
}

// Load reloads the inner store. Environment values are read on every access.
func (o *Overlay) Load() error {
	return o.inner.Load()
}

// Path returns the inner store's path.
func (o *Overlay) Path() string {
	return o.inner.Path()
}
