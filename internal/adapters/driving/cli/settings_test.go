package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/config/env"
	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/services"
)

// Test helper functions in settings.go

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Short key",
			input:    "abc123",
			expected: "****",
		},
		{
			name:     "Exactly 8 chars",
			input:    "12345678",
			expected: "****",
		},
		{
			name:     "Long password",
			input:    "neo4j-1234567890abcdef",
			expected: "neo4...cdef",
		},
		{
			name:     "Very long password",
			input:    "correct-horse-battery-staple",
			expected: "corr...aple",
		},
		{
			name:     "Empty password",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskAPIKey(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{
			name:       "Empty input returns default",
			input:      "",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Valid choice within range",
			input:      "3",
			maxVal:     5,
			defaultVal: 1,
			expected:   3,
		},
		{
			name:       "Choice below minimum returns default",
			input:      "0",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Choice above maximum returns default",
			input:      "6",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Invalid input returns default",
			input:      "abc",
			maxVal:     5,
			defaultVal: 2,
			expected:   2,
		},
		{
			name:       "Negative number returns default",
			input:      "-1",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Whitespace returns default",
			input:      "   ",
			maxVal:     5,
			defaultVal: 1,
			expected:   1,
		},
		{
			name:       "Maximum value is valid",
			input:      "5",
			maxVal:     5,
			defaultVal: 1,
			expected:   5,
		},
		{
			name:       "Minimum value is valid",
			input:      "1",
			maxVal:     5,
			defaultVal: 3,
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseChoice(tt.input, tt.maxVal, tt.defaultVal)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "path", "domain", "strategy", "save"}, names)
}

func TestSettingsShow_Text(t *testing.T) {
	setupTestServices(t, map[string]any{
		domain.KeyDomain:        "Physics",
		domain.KeyQnAStrategy:   "graph",
		domain.KeyNeo4jPassword: "correct-horse-battery-staple",
	})

	out, err := executeCommand(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Domain: Physics")
	assert.Contains(t, out, "Q&A strategy: graph (Use knowledge graph traversal only)")
	assert.Contains(t, out, "Batch size: 50")
	assert.Contains(t, out, "Concurrent requests: 10")
	assert.Contains(t, out, "URI: bolt://localhost:7687")
	assert.Contains(t, out, "Password: corr...aple")
	assert.NotContains(t, out, "correct-horse-battery-staple")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsShow_DefaultsWhenBare(t *testing.T) {
	setupTestServices(t, nil)

	out, err := executeCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Domain: Computer Science")
	assert.Contains(t, out, "Password: (not set)")
}

func TestSettingsShow_JSON(t *testing.T) {
	setupTestServices(t, map[string]any{
		domain.KeyArticleLimit:  250,
		domain.KeyNeo4jPassword: "secret-password",
	})

	out, err := executeCommand(t, "settings", "show", "--json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, float64(250), got["article_limit"])
	assert.Equal(t, "hybrid", got["qna_strategy"])
	assert.NotContains(t, out, "secret-password")
}

func TestSettingsShow_InvalidSettings(t *testing.T) {
	setupTestServices(t, map[string]any{domain.KeyQnAStrategy: "keyword"})

	_, err := executeCommand(t, "settings", "show")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
}

func TestSettingsPath(t *testing.T) {
	setupTestServices(t, nil)

	out, err := executeCommand(t, "settings", "path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestSettingsDomain(t *testing.T) {
	store, _ := setupTestServices(t, nil)

	out, err := executeCommand(t, "settings", "domain", "Quantum", "Physics")

	require.NoError(t, err)
	assert.Contains(t, out, "Domain set to: Quantum Physics")
	assert.Equal(t, "Quantum Physics", store.GetString(domain.KeyDomain))
}

func TestSettingsDomain_BlankFallsBackToDefault(t *testing.T) {
	store, _ := setupTestServices(t, nil)

	out, err := executeCommand(t, "settings", "domain", "  ")

	require.NoError(t, err)
	assert.Contains(t, out, "Domain set to: Computer Science")
	assert.Equal(t, domain.DefaultDomain, store.GetString(domain.KeyDomain))
}

func TestSettingsDomain_WarnsWhenEnvironmentOverrides(t *testing.T) {
	t.Setenv("WIKIQA_DOMAIN", "Physics")
	store := memory.NewConfigStore()
	SetServices(&Services{Settings: services.NewSettingsService(env.NewOverlay(store))})
	prevInteractive := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() {
		SetServices(nil)
		isInteractive = prevInteractive
	})

	out, err := executeCommand(t, "settings", "domain", "Biology")

	require.NoError(t, err)
	assert.Contains(t, out, "Domain set to: Biology")
	assert.Contains(t, out, "Warning: domain is overridden by the environment")
	assert.Equal(t, "Biology", store.GetString(domain.KeyDomain))

	out, err = executeCommand(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Physics")
}

func TestSettingsDomain_NoWarningWithoutOverride(t *testing.T) {
	setupTestServices(t, nil)

	out, err := executeCommand(t, "settings", "domain", "Biology")

	require.NoError(t, err)
	assert.NotContains(t, out, "Warning")
}

func TestSettingsDomain_RequiresArg(t *testing.T) {
	setupTestServices(t, nil)

	_, err := executeCommand(t, "settings", "domain")

	assert.Error(t, err)
}

func TestSettingsStrategy(t *testing.T) {
	store, _ := setupTestServices(t, nil)

	out, err := executeCommand(t, "settings", "strategy", "Graph")

	require.NoError(t, err)
	assert.Contains(t, out, "Q&A strategy set to: graph")
	assert.Equal(t, "graph", store.GetString(domain.KeyQnAStrategy))
}

func TestSettingsStrategy_Invalid(t *testing.T) {
	store, _ := setupTestServices(t, nil)

	_, err := executeCommand(t, "settings", "strategy", "keyword")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
	_, ok := store.Get(domain.KeyQnAStrategy)
	assert.False(t, ok)
}

func TestSettingsStrategy_Prompt(t *testing.T) {
	store, _ := setupTestServices(t, nil)

	out, err := executeCommandWithInput(t, "1\n", "settings", "strategy")

	require.NoError(t, err)
	assert.Contains(t, out, "Select Q&A Strategy")
	assert.Contains(t, out, "Enter choice [3]")
	assert.Equal(t, "vector", store.GetString(domain.KeyQnAStrategy))
}

func TestSettingsStrategy_PromptKeepsCurrentOnEmptyInput(t *testing.T) {
	store, _ := setupTestServices(t, map[string]any{domain.KeyQnAStrategy: "graph"})

	out, err := executeCommandWithInput(t, "\n", "settings", "strategy")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter choice [2]")
	assert.Equal(t, "graph", store.GetString(domain.KeyQnAStrategy))
}

func TestSettingsSave(t *testing.T) {
	store, _ := setupTestServices(t, map[string]any{
		domain.KeyDomain:        "History",
		domain.KeyNeo4jPassword: "secret-password",
	})

	out, err := executeCommand(t, "settings", "save")

	require.NoError(t, err)
	assert.Contains(t, out, "Settings saved to :memory:")
	snapshot := store.Snapshot()
	assert.Equal(t, "History", snapshot[domain.KeyDomain])
	assert.Equal(t, 1000, snapshot[domain.KeyArticleLimit])
	assert.Equal(t, "hybrid", snapshot[domain.KeyQnAStrategy])
	assert.Equal(t, true, snapshot[domain.KeyEnableCitations])
}

func TestSettingsCmd_WithoutServices(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand(t, "settings", "show")

	assert.ErrorIs(t, err, errServicesNotConfigured)
}
