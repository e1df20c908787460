package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Wikipedia domain, Q&A strategy and tuning options.

Settings are layered: built-in defaults, then the YAML settings file, then
WIKIQA_* environment variables. Backend connection settings also honour
NEO4J_URI, QDRANT_URL, OLLAMA_BASE_URL and friends.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errServicesNotConfigured
		}
		cmd.Println(settingsService.Path())
		return nil
	},
}

var settingsDomainCmd = &cobra.Command{
	Use:   "domain <name>",
	Short: "Set the Wikipedia domain",
	Long: `Set the Wikipedia domain articles are drawn from.

Multiple words are joined, so quoting is optional:
  wikiqa settings domain Computer Science`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSettingsDomain,
}

var settingsStrategyCmd = &cobra.Command{
	Use:   "strategy <vector|graph|hybrid>",
	Short: "Set the Q&A strategy",
	Long: `Set the strategy used to answer questions.

Available strategies:
  vector - Use semantic similarity search only
  graph  - Use knowledge graph traversal only
  hybrid - Combine both approaches (recommended)

Without an argument, the strategies are listed and one is read from stdin.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: strategyNames(),
	RunE:      runSettingsStrategy,
}

var settingsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective settings to the settings file",
	Long: `Write the effective top-level settings, including environment overrides,
to the settings file. Backend connection settings are never written.`,
	Args: cobra.NoArgs,
	RunE: runSettingsSave,
}

func init() {
	settingsCmd.PersistentFlags().Bool("json", false, "output as JSON")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsDomainCmd)
	settingsCmd.AddCommand(settingsStrategyCmd)
	settingsCmd.AddCommand(settingsSaveCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errServicesNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd, settings)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	printSummary(cmd, settings)
	cmd.Println()

	cmd.Println("[Tuning]")
	cmd.Printf("  Batch size: %d\n", settings.BatchSize)
	cmd.Printf("  Concurrent requests: %d\n", settings.ConcurrentRequests)
	cmd.Printf("  Cache embeddings: %s\n", settings.CacheEmbeddingsLabel())
	cmd.Println()

	cmd.Println("[Neo4j]")
	cmd.Printf("  URI: %s\n", settings.Neo4j.URI)
	cmd.Printf("  User: %s\n", settings.Neo4j.User)
	if settings.Neo4j.Password != "" {
		cmd.Printf("  Password: %s\n", maskAPIKey(settings.Neo4j.Password))
	} else {
		cmd.Printf("  Password: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Qdrant]")
	cmd.Printf("  URL: %s\n", settings.Qdrant.URL)
	cmd.Println()

	cmd.Println("[Ollama]")
	cmd.Printf("  Base URL: %s\n", settings.Ollama.BaseURL)
	cmd.Printf("  Embedding model: %s\n", settings.Ollama.EmbeddingModel)
	cmd.Printf("  LLM model: %s\n", settings.Ollama.LLMModel)
	cmd.Println()

	cmd.Printf("Settings file: %s\n", settingsService.Path())
	cmd.Println("Configuration is valid.")
	return nil
}

func runSettingsDomain(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errServicesNotConfigured
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if err := settingsService.SetDomain(name); err != nil {
		return fmt.Errorf("failed to set domain: %w", err)
	}
	if name == "" {
		name = domain.DefaultDomain
	}
	cmd.Printf("Domain set to: %s\n", name)
	warnOverridden(cmd, domain.KeyDomain)
	return nil
}

func runSettingsStrategy(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errServicesNotConfigured
	}

	var strategy domain.QnAStrategy
	if len(args) == 0 {
		strategy = promptStrategy(cmd)
	} else {
		parsed, err := domain.ParseQnAStrategy(args[0])
		if err != nil {
			return err
		}
		strategy = parsed
	}

	if err := settingsService.SetStrategy(strategy); err != nil {
		return fmt.Errorf("failed to set strategy: %w", err)
	}
	cmd.Printf("Q&A strategy set to: %s (%s)\n", strategy, strategy.Description())
	warnOverridden(cmd, domain.KeyQnAStrategy)
	return nil
}

// warnOverridden tells the user when the environment shadows a saved key.
func warnOverridden(cmd *cobra.Command, key string) {
	if settingsService.Overridden(key) {
		cmd.Printf("Warning: %s is overridden by the environment; the saved value takes effect once it is unset\n", key)
	}
}

func runSettingsSave(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errServicesNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("Settings saved to %s\n", settingsService.Path())
	return nil
}

// promptStrategy lists strategies and reads a numbered choice.
// The current strategy is the default.
func promptStrategy(cmd *cobra.Command) domain.QnAStrategy {
	strategies := domain.AllQnAStrategies()
	current := domain.DefaultQnAStrategy
	if settings, err := settingsService.Get(); err == nil {
		current = settings.Strategy
	}

	defaultIdx := 1
	cmd.Println("Select Q&A Strategy")
	cmd.Println("-------------------")
	for i, s := range strategies {
		if s == current {
			defaultIdx = i + 1
		}
		cmd.Printf("  %d. %-6s - %s\n", i+1, s, s.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)

	reader := bufio.NewReader(cmd.InOrStdin())
	choice := parseChoice(readLine(reader), len(strategies), defaultIdx)
	cmd.Println()
	return strategies[choice-1]
}

// printSummary prints the settings shown on the status screen.
func printSummary(cmd *cobra.Command, settings *domain.Settings) {
	cmd.Println("[General]")
	cmd.Printf("  Domain: %s\n", settings.Domain)
	cmd.Printf("  Q&A strategy: %s (%s)\n", settings.Strategy, settings.Strategy.Description())
	cmd.Printf("  Article limit: %d\n", settings.ArticleLimit)
	cmd.Printf("  Citations: %s\n", settings.CitationsLabel())
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func strategyNames() []string {
	all := domain.AllQnAStrategies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return names
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
