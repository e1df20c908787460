// Package cli provides the cobra command tree for wikiqa.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wikiqa-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services aggregates the driving ports used by commands.
type Services struct {
	Settings driving.SettingsService
	Status   driving.StatusService

	// Watch reports changes to the settings file. Nil disables live reload.
	Watch WatchFunc
}

// Options carries global flag values to the bootstrap function.
type Options struct {
	// ConfigPath is the --config flag value; empty when not given.
	ConfigPath string
}

// BootstrapFunc builds services once global flags are parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	settingsService driving.SettingsService
	statusService   driving.StatusService
	watchSettings   WatchFunc
	bootstrap       BootstrapFunc
	bootstrapErr    error

	configPath string
	verbose    bool
	logJSON    bool
)

// errServicesNotConfigured is returned when a command runs without services.
var errServicesNotConfigured = errors.New("settings service not configured")

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "wikiqa",
	Short: "Wiki-QA - Intelligent Document Q&A System",
	Long: `Wiki-QA answers questions over a Wikipedia domain using vector search,
knowledge graph traversal, or both.

Run without arguments in a terminal to open the interactive menu.
Settings are read from config/settings.yaml and WIKIQA_* environment variables.`,
	SilenceUsage:      true,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "settings file (default config/settings.yaml, \"-\" for in-memory)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.BoolVar(&logJSON, "log-json", false, "emit verbose logs as JSON")
	rootCmd.SetVersionTemplate("wikiqa version {{.Version}}\n")
}

// Execute runs the root command.
func Execute(v string, fn BootstrapFunc) error {
	if v != "" {
		version = v
	}
	rootCmd.Version = version
	bootstrap = fn
	return rootCmd.Execute()
}

// SetServices injects services directly, bypassing bootstrap.
func SetServices(s *Services) {
	bootstrapErr = nil
	if s == nil {
		settingsService, statusService, watchSettings = nil, nil, nil
		return
	}
	settingsService = s.Settings
	statusService = s.Status
	watchSettings = s.Watch
}

// setup configures logging and builds services on first use.
func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetJSON(logJSON)
	logger.SetOutput(cmd.ErrOrStderr())

	if settingsService != nil || bootstrap == nil {
		return nil
	}

	services, err := bootstrap(Options{ConfigPath: configPath})
	if err != nil {
		if !cmd.HasParent() {
			// Reported by runRoot, which always exits cleanly
			bootstrapErr = err
			return nil
		}
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(services)
	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	if isInteractive() && settingsService != nil {
		return runTUI(cmd, nil)
	}

	printBanner(cmd)
	if settingsService == nil {
		if bootstrapErr != nil {
			cmd.Printf("Warning: %v\n", bootstrapErr)
			return nil
		}
		cmd.Println("No settings available.")
		return nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		// Non-interactive invocation always exits cleanly
		cmd.Printf("Warning: %v\n", err)
		cmd.Printf("Fix %s and try again.\n", settingsService.Path())
		return nil
	}
	printSummary(cmd, settings)
	cmd.Println()
	cmd.Println("Run 'wikiqa --help' for available commands.")
	return nil
}

func printBanner(cmd *cobra.Command) {
	cmd.Printf("Wiki-QA CLI v%s\n", version)
	cmd.Println("Intelligent Document Q&A System")
	cmd.Println()
}
