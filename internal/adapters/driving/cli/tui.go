package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/wikiqa-cli/internal/logger"
)

// WatchFunc reports changes to the file at path until ctx is cancelled.
type WatchFunc func(ctx context.Context, path string) (<-chan struct{}, error)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive menu",
	Long: `Launch the interactive terminal menu for Wiki-QA.

Controls:
  ↑/k, ↓/j - Navigate
  1-6      - Jump to a menu item
  Enter    - Select
  Esc      - Back
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	ports := &tui.Ports{
		Settings: settingsService,
		Status:   statusService,
	}

	if watchSettings != nil && settingsService != nil {
		changes, err := watchSettings(ctx, settingsService.Path())
		if err != nil {
			// Live reload is optional
			logger.Warn("Settings will not reload automatically: %v", err)
		} else {
			ports.Changes = changes
		}
	}

	app, err := tui.NewApp(ports, version)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Log lines would corrupt the full-screen display
	if !logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(cmd.ErrOrStderr())
	}

	if err := app.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
