package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// errBackendsNotReady is returned by status --strict.
var errBackendsNotReady = errors.New("required backends are not reachable")

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show settings and backend status",
	Long: `Show the effective settings and check the backends the current Q&A
strategy depends on: Ollama for every strategy, Qdrant for vector and hybrid,
Neo4j for graph and hybrid.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().Bool("json", false, "output as JSON")
	statusCmd.Flags().Bool("offline", false, "skip backend checks")
	statusCmd.Flags().Bool("strict", false, "exit with an error if a required backend is down")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if statusService == nil {
		return errors.New("status service not configured")
	}

	offline, _ := cmd.Flags().GetBool("offline")
	strict, _ := cmd.Flags().GetBool("strict")
	asJSON, _ := cmd.Flags().GetBool("json")

	var (
		report *domain.StatusReport
		err    error
	)
	if offline {
		report, err = statusService.Summary()
	} else {
		report, err = statusService.Check(cmd.Context(), true)
	}
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if asJSON {
		if err := writeJSON(cmd, report); err != nil {
			return err
		}
	} else {
		printStatus(cmd, report, offline)
	}

	if strict && !offline && !report.Ready() {
		return errBackendsNotReady
	}
	return nil
}

func printStatus(cmd *cobra.Command, report *domain.StatusReport, offline bool) {
	printSummary(cmd, &report.Settings)
	cmd.Println()

	cmd.Println("[Backends]")
	if offline || len(report.Backends) == 0 {
		cmd.Println("  (not checked)")
		return
	}

	for _, b := range report.Backends {
		state := "ok"
		if !b.Reachable {
			state = "unreachable"
		}
		need := "optional"
		if b.Required {
			need = "required"
		}
		cmd.Printf("  %-7s %-11s %-8s %s\n", b.Backend, state, need, b.Endpoint)
		if b.Reachable && b.Detail != "" {
			cmd.Printf("          %s (%s)\n", b.Detail, b.Latency.Round(time.Millisecond))
		}
		if b.Error != "" {
			cmd.Printf("          %s\n", b.Error)
		}
	}
	cmd.Println()

	if report.Ready() {
		cmd.Printf("Ready for %s Q&A.\n", report.Settings.Strategy)
	} else {
		cmd.Printf("Not ready: %d required backend(s) unreachable.\n", len(report.Unreachable()))
	}
	if report.Cached {
		cmd.Printf("(cached result from %s)\n", report.CheckedAt.Format(time.Kitchen))
	}
}
