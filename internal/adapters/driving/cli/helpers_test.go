package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/services"
)

// fakeStatusService implements driving.StatusService for tests.
type fakeStatusService struct {
	report    *domain.StatusReport
	err       error
	checks    int
	refresh   bool
	summaries int
}

func (f *fakeStatusService) Check(_ context.Context, refresh bool) (*domain.StatusReport, error) {
	f.checks++
	f.refresh = refresh
	return f.report, f.err
}

func (f *fakeStatusService) Summary() (*domain.StatusReport, error) {
	f.summaries++
	if f.err != nil {
		return nil, f.err
	}
	return &domain.StatusReport{Settings: f.report.Settings}, nil
}

// setupTestServices installs services backed by an in-memory store.
func setupTestServices(t *testing.T, seed map[string]any) (*memory.ConfigStore, *fakeStatusService) {
	t.Helper()

	store := memory.NewConfigStoreFrom(seed)
	status := &fakeStatusService{report: &domain.StatusReport{Settings: domain.DefaultSettings()}}
	SetServices(&Services{
		Settings: services.NewSettingsService(store),
		Status:   status,
	})

	prevInteractive := isInteractive
	isInteractive = func() bool { return false }

	t.Cleanup(func() {
		SetServices(nil)
		isInteractive = prevInteractive
	})
	return store, status
}

// executeCommand runs the root command with args and returns its output.
// Flag values are reset first since cobra keeps them between executions.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandWithInput(t, "", args...)
}

func executeCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
