package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiqa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/services"
)

// mockSettingsService is a mock implementation of driving.SettingsService
// that fails every call with err.
type mockSettingsService struct {
	err error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return nil, m.err
}

func (m *mockSettingsService) Save(_ *domain.Settings) error {
	return m.err
}

func (m *mockSettingsService) SetDomain(_ string) error {
	return m.err
}

func (m *mockSettingsService) SetStrategy(_ domain.QnAStrategy) error {
	return m.err
}

func (m *mockSettingsService) Validate() error {
	return m.err
}

func (m *mockSettingsService) Reload() error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (m *mockSettingsService) Path() string {
	return ""
}

func (m *mockSettingsService) Overridden(_ string) bool {
	return false
}

// mockStatusService is a mock implementation of driving.StatusService.
type mockStatusService struct {
	report  *domain.StatusReport
	err     error
	refresh []bool
}

func (m *mockStatusService) Check(_ context.Context, refresh bool) (*domain.StatusReport, error) {
	m.refresh = append(m.refresh, refresh)
	return m.report, m.err
}

func (m *mockStatusService) Summary() (*domain.StatusReport, error) {
	return m.report, m.err
}

// newTestServer creates a server backed by an in-memory settings store.
func newTestServer(t *testing.T, status *mockStatusService) (*Server, *memory.ConfigStore) {
	t.Helper()

	store := memory.NewConfigStore()
	ports := &Ports{Settings: services.NewSettingsService(store)}
	if status != nil {
		ports.Status = status
	}

	server, err := NewServer(ports, "1.0.0")
	require.NoError(t, err)
	return server, store
}
