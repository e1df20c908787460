package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// MockSettingsService implements driving.SettingsService for testing.
type MockSettingsService struct {
	GetFunc         func() (*domain.Settings, error)
	SetDomainFunc   func(name string) error
	SetStrategyFunc func(strategy domain.QnAStrategy) error
	ReloadFunc      func() error
	OverriddenKeys  []string

	reloads int
}

func (m *MockSettingsService) Get() (*domain.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc()
	}
	settings := domain.DefaultSettings()
	return &settings, nil
}

func (m *MockSettingsService) Save(_ *domain.Settings) error {
	return nil
}

func (m *MockSettingsService) SetDomain(name string) error {
	if m.SetDomainFunc != nil {
		return m.SetDomainFunc(name)
	}
	return nil
}

func (m *MockSettingsService) SetStrategy(strategy domain.QnAStrategy) error {
	if m.SetStrategyFunc != nil {
		return m.SetStrategyFunc(strategy)
	}
	return nil
}

func (m *MockSettingsService) Validate() error {
	return nil
}

func (m *MockSettingsService) Reload() error {
	m.reloads++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}

func (m *MockSettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (m *MockSettingsService) Path() string {
	return "config/settings.yaml"
}

func (m *MockSettingsService) Overridden(key string) bool {
	for _, k := range m.OverriddenKeys {
		if k == key {
			return true
		}
	}
	return false
}

// MockStatusService implements driving.StatusService for testing.
type MockStatusService struct {
	CheckFunc func(ctx context.Context, refresh bool) (*domain.StatusReport, error)
}

func (m *MockStatusService) Check(ctx context.Context, refresh bool) (*domain.StatusReport, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, refresh)
	}
	return &domain.StatusReport{Settings: domain.DefaultSettings()}, nil
}

func (m *MockStatusService) Summary() (*domain.StatusReport, error) {
	return &domain.StatusReport{Settings: domain.DefaultSettings()}, nil
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{
			name:    "nil ports",
			ports:   nil,
			wantErr: ErrInvalidPorts,
		},
		{
			name:    "missing settings service",
			ports:   &Ports{Status: &MockStatusService{}},
			wantErr: ErrMissingSettingsService,
		},
		{
			name:  "settings only",
			ports: &Ports{Settings: &MockSettingsService{}},
		},
		{
			name: "all ports",
			ports: &Ports{
				Settings: &MockSettingsService{},
				Status:   &MockStatusService{},
				Changes:  make(chan struct{}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
