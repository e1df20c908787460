package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil settings service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Status: &mockStatusService{}}, "1.0.0")
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSettingsService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil, "1.0.0")
		assert.ErrorIs(t, err, ErrMissingSettingsService)
		assert.Nil(t, server)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Settings: &mockSettingsService{}}, "1.0.0")
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil settings service returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingSettingsService)
	})

	t.Run("settings only is valid", func(t *testing.T) {
		ports := &Ports{Settings: &mockSettingsService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Settings: &mockSettingsService{},
			Status:   &mockStatusService{},
		}
		assert.NoError(t, ports.Validate())
	})
}
