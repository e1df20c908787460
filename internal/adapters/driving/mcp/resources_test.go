package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns settings as JSON", func(t *testing.T) {
		server, store := newTestServer(t, nil)
		require.NoError(t, store.Set(domain.KeyDomain, "History"))
		require.NoError(t, store.Set(domain.KeyNeo4jPassword, "hunter2"))

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest(settingsURI))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Equal(t, settingsURI, result.Contents[0].URI)

		var out SettingsOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &out))
		assert.Equal(t, "History", out.Domain)
		assert.NotContains(t, result.Contents[0].Text, "hunter2")
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Settings: &mockSettingsService{err: errors.New("bad file")}}, "1.0.0")
		require.NoError(t, err)

		_, err = server.handleSettingsResource(ctx, makeReadResourceRequest(settingsURI))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad file")
	})
}

func TestServer_handleStatusResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil status service returns not found", func(t *testing.T) {
		server, _ := newTestServer(t, nil)

		_, err := server.handleStatusResource(ctx, makeReadResourceRequest(statusURI))

		require.Error(t, err)
	})

	t.Run("reuses recent report", func(t *testing.T) {
		status := &mockStatusService{report: sampleReport()}
		server, _ := newTestServer(t, status)

		result, err := server.handleStatusResource(ctx, makeReadResourceRequest(statusURI))

		require.NoError(t, err)
		assert.Equal(t, []bool{false}, status.refresh)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"backend": "qdrant"`)
		assert.Contains(t, result.Contents[0].Text, `"ready": false`)
	})

	t.Run("returns error on check failure", func(t *testing.T) {
		status := &mockStatusService{err: errors.New("boom")}
		server, _ := newTestServer(t, status)

		_, err := server.handleStatusResource(ctx, makeReadResourceRequest(statusURI))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "checking backends")
	})
}
