package qdrant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
)

func TestProbe(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
		wantErr    error
	}{
		{
			name:       "collections listed",
			status:     http.StatusOK,
			body:       `{"result":{"collections":[{"name":"articles"},{"name":"chunks"}]},"status":"ok","time":0.1}`,
			wantDetail: "2 collections",
		},
		{
			name:       "single collection",
			status:     http.StatusOK,
			body:       `{"result":{"collections":[{"name":"articles"}]},"status":"ok"}`,
			wantDetail: "1 collection",
		},
		{
			name:       "empty",
			status:     http.StatusOK,
			body:       `{"result":{"collections":[]},"status":"ok"}`,
			wantDetail: "0 collections",
		},
		{
			name:    "server error",
			status:  http.StatusServiceUnavailable,
			body:    "starting",
			wantErr: domain.ErrBackendUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/collections", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewProbe(srv.URL+"/", 0)
			detail, err := p.Probe(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestProbe_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewProbe(url, 0).Probe(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnreachable)
}

func TestNewProbe_Defaults(t *testing.T) {
	p := NewProbe("", 0)

	assert.Equal(t, domain.DefaultQdrantURL, p.Endpoint())
	assert.Equal(t, domain.BackendQdrant, p.Kind())
	assert.Equal(t, DefaultTimeout, p.client.Timeout)
	assert.NoError(t, p.Close())
}
