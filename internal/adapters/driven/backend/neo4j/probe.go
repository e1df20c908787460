// Package neo4j provides a status probe for a Neo4j server over Bolt.
package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/custodia-labs/wikiqa-cli/internal/core/domain"
	"github.com/custodia-labs/wikiqa-cli/internal/core/ports/driven"
)

// Ensure Probe implements the interface.
var _ driven.BackendProbe = (*Probe)(nil)

// DefaultConnectTimeout bounds the Bolt socket connect.
const DefaultConnectTimeout = 5 * time.Second

// Probe checks Neo4j connectivity. A driver is opened per probe and closed
// before Probe returns.
type Probe struct {
	uri      string
	user     string
	password string
	timeout  time.Duration
}

// NewProbe creates a Neo4j probe from connection settings.
func NewProbe(cfg domain.Neo4jSettings) *Probe {
	uri := cfg.URI
	if uri == "" {
		uri = domain.DefaultNeo4jURI
	}
	return &Probe{
		uri:      uri,
		user:     cfg.User,
		password: cfg.Password,
		timeout:  DefaultConnectTimeout,
	}
}

// Kind returns domain.BackendNeo4j.
func (p *Probe) Kind() domain.BackendKind {
	return domain.BackendNeo4j
}

// Endpoint returns the Bolt URI.
func (p *Probe) Endpoint() string {
	return p.uri
}

// Probe verifies connectivity and reports the server agent.
func (p *Probe) Probe(ctx context.Context) (string, error) {
	auth := neo4j.NoAuth()
	if p.user != "" {
		auth = neo4j.BasicAuth(p.user, p.password, "")
	}

	driver, err := neo4j.NewDriverWithContext(p.uri, auth, func(c *neo4j.Config) {
		c.SocketConnectTimeout = p.timeout
		c.MaxConnectionPoolSize = 1
	})
	if err != nil {
		return "", fmt.Errorf("neo4j: create driver: %w", err)
	}
	defer driver.Close(ctx) //nolint:errcheck

	info, err := driver.GetServerInfo(ctx)
	if err != nil {
		return "", fmt.Errorf("neo4j: %w: %w", domain.ErrBackendUnreachable, err)
	}

	return info.Agent(), nil
}

// Close releases resources.
func (p *Probe) Close() error {
	return nil
}
