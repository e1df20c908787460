// Package mcp provides an MCP (Model Context Protocol) server adapter for wikiqa.
// It lets AI assistants read and change Q&A settings and check backend status.
package mcp

import "errors"

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("mcp: settings service is required")

// ErrStatusUnavailable is returned when backend checks are requested
// but no status service was provided.
var ErrStatusUnavailable = errors.New("mcp: status service not available")
