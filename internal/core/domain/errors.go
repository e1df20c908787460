package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidSetting indicates a setting value violates its constraints.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrUnknownSetting indicates a setting key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrConfigParse indicates the settings file could not be decoded.
	ErrConfigParse = errors.New("settings file could not be parsed")

	// ErrSessionUnavailable indicates Q&A sessions cannot start yet.
	// Articles must be ingested before questions can be answered.
	ErrSessionUnavailable = errors.New("Q&A session not yet implemented")

	// Backend Errors.

	// ErrBackendUnreachable indicates a backend did not respond.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrModelMissing indicates a configured Ollama model has not been pulled.
	ErrModelMissing = errors.New("model not available")
)

// ValidationError describes which setting failed validation and why.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s (got %q)", ErrInvalidSetting, e.Field, e.Reason, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidSetting.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidSetting
}
