package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errs := []error{
		ErrInvalidSetting,
		ErrUnknownSetting,
		ErrConfigParse,
		ErrSessionUnavailable,
		ErrBackendUnreachable,
		ErrModelMissing,
	}

	for i, a := range errs {
		for j, b := range errs {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: KeyArticleLimit, Value: "0", Reason: "must be between 1 and 10000"}

	assert.Equal(t, `invalid setting: article_limit must be between 1 and 10000 (got "0")`, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidSetting))

	wrapped := fmt.Errorf("load settings: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidSetting)
}
