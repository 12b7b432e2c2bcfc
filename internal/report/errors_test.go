package report

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidCountErrorMessage(t *testing.T) {
	err := &InvalidCountError{Count: -5}
	assert.Contains(t, err.Error(), ErrCodeInvalidCount)
	assert.Contains(t, err.Error(), "-5")
}

func TestIsInvalidCount(t *testing.T) {
	_, err := Run(-3, nil)
	require.Error(t, err)
	assert.True(t, IsInvalidCount(err))

	wrapped := fmt.Errorf("running report: %w", err)
	assert.True(t, IsInvalidCount(wrapped))
}

func TestIsInvalidCountOtherError(t *testing.T) {
	assert.False(t, IsInvalidCount(errors.New("boom")))
	assert.False(t, IsInvalidCount(nil))
}
