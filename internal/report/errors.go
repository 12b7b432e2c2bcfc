package report

import (
	"errors"
	"fmt"
)

// ErrCodeInvalidCount identifies a negative-count validation failure.
const ErrCodeInvalidCount = "INVALID_COUNT"

// InvalidCountError reports a negative enumeration count.
// Detected before any output line is produced.
type InvalidCountError struct {
	// Count is the rejected input value.
	Count int64
}

// Error implements the error interface.
func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("%s: count must be >= 0, got %d", ErrCodeInvalidCount, e.Count)
}

// IsInvalidCount returns true if the error is a count validation
// failure. Uses errors.As to handle wrapped errors.
func IsInvalidCount(err error) bool {
	var ce *InvalidCountError
	return errors.As(err, &ce)
}
