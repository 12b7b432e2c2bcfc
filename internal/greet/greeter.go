// Package greet provides the Greeter, a holder that derives a greeting
// string from a stored identity.
package greet

import (
	"errors"
	"fmt"
)

// ErrCodeInvalidIdentity identifies an empty-identity construction failure.
const ErrCodeInvalidIdentity = "INVALID_IDENTITY"

// InvalidIdentityError reports a Greeter constructed with an empty
// identity. Detected at construction, before any greeting is derived.
type InvalidIdentityError struct{}

// Error implements the error interface.
func (e *InvalidIdentityError) Error() string {
	return fmt.Sprintf("%s: identity must be non-empty", ErrCodeInvalidIdentity)
}

// IsInvalidIdentity returns true if the error is an identity validation
// failure. Uses errors.As to handle wrapped errors.
func IsInvalidIdentity(err error) bool {
	var ie *InvalidIdentityError
	return errors.As(err, &ie)
}

// Greeter holds an identity and derives a greeting from it.
// Stateless beyond the stored identity; constructed on demand, used
// once, then discarded. Never shared across runs.
type Greeter struct {
	identity string
}

// New creates a Greeter storing identity verbatim.
// Empty identities are rejected: there is nobody to greet.
func New(identity string) (*Greeter, error) {
	if identity == "" {
		return nil, &InvalidIdentityError{}
	}
	return &Greeter{identity: identity}, nil
}

// Greet returns the greeting derived from the stored identity.
// Pure function of stored state, no side effects.
func (g *Greeter) Greet() string {
	return "Hello, " + g.identity
}
