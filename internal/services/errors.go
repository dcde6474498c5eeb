package services

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for malformed, expired or blacklisted tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
