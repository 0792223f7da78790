package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is wrapped by APIError for 401-class responses so callers
// can route the user back to login with errors.Is.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries the HTTP status of a failed API call so callers can
// branch on the class of failure without string matching.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return ErrUnauthorized
	}
	return nil
}
