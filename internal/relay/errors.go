package relay

import (
	"errors"
	"fmt"
)

var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrInvalidBody      = errors.New("invalid JSON body")
	ErrMissingIdea      = errors.New("missing idea")
	ErrMissingAPIKey    = errors.New("provider api key not configured")
)

// UpstreamError wraps a failed call to the generation provider.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
