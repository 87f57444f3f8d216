package errors

import "fmt"

// HTTPError is an error that knows how it should be rendered to a client.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     string
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithDetail returns a copy of e carrying detail.
func (e *HTTPError) WithDetail(detail string) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}
