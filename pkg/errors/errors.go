package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the status code and any extra body
// fields the delivery layer should expose to the client.
type HTTPError struct {
	Code    int
	Message string
	Data    map[string]any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{Code: code, Message: msg}
}

// NewHTTPErrorWithData returns an HTTPError whose extra fields are merged into the response body.
func NewHTTPErrorWithData(code int, msg string, data map[string]any) *HTTPError {
	return &HTTPError{Code: code, Message: msg, Data: data}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden           = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)

// AsHTTPError reports whether err wraps an *HTTPError and returns it.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
