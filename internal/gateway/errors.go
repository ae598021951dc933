package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the bearer token was rejected by the backend.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetworkUnavailable indicates the backend could not be reached at
	// the transport level. Callers degrade rather than retry.
	ErrNetworkUnavailable = errors.New("backend unreachable")
)

// RequestFailedError carries a backend business error verbatim so the
// rendering layer can show the server's message unchanged.
type RequestFailedError struct {
	StatusCode int
	Message    string
}

func (e *RequestFailedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsRequestFailed extracts a RequestFailedError from an error chain.
func IsRequestFailed(err error) (*RequestFailedError, bool) {
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
