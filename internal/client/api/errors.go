package api

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned when a request exceeds the configured client-side
// timeout. The text is shown to the user as-is and must stay distinguishable
// from server-returned errors.
var ErrTimeout = errors.New("Request timeout - please check your connection")

// Error is a server-rejected request (non-2xx response). Detail carries the
// server's "detail" field verbatim when the body was parseable JSON.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}
