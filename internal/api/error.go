package api

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Error is a non-2xx response from the Movo backend
type Error struct {
	StatusCode int
	Response   []byte
}

func (e *Error) Error() string {
	if msg := errorMessage(e.Response); msg != "" {
		return fmt.Sprintf("movo api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), msg)
	}
	return fmt.Sprintf("movo api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NewError creates an API error
func NewError(statusCode int, response []byte) *Error {
	return &Error{StatusCode: statusCode, Response: response}
}

// IsHTTPError checks if an error is an API error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// errorMessage extracts {"error": "..."} or {"message": "..."} from a body
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
