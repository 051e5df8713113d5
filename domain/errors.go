package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrDeployKeysUnsupported is returned by platforms that have no deploy key
// feature. It is raised locally, before any network call.
var ErrDeployKeysUnsupported = errors.New("deploy keys are not supported on this platform")

// StatusError is the error surfaced for a 4xx/5xx response. The body is
// decoded before this error is built, so the provider message survives.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// NewStatusError extracts the provider message from a response body.
// A JSON object with a "message" field yields that field; any other body is
// carried as raw text so a non-JSON error page never masks the HTTP status.
func NewStatusError(resp *Response) *StatusError {
	message := http.StatusText(resp.StatusCode)

	if obj, err := resp.JSONObject(); err == nil {
		if text, ok := obj["message"].(string); ok && text != "" {
			message = text
		}
	} else if text := strings.TrimSpace(string(resp.Body)); text != "" {
		message = text
	}

	return &StatusError{StatusCode: resp.StatusCode, Message: message}
}
