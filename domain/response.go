package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DeletionRefusedMessage is returned when a safe-delete slug check fails.
const DeletionRefusedMessage = "Slug does not match project. Deletion refused."

// Response is the raw outcome of a single HTTP call: status, headers and
// undecoded body. Strategies return it as-is; no error is implied by a
// non-2xx status at this level.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewSyntheticResponse builds a response-shaped value for a locally detected
// condition, without any network call. The body carries the message as
// {"message": "<text>"} so it decodes like a real provider error.
func NewSyntheticResponse(statusCode int, message string) *Response {
	body, _ := json.Marshal(map[string]string{"message": message})
	return &Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
	}
}

// DeletionRefused is the synthetic 400 returned instead of deleting a
// project whose identifying field does not match the caller-supplied slug.
func DeletionRefused() *Response {
	return NewSyntheticResponse(http.StatusBadRequest, DeletionRefusedMessage)
}

// IsError reports whether the status is a 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// JSON decodes the body into a generic value (object or array).
func (r *Response) JSON() (any, error) {
	var decoded any
	if err := json.Unmarshal(r.Body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return decoded, nil
}

// JSONObject decodes the body and requires it to be a JSON object.
func (r *Response) JSONObject() (map[string]any, error) {
	decoded, err := r.JSON()
	if err != nil {
		return nil, err
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", decoded)
	}
	return obj, nil
}
