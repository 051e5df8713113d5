package domain

import "time"

// ProjectOptions carries the caller-supplied parts of a create or update
// request. Fields holds provider-specific payload keys and wins key-by-key
// over the platform defaults.
type ProjectOptions struct {
	Slug   string
	Fields map[string]any
}

// SlugOr returns the explicit slug, or fallback when none was supplied.
func (o ProjectOptions) SlugOr(fallback string) string {
	if o.Slug != "" {
		return o.Slug
	}
	return fallback
}

// DeployKey describes a deploy key to be registered on a project.
type DeployKey struct {
	Title    string `validate:"required"`
	Key      string `validate:"required"` // SSH public key material
	ReadOnly bool
}

// Endpoint holds the connection settings a strategy is constructed with.
// All fields are fixed at construction; a zero BaseURL or Timeout falls
// back to the platform default.
type Endpoint struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// Envelope is the decoded result of a single operation: the JSON body
// (object or array) together with the HTTP status it arrived with. It is
// returned by value from every facade operation rather than held as shared
// state, so concurrent callers never race on it.
type Envelope struct {
	StatusCode int
	Body       any
}

// Object returns the body as a JSON object, or nil when the body is not one.
func (e *Envelope) Object() map[string]any {
	obj, _ := e.Body.(map[string]any)
	return obj
}
