package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/rios0rios0/vcsbus/domain"
)

// DefaultTimeout is applied to every request unless overridden at construction.
const DefaultTimeout = 30 * time.Second

// Executor issues authenticated HTTP calls against a single REST API.
// It builds URLs, injects the bearer token and any platform default headers,
// applies the fixed timeout, and hands back the raw response. Non-2xx
// statuses are not errors at this level; only transport failures are.
type Executor struct {
	baseURL string
	headers map[string]string
	client  *http.Client
}

// NewExecutor creates an executor for baseURL, authenticating every call
// with a bearer token. The headers map carries platform defaults (may be
// nil) and is copied, never mutated. A zero timeout means DefaultTimeout.
func NewExecutor(baseURL, token string, headers map[string]string, timeout time.Duration) *Executor {
	fixed := make(map[string]string, len(headers)+1)
	for key, value := range headers {
		fixed[key] = value
	}
	fixed["Authorization"] = "Bearer " + token

	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout

	return &Executor{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: fixed,
		client:  client,
	}
}

// WithTransport swaps the underlying round tripper, keeping the timeout.
// Used by tests to observe requests without a network.
func (e *Executor) WithTransport(transport http.RoundTripper) *Executor {
	e.client.Transport = transport
	return e
}

// BaseURL returns the API base URL this executor targets.
func (e *Executor) BaseURL() string {
	return e.baseURL
}

// Timeout returns the fixed per-request timeout.
func (e *Executor) Timeout() time.Duration {
	return e.client.Timeout
}

// BuildURL joins the base URL, endpoint and path segments with "/".
// Pure string join: segments must already be URL-safe.
func (e *Executor) BuildURL(endpoint string, segments ...string) string {
	parts := append([]string{e.baseURL, endpoint}, segments...)
	return strings.Join(parts, "/")
}

// Get makes a GET request handling authentication and timeout.
func (e *Executor) Get(ctx context.Context, opts Options, endpoint string, segments ...string) (*domain.Response, error) {
	return e.do(ctx, http.MethodGet, opts, endpoint, segments)
}

// Post makes a POST request handling authentication and timeout.
func (e *Executor) Post(ctx context.Context, opts Options, endpoint string, segments ...string) (*domain.Response, error) {
	return e.do(ctx, http.MethodPost, opts, endpoint, segments)
}

// Put makes a PUT request handling authentication and timeout.
func (e *Executor) Put(ctx context.Context, opts Options, endpoint string, segments ...string) (*domain.Response, error) {
	return e.do(ctx, http.MethodPut, opts, endpoint, segments)
}

// Delete makes a DELETE request handling authentication and timeout.
func (e *Executor) Delete(ctx context.Context, opts Options, endpoint string, segments ...string) (*domain.Response, error) {
	return e.do(ctx, http.MethodDelete, opts, endpoint, segments)
}

// GetJSONOrError makes a GET request, requires a 2xx status, and returns the
// decoded JSON object. Used for lookups whose result feeds a later call
// (e.g. resolving the authenticated username).
func (e *Executor) GetJSONOrError(ctx context.Context, opts Options, endpoint string, segments ...string) (map[string]any, error) {
	resp, err := e.Get(ctx, opts, endpoint, segments...)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, domain.NewStatusError(resp)
	}
	return resp.JSONObject()
}

func (e *Executor) do(ctx context.Context, method string, opts Options, endpoint string, segments []string) (*domain.Response, error) {
	merged, err := Merge(opts, Options{"headers": e.headers})
	if err != nil {
		return nil, err
	}

	target := e.BuildURL(endpoint, segments...)
	if query, ok := merged["query"].(map[string]any); ok {
		target += "?" + encodeQuery(query)
	}

	var body io.Reader
	contentType := ""
	if payload, ok := merged["json"]; ok {
		encoded, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", marshalErr)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if headers, ok := merged["headers"].(map[string]string); ok {
		for key, value := range headers {
			req.Header.Set(key, value)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &domain.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// encodeQuery renders query parameters, skipping nil values so optional
// fields (an absent slug, for instance) never reach the wire.
func encodeQuery(params map[string]any) string {
	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprintf("%v", value))
	}
	return values.Encode()
}
