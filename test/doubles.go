// Package testdoubles provides test doubles (spies, stubs, dummies) for the
// strategy and transport layers. These are hand-crafted implementations — no
// mock frameworks.
package testdoubles

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/rios0rios0/vcsbus/domain"
)

// ---------------------------------------------------------------------------
// SpyTransport
// ---------------------------------------------------------------------------

// SpyTransport implements http.RoundTripper as a configurable spy. Stub the
// routes your test exercises, then inspect the recorded requests to verify
// which calls went out (and which did not).
type SpyTransport struct {
	routes []route

	// spy: every request that reached the transport, in order
	Requests []*http.Request

	// Err simulates a transport failure for all requests.
	Err error
}

type route struct {
	method string
	path   string
	status int
	body   string
}

// Stub registers a canned JSON response for a method and URL path.
func (t *SpyTransport) Stub(method, path string, status int, body string) *SpyTransport {
	t.routes = append(t.routes, route{method: method, path: path, status: status, body: body})
	return t
}

// RoundTrip records the request and serves the first matching stub.
// Unstubbed routes answer 404 so tests fail loudly on unexpected calls.
func (t *SpyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.Requests = append(t.Requests, req)
	if t.Err != nil {
		return nil, t.Err
	}

	for _, r := range t.routes {
		if r.method == req.Method && r.path == req.URL.Path {
			return jsonResponse(r.status, r.body), nil
		}
	}
	return jsonResponse(http.StatusNotFound, `{"message": "Not Found"}`), nil
}

// Calls returns the recorded requests issued with the given method.
func (t *SpyTransport) Calls(method string) []*http.Request {
	var calls []*http.Request
	for _, req := range t.Requests {
		if req.Method == method {
			calls = append(calls, req)
		}
	}
	return calls
}

// CallCount returns how many requests were issued with the given method.
func (t *SpyTransport) CallCount(method string) int {
	return len(t.Calls(method))
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// ---------------------------------------------------------------------------
// SpyStrategy
// ---------------------------------------------------------------------------

// Deletion records one safe-delete attempt received by the spy.
type Deletion struct {
	Key  string
	Slug string
}

// SpyStrategy implements domain.Strategy as a configurable spy. Configure
// Response/Err for the operations your test exercises, then inspect the
// call-tracking fields to verify behavior.
type SpyStrategy struct {
	// --- identity ---
	StrategyName string

	// --- canned result for every operation ---
	Response *domain.Response
	Err      error

	// --- spy: inputs received ---
	CreatedNames []string
	UpdatedKeys  []string
	Deletions    []Deletion
	ListCalls    int
	DetailKeys   []string
	DeployKeys   []domain.DeployKey
}

var _ domain.Strategy = (*SpyStrategy)(nil)

func (s *SpyStrategy) Name() string { return s.StrategyName }

func (s *SpyStrategy) CreateProject(_ context.Context, name string, _ domain.ProjectOptions) (*domain.Response, error) {
	s.CreatedNames = append(s.CreatedNames, name)
	return s.Response, s.Err
}

func (s *SpyStrategy) UpdateProject(_ context.Context, key string, _ domain.ProjectOptions) (*domain.Response, error) {
	s.UpdatedKeys = append(s.UpdatedKeys, key)
	return s.Response, s.Err
}

func (s *SpyStrategy) DeleteProject(_ context.Context, key, slug string) (*domain.Response, error) {
	s.Deletions = append(s.Deletions, Deletion{Key: key, Slug: slug})
	return s.Response, s.Err
}

func (s *SpyStrategy) ListProjects(_ context.Context) (*domain.Response, error) {
	s.ListCalls++
	return s.Response, s.Err
}

func (s *SpyStrategy) ProjectDetails(_ context.Context, key string) (*domain.Response, error) {
	s.DetailKeys = append(s.DetailKeys, key)
	return s.Response, s.Err
}

func (s *SpyStrategy) AddDeployKey(_ context.Context, _ string, key domain.DeployKey) (*domain.Response, error) {
	s.DeployKeys = append(s.DeployKeys, key)
	return s.Response, s.Err
}
