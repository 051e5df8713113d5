package gitlab

import (
	"context"
	"errors"
	"net/http"

	"github.com/rios0rios0/vcsbus/domain"
	"github.com/rios0rios0/vcsbus/infrastructure/request"
)

// See: https://docs.gitlab.com/ce/api/

const (
	providerName   = "gitlab"
	defaultBaseURL = "https://gitlab.com/api/v4"
)

var errMissingPath = errors.New("gitlab project details have no path field")

// Strategy implements domain.Strategy for GitLab.
// GitLab takes its payloads as query parameters rather than JSON bodies.
type Strategy struct {
	exec *request.Executor
}

// New creates a GitLab strategy for the given endpoint.
func New(endpoint domain.Endpoint) domain.Strategy {
	baseURL := endpoint.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Strategy{
		exec: request.NewExecutor(baseURL, endpoint.Token, nil, endpoint.Timeout),
	}
}

// WithTransport swaps the HTTP transport. Used by tests.
func (s *Strategy) WithTransport(transport http.RoundTripper) *Strategy {
	s.exec.WithTransport(transport)
	return s
}

func (s *Strategy) Name() string { return providerName }

// CreateProject creates a repository project on GitLab.
func (s *Strategy) CreateProject(ctx context.Context, name string, opts domain.ProjectOptions) (*domain.Response, error) {
	params := map[string]any{
		"builds_enabled":         true,
		"issues_enabled":         false,
		"merge_requests_enabled": true,
		"name":                   name,
		"public":                 false,
		"public_builds":          false,
		"snippets_enabled":       false,
		"wiki_enabled":           false,
	}
	if opts.Slug != "" {
		params["path"] = opts.Slug
	}
	for key, value := range opts.Fields {
		params[key] = value
	}
	return s.exec.Post(ctx, request.Options{"query": params}, "projects")
}

// UpdateProject updates a repository project on GitLab.
func (s *Strategy) UpdateProject(ctx context.Context, key string, opts domain.ProjectOptions) (*domain.Response, error) {
	mappings := make(map[string]any, len(opts.Fields)+1)
	if opts.Slug != "" {
		mappings["path"] = opts.Slug
	}
	for field, value := range opts.Fields {
		mappings[field] = value
	}
	return s.exec.Put(ctx, request.Options{"query": mappings}, "projects", key)
}

// DeleteProject safe-deletes a repository project on GitLab.
func (s *Strategy) DeleteProject(ctx context.Context, key, slug string) (*domain.Response, error) {
	resp, err := s.ProjectDetails(ctx, key)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, domain.NewStatusError(resp)
	}
	details, err := resp.JSONObject()
	if err != nil {
		return nil, err
	}

	path, ok := details["path"].(string)
	if !ok {
		return nil, errMissingPath
	}
	if path == slug {
		return s.exec.Delete(ctx, nil, "projects", key)
	}
	return domain.DeletionRefused(), nil
}

// ListProjects gets the list of the user's projects on GitLab.
func (s *Strategy) ListProjects(ctx context.Context) (*domain.Response, error) {
	return s.exec.Get(ctx, nil, "projects")
}

// ProjectDetails gets the details of a single project on GitLab.
func (s *Strategy) ProjectDetails(ctx context.Context, key string) (*domain.Response, error) {
	return s.exec.Get(ctx, nil, "projects", key)
}

// AddDeployKey creates a new deploy key for a project on GitLab.
func (s *Strategy) AddDeployKey(ctx context.Context, projectID string, key domain.DeployKey) (*domain.Response, error) {
	params := map[string]any{
		"id":       projectID,
		"title":    key.Title,
		"key":      key.Key,
		"can_push": !key.ReadOnly,
	}
	return s.exec.Post(ctx, request.Options{"query": params}, "projects", projectID, "deploy_keys")
}
