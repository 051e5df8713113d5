package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rios0rios0/vcsbus/domain"
	"github.com/rios0rios0/vcsbus/infrastructure/request"
)

var (
	errMissingLogin = errors.New("github user response has no login field")
	errMissingPath  = errors.New("github project details have no path field")
)

// See: https://developer.github.com/v3/

const (
	providerName   = "github"
	defaultBaseURL = "https://api.github.com"
	acceptHeader   = "application/vnd.github.v3+json"
)

// Strategy implements domain.Strategy for GitHub.
type Strategy struct {
	exec *request.Executor
}

// New creates a GitHub strategy for the given endpoint.
func New(endpoint domain.Endpoint) domain.Strategy {
	baseURL := endpoint.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	headers := map[string]string{"Accept": acceptHeader}
	return &Strategy{
		exec: request.NewExecutor(baseURL, endpoint.Token, headers, endpoint.Timeout),
	}
}

// WithTransport swaps the HTTP transport. Used by tests.
func (s *Strategy) WithTransport(transport http.RoundTripper) *Strategy {
	s.exec.WithTransport(transport)
	return s
}

func (s *Strategy) Name() string { return providerName }

// username resolves the authenticated user by querying the API.
func (s *Strategy) username(ctx context.Context) (string, error) {
	details, err := s.exec.GetJSONOrError(ctx, nil, "user")
	if err != nil {
		return "", fmt.Errorf("failed to resolve github username: %w", err)
	}
	login, ok := details["login"].(string)
	if !ok {
		return "", errMissingLogin
	}
	return login, nil
}

// CreateProject creates a repository project on GitHub.
func (s *Strategy) CreateProject(ctx context.Context, name string, opts domain.ProjectOptions) (*domain.Response, error) {
	payload := map[string]any{
		"has_issues": false,
		"has_wiki":   false,
		"name":       opts.SlugOr(domain.Slugify(name)),
		"private":    true,
	}
	for key, value := range opts.Fields {
		payload[key] = value
	}
	return s.exec.Post(ctx, request.Options{"json": payload}, "user", "repos")
}

// UpdateProject updates a repository project on GitHub.
func (s *Strategy) UpdateProject(ctx context.Context, key string, opts domain.ProjectOptions) (*domain.Response, error) {
	username, err := s.username(ctx)
	if err != nil {
		return nil, err
	}
	mappings := make(map[string]any, len(opts.Fields))
	for field, value := range opts.Fields {
		mappings[field] = value
	}
	return s.exec.Put(ctx, request.Options{"json": mappings}, "repos", username, key)
}

// DeleteProject safe-deletes a repository project on GitHub.
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
		username, userErr := s.username(ctx)
		if userErr != nil {
			return nil, userErr
		}
		return s.exec.Delete(ctx, nil, "repos", username, key)
	}
	return domain.DeletionRefused(), nil
}

// ListProjects gets the list of the user's projects on GitHub.
func (s *Strategy) ListProjects(ctx context.Context) (*domain.Response, error) {
	return s.exec.Get(ctx, nil, "user", "repos")
}

// ProjectDetails gets the details of a single project on GitHub.
func (s *Strategy) ProjectDetails(ctx context.Context, key string) (*domain.Response, error) {
	username, err := s.username(ctx)
	if err != nil {
		return nil, err
	}
	return s.exec.Get(ctx, nil, "repos", username, key)
}

// AddDeployKey creates a new deploy key for a project on GitHub.
func (s *Strategy) AddDeployKey(ctx context.Context, projectID string, key domain.DeployKey) (*domain.Response, error) {
	username, err := s.username(ctx)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"title":     key.Title,
		"key":       key.Key,
		"read_only": key.ReadOnly,
	}
	return s.exec.Post(ctx, request.Options{"json": payload}, "repos", username, projectID, "keys")
}
