package bitbucket

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rios0rios0/vcsbus/domain"
	"github.com/rios0rios0/vcsbus/infrastructure/request"
)

// See: https://developer.atlassian.com/bitbucket/api/2/reference/

const (
	providerName   = "bitbucket"
	defaultBaseURL = "https://api.bitbucket.org/2.0"
)

var (
	errMissingUsername = errors.New("bitbucket user response has no username field")
	errMissingName     = errors.New("bitbucket project details have no name field")
)

// Strategy implements domain.Strategy for Bitbucket.
type Strategy struct {
	exec *request.Executor
}

// New creates a Bitbucket strategy for the given endpoint.
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

// username resolves the account name by querying the API.
func (s *Strategy) username(ctx context.Context) (string, error) {
	details, err := s.exec.GetJSONOrError(ctx, nil, "user")
	if err != nil {
		return "", fmt.Errorf("failed to resolve bitbucket username: %w", err)
	}
	username, ok := details["username"].(string)
	if !ok {
		return "", errMissingUsername
	}
	return username, nil
}

// CreateProject creates a repository project on Bitbucket.
func (s *Strategy) CreateProject(ctx context.Context, name string, opts domain.ProjectOptions) (*domain.Response, error) {
	username, err := s.username(ctx)
	if err != nil {
		return nil, err
	}
	payload := map[string]any{
		"has_issues": false,
		"has_wiki":   false,
		"is_private": true,
		"name":       name,
		"scm":        "git",
	}
	for key, value := range opts.Fields {
		payload[key] = value
	}
	slug := opts.SlugOr(domain.Slugify(name))
	return s.exec.Post(ctx, request.Options{"json": payload}, "repositories", username, slug)
}

// UpdateProject updates a repository project on Bitbucket.
// Bitbucket addresses repositories by slug, not by key.
func (s *Strategy) UpdateProject(ctx context.Context, _ string, opts domain.ProjectOptions) (*domain.Response, error) {
	username, err := s.username(ctx)
	if err != nil {
		return nil, err
	}
	mappings := make(map[string]any, len(opts.Fields))
	for field, value := range opts.Fields {
		mappings[field] = value
	}
	return s.exec.Put(ctx, request.Options{"json": mappings}, "repositories", username, opts.Slug)
}

// DeleteProject safe-deletes a repository project on Bitbucket.
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

	name, ok := details["name"].(string)
	if !ok {
		return nil, errMissingName
	}
	if name == slug {
		username, userErr := s.username(ctx)
		if userErr != nil {
			return nil, userErr
		}
		return s.exec.Delete(ctx, nil, "repositories", username, slug)
	}
	return domain.DeletionRefused(), nil
}

// ListProjects gets the list of the user's projects on Bitbucket.
func (s *Strategy) ListProjects(ctx context.Context) (*domain.Response, error) {
	username, err := s.username(ctx)
	if err != nil {
		return nil, err
	}
	return s.exec.Get(ctx, nil, "repositories", username)
}

// ProjectDetails gets the details of a single project on Bitbucket.
func (s *Strategy) ProjectDetails(ctx context.Context, key string) (*domain.Response, error) {
	username, err := s.username(ctx)
	if err != nil {
		return nil, err
	}
	return s.exec.Get(ctx, nil, "repositories", username, key)
}

// AddDeployKey is not available on Bitbucket. It fails locally, before any
// network call is made.
func (s *Strategy) AddDeployKey(_ context.Context, _ string, _ domain.DeployKey) (*domain.Response, error) {
	return nil, domain.ErrDeployKeysUnsupported
}
