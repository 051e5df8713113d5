package application

import (
	"bytes"
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/vcsbus/domain"
)

// ProjectService is the single entry point for project management against a
// hosted VCS platform. It wraps exactly one strategy, fixed at construction,
// and performs the generic unwrap step for every operation: decode the JSON
// body first, then turn a 4xx/5xx status into an error. Decoding happens
// before the status check so the provider's message body stays inspectable
// even on failure.
type ProjectService struct {
	strategy domain.Strategy
}

// NewProjectService creates a service bound to the given strategy.
func NewProjectService(strategy domain.Strategy) *ProjectService {
	return &ProjectService{strategy: strategy}
}

// Strategy returns the name of the active platform strategy.
func (s *ProjectService) Strategy() string {
	return s.strategy.Name()
}

// CreateProject creates a repository project on the platform.
func (s *ProjectService) CreateProject(ctx context.Context, name string, opts domain.ProjectOptions) (*domain.Envelope, error) {
	logger.Debugf("%s: creating project %q", s.strategy.Name(), name)
	resp, err := s.strategy.CreateProject(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

// UpdateProject updates a repository project on the platform.
func (s *ProjectService) UpdateProject(ctx context.Context, key string, opts domain.ProjectOptions) (*domain.Envelope, error) {
	logger.Debugf("%s: updating project %q", s.strategy.Name(), key)
	resp, err := s.strategy.UpdateProject(ctx, key, opts)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

// DeleteProject safe-deletes a repository project on the platform. A slug
// mismatch surfaces as a 400 error carrying the deletion-refused message.
func (s *ProjectService) DeleteProject(ctx context.Context, key, slug string) (*domain.Envelope, error) {
	logger.Debugf("%s: deleting project %q (slug %q)", s.strategy.Name(), key, slug)
	resp, err := s.strategy.DeleteProject(ctx, key, slug)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

// ListProjects gets the list of the user's projects on the platform.
func (s *ProjectService) ListProjects(ctx context.Context) (*domain.Envelope, error) {
	logger.Debugf("%s: listing projects", s.strategy.Name())
	resp, err := s.strategy.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

// ProjectDetails gets the details of a single project on the platform.
func (s *ProjectService) ProjectDetails(ctx context.Context, key string) (*domain.Envelope, error) {
	logger.Debugf("%s: fetching details of project %q", s.strategy.Name(), key)
	resp, err := s.strategy.ProjectDetails(ctx, key)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

// AddDeployKey creates a new deploy key for a project on the platform.
func (s *ProjectService) AddDeployKey(ctx context.Context, projectID string, key domain.DeployKey) (*domain.Envelope, error) {
	logger.Debugf("%s: adding deploy key %q to project %q", s.strategy.Name(), key.Title, projectID)
	resp, err := s.strategy.AddDeployKey(ctx, projectID, key)
	if err != nil {
		return nil, err
	}
	return unwrap(resp)
}

// unwrap decodes the body into an envelope and checks the status. An error
// status always yields both the envelope and a StatusError; a body that is
// not valid JSON never masks the underlying HTTP failure. Empty bodies, such
// as a 204 on deletion, produce a nil-body envelope without a decode attempt.
func unwrap(resp *domain.Response) (*domain.Envelope, error) {
	envelope := &domain.Envelope{StatusCode: resp.StatusCode}

	var decodeErr error
	if len(bytes.TrimSpace(resp.Body)) > 0 {
		envelope.Body, decodeErr = resp.JSON()
	}

	if resp.IsError() {
		return envelope, domain.NewStatusError(resp)
	}
	if decodeErr != nil {
		return envelope, decodeErr
	}
	return envelope, nil
}
