package domain

import "context"

// Strategy abstracts the project-management API of a hosted VCS platform
// (GitHub, Bitbucket, GitLab, etc.). Each implementation translates the
// uniform operations into platform-specific HTTP calls and returns the raw
// response; decoding and status checking happen in the service facade.
type Strategy interface {
	// Name returns the platform identifier (e.g. "github", "gitlab", "bitbucket").
	Name() string

	// CreateProject creates a repository project on the platform.
	// Conservative defaults apply (issues and wiki disabled, private);
	// explicit fields in opts override them key-by-key.
	CreateProject(ctx context.Context, name string, opts ProjectOptions) (*Response, error)

	// UpdateProject updates an existing repository project.
	UpdateProject(ctx context.Context, key string, opts ProjectOptions) (*Response, error)

	// DeleteProject safe-deletes a repository project. The project details
	// are fetched first and the identifying field is compared against slug;
	// only on an exact match is the destructive call issued. On mismatch a
	// synthetic 400 response is returned and nothing is deleted.
	DeleteProject(ctx context.Context, key, slug string) (*Response, error)

	// ListProjects lists all projects of the authenticated user.
	ListProjects(ctx context.Context) (*Response, error)

	// ProjectDetails returns the details of a single project.
	ProjectDetails(ctx context.Context, key string) (*Response, error)

	// AddDeployKey registers a deploy key on a project. Platforms without
	// deploy key support return ErrDeployKeysUnsupported without issuing
	// any network call.
	AddDeployKey(ctx context.Context, projectID string, key DeployKey) (*Response, error)
}
