package repository

import (
	"context"
	"fmt"

	"github.com/compozy/githubrelease/internal/domain"
)

// githubNoopRepository stands in for GitHub when no credential is available.
// Every API operation fails before any request is made.
type githubNoopRepository struct {
	owner string
	repo  string
}

func NewGithubNoopRepository(owner, repo string) GithubRepository {
	return &githubNoopRepository{owner: owner, repo: repo}
}

func (r *githubNoopRepository) Owner() string         { return r.owner }
func (r *githubNoopRepository) Name() string          { return r.repo }
func (r *githubNoopRepository) HTMLURL() string       { return "" }
func (r *githubNoopRepository) DefaultBranch() string { return "" }

func (r *githubNoopRepository) ListReleases(_ context.Context, _ int) ([]*domain.Release, error) {
	return nil, r.operationError("list releases")
}

func (r *githubNoopRepository) CompareCommits(_ context.Context, _, _ string) ([]domain.Commit, error) {
	return nil, r.operationError("compare commits")
}

func (r *githubNoopRepository) CreateRelease(_ context.Context, _ *domain.Release) (*domain.Release, error) {
	return nil, r.operationError("create release")
}

func (r *githubNoopRepository) operationError(action string) error {
	return fmt.Errorf("%w: unable to %s for %s/%s", domain.ErrMissingCredential, action, r.owner, r.repo)
}
