package repository

import (
	"context"

	"github.com/compozy/githubrelease/internal/domain"
)

// GithubRepository defines the release operations needed from the hosting platform.
// The repository metadata is resolved once when the client is opened.
type GithubRepository interface {
	Owner() string
	Name() string
	HTMLURL() string
	DefaultBranch() string
	// ListReleases returns at most limit releases, most recent first.
	ListReleases(ctx context.Context, limit int) ([]*domain.Release, error)
	// CompareCommits returns the commits reachable from head but not from base.
	CompareCommits(ctx context.Context, base, head string) ([]domain.Commit, error)
	CreateRelease(ctx context.Context, release *domain.Release) (*domain.Release, error)
}
