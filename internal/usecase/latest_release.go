package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/githubrelease/internal/domain"
	"github.com/compozy/githubrelease/internal/repository"
)

// LatestReleaseUseCase looks up the most recent release of the repository.

type LatestReleaseUseCase struct {
	GithubRepo repository.GithubRepository
}

// Execute returns the latest release, or nil when the repository has none.
func (uc *LatestReleaseUseCase) Execute(ctx context.Context) (*domain.Release, error) {
	releases, err := uc.GithubRepo.ListReleases(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest release: %w", err)
	}
	if len(releases) == 0 {
		return nil, nil
	}
	return releases[0], nil
}
