package usecase

import (
	"context"
	"fmt"

	"github.com/compozy/githubrelease/internal/domain"
)

// CalculateVersionUseCase derives the next tag from the latest release.

type CalculateVersionUseCase struct{}

// Execute runs the use case.
func (uc *CalculateVersionUseCase) Execute(_ context.Context, latest *domain.Release) (string, error) {
	if latest == nil {
		return "", domain.ErrMissingBaseRelease
	}
	next, err := domain.SuggestNextVersion(latest.TagName)
	if err != nil {
		return "", fmt.Errorf("failed to suggest version after %s: %w", latest.TagName, err)
	}
	return next, nil
}
