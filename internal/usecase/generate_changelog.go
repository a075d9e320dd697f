package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/compozy/githubrelease/internal/domain"
	"github.com/compozy/githubrelease/internal/repository"
)

// commitHeading prefixes every commit message in the changelog.
const commitHeading = "# "

// GenerateChangelogUseCase renders the commits between two refs as markdown.

type GenerateChangelogUseCase struct {
	GithubRepo repository.GithubRepository
}

// Execute returns one heading per commit, separated by blank lines.
func (uc *GenerateChangelogUseCase) Execute(ctx context.Context, base, head string) (string, error) {
	commits, err := uc.GithubRepo.CompareCommits(ctx, base, head)
	if err != nil {
		return "", fmt.Errorf("failed to collect commits: %w", err)
	}
	return FormatChangelog(commits), nil
}

// FormatChangelog joins commit messages as "# a\n\n# b". With no commits the
// result is a lone heading marker.
func FormatChangelog(commits []domain.Commit) string {
	return commitHeading + strings.Join(domain.CommitMessages(commits), "\n\n"+commitHeading)
}
