package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/compozy/githubrelease/internal/config"
	"github.com/compozy/githubrelease/internal/domain"
	"github.com/compozy/githubrelease/pkg/version"
	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

// RepositoriesService is the subset of the go-github repositories API in use.
type RepositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
	ListReleases(
		ctx context.Context,
		owner, repo string,
		opts *github.ListOptions,
	) ([]*github.RepositoryRelease, *github.Response, error)
	CompareCommits(
		ctx context.Context,
		owner, repo, base, head string,
		opts *github.ListOptions,
	) (*github.CommitsComparison, *github.Response, error)
	CreateRelease(
		ctx context.Context,
		owner, repo string,
		release *github.RepositoryRelease,
	) (*github.RepositoryRelease, *github.Response, error)
}

// GithubOptions configures OpenGithubRepository.
type GithubOptions struct {
	Token  string
	Owner  string
	Repo   string
	APIURL string // empty for github.com
}

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	repos         RepositoriesService
	owner         string
	repo          string
	htmlURL       string
	defaultBranch string
}

// OpenGithubRepository authenticates against GitHub and resolves the repository handle.
func OpenGithubRepository(ctx context.Context, opts GithubOptions) (GithubRepository, error) {
	// Validate token format using the consolidated validator from config package
	if err := config.ValidateGitHubToken(opts.Token); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	// Validate owner and repo names using the consolidated validator
	if err := config.ValidateGitHubOwnerRepo(opts.Owner, opts.Repo); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	client, err := newGithubClient(opts.Token, opts.APIURL)
	if err != nil {
		return nil, err
	}
	return newGithubRepository(ctx, client.Repositories, opts.Owner, opts.Repo)
}

// newGithubClient creates an OAuth2 authenticated client with the validated token.
func newGithubClient(token, apiURL string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = DefaultHTTPTimeout
	client := github.NewClient(tc)
	client.UserAgent = "github-release/" + version.Summary()
	if apiURL == "" {
		return client, nil
	}
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", apiURL, err)
	}
	if parsed.Host == publicAPIHost {
		return client, nil
	}
	client, err = client.WithEnterpriseURLs(apiURL, apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure GitHub Enterprise URLs: %w", err)
	}
	return client, nil
}

// newGithubRepository looks up the repository once and keeps its metadata.
func newGithubRepository(
	ctx context.Context,
	repos RepositoriesService,
	owner, repo string,
) (*githubRepository, error) {
	r, _, err := repos.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}
	return &githubRepository{
		repos:         repos,
		owner:         owner,
		repo:          repo,
		htmlURL:       strings.TrimSuffix(r.GetHTMLURL(), "/"),
		defaultBranch: r.GetDefaultBranch(),
	}, nil
}

func (r *githubRepository) Owner() string         { return r.owner }
func (r *githubRepository) Name() string          { return r.repo }
func (r *githubRepository) HTMLURL() string       { return r.htmlURL }
func (r *githubRepository) DefaultBranch() string { return r.defaultBranch }

// ListReleases returns the first page of releases, truncated to limit.
func (r *githubRepository) ListReleases(ctx context.Context, limit int) ([]*domain.Release, error) {
	if limit < 1 {
		return nil, fmt.Errorf("release limit must be positive, got %d", limit)
	}
	releases, _, err := r.repos.ListReleases(ctx, r.owner, r.repo, &github.ListOptions{PerPage: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	if len(releases) > limit {
		releases = releases[:limit]
	}
	result := make([]*domain.Release, 0, len(releases))
	for _, rel := range releases {
		result = append(result, toDomainRelease(rel))
	}
	return result, nil
}

// CompareCommits returns the commits between base and head as reported by the compare API.
func (r *githubRepository) CompareCommits(ctx context.Context, base, head string) ([]domain.Commit, error) {
	comparison, _, err := r.repos.CompareCommits(ctx, r.owner, r.repo, base, head, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to compare %s...%s: %w", base, head, err)
	}
	commits := make([]domain.Commit, 0, len(comparison.Commits))
	for _, c := range comparison.Commits {
		commits = append(commits, domain.Commit{
			SHA:     c.GetSHA(),
			Message: c.GetCommit().GetMessage(),
		})
	}
	return commits, nil
}

// CreateRelease publishes a release and returns what GitHub reports as created.
func (r *githubRepository) CreateRelease(ctx context.Context, release *domain.Release) (*domain.Release, error) {
	created, _, err := r.repos.CreateRelease(ctx, r.owner, r.repo, &github.RepositoryRelease{
		TagName:    github.Ptr(release.TagName),
		Name:       github.Ptr(release.Name),
		Body:       github.Ptr(release.Body),
		Draft:      github.Ptr(release.Draft),
		Prerelease: github.Ptr(release.Prerelease),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create release %s: %w", release.TagName, err)
	}
	return toDomainRelease(created), nil
}

func toDomainRelease(r *github.RepositoryRelease) *domain.Release {
	return &domain.Release{
		ID:         r.GetID(),
		TagName:    r.GetTagName(),
		Name:       r.GetName(),
		Body:       r.GetBody(),
		HTMLURL:    r.GetHTMLURL(),
		Draft:      r.GetDraft(),
		Prerelease: r.GetPrerelease(),
	}
}
