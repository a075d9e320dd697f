package orchestrator

import (
	"context"

	"github.com/compozy/githubrelease/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GithubRepository; repository metadata is plain fields.
type mockGithubRepository struct {
	mock.Mock
	owner         string
	name          string
	htmlURL       string
	defaultBranch string
}

func newMockGithubRepository() *mockGithubRepository {
	return &mockGithubRepository{
		owner:         "acme",
		name:          "widgets",
		htmlURL:       "https://github.com/acme/widgets",
		defaultBranch: "main",
	}
}

func (m *mockGithubRepository) Owner() string         { return m.owner }
func (m *mockGithubRepository) Name() string          { return m.name }
func (m *mockGithubRepository) HTMLURL() string       { return m.htmlURL }
func (m *mockGithubRepository) DefaultBranch() string { return m.defaultBranch }

func (m *mockGithubRepository) ListReleases(ctx context.Context, limit int) ([]*domain.Release, error) {
	args := m.Called(ctx, limit)
	if releases := args.Get(0); releases != nil {
		return releases.([]*domain.Release), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGithubRepository) CompareCommits(ctx context.Context, base, head string) ([]domain.Commit, error) {
	args := m.Called(ctx, base, head)
	if commits := args.Get(0); commits != nil {
		return commits.([]domain.Commit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGithubRepository) CreateRelease(ctx context.Context, release *domain.Release) (*domain.Release, error) {
	args := m.Called(ctx, release)
	if created := args.Get(0); created != nil {
		return created.(*domain.Release), args.Error(1)
	}
	return nil, args.Error(1)
}

// Mock for ActionsOutputRepository
type mockActionsOutputRepository struct{ mock.Mock }

func (m *mockActionsOutputRepository) SetOutput(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}
