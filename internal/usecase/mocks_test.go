package usecase

import (
	"context"

	"github.com/compozy/githubrelease/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockGithubRepository struct {
	mock.Mock
	owner, name, htmlURL, defaultBranch string
}

func (m *mockGithubRepository) Owner() string         { return m.owner }
func (m *mockGithubRepository) Name() string          { return m.name }
func (m *mockGithubRepository) HTMLURL() string       { return m.htmlURL }
func (m *mockGithubRepository) DefaultBranch() string { return m.defaultBranch }

func (m *mockGithubRepository) ListReleases(ctx context.Context, limit int) ([]*domain.Release, error) {
	args := m.Called(ctx, limit)
	if r := args.Get(0); r != nil {
		return r.([]*domain.Release), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGithubRepository) CompareCommits(ctx context.Context, base, head string) ([]domain.Commit, error) {
	args := m.Called(ctx, base, head)
	if c := args.Get(0); c != nil {
		return c.([]domain.Commit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGithubRepository) CreateRelease(ctx context.Context, release *domain.Release) (*domain.Release, error) {
	args := m.Called(ctx, release)
	if r := args.Get(0); r != nil {
		return r.(*domain.Release), args.Error(1)
	}
	return nil, args.Error(1)
}
