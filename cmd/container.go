package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/compozy/githubrelease/internal/config"
	"github.com/compozy/githubrelease/internal/orchestrator"
	"github.com/compozy/githubrelease/internal/repository"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// container holds all the dependencies for one command invocation.
type container struct {
	cfg    *config.Config
	logger *zap.Logger

	fsRepo     repository.FileSystemRepository
	ghRepo     repository.GithubRepository
	outputRepo repository.ActionsOutputRepository

	// credentialErr is set when no token could be resolved; ghRepo is then a noop.
	credentialErr error
}

// newContainer loads configuration and opens the GitHub repository.
func newContainer(ctx context.Context, flags *rootFlags, stdout io.Writer) (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flags.repo != "" {
		if err := cfg.ApplyRepoSlug(flags.repo); err != nil {
			return nil, err
		}
	}
	if flags.token != "" {
		cfg.GithubToken = flags.token
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.ValidateForGitHubOperations(); err != nil {
		return nil, err
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	outputRepo := repository.NewActionsOutputRepository(fsRepo, os.Getenv("GITHUB_OUTPUT"), stdout)

	// GitHub access is optional until an operation needs it
	c := &container{cfg: cfg, logger: logger, fsRepo: fsRepo, outputRepo: outputRepo}
	token, err := cfg.ResolveToken()
	if err != nil {
		logger.Debug("No GitHub credential available", zap.Error(err))
		c.credentialErr = err
		c.ghRepo = repository.NewGithubNoopRepository(cfg.GithubOwner, cfg.GithubRepo)
		return c, nil
	}
	c.ghRepo, err = repository.OpenGithubRepository(ctx, repository.GithubOptions{
		Token:  token,
		Owner:  cfg.GithubOwner,
		Repo:   cfg.GithubRepo,
		APIURL: cfg.GithubAPIURL,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return c, nil
}

// requireCredential fails when the GitHub repository is a noop stand-in.
func (c *container) requireCredential() error {
	if c.credentialErr != nil {
		return fmt.Errorf("%s/%s: %w", c.cfg.GithubOwner, c.cfg.GithubRepo, c.credentialErr)
	}
	return nil
}

func (c *container) orchestrator(stdout io.Writer) *orchestrator.ReleaseOrchestrator {
	return orchestrator.NewReleaseOrchestrator(c.ghRepo, c.outputRepo, stdout, c.logger)
}

func (c *container) close() {
	_ = c.logger.Sync()
}
