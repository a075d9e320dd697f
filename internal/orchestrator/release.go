package orchestrator

import (
	"context"
	"fmt"
	"io"

	"github.com/compozy/githubrelease/internal/domain"
	"github.com/compozy/githubrelease/internal/repository"
	"github.com/compozy/githubrelease/internal/usecase"
	"go.uber.org/zap"
)

// ReleaseConfig contains configuration for the release workflow.
type ReleaseConfig struct {
	Title   string
	TagName string // Used verbatim when set
	Head    string // Defaults to the repository default branch
	// LatestRelease is looked up when nil.
	LatestRelease *domain.Release
	Draft         bool
	Prerelease    bool
	DryRun        bool
	CIOutput      bool
}

// ReleaseRequest describes one release to publish. TagName and LatestRelease
// are resolved from GitHub when left empty.
type ReleaseRequest struct {
	Title         string
	TagName       string
	LatestRelease *domain.Release
	Head          string
	Draft         bool
	Prerelease    bool
}

// ReleasePlan is a fully resolved release that has not been created yet.
type ReleasePlan struct {
	PreviousTag string
	Head        string
	Release     *domain.Release
}

// ReleaseOrchestrator coordinates version suggestion, changelog generation
// and release creation against a single repository.
type ReleaseOrchestrator struct {
	githubRepo repository.GithubRepository
	outputRepo repository.ActionsOutputRepository
	stdout     io.Writer
	logger     *zap.Logger
}

// NewReleaseOrchestrator creates a new release orchestrator.
func NewReleaseOrchestrator(
	githubRepo repository.GithubRepository,
	outputRepo repository.ActionsOutputRepository,
	stdout io.Writer,
	logger *zap.Logger,
) *ReleaseOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReleaseOrchestrator{
		githubRepo: githubRepo,
		outputRepo: outputRepo,
		stdout:     stdout,
		logger:     logger.With(zap.String("repository", githubRepo.Owner()+"/"+githubRepo.Name())),
	}
}

// Execute runs the release workflow, or only plans it on dry-run.
func (o *ReleaseOrchestrator) Execute(ctx context.Context, cfg ReleaseConfig) error {
	req := ReleaseRequest{
		Title:         cfg.Title,
		TagName:       cfg.TagName,
		LatestRelease: cfg.LatestRelease,
		Head:          cfg.Head,
		Draft:         cfg.Draft,
		Prerelease:    cfg.Prerelease,
	}
	plan, err := o.Plan(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to plan release: %w", err)
	}
	if cfg.DryRun {
		o.printStatus(cfg.CIOutput, fmt.Sprintf("🛈 Dry-run: would create release %s (%q) from %s...%s",
			plan.Release.TagName, plan.Release.Name, plan.PreviousTag, plan.Head))
		o.printStatus(cfg.CIOutput, plan.Release.Body)
		return o.writeOutputs(cfg.CIOutput, map[string]string{
			OutputTagName:     plan.Release.TagName,
			OutputPreviousTag: plan.PreviousTag,
			OutputDryRun:      "true",
		})
	}
	created, err := o.create(ctx, plan)
	if err != nil {
		return err
	}
	o.printStatus(cfg.CIOutput, fmt.Sprintf("✅ Created release %s: %s", created.TagName, created.HTMLURL))
	return o.writeOutputs(cfg.CIOutput, map[string]string{
		OutputTagName:     created.TagName,
		OutputPreviousTag: plan.PreviousTag,
		OutputHTMLURL:     created.HTMLURL,
		OutputDryRun:      "false",
	})
}

// LatestRelease returns the most recent release, or nil when there is none.
func (o *ReleaseOrchestrator) LatestRelease(ctx context.Context) (*domain.Release, error) {
	o.logger.Debug("Fetching latest release")
	uc := &usecase.LatestReleaseUseCase{GithubRepo: o.githubRepo}
	return uc.Execute(ctx)
}

// NextTagName returns explicitTag unchanged when set, otherwise the tag that
// follows the latest release.
func (o *ReleaseOrchestrator) NextTagName(ctx context.Context, explicitTag string) (string, error) {
	if explicitTag != "" {
		return explicitTag, nil
	}
	latest, err := o.LatestRelease(ctx)
	if err != nil {
		return "", err
	}
	return o.calculateVersion(ctx, latest)
}

// Plan resolves the latest release, the tag, the changelog and the body.
func (o *ReleaseOrchestrator) Plan(ctx context.Context, req ReleaseRequest) (*ReleasePlan, error) {
	latest, err := o.resolveLatestRelease(ctx, req)
	if err != nil {
		return nil, err
	}
	tagName := req.TagName
	if tagName == "" {
		if tagName, err = o.calculateVersion(ctx, latest); err != nil {
			return nil, err
		}
	}
	head := req.Head
	if head == "" {
		head = o.githubRepo.DefaultBranch()
	}
	if head == "" {
		return nil, fmt.Errorf("default branch of %s/%s is unknown", o.githubRepo.Owner(), o.githubRepo.Name())
	}
	changelog, err := o.generateChangelog(ctx, latest.TagName, head)
	if err != nil {
		return nil, err
	}
	body, err := o.prepareBody(ctx, latest.TagName, tagName, changelog)
	if err != nil {
		return nil, err
	}
	return &ReleasePlan{
		PreviousTag: latest.TagName,
		Head:        head,
		Release: &domain.Release{
			TagName:    tagName,
			Name:       req.Title,
			Body:       body,
			Draft:      req.Draft,
			Prerelease: req.Prerelease,
		},
	}, nil
}

// Release plans and publishes a release. Calling it twice creates two
// releases, or fails if GitHub rejects the duplicate tag.
func (o *ReleaseOrchestrator) Release(ctx context.Context, req ReleaseRequest) (*domain.Release, error) {
	plan, err := o.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	return o.create(ctx, plan)
}

func (o *ReleaseOrchestrator) resolveLatestRelease(ctx context.Context, req ReleaseRequest) (*domain.Release, error) {
	if req.LatestRelease != nil {
		return req.LatestRelease, nil
	}
	latest, err := o.LatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		if req.TagName != "" {
			return nil, fmt.Errorf("%w: no release to compare %s against", domain.ErrMissingBaseRelease, req.TagName)
		}
		return nil, domain.ErrMissingBaseRelease
	}
	return latest, nil
}

func (o *ReleaseOrchestrator) calculateVersion(ctx context.Context, latest *domain.Release) (string, error) {
	uc := &usecase.CalculateVersionUseCase{}
	version, err := uc.Execute(ctx, latest)
	if err != nil {
		return "", err
	}
	o.logger.Debug("Suggested next tag", zap.String("latest", latest.TagName), zap.String("next", version))
	return version, nil
}

func (o *ReleaseOrchestrator) generateChangelog(ctx context.Context, base, head string) (string, error) {
	o.logger.Debug("Comparing commits", zap.String("base", base), zap.String("head", head))
	uc := &usecase.GenerateChangelogUseCase{GithubRepo: o.githubRepo}
	return uc.Execute(ctx, base, head)
}

func (o *ReleaseOrchestrator) prepareBody(ctx context.Context, previousTag, tagName, changelog string) (string, error) {
	uc := &usecase.PrepareReleaseBodyUseCase{}
	body, err := uc.Execute(ctx, usecase.ReleaseBodyInput{
		RepoURL:     o.githubRepo.HTMLURL(),
		PreviousTag: previousTag,
		TagName:     tagName,
		Changelog:   changelog,
	})
	if err != nil {
		return "", fmt.Errorf("failed to prepare release body: %w", err)
	}
	return body, nil
}

func (o *ReleaseOrchestrator) create(ctx context.Context, plan *ReleasePlan) (*domain.Release, error) {
	o.logger.Debug("Creating release", zap.String("tag", plan.Release.TagName))
	created, err := o.githubRepo.CreateRelease(ctx, plan.Release)
	if err != nil {
		return nil, err
	}
	o.logger.Info("Release created",
		zap.String("tag", created.TagName),
		zap.String("previous_tag", plan.PreviousTag),
		zap.String("url", created.HTMLURL),
	)
	return created, nil
}

// writeOutputs records step outputs in CI mode, in a stable order.
func (o *ReleaseOrchestrator) writeOutputs(ciOutput bool, outputs map[string]string) error {
	if !ciOutput {
		return nil
	}
	for _, key := range []string{OutputTagName, OutputPreviousTag, OutputHTMLURL, OutputDryRun} {
		value, ok := outputs[key]
		if !ok {
			continue
		}
		if err := o.outputRepo.SetOutput(key, value); err != nil {
			return fmt.Errorf("failed to write %s output: %w", key, err)
		}
	}
	return nil
}

// printStatus prints status messages when not in CI mode
func (o *ReleaseOrchestrator) printStatus(ciOutput bool, message string) {
	if !ciOutput {
		fmt.Fprintln(o.stdout, message)
	}
}
