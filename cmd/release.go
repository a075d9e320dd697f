package cmd

import (
	"context"

	"github.com/compozy/githubrelease/internal/domain"
	"github.com/compozy/githubrelease/internal/orchestrator"
	"github.com/compozy/githubrelease/internal/usecase"
	"github.com/spf13/cobra"
)

// newReleaseCmd creates the release command
func newReleaseCmd(flags *rootFlags) *cobra.Command {
	var cfg orchestrator.ReleaseConfig
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Create the next release",
		Long: `Create a release for the tag that follows the latest release.

The release body starts with a link comparing the previous release to the new
tag, followed by one "# " heading per commit between the previous release and
the head branch. Use --tag to choose the tag yourself; a previous release is
still required as the comparison base. Without --title the release is named
after its tag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(cmd.Context(), flags, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer c.close()
			if err := c.requireCredential(); err != nil {
				return err
			}
			orch := c.orchestrator(cmd.OutOrStdout())
			if err := applyTitleDefault(cmd.Context(), orch, &cfg); err != nil {
				return err
			}
			return orch.Execute(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.Title, "title", "", "Release title (defaults to the tag)")
	cmd.Flags().StringVar(&cfg.TagName, "tag", "", "Tag to create instead of the suggested one")
	cmd.Flags().StringVar(&cfg.Head, "head", "", "Branch or commit to compare against (defaults to the default branch)")
	cmd.Flags().BoolVar(&cfg.Draft, "draft", false, "Create the release as a draft")
	cmd.Flags().BoolVar(&cfg.Prerelease, "prerelease", false, "Mark the release as a prerelease")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Print the release without creating it")
	cmd.Flags().BoolVar(&cfg.CIOutput, "ci-output", false, "Write step outputs instead of status messages")
	return cmd
}

type latestReleaseFinder interface {
	LatestRelease(ctx context.Context) (*domain.Release, error)
}

// applyTitleDefault names the release after its tag when no title was given.
// The looked up release is kept in cfg so it is fetched only once.
func applyTitleDefault(ctx context.Context, finder latestReleaseFinder, cfg *orchestrator.ReleaseConfig) error {
	if cfg.Title != "" {
		return nil
	}
	if cfg.TagName == "" {
		latest, err := finder.LatestRelease(ctx)
		if err != nil {
			return err
		}
		uc := &usecase.CalculateVersionUseCase{}
		tag, err := uc.Execute(ctx, latest)
		if err != nil {
			return err
		}
		cfg.LatestRelease = latest
		cfg.TagName = tag
	}
	cfg.Title = cfg.TagName
	return nil
}
