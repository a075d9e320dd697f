package cmd

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	repo     string
	token    string
	logLevel string
}

// NewRootCmd builds the github-release command tree.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "github-release",
		Short: "Publish the next GitHub release of a repository",
		Long: `github-release creates a GitHub release for the tag that follows the latest
release, with a compare link and one heading per commit since that release.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.repo, "repo", "", "Repository as owner/name (defaults to GITHUB_REPOSITORY)")
	rootCmd.PersistentFlags().StringVar(&flags.token, "token", "", "GitHub token (overrides github_token from config)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newReleaseCmd(flags))
	rootCmd.AddCommand(newNextTagCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
