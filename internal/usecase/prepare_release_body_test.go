package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareReleaseBodyUseCase_Execute(t *testing.T) {
	t.Run("Should put the compare URL and a blank line before the changelog", func(t *testing.T) {
		uc := &PrepareReleaseBodyUseCase{}
		body, err := uc.Execute(context.Background(), ReleaseBodyInput{
			RepoURL:     "https://github.com/acme/widgets",
			PreviousTag: "v2.1.0",
			TagName:     "v2.1.1",
			Changelog:   "# Fix bug\n\n# Add feature",
		})
		require.NoError(t, err)
		assert.Equal(t,
			"https://github.com/acme/widgets/compare/v2.1.0...v2.1.1\n\n# Fix bug\n\n# Add feature", body)
	})
	t.Run("Should not escape changelog content", func(t *testing.T) {
		uc := &PrepareReleaseBodyUseCase{}
		body, err := uc.Execute(context.Background(), ReleaseBodyInput{
			RepoURL:     "https://github.com/acme/widgets",
			PreviousTag: "1.0.0",
			TagName:     "1.0.1",
			Changelog:   "# Use {{ braces }} & \"quotes\" <b>",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "# Use {{ braces }} & \"quotes\" <b>")
	})
	t.Run("Should reject missing repository URL", func(t *testing.T) {
		uc := &PrepareReleaseBodyUseCase{}
		_, err := uc.Execute(context.Background(), ReleaseBodyInput{PreviousTag: "v1", TagName: "v2"})
		assert.Error(t, err)
	})
	t.Run("Should reject missing tags", func(t *testing.T) {
		uc := &PrepareReleaseBodyUseCase{}
		_, err := uc.Execute(context.Background(), ReleaseBodyInput{RepoURL: "https://github.com/a/b", TagName: "v2"})
		assert.Error(t, err)
	})
}

func TestCompareURL(t *testing.T) {
	t.Run("Should join the repository URL and both tags", func(t *testing.T) {
		assert.Equal(t, "https://github.com/a/b/compare/v1...v2", CompareURL("https://github.com/a/b", "v1", "v2"))
	})
	t.Run("Should concatenate the repository URL as given", func(t *testing.T) {
		assert.Equal(t, "https://github.com/a/b//compare/v1...v2", CompareURL("https://github.com/a/b/", "v1", "v2"))
	})
}
