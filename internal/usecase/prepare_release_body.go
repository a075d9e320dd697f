package usecase

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
)

// ReleaseBodyInput holds what the release body is built from.
type ReleaseBodyInput struct {
	RepoURL     string
	PreviousTag string
	TagName     string
	Changelog   string
}

// PrepareReleaseBodyUseCase contains the logic for building the release body.
type PrepareReleaseBodyUseCase struct {
}

// CompareURL returns the GitHub compare page between two tags. repoURL is
// expected without a trailing slash.
func CompareURL(repoURL, previousTag, tagName string) string {
	return repoURL + "/compare/" + previousTag + "..." + tagName
}

// Execute runs the use case.
func (uc *PrepareReleaseBodyUseCase) Execute(_ context.Context, in ReleaseBodyInput) (string, error) {
	if in.RepoURL == "" {
		return "", fmt.Errorf("repository URL cannot be empty")
	}
	if in.PreviousTag == "" || in.TagName == "" {
		return "", fmt.Errorf("both previous and new tag are required")
	}
	data := struct {
		CompareURL string
		Changelog  string
	}{
		CompareURL: CompareURL(in.RepoURL, in.PreviousTag, in.TagName),
		Changelog:  in.Changelog,
	}
	tmpl, err := template.New("release-body").Option("missingkey=error").Parse(releaseBodyTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse release body template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute release body template: %w", err)
	}
	return buf.String(), nil
}

// Commit messages are inserted verbatim; the body is exactly URL, blank line, changelog.
const releaseBodyTemplate = "{{.CompareURL}}\n\n{{.Changelog}}"
