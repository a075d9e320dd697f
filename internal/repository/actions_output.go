package repository

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// ActionsOutputRepository records step outputs for GitHub Actions.
type ActionsOutputRepository interface {
	SetOutput(key, value string) error
}

// actionsOutputRepository appends to the file named by GITHUB_OUTPUT, or to
// fallback when no such file is configured.
type actionsOutputRepository struct {
	fs       FileSystemRepository
	path     string
	fallback io.Writer
}

// NewActionsOutputRepository creates an ActionsOutputRepository writing to path.
func NewActionsOutputRepository(fs FileSystemRepository, path string, fallback io.Writer) ActionsOutputRepository {
	return &actionsOutputRepository{fs: fs, path: path, fallback: fallback}
}

// SetOutput writes key=value, switching to the delimiter form for multi-line values.
func (r *actionsOutputRepository) SetOutput(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\n") {
		return fmt.Errorf("invalid output name %q", key)
	}
	line := formatOutput(key, value)
	if r.path == "" {
		_, err := io.WriteString(r.fallback, line)
		return err
	}
	f, err := r.fs.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, OutputFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to open output file %s: %w", r.path, err)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output %s: %w", key, err)
	}
	return f.Close()
}

func formatOutput(key, value string) string {
	if !strings.Contains(value, "\n") {
		return key + "=" + value + "\n"
	}
	delimiter := "ghadelimiter_" + uuid.NewString()
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", key, delimiter, value, delimiter)
}
