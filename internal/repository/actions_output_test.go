package repository

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionsOutputRepository_SetOutput(t *testing.T) {
	t.Run("Should append key value lines to the output file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/runner/output", []byte("existing=1\n"), 0644))
		out := NewActionsOutputRepository(fs, "/runner/output", nil)
		require.NoError(t, out.SetOutput("tag_name", "v2.1.1"))
		require.NoError(t, out.SetOutput("previous_tag", "v2.1.0"))
		data, err := afero.ReadFile(fs, "/runner/output")
		require.NoError(t, err)
		assert.Equal(t, "existing=1\ntag_name=v2.1.1\nprevious_tag=v2.1.0\n", string(data))
	})
	t.Run("Should create the output file when missing", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		out := NewActionsOutputRepository(fs, "/runner/output", nil)
		require.NoError(t, out.SetOutput("html_url", "https://github.com/acme/widgets/releases/tag/v1.0.1"))
		exists, err := afero.Exists(fs, "/runner/output")
		require.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("Should use a delimiter for multi-line values", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		out := NewActionsOutputRepository(fs, "/runner/output", nil)
		require.NoError(t, out.SetOutput("body", "line one\nline two"))
		data, err := afero.ReadFile(fs, "/runner/output")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[0], "body<<ghadelimiter_"))
		assert.Equal(t, "line one", lines[1])
		assert.Equal(t, "line two", lines[2])
		assert.Equal(t, strings.TrimPrefix(lines[0], "body<<"), lines[3])
	})
	t.Run("Should write to the fallback without an output file", func(t *testing.T) {
		var buf bytes.Buffer
		out := NewActionsOutputRepository(afero.NewMemMapFs(), "", &buf)
		require.NoError(t, out.SetOutput("tag_name", "1.0.1"))
		assert.Equal(t, "tag_name=1.0.1\n", buf.String())
	})
	t.Run("Should reject invalid output names", func(t *testing.T) {
		out := NewActionsOutputRepository(afero.NewMemMapFs(), "", &bytes.Buffer{})
		assert.Error(t, out.SetOutput("", "x"))
		assert.Error(t, out.SetOutput("a=b", "x"))
	})
}
