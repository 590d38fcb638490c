package system

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectStdIO(t *testing.T) {
	t.Run("Empty path is a no-op", func(t *testing.T) {
		restore, err := RedirectStdIO("")

		require.NoError(t, err)
		assert.NoError(t, restore())
	})

	t.Run("Output goes to the file until restored", func(t *testing.T) {
		// Given: a log file with earlier content
		path := filepath.Join(t.TempDir(), "stdio.log")
		require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0o644))

		// When: both streams are written while redirected
		restore, err := RedirectStdIO(path)
		require.NoError(t, err)
		fmt.Fprintln(os.Stdout, "to stdout")
		fmt.Fprintln(os.Stderr, "to stderr")
		require.NoError(t, restore())

		// Then: the file was appended to
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "earlier\nto stdout\nto stderr\n", string(data))
	})

	t.Run("Unwritable path", func(t *testing.T) {
		_, err := RedirectStdIO(filepath.Join(t.TempDir(), "missing", "stdio.log"))

		assert.Error(t, err)
	})
}
