package twinfm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEditor replaces runEditor with a function rewriting the temp file.
func stubEditor(t *testing.T, rewrite func(lines []string) []string) {
	t.Helper()
	orig := runEditor
	runEditor = func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		out := strings.Join(rewrite(lines), "\n") + "\n"
		return os.WriteFile(path, []byte(out), 0644)
	}
	t.Cleanup(func() { runEditor = orig })
}

func TestBulkRename(t *testing.T) {
	t.Run("renames edited lines", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "a")
		writeFile(t, dir, "b.txt", "b")
		stubEditor(t, func(lines []string) []string {
			return []string{"a.md", lines[1]}
		})

		renamed, err := bulkRename([]string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.txt"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, renamed)
		assert.FileExists(t, filepath.Join(dir, "a.md"))
		assert.FileExists(t, filepath.Join(dir, "b.txt"))
		assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
	})

	t.Run("line count change aborts", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "a")
		stubEditor(t, func(lines []string) []string {
			return append(lines, "extra")
		})

		_, err := bulkRename([]string{filepath.Join(dir, "a.txt")})
		require.Error(t, err)
		assert.FileExists(t, filepath.Join(dir, "a.txt"))
	})

	t.Run("empty lines are skipped", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "a")
		stubEditor(t, func(lines []string) []string {
			return []string{"   "}
		})

		renamed, err := bulkRename([]string{filepath.Join(dir, "a.txt")})
		require.NoError(t, err)
		assert.Equal(t, 0, renamed)
		assert.FileExists(t, filepath.Join(dir, "a.txt"))
	})

	t.Run("editor failure propagates", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.txt", "a")
		orig := runEditor
		runEditor = func(string) error { return os.ErrPermission }
		t.Cleanup(func() { runEditor = orig })

		_, err := bulkRename([]string{filepath.Join(dir, "a.txt")})
		assert.ErrorContains(t, err, "editor")
	})
}
