package gitstring

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryString(t *testing.T) {
	tests := []struct {
		name    string
		summary *Summary
		want    string
	}{
		{"nil", nil, ""},
		{"clean", &Summary{Branch: "main"}, "[gray]main[-]"},
		{"dirty", &Summary{Branch: "dev", Staged: 1, Modified: 2, Untracked: 3},
			"[gray]dev[-][green]+1[-][yellow]~2[-][red]?3[-]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.summary.String())
		})
	}
}

func commit(t *testing.T, wt *git.Worktree, msg string) {
	t.Helper()
	_, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestForDir(t *testing.T) {
	dir := t.TempDir()

	t.Run("not_a_repository", func(t *testing.T) {
		assert.Nil(t, ForDir(dir))
	})

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	t.Run("empty_repository", func(t *testing.T) {
		s := ForDir(dir)
		require.NotNil(t, s)
		assert.Equal(t, "master", s.Branch)
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\n"), 0644))
	_, err = wt.Add("a.txt")
	require.NoError(t, err)
	commit(t, wt, "initial")

	t.Run("clean", func(t *testing.T) {
		s := ForDir(dir)
		require.NotNil(t, s)
		assert.Equal(t, "master", s.Branch)
		assert.Equal(t, 0, s.Staged+s.Modified+s.Untracked)
	})

	t.Run("untracked_and_modified", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\ntwo\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x\n"), 0644))
		s := ForDir(dir)
		require.NotNil(t, s)
		assert.Equal(t, 1, s.Modified)
		assert.Equal(t, 1, s.Untracked)
	})

	t.Run("subdirectory_resolves_to_repo", func(t *testing.T) {
		sub := filepath.Join(dir, "sub")
		require.NoError(t, os.Mkdir(sub, 0755))
		s := ForDir(sub)
		require.NotNil(t, s)
		assert.Equal(t, "master", s.Branch)
	})
}
