// Package gitstring builds the short git summary shown in a pane footer:
// branch name plus staged/modified/untracked counts for the directory's
// repository, empty when the directory is not inside a work tree.
package gitstring

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sirupsen/logrus"
)

// Summary is one snapshot of a repository's state.
type Summary struct {
	Branch    string
	Staged    int
	Modified  int
	Untracked int
}

// String renders the footer fragment with tview color tags.
// A clean tree shows only the branch.
func (s *Summary) String() string {
	if s == nil {
		return ""
	}
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "[gray]%s[-]", s.Branch)
	if s.Staged > 0 {
		_, _ = fmt.Fprintf(&sb, "[green]+%d[-]", s.Staged)
	}
	if s.Modified > 0 {
		_, _ = fmt.Fprintf(&sb, "[yellow]~%d[-]", s.Modified)
	}
	if s.Untracked > 0 {
		_, _ = fmt.Fprintf(&sb, "[red]?%d[-]", s.Untracked)
	}
	return sb.String()
}

// ForDir opens the repository containing dir and summarizes it.
// nil when dir is not in a repository.
func ForDir(dir string) *Summary {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	res := &Summary{}
	head, err := repo.Head()
	switch {
	case err == plumbing.ErrReferenceNotFound:
		// Fresh repository without a commit yet.
		res.Branch = "master"
	case err != nil:
		return nil
	case head.Name().IsBranch():
		res.Branch = head.Name().Short()
	default:
		res.Branch = head.Hash().String()[:7]
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return res
	}
	status, err := worktree.Status()
	if err != nil {
		logrus.WithError(err).Debugf("git status of %s", dir)
		return res
	}
	for _, fs := range status {
		if fs.Worktree == git.Untracked {
			res.Untracked++
			continue
		}
		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			res.Staged++
		}
		if fs.Worktree != git.Unmodified {
			res.Modified++
		}
	}
	return res
}
