package menu

import (
	"os"

	"github.com/twinfm/twinfm/pkg/fsutils"
)

// Shortcuts is the list of well-known directories offered by the shortcut menu.
type Shortcuts struct {
	List[string]
}

// NewShortcuts builds the static shortcut list, keeping only dirs that exist.
func NewShortcuts(extra ...string) *Shortcuts {
	home, _ := os.UserHomeDir()
	candidates := []string{
		"/",
		home,
		fsutils.ExpandHome("~/Documents"),
		fsutils.ExpandHome("~/Downloads"),
		fsutils.ExpandHome("~/.config"),
		os.TempDir(),
		"/etc",
		"/mnt",
		"/media",
		"/usr/share",
	}
	candidates = append(candidates, extra...)
	var content []string
	seen := map[string]bool{}
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		if ok, _ := fsutils.DirExists(c); !ok {
			continue
		}
		seen[c] = true
		content = append(content, c)
	}
	s := &Shortcuts{}
	s.Replace(content)
	return s
}
