package menu

import (
	"sort"
	"strings"
)

// Flagged is the cross-directory set of paths marked for a bulk operation.
// It is kept sorted and deduplicated; membership checks are binary searches.
type Flagged struct {
	Paths []string
	Index int
}

// Push inserts a path, keeping the slice sorted. Duplicates are ignored.
func (f *Flagged) Push(path string) {
	pos := sort.SearchStrings(f.Paths, path)
	if pos < len(f.Paths) && f.Paths[pos] == path {
		return
	}
	f.Paths = append(f.Paths, "")
	copy(f.Paths[pos+1:], f.Paths[pos:])
	f.Paths[pos] = path
}

// Toggle flags the path, or unflags it if it was already flagged.
func (f *Flagged) Toggle(path string) {
	pos := sort.SearchStrings(f.Paths, path)
	if pos < len(f.Paths) && f.Paths[pos] == path {
		f.Paths = append(f.Paths[:pos], f.Paths[pos+1:]...)
		if f.Index >= len(f.Paths) && f.Index > 0 {
			f.Index--
		}
		return
	}
	f.Push(path)
}

func (f *Flagged) Contains(path string) bool {
	pos := sort.SearchStrings(f.Paths, path)
	return pos < len(f.Paths) && f.Paths[pos] == path
}

func (f *Flagged) Clear() {
	f.Paths = f.Paths[:0]
	f.Index = 0
}

func (f *Flagged) Len() int { return len(f.Paths) }

func (f *Flagged) IsEmpty() bool { return len(f.Paths) == 0 }

// Filtered returns the flagged paths located under dir.
func (f *Flagged) Filtered(dir string) []string {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	var out []string
	for _, p := range f.Paths {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// Selected returns the path at the jump index.
func (f *Flagged) Selected() (string, bool) {
	if f.Index < 0 || f.Index >= len(f.Paths) {
		return "", false
	}
	return f.Paths[f.Index], true
}

func (f *Flagged) SelectNext() {
	if f.Index+1 < len(f.Paths) {
		f.Index++
	}
}

func (f *Flagged) SelectPrev() {
	if f.Index > 0 {
		f.Index--
	}
}

// RemoveSelected drops the path at the jump index.
func (f *Flagged) RemoveSelected() {
	if f.Index < 0 || f.Index >= len(f.Paths) {
		return
	}
	f.Paths = append(f.Paths[:f.Index], f.Paths[f.Index+1:]...)
	f.Index = 0
}
