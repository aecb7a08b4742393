package files

import (
	"os"
	"path/filepath"
	"time"
)

// Directory holds the listed entries of one path plus the selection index.
// Entries are snapshots: refreshing the listing replaces them wholesale.
type Directory struct {
	Path    string
	Entries []FileInfo
	Index   int
	ReadAt  time.Time
}

// ListOptions controls what ReadDirectory keeps and in which order.
// Users, when set, memoizes owner lookups across refreshes.
type ListOptions struct {
	ShowHidden bool
	Sort       SortKind
	Filter     Filter
	Users      *Users
}

// ReadDirectory lists path, applying the filter, hidden-file policy and sort.
func ReadDirectory(path string, o ListOptions) (*Directory, error) {
	children, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := make([]FileInfo, 0, len(children))
	for _, child := range children {
		info, err := child.Info()
		if err != nil {
			continue
		}
		fi := fileInfoFromStat(filepath.Join(path, child.Name()), info, o.Users)
		if fi.Hidden && !o.ShowHidden {
			continue
		}
		if !o.Filter.Matches(fi) {
			continue
		}
		entries = append(entries, fi)
	}
	o.Sort.Sort(entries)
	return &Directory{Path: path, Entries: entries, ReadAt: time.Now()}, nil
}

func (d *Directory) Len() int { return len(d.Entries) }

func (d *Directory) IsEmpty() bool { return len(d.Entries) == 0 }

// Selected returns the entry at the selection index.
func (d *Directory) Selected() (FileInfo, bool) {
	if d.Index < 0 || d.Index >= len(d.Entries) {
		return FileInfo{}, false
	}
	return d.Entries[d.Index], true
}

func (d *Directory) SelectIndex(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(d.Entries) {
		i = len(d.Entries) - 1
	}
	d.Index = i
}

func (d *Directory) SelectNext() {
	if d.Index+1 < len(d.Entries) {
		d.Index++
	}
}

func (d *Directory) SelectPrev() {
	if d.Index > 0 {
		d.Index--
	}
}

// SelectName moves the selection to the entry with the given name, if present.
func (d *Directory) SelectName(name string) bool {
	for i, e := range d.Entries {
		if e.Name == name {
			d.Index = i
			return true
		}
	}
	return false
}

// IndexOfPath returns the position of path in the listing, or -1.
func (d *Directory) IndexOfPath(path string) int {
	for i, e := range d.Entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}

// ModifiedSince reports whether the directory mtime is newer than the listing.
func (d *Directory) ModifiedSince() bool {
	info, err := os.Stat(d.Path)
	if err != nil {
		return false
	}
	return info.ModTime().After(d.ReadAt)
}
