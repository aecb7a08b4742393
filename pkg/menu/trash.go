package menu

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// TrashEntry is one trashed file: where it came from and where it sits now.
type TrashEntry struct {
	OrigPath    string
	TrashedPath string
	DeletedAt   time.Time
}

func (e TrashEntry) String() string {
	return fmt.Sprintf("%s  %s", e.DeletedAt.Format("2006-01-02 15:04"), e.OrigPath)
}

// Trash manages the XDG trash layout: files/ holds the trashed files,
// info/ holds one .trashinfo sidecar per file.
type Trash struct {
	root    string
	Entries List[TrashEntry]
}

// NewTrash opens (creating if needed) the trash under root and lists it.
func NewTrash(root string) (*Trash, error) {
	t := &Trash{root: root}
	for _, sub := range []string{t.filesDir(), t.infoDir()} {
		if err := os.MkdirAll(sub, 0700); err != nil {
			return nil, err
		}
	}
	t.Reload()
	return t, nil
}

func (t *Trash) filesDir() string { return filepath.Join(t.root, "files") }
func (t *Trash) infoDir() string  { return filepath.Join(t.root, "info") }

// Reload re-reads the sidecars. Unreadable sidecars are skipped with a log line.
func (t *Trash) Reload() {
	var entries []TrashEntry
	infos, err := os.ReadDir(t.infoDir())
	if err != nil {
		logrus.WithError(err).Warn("couldn't list trash info dir")
		t.Entries.Replace(nil)
		return
	}
	for _, info := range infos {
		name := strings.TrimSuffix(info.Name(), ".trashinfo")
		if name == info.Name() {
			continue
		}
		entry, err := t.readInfo(filepath.Join(t.infoDir(), info.Name()), name)
		if err != nil {
			logrus.WithError(err).Warnf("skipping trash sidecar %s", info.Name())
			continue
		}
		entries = append(entries, entry)
	}
	t.Entries.Replace(entries)
}

func (t *Trash) readInfo(infoPath, name string) (TrashEntry, error) {
	data, err := os.ReadFile(infoPath)
	if err != nil {
		return TrashEntry{}, err
	}
	entry := TrashEntry{TrashedPath: filepath.Join(t.filesDir(), name)}
	for _, line := range strings.Split(string(data), "\n") {
		if v, ok := strings.CutPrefix(line, "Path="); ok {
			if unescaped, err := url.PathUnescape(v); err == nil {
				v = unescaped
			}
			entry.OrigPath = v
		}
		if v, ok := strings.CutPrefix(line, "DeletionDate="); ok {
			if at, err := time.ParseInLocation("2006-01-02T15:04:05", v, time.Local); err == nil {
				entry.DeletedAt = at
			}
		}
	}
	if entry.OrigPath == "" {
		return TrashEntry{}, fmt.Errorf("no Path in %s", infoPath)
	}
	return entry, nil
}

// Move sends path to the trash, writing the sidecar first.
func (t *Trash) Move(path string) error {
	name := filepath.Base(path)
	dest := filepath.Join(t.filesDir(), name)
	for i := 1; ; i++ {
		if _, err := os.Lstat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(t.filesDir(), fmt.Sprintf("%s.%d", name, i))
	}
	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		url.PathEscape(path), time.Now().Format("2006-01-02T15:04:05"))
	infoPath := filepath.Join(t.infoDir(), filepath.Base(dest)+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return err
	}
	if err := os.Rename(path, dest); err != nil {
		_ = os.Remove(infoPath)
		return err
	}
	t.Reload()
	return nil
}

// RestoreSelected moves the selected entry back to its original path.
func (t *Trash) RestoreSelected() error {
	entry, ok := t.Entries.Selected()
	if !ok {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(entry.OrigPath), 0755); err != nil {
		return err
	}
	if err := os.Rename(entry.TrashedPath, entry.OrigPath); err != nil {
		return err
	}
	t.removeSidecar(entry)
	t.Reload()
	return nil
}

// RemoveSelected deletes the selected entry permanently.
func (t *Trash) RemoveSelected() error {
	entry, ok := t.Entries.Selected()
	if !ok {
		return nil
	}
	if err := os.RemoveAll(entry.TrashedPath); err != nil {
		return err
	}
	t.removeSidecar(entry)
	t.Reload()
	return nil
}

// Empty deletes everything in the trash.
func (t *Trash) Empty() error {
	for _, sub := range []string{t.filesDir(), t.infoDir()} {
		children, err := os.ReadDir(sub)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := os.RemoveAll(filepath.Join(sub, child.Name())); err != nil {
				return err
			}
		}
	}
	t.Reload()
	return nil
}

func (t *Trash) removeSidecar(entry TrashEntry) {
	sidecar := filepath.Join(t.infoDir(), filepath.Base(entry.TrashedPath)+".trashinfo")
	if err := os.Remove(sidecar); err != nil {
		logrus.WithError(err).Warnf("couldn't remove trash sidecar for %s", entry.OrigPath)
	}
}
