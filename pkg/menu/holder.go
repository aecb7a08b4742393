package menu

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Holder is the menu state shared by both panes: the flagged set, the
// input buffer, completion propositions, marks, the password holder and
// one navigable list per menu kind. Which list is active is decided by
// the owning tab's menu mode, never here.
type Holder struct {
	Flagged    Flagged
	Input      Input
	Completion Completion
	Marks      *Marks
	Password   PasswordHolder

	Trash     *Trash
	Shortcuts *Shortcuts
	Removable List[Device]
	Encrypted List[Device]
	Picker    List[string]
}

// NewHolder builds the holder, loading marks and opening the trash
// under the user's data dir. Trash failures are logged, not fatal.
func NewHolder(configDir, dataDir string) *Holder {
	h := &Holder{
		Marks:     ReadMarks(filepath.Join(configDir, "marks.cfg")),
		Shortcuts: NewShortcuts(configDir),
	}
	trash, err := NewTrash(filepath.Join(dataDir, "Trash"))
	if err != nil {
		logrus.WithError(err).Warn("trash unavailable")
	} else {
		h.Trash = trash
	}
	return h
}

// DefaultConfigDir is ~/.config/twinfm.
func DefaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "twinfm")
}

// DefaultDataDir is ~/.local/share/twinfm.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".local", "share", "twinfm")
}

// RefreshDevices replaces both device lists from the lister.
func (h *Holder) RefreshDevices(lister DeviceLister) error {
	if lister == nil {
		return nil
	}
	devices, err := lister.List()
	if err != nil {
		return err
	}
	var removable, encrypted []Device
	for _, d := range devices {
		if d.Encrypted {
			encrypted = append(encrypted, d)
		} else {
			removable = append(removable, d)
		}
	}
	h.Removable.Replace(removable)
	h.Encrypted.Replace(encrypted)
	return nil
}
