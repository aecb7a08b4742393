package twinfm

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/copymove"
	"github.com/twinfm/twinfm/pkg/files"
	"github.com/twinfm/twinfm/pkg/fsutils"
	"github.com/twinfm/twinfm/pkg/mount"
)

// handleMenuChar routes a plain printable rune to the handler of the
// current menu mode, bypassing the keybinding table entirely.
func (s *Status) handleMenuChar(c rune) {
	t := s.CurrentTab()
	switch t.Menu {
	case MenuSort:
		t.Sort.UpdateFromChar(c)
		if err := t.Refresh(); err != nil {
			logrus.WithError(err).Warn("re-sorting")
		}
		s.LeaveMenu(true)

	case MenuRegexMatch:
		s.Menu.Input.Insert(c)
		s.flagByRegex()

	case MenuFilter:
		s.Menu.Input.Insert(c)
		s.filterLive()

	case MenuTrash:
		if c == 'x' && s.Menu.Trash != nil {
			if err := s.Menu.Trash.RemoveSelected(); err != nil {
				s.SetMessage("trash: %v", err)
			}
			t.MenuWindow.Reset(s.Menu.Trash.Entries.Len())
		}

	case MenuEncryptedDrive:
		s.encryptedDriveChar(c)

	case MenuRemovableDevices:
		s.removableChar(c)

	case MenuMarksJump:
		if path, ok := s.Menu.Marks.Get(c); ok {
			s.LeaveMenu(true)
			if err := t.Cd(path); err != nil {
				s.SetMessage("mark %c: %v", c, err)
			}
			s.RequestPreview()
		} else {
			s.SetMessage("no mark %c", c)
		}

	case MenuMarksNew:
		if err := s.Menu.Marks.NewMark(c, t.Path()); err != nil {
			s.SetMessage("mark: %v", err)
		} else {
			s.SetMessage("marked %s as %c", t.Path(), c)
		}
		s.LeaveMenu(true)

	default:
		switch t.Menu.Family() {
		case FamilyInputSimple:
			s.Menu.Input.Insert(c)
		case FamilyInputCompleted:
			s.Menu.Input.Insert(c)
			s.refreshCompletion()
		case FamilyNeedConfirmation:
			if c == 'y' {
				s.executeConfirmed(t.Menu)
			}
			s.LeaveMenu(true)
		default:
			// Remaining Navigate kinds treat any char as "leave and refresh".
			s.LeaveMenu(false)
			if err := t.Refresh(); err != nil {
				logrus.WithError(err).Warn("refreshing")
			}
		}
	}
}

// afterInputChange re-runs whatever the mode derives live from the buffer.
func (s *Status) afterInputChange() {
	switch s.CurrentTab().Menu {
	case MenuRegexMatch:
		s.flagByRegex()
	case MenuFilter:
		s.filterLive()
	default:
		if s.CurrentTab().Menu.Family() == FamilyInputCompleted {
			s.refreshCompletion()
		}
	}
}

// flagByRegex re-flags the current directory's entries matching the buffer.
func (s *Status) flagByRegex() {
	t := s.CurrentTab()
	pattern := s.Menu.Input.String()
	re, err := regexp.Compile(pattern)
	if err != nil {
		return
	}
	for _, path := range s.Menu.Flagged.Filtered(t.Path()) {
		s.Menu.Flagged.Toggle(path)
	}
	if pattern == "" {
		return
	}
	for _, e := range t.Dir.Entries {
		if re.MatchString(e.Name) {
			s.Menu.Flagged.Push(e.Path)
		}
	}
}

// filterLive applies the typed filter to the listing immediately.
func (s *Status) filterLive() {
	t := s.CurrentTab()
	t.Filter = files.FilterFromInput(s.Menu.Input.String())
	if err := t.Refresh(); err != nil {
		logrus.WithError(err).Warn("filtering")
	}
}

// refreshCompletion re-ranks the mode's candidates against the buffer.
func (s *Status) refreshCompletion() {
	query := s.Menu.Input.String()
	switch s.CurrentTab().Menu {
	case MenuGoto:
		s.Menu.Completion.Rank(query, s.gotoCandidates())
	case MenuExec:
		s.Menu.Completion.Rank(query, execCandidates())
	case MenuSearch:
		var names []string
		for _, e := range s.CurrentTab().Dir.Entries {
			names = append(names, e.Name)
		}
		s.Menu.Completion.Rank(query, names)
	}
}

// confirmMenu is the Enter handler for every menu mode.
func (s *Status) confirmMenu() {
	t := s.CurrentTab()
	input := s.Menu.Input.String()
	switch t.Menu {
	case MenuRename:
		s.renameSelected(input)
	case MenuChmod:
		s.chmodSelected(input)
	case MenuNewFile:
		s.createEntry(input, false)
	case MenuNewDir:
		s.createEntry(input, true)
	case MenuRegexMatch, MenuSort:
		s.LeaveMenu(true)
	case MenuFilter:
		t.Filter = files.FilterFromInput(input)
		s.LeaveMenu(true)
		if err := t.Refresh(); err != nil {
			s.SetMessage("filter: %v", err)
		}
	case MenuPassword:
		s.Menu.Password.Set(s.pendingUsage, input)
		s.LeaveMenu(true)
		s.resumePendingMount()
	case MenuExec:
		s.execOnSelected()
	case MenuGoto:
		s.gotoTyped()
	case MenuSearch:
		s.confirmSearch(input)
	case MenuJump:
		if path, ok := s.Menu.Flagged.Selected(); ok {
			s.LeaveMenu(true)
			s.jumpTo(path)
		}
	case MenuHistory:
		if e, ok := t.History.Selected(); ok {
			s.LeaveMenu(true)
			t.History.DropQueue()
			if err := t.Cd(e.Dir); err != nil {
				s.SetMessage("history: %v", err)
				return
			}
			t.Dir.SelectName(e.File)
			t.Window.ScrollTo(t.Dir.Index)
			s.RequestPreview()
		}
	case MenuShortcut:
		if path, ok := s.Menu.Shortcuts.Selected(); ok {
			s.LeaveMenu(true)
			if err := t.Cd(path); err != nil {
				s.SetMessage("shortcut: %v", err)
			}
			s.RequestPreview()
		}
	case MenuTrash:
		if s.Menu.Trash != nil {
			if err := s.Menu.Trash.RestoreSelected(); err != nil {
				s.SetMessage("restore: %v", err)
			} else {
				s.SetMessage("restored")
			}
			s.LeaveMenu(true)
			if err := t.Refresh(); err != nil {
				logrus.WithError(err).Warn("refreshing")
			}
		}
	case MenuEncryptedDrive:
		s.encryptedDriveChar('m')
	case MenuRemovableDevices:
		s.removableChar('m')
	case MenuPicker:
		if line, ok := s.Menu.Picker.Selected(); ok {
			s.LeaveMenu(true)
			s.jumpTo(line)
		}
	default:
		// NeedConfirmation and the rest leave without acting.
		s.LeaveMenu(true)
	}
}

func (s *Status) renameSelected(newName string) {
	t := s.CurrentTab()
	path, ok := t.SelectedPath()
	if !ok || newName == "" {
		s.LeaveMenu(true)
		return
	}
	target := filepath.Join(filepath.Dir(path), newName)
	if err := os.Rename(path, target); err != nil {
		s.SetMessage("rename: %v", err)
	} else {
		s.SetMessage("renamed to %s", newName)
	}
	s.LeaveMenu(true)
	if err := t.Refresh(); err != nil {
		logrus.WithError(err).Warn("refreshing")
	}
	t.Dir.SelectName(newName)
}

func (s *Status) chmodSelected(octal string) {
	t := s.CurrentTab()
	path, ok := t.SelectedPath()
	s.LeaveMenu(true)
	if !ok {
		return
	}
	mode, err := strconv.ParseUint(octal, 8, 32)
	if err != nil {
		s.SetMessage("chmod: %q is not octal", octal)
		return
	}
	if err := os.Chmod(path, os.FileMode(mode)); err != nil {
		s.SetMessage("chmod: %v", err)
		return
	}
	if err := t.Refresh(); err != nil {
		logrus.WithError(err).Warn("refreshing")
	}
}

func (s *Status) createEntry(name string, isDir bool) {
	t := s.CurrentTab()
	s.LeaveMenu(true)
	if name == "" {
		return
	}
	path := filepath.Join(t.Path(), name)
	var err error
	if isDir {
		err = os.MkdirAll(path, 0755)
	} else {
		var f *os.File
		if f, err = os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644); err == nil {
			err = f.Close()
		}
	}
	if err != nil {
		s.SetMessage("create %s: %v", name, err)
		return
	}
	if err := t.Refresh(); err != nil {
		logrus.WithError(err).Warn("refreshing")
	}
	t.Dir.SelectName(name)
	t.Window.ScrollTo(t.Dir.Index)
}

func (s *Status) execOnSelected() {
	t := s.CurrentTab()
	command := s.Menu.Completion.Current()
	if command == "" {
		command = s.Menu.Input.String()
	}
	s.LeaveMenu(true)
	if command == "" {
		return
	}
	var args []string
	if path, ok := t.SelectedPath(); ok {
		args = append(args, path)
	}
	if err := mount.ExecuteInChild(command, args...); err != nil {
		s.SetMessage("exec: %v", err)
	}
}

func (s *Status) gotoTyped() {
	t := s.CurrentTab()
	dest := s.Menu.Completion.Current()
	if typed := s.Menu.Input.String(); dest == "" || filepath.IsAbs(typed) || typed == "~" || len(typed) > 1 && typed[:2] == "~/" {
		dest = typed
	}
	s.LeaveMenu(true)
	if dest == "" {
		return
	}
	dest = fsutils.ExpandHome(dest)
	if err := t.Cd(dest); err != nil {
		s.SetMessage("goto %s: %v", dest, err)
		return
	}
	s.RequestPreview()
}

// confirmSearch compiles the pattern, scans the listing and jumps to the
// first match. The search stays in place after the menu closes.
func (s *Status) confirmSearch(pattern string) {
	t := s.CurrentTab()
	t.Search.Compile(pattern)
	t.Search.Scan(t.Dir.Entries)
	s.LeaveMenu(true)
	if t.DisplayMode == DisplayFuzzy {
		t.DisplayMode = DisplayDirectory
	}
	if path, ok := t.Search.Current(); ok {
		t.SelectPath(path)
		s.RequestPreview()
	} else if !t.Search.IsIdle() {
		s.SetMessage("no match for %s", pattern)
	}
}

// jumpTo enters the directory containing path and selects it.
func (s *Status) jumpTo(path string) {
	t := s.CurrentTab()
	dir := filepath.Dir(path)
	if dir != t.Path() {
		if err := t.Cd(dir); err != nil {
			s.SetMessage("jump: %v", err)
			return
		}
	}
	t.SelectPath(path)
	s.RequestPreview()
}

// executeConfirmed runs the action behind a NeedConfirmation mode.
func (s *Status) executeConfirmed(mode MenuMode) {
	switch mode {
	case MenuConfirmCopy:
		s.SubmitJob(s.FlaggedOrSelected(), copymove.Copy)
	case MenuConfirmMove:
		s.SubmitJob(s.FlaggedOrSelected(), copymove.Move)
	case MenuConfirmDelete:
		s.deleteConfirmed()
	case MenuConfirmEmptyTrash:
		if s.Menu.Trash == nil {
			return
		}
		if err := s.Menu.Trash.Empty(); err != nil {
			s.SetMessage("empty trash: %v", err)
		} else {
			s.SetMessage("trash emptied")
		}
	}
}

// deleteConfirmed removes the flagged (or selected) paths permanently.
// Individual failures are logged and skipped.
func (s *Status) deleteConfirmed() {
	var removed int
	for _, path := range s.FlaggedOrSelected() {
		if err := os.RemoveAll(path); err != nil {
			logrus.WithError(err).Warnf("deleting %s", path)
			continue
		}
		removed++
	}
	s.Menu.Flagged.Clear()
	s.SetMessage("deleted %d entries", removed)
	for _, t := range s.Tabs {
		if err := t.Refresh(); err != nil {
			logrus.WithError(err).Warn("refreshing")
		}
	}
}

// encryptedDriveChar handles the single-letter protocol of the encrypted
// drive menu: m mounts, u unmounts, g goes to the mount point.
func (s *Status) encryptedDriveChar(c rune) {
	device, ok := s.Menu.Encrypted.Selected()
	if !ok {
		return
	}
	switch c {
	case 'm':
		s.startMount(device, mountOpMount)
	case 'u':
		s.startMount(device, mountOpUmount)
	case 'g':
		if device.IsMounted() {
			s.LeaveMenu(true)
			if err := s.CurrentTab().Cd(device.MountPoint); err != nil {
				s.SetMessage("cd %s: %v", device.MountPoint, err)
			}
			s.RequestPreview()
		}
	}
}

// removableChar handles the removable-device menu: m mounts, u unmounts,
// g goes to the mount point. gio needs no password.
func (s *Status) removableChar(c rune) {
	device, ok := s.Menu.Removable.Selected()
	if !ok {
		return
	}
	switch c {
	case 'g':
		if device.IsMounted() {
			s.LeaveMenu(true)
			if err := s.CurrentTab().Cd(device.MountPoint); err != nil {
				s.SetMessage("cd %s: %v", device.MountPoint, err)
			}
			s.RequestPreview()
		}
	case 'm', 'u':
		removable := &mount.Removable{Name: device.Name, Path: device.Path, Mounted: device.IsMounted()}
		var ok bool
		var err error
		if c == 'm' {
			ok, err = removable.Mount("", "")
		} else {
			ok, err = removable.Umount("", "")
		}
		if err != nil {
			s.SetMessage("%v", err)
		} else if !ok {
			s.SetMessage("gio failed for %s", device.Name)
		} else {
			s.SetMessage("done: %s", device.Name)
		}
		if err := s.Menu.RefreshDevices(lsblkLister{}); err != nil {
			logrus.WithError(err).Warn("listing devices")
		}
	}
}
