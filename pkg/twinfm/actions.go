package twinfm

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/files"
	"github.com/twinfm/twinfm/pkg/keymap"
	"github.com/twinfm/twinfm/pkg/mount"
)

// applyAction executes a named action from the keybinding table while a
// file pane has focus.
func (s *Status) applyAction(a keymap.Action) error {
	t := s.CurrentTab()
	switch a {
	case keymap.ActionQuit:
		s.RequestQuit()
	case keymap.ActionHelp:
		s.SetMessage("keys: arrows move, Tab switches pane, q quits")

	case keymap.ActionMoveUp:
		t.MoveUp()
		s.RequestPreview()
	case keymap.ActionMoveDown:
		t.MoveDown()
		s.RequestPreview()
	case keymap.ActionMoveLeft, keymap.ActionBack:
		if err := t.CdToParent(); err != nil {
			s.SetMessage("%v", err)
		}
		s.RequestPreview()
	case keymap.ActionMoveRight, keymap.ActionEnter:
		s.enterSelected()
	case keymap.ActionPageUp:
		t.PageUp()
		s.RequestPreview()
	case keymap.ActionPageDown:
		t.PageDown()
		s.RequestPreview()
	case keymap.ActionSelectTop:
		t.SelectTop()
		s.RequestPreview()
	case keymap.ActionSelectEnd:
		t.SelectEnd()
		s.RequestPreview()
	case keymap.ActionHome:
		home, err := os.UserHomeDir()
		if err == nil {
			err = t.Cd(home)
		}
		if err != nil {
			s.SetMessage("%v", err)
		}
		s.RequestPreview()
	case keymap.ActionOpenFile:
		s.openSelected()
	case keymap.ActionSwitchPane:
		s.SwitchPane()

	case keymap.ActionToggleFlag:
		if path, ok := t.SelectedPath(); ok {
			s.Menu.Flagged.Toggle(path)
			t.MoveDown()
		}
	case keymap.ActionFlagAll:
		for _, e := range t.Dir.Entries {
			s.Menu.Flagged.Push(e.Path)
		}
	case keymap.ActionReverseFlags:
		for _, e := range t.Dir.Entries {
			s.Menu.Flagged.Toggle(e.Path)
		}
	case keymap.ActionClearFlags:
		s.Menu.Flagged.Clear()
	case keymap.ActionSymlink:
		s.symlinkFlagged()
	case keymap.ActionBulkRename:
		s.bulkRenameFlagged()

	case keymap.ActionCopyPaste:
		s.EnterMenu(MenuConfirmCopy)
	case keymap.ActionCutPaste:
		s.EnterMenu(MenuConfirmMove)
	case keymap.ActionDelete:
		s.EnterMenu(MenuConfirmDelete)
	case keymap.ActionTrashMove:
		s.trashFlagged()
	case keymap.ActionTrashOpen:
		s.EnterMenu(MenuTrash)

	case keymap.ActionNewFile:
		s.EnterMenu(MenuNewFile)
	case keymap.ActionNewDir:
		s.EnterMenu(MenuNewDir)
	case keymap.ActionRename:
		s.EnterMenu(MenuRename)
	case keymap.ActionChmod:
		s.EnterMenu(MenuChmod)
	case keymap.ActionExec:
		s.EnterMenu(MenuExec)
	case keymap.ActionGoto:
		s.EnterMenu(MenuGoto)
	case keymap.ActionSearch:
		s.EnterMenu(MenuSearch)
	case keymap.ActionRegexMatch:
		s.EnterMenu(MenuRegexMatch)
	case keymap.ActionSort:
		s.EnterMenu(MenuSort)
	case keymap.ActionFilter:
		s.EnterMenu(MenuFilter)

	case keymap.ActionJump:
		s.EnterMenu(MenuJump)
	case keymap.ActionHistory:
		s.EnterMenu(MenuHistory)
	case keymap.ActionShortcut:
		s.EnterMenu(MenuShortcut)
	case keymap.ActionMarksNew:
		s.EnterMenu(MenuMarksNew)
	case keymap.ActionMarksJump:
		s.EnterMenu(MenuMarksJump)

	case keymap.ActionPreview:
		s.togglePreviewDisplay()
	case keymap.ActionTree:
		s.toggleTreeDisplay()
	case keymap.ActionFuzzy:
		t.DisplayMode = DisplayFuzzy
		s.EnterMenu(MenuSearch)

	case keymap.ActionToggleDualPane:
		s.Session.ToggleDual()
		if !s.Session.Dual && s.Index == 1 {
			s.Index = 0
			s.Focus = FocusFor(0, s.CurrentTab().Menu != MenuNothing)
		}
		s.RequestPreview()
	case keymap.ActionTogglePreview:
		s.Session.TogglePreview()
		s.RequestPreview()
	case keymap.ActionToggleMetadata:
		s.Session.ToggleMetadata()
	case keymap.ActionToggleHidden:
		t.ShowHidden = !t.ShowHidden
		if err := t.Refresh(); err != nil {
			s.SetMessage("%v", err)
		}

	case keymap.ActionRefresh:
		if err := t.Refresh(); err != nil {
			s.SetMessage("%v", err)
		}
	case keymap.ActionEncryptedDrive:
		s.EnterMenu(MenuEncryptedDrive)
	case keymap.ActionRemovableDevice:
		s.EnterMenu(MenuRemovableDevices)
	}
	return nil
}

// enterSelected opens a directory in place, toggles a tree node, or hands
// a file to the opener.
func (s *Status) enterSelected() {
	t := s.CurrentTab()
	if t.DisplayMode == DisplayTree {
		if err := t.Tree.ToggleSelected(); err != nil {
			s.SetMessage("%v", err)
			return
		}
		t.Window.Reset(t.Tree.Len())
		t.Window.ScrollTo(t.Tree.Index)
		return
	}
	e, ok := t.Dir.Selected()
	if !ok {
		return
	}
	if e.IsDir() || files.IsSymlinkToDir(e) {
		if err := t.Cd(e.Path); err != nil {
			s.SetMessage("%v", err)
		}
		s.RequestPreview()
		return
	}
	if e.Ext == "iso" {
		s.mountIso(e.Path)
		return
	}
	s.openSelected()
}

// openSelected hands the selected file to the system opener, detached.
func (s *Status) openSelected() {
	path, ok := s.CurrentTab().SelectedPath()
	if !ok {
		return
	}
	if err := mount.ExecuteInChild("xdg-open", path); err != nil {
		s.SetMessage("open: %v", err)
	}
}

// togglePreviewDisplay flips the current pane in and out of preview mode.
func (s *Status) togglePreviewDisplay() {
	t := s.CurrentTab()
	if t.DisplayMode == DisplayPreview {
		t.DisplayMode = DisplayDirectory
		t.Window.Reset(t.Dir.Len())
		t.Window.ScrollTo(t.Dir.Index)
		return
	}
	path, ok := t.SelectedPath()
	if !ok {
		return
	}
	t.DisplayMode = DisplayPreview
	t.Window.Reset(t.Preview.Len())
	s.Pipeline.Request(path, s.Index)
}

func (s *Status) toggleTreeDisplay() {
	t := s.CurrentTab()
	if t.DisplayMode == DisplayTree {
		t.LeaveTree()
		return
	}
	if err := t.EnterTree(); err != nil {
		s.SetMessage("%v", err)
	}
}

// symlinkFlagged links every flagged path into the current directory.
func (s *Status) symlinkFlagged() {
	t := s.CurrentTab()
	var created int
	for _, src := range s.FlaggedOrSelected() {
		target := filepath.Join(t.Path(), filepath.Base(src))
		if err := os.Symlink(src, target); err != nil {
			logrus.WithError(err).Warnf("symlink %s", src)
			continue
		}
		created++
	}
	s.SetMessage("created %d symlinks", created)
	if err := t.Refresh(); err != nil {
		logrus.WithError(err).Warn("refreshing")
	}
}

// trashFlagged moves the flagged (or selected) paths to the trash.
func (s *Status) trashFlagged() {
	if s.Menu.Trash == nil {
		s.SetMessage("trash unavailable")
		return
	}
	var moved int
	for _, path := range s.FlaggedOrSelected() {
		if err := s.Menu.Trash.Move(path); err != nil {
			logrus.WithError(err).Warnf("trashing %s", path)
			continue
		}
		moved++
	}
	s.Menu.Flagged.Clear()
	s.SetMessage("trashed %d entries", moved)
	for _, t := range s.Tabs {
		if err := t.Refresh(); err != nil {
			logrus.WithError(err).Warn("refreshing")
		}
	}
}

// bulkRenameFlagged writes the flagged names to a temp file, lets $EDITOR
// rewrite them and applies the renames line by line.
func (s *Status) bulkRenameFlagged() {
	sources := s.FlaggedOrSelected()
	if len(sources) == 0 {
		s.SetMessage("nothing to rename")
		return
	}
	renamed, err := bulkRename(sources)
	if err != nil {
		s.SetMessage("bulk rename: %v", err)
		return
	}
	s.Menu.Flagged.Clear()
	s.SetMessage("renamed %d entries", renamed)
	for _, t := range s.Tabs {
		if err := t.Refresh(); err != nil {
			logrus.WithError(err).Warn("refreshing")
		}
	}
}
