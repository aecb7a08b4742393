package twinfm

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Dispatch applies one event to the Status. Malformed or unknown input is
// a silent no-op; an error is only returned for conditions the driver
// should log as fatal for the iteration.
func (s *Status) Dispatch(e Event) error {
	switch ev := e.(type) {
	case ResizeEvent:
		s.Resize(ev.W, ev.H)
	case TickEvent:
		if s.Plugins != nil {
			s.Plugins.Update()
		}
	case RefreshEvent:
		s.HandleRefresh()
	case IPCEvent:
		s.HandleIPC(ev.Payload)
	case PreviewDone:
		s.HandlePreviewDone(ev)
	case CopyDone:
		s.HandleCopyDone(ev)
	case QuitEvent:
		s.RequestQuit()
	case MouseEvent:
		s.handleMouse(ev.Mouse)
	case KeyEvent:
		return s.handleKey(ev.Key)
	}
	return nil
}

func (s *Status) handleKey(ev *tcell.EventKey) error {
	if ev == nil {
		return nil
	}
	if !s.Focus.IsFile() {
		if isPlainChar(ev) {
			s.handleMenuChar(ev.Rune())
			return nil
		}
		s.handleMenuKey(ev)
		return nil
	}
	action, ok := s.Bindings.Get(ev)
	if !ok {
		if s.Plugins != nil && s.Plugins.HandleInput(ev) {
			return nil
		}
		logrus.Debugf("unbound key %s", ev.Name())
		return nil
	}
	return s.applyAction(action)
}

// isPlainChar reports whether the key is a printable rune without control
// modifiers, the kind routed to a mode-specific character handler.
func isPlainChar(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return false
	}
	return unicode.IsPrint(ev.Rune())
}

// handleMenuKey covers the non-printable keys while a menu has focus.
func (s *Status) handleMenuKey(ev *tcell.EventKey) {
	t := s.CurrentTab()
	switch ev.Key() {
	case tcell.KeyEscape:
		s.LeaveMenu(false)
	case tcell.KeyEnter:
		s.confirmMenu()
	case tcell.KeyUp:
		s.menuSelectPrev()
	case tcell.KeyDown:
		s.menuSelectNext()
	case tcell.KeyBacktab:
		if t.Menu.Family() == FamilyInputCompleted {
			s.Menu.Completion.Prev()
		}
	case tcell.KeyTab:
		if t.Menu.Family() == FamilyInputCompleted {
			s.Menu.Completion.Next()
			if proposal := s.Menu.Completion.Current(); proposal != "" {
				s.Menu.Input.Replace(proposal)
			}
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if t.Menu.TakesInput() {
			s.Menu.Input.DeleteLeft()
			s.afterInputChange()
		}
	case tcell.KeyDelete:
		if t.Menu.TakesInput() {
			s.Menu.Input.DeleteRightAll()
			s.afterInputChange()
		}
	case tcell.KeyLeft:
		s.Menu.Input.CursorLeft()
	case tcell.KeyRight:
		s.Menu.Input.CursorRight()
	case tcell.KeyHome:
		s.Menu.Input.CursorStart()
	case tcell.KeyEnd:
		s.Menu.Input.CursorEnd()
	}
}

// menuSelectNext moves the active menu list one row down.
func (s *Status) menuSelectNext() {
	t := s.CurrentTab()
	switch t.Menu {
	case MenuJump:
		s.Menu.Flagged.SelectNext()
		t.MenuWindow.ScrollDownOne(s.Menu.Flagged.Index)
	case MenuHistory:
		t.History.Next()
		t.MenuWindow.ScrollTo(t.History.Index)
	case MenuShortcut:
		s.Menu.Shortcuts.SelectNext()
		t.MenuWindow.ScrollDownOne(s.Menu.Shortcuts.Index)
	case MenuTrash:
		if s.Menu.Trash != nil {
			s.Menu.Trash.Entries.SelectNext()
			t.MenuWindow.ScrollDownOne(s.Menu.Trash.Entries.Index)
		}
	case MenuEncryptedDrive:
		s.Menu.Encrypted.SelectNext()
	case MenuRemovableDevices:
		s.Menu.Removable.SelectNext()
	case MenuPicker:
		s.Menu.Picker.SelectNext()
		t.MenuWindow.ScrollDownOne(s.Menu.Picker.Index)
	default:
		if t.Menu.Family() == FamilyInputCompleted {
			s.Menu.Completion.Next()
		}
	}
}

// menuSelectPrev moves the active menu list one row up.
func (s *Status) menuSelectPrev() {
	t := s.CurrentTab()
	switch t.Menu {
	case MenuJump:
		s.Menu.Flagged.SelectPrev()
		t.MenuWindow.ScrollUpOne(s.Menu.Flagged.Index)
	case MenuHistory:
		t.History.Prev()
		t.MenuWindow.ScrollTo(t.History.Index)
	case MenuShortcut:
		s.Menu.Shortcuts.SelectPrev()
		t.MenuWindow.ScrollUpOne(s.Menu.Shortcuts.Index)
	case MenuTrash:
		if s.Menu.Trash != nil {
			s.Menu.Trash.Entries.SelectPrev()
			t.MenuWindow.ScrollUpOne(s.Menu.Trash.Entries.Index)
		}
	case MenuEncryptedDrive:
		s.Menu.Encrypted.SelectPrev()
	case MenuRemovableDevices:
		s.Menu.Removable.SelectPrev()
	case MenuPicker:
		s.Menu.Picker.SelectPrev()
		t.MenuWindow.ScrollUpOne(s.Menu.Picker.Index)
	default:
		if t.Menu.Family() == FamilyInputCompleted {
			s.Menu.Completion.Prev()
		}
	}
}
