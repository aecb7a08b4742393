package twinfm

import (
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// Layout rows shared with the renderer: two header rows above the file
// window, two footer rows below.
const (
	headerRows = 2
	footerRows = 2
)

// region is where inside a pane a click landed.
type region int

const (
	regionHeader region = iota
	regionFiles
	regionMenu
	regionFooter
)

// handleMouse translates the position to a (pane, region) pair, then to a
// region action. The wheel scrolls the pane under the cursor.
func (s *Status) handleMouse(ev *tcell.EventMouse) {
	if ev == nil {
		return
	}
	x, y := ev.Position()
	pane := s.paneAt(x)

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		s.focusPane(pane)
		s.CurrentTab().MoveUp()
		s.RequestPreview()
		return
	case ev.Buttons()&tcell.WheelDown != 0:
		s.focusPane(pane)
		s.CurrentTab().MoveDown()
		s.RequestPreview()
		return
	case ev.Buttons()&tcell.Button1 == 0:
		return
	}

	s.focusPane(pane)
	t := s.CurrentTab()
	reg, row := s.regionAt(t, y)
	switch reg {
	case regionHeader:
		// Header click cycles the sort key, like opening and confirming
		// the sort menu with the next key.
		s.EnterMenu(MenuSort)
	case regionFooter:
		s.Session.ToggleMetadata()
	case regionFiles:
		t.selectIndex(t.Window.Top + row)
		s.RequestPreview()
	case regionMenu:
		s.menuClick(t, t.MenuWindow.Top+row)
	}
}

// paneAt maps a column to a pane index.
func (s *Status) paneAt(x int) int {
	if !s.Session.Dual {
		return s.Index
	}
	if x >= s.width/2 {
		return 1
	}
	return 0
}

// focusPane selects the pane, keeping its own file-vs-menu sub-state.
func (s *Status) focusPane(pane int) {
	if pane == s.Index {
		return
	}
	if !s.Session.Dual {
		return
	}
	s.Index = pane
	s.Focus = FocusFor(pane, s.CurrentTab().Menu != MenuNothing)
}

// regionAt maps a row to a region plus the offset inside it.
func (s *Status) regionAt(t *Tab, y int) (region, int) {
	if y < headerRows {
		return regionHeader, y
	}
	if y >= s.height-footerRows {
		return regionFooter, 0
	}
	fileRows := t.Window.Height
	if y < headerRows+fileRows {
		return regionFiles, y - headerRows
	}
	if t.Menu != MenuNothing {
		return regionMenu, y - headerRows - fileRows
	}
	return regionFiles, fileRows - 1
}

// menuClick maps a clicked menu row back to a list index and selects it.
func (s *Status) menuClick(t *Tab, index int) {
	if index < 0 {
		return
	}
	set := func(current *int, length int) {
		if index < length {
			*current = index
		}
	}
	switch t.Menu {
	case MenuJump:
		set(&s.Menu.Flagged.Index, s.Menu.Flagged.Len())
	case MenuHistory:
		set(&t.History.Index, t.History.Len())
	case MenuShortcut:
		set(&s.Menu.Shortcuts.Index, s.Menu.Shortcuts.Len())
	case MenuTrash:
		if s.Menu.Trash != nil {
			set(&s.Menu.Trash.Entries.Index, s.Menu.Trash.Entries.Len())
		}
	case MenuEncryptedDrive:
		set(&s.Menu.Encrypted.Index, s.Menu.Encrypted.Len())
	case MenuRemovableDevices:
		set(&s.Menu.Removable.Index, s.Menu.Removable.Len())
	case MenuPicker:
		set(&s.Menu.Picker.Index, s.Menu.Picker.Len())
	default:
		logrus.Debugf("menu click ignored in %s", t.Menu)
	}
}
