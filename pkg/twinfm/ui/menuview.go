package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/twinfm/twinfm/pkg/twinfm"
)

// drawMenu renders the open menu area below the file window. Input modes
// show a prompt line plus completions; navigate modes show their list.
func (u *UI) drawMenu(screen tcell.Screen, s *twinfm.Status, t *twinfm.Tab, x, y, width int) {
	_, height := s.Size()
	avail := height - footerRows - y
	if avail <= 0 {
		return
	}

	switch t.Menu.Family() {
	case twinfm.FamilyInputSimple:
		tview.Print(screen, inputLine(s, t), x, y, width, tview.AlignLeft, tcell.ColorGhostWhite)
	case twinfm.FamilyInputCompleted:
		tview.Print(screen, inputLine(s, t), x, y, width, tview.AlignLeft, tcell.ColorGhostWhite)
		u.drawCompletions(screen, s, x, y+1, width, avail-1)
	case twinfm.FamilyNavigate:
		u.drawNavigateList(screen, s, t, x, y, width)
	case twinfm.FamilyNeedConfirmation:
		tview.Print(screen, confirmLine(s, t), x, y, width, tview.AlignLeft, tcell.ColorOrange)
	}
}

// inputLine is "prompt: typed" with the cursor cell reversed. The
// password prompt masks what was typed.
func inputLine(s *twinfm.Status, t *twinfm.Tab) string {
	typed := s.Menu.Input.String()
	if t.Menu == twinfm.MenuPassword {
		typed = strings.Repeat("*", len([]rune(typed)))
	}
	return promptFor(t.Menu) + ": " + withCursor(typed, s.Menu.Input.Cursor())
}

// withCursor reverses the cell the cursor sits on.
func withCursor(typed string, cursor int) string {
	runes := []rune(typed)
	if cursor < 0 || cursor > len(runes) {
		cursor = len(runes)
	}
	before := tview.Escape(string(runes[:cursor]))
	at := " "
	if cursor < len(runes) {
		at = tview.Escape(string(runes[cursor]))
	}
	var after string
	if cursor+1 <= len(runes) {
		after = tview.Escape(string(runes[cursor+1:]))
	}
	return before + "[::r]" + at + "[::-]" + after
}

func promptFor(mode twinfm.MenuMode) string {
	switch mode {
	case twinfm.MenuRename:
		return "rename to"
	case twinfm.MenuChmod:
		return "chmod (octal)"
	case twinfm.MenuNewFile:
		return "new file"
	case twinfm.MenuNewDir:
		return "new directory"
	case twinfm.MenuRegexMatch:
		return "flag matching"
	case twinfm.MenuSort:
		return "sort k/n/m/s/e, capital reverses, r flips"
	case twinfm.MenuFilter:
		return "filter d | e ext | n regex"
	case twinfm.MenuPassword:
		return "password"
	case twinfm.MenuExec:
		return "exec"
	case twinfm.MenuGoto:
		return "go to"
	case twinfm.MenuSearch:
		return "search"
	default:
		return mode.String()
	}
}

// drawCompletions lists the ranked proposals under the input line.
func (u *UI) drawCompletions(screen tcell.Screen, s *twinfm.Status, x, y, width, height int) {
	c := &s.Menu.Completion
	for row := 0; row < height && row < len(c.Proposals); row++ {
		text := tview.Escape(c.Proposals[row])
		if row == c.Index {
			text = selectedText(text, true)
		}
		tview.Print(screen, text, x, y+row, width, tview.AlignLeft, tcell.ColorGray)
	}
}

// drawNavigateList renders the mode's list through the tab's menu window.
func (u *UI) drawNavigateList(screen tcell.Screen, s *twinfm.Status, t *twinfm.Tab, x, y, width int) {
	lines, index := navigateLines(s, t)
	if len(lines) == 0 {
		tview.Print(screen, "(empty)", x, y, width, tview.AlignLeft, tcell.ColorGray)
		return
	}
	w := t.MenuWindow
	for row, i := 0, w.Top; i < w.Bottom && i < len(lines); i, row = i+1, row+1 {
		text := tview.Escape(lines[i])
		if i == index {
			text = selectedText(text, true)
		}
		tview.Print(screen, text, x, y+row, width, tview.AlignLeft, tcell.ColorWhiteSmoke)
	}
}

// navigateLines is the display form of the active list plus its selection,
// matching the indices the click handler uses.
func navigateLines(s *twinfm.Status, t *twinfm.Tab) ([]string, int) {
	switch t.Menu {
	case twinfm.MenuJump:
		return s.Menu.Flagged.Paths, s.Menu.Flagged.Index
	case twinfm.MenuHistory:
		lines := make([]string, 0, t.History.Len())
		for _, e := range t.History.Visited {
			lines = append(lines, e.Dir+"  "+e.File)
		}
		return lines, t.History.Index
	case twinfm.MenuShortcut:
		return s.Menu.Shortcuts.Content, s.Menu.Shortcuts.Index
	case twinfm.MenuTrash:
		if s.Menu.Trash == nil {
			return nil, 0
		}
		lines := make([]string, 0, s.Menu.Trash.Entries.Len())
		for _, e := range s.Menu.Trash.Entries.Content {
			lines = append(lines, e.String())
		}
		return lines, s.Menu.Trash.Entries.Index
	case twinfm.MenuMarksNew, twinfm.MenuMarksJump:
		return s.Menu.Marks.AsStrings(), -1
	case twinfm.MenuEncryptedDrive, twinfm.MenuRemovableDevices:
		list := &s.Menu.Removable
		if t.Menu == twinfm.MenuEncryptedDrive {
			list = &s.Menu.Encrypted
		}
		lines := make([]string, 0, list.Len())
		for _, d := range list.Content {
			lines = append(lines, d.String())
		}
		return lines, list.Index
	case twinfm.MenuPicker:
		return s.Menu.Picker.Content, s.Menu.Picker.Index
	default:
		return nil, 0
	}
}

// confirmLine phrases the pending bulk operation.
func confirmLine(s *twinfm.Status, t *twinfm.Tab) string {
	count := len(s.FlaggedOrSelected())
	switch t.Menu {
	case twinfm.MenuConfirmCopy:
		return fmt.Sprintf("copy %d entries to %s? y/n", count, destPath(s))
	case twinfm.MenuConfirmMove:
		return fmt.Sprintf("move %d entries to %s? y/n", count, destPath(s))
	case twinfm.MenuConfirmDelete:
		return fmt.Sprintf("delete %d entries permanently? y/n", count)
	case twinfm.MenuConfirmEmptyTrash:
		n := 0
		if s.Menu.Trash != nil {
			n = s.Menu.Trash.Entries.Len()
		}
		return fmt.Sprintf("empty trash (%d entries)? y/n", n)
	default:
		return "confirm? y/n"
	}
}

func destPath(s *twinfm.Status) string {
	if s.Session.Dual {
		return s.OtherTab().Path()
	}
	return s.CurrentTab().Path()
}
