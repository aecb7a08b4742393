package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/twinfm/twinfm/pkg/files"
	"github.com/twinfm/twinfm/pkg/preview"
	"github.com/twinfm/twinfm/pkg/twinfm"
)

// drawHeader prints the pane path and the listing state line below it.
func (u *UI) drawHeader(screen tcell.Screen, s *twinfm.Status, t *twinfm.Tab, focused bool, x, width int) {
	pathColor := tcell.ColorGray
	if focused {
		pathColor = tcell.ColorGhostWhite
	}
	tview.Print(screen, tview.Escape(t.Path()), x, 0, width, tview.AlignLeft, pathColor)
	tview.Print(screen, stateLine(t), x, 1, width, tview.AlignLeft, tcell.ColorGray)
}

// stateLine summarizes sort, filter, hidden files and the active search.
func stateLine(t *twinfm.Tab) string {
	var parts []string
	parts = append(parts, "sort:"+sortLabel(t.Sort))
	if t.Filter.IsActive() {
		parts = append(parts, "filtered")
	}
	if t.ShowHidden {
		parts = append(parts, "hidden")
	}
	if !t.Search.IsIdle() {
		parts = append(parts, fmt.Sprintf("search:%s (%d)", t.Search.Pattern, len(t.Search.Matches)))
	}
	switch t.DisplayMode {
	case twinfm.DisplayTree:
		parts = append(parts, "tree")
	case twinfm.DisplayPreview:
		parts = append(parts, "preview")
	case twinfm.DisplayFuzzy:
		parts = append(parts, "fuzzy")
	}
	return strings.Join(parts, "  ")
}

func sortLabel(s files.SortKind) string {
	var label string
	switch s.By {
	case files.SortByName:
		label = "name"
	case files.SortByDate:
		label = "date"
	case files.SortBySize:
		label = "size"
	case files.SortByExt:
		label = "ext"
	default:
		label = "kind"
	}
	if s.Reversed {
		label += "^"
	}
	return label
}

// drawContent renders the tab's main area under the header.
func (u *UI) drawContent(screen tcell.Screen, s *twinfm.Status, t *twinfm.Tab, focused bool, x, width int) {
	switch t.DisplayMode {
	case twinfm.DisplayTree:
		u.drawTree(screen, t, focused, x, width)
	case twinfm.DisplayPreview:
		u.drawArtifact(screen, t.Preview, x, headerRows, width, t.Window.Height, t.Window.Top)
	default:
		u.drawListing(screen, s, t, focused, x, width)
	}
}

// drawListing prints the visible slice of the directory, one entry per row.
func (u *UI) drawListing(screen tcell.Screen, s *twinfm.Status, t *twinfm.Tab, focused bool, x, width int) {
	for row, i := 0, t.Window.Top; i < t.Window.Bottom && i < t.Dir.Len(); i, row = i+1, row+1 {
		e := t.Dir.Entries[i]
		text, color := entryText(e)
		if s.Menu.Flagged.Contains(e.Path) {
			text = "[orange]*[-]" + text
		} else {
			text = " " + text
		}
		if i == t.Dir.Index {
			text = selectedText(text, focused)
		}
		tview.Print(screen, text, x, headerRows+row, width, tview.AlignLeft, color)
	}
	if t.Dir.IsEmpty() {
		tview.Print(screen, "(empty)", x, headerRows, width, tview.AlignLeft, tcell.ColorGray)
	}
}

// entryText renders the display name and its color.
func entryText(e files.FileInfo) (string, tcell.Color) {
	name := e.Name
	if e.IsDir() {
		name += "/"
	}
	return tview.Escape(name), ColorByEntry(e)
}

// selectedText wraps a row in the selection background. The unfocused
// pane keeps its selection visible but dimmer.
func selectedText(text string, focused bool) string {
	if focused {
		return "[black:aqua]" + text + "[-:-]"
	}
	return "[black:gray]" + text + "[-:-]"
}

// drawTree prints the visible tree lines with the selection highlighted.
func (u *UI) drawTree(screen tcell.Screen, t *twinfm.Tab, focused bool, x, width int) {
	if t.Tree == nil {
		return
	}
	lines := t.Tree.Lines()
	for row, i := 0, t.Window.Top; i < t.Window.Bottom && i < len(lines); i, row = i+1, row+1 {
		text := tview.Escape(lines[i])
		color := tcell.ColorWhiteSmoke
		if n := t.Tree.Visible[i]; n.Info.IsDir() {
			color = tcell.ColorAqua
		}
		if i == t.Tree.Index {
			text = selectedText(text, focused)
		}
		tview.Print(screen, text, x, headerRows+row, width, tview.AlignLeft, color)
	}
}

// drawArtifact prints a pre-rendered preview starting at the given line
// offset. Artifact lines already carry their color tags.
func (u *UI) drawArtifact(screen tcell.Screen, a *preview.Artifact, x, y, width, height, top int) {
	if a == nil || a.Kind == preview.KindEmpty {
		return
	}
	if a.Title != "" {
		tview.Print(screen, a.Title, x, y, width, tview.AlignLeft, tcell.ColorGhostWhite)
		y++
		height--
	}
	for row := 0; row < height && top+row < len(a.Lines); row++ {
		tview.Print(screen, a.Lines[top+row], x, y+row, width, tview.AlignLeft, tcell.ColorWhiteSmoke)
	}
}
