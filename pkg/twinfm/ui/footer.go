package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/twinfm/twinfm/pkg/files"
	"github.com/twinfm/twinfm/pkg/gitstring"
	"github.com/twinfm/twinfm/pkg/twinfm"
)

const gitCacheTTL = 3 * time.Second

// drawFooter renders the two bottom rows: the metadata line for the
// focused pane's selection, then the message and progress line.
func (u *UI) drawFooter(screen tcell.Screen, s *twinfm.Status, width, height int) {
	t := s.CurrentTab()

	if s.Session.Metadata {
		tview.Print(screen, u.metadataLine(s, t), 0, height-2, width, tview.AlignLeft, tcell.ColorGray)
	}
	tview.Print(screen, u.gitSummary(t.Path()), 0, height-2, width, tview.AlignRight, tcell.ColorGray)

	tview.Print(screen, tview.Escape(s.Message), 0, height-1, width, tview.AlignLeft, tcell.ColorGhostWhite)
	if line := progressLine(s); line != "" {
		tview.Print(screen, line, 0, height-1, width, tview.AlignRight, tcell.ColorOrange)
	}
}

// metadataLine is mode, owner, grouped size, mtime and the list position.
func (u *UI) metadataLine(s *twinfm.Status, t *twinfm.Tab) string {
	e, ok := t.Dir.Selected()
	if !ok {
		return fmt.Sprintf("0/%d", t.Dir.Len())
	}
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	sb.WriteString(e.Mode.Perm().String()[1:])
	sb.WriteString("  ")
	if e.Owner != "" {
		sb.WriteString(e.Owner)
		sb.WriteString("  ")
	}
	sb.WriteString(u.printer.Sprintf("%d", e.Size))
	sb.WriteString("  ")
	sb.WriteString(e.ModTime.Format("2006-01-02 15:04"))
	sb.WriteString(fmt.Sprintf("  %d/%d", t.Dir.Index+1, t.Dir.Len()))
	if flagged := s.Menu.Flagged.Len(); flagged > 0 {
		sb.WriteString(u.printer.Sprintf("  %d flagged (%d bytes)", flagged, flaggedBytes(s)))
	}
	return tview.Escape(sb.String())
}

// flaggedBytes sums the sizes of the flagged paths.
func flaggedBytes(s *twinfm.Status) int64 {
	var total int64
	for _, path := range s.Menu.Flagged.Paths {
		if info, err := files.NewFileInfo(path); err == nil {
			total += info.Size
		}
	}
	return total
}

// gitSummary caches the per-directory summary; go-git status is far too
// slow to recompute every frame.
func (u *UI) gitSummary(dir string) string {
	now := time.Now()
	if dir == u.gitDir && now.Sub(u.gitAt) < gitCacheTTL {
		return u.gitLine
	}
	u.gitDir = dir
	u.gitAt = now
	u.gitLine = gitstring.ForDir(dir).String()
	return u.gitLine
}

// progressLine renders the running job as a short bar.
func progressLine(s *twinfm.Status) string {
	verb, percent, active := s.Progress.Snapshot()
	if !active {
		return ""
	}
	const cells = 10
	filled := int(percent) * cells / 100
	bar := strings.Repeat("#", filled) + strings.Repeat("-", cells-filled)
	return fmt.Sprintf("%s [%s] %d%%", verb, bar, percent)
}
