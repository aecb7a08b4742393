// Package ui draws the whole application state onto a tcell screen once
// per loop iteration. It owns no state of its own beyond render caches;
// everything it shows comes from the Status passed to Draw.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/twinfm/twinfm/pkg/twinfm"
)

// Layout rows around each file window, mirrored by the mouse translation.
const (
	headerRows = 2
	footerRows = 2
)

// UI is the Renderer handed to the driver.
type UI struct {
	printer *message.Printer

	// git summaries are cached per directory; go-git is too slow to run
	// on every frame.
	gitDir  string
	gitLine string
	gitAt   time.Time
}

func New() *UI {
	return &UI{printer: message.NewPrinter(language.English)}
}

// Draw renders both panes, the menu area of the focused pane and the
// footer. The screen is already cleared by the driver.
func (u *UI) Draw(screen tcell.Screen, s *twinfm.Status) {
	width, height := s.Size()
	if width < 4 || height <= headerRows+footerRows {
		return
	}

	if s.Session.Dual {
		half := width / 2
		u.drawPane(screen, s, 0, 0, half)
		u.drawPane(screen, s, 1, half, width-half)
	} else {
		u.drawPane(screen, s, s.Index, 0, width)
	}

	u.drawFooter(screen, s, width, height)
}

// drawPane renders one pane's header, content window and open menu.
func (u *UI) drawPane(screen tcell.Screen, s *twinfm.Status, pane, x, width int) {
	t := s.Tabs[pane]
	focused := pane == s.Index

	u.drawHeader(screen, s, t, focused, x, width)

	// The right pane mirrors the left selection's preview in dual-pane
	// preview layout, whatever its own display mode says.
	if pane == 1 && s.Session.Dual && s.Session.Preview {
		u.drawArtifact(screen, t.Preview, x, headerRows, width, t.Window.Height, 0)
	} else {
		u.drawContent(screen, s, t, focused, x, width)
	}

	if t.Menu != twinfm.MenuNothing {
		u.drawMenu(screen, s, t, x, headerRows+t.Window.Height, width)
	}
}
