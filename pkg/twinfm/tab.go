package twinfm

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/files"
	"github.com/twinfm/twinfm/pkg/menu"
	"github.com/twinfm/twinfm/pkg/preview"
)

// Tab is one pane's navigation state. Created once per pane at startup and
// mutated in place for the whole session, never reallocated.
type Tab struct {
	DisplayMode DisplayMode
	Menu        MenuMode

	Dir  *files.Directory
	Tree *files.Tree

	Window     ContentWindow
	MenuWindow ContentWindow

	History menu.History
	Search  Search

	ShowHidden bool
	Sort       files.SortKind
	Filter     files.Filter

	Preview *preview.Artifact

	// users memoizes owner lookups across this tab's listings.
	users *files.Users

	// height is the pane's full row budget; the file window shrinks to
	// half of it while a menu is open.
	height int
	// savedFilter restores the listing filter when Filter input is canceled.
	savedFilter files.Filter
}

// NewTab opens path in directory mode.
func NewTab(path string, height int) (*Tab, error) {
	t := &Tab{height: height, Preview: preview.Empty, users: &files.Users{}}
	dir, err := files.ReadDirectory(path, t.listOptions())
	if err != nil {
		return nil, err
	}
	t.Dir = dir
	t.Window = NewContentWindow(dir.Len(), height)
	return t, nil
}

func (t *Tab) listOptions() files.ListOptions {
	return files.ListOptions{ShowHidden: t.ShowHidden, Sort: t.Sort, Filter: t.Filter, Users: t.users}
}

// Path is the tab's current directory.
func (t *Tab) Path() string {
	if t.Dir == nil {
		return ""
	}
	return t.Dir.Path
}

// SelectedPath is the absolute path of the highlighted entry, if any.
// In preview display mode the selection is the previewed path; until the
// first artifact arrives it is still the listing selection, so the result
// that was just requested is never treated as stale.
func (t *Tab) SelectedPath() (string, bool) {
	switch t.DisplayMode {
	case DisplayTree:
		if t.Tree == nil {
			return "", false
		}
		n, ok := t.Tree.Selected()
		if !ok {
			return "", false
		}
		return n.Info.Path, true
	case DisplayPreview:
		if t.Preview != nil && t.Preview.Path != "" {
			return t.Preview.Path, true
		}
		e, ok := t.Dir.Selected()
		if !ok {
			return "", false
		}
		return e.Path, true
	default:
		e, ok := t.Dir.Selected()
		if !ok {
			return "", false
		}
		return e.Path, true
	}
}

// ContentLen is how many rows the main area can scroll over.
func (t *Tab) ContentLen() int {
	switch t.DisplayMode {
	case DisplayTree:
		if t.Tree == nil {
			return 0
		}
		return t.Tree.Len()
	case DisplayPreview:
		return t.Preview.Len()
	default:
		return t.Dir.Len()
	}
}

// Cd pushes the current position to history and enters path.
func (t *Tab) Cd(path string) error {
	if selected, ok := t.Dir.Selected(); ok {
		t.History.Push(t.Dir.Path, selected.Name)
	} else {
		t.History.Push(t.Dir.Path, "")
	}
	dir, err := files.ReadDirectory(path, t.listOptions())
	if err != nil {
		return err
	}
	t.Dir = dir
	t.Tree = nil
	t.Search.Reset()
	if t.DisplayMode == DisplayTree || t.DisplayMode == DisplayPreview {
		t.DisplayMode = DisplayDirectory
	}
	t.Window.Reset(dir.Len())
	return nil
}

// CdToParent enters the parent directory and selects the child we left.
func (t *Tab) CdToParent() error {
	current := t.Dir.Path
	parent := filepath.Dir(current)
	if parent == current {
		return nil
	}
	if err := t.Cd(parent); err != nil {
		return err
	}
	if t.Dir.SelectName(filepath.Base(current)) {
		t.Window.ScrollTo(t.Dir.Index)
	}
	return nil
}

// Refresh re-reads the listing, keeping the selection by name when possible.
func (t *Tab) Refresh() error {
	var keep string
	if e, ok := t.Dir.Selected(); ok {
		keep = e.Name
	}
	dir, err := files.ReadDirectory(t.Dir.Path, t.listOptions())
	if err != nil {
		return err
	}
	t.Dir = dir
	if keep != "" {
		t.Dir.SelectName(keep)
	}
	t.Window.Reset(dir.Len())
	t.Window.ScrollTo(t.Dir.Index)
	if t.DisplayMode == DisplayTree {
		return t.EnterTree()
	}
	return nil
}

// RefreshIfModified re-reads the directory only when its mtime moved on.
func (t *Tab) RefreshIfModified() {
	if !t.Dir.ModifiedSince() {
		return
	}
	if err := t.Refresh(); err != nil {
		logrus.WithError(err).Warnf("refreshing %s", t.Dir.Path)
	}
}

// EnterTree switches the main area to the lazily expanded tree.
func (t *Tab) EnterTree() error {
	tree, err := files.NewTree(t.Dir.Path, t.listOptions())
	if err != nil {
		return err
	}
	t.Tree = tree
	t.DisplayMode = DisplayTree
	t.Window.Reset(tree.Len())
	return nil
}

// LeaveTree returns to the flat listing.
func (t *Tab) LeaveTree() {
	t.Tree = nil
	t.DisplayMode = DisplayDirectory
	t.Window.Reset(t.Dir.Len())
	t.Window.ScrollTo(t.Dir.Index)
}

// SetPreview attaches a finished artifact and resets the scroll window.
func (t *Tab) SetPreview(artifact *preview.Artifact) {
	t.Preview = artifact
	if t.DisplayMode == DisplayPreview {
		t.Window.Reset(artifact.Len())
	}
}

// EnterMenu opens a menu mode: focus bookkeeping is the Status's concern,
// the tab halves its file window and sizes the menu window to the content.
func (t *Tab) EnterMenu(mode MenuMode, contentLen int) {
	t.Menu = mode
	half := t.height / 2
	t.Window.SetHeight(half)
	t.Window.ScrollTo(t.selectionIndex())
	t.MenuWindow = NewContentWindow(contentLen, half)
	if mode == MenuFilter {
		t.savedFilter = t.Filter
	}
}

// LeaveMenu closes the menu and restores the full-height file window.
// The transient filter is discarded unless confirmed.
func (t *Tab) LeaveMenu(confirmed bool) {
	if t.Menu == MenuFilter && !confirmed {
		t.Filter = t.savedFilter
		if err := t.Refresh(); err != nil {
			logrus.WithError(err).Warn("restoring filter")
		}
	}
	t.Menu = MenuNothing
	t.Window.SetHeight(t.height)
	t.Window.ScrollTo(t.selectionIndex())
}

// SetHeight propagates a terminal resize.
func (t *Tab) SetHeight(height int) {
	t.height = height
	if t.Menu != MenuNothing {
		height /= 2
		t.MenuWindow.SetHeight(height)
	}
	t.Window.SetHeight(height)
	t.Window.ScrollTo(t.selectionIndex())
}

func (t *Tab) selectionIndex() int {
	switch t.DisplayMode {
	case DisplayTree:
		if t.Tree == nil {
			return 0
		}
		return t.Tree.Index
	case DisplayPreview:
		return 0
	default:
		return t.Dir.Index
	}
}

// MoveDown advances the selection one row.
func (t *Tab) MoveDown() {
	switch t.DisplayMode {
	case DisplayTree:
		if t.Tree != nil {
			t.Tree.SelectNext()
			t.Window.ScrollDownOne(t.Tree.Index)
		}
	case DisplayPreview:
		t.Window.PageDown()
	default:
		t.Dir.SelectNext()
		t.Window.ScrollDownOne(t.Dir.Index)
	}
}

// MoveUp retreats the selection one row.
func (t *Tab) MoveUp() {
	switch t.DisplayMode {
	case DisplayTree:
		if t.Tree != nil {
			t.Tree.SelectPrev()
			t.Window.ScrollUpOne(t.Tree.Index)
		}
	case DisplayPreview:
		t.Window.PageUp()
	default:
		t.Dir.SelectPrev()
		t.Window.ScrollUpOne(t.Dir.Index)
	}
}

// PageDown jumps a window's worth of rows.
func (t *Tab) PageDown() {
	if t.DisplayMode == DisplayPreview {
		t.Window.PageDown()
		return
	}
	t.selectIndex(t.selectionIndex() + maxInt(1, t.Window.Height-1))
}

// PageUp jumps back a window's worth of rows.
func (t *Tab) PageUp() {
	if t.DisplayMode == DisplayPreview {
		t.Window.PageUp()
		return
	}
	t.selectIndex(t.selectionIndex() - maxInt(1, t.Window.Height-1))
}

// SelectTop moves to the first row.
func (t *Tab) SelectTop() { t.selectIndex(0) }

// SelectEnd moves to the last row.
func (t *Tab) SelectEnd() { t.selectIndex(t.ContentLen() - 1) }

func (t *Tab) selectIndex(i int) {
	switch t.DisplayMode {
	case DisplayTree:
		if t.Tree == nil {
			return
		}
		if i < 0 {
			i = 0
		}
		if i >= t.Tree.Len() {
			i = t.Tree.Len() - 1
		}
		t.Tree.Index = maxInt(i, 0)
		t.Window.ScrollTo(t.Tree.Index)
	case DisplayPreview:
	default:
		t.Dir.SelectIndex(i)
		t.Window.ScrollTo(t.Dir.Index)
	}
}

// SelectPath moves the selection to path if it is in the listing.
func (t *Tab) SelectPath(path string) bool {
	if t.DisplayMode != DisplayDirectory && t.DisplayMode != DisplayFuzzy {
		return false
	}
	i := t.Dir.IndexOfPath(path)
	if i < 0 {
		return false
	}
	t.Dir.SelectIndex(i)
	t.Window.ScrollTo(t.Dir.Index)
	return true
}
