package twinfm

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/copymove"
	"github.com/twinfm/twinfm/pkg/keymap"
	"github.com/twinfm/twinfm/pkg/menu"
	"github.com/twinfm/twinfm/pkg/mount"
	"github.com/twinfm/twinfm/pkg/plugin"
	"github.com/twinfm/twinfm/pkg/preview"
)

// reservedRows is the header plus footer space around each file window.
const reservedRows = 4

// Options configures a Status at construction. Everything is injected;
// nothing in this package reads ambient globals.
type Options struct {
	LeftPath  string
	RightPath string
	ConfigDir string
	DataDir   string
	Bindings  *keymap.Bindings
	Renderer  func(path string) *preview.Artifact
	Plugins   *plugin.Registry
	Width     int
	Height    int
}

// Status is the single point of mutation: both tabs, the shared menu
// state, the focus, and the channel endpoints connecting the background
// workers. Only the foreground loop mutates it, in response to events.
type Status struct {
	Tabs    [2]*Tab
	Index   int
	Focus   Focus
	Session *Session
	Menu    *menu.Holder

	Bindings *keymap.Bindings
	Plugins  *plugin.Registry

	Pipeline *preview.Pipeline
	Queue    *copymove.Queue
	Progress *copymove.Progress

	// Message is the one-line feedback shown in the footer.
	Message string

	internal chan Event
	username string
	width    int
	height   int
	quit     bool

	// A mount/umount parked until its passwords are collected.
	pendingUsage  menu.PasswordUsage
	pendingOp     mountOp
	pendingDevice menu.Device
}

// NewStatus builds the whole aggregate and starts the preview worker.
func NewStatus(o Options) (*Status, error) {
	if o.Width <= 0 {
		o.Width = 80
	}
	if o.Height <= 0 {
		o.Height = 24
	}
	s := &Status{
		Session:  LoadSession(o.ConfigDir),
		Menu:     menu.NewHolder(o.ConfigDir, o.DataDir),
		Bindings: o.Bindings,
		Plugins:  o.Plugins,
		Progress: &copymove.Progress{},
		internal: make(chan Event, 64),
		width:    o.Width,
		height:   o.Height,
	}
	if s.Bindings == nil {
		s.Bindings = keymap.Default()
	}
	if u, err := user.Current(); err == nil {
		s.username = u.Username
	}

	paneHeight := maxInt(1, o.Height-reservedRows)
	left, err := NewTab(o.LeftPath, paneHeight)
	if err != nil {
		return nil, fmt.Errorf("left pane %s: %w", o.LeftPath, err)
	}
	rightPath := o.RightPath
	if rightPath == "" {
		rightPath = o.LeftPath
	}
	right, err := NewTab(rightPath, paneHeight)
	if err != nil {
		return nil, fmt.Errorf("right pane %s: %w", rightPath, err)
	}
	s.Tabs[0] = left
	s.Tabs[1] = right

	s.Pipeline = preview.NewPipeline(o.Renderer)
	s.Queue = copymove.NewQueue(s.Progress, func(d copymove.Done) bool {
		return s.Emit(CopyDone{Job: d.Job, Err: d.Err})
	})
	return s, nil
}

// Events is the internal event channel the driver merges with raw input.
func (s *Status) Events() <-chan Event { return s.internal }

// Emit submits an event from a background worker. False when the channel
// is full, which callers treat as the subsystem being gone.
func (s *Status) Emit(e Event) bool {
	select {
	case s.internal <- e:
		return true
	default:
		return false
	}
}

// CurrentTab is the selected pane's tab.
func (s *Status) CurrentTab() *Tab { return s.Tabs[s.Index] }

// OtherTab is the non-selected pane's tab.
func (s *Status) OtherTab() *Tab { return s.Tabs[1-s.Index] }

// ShouldQuit reports whether a quit was requested.
func (s *Status) ShouldQuit() bool { return s.quit }

// RequestQuit asks the driver to stop after this iteration.
func (s *Status) RequestQuit() { s.quit = true }

// Size is the current terminal size.
func (s *Status) Size() (int, int) { return s.width, s.height }

// PaneWidth is the current width of one file pane.
func (s *Status) PaneWidth() int {
	if s.Session.Dual {
		return s.width / 2
	}
	return s.width
}

// Resize propagates a new terminal size to both tabs.
func (s *Status) Resize(w, h int) {
	s.width, s.height = w, h
	paneHeight := maxInt(1, h-reservedRows)
	for _, t := range s.Tabs {
		t.SetHeight(paneHeight)
	}
}

// SwitchPane toggles left/right. The destination pane's own menu state
// decides file-vs-menu focus; the two panes' modes are independent.
func (s *Status) SwitchPane() {
	if !s.Session.Dual {
		return
	}
	s.Index = 1 - s.Index
	s.Focus = FocusFor(s.Index, s.CurrentTab().Menu != MenuNothing)
	s.RequestPreview()
}

// FocusToParent collapses a menu focus to the owning file focus without
// leaving the menu mode.
func (s *Status) FocusToParent() { s.Focus = s.Focus.ToParent() }

// EnterMenu opens mode on the current tab, with toggle semantics: asking
// for the already-open mode closes it instead.
func (s *Status) EnterMenu(mode MenuMode) {
	t := s.CurrentTab()
	if t.Menu == mode {
		s.LeaveMenu(false)
		return
	}
	if t.Menu != MenuNothing {
		s.LeaveMenu(false)
	}
	s.prepareMenu(mode)
	t.EnterMenu(mode, s.menuContentLen(mode))
	s.Focus = FocusFor(s.Index, true)
}

// prepareMenu fills the shared menu state the mode is about to show.
func (s *Status) prepareMenu(mode MenuMode) {
	s.Menu.Input.Reset()
	s.Menu.Completion.Reset()
	switch mode {
	case MenuRename:
		if path, ok := s.CurrentTab().SelectedPath(); ok {
			s.Menu.Input.Replace(baseName(path))
		}
	case MenuGoto:
		s.Menu.Completion.Rank("", s.gotoCandidates())
	case MenuExec:
		s.Menu.Completion.Rank("", execCandidates())
	case MenuEncryptedDrive, MenuRemovableDevices:
		if err := s.Menu.RefreshDevices(lsblkLister{}); err != nil {
			logrus.WithError(err).Warn("listing devices")
		}
	case MenuTrash:
		if s.Menu.Trash != nil {
			s.Menu.Trash.Reload()
		}
	}
}

// menuContentLen is how many rows the menu list scrolls over.
func (s *Status) menuContentLen(mode MenuMode) int {
	switch mode {
	case MenuJump:
		return s.Menu.Flagged.Len()
	case MenuHistory:
		return s.CurrentTab().History.Len()
	case MenuShortcut:
		return s.Menu.Shortcuts.Len()
	case MenuTrash:
		if s.Menu.Trash == nil {
			return 0
		}
		return s.Menu.Trash.Entries.Len()
	case MenuMarksNew, MenuMarksJump:
		return len(s.Menu.Marks.AsStrings())
	case MenuEncryptedDrive:
		return s.Menu.Encrypted.Len()
	case MenuRemovableDevices:
		return s.Menu.Removable.Len()
	case MenuPicker:
		return s.Menu.Picker.Len()
	default:
		return 1
	}
}

// LeaveMenu closes the current tab's menu and restores file focus.
func (s *Status) LeaveMenu(confirmed bool) {
	s.CurrentTab().LeaveMenu(confirmed)
	s.Menu.Input.Reset()
	s.Menu.Completion.Reset()
	s.Focus = FocusFor(s.Index, false)
}

// SetMessage replaces the footer feedback line.
func (s *Status) SetMessage(format string, args ...interface{}) {
	s.Message = fmt.Sprintf(format, args...)
}

// RequestPreview asks the pipeline for the artifact the layout needs:
// the mirror pane's preview of the selected pane's selection in dual-pane
// preview, or the tab's own selection in preview display mode.
func (s *Status) RequestPreview() {
	if s.Session.Dual && s.Session.Preview {
		if path, ok := s.Tabs[0].SelectedPath(); ok {
			s.Pipeline.Request(path, 1)
		}
		return
	}
	t := s.CurrentTab()
	if t.DisplayMode == DisplayPreview {
		if path, ok := t.SelectedPath(); ok {
			s.Pipeline.Request(path, s.Index)
		}
	}
}

// HandlePreviewDone applies a finished artifact unless it is stale.
// Pane 1 mirroring pane 0 resolves staleness against pane 0's selection;
// a pane sitting in a navigable list accepts any result.
func (s *Status) HandlePreviewDone(e PreviewDone) {
	if e.PaneIndex < 0 || e.PaneIndex > 1 {
		return
	}
	target := s.Tabs[e.PaneIndex]
	resolved := target
	if e.PaneIndex == 1 && s.Session.Dual && s.Session.Preview {
		resolved = s.Tabs[0]
	}
	if resolved.Menu.Family() != FamilyNavigate {
		current, ok := resolved.SelectedPath()
		if !ok || current != e.Path {
			logrus.Debugf("stale preview of %s discarded", e.Path)
			return
		}
	}
	target.SetPreview(e.Artifact)
}

// HandleCopyDone pops the finished job, reports it, clears the flags it
// consumed, refreshes both panes and starts the next queued job with the
// current pane width.
func (s *Status) HandleCopyDone(e CopyDone) {
	s.Queue.JobDone(s.PaneWidth())
	if e.Err != nil {
		s.SetMessage("%s finished with errors: %v", e.Job.Mode.Verb(), e.Err)
	} else {
		s.SetMessage("%s of %d entries done", e.Job.Mode.Verb(), len(e.Job.Sources))
	}
	s.Menu.Flagged.Clear()
	for _, t := range s.Tabs {
		if err := t.Refresh(); err != nil {
			logrus.WithError(err).Warnf("refreshing %s", t.Path())
		}
	}
	s.RequestPreview()
}

// HandleRefresh re-reads both tabs' directories if their mtime changed.
func (s *Status) HandleRefresh() {
	for _, t := range s.Tabs {
		t.RefreshIfModified()
	}
}

// HandleIPC selects the picked path, entering its directory if needed.
// A payload of several lines opens the picker menu over them instead;
// confirming a line jumps to it like a single-line pick would.
func (s *Status) HandleIPC(payload string) {
	lines := pickerLines(payload)
	switch len(lines) {
	case 0:
		return
	case 1:
		payload = lines[0]
	default:
		if s.CurrentTab().Menu == MenuPicker {
			s.LeaveMenu(false)
		}
		s.Menu.Picker.Replace(lines)
		s.EnterMenu(MenuPicker)
		s.SetMessage("pick one of %d entries", len(lines))
		return
	}

	t := s.CurrentTab()
	dir := payload
	if info, err := os.Stat(payload); err != nil || !info.IsDir() {
		dir = baseDir(payload)
	}
	if dir != t.Path() {
		if err := t.Cd(dir); err != nil {
			s.SetMessage("pick %s: %v", payload, err)
			return
		}
	}
	t.SelectPath(payload)
	s.SetMessage("picked %s", payload)
	s.RequestPreview()
}

// FlaggedOrSelected is the source set for a bulk operation: the flagged
// paths, or the single selected entry when nothing is flagged.
func (s *Status) FlaggedOrSelected() []string {
	if !s.Menu.Flagged.IsEmpty() {
		return append([]string(nil), s.Menu.Flagged.Paths...)
	}
	if path, ok := s.CurrentTab().SelectedPath(); ok {
		return []string{path}
	}
	return nil
}

// SubmitJob hands the sources to the queue, destination = the other pane's
// directory in dual mode, the current directory otherwise.
func (s *Status) SubmitJob(sources []string, mode copymove.Mode) {
	if len(sources) == 0 {
		s.SetMessage("nothing to %s", mode.Verb())
		return
	}
	dest := s.CurrentTab().Path()
	if s.Session.Dual {
		dest = s.OtherTab().Path()
	}
	if err := s.Queue.Submit(sources, dest, mode, s.PaneWidth()); err != nil {
		s.SetMessage("%s: %v", mode.Verb(), err)
		return
	}
	if !s.Queue.IsRunning() {
		// Fast path already renamed; nothing pending.
		s.Menu.Flagged.Clear()
		for _, t := range s.Tabs {
			if err := t.Refresh(); err != nil {
				logrus.WithError(err).Warnf("refreshing %s", t.Path())
			}
		}
		return
	}
	s.SetMessage("%s of %d entries started", mode.Verb(), len(sources))
}

// Username is the login name used for mount points.
func (s *Status) Username() string { return s.username }

// Close shuts the preview worker down and persists the session.
func (s *Status) Close() {
	s.Pipeline.Close()
	s.Session.Save()
}

func (s *Status) gotoCandidates() []string {
	var out []string
	seen := map[string]bool{}
	for _, t := range s.Tabs {
		for _, e := range t.History.Visited {
			if !seen[e.Dir] {
				seen[e.Dir] = true
				out = append(out, e.Dir)
			}
		}
	}
	for _, sc := range s.Menu.Shortcuts.Content {
		if !seen[sc] {
			seen[sc] = true
			out = append(out, sc)
		}
	}
	return out
}

// lsblkLister shells out for block devices.
type lsblkLister struct{}

func (lsblkLister) List() ([]menu.Device, error) {
	out, err := mount.ExecuteWithOutput("lsblk",
		"-r", "-n", "-o", "NAME,PATH,MOUNTPOINT,FSTYPE")
	if err != nil {
		return nil, err
	}
	return menu.ParseLsblkOutput(out), nil
}

func execCandidates() []string {
	return []string{"xdg-open", "less", "vi", "nvim", "nano", "bat", "tar", "unzip"}
}

// pickerLines splits an IPC payload into its non-empty trimmed lines.
func pickerLines(payload string) []string {
	var lines []string
	for _, line := range strings.Split(payload, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func baseName(path string) string { return filepath.Base(path) }

func baseDir(path string) string { return filepath.Dir(path) }
