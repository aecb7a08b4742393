package twinfm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/twinfm/twinfm/pkg/copymove"
	"github.com/twinfm/twinfm/pkg/preview"
)

// Event is everything the dispatcher consumes, in strict arrival order:
// raw terminal input merged with internally generated completions and
// timer events. The interface is closed.
type Event interface {
	isEvent()
}

// KeyEvent wraps one terminal key press.
type KeyEvent struct {
	Key *tcell.EventKey
}

// MouseEvent wraps one terminal mouse action.
type MouseEvent struct {
	Mouse *tcell.EventMouse
}

// ResizeEvent reports the new terminal size.
type ResizeEvent struct {
	W, H int
}

// TickEvent arrives every refresher iteration.
type TickEvent struct{}

// RefreshEvent arrives every ten seconds; tabs re-read changed directories.
type RefreshEvent struct{}

// IPCEvent carries one socket connection's payload.
type IPCEvent struct {
	Payload string
}

// PreviewDone carries a finished preview artifact back from the pipeline.
type PreviewDone struct {
	Path      string
	PaneIndex int
	Artifact  *preview.Artifact
}

// CopyDone reports a finished copy/move job.
type CopyDone struct {
	Job copymove.Job
	Err error
}

// QuitEvent asks the driver to leave the loop after this iteration.
type QuitEvent struct{}

func (KeyEvent) isEvent()     {}
func (MouseEvent) isEvent()   {}
func (ResizeEvent) isEvent()  {}
func (TickEvent) isEvent()    {}
func (RefreshEvent) isEvent() {}
func (IPCEvent) isEvent()     {}
func (PreviewDone) isEvent()  {}
func (CopyDone) isEvent()     {}
func (QuitEvent) isEvent()    {}
