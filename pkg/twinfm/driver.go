package twinfm

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/refresher"
)

// frameTimeout bounds how long the loop blocks waiting for input, so the
// copy progress bar keeps moving between events.
const frameTimeout = 50 * time.Millisecond

// Renderer draws the whole Status onto the screen each frame.
type Renderer interface {
	Draw(screen tcell.Screen, s *Status)
}

// Driver owns the screen, the poll goroutine, the refresher thread and
// the read, dispatch, render loop.
type Driver struct {
	screen    tcell.Screen
	status    *Status
	renderer  Renderer
	refresher *refresher.Refresher
	raw       chan Event
}

// NewDriver initializes the terminal and starts the refresher.
// Pass a tcell.SimulationScreen in tests.
func NewDriver(status *Status, renderer Renderer, screen tcell.Screen) (*Driver, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	screen.EnableMouse()

	d := &Driver{
		screen:   screen,
		status:   status,
		renderer: renderer,
		raw:      make(chan Event, 16),
	}
	r, err := refresher.New(refresher.Emitters{
		Tick:    func() bool { return status.Emit(TickEvent{}) },
		Refresh: func() bool { return status.Emit(RefreshEvent{}) },
		IPC:     func(payload string) bool { return status.Emit(IPCEvent{Payload: payload}) },
	})
	if err != nil {
		screen.Fini()
		return nil, err
	}
	d.refresher = r

	w, h := screen.Size()
	status.Resize(w, h)
	return d, nil
}

// Run is the foreground loop. It blocks only in the bounded select below;
// background results arrive as events or are drained non-blockingly.
func (d *Driver) Run() error {
	go d.poll()
	defer d.shutdown()

	timer := time.NewTimer(frameTimeout)
	defer timer.Stop()

	for !d.status.ShouldQuit() {
		d.drainBackground()

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(frameTimeout)

		select {
		case ev, ok := <-d.raw:
			if !ok {
				return nil
			}
			d.dispatch(ev)
		case ev := <-d.status.Events():
			d.dispatch(ev)
		case res := <-d.status.Pipeline.Results():
			d.dispatch(PreviewDone{Path: res.Path, PaneIndex: res.PaneIndex, Artifact: res.Artifact})
		case <-timer.C:
			// Nothing arrived; fall through to render the progress buffer.
		}

		d.render()
	}
	return nil
}

// drainBackground empties the internal channels without blocking, keeping
// arrival order within each channel.
func (d *Driver) drainBackground() {
	for {
		select {
		case ev := <-d.status.Events():
			d.dispatch(ev)
		case res := <-d.status.Pipeline.Results():
			d.dispatch(PreviewDone{Path: res.Path, PaneIndex: res.PaneIndex, Artifact: res.Artifact})
		default:
			return
		}
	}
}

func (d *Driver) dispatch(ev Event) {
	if err := d.status.Dispatch(ev); err != nil {
		// Fatal for this iteration only; the loop continues.
		logrus.WithError(err).Error("dispatch")
	}
}

func (d *Driver) render() {
	if d.renderer == nil {
		return
	}
	d.screen.Clear()
	d.renderer.Draw(d.screen, d.status)
	d.screen.Show()
}

// poll forwards raw terminal events until the screen is finalized.
func (d *Driver) poll() {
	defer close(d.raw)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			d.raw <- KeyEvent{Key: tev}
		case *tcell.EventMouse:
			d.raw <- MouseEvent{Mouse: tev}
		case *tcell.EventResize:
			w, h := tev.Size()
			d.raw <- ResizeEvent{W: w, H: h}
		}
	}
}

// shutdown stops the background threads and restores the terminal.
func (d *Driver) shutdown() {
	d.refresher.Quit()
	d.status.Close()
	d.screen.Fini()
}
