package preview

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Request asks for a preview of Path on behalf of pane PaneIndex.
type Request struct {
	Path      string
	PaneIndex int
}

// Result carries a finished artifact back, tagged with the requesting pane.
type Result struct {
	Path      string
	PaneIndex int
	Artifact  *Artifact
}

// Pipeline owns the preview worker. Requests never block the caller: a
// pending not-yet-started request is superseded by a newer one. Results
// are drained non-blockingly by the foreground loop; staleness is the
// receiver's concern, the worker renders whatever it dequeued.
type Pipeline struct {
	requests chan Request
	results  chan Result
	render   func(path string) *Artifact
	wg       sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPipeline starts the single worker goroutine.
func NewPipeline(render func(path string) *Artifact) *Pipeline {
	if render == nil {
		render = DefaultRenderer().Render
	}
	p := &Pipeline{
		requests: make(chan Request, 1),
		results:  make(chan Result, 8),
		render:   render,
	}
	p.wg.Add(1)
	go p.worker()
	return p
}

// Request enqueues work without blocking. If a request is already pending
// it is dropped in favor of this one.
func (p *Pipeline) Request(path string, paneIndex int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	req := Request{Path: path, PaneIndex: paneIndex}
	for {
		select {
		case p.requests <- req:
			return
		default:
		}
		select {
		case stale := <-p.requests:
			logrus.Debugf("superseding pending preview of %s", stale.Path)
		default:
		}
	}
}

// Results is the completion channel, drained non-blockingly once per loop
// iteration by the foreground thread.
func (p *Pipeline) Results() <-chan Result {
	return p.results
}

// Close stops the worker and waits for it. Pending results are discarded.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.requests)
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Pipeline) worker() {
	defer p.wg.Done()
	for req := range p.requests {
		artifact := p.render(req.Path)
		select {
		case p.results <- Result{Path: req.Path, PaneIndex: req.PaneIndex, Artifact: artifact}:
		default:
			// The foreground stopped draining; drop rather than block.
			logrus.Warnf("preview result channel full, dropping result for %s", req.Path)
		}
	}
}
