package copymove

import "sync/atomic"

// Progress is the single piece of state written by the job worker and read
// by the foreground loop every frame without going through the event
// channel. Single writer, single reader.
type Progress struct {
	active  atomic.Bool
	percent atomic.Int64
	verb    atomic.Value // string
}

// Start marks a job as running with 0%.
func (p *Progress) Start(verb string) {
	p.verb.Store(verb)
	p.percent.Store(0)
	p.active.Store(true)
}

// Set updates the percentage, clamped to [0,100].
func (p *Progress) Set(percent int64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.percent.Store(percent)
}

// Reset returns the buffer to idle.
func (p *Progress) Reset() {
	p.active.Store(false)
	p.percent.Store(0)
}

// Snapshot returns the verb, percentage and whether a job is running.
func (p *Progress) Snapshot() (string, int64, bool) {
	verb, _ := p.verb.Load().(string)
	return verb, p.percent.Load(), p.active.Load()
}
