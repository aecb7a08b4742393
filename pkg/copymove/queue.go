package copymove

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/fsutils"
)

// Mode tells a job apart: copying or moving.
type Mode int

const (
	Copy Mode = iota
	Move
)

func (m Mode) Verb() string {
	if m == Move {
		return "move"
	}
	return "copy"
}

func (m Mode) Preterit() string {
	if m == Move {
		return "moved"
	}
	return "copied"
}

// Job is one queued copy or move of several sources into a destination dir.
// Width is the pane width captured when the job starts, for progress display.
type Job struct {
	Sources []string
	Dest    string
	Mode    Mode
	Width   int
}

// Done reports a finished job back to the dispatcher.
type Done struct {
	Job    Job
	Copied int64
	Err    error
}

// Queue serializes copy/move jobs: at most one worker runs at a time,
// later submissions wait in order. A single-source same-volume move is
// renamed synchronously and never enqueued.
type Queue struct {
	mu       sync.Mutex
	pending  []Job
	running  bool
	progress *Progress
	emit     func(Done) bool
}

// NewQueue wires the queue to the progress buffer and the event emitter.
// emit returns false when the event channel is gone; the completion is
// then dropped with a log line (the subsystem is dying anyway).
func NewQueue(progress *Progress, emit func(Done) bool) *Queue {
	return &Queue{progress: progress, emit: emit}
}

// Submit queues a job, or takes the rename fast path. A single-source
// move fails synchronously when its source cannot be stat'ed, so a typo
// never becomes a queued job; a queued job always reports through the
// completion event instead.
func (q *Queue) Submit(sources []string, dest string, mode Mode, width int) error {
	if mode == Move && len(sources) == 1 {
		if _, err := os.Lstat(sources[0]); err != nil {
			return fmt.Errorf("%s: %w", mode.Verb(), err)
		}
		if fsutils.SameVolume(sources[0], dest) {
			target := filepath.Join(dest, filepath.Base(sources[0]))
			if err := os.Rename(sources[0], target); err != nil {
				return fmt.Errorf("rename %s: %w", sources[0], err)
			}
			logrus.Infof("moved %s to %s", sources[0], target)
			return nil
		}
	}

	job := Job{Sources: append([]string(nil), sources...), Dest: dest, Mode: mode, Width: width}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		q.pending = append(q.pending, job)
		return nil
	}
	q.start(job)
	return nil
}

// JobDone is called by the dispatcher when a completion event arrives:
// it clears the progress buffer and starts the next job, if any, with
// the then-current pane width.
func (q *Queue) JobDone(width int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.running = false
	q.progress.Reset()
	if len(q.pending) == 0 {
		return
	}
	next := q.pending[0]
	q.pending = q.pending[1:]
	next.Width = width
	q.start(next)
}

// PendingLen is the number of jobs waiting behind the running one.
func (q *Queue) PendingLen() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// IsRunning reports whether a worker is active.
func (q *Queue) IsRunning() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}

// start must be called with the lock held.
func (q *Queue) start(job Job) {
	q.running = true
	q.progress.Start(job.Mode.Verb())
	go q.run(job)
}

func (q *Queue) run(job Job) {
	copied, err := q.transfer(job)
	q.progress.Set(100)
	msg := fmt.Sprintf("%s %s", job.Mode.Preterit(), fsutils.GetSizeShortText(copied))
	if err != nil {
		logrus.WithError(err).Warn(msg)
	} else {
		logrus.Info(msg)
	}
	if !q.emit(Done{Job: job, Copied: copied, Err: err}) {
		logrus.Warn("copy queue: completion event dropped, channel closed")
	}
}

// transfer copies or moves every source. Individual failures are logged
// and skipped; the job completes regardless.
func (q *Queue) transfer(job Job) (int64, error) {
	total := totalBytes(job.Sources)
	var copied int64
	var firstErr error
	for _, src := range job.Sources {
		n, err := q.transferOne(src, job.Dest, job.Mode, total, copied)
		copied += n
		if err != nil {
			logrus.WithError(err).Warnf("skipping %s", src)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return copied, firstErr
}

func (q *Queue) transferOne(src, dest string, mode Mode, total, before int64) (int64, error) {
	target := filepath.Join(dest, filepath.Base(src))
	if mode == Move && fsutils.SameVolume(src, dest) {
		info, err := os.Stat(src)
		if err != nil {
			return 0, err
		}
		if err := os.Rename(src, target); err != nil {
			return 0, err
		}
		return info.Size(), nil
	}
	n, err := q.copyPath(src, target, total, before)
	if err != nil {
		return n, err
	}
	if mode == Move {
		if err := os.RemoveAll(src); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (q *Queue) copyPath(src, target string, total, before int64) (int64, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return q.copyDir(src, target, total, before)
	}
	return q.copyFile(src, target, info.Mode(), total, before)
}

func (q *Queue) copyDir(src, target string, total, before int64) (int64, error) {
	if err := os.MkdirAll(target, 0755); err != nil {
		return 0, err
	}
	children, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}
	var copied int64
	for _, child := range children {
		n, err := q.copyPath(
			filepath.Join(src, child.Name()),
			filepath.Join(target, child.Name()),
			total, before+copied)
		copied += n
		if err != nil {
			logrus.WithError(err).Warnf("skipping %s", filepath.Join(src, child.Name()))
		}
	}
	return copied, nil
}

func (q *Queue) copyFile(src, target string, mode os.FileMode, total, before int64) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = in.Close()
	}()
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return 0, err
	}
	written, err := io.Copy(&progressWriter{dst: out, q: q, total: total, before: before}, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return written, err
}

// progressWriter reports percentage while bytes flow.
type progressWriter struct {
	dst     io.Writer
	q       *Queue
	total   int64
	before  int64
	written int64
}

func (w *progressWriter) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	w.written += int64(n)
	if w.total > 0 {
		w.q.progress.Set(100 * (w.before + w.written) / w.total)
	}
	return n, err
}

// totalBytes walks the sources; 0 on any failure, which disables the
// percentage (avoids dividing by zero).
func totalBytes(sources []string) int64 {
	var total int64
	for _, src := range sources {
		_ = filepath.Walk(src, func(_ string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if !info.IsDir() {
				total += info.Size()
			}
			return nil
		})
	}
	return total
}
