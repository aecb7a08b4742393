package copymove

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	var p Progress
	_, _, active := p.Snapshot()
	assert.False(t, active)

	p.Start("copy")
	verb, pct, active := p.Snapshot()
	assert.True(t, active)
	assert.Equal(t, "copy", verb)
	assert.Equal(t, int64(0), pct)

	p.Set(150)
	_, pct, _ = p.Snapshot()
	assert.Equal(t, int64(100), pct)
	p.Set(-1)
	_, pct, _ = p.Snapshot()
	assert.Equal(t, int64(0), pct)

	p.Reset()
	_, _, active = p.Snapshot()
	assert.False(t, active)
}

type queueFixture struct {
	queue    *Queue
	progress *Progress
	done     chan Done
}

func newQueueFixture() *queueFixture {
	f := &queueFixture{
		progress: &Progress{},
		done:     make(chan Done, 8),
	}
	f.queue = NewQueue(f.progress, func(d Done) bool {
		f.done <- d
		return true
	})
	return f
}

func (f *queueFixture) waitDone(t *testing.T) Done {
	t.Helper()
	select {
	case d := <-f.done:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("no completion event")
		return Done{}
	}
}

func TestFastPathMoveNeverEnqueues(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0644))
	require.NoError(t, os.Mkdir(dst, 0755))

	f := newQueueFixture()
	assert.NoError(t, f.queue.Submit([]string{src}, dst, Move, 80))

	assert.False(t, f.queue.IsRunning())
	assert.Equal(t, 0, f.queue.PendingLen())
	_, err := os.Stat(filepath.Join(dst, "a.txt"))
	assert.NoError(t, err)

	select {
	case <-f.done:
		t.Fatal("fast path must not emit a completion event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFastPathMoveFailure(t *testing.T) {
	dir := t.TempDir()
	f := newQueueFixture()
	err := f.queue.Submit([]string{filepath.Join(dir, "missing")}, dir, Move, 80)
	assert.Error(t, err)
	assert.False(t, f.queue.IsRunning(), "a missing source never becomes a job")
	assert.Equal(t, 0, f.queue.PendingLen())
}

func TestCopyJobEmitsOneCompletion(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))
	require.NoError(t, os.Mkdir(dst, 0755))

	f := newQueueFixture()
	assert.NoError(t, f.queue.Submit([]string{src}, dst, Copy, 80))

	d := f.waitDone(t)
	assert.NoError(t, d.Err)
	assert.Equal(t, int64(5), d.Copied)

	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	_, err = os.Stat(src)
	assert.NoError(t, err, "copy keeps the source")
}

func TestQueuedJobsRunInSubmissionOrder(t *testing.T) {
	dir := t.TempDir()
	srcA := filepath.Join(dir, "a.txt")
	srcB := filepath.Join(dir, "b.txt")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(srcA, []byte("aa"), 0644))
	require.NoError(t, os.WriteFile(srcB, []byte("bbb"), 0644))
	require.NoError(t, os.Mkdir(dst, 0755))

	f := newQueueFixture()
	assert.NoError(t, f.queue.Submit([]string{srcA}, dst, Copy, 80))
	assert.NoError(t, f.queue.Submit([]string{srcB}, dst, Copy, 80))
	assert.NoError(t, f.queue.Submit([]string{srcA}, dst, Copy, 80))

	first := f.waitDone(t)
	assert.Equal(t, []string{srcA}, first.Job.Sources)
	assert.Equal(t, 2, f.queue.PendingLen())

	// the dispatcher's reaction to the completion event
	f.queue.JobDone(100)
	second := f.waitDone(t)
	assert.Equal(t, []string{srcB}, second.Job.Sources)
	assert.Equal(t, 100, second.Job.Width, "width is captured at start, not submission")

	f.queue.JobDone(100)
	third := f.waitDone(t)
	assert.Equal(t, []string{srcA}, third.Job.Sources)

	f.queue.JobDone(100)
	assert.False(t, f.queue.IsRunning())
	_, _, active := f.progress.Snapshot()
	assert.False(t, active, "progress resets to idle between jobs")
}

func TestMoveAcrossVolumesJob(t *testing.T) {
	// Same volume in a test env, so force the job path with two sources.
	dir := t.TempDir()
	srcA := filepath.Join(dir, "a.txt")
	srcB := filepath.Join(dir, "b.txt")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(srcA, []byte("a"), 0644))
	require.NoError(t, os.WriteFile(srcB, []byte("b"), 0644))
	require.NoError(t, os.Mkdir(dst, 0755))

	f := newQueueFixture()
	assert.NoError(t, f.queue.Submit([]string{srcA, srcB}, dst, Move, 80))

	d := f.waitDone(t)
	assert.NoError(t, d.Err)
	assert.Equal(t, 2, len(d.Job.Sources))

	_, err := os.Stat(srcA)
	assert.True(t, os.IsNotExist(err), "move removes the sources")
	_, err = os.Stat(filepath.Join(dst, "b.txt"))
	assert.NoError(t, err)
}

func TestJobWithFailingSourceStillCompletes(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(good, []byte("ok"), 0644))
	require.NoError(t, os.Mkdir(dst, 0755))

	f := newQueueFixture()
	missing := filepath.Join(dir, "missing.txt")
	assert.NoError(t, f.queue.Submit([]string{missing, good}, dst, Copy, 80))

	d := f.waitDone(t)
	assert.Error(t, d.Err, "the first failure is reported")
	_, err := os.Stat(filepath.Join(dst, "good.txt"))
	assert.NoError(t, err, "remaining sources are still processed")
}

func TestCopyDirRecursive(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tree")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "deep.txt"), []byte("deep"), 0644))
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.Mkdir(dst, 0755))

	f := newQueueFixture()
	assert.NoError(t, f.queue.Submit([]string{src}, dst, Copy, 80))
	d := f.waitDone(t)
	assert.NoError(t, d.Err)

	data, err := os.ReadFile(filepath.Join(dst, "tree", "sub", "deep.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "deep", string(data))
}
