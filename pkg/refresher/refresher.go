// Package refresher runs the background thread that owns the tick counter
// and the local IPC socket. It talks to the rest of the application through
// emit callbacks so the foreground loop decides what an event looks like.
package refresher

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// interval is the fixed sleep between loop iterations.
	interval = 100 * time.Millisecond
	// refreshThreshold is how many iterations make ten seconds.
	refreshThreshold = 100
)

// Emitters are the three outlets of the refresher thread. Each returns
// false when the receiving side is gone, which the thread treats as an
// implicit shutdown signal.
type Emitters struct {
	Tick    func() bool
	Refresh func() bool
	IPC     func(payload string) bool
}

// Refresher owns the loop goroutine and the unix socket listener.
type Refresher struct {
	socketPath string
	listener   *net.UnixListener
	emit       Emitters
	interval   time.Duration
	threshold  int

	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// SocketPath returns the per-process socket path for pid.
func SocketPath(pid int) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("twinfm-%d.sock", pid))
}

// New binds the process-unique socket and starts the background thread.
func New(emit Emitters) (*Refresher, error) {
	return newAt(SocketPath(os.Getpid()), emit, interval, refreshThreshold)
}

func newAt(socketPath string, emit Emitters, interval time.Duration, threshold int) (*Refresher, error) {
	addr, err := net.ResolveUnixAddr("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", socketPath, err)
	}
	listener, err := net.ListenUnix("unix", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", socketPath, err)
	}
	r := &Refresher{
		socketPath: socketPath,
		listener:   listener,
		emit:       emit,
		interval:   interval,
		threshold:  threshold,
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go r.loop()
	logrus.Debugf("refresher listening on %s", socketPath)
	return r, nil
}

// Quit signals the thread and joins it. The socket file is removed by the
// thread on its way out. Safe to call more than once.
func (r *Refresher) Quit() {
	r.once.Do(func() {
		close(r.quit)
	})
	<-r.done
}

func (r *Refresher) loop() {
	defer close(r.done)
	defer r.cleanup()

	var counter int
	for {
		r.acceptOne()

		select {
		case <-r.quit:
			return
		default:
		}

		counter++
		if counter >= r.threshold {
			counter = 0
			if !r.emit.Refresh() {
				return
			}
		} else if !r.emit.Tick() {
			return
		}

		time.Sleep(r.interval)
	}
}

// acceptOne polls the listener once. A connection's full payload, when
// non-empty, becomes one IPC event; zero-byte writes produce nothing.
func (r *Refresher) acceptOne() {
	_ = r.listener.SetDeadline(time.Now().Add(time.Millisecond))
	conn, err := r.listener.Accept()
	if err != nil {
		if !os.IsTimeout(err) {
			logrus.WithError(err).Debug("refresher accept")
		}
		return
	}
	defer func() {
		_ = conn.Close()
	}()
	payload, err := io.ReadAll(conn)
	if err != nil {
		logrus.WithError(err).Warn("refresher read")
		return
	}
	if len(payload) == 0 {
		return
	}
	r.emit.IPC(string(payload))
}

func (r *Refresher) cleanup() {
	_ = r.listener.Close()
	if err := os.Remove(r.socketPath); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warnf("removing %s", r.socketPath)
	}
}
