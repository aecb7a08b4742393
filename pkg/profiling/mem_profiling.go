package profiling

import (
	"io"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"
)

var memProfilingInterval = 30 * time.Second
var pprofWriteHeapProfile = func(w io.Writer) error { return pprof.WriteHeapProfile(w) }

// DoMemProfiling periodically rewrites a heap profile to the named file
// and returns the snapshot function for a final write before exit.
// The background goroutine runs for the life of the process.
func DoMemProfiling(fileName string) func() {
	writeMemProfile := func() {
		f, err := osCreate(fileName)
		if err != nil {
			logrus.WithError(err).Errorf("could not create memory profile %s", fileName)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err := pprofWriteHeapProfile(f); err != nil {
			logrus.WithError(err).Error("could not write memory profile")
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()
	return writeMemProfile
}
