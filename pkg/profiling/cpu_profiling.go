package profiling

import (
	"io"
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = func(w io.Writer) error { return pprof.StartCPUProfile(w) }
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts writing a CPU profile to the named file and
// returns the stop function. Failures are logged and yield a no-op stop,
// never an error: profiling must not keep the application from starting.
func DoCPUProfiling(fileName string) func() {
	f, err := osCreate(fileName)
	if err != nil {
		logrus.WithError(err).Errorf("could not create CPU profile %s", fileName)
		return func() {}
	}
	if err := pprofStartCPUProfile(f); err != nil {
		logrus.WithError(err).Error("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}
