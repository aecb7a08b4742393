package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime/pprof"

	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/keymap"
	"github.com/twinfm/twinfm/pkg/menu"
	"github.com/twinfm/twinfm/pkg/profiling"
	"github.com/twinfm/twinfm/pkg/twinfm"
	"github.com/twinfm/twinfm/pkg/twinfm/ui"
)

var (
	configDir  = flag.String("config", "", "config directory (default ~/.config/twinfm)")
	dataDir    = flag.String("data", "", "data directory (default ~/.local/share/twinfm)")
	logFile    = flag.String("log", "", "append logs to `file` (discarded by default)")
	verbose    = flag.Bool("verbose", false, "log at debug level")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var pprofStopCPUProfile = pprof.StopCPUProfile

func main() {
	app, err := newTwinFMApp()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
		return
	}

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}
	if *memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(*memProfile)
		defer writeMemProfile()
	}

	run(app)
}

func newTwinFMApp() (app application, err error) {
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	setupLogging()
	return newApp()
}

// setupLogging sends logs to the -log file, or discards them: the terminal
// belongs to the screen while the application runs.
func setupLogging() {
	logrus.SetOutput(io.Discard)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *logFile == "" {
		return
	}
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		return
	}
	logrus.SetOutput(f)
}

var newApp = func() (application, error) {
	cfg := *configDir
	if cfg == "" {
		cfg = menu.DefaultConfigDir()
	}
	data := *dataDir
	if data == "" {
		data = menu.DefaultDataDir()
	}

	bindings, err := keymap.Load(filepath.Join(cfg, "keymap.yaml"))
	if err != nil {
		return nil, err
	}

	left := flag.Arg(0)
	if left == "" {
		if left, err = os.Getwd(); err != nil {
			return nil, err
		}
	}

	status, err := twinfm.NewStatus(twinfm.Options{
		LeftPath:  left,
		RightPath: flag.Arg(1),
		ConfigDir: cfg,
		DataDir:   data,
		Bindings:  bindings,
	})
	if err != nil {
		return nil, err
	}
	return twinfm.NewDriver(status, ui.New(), nil)
}

type application interface{ Run() error }

var run = func(app application) {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
