package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
)

type fakeApp struct {
	err error
}

func (f fakeApp) Run() error {
	if f.err == nil {
		return nil
	}
	return fmt.Errorf("app failed: %w", f.err)
}

func TestMainRoot(t *testing.T) {
	runCalled := false

	oldRun := run
	oldNewApp := newApp
	defer func() {
		run = oldRun
		newApp = oldNewApp
	}()
	run = func(app application) {
		runCalled = true
	}
	newApp = func() (application, error) {
		return fakeApp{}, nil
	}

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
}

func TestMainRoot_SetupError(t *testing.T) {
	oldRun := run
	oldNewApp := newApp
	oldExit := osExit
	defer func() {
		run = oldRun
		newApp = oldNewApp
		osExit = oldExit
	}()

	runCalled := false
	run = func(app application) { runCalled = true }
	newApp = func() (application, error) {
		return nil, errors.New("no terminal")
	}
	exitCode := -1
	osExit = func(code int) { exitCode = code }

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	main()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)

	if runCalled {
		t.Error("run must not be called when setup fails")
	}
	if exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "no terminal") {
		t.Errorf("expected stderr to mention the setup error, got %q", buf.String())
	}
}

func Test_run(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	defer func() {
		os.Stderr = oldStderr
	}()

	var expectedErr = errors.New("test error")
	run(fakeApp{err: expectedErr})

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	output := buf.String()

	if !strings.Contains(output, expectedErr.Error()) {
		t.Errorf("expected stderr to contain %q, got %q", expectedErr.Error(), output)
	}
}

func Test_newTwinFMApp(t *testing.T) {
	oldNewApp := newApp
	defer func() {
		newApp = oldNewApp
	}()
	newApp = func() (application, error) {
		return fakeApp{}, nil
	}

	t.Run("default", func(t *testing.T) {
		app, err := newTwinFMApp()
		if err != nil {
			t.Fatalf("newTwinFMApp() returned error: %v", err)
		}
		if app == nil {
			t.Error("newTwinFMApp() returned nil")
		}
	})

	t.Run("with_pprof", func(t *testing.T) {
		*pprofAddr = "localhost:0" // Use port 0 for random available port
		defer func() { *pprofAddr = "" }()
		app, err := newTwinFMApp()
		if err != nil {
			t.Fatalf("newTwinFMApp() returned error: %v", err)
		}
		if app == nil {
			t.Error("newTwinFMApp() returned nil")
		}
	})

	t.Run("with_log_file", func(t *testing.T) {
		logPath := t.TempDir() + "/twinfm.log"
		*logFile = logPath
		defer func() { *logFile = "" }()
		if _, err := newTwinFMApp(); err != nil {
			t.Fatalf("newTwinFMApp() returned error: %v", err)
		}
		if _, err := os.Stat(logPath); err != nil {
			t.Errorf("expected log file to be created: %v", err)
		}
	})
}
