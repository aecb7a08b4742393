package twinfm

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// runEditor blocks until the editor exits. Seam for tests.
var runEditor = func(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// bulkRename writes the source names to a temp file, opens it in $EDITOR
// and applies the edited names line by line. Line count must not change;
// unchanged lines are skipped, failures are logged and skipped.
func bulkRename(sources []string) (int, error) {
	tmp, err := os.CreateTemp("", "twinfm-rename-*.txt")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()
	for _, src := range sources {
		if _, err := fmt.Fprintln(tmp, filepath.Base(src)); err != nil {
			_ = tmp.Close()
			return 0, err
		}
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}

	if err := runEditor(tmpPath); err != nil {
		return 0, fmt.Errorf("editor: %w", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return 0, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != len(sources) {
		return 0, fmt.Errorf("expected %d lines, got %d", len(sources), len(lines))
	}

	var renamed int
	for i, src := range sources {
		newName := strings.TrimSpace(lines[i])
		if newName == "" || newName == filepath.Base(src) {
			continue
		}
		target := filepath.Join(filepath.Dir(src), newName)
		if err := os.Rename(src, target); err != nil {
			logrus.WithError(err).Warnf("renaming %s", src)
			continue
		}
		renamed++
	}
	return renamed, nil
}
