// Package mount shells out to mount and unmount block devices, ISO images
// and removable MTP devices. Privileged commands receive the sudo password
// on stdin; the password never reaches the logs or the command line.
package mount

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// seams for tests
var (
	startDetached = func(name string, args ...string) error {
		cmd := exec.Command(name, args...)
		if err := cmd.Start(); err != nil {
			return err
		}
		return cmd.Process.Release()
	}
	runCaptured = func(stdin string, name string, args ...string) (string, string, error) {
		cmd := exec.Command(name, args...)
		if stdin != "" {
			cmd.Stdin = strings.NewReader(stdin)
		}
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err := cmd.Run()
		return stdout.String(), stderr.String(), err
	}
	lookPath = exec.LookPath
)

// InPath reports whether the program is installed.
func InPath(program string) bool {
	_, err := lookPath(program)
	return err == nil
}

// ExecuteInChild starts a detached child process and does not wait for it.
// Used for openers and external viewers.
func ExecuteInChild(name string, args ...string) error {
	logrus.Infof("exec %s %s", name, strings.Join(args, " "))
	if err := startDetached(name, args...); err != nil {
		return fmt.Errorf("exec %s: %w", name, err)
	}
	return nil
}

// ExecuteWithOutput runs the command to completion and returns its stdout.
func ExecuteWithOutput(name string, args ...string) (string, error) {
	logrus.Infof("exec %s %s", name, strings.Join(args, " "))
	stdout, stderr, err := runCaptured("", name, args...)
	if err != nil {
		return stdout, fmt.Errorf("exec %s: %w: %s", name, err, strings.TrimSpace(stderr))
	}
	return stdout, nil
}

// SudoWithPassword runs `sudo -S args...` feeding the password on stdin.
// Only the arguments are logged.
func SudoWithPassword(args []string, password string) (bool, string, string) {
	logrus.Infof("sudo -S %s", strings.Join(args, " "))
	stdout, stderr, err := runCaptured(password+"\n", "sudo", append([]string{"-S"}, args...)...)
	return err == nil, stdout, stderr
}

// Sudo runs sudo relying on cached credentials from an earlier
// SudoWithPassword call.
func Sudo(args ...string) (bool, string, string) {
	logrus.Infof("sudo %s", strings.Join(args, " "))
	stdout, stderr, err := runCaptured("", "sudo", args...)
	return err == nil, stdout, stderr
}

// DropSudo invalidates the cached sudo credentials (`sudo -k`).
func DropSudo() {
	_, _, _ = runCaptured("", "sudo", "-k")
}

// AuthenticateSudo primes the sudo credential cache with a harmless command.
func AuthenticateSudo(password string) bool {
	ok, _, _ := SudoWithPassword([]string{"-v"}, password)
	return ok
}
