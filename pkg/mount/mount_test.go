package mount

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	stdin string
	name  string
	args  []string
}

// stubCommands records every captured-run invocation and answers ok.
func stubCommands(t *testing.T) *[]call {
	t.Helper()
	var calls []call
	orig := runCaptured
	runCaptured = func(stdin, name string, args ...string) (string, string, error) {
		calls = append(calls, call{stdin: stdin, name: name, args: args})
		return "", "", nil
	}
	t.Cleanup(func() { runCaptured = orig })
	return &calls
}

func TestSudoWithPasswordFeedsStdinOnly(t *testing.T) {
	calls := stubCommands(t)
	ok, _, _ := SudoWithPassword([]string{"ls", "/root"}, "hunter2")
	assert.True(t, ok)

	require.Equal(t, 1, len(*calls))
	c := (*calls)[0]
	assert.Equal(t, "sudo", c.name)
	assert.Equal(t, []string{"-S", "ls", "/root"}, c.args)
	assert.Equal(t, "hunter2\n", c.stdin)
	for _, arg := range c.args {
		assert.NotContains(t, arg, "hunter2", "password must never reach the command line")
	}
}

func TestIsoDeviceMountSequence(t *testing.T) {
	calls := stubCommands(t)
	d := NewIsoDevice("/isos/disk.iso")

	ok, err := d.Mount("alice", "pw")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, d.IsMounted())
	assert.Equal(t, "/run/media/alice/twinfm_iso", d.MountPoint)

	var seen []string
	for _, c := range *calls {
		seen = append(seen, c.name+" "+strings.Join(c.args, " "))
	}
	assert.Equal(t, []string{
		"sudo -S -v",
		"sudo mkdir -p /run/media/alice/twinfm_iso",
		"sudo mount -o loop /isos/disk.iso /run/media/alice/twinfm_iso",
		"sudo -k",
	}, seen)

	_, err = d.Mount("alice", "pw")
	assert.Error(t, err, "mounting twice is refused")
}

func TestIsoDeviceUmount(t *testing.T) {
	stubCommands(t)
	d := NewIsoDevice("/isos/disk.iso")
	_, err := d.Umount("alice", "pw")
	assert.Error(t, err, "not mounted yet")

	_, err = d.Mount("alice", "pw")
	require.NoError(t, err)
	ok, err := d.Umount("alice", "pw")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, d.IsMounted())
}

func TestCryptDeviceRequiresPassphrase(t *testing.T) {
	stubCommands(t)
	d := &CryptDevice{Path: "/dev/sdb1", UUID: "abcd"}
	_, err := d.Mount("alice", "pw")
	assert.Error(t, err)
}

func TestCryptDeviceMountClearsPassphrase(t *testing.T) {
	calls := stubCommands(t)
	d := &CryptDevice{Path: "/dev/sdb1", UUID: "abcd", Passphrase: "secret"}

	ok, err := d.Mount("alice", "pw")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, d.IsMounted())
	assert.Equal(t, "", d.Passphrase, "passphrase is cleared after use")

	var luksOpen *call
	for i, c := range *calls {
		if len(c.args) > 1 && c.args[1] == "cryptsetup" {
			luksOpen = &(*calls)[i]
		}
		for _, arg := range c.args {
			assert.NotContains(t, arg, "secret")
		}
	}
	require.NotNil(t, luksOpen)
	assert.Equal(t, []string{"-S", "cryptsetup", "luksOpen", "/dev/sdb1", "abcd"}, luksOpen.args)
	assert.Equal(t, "secret\n", luksOpen.stdin)
}

func TestCryptDeviceUmountSequence(t *testing.T) {
	calls := stubCommands(t)
	d := &CryptDevice{Path: "/dev/sdb1", UUID: "abcd", MountPoint: "/run/media/alice/abcd"}

	ok, err := d.Umount("alice", "pw")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, d.IsMounted())

	var seen []string
	for _, c := range *calls {
		seen = append(seen, strings.Join(c.args, " "))
	}
	assert.Contains(t, seen, "umount /run/media/alice/abcd")
	assert.Contains(t, seen, "cryptsetup luksClose abcd")
}

func TestSudoFailurePropagates(t *testing.T) {
	orig := runCaptured
	runCaptured = func(string, string, ...string) (string, string, error) {
		return "", "sorry", errors.New("exit status 1")
	}
	t.Cleanup(func() { runCaptured = orig })

	d := NewIsoDevice("/isos/disk.iso")
	ok, err := d.Mount("alice", "wrong")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, d.IsMounted())
}

func TestParseGioOutput(t *testing.T) {
	out := "Mount(0): phone -> mtp://Pixel_7/\n" +
		"  Type: GProxyMount\n" +
		"  activation_root=mtp://Pixel_7/\n" +
		"Mount(1): disk -> file:///media/usb\n"
	devices := ParseGioOutput(out)
	require.Equal(t, 1, len(devices))
	assert.Equal(t, "Pixel_7", devices[0].Name)
	assert.Contains(t, devices[0].Path, "mtp:host=Pixel_7")
}

func TestExecuteWithOutputError(t *testing.T) {
	orig := runCaptured
	runCaptured = func(string, string, ...string) (string, string, error) {
		return "", "no such device", errors.New("exit status 2")
	}
	t.Cleanup(func() { runCaptured = orig })

	_, err := ExecuteWithOutput("gio", "mount", "x")
	assert.ErrorContains(t, err, "no such device")
}
