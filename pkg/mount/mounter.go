package mount

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Mounter is one mountable collaborator. Mount and Umount report whether
// the operation succeeded; an error means the attempt itself was invalid
// (already mounted, missing passphrase).
type Mounter interface {
	IsMounted() bool
	Mount(username, password string) (bool, error)
	Umount(username, password string) (bool, error)
}

// IsoDevice loop-mounts an image file under /run/media/<username>/twinfm_iso.
// Single use: dropped once mounted.
type IsoDevice struct {
	Path       string
	MountPoint string
	mounted    bool
}

const isoDirName = "twinfm_iso"

func NewIsoDevice(path string) *IsoDevice {
	return &IsoDevice{Path: path}
}

func (d *IsoDevice) IsMounted() bool { return d.mounted }

func (d *IsoDevice) mountpoint(username string) string {
	return filepath.Join("/run/media", username, isoDirName)
}

func (d *IsoDevice) Mount(username, password string) (bool, error) {
	if d.mounted {
		return false, fmt.Errorf("iso device %s is already mounted", d.Path)
	}
	if !AuthenticateSudo(password) {
		return false, nil
	}
	defer DropSudo()
	target := d.mountpoint(username)
	if ok, _, stderr := Sudo("mkdir", "-p", target); !ok {
		logrus.Warnf("mkdir %s: %s", target, strings.TrimSpace(stderr))
		return false, nil
	}
	ok, _, stderr := Sudo("mount", "-o", "loop", d.Path, target)
	if !ok {
		logrus.Warnf("mount %s: %s", d.Path, strings.TrimSpace(stderr))
		return false, nil
	}
	d.mounted = true
	d.MountPoint = target
	return true, nil
}

func (d *IsoDevice) Umount(username, password string) (bool, error) {
	if !d.mounted {
		return false, fmt.Errorf("iso device %s is not mounted", d.Path)
	}
	if !AuthenticateSudo(password) {
		return false, nil
	}
	defer DropSudo()
	ok, _, stderr := Sudo("umount", d.mountpoint(username))
	if !ok {
		logrus.Warnf("umount %s: %s", d.Path, strings.TrimSpace(stderr))
		return false, nil
	}
	d.mounted = false
	d.MountPoint = ""
	return true, nil
}

// CryptDevice is a LUKS container. Passphrase must be set before Mount;
// it is cleared after use either way.
type CryptDevice struct {
	Path       string
	UUID       string
	MountPoint string
	Passphrase string
}

func (d *CryptDevice) IsMounted() bool { return d.MountPoint != "" }

func (d *CryptDevice) mapperPath() string { return "/dev/mapper/" + d.UUID }

func (d *CryptDevice) mountpoint(username string) string {
	return filepath.Join("/run/media", username, d.UUID)
}

func (d *CryptDevice) Mount(username, password string) (bool, error) {
	if d.IsMounted() {
		return false, fmt.Errorf("crypt device %s is already mounted", d.Path)
	}
	if d.Passphrase == "" {
		return false, fmt.Errorf("crypt device %s: no passphrase", d.Path)
	}
	passphrase := d.Passphrase
	d.Passphrase = ""
	if !AuthenticateSudo(password) {
		return false, nil
	}
	defer DropSudo()
	if ok, _, stderr := SudoWithPassword(
		[]string{"cryptsetup", "luksOpen", d.Path, d.UUID}, passphrase); !ok {
		logrus.Warnf("luksOpen %s: %s", d.Path, strings.TrimSpace(stderr))
		return false, nil
	}
	target := d.mountpoint(username)
	if ok, _, stderr := Sudo("mkdir", "-p", target); !ok {
		logrus.Warnf("mkdir %s: %s", target, strings.TrimSpace(stderr))
		return false, nil
	}
	ok, _, stderr := Sudo("mount", d.mapperPath(), target)
	if !ok {
		logrus.Warnf("mount %s: %s", d.mapperPath(), strings.TrimSpace(stderr))
		return false, nil
	}
	d.MountPoint = target
	return true, nil
}

func (d *CryptDevice) Umount(username, password string) (bool, error) {
	if !d.IsMounted() {
		return false, fmt.Errorf("crypt device %s is not mounted", d.Path)
	}
	if !AuthenticateSudo(password) {
		return false, nil
	}
	defer DropSudo()
	if ok, _, stderr := Sudo("umount", d.mountpoint(username)); !ok {
		logrus.Warnf("umount %s: %s", d.Path, strings.TrimSpace(stderr))
		return false, nil
	}
	if ok, _, stderr := Sudo("cryptsetup", "luksClose", d.UUID); !ok {
		logrus.Warnf("luksClose %s: %s", d.UUID, strings.TrimSpace(stderr))
		return false, nil
	}
	d.MountPoint = ""
	return true, nil
}

// Removable is an MTP device exposed by gio. No privileges needed.
type Removable struct {
	Name    string
	Path    string
	Mounted bool
}

func (d *Removable) IsMounted() bool { return d.Mounted }

func (d *Removable) gioTarget() string { return "mtp://" + d.Name }

func (d *Removable) Mount(string, string) (bool, error) {
	if d.Mounted {
		return false, fmt.Errorf("removable %s is already mounted", d.Name)
	}
	if _, err := ExecuteWithOutput("gio", "mount", d.gioTarget()); err != nil {
		logrus.WithError(err).Warnf("gio mount %s", d.Name)
		return false, nil
	}
	d.Mounted = true
	return true, nil
}

func (d *Removable) Umount(string, string) (bool, error) {
	if !d.Mounted {
		return false, fmt.Errorf("removable %s is not mounted", d.Name)
	}
	if _, err := ExecuteWithOutput("gio", "mount", "-u", d.gioTarget()); err != nil {
		logrus.WithError(err).Warnf("gio umount %s", d.Name)
		return false, nil
	}
	d.Mounted = false
	return true, nil
}

// ListRemovable parses `gio mount -li` for MTP activation roots.
func ListRemovable() []*Removable {
	if !InPath("gio") {
		return nil
	}
	out, err := ExecuteWithOutput("gio", "mount", "-li")
	if err != nil {
		return nil
	}
	return ParseGioOutput(out)
}

// ParseGioOutput extracts one Removable per activation_root=mtp:// line.
func ParseGioOutput(out string) []*Removable {
	var devices []*Removable
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "activation_root=mtp://") {
			continue
		}
		name := strings.TrimSpace(line)
		name = strings.TrimPrefix(name, "activation_root=mtp://")
		name = strings.Trim(name, "/")
		if name == "" {
			continue
		}
		path := fmt.Sprintf("/run/user/%d/gvfs/mtp:host=%s", os.Getuid(), name)
		_, err := os.Stat(path)
		devices = append(devices, &Removable{Name: name, Path: path, Mounted: err == nil})
	}
	return devices
}
