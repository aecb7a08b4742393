package twinfm

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/menu"
	"github.com/twinfm/twinfm/pkg/mount"
)

type mountOp int

const (
	mountOpNone mountOp = iota
	mountOpMount
	mountOpUmount
	mountOpIso
)

// startMount runs the operation if the passwords it needs were already
// collected, otherwise opens the password menu and parks the operation.
// A privileged command only ever runs once the password-request mode has
// delivered what it asked for.
func (s *Status) startMount(device menu.Device, op mountOp) {
	s.pendingDevice = device
	s.pendingOp = op
	s.resumePendingMount()
}

// mountIso parks a loop mount of the image until the sudo password is
// collected; on success the current tab enters the mount point.
func (s *Status) mountIso(path string) {
	s.startMount(menu.Device{Name: filepath.Base(path), Path: path}, mountOpIso)
}

// requestPassword opens the password input for the given usage.
func (s *Status) requestPassword(usage menu.PasswordUsage) {
	s.pendingUsage = usage
	if s.CurrentTab().Menu != MenuNothing {
		s.LeaveMenu(true)
	}
	s.EnterMenu(MenuPassword)
}

// resumePendingMount continues a parked operation after each collected
// password, asking for the next one when more are needed.
func (s *Status) resumePendingMount() {
	if s.pendingOp == mountOpNone {
		return
	}
	if s.pendingOp == mountOpMount && !s.Menu.Password.Has(menu.UsageCryptsetup) {
		s.requestPassword(menu.UsageCryptsetup)
		return
	}
	if !s.Menu.Password.Has(menu.UsageSudo) {
		s.requestPassword(menu.UsageSudo)
		return
	}
	s.performPendingMount()
}

// performPendingMount takes the collected passwords (read once, then
// cleared) and runs the privileged commands.
func (s *Status) performPendingMount() {
	device := s.pendingDevice
	op := s.pendingOp
	s.pendingOp = mountOpNone
	s.pendingDevice = menu.Device{}

	sudoPw, _ := s.Menu.Password.Take(menu.UsageSudo)
	crypt := &mount.CryptDevice{
		Path:       device.Path,
		UUID:       device.Name,
		MountPoint: device.MountPoint,
	}
	var ok bool
	var err error
	switch op {
	case mountOpMount:
		crypt.Passphrase, _ = s.Menu.Password.Take(menu.UsageCryptsetup)
		ok, err = crypt.Mount(s.Username(), sudoPw)
	case mountOpUmount:
		ok, err = crypt.Umount(s.Username(), sudoPw)
	case mountOpIso:
		iso := mount.NewIsoDevice(device.Path)
		if ok, err = iso.Mount(s.Username(), sudoPw); ok {
			if cdErr := s.CurrentTab().Cd(iso.MountPoint); cdErr != nil {
				logrus.WithError(cdErr).Warnf("entering %s", iso.MountPoint)
			}
		}
	default:
		return
	}
	s.Menu.Password.Reset()
	switch {
	case err != nil:
		s.SetMessage("%v", err)
	case !ok:
		s.SetMessage("operation failed for %s", device.Name)
	default:
		s.SetMessage("done: %s", device.Name)
	}
	if err := s.Menu.RefreshDevices(lsblkLister{}); err != nil {
		logrus.WithError(err).Warn("listing devices")
	}
}
