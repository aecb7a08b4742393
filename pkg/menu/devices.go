package menu

import (
	"strings"
)

// Device is one block device as reported by the device lister.
type Device struct {
	Name       string
	Path       string
	MountPoint string
	Encrypted  bool
}

func (d Device) IsMounted() bool { return d.MountPoint != "" }

func (d Device) String() string {
	state := "not mounted"
	if d.IsMounted() {
		state = d.MountPoint
	}
	return d.Name + "  " + state
}

// DeviceLister enumerates candidate devices. The concrete implementation
// shells out (lsblk); tests inject a fake.
type DeviceLister interface {
	List() ([]Device, error)
}

// ParseLsblkOutput turns `lsblk -rno NAME,PATH,MOUNTPOINT,FSTYPE` lines
// into devices. The -r format separates columns with single spaces, so an
// absent mountpoint shows up as an empty field. Unparseable lines are skipped.
func ParseLsblkOutput(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(line, " ")
		if len(fields) < 2 || fields[0] == "" {
			continue
		}
		d := Device{Name: fields[0], Path: fields[1]}
		if len(fields) > 2 {
			d.MountPoint = fields[2]
		}
		if len(fields) > 3 && strings.HasPrefix(fields[3], "crypto") {
			d.Encrypted = true
		}
		devices = append(devices, d)
	}
	return devices
}
