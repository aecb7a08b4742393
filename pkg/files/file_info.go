package files

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"
)

// Kind classifies a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindFifo
	KindSocket
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "d"
	case KindSymlink:
		return "l"
	case KindBlockDevice:
		return "b"
	case KindCharDevice:
		return "c"
	case KindFifo:
		return "p"
	case KindSocket:
		return "s"
	default:
		return "-"
	}
}

// FileInfo is an immutable snapshot of one entry's metadata,
// captured when the directory was listed.
type FileInfo struct {
	Path    string // absolute path
	Name    string
	Ext     string // lowercase, without the dot
	Kind    Kind
	Size    int64
	Mode    os.FileMode
	Owner   string
	ModTime time.Time
	Hidden  bool
}

func (f FileInfo) IsDir() bool { return f.Kind == KindDirectory }

// NewFileInfo stats path and captures its metadata.
// A symlink is reported as KindSymlink even when its target is a directory.
func NewFileInfo(path string) (FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return fileInfoFromStat(path, info, nil), nil
}

func fileInfoFromStat(path string, info os.FileInfo, users *Users) FileInfo {
	name := filepath.Base(path)
	return FileInfo{
		Path:    path,
		Name:    name,
		Ext:     strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")),
		Kind:    kindOfMode(info.Mode()),
		Size:    info.Size(),
		Mode:    info.Mode(),
		Owner:   ownerOf(info, users),
		ModTime: info.ModTime(),
		Hidden:  strings.HasPrefix(name, "."),
	}
}

func kindOfMode(mode os.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode&os.ModeDevice != 0 && mode&os.ModeCharDevice != 0:
		return KindCharDevice
	case mode&os.ModeDevice != 0:
		return KindBlockDevice
	case mode&os.ModeNamedPipe != 0:
		return KindFifo
	case mode&os.ModeSocket != 0:
		return KindSocket
	default:
		return KindFile
	}
}

// Users memoizes uid to username lookups for one listing context. The
// zero value is ready to use; callers that list repeatedly (a pane's tab)
// own one instance each instead of sharing process-wide state.
type Users struct {
	m sync.Map // uid string -> username
}

var lookupUserID = user.LookupId

// Name resolves a uid, remembering the answer. Unknown uids resolve to
// the uid itself.
func (u *Users) Name(uid string) string {
	if name, ok := u.m.Load(uid); ok {
		return name.(string)
	}
	name := lookupName(uid)
	u.m.Store(uid, name)
	return name
}

func lookupName(uid string) string {
	if u, err := lookupUserID(uid); err == nil {
		return u.Username
	}
	return uid
}

func ownerOf(info os.FileInfo, users *Users) string {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return ""
	}
	uid := strconv.FormatUint(uint64(st.Uid), 10)
	if users == nil {
		return lookupName(uid)
	}
	return users.Name(uid)
}

// IsSymlinkToDir resolves a symlink and reports whether it targets a directory.
func IsSymlinkToDir(f FileInfo) bool {
	if f.Kind != KindSymlink {
		return false
	}
	target, err := os.Stat(f.Path)
	if err != nil {
		return false
	}
	return target.IsDir()
}
