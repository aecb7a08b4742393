package fsutils

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// SameVolume reports whether both paths live on the same device.
// Used to decide if a move can be a plain rename.
func SameVolume(a, b string) bool {
	devA, okA := deviceOf(a)
	devB, okB := deviceOf(b)
	return okA && okB && devA == devB
}

func deviceOf(path string) (uint64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(st.Dev), true
}

// GetSizeShortText returns a human readable size string.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	// Rounding to nearest
	val := (size + div/2) / div
	// If rounding up pushes it to the next unit
	if val >= unit && exp < 3 { // TB is our last unit
		val /= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB"}
	if exp >= len(units) {
		exp = len(units) - 1
	}
	return strconv.FormatInt(val, 10) + units[exp]
}
