package twinfm

// Focus names which of the four input targets currently receives keys:
// one of the two file panes or one of the two menu panels.
type Focus int

const (
	FocusLeftFile Focus = iota
	FocusLeftMenu
	FocusRightFile
	FocusRightMenu
)

func (f Focus) String() string {
	switch f {
	case FocusLeftMenu:
		return "left-menu"
	case FocusRightFile:
		return "right-file"
	case FocusRightMenu:
		return "right-menu"
	default:
		return "left-file"
	}
}

// IsFile reports whether a file pane has focus.
func (f Focus) IsFile() bool {
	return f == FocusLeftFile || f == FocusRightFile
}

// PaneIndex is 0 for the left pane, 1 for the right.
func (f Focus) PaneIndex() int {
	if f == FocusRightFile || f == FocusRightMenu {
		return 1
	}
	return 0
}

// Switch toggles left/right, preserving file-vs-menu.
func (f Focus) Switch() Focus {
	switch f {
	case FocusLeftFile:
		return FocusRightFile
	case FocusLeftMenu:
		return FocusRightMenu
	case FocusRightFile:
		return FocusLeftFile
	default:
		return FocusLeftMenu
	}
}

// ToParent collapses a menu focus to its owning file focus.
func (f Focus) ToParent() Focus {
	switch f {
	case FocusLeftMenu:
		return FocusLeftFile
	case FocusRightMenu:
		return FocusRightFile
	default:
		return f
	}
}

// FocusFor returns the focus value for a pane index and file-vs-menu flag.
func FocusFor(paneIndex int, isMenu bool) Focus {
	if paneIndex == 1 {
		if isMenu {
			return FocusRightMenu
		}
		return FocusRightFile
	}
	if isMenu {
		return FocusLeftMenu
	}
	return FocusLeftFile
}
