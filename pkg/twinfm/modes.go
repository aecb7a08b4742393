package twinfm

// DisplayMode is what a pane's main area shows.
type DisplayMode int

const (
	DisplayDirectory DisplayMode = iota
	DisplayTree
	DisplayPreview
	DisplayFuzzy
)

func (d DisplayMode) String() string {
	switch d {
	case DisplayTree:
		return "tree"
	case DisplayPreview:
		return "preview"
	case DisplayFuzzy:
		return "fuzzy"
	default:
		return "directory"
	}
}

// MenuFamily groups menu modes by interaction style.
type MenuFamily int

const (
	FamilyNothing MenuFamily = iota
	// FamilyInputSimple modes read a line of text, no completion.
	FamilyInputSimple
	// FamilyInputCompleted modes read a line and propose completions.
	FamilyInputCompleted
	// FamilyNavigate modes scroll a list.
	FamilyNavigate
	// FamilyNeedConfirmation modes wait for a single 'y'.
	FamilyNeedConfirmation
)

// MenuMode is the menu a pane currently shows. MenuNothing means the menu
// panel is closed and the pane's file area has focus.
type MenuMode int

const (
	MenuNothing MenuMode = iota

	MenuRename
	MenuChmod
	MenuNewFile
	MenuNewDir
	MenuRegexMatch
	MenuSort
	MenuFilter
	MenuPassword

	MenuExec
	MenuGoto
	MenuSearch

	MenuJump
	MenuHistory
	MenuShortcut
	MenuTrash
	MenuMarksNew
	MenuMarksJump
	MenuEncryptedDrive
	MenuRemovableDevices
	MenuPicker

	MenuConfirmCopy
	MenuConfirmMove
	MenuConfirmDelete
	MenuConfirmEmptyTrash
)

// Family classifies the mode, driving the dispatcher's char routing.
func (m MenuMode) Family() MenuFamily {
	switch m {
	case MenuNothing:
		return FamilyNothing
	case MenuRename, MenuChmod, MenuNewFile, MenuNewDir,
		MenuRegexMatch, MenuSort, MenuFilter, MenuPassword:
		return FamilyInputSimple
	case MenuExec, MenuGoto, MenuSearch:
		return FamilyInputCompleted
	case MenuConfirmCopy, MenuConfirmMove, MenuConfirmDelete, MenuConfirmEmptyTrash:
		return FamilyNeedConfirmation
	default:
		return FamilyNavigate
	}
}

// TakesInput reports whether the mode owns the input buffer.
func (m MenuMode) TakesInput() bool {
	f := m.Family()
	return f == FamilyInputSimple || f == FamilyInputCompleted
}

func (m MenuMode) String() string {
	names := map[MenuMode]string{
		MenuNothing:           "nothing",
		MenuRename:            "rename",
		MenuChmod:             "chmod",
		MenuNewFile:           "new file",
		MenuNewDir:            "new dir",
		MenuRegexMatch:        "regex match",
		MenuSort:              "sort",
		MenuFilter:            "filter",
		MenuPassword:          "password",
		MenuExec:              "exec",
		MenuGoto:              "goto",
		MenuSearch:            "search",
		MenuJump:              "jump",
		MenuHistory:           "history",
		MenuShortcut:          "shortcut",
		MenuTrash:             "trash",
		MenuMarksNew:          "new mark",
		MenuMarksJump:         "jump to mark",
		MenuEncryptedDrive:    "encrypted drives",
		MenuRemovableDevices:  "removable devices",
		MenuPicker:            "pick",
		MenuConfirmCopy:       "confirm copy",
		MenuConfirmMove:       "confirm move",
		MenuConfirmDelete:     "confirm delete",
		MenuConfirmEmptyTrash: "confirm empty trash",
	}
	return names[m]
}
