package keymap

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Bindings maps a key spec to a named action.
// Specs for plain runes are the rune itself ("q", "?"); anything else uses
// the tcell key name ("Enter", "Esc", "Ctrl+R", "F1").
type Bindings struct {
	m map[string]Action
}

// SpecOf converts a key event to the spec string used in binding files.
func SpecOf(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&(^tcell.ModShift) == 0 {
		return string(ev.Rune())
	}
	return ev.Name()
}

// Get resolves a key event. Unbound keys return ActionNothing and false.
func (b *Bindings) Get(ev *tcell.EventKey) (Action, bool) {
	a, ok := b.m[SpecOf(ev)]
	return a, ok
}

// Bind sets or replaces one binding.
func (b *Bindings) Bind(spec string, action Action) {
	b.m[spec] = action
}

// Default returns the built-in bindings.
func Default() *Bindings {
	return &Bindings{m: map[string]Action{
		"q":         ActionQuit,
		"h":         ActionHelp,
		"Up":        ActionMoveUp,
		"Down":      ActionMoveDown,
		"Left":      ActionMoveLeft,
		"Right":     ActionMoveRight,
		"PgUp":      ActionPageUp,
		"PgDn":      ActionPageDown,
		"Home":      ActionSelectTop,
		"End":       ActionSelectEnd,
		"Backspace": ActionBack,
		"~":         ActionHome,
		"Enter":     ActionEnter,
		"o":         ActionOpenFile,
		"Tab":       ActionSwitchPane,

		" ": ActionToggleFlag,
		"*": ActionFlagAll,
		"v": ActionReverseFlags,
		"u": ActionClearFlags,
		"S": ActionSymlink,
		"B": ActionBulkRename,

		"c": ActionCopyPaste,
		"p": ActionCutPaste,
		"x": ActionDelete,
		"X": ActionTrashMove,
		"O": ActionTrashOpen,

		"n":      ActionNewFile,
		"d":      ActionNewDir,
		"r":      ActionRename,
		"+":      ActionChmod,
		"e":      ActionExec,
		"g":      ActionGoto,
		"/":      ActionSearch,
		"w":      ActionRegexMatch,
		"s":      ActionSort,
		"f":      ActionFilter,
		"j":      ActionJump,
		"H":      ActionHistory,
		"G":      ActionShortcut,
		"m":      ActionMarksNew,
		"'":      ActionMarksJump,
		"P":      ActionPreview,
		"t":      ActionTree,
		"Ctrl+F": ActionFuzzy,

		"F2": ActionToggleDualPane,
		"F3": ActionTogglePreview,
		"F4": ActionToggleMetadata,
		"a":  ActionToggleHidden,

		"F5": ActionRefresh,
		"E":  ActionEncryptedDrive,
		"R":  ActionRemovableDevice,
	}}
}

// Load reads a YAML binding file and merges it over the defaults.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Bindings, error) {
	b := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return b, nil
		}
		return nil, err
	}
	var user map[string]string
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	for spec, name := range user {
		b.m[spec] = Action(name)
	}
	return b, nil
}
