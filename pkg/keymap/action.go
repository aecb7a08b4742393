package keymap

// Action is a named command a key can be bound to.
type Action string

const (
	ActionNothing Action = ""
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"

	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionMoveLeft   Action = "move_left"
	ActionMoveRight  Action = "move_right"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionSelectTop  Action = "select_top"
	ActionSelectEnd  Action = "select_end"
	ActionBack       Action = "back"
	ActionHome       Action = "home"
	ActionEnter      Action = "enter"
	ActionOpenFile   Action = "open_file"
	ActionSwitchPane Action = "switch_pane"

	ActionToggleFlag   Action = "toggle_flag"
	ActionFlagAll      Action = "flag_all"
	ActionReverseFlags Action = "reverse_flags"
	ActionClearFlags   Action = "clear_flags"
	ActionSymlink      Action = "symlink"
	ActionBulkRename   Action = "bulk_rename"

	ActionCopyPaste Action = "copy_paste"
	ActionCutPaste  Action = "cut_paste"
	ActionDelete    Action = "delete"
	ActionTrashMove Action = "trash_move"
	ActionTrashOpen Action = "trash_open"

	ActionNewFile    Action = "new_file"
	ActionNewDir     Action = "new_dir"
	ActionRename     Action = "rename"
	ActionChmod      Action = "chmod"
	ActionExec       Action = "exec"
	ActionGoto       Action = "goto"
	ActionSearch     Action = "search"
	ActionRegexMatch Action = "regex_match"
	ActionSort       Action = "sort"
	ActionFilter     Action = "filter"

	ActionJump      Action = "jump"
	ActionHistory   Action = "history"
	ActionShortcut  Action = "shortcut"
	ActionMarksNew  Action = "marks_new"
	ActionMarksJump Action = "marks_jump"

	ActionPreview Action = "preview"
	ActionTree    Action = "tree"
	ActionFuzzy   Action = "fuzzy"

	ActionToggleDualPane Action = "toggle_dual_pane"
	ActionTogglePreview  Action = "toggle_preview"
	ActionToggleMetadata Action = "toggle_metadata"
	ActionToggleHidden   Action = "toggle_hidden"

	ActionRefresh         Action = "refresh"
	ActionEncryptedDrive  Action = "encrypted_drive"
	ActionRemovableDevice Action = "removable_devices"
)
