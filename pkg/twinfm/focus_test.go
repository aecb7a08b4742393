package twinfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocus(t *testing.T) {
	t.Run("pane index", func(t *testing.T) {
		assert.Equal(t, 0, FocusLeftFile.PaneIndex())
		assert.Equal(t, 0, FocusLeftMenu.PaneIndex())
		assert.Equal(t, 1, FocusRightFile.PaneIndex())
		assert.Equal(t, 1, FocusRightMenu.PaneIndex())
	})

	t.Run("is file", func(t *testing.T) {
		assert.True(t, FocusLeftFile.IsFile())
		assert.True(t, FocusRightFile.IsFile())
		assert.False(t, FocusLeftMenu.IsFile())
		assert.False(t, FocusRightMenu.IsFile())
	})

	t.Run("switch preserves file vs menu", func(t *testing.T) {
		assert.Equal(t, FocusRightFile, FocusLeftFile.Switch())
		assert.Equal(t, FocusLeftFile, FocusRightFile.Switch())
		assert.Equal(t, FocusRightMenu, FocusLeftMenu.Switch())
		assert.Equal(t, FocusLeftMenu, FocusRightMenu.Switch())
	})

	t.Run("to parent collapses menu", func(t *testing.T) {
		assert.Equal(t, FocusLeftFile, FocusLeftMenu.ToParent())
		assert.Equal(t, FocusRightFile, FocusRightMenu.ToParent())
		assert.Equal(t, FocusLeftFile, FocusLeftFile.ToParent())
	})

	t.Run("focus for", func(t *testing.T) {
		assert.Equal(t, FocusLeftFile, FocusFor(0, false))
		assert.Equal(t, FocusLeftMenu, FocusFor(0, true))
		assert.Equal(t, FocusRightFile, FocusFor(1, false))
		assert.Equal(t, FocusRightMenu, FocusFor(1, true))
	})
}

func TestMenuModeFamilies(t *testing.T) {
	families := map[MenuFamily][]MenuMode{
		FamilyNothing: {MenuNothing},
		FamilyInputSimple: {
			MenuRename, MenuChmod, MenuNewFile, MenuNewDir,
			MenuRegexMatch, MenuSort, MenuFilter, MenuPassword,
		},
		FamilyInputCompleted: {MenuExec, MenuGoto, MenuSearch},
		FamilyNavigate: {
			MenuJump, MenuHistory, MenuShortcut, MenuTrash,
			MenuMarksNew, MenuMarksJump, MenuEncryptedDrive,
			MenuRemovableDevices, MenuPicker,
		},
		FamilyNeedConfirmation: {
			MenuConfirmCopy, MenuConfirmMove, MenuConfirmDelete, MenuConfirmEmptyTrash,
		},
	}
	for family, modes := range families {
		for _, mode := range modes {
			assert.Equal(t, family, mode.Family(), "family of %s", mode)
		}
	}

	t.Run("takes input", func(t *testing.T) {
		assert.True(t, MenuRename.TakesInput())
		assert.True(t, MenuGoto.TakesInput())
		assert.False(t, MenuJump.TakesInput())
		assert.False(t, MenuConfirmCopy.TakesInput())
		assert.False(t, MenuNothing.TakesInput())
	})
}
