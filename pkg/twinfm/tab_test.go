package twinfm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTab(t *testing.T) (*Tab, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	writeFile(t, filepath.Join(dir, "nested"), "inner.txt", "i")
	writeFile(t, dir, "one.txt", "1")
	writeFile(t, dir, "two.txt", "22")
	tab, err := NewTab(dir, 20)
	require.NoError(t, err)
	return tab, dir
}

func TestTabNavigation(t *testing.T) {
	t.Run("cd to parent selects the child we left", func(t *testing.T) {
		tab, dir := newTestTab(t)
		require.NoError(t, tab.Cd(filepath.Join(dir, "nested")))
		assert.Equal(t, filepath.Join(dir, "nested"), tab.Path())

		require.NoError(t, tab.CdToParent())
		assert.Equal(t, dir, tab.Path())
		e, ok := tab.Dir.Selected()
		require.True(t, ok)
		assert.Equal(t, "nested", e.Name)
	})

	t.Run("cd to parent at the root is a no-op", func(t *testing.T) {
		tab, err := NewTab("/", 20)
		require.NoError(t, err)
		require.NoError(t, tab.CdToParent())
		assert.Equal(t, "/", tab.Path())
	})

	t.Run("cd pushes history", func(t *testing.T) {
		tab, dir := newTestTab(t)
		require.NoError(t, tab.Cd(filepath.Join(dir, "nested")))
		e, ok := tab.History.Selected()
		require.True(t, ok)
		assert.Equal(t, dir, e.Dir)
	})

	t.Run("refresh keeps the selection by name", func(t *testing.T) {
		tab, dir := newTestTab(t)
		require.True(t, tab.Dir.SelectName("two.txt"))
		writeFile(t, dir, "aaa.txt", "a")
		require.NoError(t, tab.Refresh())
		e, ok := tab.Dir.Selected()
		require.True(t, ok)
		assert.Equal(t, "two.txt", e.Name)
		assert.Equal(t, 4, tab.Dir.Len())
	})

	t.Run("move clamps at both ends", func(t *testing.T) {
		tab, _ := newTestTab(t)
		tab.MoveUp()
		assert.Equal(t, 0, tab.Dir.Index)
		tab.SelectEnd()
		tab.MoveDown()
		assert.Equal(t, tab.Dir.Len()-1, tab.Dir.Index)
	})
}

func TestTabMenuWindowing(t *testing.T) {
	tab, _ := newTestTab(t)

	tab.EnterMenu(MenuGoto, 1)
	assert.Equal(t, 10, tab.Window.Height, "menu halves the file window")
	assert.Equal(t, 10, tab.MenuWindow.Height)

	tab.SetHeight(30)
	assert.Equal(t, 15, tab.Window.Height)

	tab.LeaveMenu(false)
	assert.Equal(t, MenuNothing, tab.Menu)
	assert.Equal(t, 30, tab.Window.Height)
}

func TestTabTree(t *testing.T) {
	tab, dir := newTestTab(t)
	require.NoError(t, tab.EnterTree())
	assert.Equal(t, DisplayTree, tab.DisplayMode)
	// Root plus its three children.
	assert.Equal(t, 4, tab.Tree.Len())

	// Expanding the nested dir reveals its file.
	tab.Tree.Index = 1
	n, ok := tab.Tree.Selected()
	require.True(t, ok)
	require.Equal(t, filepath.Join(dir, "nested"), n.Info.Path)
	require.NoError(t, tab.Tree.ToggleSelected())
	assert.Equal(t, 5, tab.Tree.Len())

	path, ok := tab.SelectedPath()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "nested"), path)

	tab.LeaveTree()
	assert.Equal(t, DisplayDirectory, tab.DisplayMode)
	assert.Nil(t, tab.Tree)
}

func TestTabRefreshIfModified(t *testing.T) {
	tab, dir := newTestTab(t)
	before := tab.Dir.ReadAt

	// No change: the listing snapshot is kept.
	tab.RefreshIfModified()
	assert.Equal(t, before, tab.Dir.ReadAt)

	writeFile(t, dir, "three.txt", "3")
	tab.RefreshIfModified()
	assert.Equal(t, 4, tab.Dir.Len())
}
