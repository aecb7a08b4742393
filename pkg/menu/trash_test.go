package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrash(t *testing.T) {
	root := t.TempDir()
	trash, err := NewTrash(filepath.Join(root, "Trash"))
	assert.NoError(t, err)
	assert.Equal(t, 0, trash.Entries.Len())

	victim := filepath.Join(root, "victim.txt")
	assert.NoError(t, os.WriteFile(victim, []byte("bye"), 0644))

	assert.NoError(t, trash.Move(victim))
	assert.Equal(t, 1, trash.Entries.Len())
	_, err = os.Stat(victim)
	assert.True(t, os.IsNotExist(err))

	entry, ok := trash.Entries.Selected()
	assert.True(t, ok)
	assert.Equal(t, victim, entry.OrigPath)

	t.Run("restore", func(t *testing.T) {
		assert.NoError(t, trash.RestoreSelected())
		_, err := os.Stat(victim)
		assert.NoError(t, err)
		assert.Equal(t, 0, trash.Entries.Len())
	})

	t.Run("name_collision", func(t *testing.T) {
		other := filepath.Join(root, "sub")
		assert.NoError(t, os.Mkdir(other, 0755))
		twin := filepath.Join(other, "victim.txt")
		assert.NoError(t, os.WriteFile(twin, []byte("2"), 0644))

		assert.NoError(t, trash.Move(victim))
		assert.NoError(t, trash.Move(twin))
		assert.Equal(t, 2, trash.Entries.Len())
	})

	t.Run("remove_selected", func(t *testing.T) {
		before := trash.Entries.Len()
		assert.NoError(t, trash.RemoveSelected())
		assert.Equal(t, before-1, trash.Entries.Len())
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, trash.Empty())
		assert.Equal(t, 0, trash.Entries.Len())
	})
}

func TestMarks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marks.cfg")

	m := ReadMarks(path)
	assert.True(t, m.IsEmpty())

	assert.NoError(t, m.NewMark('d', "/dev"))
	assert.NoError(t, m.NewMark('h', "/home"))
	assert.Error(t, m.NewMark(':', "/nope"), "the separator char is refused")

	got, ok := m.Get('d')
	assert.True(t, ok)
	assert.Equal(t, "/dev", got)

	reread := ReadMarks(path)
	assert.Equal(t, 2, reread.Len())
	assert.Equal(t, []string{"d    /dev", "h    /home"}, reread.AsStrings())

	t.Run("invalid_lines_dropped", func(t *testing.T) {
		assert.NoError(t, os.WriteFile(path, []byte("d:/dev\ngarbage\nx:\n"), 0644))
		m := ReadMarks(path)
		assert.Equal(t, 1, m.Len())

		data, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "d:/dev\n", string(data), "file rewritten without bad lines")
	})
}
