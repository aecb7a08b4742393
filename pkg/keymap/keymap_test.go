package keymap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestSpecOf(t *testing.T) {
	assert.Equal(t, "q", SpecOf(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, "Enter", SpecOf(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, "Esc", SpecOf(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestDefaultBindings(t *testing.T) {
	b := Default()

	a, ok := b.Get(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	assert.True(t, ok)
	assert.Equal(t, ActionQuit, a)

	_, ok = b.Get(tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModNone))
	assert.False(t, ok, "unbound keys are no-ops")
}

func TestLoad(t *testing.T) {
	t.Run("missing_file_uses_defaults", func(t *testing.T) {
		b, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		assert.NoError(t, err)
		a, ok := b.Get(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
		assert.True(t, ok)
		assert.Equal(t, ActionQuit, a)
	})

	t.Run("user_file_overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keys.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("\"q\": help\n\"Z\": quit\n"), 0644))
		b, err := Load(path)
		assert.NoError(t, err)

		a, _ := b.Get(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
		assert.Equal(t, ActionHelp, a)
		a, _ = b.Get(tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModNone))
		assert.Equal(t, ActionQuit, a)
	})

	t.Run("malformed_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keys.yaml")
		assert.NoError(t, os.WriteFile(path, []byte(":\n :"), 0644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}
