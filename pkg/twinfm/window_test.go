package twinfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentWindow(t *testing.T) {
	t.Run("short content fills the window", func(t *testing.T) {
		w := NewContentWindow(5, 20)
		assert.Equal(t, 0, w.Top)
		assert.Equal(t, 5, w.Bottom)
	})

	t.Run("long content is cut at the height", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		assert.Equal(t, 0, w.Top)
		assert.Equal(t, 20, w.Bottom)
	})

	t.Run("scroll keeps padding above the target", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.ScrollTo(50)
		assert.Equal(t, 46, w.Top)
		assert.Equal(t, 66, w.Bottom)
	})

	t.Run("scroll to a visible index is a no-op", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.ScrollTo(50)
		top := w.Top
		w.ScrollTo(top + 3)
		assert.Equal(t, top, w.Top)
	})

	t.Run("scroll clamps at the end", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.ScrollTo(99)
		assert.Equal(t, 80, w.Top)
		assert.Equal(t, 100, w.Bottom)
	})

	t.Run("out of range targets are ignored", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.ScrollTo(-1)
		w.ScrollTo(100)
		assert.Equal(t, 0, w.Top)
	})

	t.Run("set height keeps the top anchored", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.ScrollTo(50)
		top := w.Top
		w.SetHeight(10)
		assert.Equal(t, top, w.Top)
		assert.Equal(t, top+10, w.Bottom)
	})

	t.Run("reset points at new content", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.ScrollTo(50)
		w.Reset(7)
		assert.Equal(t, 0, w.Top)
		assert.Equal(t, 7, w.Bottom)
	})

	t.Run("scroll down nudges near the bottom edge", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		// Selection walked to the padding zone at the bottom.
		w.ScrollDownOne(17)
		assert.Equal(t, 1, w.Top)
		assert.Equal(t, 21, w.Bottom)
	})

	t.Run("scroll up nudges near the top edge", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.ScrollTo(50)
		w.ScrollUpOne(w.Top + 2)
		assert.Equal(t, 45, w.Top)
	})

	t.Run("paging", func(t *testing.T) {
		w := NewContentWindow(100, 20)
		w.PageDown()
		assert.Equal(t, 30, w.Top)
		assert.Equal(t, 50, w.Bottom)
		w.PageDown()
		w.PageDown()
		// Clamped so the bottom never passes the content.
		assert.Equal(t, 100, w.Bottom)
		w.PageUp()
		assert.Equal(t, 50, w.Top)
	})
}
