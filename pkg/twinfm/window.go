package twinfm

// windowPadding keeps the selection this many rows away from the border.
const windowPadding = 4

// pageStep is how far preview paging jumps.
const pageStep = 30

// ContentWindow is the scroll state of one list of lines.
// Invariants: Top <= selection < Bottom after every ScrollTo,
// and Bottom-Top never exceeds Height.
type ContentWindow struct {
	Top    int
	Bottom int // index of the last displayed element + 1
	Len    int
	Height int
}

// NewContentWindow starts at the top of len lines in height rows.
func NewContentWindow(length, height int) ContentWindow {
	w := ContentWindow{Len: length, Height: height}
	w.Bottom = minInt(length, height)
	return w
}

// SetHeight resizes the window, keeping the top anchored.
func (w *ContentWindow) SetHeight(height int) {
	if height < 0 {
		height = 0
	}
	w.Height = height
	w.Bottom = minInt(w.Len, w.Top+height)
}

// Reset points the window at the first line of new content.
func (w *ContentWindow) Reset(length int) {
	w.Len = length
	w.Top = 0
	w.Bottom = minInt(length, w.Height)
}

// ScrollTo moves the window so index is visible.
func (w *ContentWindow) ScrollTo(index int) {
	if index < 0 || index >= w.Len {
		return
	}
	if w.Len <= w.Height {
		w.Top = 0
		w.Bottom = w.Len
		return
	}
	if index >= w.Top && index < w.Bottom {
		return
	}
	w.Top = maxInt(0, index-windowPadding)
	if w.Top+w.Height > w.Len {
		w.Top = w.Len - w.Height
	}
	w.Bottom = w.Top + w.Height
}

// ScrollUpOne nudges the window when the selection walks off the top edge.
func (w *ContentWindow) ScrollUpOne(index int) {
	if (index < w.Top+windowPadding || index >= w.Bottom) && w.Top > 0 {
		w.Top--
		w.Bottom--
	}
	w.ScrollTo(index)
}

// ScrollDownOne nudges the window when the selection walks off the bottom edge.
func (w *ContentWindow) ScrollDownOne(index int) {
	if w.Len <= w.Height {
		return
	}
	if index < w.Top || index+windowPadding >= w.Bottom {
		if w.Bottom < w.Len {
			w.Top++
			w.Bottom++
		}
	}
	w.ScrollTo(index)
}

// PageUp moves a preview window up one step without a selection.
func (w *ContentWindow) PageUp() {
	skip := minInt(w.Top, pageStep)
	w.Top -= skip
	w.Bottom -= skip
}

// PageDown moves a preview window down one step without a selection.
func (w *ContentWindow) PageDown() {
	if w.Bottom >= w.Len {
		return
	}
	skip := minInt(w.Len-w.Bottom, pageStep)
	w.Top += skip
	w.Bottom += skip
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
