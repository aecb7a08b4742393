package menu

// List is a navigable list used by the Navigate menu kinds
// (trash, devices, shortcuts, picker lines).
type List[T any] struct {
	Content []T
	Index   int
}

func (l *List[T]) Len() int { return len(l.Content) }

func (l *List[T]) IsEmpty() bool { return len(l.Content) == 0 }

func (l *List[T]) Selected() (T, bool) {
	var zero T
	if l.Index < 0 || l.Index >= len(l.Content) {
		return zero, false
	}
	return l.Content[l.Index], true
}

func (l *List[T]) SelectNext() {
	if l.Index+1 < len(l.Content) {
		l.Index++
	}
}

func (l *List[T]) SelectPrev() {
	if l.Index > 0 {
		l.Index--
	}
}

// Replace swaps the content and resets the selection.
func (l *List[T]) Replace(content []T) {
	l.Content = content
	l.Index = 0
}

// RemoveSelected drops the selected element.
func (l *List[T]) RemoveSelected() {
	if l.Index < 0 || l.Index >= len(l.Content) {
		return
	}
	l.Content = append(l.Content[:l.Index], l.Content[l.Index+1:]...)
	if l.Index >= len(l.Content) && l.Index > 0 {
		l.Index--
	}
}
