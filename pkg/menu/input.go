package menu

// Input holds a single-line string typed by the user and the cursor position.
type Input struct {
	chars  []rune
	cursor int
}

func (in *Input) String() string { return string(in.chars) }

func (in *Input) Cursor() int { return in.cursor }

func (in *Input) IsEmpty() bool { return len(in.chars) == 0 }

// Reset empties the string and moves the cursor to the start.
func (in *Input) Reset() {
	in.chars = in.chars[:0]
	in.cursor = 0
}

func (in *Input) CursorStart() { in.cursor = 0 }

func (in *Input) CursorEnd() { in.cursor = len(in.chars) }

func (in *Input) CursorLeft() {
	if in.cursor > 0 {
		in.cursor--
	}
}

func (in *Input) CursorRight() {
	if in.cursor < len(in.chars) {
		in.cursor++
	}
}

// DeleteLeft removes the char left of the cursor (backspace).
func (in *Input) DeleteLeft() {
	if in.cursor > 0 && len(in.chars) > 0 {
		in.chars = append(in.chars[:in.cursor-1], in.chars[in.cursor:]...)
		in.cursor--
	}
}

// DeleteRightAll removes every char right of the cursor.
func (in *Input) DeleteRightAll() {
	in.chars = in.chars[:in.cursor]
}

// Insert places c at the cursor and advances it.
func (in *Input) Insert(c rune) {
	in.chars = append(in.chars, 0)
	copy(in.chars[in.cursor+1:], in.chars[in.cursor:])
	in.chars[in.cursor] = c
	in.cursor++
}

// Replace swaps the whole string, moving the cursor to the end.
func (in *Input) Replace(content string) {
	in.chars = []rune(content)
	in.cursor = len(in.chars)
}
