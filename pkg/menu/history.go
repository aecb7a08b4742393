package menu

// HistoryEntry is one visited directory and the entry that was selected there.
type HistoryEntry struct {
	Dir  string
	File string
}

// History is the stack of visited directories. Pushes are deduplicated;
// DropQueue truncates everything after the current position.
type History struct {
	Visited []HistoryEntry
	Index   int
}

// Push appends the pair unless it is already present, and points the
// index at the newest entry.
func (h *History) Push(dir, file string) {
	for _, e := range h.Visited {
		if e.Dir == dir && e.File == file {
			return
		}
	}
	h.Visited = append(h.Visited, HistoryEntry{Dir: dir, File: file})
	h.Index = len(h.Visited) - 1
}

func (h *History) Len() int { return len(h.Visited) }

func (h *History) IsEmpty() bool { return len(h.Visited) == 0 }

// Next moves toward older entries, cycling.
func (h *History) Next() {
	if h.IsEmpty() {
		h.Index = 0
	} else if h.Index > 0 {
		h.Index--
	} else {
		h.Index = h.Len() - 1
	}
}

// Prev moves toward newer entries, cycling.
func (h *History) Prev() {
	if h.IsEmpty() {
		h.Index = 0
	} else {
		h.Index = (h.Index + 1) % h.Len()
	}
}

func (h *History) Selected() (HistoryEntry, bool) {
	if h.Index < 0 || h.Index >= h.Len() {
		return HistoryEntry{}, false
	}
	return h.Visited[h.Index], true
}

// DropQueue truncates the entries newer than the current position,
// then points at the newest remaining entry.
func (h *History) DropQueue() {
	if h.IsEmpty() {
		return
	}
	h.Visited = h.Visited[:h.Index+1]
	h.Index = h.Len() - 1
}
