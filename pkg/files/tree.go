package files

import "path/filepath"

// TreeNode is one directory entry in a lazily expanded tree.
// Children are read on first expansion only.
type TreeNode struct {
	Info     FileInfo
	Depth    int
	Expanded bool
	loaded   bool
	Children []*TreeNode
}

// Tree is the tree view of a root directory. Visible nodes are kept
// as a flat slice so scrolling and selection work like a listing.
type Tree struct {
	Root    *TreeNode
	Visible []*TreeNode
	Index   int
	opts    ListOptions
}

// NewTree builds a tree rooted at path with the root expanded one level.
func NewTree(path string, o ListOptions) (*Tree, error) {
	info, err := NewFileInfo(path)
	if err != nil {
		return nil, err
	}
	root := &TreeNode{Info: info}
	t := &Tree{Root: root, opts: o}
	if err := t.expand(root); err != nil {
		return nil, err
	}
	t.Reflatten()
	return t, nil
}

func (t *Tree) expand(n *TreeNode) error {
	if !n.loaded {
		dir, err := ReadDirectory(n.Info.Path, t.opts)
		if err != nil {
			return err
		}
		n.Children = make([]*TreeNode, 0, len(dir.Entries))
		for _, e := range dir.Entries {
			n.Children = append(n.Children, &TreeNode{Info: e, Depth: n.Depth + 1})
		}
		n.loaded = true
	}
	n.Expanded = true
	return nil
}

// ToggleSelected expands or collapses the selected node.
// Non-directories are ignored.
func (t *Tree) ToggleSelected() error {
	n, ok := t.Selected()
	if !ok || !n.Info.IsDir() {
		return nil
	}
	if n.Expanded {
		n.Expanded = false
	} else if err := t.expand(n); err != nil {
		return err
	}
	t.Reflatten()
	return nil
}

// Reflatten rebuilds the visible slice from the expansion state,
// clamping the selection.
func (t *Tree) Reflatten() {
	t.Visible = t.Visible[:0]
	t.appendVisible(t.Root)
	if t.Index >= len(t.Visible) {
		t.Index = len(t.Visible) - 1
	}
	if t.Index < 0 {
		t.Index = 0
	}
}

func (t *Tree) appendVisible(n *TreeNode) {
	t.Visible = append(t.Visible, n)
	if !n.Expanded {
		return
	}
	for _, child := range n.Children {
		t.appendVisible(child)
	}
}

func (t *Tree) Len() int { return len(t.Visible) }

func (t *Tree) Selected() (*TreeNode, bool) {
	if t.Index < 0 || t.Index >= len(t.Visible) {
		return nil, false
	}
	return t.Visible[t.Index], true
}

func (t *Tree) SelectNext() {
	if t.Index+1 < len(t.Visible) {
		t.Index++
	}
}

func (t *Tree) SelectPrev() {
	if t.Index > 0 {
		t.Index--
	}
}

func (t *Tree) SelectFirst() { t.Index = 0 }

func (t *Tree) SelectLast() {
	if len(t.Visible) > 0 {
		t.Index = len(t.Visible) - 1
	}
}

// Lines renders the visible nodes with indentation, for display
// and for tree-snapshot previews.
func (t *Tree) Lines() []string {
	lines := make([]string, 0, len(t.Visible))
	for _, n := range t.Visible {
		prefix := ""
		for i := 0; i < n.Depth; i++ {
			prefix += "  "
		}
		name := n.Info.Name
		if n.Depth == 0 {
			name = filepath.Clean(n.Info.Path)
		}
		if n.Info.IsDir() {
			name += "/"
		}
		lines = append(lines, prefix+name)
	}
	return lines
}
