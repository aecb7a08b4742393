package preview

// Kind tags what a preview artifact contains.
type Kind int

const (
	// KindEmpty is the blank artifact shown before anything was previewed.
	KindEmpty Kind = iota
	// KindText is pre-rendered text lines, possibly with color tags.
	KindText
	// KindTree is a directory tree snapshot.
	KindTree
	// KindCommandOutput is the captured output of an external command.
	KindCommandOutput
	// KindUnreadable is the degraded artifact used when rendering failed.
	KindUnreadable
)

// Artifact is an immutable, pre-rendered preview for one path.
// It is attached to exactly one pane, replacing the previous artifact.
type Artifact struct {
	Kind  Kind
	Path  string
	Title string
	Lines []string
}

// Empty is the artifact shown when nothing is previewed.
var Empty = &Artifact{Kind: KindEmpty}

func (a *Artifact) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Lines)
}

// Unreadable builds the degraded artifact for a failed render.
func Unreadable(path string, err error) *Artifact {
	line := "unreadable"
	if err != nil {
		line = "unreadable: " + err.Error()
	}
	return &Artifact{Kind: KindUnreadable, Path: path, Lines: []string{line}}
}
