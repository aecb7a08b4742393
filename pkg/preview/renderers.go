package preview

import (
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/blacktop/go-termimg"
	"github.com/sirupsen/logrus"

	"github.com/twinfm/twinfm/pkg/chroma2tcell"
	"github.com/twinfm/twinfm/pkg/files"
	"github.com/twinfm/twinfm/pkg/fsutils"
)

// maxTextPreview bounds how much of a file is read for a text preview.
const maxTextPreview = 1024 * 1024

// Renderer turns one path into an artifact, or fails.
// Failures degrade to an unreadable artifact, never propagate.
type Renderer interface {
	CanRender(path string) bool
	Render(path string) (*Artifact, error)
}

// Renderers tries each renderer in order and degrades failures.
type Renderers struct {
	chain []Renderer
}

// DefaultRenderer is the built-in chain: directory tree, image,
// archive listing, then text.
func DefaultRenderer() *Renderers {
	return &Renderers{chain: []Renderer{
		DirRenderer{},
		ImageRenderer{},
		ArchiveRenderer{},
		TextRenderer{},
	}}
}

// Render picks the first matching renderer. Unreadable on failure.
func (r *Renderers) Render(path string) *Artifact {
	for _, renderer := range r.chain {
		if !renderer.CanRender(path) {
			continue
		}
		artifact, err := renderer.Render(path)
		if err != nil {
			logrus.WithError(err).Debugf("preview of %s failed", path)
			return Unreadable(path, err)
		}
		return artifact
	}
	return Unreadable(path, nil)
}

// DirRenderer previews a directory as a one-level tree snapshot.
type DirRenderer struct{}

func (DirRenderer) CanRender(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (DirRenderer) Render(path string) (*Artifact, error) {
	tree, err := files.NewTree(path, files.ListOptions{})
	if err != nil {
		return nil, err
	}
	return &Artifact{Kind: KindTree, Path: path, Title: path, Lines: tree.Lines()}, nil
}

// ImageRenderer renders images with terminal graphics.
type ImageRenderer struct{}

var imageExts = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
	"bmp": true, "webp": true, "tiff": true,
}

func (ImageRenderer) CanRender(path string) bool {
	return imageExts[extOf(path)]
}

func (ImageRenderer) Render(path string) (*Artifact, error) {
	img, err := termimg.Open(path)
	if err != nil {
		return nil, err
	}
	rendered, err := img.Render()
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Kind:  KindText,
		Path:  path,
		Title: path,
		Lines: strings.Split(rendered, "\n"),
	}, nil
}

// ArchiveRenderer lists archive contents through external tools.
type ArchiveRenderer struct{}

var archiveCommands = map[string][]string{
	"zip": {"unzip", "-l"},
	"tar": {"tar", "-tf"},
	"gz":  {"tar", "-tzf"},
	"tgz": {"tar", "-tzf"},
	"xz":  {"tar", "-tJf"},
	"bz2": {"tar", "-tjf"},
	"zst": {"tar", "--zstd", "-tf"},
}

func (ArchiveRenderer) CanRender(path string) bool {
	_, ok := archiveCommands[extOf(path)]
	return ok
}

func (ArchiveRenderer) Render(path string) (*Artifact, error) {
	args := archiveCommands[extOf(path)]
	out, err := exec.Command(args[0], append(args[1:], path)...).Output()
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Kind:  KindCommandOutput,
		Path:  path,
		Title: strings.Join(args, " "),
		Lines: strings.Split(strings.TrimRight(string(out), "\n"), "\n"),
	}, nil
}

// TextRenderer reads the head of the file and syntax-highlights it when a
// lexer matches. Binary content is refused.
type TextRenderer struct{}

func (TextRenderer) CanRender(string) bool { return true }

func (TextRenderer) Render(path string) (*Artifact, error) {
	data, err := fsutils.ReadFileData(path, maxTextPreview)
	if err != nil {
		return nil, err
	}
	if looksBinary(data) {
		return &Artifact{Kind: KindText, Path: path, Title: path, Lines: []string{"binary file"}}, nil
	}
	text := string(data)
	if lexer := lexers.Match(path); lexer != nil {
		if colorized, err := chroma2tcell.Colorize(text, "dracula", lexer); err == nil {
			text = colorized
		}
	}
	return &Artifact{
		Kind:  KindText,
		Path:  path,
		Title: path,
		Lines: strings.Split(text, "\n"),
	}, nil
}

func looksBinary(data []byte) bool {
	probe := data
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	for len(probe) > 0 {
		r, size := utf8.DecodeRune(probe)
		if r == 0 {
			return true
		}
		if r == utf8.RuneError && size == 1 {
			// A rune split by the probe boundary is not evidence of binary.
			if len(probe) < utf8.UTFMax {
				return false
			}
			return true
		}
		probe = probe[size:]
	}
	return false
}

func extOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || i == len(path)-1 {
		return ""
	}
	return strings.ToLower(path[i+1:])
}
