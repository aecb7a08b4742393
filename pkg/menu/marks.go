package menu

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Marks binds single chars to directories, persisted as "c:/path" lines.
// ':' can't be used as a mark char since it's the separator.
type Marks struct {
	savePath string
	marks    map[rune]string
}

// ReadMarks loads the marks file. Invalid lines are dropped and the file
// is rewritten without them.
func ReadMarks(savePath string) *Marks {
	m := &Marks{savePath: savePath, marks: map[rune]string{}}
	file, err := os.Open(savePath)
	if err != nil {
		return m
	}
	defer func() {
		_ = file.Close()
	}()
	mustSave := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		ch, path, ok := parseMarkLine(scanner.Text())
		if !ok {
			mustSave = true
			continue
		}
		m.marks[ch] = path
	}
	if mustSave {
		logrus.Info("invalid mark lines found, rewriting marks file")
		if err := m.save(); err != nil {
			logrus.WithError(err).Warn("couldn't rewrite marks file")
		}
	}
	return m
}

func parseMarkLine(line string) (rune, string, bool) {
	ch, path, found := strings.Cut(line, ":")
	if !found || path == "" {
		return 0, "", false
	}
	runes := []rune(ch)
	if len(runes) != 1 {
		return 0, "", false
	}
	return runes[0], path, true
}

func (m *Marks) Len() int { return len(m.marks) }

func (m *Marks) IsEmpty() bool { return len(m.marks) == 0 }

// Get returns the path bound to ch.
func (m *Marks) Get(ch rune) (string, bool) {
	path, ok := m.marks[ch]
	return path, ok
}

// NewMark binds ch to path and saves every mark.
func (m *Marks) NewMark(ch rune, path string) error {
	if ch == ':' {
		return fmt.Errorf("':' can't be used as a mark")
	}
	m.marks[ch] = path
	return m.save()
}

func (m *Marks) save() error {
	if err := os.MkdirAll(filepath.Dir(m.savePath), 0755); err != nil {
		return err
	}
	var sb strings.Builder
	for _, ch := range m.sortedChars() {
		fmt.Fprintf(&sb, "%c:%s\n", ch, m.marks[ch])
	}
	return os.WriteFile(m.savePath, []byte(sb.String()), 0644)
}

func (m *Marks) sortedChars() []rune {
	chars := make([]rune, 0, len(m.marks))
	for ch := range m.marks {
		chars = append(chars, ch)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// AsStrings renders one "c    /path" line per mark, ordered by char.
func (m *Marks) AsStrings() []string {
	lines := make([]string, 0, len(m.marks))
	for _, ch := range m.sortedChars() {
		lines = append(lines, fmt.Sprintf("%c    %s", ch, m.marks[ch]))
	}
	return lines
}
