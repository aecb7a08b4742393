package twinfm

import (
	"regexp"

	"github.com/twinfm/twinfm/pkg/files"
)

// Search is a compiled pattern plus the ordered matches it produced in the
// current listing. An empty pattern means idle.
type Search struct {
	Pattern string
	re      *regexp.Regexp
	Matches []string // absolute paths, listing order
	Index   int
}

// Compile sets the pattern. An invalid regex falls back to a literal match.
func (s *Search) Compile(pattern string) {
	s.Pattern = pattern
	s.Matches = nil
	s.Index = 0
	if pattern == "" {
		s.re = nil
		return
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = regexp.MustCompile(regexp.QuoteMeta(pattern))
	}
	s.re = re
}

func (s *Search) IsIdle() bool { return s.Pattern == "" }

// Scan rebuilds the match list from the listing, keeping listing order.
func (s *Search) Scan(entries []files.FileInfo) {
	s.Matches = s.Matches[:0]
	s.Index = 0
	if s.re == nil {
		return
	}
	for _, e := range entries {
		if s.re.MatchString(e.Name) {
			s.Matches = append(s.Matches, e.Path)
		}
	}
}

// Current returns the selected match.
func (s *Search) Current() (string, bool) {
	if s.Index < 0 || s.Index >= len(s.Matches) {
		return "", false
	}
	return s.Matches[s.Index], true
}

// Next cycles to the following match.
func (s *Search) Next() (string, bool) {
	if len(s.Matches) == 0 {
		return "", false
	}
	s.Index = (s.Index + 1) % len(s.Matches)
	return s.Matches[s.Index], true
}

// Reset returns the search to idle.
func (s *Search) Reset() {
	s.Pattern = ""
	s.re = nil
	s.Matches = nil
	s.Index = 0
}
