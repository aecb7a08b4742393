package twinfm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinfm/twinfm/pkg/files"
)

func searchEntries() []files.FileInfo {
	return []files.FileInfo{
		{Path: "/d/main.go", Name: "main.go"},
		{Path: "/d/main_test.go", Name: "main_test.go"},
		{Path: "/d/readme.md", Name: "readme.md"},
	}
}

func TestSearch(t *testing.T) {
	t.Run("matches keep listing order", func(t *testing.T) {
		var s Search
		s.Compile(`main.*\.go`)
		s.Scan(searchEntries())
		assert.Equal(t, []string{"/d/main.go", "/d/main_test.go"}, s.Matches)
	})

	t.Run("invalid regex degrades to a literal", func(t *testing.T) {
		var s Search
		s.Compile("main[")
		s.Scan([]files.FileInfo{
			{Path: "/d/main[", Name: "main["},
			{Path: "/d/main.go", Name: "main.go"},
		})
		assert.Equal(t, []string{"/d/main["}, s.Matches)
	})

	t.Run("next cycles through matches", func(t *testing.T) {
		var s Search
		s.Compile("main")
		s.Scan(searchEntries())

		first, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/d/main.go", first)

		second, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, "/d/main_test.go", second)

		wrapped, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, "/d/main.go", wrapped)
	})

	t.Run("empty pattern is idle", func(t *testing.T) {
		var s Search
		s.Compile("")
		assert.True(t, s.IsIdle())
		s.Scan(searchEntries())
		assert.Empty(t, s.Matches)
		_, ok := s.Next()
		assert.False(t, ok)
	})

	t.Run("reset clears everything", func(t *testing.T) {
		var s Search
		s.Compile("main")
		s.Scan(searchEntries())
		s.Reset()
		assert.True(t, s.IsIdle())
		assert.Empty(t, s.Matches)
	})
}
