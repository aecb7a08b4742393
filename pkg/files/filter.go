package files

import (
	"regexp"
	"strings"
)

// FilterBy is the kind of listing filter.
type FilterBy int

const (
	FilterAll FilterBy = iota
	FilterDirectory
	FilterExtension
	FilterName
)

// Filter restricts a directory listing.
// The zero value keeps everything.
type Filter struct {
	By  FilterBy
	Ext string
	Re  *regexp.Regexp
}

// FilterFromInput parses a typed filter: "d" keeps directories,
// "e <ext>" keeps one extension, "n <regex>" matches names,
// anything else clears the filter.
func FilterFromInput(input string) Filter {
	words := strings.Fields(input)
	if len(words) == 0 {
		return Filter{}
	}
	switch words[0] {
	case "d":
		return Filter{By: FilterDirectory}
	case "e":
		if len(words) < 2 {
			return Filter{}
		}
		return Filter{By: FilterExtension, Ext: strings.ToLower(strings.TrimPrefix(words[1], "."))}
	case "n":
		if len(words) < 2 {
			return Filter{}
		}
		re, err := regexp.Compile(words[1])
		if err != nil {
			return Filter{}
		}
		return Filter{By: FilterName, Re: re}
	default:
		return Filter{}
	}
}

func (f Filter) IsActive() bool { return f.By != FilterAll }

func (f Filter) Matches(info FileInfo) bool {
	switch f.By {
	case FilterDirectory:
		return info.IsDir()
	case FilterExtension:
		return info.Ext == f.Ext
	case FilterName:
		return f.Re != nil && f.Re.MatchString(info.Name)
	default:
		return true
	}
}
