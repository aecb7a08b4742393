package files

import "sort"

// SortBy is the key used to order a listing.
type SortBy int

const (
	// SortByKind puts directories first, then files, each group by name.
	SortByKind SortBy = iota
	SortByName
	SortByDate
	SortBySize
	SortByExt
)

// SortKind describes a way of sorting a listing.
type SortKind struct {
	By       SortBy
	Reversed bool
}

// UpdateFromChar applies the single-char sort protocol:
// k/n/m/s/e select the key, the case selects the order,
// r/R reverses the current order.
func (s *SortKind) UpdateFromChar(c rune) {
	switch c {
	case 'k', 'K':
		s.By = SortByKind
	case 'n', 'N':
		s.By = SortByName
	case 'm', 'M':
		s.By = SortByDate
	case 's', 'S':
		s.By = SortBySize
	case 'e', 'E':
		s.By = SortByExt
	case 'r', 'R':
		s.Reversed = !s.Reversed
		return
	default:
		return
	}
	s.Reversed = c >= 'A' && c <= 'Z'
}

// Sort orders entries in place.
func (s SortKind) Sort(entries []FileInfo) {
	less := s.lessFunc(entries)
	if s.Reversed {
		orig := less
		less = func(i, j int) bool { return orig(j, i) }
	}
	sort.SliceStable(entries, less)
}

func (s SortKind) lessFunc(entries []FileInfo) func(i, j int) bool {
	switch s.By {
	case SortByName:
		return func(i, j int) bool { return entries[i].Name < entries[j].Name }
	case SortByDate:
		return func(i, j int) bool { return entries[i].ModTime.Before(entries[j].ModTime) }
	case SortBySize:
		return func(i, j int) bool { return entries[i].Size < entries[j].Size }
	case SortByExt:
		return func(i, j int) bool { return entries[i].Ext < entries[j].Ext }
	default: // SortByKind
		return func(i, j int) bool {
			di, dj := entries[i].IsDir(), entries[j].IsDir()
			if di != dj {
				return di
			}
			return entries[i].Name < entries[j].Name
		}
	}
}
