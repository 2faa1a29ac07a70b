package library

import "sort"

// SortOrder is the direction of the start-date ordering.
type SortOrder int

const (
	// Unsorted means ToggleSort has not run yet; the next toggle sorts
	// descending.
	Unsorted SortOrder = iota
	Descending
	Ascending
)

func (o SortOrder) String() string {
	switch o {
	case Descending:
		return "desc"
	case Ascending:
		return "asc"
	default:
		return "none"
	}
}

// ParseSortOrder is the inverse of SortOrder.String.
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "desc":
		return Descending
	case "asc":
		return Ascending
	default:
		return Unsorted
	}
}

// SortOrder returns the direction applied by the last toggle.
func (l *Library) SortOrder() SortOrder {
	return l.order
}

// SetSortOrder restores the toggle state, e.g. from a previous run, without
// reordering anything.
func (l *Library) SetSortOrder(o SortOrder) {
	l.order = o
}

// ToggleSort reorders the played games by start date, alternating between
// descending and ascending. Dates compare as canonical YYYY/MM/DD strings;
// games without a start date go last in both directions. Positional indices
// are reassigned afterwards.
func (l *Library) ToggleSort() SortOrder {
	if l.order == Descending {
		l.order = Ascending
	} else {
		l.order = Descending
	}
	l.sortBy(l.order)
	return l.order
}

func (l *Library) sortBy(o SortOrder) {
	sort.SliceStable(l.games, func(i, j int) bool {
		a, b := l.games[i].StartDate, l.games[j].StartDate
		switch {
		case a == "" && b == "":
			return false
		case a == "":
			return false
		case b == "":
			return true
		case o == Descending:
			return a > b
		default:
			return a < b
		}
	})
	l.reindex()
	l.log.Debug().Stringer("order", o).Int("games", len(l.games)).Msg("games sorted")
}
