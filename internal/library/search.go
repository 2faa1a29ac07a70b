package library

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/gamectl/internal/score"
)

// Filter selects played games. Empty fields match everything.
type Filter struct {
	Search string // matches title or genre, case-insensitive
	Genre  string
	Status Status
	Year   string // start year, e.g. "2024"
}

// Apply returns the subset of games matching all non-empty filter fields,
// keeping their order and positional indices.
func (f Filter) Apply(games []GameRecord) []GameRecord {
	var out []GameRecord
	for _, g := range games {
		if f.Genre != "" && !strings.EqualFold(g.Genre, f.Genre) {
			continue
		}
		if f.Status != "" && g.Status != f.Status {
			continue
		}
		if f.Year != "" && !strings.HasPrefix(g.StartDate, f.Year+"/") {
			continue
		}
		if f.Search != "" && !matchesSearch(g, f.Search) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Search filters the played-games collection.
func (l *Library) Search(f Filter) []GameRecord {
	return f.Apply(l.Games())
}

// ByTitle returns the first game titled title (case-insensitive), or nil.
func ByTitle(games []GameRecord, title string) *GameRecord {
	title = strings.TrimSpace(title)
	for i := range games {
		if strings.EqualFold(games[i].Title, title) {
			return &games[i]
		}
	}
	return nil
}

func matchesSearch(g GameRecord, q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(g.Title), q) ||
		strings.Contains(strings.ToLower(g.Genre), q)
}

// StatusCount is the number of games in one status.
type StatusCount struct {
	Status Status
	Count  int
}

// Summary aggregates the played-games collection for reporting.
type Summary struct {
	Games     int
	Wishlist  int
	ByStatus  []StatusCount
	Scored    int     // games with a non-zero total
	MeanTotal float64 // mean of non-zero totals, one decimal
	Best      *GameRecord
}

// Summary computes counts per status and the mean of stored totals. Totals
// are used as stored; they are not recomputed from sub-scores.
func (l *Library) Summary() Summary {
	s := Summary{Games: len(l.games), Wishlist: len(l.wishlist)}

	counts := make(map[Status]int)
	var sum float64
	for i := range l.games {
		g := &l.games[i]
		counts[g.Status]++
		if g.Total > 0 {
			s.Scored++
			sum += g.Total
			if s.Best == nil || g.Total > s.Best.Total {
				best := *g
				best.Extra = cloneExtra(g.Extra)
				s.Best = &best
			}
		}
	}
	if s.Scored > 0 {
		s.MeanTotal = score.Round(sum / float64(s.Scored))
	}

	for _, st := range Statuses {
		if n := counts[st]; n > 0 {
			s.ByStatus = append(s.ByStatus, StatusCount{Status: st, Count: n})
			delete(counts, st)
		}
	}
	var other []StatusCount
	for st, n := range counts {
		other = append(other, StatusCount{Status: st, Count: n})
	}
	sort.Slice(other, func(i, j int) bool { return other[i].Status < other[j].Status })
	s.ByStatus = append(s.ByStatus, other...)
	return s
}
