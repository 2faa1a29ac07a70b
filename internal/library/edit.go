package library

import (
	"github.com/blackwell-systems/gamectl/internal/dates"
	"github.com/blackwell-systems/gamectl/internal/score"
)

// SetStatus changes the status of the game at index i.
func (l *Library) SetStatus(i int, status Status) error {
	g, err := l.game(i)
	if err != nil {
		return err
	}
	g.Status = status
	l.log.Debug().Int("index", i).Str("status", string(status)).Msg("status updated")
	return nil
}

// SetDates replaces both dates of the game at index i. Values are normalized
// to canonical form; an empty value clears the date.
func (l *Library) SetDates(i int, start, finish string) error {
	g, err := l.game(i)
	if err != nil {
		return err
	}
	g.StartDate = dates.ToStorage(start)
	g.FinishDate = dates.ToStorage(finish)
	l.log.Debug().Int("index", i).Str("start", g.StartDate).Str("finish", g.FinishDate).Msg("dates updated")
	return nil
}

// SetScores replaces the sub-scores of the game at index i and recomputes its
// total, which is returned.
func (l *Library) SetScores(i int, s score.Set) (float64, error) {
	g, err := l.game(i)
	if err != nil {
		return 0, err
	}
	g.Scores = s
	g.Total = score.Total(s)
	l.log.Debug().Int("index", i).Float64("total", g.Total).Msg("scores updated")
	return g.Total, nil
}
