package library

import (
	"github.com/blackwell-systems/gamectl/internal/dates"
	"github.com/blackwell-systems/gamectl/internal/records"
	"github.com/blackwell-systems/gamectl/internal/score"
)

var gameKnown = columnSet(GameColumns)
var wishKnown = columnSet(WishlistColumns)

func columnSet(cols []string) map[string]bool {
	m := make(map[string]bool, len(cols))
	for _, c := range cols {
		m[c] = true
	}
	return m
}

// gameFromRow is the single place where a stored row is defaulted into a
// typed record. Dates are normalized here; migrated reports whether a legacy
// date was rewritten.
func gameFromRow(r records.Row) (rec GameRecord, migrated bool) {
	start, finish := r.Get(ColStartDate), r.Get(ColFinishDate)
	rec = GameRecord{
		Title:      r.Get(ColTitle),
		Genre:      r.Get(ColGenre),
		Status:     ParseStatus(r.Get(ColStatus)),
		StartDate:  dates.ToStorage(start),
		FinishDate: dates.ToStorage(finish),
		Total:      score.Parse(r.Get(ColTotal)),
		Extra:      extraFields(r, gameKnown),
	}
	for i, col := range ScoreColumns {
		rec.Scores[i] = score.Parse(r.Get(col))
	}
	migrated = rec.StartDate != start || rec.FinishDate != finish
	return rec, migrated
}

func gameToRow(g GameRecord) records.Row {
	r := records.Row{
		ColTitle:      g.Title,
		ColGenre:      g.Genre,
		ColStatus:     string(g.Status),
		ColStartDate:  g.StartDate,
		ColFinishDate: g.FinishDate,
		ColTotal:      score.Format(g.Total),
	}
	for i, col := range ScoreColumns {
		r[col] = score.Format(g.Scores[i])
	}
	for k, v := range g.Extra {
		r[k] = v
	}
	return r
}

func wishFromRow(r records.Row) WishlistItem {
	return WishlistItem{
		Title:       r.Get(ColTitle),
		Genre:       r.Get(ColGenre),
		PriceStatus: r.Get(ColPriceStatus),
		Discount:    r.Get(ColDiscount),
		Extra:       extraFields(r, wishKnown),
	}
}

func wishToRow(w WishlistItem) records.Row {
	r := records.Row{
		ColTitle:       w.Title,
		ColGenre:       w.Genre,
		ColPriceStatus: w.PriceStatus,
		ColDiscount:    w.Discount,
	}
	for k, v := range w.Extra {
		r[k] = v
	}
	return r
}

func extraFields(r records.Row, known map[string]bool) map[string]string {
	var extra map[string]string
	for k, v := range r {
		if known[k] {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[k] = v
	}
	return extra
}
