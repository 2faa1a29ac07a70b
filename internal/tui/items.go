package tui

import (
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/score"
)

const (
	titleWidth = 28
	genreWidth = 12
)

// GameItem is a played game in a picker list.
type GameItem struct {
	Game library.GameRecord
}

// FilterValue implements list.Item
func (g GameItem) FilterValue() string {
	return g.Game.Title + " " + g.Game.Genre + " " + string(g.Game.Status)
}

func (g GameItem) line() string {
	total := "-"
	if g.Game.Total > 0 {
		total = score.Format(g.Game.Total)
	}
	return fmt.Sprintf("%3d  %s %s %s  %s  %4s",
		g.Game.Index,
		fit(g.Game.Title, titleWidth),
		StyleGenre.Render(fit(g.Game.Genre, genreWidth)),
		StatusStyle(g.Game.Status).Render(fit(string(g.Game.Status), 12)),
		orDash(g.Game.StartDate),
		total,
	)
}

// WishItem is a wishlist entry in a picker list.
type WishItem struct {
	Item library.WishlistItem
}

// FilterValue implements list.Item
func (w WishItem) FilterValue() string {
	return w.Item.Title + " " + w.Item.Genre
}

func (w WishItem) line() string {
	return fmt.Sprintf("%3d  %s %s  %s %s",
		w.Item.Index,
		fit(w.Item.Title, titleWidth),
		StyleGenre.Render(fit(w.Item.Genre, genreWidth)),
		w.Item.PriceStatus,
		StyleHelp.Render(w.Item.Discount),
	)
}

// fit truncates s to width terminal cells and pads the remainder, so wide
// Hangul titles line up with ASCII ones.
func fit(s string, width int) string {
	s = xansi.Truncate(s, width, "…")
	if pad := width - xansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-         "
	}
	return s
}
