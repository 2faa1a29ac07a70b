package app

import (
	"fmt"
	"strconv"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/config"
	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/score"
	"github.com/blackwell-systems/gamectl/internal/tui"
)

// resolveGame turns a command argument into a played-game index. The argument
// is either a positional index as shown by `gamectl list` or a title
// (case-insensitive). With duplicate titles the first match wins.
func resolveGame(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if i, err := strconv.Atoi(arg); err == nil {
		if _, err := lib.Game(i); err != nil {
			return -1, err
		}
		return i, nil
	}
	games := lib.Games()
	g := library.ByTitle(games, arg)
	if g == nil {
		return -1, fmt.Errorf("game %q not found", arg)
	}
	n := 0
	for _, other := range games {
		if strings.EqualFold(other.Title, g.Title) {
			n++
		}
	}
	if n > 1 {
		warn("%d games are titled %q; using #%d (pass an index to choose)", n, g.Title, g.Index)
	}
	return g.Index, nil
}

// gameArg resolves args[0], or opens the game picker when no argument was
// given and the terminal is interactive.
func gameArg(cmd *cobra.Command, args []string, title string) (int, error) {
	if len(args) > 0 {
		return resolveGame(args[0])
	}
	if !tui.ShouldUseTUI(cmd) {
		return -1, fmt.Errorf("game required (index or title)")
	}
	return tui.RunGamePicker(lib.Games(), title)
}

// resolveWish is resolveGame for the wishlist.
func resolveWish(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if i, err := strconv.Atoi(arg); err == nil {
		if _, err := lib.WishlistItem(i); err != nil {
			return -1, err
		}
		return i, nil
	}
	for _, w := range lib.Wishlist() {
		if strings.EqualFold(w.Title, arg) {
			return w.Index, nil
		}
	}
	return -1, fmt.Errorf("wishlist entry %q not found", arg)
}

// saveState remembers the sort direction for the next run.
func saveState() error {
	return config.SaveState(cfg.StatePath(), config.State{SortOrder: lib.SortOrder().String()})
}

// pad right-pads s to width terminal cells, truncating longer values.
func pad(s string, width int) string {
	s = xansi.Truncate(s, width, "…")
	if n := width - xansi.StringWidth(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}

func formatTotal(v float64) string {
	if v == 0 {
		return "-"
	}
	return score.Format(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
