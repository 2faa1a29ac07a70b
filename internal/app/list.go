package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/score"
)

type gameJSON struct {
	Index      int                `json:"index"`
	Title      string             `json:"title"`
	Genre      string             `json:"genre,omitempty"`
	Status     string             `json:"status"`
	StartDate  string             `json:"start_date,omitempty"`
	FinishDate string             `json:"finish_date,omitempty"`
	Scores     map[string]float64 `json:"scores"`
	Total      float64            `json:"total"`
	Extra      map[string]string  `json:"extra,omitempty"`
}

func toGameJSON(g library.GameRecord) gameJSON {
	scores := make(map[string]float64, score.Count)
	for i, name := range score.Names {
		scores[name] = g.Scores[i]
	}
	return gameJSON{
		Index:      g.Index,
		Title:      g.Title,
		Genre:      g.Genre,
		Status:     string(g.Status),
		StartDate:  g.StartDate,
		FinishDate: g.FinishDate,
		Scores:     scores,
		Total:      g.Total,
		Extra:      g.Extra,
	}
}

func newListCmd() *cobra.Command {
	var (
		f       library.Filter
		status  string
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"ls"},
		Short:   "List played games",
		Long: `List played games in their current order. The index in the first column
is what other commands accept in place of a title.

A query matches title or genre (case-insensitive).`,
		Example: `  gamectl list
  gamectl list --status 엔딩완료
  gamectl list zelda --year 2024 --json`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: readsLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				f.Search = args[0]
			}
			if status != "" {
				f.Status = library.ParseStatus(status)
			}
			games := lib.Search(f)

			if jsonOut {
				out := make([]gameJSON, len(games))
				for i, g := range games {
					out[i] = toGameJSON(g)
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(games) == 0 {
				fmt.Println("No games found.")
				return nil
			}
			printGameTable(games)
			fmt.Printf("\n%d game(s)", len(games))
			if o := lib.SortOrder(); o != library.Unsorted {
				fmt.Printf(", sorted by start date (%s)", o)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Genre, "genre", "", "Filter by genre")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (label or name, e.g. WAITING)")
	cmd.Flags().StringVar(&f.Year, "year", "", "Filter by start year")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printGameTable(games []library.GameRecord) {
	fmt.Printf("%4s  %s  %s  %s  %-10s  %-10s  %s\n",
		"#", pad(library.ColTitle, 28), pad(library.ColGenre, 12), pad(library.ColStatus, 12),
		library.ColStartDate, library.ColFinishDate, library.ColTotal)
	for _, g := range games {
		st := pad(string(g.Status), 12)
		switch g.Status {
		case library.StatusEndingDone, library.StatusAchievementDone:
			st = color.GreenString(st)
		case library.StatusMain1, library.StatusMain2:
			st = color.YellowString(st)
		case library.StatusDropped:
			st = color.RedString(st)
		}
		fmt.Printf("%4d  %s  %s  %s  %-10s  %-10s  %s\n",
			g.Index,
			pad(g.Title, 28),
			color.CyanString(pad(g.Genre, 12)),
			st,
			orDash(g.StartDate),
			orDash(g.FinishDate),
			formatTotal(g.Total),
		)
	}
}
