package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/dates"
	"github.com/blackwell-systems/gamectl/internal/score"
	"github.com/blackwell-systems/gamectl/internal/tui"
)

// timeNow is replaced in tests.
var timeNow = time.Now

func newDatesCmd() *cobra.Command {
	var (
		start       string
		finish      string
		startToday  bool
		finishToday bool
	)

	cmd := &cobra.Command{
		Use:   "dates [game]",
		Short: "Edit the start and finish dates of a played game",
		Long: `Edit the start and finish dates of a played game. Dates are stored as
YYYY/MM/DD; a component may be 00 when unknown (e.g. 2024/03/00). An
empty value clears the date.

Without date flags an interactive form opens.`,
		Example: `  gamectl dates 3 --finish-today
  gamectl dates "Celeste" --start 2024/01/05 --finish ""
  gamectl dates`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := gameArg(cmd, args, "Edit dates")
			if err != nil {
				if isCanceled(err) {
					return nil
				}
				return err
			}
			g, err := lib.Game(i)
			if err != nil {
				return err
			}

			newStart, newFinish := g.StartDate, g.FinishDate
			flagged := false
			if cmd.Flags().Changed("start") {
				newStart, flagged = start, true
			}
			if cmd.Flags().Changed("finish") {
				newFinish, flagged = finish, true
			}
			if startToday {
				newStart, flagged = dates.Today(timeNow()), true
			}
			if finishToday {
				newFinish, flagged = dates.Today(timeNow()), true
			}

			if !flagged {
				if !tui.ShouldUseTUI(cmd) {
					return fmt.Errorf("nothing to change: use --start/--finish")
				}
				res, err := tui.RunDateForm(tui.DateFormDefaults{
					Title:      g.Title,
					StartDate:  g.StartDate,
					FinishDate: g.FinishDate,
					Now:        timeNow,
				})
				if err != nil {
					if isCanceled(err) {
						return nil
					}
					return err
				}
				newStart, newFinish = res.StartDate, res.FinishDate
			}

			if err := checkDates(newStart, newFinish); err != nil {
				return err
			}
			if err := lib.SetDates(i, newStart, newFinish); err != nil {
				return err
			}
			if err := lib.SaveGames(); err != nil {
				return err
			}
			g, _ = lib.Game(i)
			ok("%s: %s ~ %s", g.Title, orDash(g.StartDate), orDash(g.FinishDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date")
	cmd.Flags().StringVar(&finish, "finish", "", "Finish date")
	cmd.Flags().BoolVar(&startToday, "start-today", false, "Set the start date to today")
	cmd.Flags().BoolVar(&finishToday, "finish-today", false, "Set the finish date to today")
	cmd.ValidArgsFunction = completeGames
	return cmd
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <game> <satisfaction> [immersion gameplay graphics sound completeness]",
		Short: "Set the six sub-scores of a played game and recompute its total",
		Long: `Set the sub-scores of a played game, in the order satisfaction, immersion,
gameplay, graphics, sound, completeness. Missing or non-numeric values count
as 0. Values are clamped to 0–5. The total is the mean, rounded to one
decimal.`,
		Example:     `  gamectl score 3 5 5 4.5 4 5 4`,
		Args:        cobra.RangeArgs(2, 1+score.Count),
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := resolveGame(args[0])
			if err != nil {
				return err
			}

			set := score.ParseSet(args[1:]...)
			for k, v := range set {
				if c := score.Clamp(v); c != v {
					warn("%s %s clamped to %s", score.Names[k], score.Format(v), score.Format(c))
					set[k] = c
				}
			}

			total, err := lib.SetScores(i, set)
			if err != nil {
				return err
			}
			if err := lib.SaveGames(); err != nil {
				return err
			}
			g, _ := lib.Game(i)
			ok("%s: total %s", g.Title, score.Format(total))
			return nil
		},
	}
	cmd.ValidArgsFunction = completeGames
	return cmd
}
