package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/dates"
	"github.com/blackwell-systems/gamectl/internal/library"
)

func newAddCmd() *cobra.Command {
	var (
		genre  string
		status string
		start  string
		finish string
		today  bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a played game",
		Long: `Add a game to the played collection. The status defaults to 대기 (WAITING).
Games with the same title are kept as separate rows.

Statuses: ` + statusHelp(),
		Example: `  gamectl add "Hollow Knight" --genre 메트로배니아 --status MAIN1 --today
  gamectl add "Celeste" --start 2024/01/05 --finish 20240220`,
		Args:        cobra.ExactArgs(1),
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if today {
				start = dates.Today(timeNow())
			}
			if err := checkDates(start, finish); err != nil {
				return err
			}

			rec := library.GameRecord{
				Title:      args[0],
				Genre:      genre,
				StartDate:  start,
				FinishDate: finish,
			}
			if status != "" {
				rec.Status = library.ParseStatus(status)
				if !rec.Status.Known() {
					warn("%q is not a predefined status; storing it as-is", status)
				}
			}

			added, err := lib.AddGame(rec)
			if err != nil {
				return err
			}
			if err := lib.SaveGames(); err != nil {
				return err
			}
			ok("Added #%d %s (%s)", added.Index, added.Title, added.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Genre")
	cmd.Flags().StringVar(&status, "status", "", "Status label or name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY/MM/DD or YYYYMMDD)")
	cmd.Flags().StringVar(&finish, "finish", "", "Finish date (YYYY/MM/DD or YYYYMMDD)")
	cmd.Flags().BoolVar(&today, "today", false, "Use today as the start date")
	return cmd
}

// checkDates validates user-entered dates after normalization.
func checkDates(values ...string) error {
	for _, v := range values {
		if err := dates.Check(dates.ToStorage(v)); err != nil {
			return err
		}
	}
	return nil
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <game> <status>",
		Short: "Change the status of a played game",
		Long: `Change the status of a played game. The status may be a label or its
name; any other text is stored verbatim.

Statuses: ` + statusHelp(),
		Example: `  gamectl status 3 엔딩완료
  gamectl status "Hollow Knight" ending_done`,
		Args:        cobra.ExactArgs(2),
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := resolveGame(args[0])
			if err != nil {
				return err
			}
			st := library.ParseStatus(args[1])
			if st == "" {
				return fmt.Errorf("status must not be empty")
			}
			if !st.Known() {
				warn("%q is not a predefined status; storing it as-is", args[1])
			}
			if err := lib.SetStatus(i, st); err != nil {
				return err
			}
			if err := lib.SaveGames(); err != nil {
				return err
			}
			g, _ := lib.Game(i)
			ok("%s → %s", g.Title, g.Status)
			return nil
		},
	}
	cmd.ValidArgsFunction = completeGames
	return cmd
}
