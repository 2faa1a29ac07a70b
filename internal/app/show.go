package app

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/dates"
	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/score"
)

func newShowCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:         "show [game]",
		Short:       "Show one played game with its scores and recent log entries",
		Args:        cobra.MaximumNArgs(1),
		Annotations: readsLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := gameArg(cmd, args, "Show game")
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

			header("#%d  %s", g.Index, g.Title)
			printField("genre", orDash(g.Genre))
			status := string(g.Status)
			if !g.Status.Known() {
				status += color.YellowString(" (custom)")
			}
			printField("status", status)
			printField("start", dateField(g.StartDate))
			printField("finish", dateField(g.FinishDate))
			for k, name := range score.Names {
				printField(name, score.Format(g.Scores[k]))
			}
			total := score.Format(g.Total)
			if want := score.Total(g.Scores); want != g.Total {
				total += color.YellowString(" (sub-scores give %s)", score.Format(want))
			}
			printField("total", total)
			printExtra(g.Extra)

			if recent <= 0 {
				return nil
			}
			entries, err := logs.Entries(g.Title)
			if err != nil {
				warn("reading log: %v", err)
				return nil
			}
			if len(entries) == 0 {
				return nil
			}
			if len(entries) > recent {
				entries = entries[len(entries)-recent:]
			}
			fmt.Println()
			header("Recent log (%s)", logs.FilenameFor(g.Title))
			for _, e := range entries {
				fmt.Println("  " + e.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 5, "Number of log entries to show (0 to hide)")
	cmd.ValidArgsFunction = completeGames
	return cmd
}

func dateField(v string) string {
	if v == "" {
		return "-"
	}
	if err := dates.Check(v); err != nil {
		return v + color.YellowString(" (unusual date)")
	}
	return v
}

func printExtra(extra map[string]string) {
	keys := make([]string, 0, len(extra))
	for k, v := range extra {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		printField(k, extra[k])
	}
}

// statusHelp lists the predefined statuses for flag help text.
func statusHelp() string {
	s := ""
	for i, st := range library.Statuses {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s (%s)", st, st.Name())
	}
	return s
}
