package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/library"
)

func newSortCmd() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Reorder played games by start date",
		Long: `Reorder the played games by start date and save the new order. Each run
flips the direction, starting with newest first; games without a start date
always go last. Use --order to pick a direction explicitly.

Indices shown by 'gamectl list' change after sorting.`,
		Args:        cobra.NoArgs,
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch order {
			case "":
			case "desc":
				lib.SetSortOrder(library.Ascending)
			case "asc":
				lib.SetSortOrder(library.Descending)
			default:
				return fmt.Errorf("--order must be asc or desc, got %q", order)
			}

			o := lib.ToggleSort()
			if err := lib.SaveGames(); err != nil {
				return err
			}
			if err := saveState(); err != nil {
				warn("could not remember sort direction: %v", err)
			}
			label := "newest first"
			if o == library.Ascending {
				label = "oldest first"
			}
			ok("Sorted %d game(s) by start date, %s", len(lib.Games()), label)
			return nil
		},
	}

	cmd.Flags().StringVar(&order, "order", "", "Sort direction: asc or desc (default: flip the last direction)")
	return cmd
}
