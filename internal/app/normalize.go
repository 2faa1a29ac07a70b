package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/util"
)

func newNormalizeCmd() *cobra.Command {
	var (
		dryRun bool
		backup bool
	)

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Rewrite legacy compact dates (YYYYMMDD) as YYYY/MM/DD",
		Long: `Older played-games files stored dates as YYYYMMDD, sometimes with a
trailing .0. They are converted whenever the file is loaded, and any command
that saves writes the converted form. normalize saves the file right away,
keeping a timestamped backup of the original.`,
		Args:        cobra.NoArgs,
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := lib.Migrated()
			if n == 0 {
				fmt.Println("All dates are already in YYYY/MM/DD form.")
				return nil
			}
			if dryRun {
				fmt.Printf("%d game(s) have legacy dates; run without --dry-run to rewrite %s\n",
					n, cfg.GamesPath())
				return nil
			}

			if backup {
				dst, err := util.BackupFile(cfg.GamesPath(), timeNow())
				if err != nil {
					return err
				}
				if dst != "" {
					ok("Backup written to %s", dst)
				}
			}
			if err := lib.SaveGames(); err != nil {
				return err
			}
			ok("Rewrote dates of %d game(s)", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only report how many games would change")
	cmd.Flags().BoolVar(&backup, "backup", true, "Copy the original file before rewriting")
	return cmd
}
