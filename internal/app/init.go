package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/config"
	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/util"
)

func newInitCmd() *cobra.Command {
	var (
		dataDir string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file and create empty data files",
		Long: `Write a config file (unless one exists) and create the played-games and
wishlist files with their column headers. Existing data files are never
touched.`,
		Example: `  gamectl init
  gamectl init --data-dir ~/Documents/games`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(flagConfig)

			if dataDir != "" {
				cfg.DataDir = config.ExpandHome(dataDir)
			}

			_, statErr := os.Stat(path)
			switch {
			case os.IsNotExist(statErr) || force:
				if err := config.Save(path, cfg); err != nil {
					return fmt.Errorf("writing config: %w", err)
				}
				ok("Wrote config %s", path)
			case statErr != nil:
				return statErr
			default:
				fmt.Printf("  Config %s already exists (use --force to overwrite)\n", path)
			}

			if err := util.EnsureDir(cfg.DataDir); err != nil {
				return fmt.Errorf("creating data dir: %w", err)
			}

			// Only create what is missing.
			gamesMissing := !exists(cfg.GamesPath())
			wishMissing := !exists(cfg.WishlistPath())
			empty := library.New(library.Options{
				GamesPath:    cfg.GamesPath(),
				WishlistPath: cfg.WishlistPath(),
			})
			if gamesMissing {
				if err := empty.SaveGames(); err != nil {
					return err
				}
				ok("Created %s", cfg.GamesPath())
			}
			if wishMissing {
				if err := empty.SaveWishlist(); err != nil {
					return err
				}
				ok("Created %s", cfg.WishlistPath())
			}

			fmt.Println()
			fmt.Println("Next:")
			fmt.Printf("  %s\n", color.CyanString(`gamectl add "Hollow Knight" --genre 메트로배니아`))
			fmt.Printf("  %s\n", color.CyanString(`gamectl wish add "Silksong"`))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory for the data files")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
