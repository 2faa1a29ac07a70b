package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/config"
	"github.com/blackwell-systems/gamectl/internal/journal"
	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/logging"
	"github.com/blackwell-systems/gamectl/internal/tui"
	"github.com/blackwell-systems/gamectl/internal/util"
)

// Command annotations describing what a command needs from the data files.
const (
	annLibrary = "library"
	libRead    = "read"
	libWrite   = "write"
)

var (
	cfg     *config.Config
	lib     *library.Library
	logs    *journal.Store
	logger  zerolog.Logger
	loadErr error

	appVersion = "dev"

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

// SetVersion sets the version reported by `gamectl version`.
func SetVersion(v string) {
	appVersion = v
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gamectl",
		Short: "Track the games you play, want, and write about",
		Long: `gamectl keeps a personal game library in two CSV files: the games you
have played (status, dates, six sub-scores and a total) and a wishlist.
Each played game can also have a plain-text daily log.

Run 'gamectl init' once to write a config file and create the data files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/gamectl/config.yml)")

	root.AddCommand(
		newInitCmd(),
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newStatusCmd(),
		newDatesCmd(),
		newScoreCmd(),
		newSortCmd(),
		newNormalizeCmd(),
		newStatsCmd(),
		newWishCmd(),
		newLogCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// setup loads config, builds the logger and, for commands that need it, opens
// the library and the journal store.
func setup(cmd *cobra.Command) error {
	util.InitColor(flagNoColor)

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger = logging.New(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		NoColor:    flagNoColor,
	})

	mode := cmd.Annotations[annLibrary]
	if mode == "" {
		return nil
	}

	lib, loadErr = library.Open(library.Options{
		GamesPath:         cfg.GamesPath(),
		WishlistPath:      cfg.WishlistPath(),
		PersistOnPurchase: cfg.Purchase.Persist,
		Now:               timeNow,
		Logger:            &logger,
	})
	if loadErr != nil {
		// Saving now would replace the unreadable file with an empty one.
		if mode == libWrite {
			return fmt.Errorf("not modifying data: %w", loadErr)
		}
		warn("%v", loadErr)
	}

	st, err := config.LoadState(cfg.StatePath())
	if err != nil {
		warn("ignoring state file: %v", err)
	}
	lib.SetSortOrder(library.ParseSortOrder(st.SortOrder))

	logs = journal.New(cfg.Journal.EffectiveJournalDir(cfg.DataDir), cfg.Journal.Suffix,
		journal.WithLogger(logger), journal.WithClock(timeNow))
	return nil
}

func readsLibrary() map[string]string {
	return map[string]string{annLibrary: libRead}
}

func writesLibrary() map[string]string {
	return map[string]string{annLibrary: libWrite}
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", color.CyanString(label+":"), value)
}

// isCanceled reports whether err came from the user backing out of a TUI.
func isCanceled(err error) bool {
	return errors.Is(err, tui.ErrCanceled)
}
