package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/util"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Read and write a game's daily log",
		Long: `Each played game has a plain-text log file next to the data files, one
timestamped line per entry. Entries are appended; use 'log edit' to replace
the whole file when something needs removing or rewording.`,
	}
	cmd.AddCommand(newLogShowCmd(), newLogAddCmd(), newLogEditCmd())
	return cmd
}

func newLogShowCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:         "show [game]",
		Short:       "Print a game's log",
		Args:        cobra.MaximumNArgs(1),
		Annotations: readsLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := logTitle(cmd, args)
			if err != nil || title == "" {
				return err
			}

			if raw {
				text, err := logs.Read(title)
				if err != nil {
					return err
				}
				fmt.Print(text)
				return nil
			}

			entries, err := logs.Entries(title)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("No log entries for %s.\n", title)
				return nil
			}
			header("%s  (%s)", title, logs.FilenameFor(title))
			for _, e := range entries {
				if e.Timestamp == "" {
					fmt.Println("  " + e.Text)
					continue
				}
				fmt.Printf("  %s %s\n", color.CyanString("["+e.Timestamp+"]"), e.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the file exactly as stored")
	cmd.ValidArgsFunction = completeGames
	return cmd
}

func newLogAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "add <game> <text...>",
		Short:       "Append a timestamped entry to a game's log",
		Example:     `  gamectl log add 3 "보스 3번째 트라이 성공"`,
		Args:        cobra.MinimumNArgs(2),
		Annotations: readsLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := resolveGame(args[0])
			if err != nil {
				return err
			}
			g, err := lib.Game(i)
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("log entry is empty")
			}
			e, err := logs.Append(g.Title, text)
			if err != nil {
				return err
			}
			ok("%s  %s", g.Title, e.String())
			return nil
		},
	}
	cmd.ValidArgsFunction = completeGames
	return cmd
}

func newLogEditCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "edit <game>",
		Short: "Replace a game's whole log with new content",
		Long: `Replace a game's log with the content of --file, or of stdin when no file
is given. This is the only way to delete or reorder entries; a typical use is

  gamectl log show 3 --raw > /tmp/log.txt
  $EDITOR /tmp/log.txt
  gamectl log edit 3 --file /tmp/log.txt`,
		Args:        cobra.ExactArgs(1),
		Annotations: readsLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := resolveGame(args[0])
			if err != nil {
				return err
			}
			g, err := lib.Game(i)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if file == "" && in == os.Stdin && util.IsTerminal(os.Stdin) {
				fmt.Fprintln(os.Stderr, color.YellowString("Type the new log, then Ctrl-D:"))
			}
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("reading new log: %w", err)
			}
			if err := logs.Overwrite(g.Title, string(data)); err != nil {
				return err
			}
			ok("Replaced log for %s", g.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the new log from this file instead of stdin")
	cmd.ValidArgsFunction = completeGames
	return cmd
}

// logTitle resolves the game whose log is wanted. An empty title with a nil
// error means the user canceled the picker.
func logTitle(cmd *cobra.Command, args []string) (string, error) {
	i, err := gameArg(cmd, args, "Show log")
	if err != nil {
		if isCanceled(err) {
			return "", nil
		}
		return "", err
	}
	g, err := lib.Game(i)
	if err != nil {
		return "", err
	}
	return g.Title, nil
}
