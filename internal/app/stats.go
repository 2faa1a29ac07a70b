package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/score"
)

type statsJSON struct {
	Games     int            `json:"games"`
	Wishlist  int            `json:"wishlist"`
	ByStatus  map[string]int `json:"by_status"`
	Scored    int            `json:"scored"`
	MeanTotal float64        `json:"mean_total"`
	Best      *gameJSON      `json:"best,omitempty"`
}

func newStatsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "stats",
		Short:       "Summarize the library by status and score",
		Args:        cobra.NoArgs,
		Annotations: readsLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := lib.Summary()

			if jsonOut {
				out := statsJSON{
					Games:     s.Games,
					Wishlist:  s.Wishlist,
					ByStatus:  make(map[string]int, len(s.ByStatus)),
					Scored:    s.Scored,
					MeanTotal: s.MeanTotal,
				}
				for _, c := range s.ByStatus {
					out.ByStatus[string(c.Status)] = c.Count
				}
				if s.Best != nil {
					b := toGameJSON(*s.Best)
					out.Best = &b
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			header("Library")
			printField("played", fmt.Sprintf("%d", s.Games))
			printField("wishlist", fmt.Sprintf("%d", s.Wishlist))
			if s.Scored > 0 {
				printField("mean total", fmt.Sprintf("%s (%d scored)", score.Format(s.MeanTotal), s.Scored))
			}
			if s.Best != nil {
				printField("best", fmt.Sprintf("%s %s", s.Best.Title, color.GreenString(score.Format(s.Best.Total))))
			}

			if len(s.ByStatus) == 0 {
				return nil
			}
			fmt.Println()
			header("By status")
			width := 0
			for _, c := range s.ByStatus {
				if c.Count > width {
					width = c.Count
				}
			}
			for _, c := range s.ByStatus {
				bar := strings.Repeat("█", barLen(c.Count, width, 30))
				fmt.Printf("  %s %3d %s\n", pad(string(c.Status), 12), c.Count, color.CyanString(bar))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// barLen scales n against max into at most width cells, never zero for n > 0.
func barLen(n, max, width int) int {
	if max <= 0 || n <= 0 {
		return 0
	}
	l := n * width / max
	if l == 0 {
		l = 1
	}
	return l
}
