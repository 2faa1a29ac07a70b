package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/tui"
)

func newWishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wish",
		Short: "Manage the wishlist",
	}
	cmd.AddCommand(newWishListCmd(), newWishAddCmd(), newWishBuyCmd())
	return cmd
}

type wishJSON struct {
	Index       int               `json:"index"`
	Title       string            `json:"title"`
	Genre       string            `json:"genre,omitempty"`
	PriceStatus string            `json:"price_status,omitempty"`
	Discount    string            `json:"discount,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

func newWishListCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "List wishlist entries",
		Args:        cobra.NoArgs,
		Annotations: readsLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := lib.Wishlist()

			if jsonOut {
				out := make([]wishJSON, len(items))
				for i, w := range items {
					out[i] = wishJSON{
						Index:       w.Index,
						Title:       w.Title,
						Genre:       w.Genre,
						PriceStatus: w.PriceStatus,
						Discount:    w.Discount,
						Extra:       w.Extra,
					}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			if len(items) == 0 {
				fmt.Println("Wishlist is empty.")
				return nil
			}
			fmt.Printf("%4s  %s  %s  %s  %s\n", "#",
				pad(library.ColTitle, 28), pad(library.ColGenre, 12),
				pad(library.ColPriceStatus, 12), library.ColDiscount)
			for _, w := range items {
				fmt.Printf("%4d  %s  %s  %s  %s\n",
					w.Index,
					pad(w.Title, 28),
					color.CyanString(pad(w.Genre, 12)),
					pad(orDash(w.PriceStatus), 12),
					orDash(w.Discount),
				)
			}
			fmt.Printf("\n%d entr(ies)\n", len(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newWishAddCmd() *cobra.Command {
	var item library.WishlistItem

	cmd := &cobra.Command{
		Use:         "add <title>",
		Short:       "Add a game to the wishlist",
		Example:     `  gamectl wish add "Silksong" --genre 메트로배니아 --price 정가 --discount 0%`,
		Args:        cobra.ExactArgs(1),
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			item.Title = args[0]
			added, err := lib.AddWish(item)
			if err != nil {
				return err
			}
			if err := lib.SaveWishlist(); err != nil {
				return err
			}
			ok("Wished for #%d %s", added.Index, added.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&item.Genre, "genre", "", "Genre")
	cmd.Flags().StringVar(&item.PriceStatus, "price", "", "Price status (free text)")
	cmd.Flags().StringVar(&item.Discount, "discount", "", "Discount (free text)")
	return cmd
}

func newWishBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy [entry]",
		Short: "Move a wishlist entry into the played games",
		Long: `Move a wishlist entry into the played games. The new game starts today
with status 대기 (WAITING) and no scores; the wishlist entry is removed.
Both files are written together.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: writesLibrary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				wi  int
				err error
			)
			switch {
			case len(args) > 0:
				wi, err = resolveWish(args[0])
			case tui.ShouldUseTUI(cmd):
				wi, err = tui.RunWishPicker(lib.Wishlist(), "Bought which game?")
			default:
				err = fmt.Errorf("wishlist entry required (index or title)")
			}
			if err != nil {
				if isCanceled(err) {
					return nil
				}
				return err
			}

			moved, err := lib.MoveToLibrary(wi)
			if err != nil {
				return err
			}
			if !cfg.Purchase.Persist {
				if err := lib.Save(); err != nil {
					return err
				}
			}
			ok("Moved %s to played games as #%d (started %s)", moved.Title, moved.Index, moved.StartDate)
			return nil
		},
	}
	return cmd
}
