package library

import (
	"fmt"

	"github.com/blackwell-systems/gamectl/internal/dates"
	"github.com/blackwell-systems/gamectl/internal/records"
)

// MoveToLibrary turns wishlist row wi into a played game: title and genre are
// copied, the start date is today, the status is WAITING and every score is
// zero. The new record is appended to the played games and the wishlist row
// is removed; both collections are reindexed.
//
// With PersistOnPurchase both files are written together. If that write
// fails, both collections are restored and the error is returned.
func (l *Library) MoveToLibrary(wi int) (GameRecord, error) {
	if wi < 0 || wi >= len(l.wishlist) {
		return GameRecord{}, fmt.Errorf("wishlist row %d: %w", wi, ErrIndexOutOfRange)
	}
	src := l.wishlist[wi]

	rec := GameRecord{
		Title:     src.Title,
		Genre:     src.Genre,
		Status:    StatusWaiting,
		StartDate: dates.Today(l.now()),
	}

	prevGames, prevWish := l.games, l.wishlist

	games := make([]GameRecord, 0, len(l.games)+1)
	games = append(games, l.games...)
	games = append(games, rec)

	wish := make([]WishlistItem, 0, len(l.wishlist)-1)
	wish = append(wish, l.wishlist[:wi]...)
	wish = append(wish, l.wishlist[wi+1:]...)

	l.games, l.wishlist = games, wish
	l.reindex()

	if l.opts.PersistOnPurchase {
		if err := records.SaveAll(l.gamesPending(), l.wishlistPending()); err != nil {
			l.games, l.wishlist = prevGames, prevWish
			l.reindex()
			l.log.Error().Err(err).Str("title", src.Title).Msg("purchase not saved; rolled back")
			return GameRecord{}, fmt.Errorf("moving %q to library: %w", src.Title, err)
		}
	}

	moved := l.games[len(l.games)-1]
	l.log.Info().Str("title", moved.Title).Int("index", moved.Index).Msg("moved wishlist entry to library")
	return moved, nil
}
