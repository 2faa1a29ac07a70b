// Package library owns the played-games and wishlist collections: loading
// them from disk, editing records in memory, ordering, and moving wishlist
// entries into the played collection. Nothing is written until Save (or a
// purchase with PersistOnPurchase) is called.
package library

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/blackwell-systems/gamectl/internal/dates"
	"github.com/blackwell-systems/gamectl/internal/records"
)

var (
	// ErrIndexOutOfRange is returned when a positional index has no row.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptyTitle is returned when adding a record without a title.
	ErrEmptyTitle = errors.New("title is required")
)

// Options configures Open.
type Options struct {
	GamesPath    string
	WishlistPath string

	// PersistOnPurchase saves both files as part of MoveToLibrary.
	PersistOnPurchase bool

	Now    func() time.Time
	Logger *zerolog.Logger
}

// Library is the in-memory state of both collections.
type Library struct {
	opts Options
	now  func() time.Time
	log  zerolog.Logger

	games    []GameRecord
	wishlist []WishlistItem

	gameCols []string
	wishCols []string

	order    SortOrder
	migrated int
}

// Open loads both collections. Missing files give empty collections. When a
// file cannot be parsed its collection stays empty and the error is returned
// alongside a usable Library.
func Open(opts Options) (*Library, error) {
	l := New(opts)
	return l, l.Load()
}

// New returns an empty Library without touching the filesystem.
func New(opts Options) *Library {
	l := &Library{
		opts:     opts,
		now:      opts.Now,
		log:      zerolog.Nop(),
		gameCols: append([]string(nil), GameColumns...),
		wishCols: append([]string(nil), WishlistColumns...),
	}
	if l.now == nil {
		l.now = time.Now
	}
	if opts.Logger != nil {
		l.log = *opts.Logger
	}
	return l
}

// Load (re)reads both files, replacing the in-memory collections.
func (l *Library) Load() error {
	var errs []error

	gt, err := records.Load(l.opts.GamesPath)
	if err != nil {
		l.log.Warn().Err(err).Str("path", l.opts.GamesPath).Msg("played games not loaded")
		errs = append(errs, err)
	}
	l.games = make([]GameRecord, 0, gt.Len())
	l.migrated = 0
	for _, row := range gt.Rows {
		rec, migrated := gameFromRow(row)
		if migrated {
			l.migrated++
		}
		l.games = append(l.games, rec)
	}
	l.gameCols = mergeColumns(gt.Columns, GameColumns)

	wt, err := records.Load(l.opts.WishlistPath)
	if err != nil {
		l.log.Warn().Err(err).Str("path", l.opts.WishlistPath).Msg("wishlist not loaded")
		errs = append(errs, err)
	}
	l.wishlist = make([]WishlistItem, 0, wt.Len())
	for _, row := range wt.Rows {
		l.wishlist = append(l.wishlist, wishFromRow(row))
	}
	l.wishCols = mergeColumns(wt.Columns, WishlistColumns)

	l.reindex()
	if l.migrated > 0 {
		l.log.Info().Int("records", l.migrated).Msg("normalized legacy dates")
	}
	l.log.Debug().Int("games", len(l.games)).Int("wishlist", len(l.wishlist)).Msg("library loaded")
	return errors.Join(errs...)
}

// Migrated returns how many records had legacy dates rewritten by the last
// Load. The rewrite reaches disk on the next save.
func (l *Library) Migrated() int {
	return l.migrated
}

// Save writes both collections.
func (l *Library) Save() error {
	return records.SaveAll(l.gamesPending(), l.wishlistPending())
}

// SaveGames writes only the played-games collection.
func (l *Library) SaveGames() error {
	return records.SaveAll(l.gamesPending())
}

// SaveWishlist writes only the wishlist collection.
func (l *Library) SaveWishlist() error {
	return records.SaveAll(l.wishlistPending())
}

func (l *Library) gamesPending() records.Pending {
	t := records.NewTable(l.gameCols...)
	for _, g := range l.games {
		t.Append(gameToRow(g))
	}
	return records.Pending{Path: l.opts.GamesPath, Table: t}
}

func (l *Library) wishlistPending() records.Pending {
	t := records.NewTable(l.wishCols...)
	for _, w := range l.wishlist {
		t.Append(wishToRow(w))
	}
	return records.Pending{Path: l.opts.WishlistPath, Table: t}
}

// Games returns a copy of the played-games collection in current order.
func (l *Library) Games() []GameRecord {
	out := make([]GameRecord, len(l.games))
	for i, g := range l.games {
		g.Extra = cloneExtra(g.Extra)
		out[i] = g
	}
	return out
}

// Wishlist returns a copy of the wishlist in current order.
func (l *Library) Wishlist() []WishlistItem {
	out := make([]WishlistItem, len(l.wishlist))
	for i, w := range l.wishlist {
		w.Extra = cloneExtra(w.Extra)
		out[i] = w
	}
	return out
}

// Game returns a copy of the record at index i.
func (l *Library) Game(i int) (GameRecord, error) {
	g, err := l.game(i)
	if err != nil {
		return GameRecord{}, err
	}
	out := *g
	out.Extra = cloneExtra(g.Extra)
	return out, nil
}

// WishlistItem returns a copy of the wishlist row at index i.
func (l *Library) WishlistItem(i int) (WishlistItem, error) {
	if i < 0 || i >= len(l.wishlist) {
		return WishlistItem{}, fmt.Errorf("wishlist row %d: %w", i, ErrIndexOutOfRange)
	}
	w := l.wishlist[i]
	w.Extra = cloneExtra(w.Extra)
	return w, nil
}

func (l *Library) game(i int) (*GameRecord, error) {
	if i < 0 || i >= len(l.games) {
		return nil, fmt.Errorf("game row %d: %w", i, ErrIndexOutOfRange)
	}
	return &l.games[i], nil
}

// AddGame appends a played game. Dates are normalized and a blank status
// defaults to WAITING. Records with the same title are not merged.
func (l *Library) AddGame(rec GameRecord) (GameRecord, error) {
	rec.Title = strings.TrimSpace(rec.Title)
	if rec.Title == "" {
		return GameRecord{}, ErrEmptyTitle
	}
	rec.StartDate = dates.ToStorage(rec.StartDate)
	rec.FinishDate = dates.ToStorage(rec.FinishDate)
	if strings.TrimSpace(string(rec.Status)) == "" {
		rec.Status = StatusWaiting
	}
	rec.Extra = cloneExtra(rec.Extra)
	rec.Index = len(l.games)
	l.games = append(l.games, rec)
	l.log.Debug().Str("title", rec.Title).Int("index", rec.Index).Msg("game added")
	return rec, nil
}

// AddWish appends a wishlist entry.
func (l *Library) AddWish(item WishlistItem) (WishlistItem, error) {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return WishlistItem{}, ErrEmptyTitle
	}
	item.Extra = cloneExtra(item.Extra)
	item.Index = len(l.wishlist)
	l.wishlist = append(l.wishlist, item)
	l.log.Debug().Str("title", item.Title).Int("index", item.Index).Msg("wishlist entry added")
	return item, nil
}

// reindex assigns positional indices 0..n-1 in current order.
func (l *Library) reindex() {
	for i := range l.games {
		l.games[i].Index = i
	}
	for i := range l.wishlist {
		l.wishlist[i].Index = i
	}
}

// mergeColumns keeps a loaded header as-is and appends known columns it lacks.
// An empty header (new file) becomes the default one.
func mergeColumns(loaded, known []string) []string {
	if len(loaded) == 0 {
		return append([]string(nil), known...)
	}
	t := records.NewTable(loaded...)
	t.EnsureColumns(known...)
	return t.Columns
}
