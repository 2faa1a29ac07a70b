package library

import (
	"strings"

	"github.com/blackwell-systems/gamectl/internal/score"
)

// Status is the play state of a game. Known values are stored as their
// localized labels; any other text is kept verbatim.
type Status string

const (
	StatusMain1           Status = "메인1"
	StatusMain2           Status = "메인2"
	StatusWaiting         Status = "대기"
	StatusPaused          Status = "보류"
	StatusEndingDone      Status = "엔딩완료"
	StatusAchievementDone Status = "도전과제완료"
	StatusDropped         Status = "하차"
	StatusCheatMode       Status = "치트모드"
)

// Statuses lists the known statuses in menu order.
var Statuses = []Status{
	StatusMain1,
	StatusMain2,
	StatusWaiting,
	StatusPaused,
	StatusEndingDone,
	StatusAchievementDone,
	StatusDropped,
	StatusCheatMode,
}

var statusNames = map[Status]string{
	StatusMain1:           "MAIN1",
	StatusMain2:           "MAIN2",
	StatusWaiting:         "WAITING",
	StatusPaused:          "PAUSED",
	StatusEndingDone:      "ENDING_DONE",
	StatusAchievementDone: "ACHIEVEMENT_DONE",
	StatusDropped:         "DROPPED",
	StatusCheatMode:       "CHEAT_MODE",
}

// ParseStatus accepts a stored label or an enum name (case-insensitive, "-"
// and "_" interchangeable). Unrecognized text is returned trimmed, unchanged.
func ParseStatus(s string) Status {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if s == string(st) {
			return st
		}
	}
	norm := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for st, name := range statusNames {
		if norm == name {
			return st
		}
	}
	return Status(s)
}

// Known reports whether s is one of the predefined statuses.
func (s Status) Known() bool {
	_, ok := statusNames[s]
	return ok
}

// Name returns the enum name (e.g. "WAITING"), or the raw text for free-form
// statuses.
func (s Status) Name() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return string(s)
}

// Column names of the played-games file. These are the on-disk keys.
const (
	ColTitle        = "게임명"
	ColGenre        = "장르"
	ColStatus       = "상태"
	ColStartDate    = "시작일"
	ColFinishDate   = "종료일"
	ColSatisfaction = "만족도"
	ColImmersion    = "몰입도"
	ColGameplay     = "게임성"
	ColGraphics     = "그래픽"
	ColSound        = "사운드"
	ColCompleteness = "완성도"
	ColTotal        = "총점"
)

// Column names of the wishlist file.
const (
	ColPriceStatus = "가격상태"
	ColDiscount    = "할인율"
)

// ScoreColumns maps each sub-score, in score.Names order, to its column.
var ScoreColumns = [score.Count]string{
	ColSatisfaction,
	ColImmersion,
	ColGameplay,
	ColGraphics,
	ColSound,
	ColCompleteness,
}

// GameColumns is the header of a new played-games file.
var GameColumns = []string{
	ColTitle, ColGenre, ColStatus, ColStartDate, ColFinishDate,
	ColSatisfaction, ColImmersion, ColGameplay, ColGraphics, ColSound, ColCompleteness,
	ColTotal,
}

// WishlistColumns is the header of a new wishlist file.
var WishlistColumns = []string{ColTitle, ColGenre, ColPriceStatus, ColDiscount}

// GameRecord is one played game.
//
// Total is stored alongside the sub-scores and only recomputed by SetScores;
// a record loaded from disk may carry a stale total.
type GameRecord struct {
	Index      int
	Title      string
	Genre      string
	Status     Status
	StartDate  string
	FinishDate string
	Scores     score.Set
	Total      float64

	// Extra holds values of columns this package does not model.
	Extra map[string]string
}

// WishlistItem is a game not yet played. Price and discount are free text.
type WishlistItem struct {
	Index       int
	Title       string
	Genre       string
	PriceStatus string
	Discount    string

	Extra map[string]string
}

func cloneExtra(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
