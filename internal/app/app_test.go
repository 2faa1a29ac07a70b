package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/gamectl/internal/config"
	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/records"
)

type env struct {
	dir     string
	cfgPath string
}

func newEnv(t *testing.T, persist bool) env {
	t.Helper()
	dir := t.TempDir()
	c := config.Default()
	c.DataDir = dir
	c.Purchase.Persist = persist
	c.Log.Level = "off"
	cfgPath := filepath.Join(dir, "config.yml")
	if err := config.Save(cfgPath, c); err != nil {
		t.Fatal(err)
	}

	prev := timeNow
	timeNow = func() time.Time { return time.Date(2026, 10, 18, 21, 5, 0, 0, time.Local) }
	t.Cleanup(func() { timeNow = prev })
	return env{dir: dir, cfgPath: cfgPath}
}

func (e env) run(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", e.cfgPath, "--no-interactive", "--no-color"}, args...))
	return root.Execute()
}

func (e env) mustRun(t *testing.T, args ...string) {
	t.Helper()
	if err := e.run(t, args...); err != nil {
		t.Fatalf("gamectl %s: %v", strings.Join(args, " "), err)
	}
}

func (e env) open(t *testing.T) *library.Library {
	t.Helper()
	l, err := library.Open(library.Options{
		GamesPath:    filepath.Join(e.dir, "games.csv"),
		WishlistPath: filepath.Join(e.dir, "wishlist.csv"),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return l
}

func TestInit_CreatesDataFiles(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "init")

	tbl, err := records.Load(filepath.Join(e.dir, "games.csv"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tbl.Columns) != len(library.GameColumns) || tbl.Columns[0] != library.ColTitle {
		t.Errorf("games header = %v", tbl.Columns)
	}
	if _, err := os.Stat(filepath.Join(e.dir, "wishlist.csv")); err != nil {
		t.Errorf("wishlist not created: %v", err)
	}

	// existing data is left alone
	e.mustRun(t, "add", "Celeste")
	e.mustRun(t, "init")
	if got := len(e.open(t).Games()); got != 1 {
		t.Errorf("games after second init = %d, want 1", got)
	}
}

func TestAdd_NormalizesAndDefaults(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "add", "  Hollow Knight ", "--genre", "메트로배니아", "--start", "20240105")

	g, err := e.open(t).Game(0)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title != "Hollow Knight" {
		t.Errorf("Title = %q", g.Title)
	}
	if g.Status != library.StatusWaiting {
		t.Errorf("Status = %q, want %q", g.Status, library.StatusWaiting)
	}
	if g.StartDate != "2024/01/05" {
		t.Errorf("StartDate = %q, want 2024/01/05", g.StartDate)
	}
}

func TestAdd_RejectsImpossibleDate(t *testing.T) {
	e := newEnv(t, true)
	if err := e.run(t, "add", "Celeste", "--start", "2023/02/30"); err == nil {
		t.Fatal("expected error for 2023/02/30")
	}
	if got := len(e.open(t).Games()); got != 0 {
		t.Errorf("games = %d, want 0", got)
	}
}

func TestStatus_ByTitleAndCustomText(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "add", "Celeste")
	e.mustRun(t, "status", "celeste", "ending_done")

	g, _ := e.open(t).Game(0)
	if g.Status != library.StatusEndingDone {
		t.Errorf("Status = %q, want %q", g.Status, library.StatusEndingDone)
	}

	e.mustRun(t, "status", "0", "일시정지중")
	g, _ = e.open(t).Game(0)
	if g.Status != "일시정지중" || g.Status.Known() {
		t.Errorf("custom status = %q", g.Status)
	}
}

func TestScore_TotalAndClamp(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "add", "Celeste")
	e.mustRun(t, "score", "0", "5", "5", "5", "5", "5", "0")

	g, _ := e.open(t).Game(0)
	if g.Total != 4.2 {
		t.Errorf("Total = %v, want 4.2", g.Total)
	}

	e.mustRun(t, "score", "0", "7", "abc")
	g, _ = e.open(t).Game(0)
	if g.Scores[0] != 5 || g.Scores[1] != 0 {
		t.Errorf("Scores = %v, want clamp to 5 and abc to 0", g.Scores)
	}
	if g.Total != 0.8 {
		t.Errorf("Total = %v, want 0.8", g.Total)
	}
}

func TestScore_BadIndex(t *testing.T) {
	e := newEnv(t, true)
	err := e.run(t, "score", "3", "5")
	if !errors.Is(err, library.ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDates_Flags(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "add", "Celeste", "--start", "2024/01/05")
	e.mustRun(t, "dates", "0", "--finish-today")

	g, _ := e.open(t).Game(0)
	if g.StartDate != "2024/01/05" || g.FinishDate != "2026/10/18" {
		t.Errorf("dates = %q ~ %q", g.StartDate, g.FinishDate)
	}

	e.mustRun(t, "dates", "0", "--start", "")
	g, _ = e.open(t).Game(0)
	if g.StartDate != "" {
		t.Errorf("StartDate = %q, want cleared", g.StartDate)
	}

	if err := e.run(t, "dates", "0"); err == nil {
		t.Error("dates without flags should fail when not interactive")
	}
}

func TestSort_AlternatesAndRemembers(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "add", "A", "--start", "2024/01/01")
	e.mustRun(t, "add", "NoDate")
	e.mustRun(t, "add", "B", "--start", "2024/03/01")

	titles := func() string {
		var out []string
		for _, g := range e.open(t).Games() {
			out = append(out, g.Title)
		}
		return strings.Join(out, ",")
	}

	e.mustRun(t, "sort")
	if got := titles(); got != "B,A,NoDate" {
		t.Errorf("first sort = %s, want B,A,NoDate", got)
	}
	st, err := config.LoadState(filepath.Join(e.dir, "state.yml"))
	if err != nil || st.SortOrder != "desc" {
		t.Errorf("state = %+v, %v; want desc", st, err)
	}

	e.mustRun(t, "sort")
	if got := titles(); got != "A,B,NoDate" {
		t.Errorf("second sort = %s, want A,B,NoDate", got)
	}

	e.mustRun(t, "sort", "--order", "desc")
	if got := titles(); got != "B,A,NoDate" {
		t.Errorf("--order desc = %s", got)
	}
}

func TestWishBuy(t *testing.T) {
	for _, persist := range []bool{true, false} {
		e := newEnv(t, persist)
		e.mustRun(t, "wish", "add", "Silksong", "--genre", "메트로배니아", "--price", "정가")
		e.mustRun(t, "wish", "add", "Hades II")
		e.mustRun(t, "wish", "buy", "silksong")

		l := e.open(t)
		if got := l.Wishlist(); len(got) != 1 || got[0].Title != "Hades II" || got[0].Index != 0 {
			t.Errorf("persist=%v wishlist = %+v", persist, got)
		}
		games := l.Games()
		if len(games) != 1 {
			t.Fatalf("persist=%v games = %d, want 1", persist, len(games))
		}
		g := games[0]
		if g.Title != "Silksong" || g.Genre != "메트로배니아" || g.Status != library.StatusWaiting {
			t.Errorf("persist=%v moved = %+v", persist, g)
		}
		if g.StartDate != "2026/10/18" || g.FinishDate != "" || g.Total != 0 {
			t.Errorf("persist=%v moved dates/total = %q %q %v", persist, g.StartDate, g.FinishDate, g.Total)
		}
	}
}

func TestWishBuy_RequiresEntryWhenNotInteractive(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "wish", "add", "Silksong")
	if err := e.run(t, "wish", "buy"); err == nil {
		t.Error("expected error without an entry")
	}
	if err := e.run(t, "wish", "buy", "7"); !errors.Is(err, library.ErrIndexOutOfRange) {
		t.Errorf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestLog_AddAndEdit(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "add", "Hollow Knight")
	e.mustRun(t, "log", "add", "0", "보스", "클리어")

	path := filepath.Join(e.dir, "Hollow Knight_log.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if got := string(data); got != "[2026-10-18 21:05] 보스 클리어\n" {
		t.Errorf("log = %q", got)
	}

	root := newRootCmd()
	root.SetArgs([]string{"--config", e.cfgPath, "--no-interactive", "log", "edit", "Hollow Knight"})
	root.SetIn(strings.NewReader("[2026-10-18 21:05] 다시 씀\n"))
	if err := root.Execute(); err != nil {
		t.Fatalf("log edit: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "[2026-10-18 21:05] 다시 씀\n" {
		t.Errorf("after edit = %q", data)
	}
}

func TestNormalize_RewritesLegacyDatesWithBackup(t *testing.T) {
	e := newEnv(t, true)
	games := filepath.Join(e.dir, "games.csv")
	if err := os.WriteFile(games, []byte("게임명,시작일,종료일\nCeleste,20240105.0,20240220\n"), 0644); err != nil {
		t.Fatal(err)
	}

	e.mustRun(t, "normalize", "--dry-run")
	data, _ := os.ReadFile(games)
	if !strings.Contains(string(data), "20240105.0") {
		t.Fatal("--dry-run must not rewrite the file")
	}

	e.mustRun(t, "normalize")
	data, _ = os.ReadFile(games)
	if !strings.Contains(string(data), "2024/01/05") || !strings.Contains(string(data), "2024/02/20") {
		t.Errorf("normalized file = %q", data)
	}
	baks, _ := filepath.Glob(games + ".*.bak")
	if len(baks) != 1 {
		t.Errorf("backups = %v, want one", baks)
	}
}

func TestMalformedFile_BlocksWrites(t *testing.T) {
	e := newEnv(t, true)
	games := filepath.Join(e.dir, "games.csv")
	bad := []byte("게임명,장르\n\"unterminated,x\n")
	if err := os.WriteFile(games, bad, 0644); err != nil {
		t.Fatal(err)
	}

	if err := e.run(t, "list"); err != nil {
		t.Errorf("list should degrade, got %v", err)
	}
	err := e.run(t, "add", "Celeste")
	if !errors.Is(err, records.ErrParse) {
		t.Errorf("add err = %v, want ErrParse", err)
	}
	data, _ := os.ReadFile(games)
	if string(data) != string(bad) {
		t.Error("malformed file was overwritten")
	}
}

func TestResolveGame_DuplicateTitlesPickFirst(t *testing.T) {
	e := newEnv(t, true)
	e.mustRun(t, "add", "Tetris")
	e.mustRun(t, "add", "Tetris", "--genre", "퍼즐")
	e.mustRun(t, "status", "tetris", "MAIN1")

	games := e.open(t).Games()
	if games[0].Status != library.StatusMain1 || games[1].Status != library.StatusWaiting {
		t.Errorf("statuses = %q, %q", games[0].Status, games[1].Status)
	}
}

func TestBarLen(t *testing.T) {
	cases := []struct{ n, max, width, want int }{
		{0, 10, 30, 0},
		{10, 10, 30, 30},
		{1, 100, 30, 1},
		{5, 10, 30, 15},
	}
	for _, c := range cases {
		if got := barLen(c.n, c.max, c.width); got != c.want {
			t.Errorf("barLen(%d,%d,%d) = %d, want %d", c.n, c.max, c.width, got, c.want)
		}
	}
}
