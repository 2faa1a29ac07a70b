package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/gamectl/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yml")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GamesFile != "games.csv" {
		t.Errorf("GamesFile = %q, want games.csv", cfg.GamesFile)
	}
	if !cfg.Purchase.Persist {
		t.Error("Purchase.Persist should default to true")
	}
	if cfg.Journal.Suffix != "_log.txt" {
		t.Errorf("Journal.Suffix = %q", cfg.Journal.Suffix)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "data_dir: " + dir + "\ngames_file: played.csv\npurchase:\n  persist: false\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GamesPath(); got != filepath.Join(dir, "played.csv") {
		t.Errorf("GamesPath = %q", got)
	}
	if cfg.Purchase.Persist {
		t.Error("Purchase.Persist = true, want false from file")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GAMECTL_DATA_DIR", dir)
	cfg, err := config.Load(filepath.Join(dir, "none.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")
	want := config.Default()
	want.DataDir = dir
	want.Purchase.Persist = false

	if err := config.Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataDir != dir || got.Purchase.Persist {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestPaths(t *testing.T) {
	cfg := &config.Config{DataDir: "/data", WishlistFile: "/elsewhere/wish.csv"}
	if got := cfg.GamesPath(); got != filepath.Join("/data", "games.csv") {
		t.Errorf("GamesPath = %q", got)
	}
	if got := cfg.WishlistPath(); got != "/elsewhere/wish.csv" {
		t.Errorf("WishlistPath = %q", got)
	}
	if got := cfg.StatePath(); got != filepath.Join("/data", "state.yml") {
		t.Errorf("StatePath = %q", got)
	}
}

func TestEffectiveJournalDir(t *testing.T) {
	j := config.JournalConfig{}
	if got := j.EffectiveJournalDir("/data"); got != "/data" {
		t.Errorf("EffectiveJournalDir = %q, want /data", got)
	}
	j.Dir = "/logs"
	if got := j.EffectiveJournalDir("/data"); got != "/logs" {
		t.Errorf("EffectiveJournalDir = %q, want /logs", got)
	}
}

func TestPath_Resolution(t *testing.T) {
	t.Setenv("GAMECTL_CONFIG", "/from/env.yml")
	if got := config.Path("/explicit.yml"); got != "/explicit.yml" {
		t.Errorf("Path(explicit) = %q", got)
	}
	if got := config.Path(""); got != "/from/env.yml" {
		t.Errorf("Path(env) = %q", got)
	}
	t.Setenv("GAMECTL_CONFIG", "")
	if got := config.Path(""); !strings.HasSuffix(got, "config.yml") {
		t.Errorf("Path(default) = %q", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	cases := []struct{ in, want string }{
		{"~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, c := range cases {
		if got := config.ExpandHome(c.in); got != c.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestState_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yml")

	st, err := config.LoadState(path)
	if err != nil {
		t.Fatalf("LoadState missing: %v", err)
	}
	if st.SortOrder != "" {
		t.Errorf("zero state SortOrder = %q", st.SortOrder)
	}

	if err := config.SaveState(path, config.State{SortOrder: "desc"}); err != nil {
		t.Fatalf("SaveState: %v", err)
	}
	st, err = config.LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if st.SortOrder != "desc" {
		t.Errorf("SortOrder = %q, want desc", st.SortOrder)
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	if err := config.Validate(cfg); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.Log.Level = "loud"
	cfg.WishlistFile = cfg.GamesFile
	cfg.Journal.Suffix = "/log.txt"
	err := config.Validate(cfg)
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("Validate = %v, want ErrInvalid", err)
	}
	for _, key := range []string{"log.level", "games_file", "journal.suffix"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("log:\n  level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Load = %v, want ErrInvalid", err)
	}
}
