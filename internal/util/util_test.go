package util_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/gamectl/internal/util"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.csv")
	dst := filepath.Join(dir, "sub", "dst.csv")

	if err := os.WriteFile(src, []byte("게임명\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := util.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile dst: %v", err)
	}
	if string(got) != "게임명\n" {
		t.Errorf("CopyFile content = %q", string(got))
	}
}

func TestCopyFile_MissingSrc(t *testing.T) {
	err := util.CopyFile("/no/src.txt", t.TempDir()+"/dst.txt")
	if err == nil {
		t.Error("expected error copying missing file, got nil")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b", "c")
	if err := util.EnsureDir(nested); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	fi, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("Stat after EnsureDir: %v", err)
	}
	if !fi.IsDir() {
		t.Error("EnsureDir path is not a directory")
	}
}

func TestBackupFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "games.csv")
	if err := os.WriteFile(src, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	dst, err := util.BackupFile(src, now)
	if err != nil {
		t.Fatalf("BackupFile: %v", err)
	}
	if !strings.HasSuffix(dst, "games.csv.20261018-093000.bak") {
		t.Errorf("backup path = %q", dst)
	}
	got, _ := os.ReadFile(dst)
	if string(got) != "data" {
		t.Errorf("backup content = %q", got)
	}
}

func TestBackupFile_Missing(t *testing.T) {
	dst, err := util.BackupFile(filepath.Join(t.TempDir(), "none.csv"), time.Now())
	if err != nil || dst != "" {
		t.Errorf("BackupFile(missing) = %q, %v; want \"\", nil", dst, err)
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if util.IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
