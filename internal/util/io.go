package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

func CopyFile(src, dst string) error {
	if err := EnsureDir(filepath.Dir(dst)); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// BackupFile copies path to "<path>.<stamp>.bak" next to it and returns the
// backup path. A missing source is not an error and returns "".
func BackupFile(path string, now time.Time) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	dst := fmt.Sprintf("%s.%s.bak", path, now.Format("20060102-150405"))
	if err := CopyFile(path, dst); err != nil {
		return "", fmt.Errorf("backing up %s: %w", filepath.Base(path), err)
	}
	return dst, nil
}
