package records

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrSave is wrapped by every SaveError.
var ErrSave = errors.New("could not save data file")

// SaveError reports a failed write. The previous file on disk is untouched.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() []error {
	return []error{ErrSave, e.Err}
}

// Marshal encodes a table as UTF-8 with a byte order mark: the header line
// followed by every row in table order.
func Marshal(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(enc)

	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}
	rec := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			rec[i] = row.Get(col)
		}
		if len(rec) == 1 && rec[0] == "" {
			// A bare empty line would be skipped on load.
			w.Flush()
			if _, err := io.WriteString(enc, "\"\"\n"); err != nil {
				return nil, fmt.Errorf("encoding row: %w", err)
			}
			continue
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("encoding row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encoding table: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding table: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes t to path, replacing any existing file. The data is written to
// a temporary file in the same directory first and renamed into place.
func Save(path string, t *Table) error {
	return SaveAll(Pending{Path: path, Table: t})
}

// Pending is one table waiting to be written by SaveAll.
type Pending struct {
	Path  string
	Table *Table
}

// rename is swapped in tests to fail partway through a batch.
var rename = os.Rename

// SaveAll writes several tables so that either every file is replaced or none
// is. Each existing target is kept as a hard link (or copy) until the whole
// batch has been renamed into place; if a rename fails, the targets already
// replaced are put back.
func SaveAll(batch ...Pending) error {
	temps := make([]string, 0, len(batch))
	cleanup := func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}

	for _, p := range batch {
		tmp, err := writeTemp(p.Path, p.Table)
		if err != nil {
			cleanup()
			return &SaveError{Path: p.Path, Err: err}
		}
		temps = append(temps, tmp)
	}

	stamp := time.Now().Format("20060102-150405.000000000")
	backups := make([]string, len(batch))
	dropBackups := func() {
		for _, b := range backups {
			if b != "" {
				_ = os.Remove(b)
			}
		}
	}
	for i, p := range batch {
		b, err := backupTarget(p.Path, stamp)
		if err != nil {
			dropBackups()
			cleanup()
			return &SaveError{Path: p.Path, Err: err}
		}
		backups[i] = b
	}

	for i, p := range batch {
		if err := rename(temps[i], p.Path); err != nil {
			temps = temps[i:]
			cleanup()
			if rerr := restore(batch[:i], backups[:i]); rerr != nil {
				// Backups that could not be put back stay on disk.
				backups = backups[i:]
				dropBackups()
				return &SaveError{Path: p.Path, Err: errors.Join(err, rerr)}
			}
			dropBackups()
			return &SaveError{Path: p.Path, Err: err}
		}
	}
	dropBackups()
	return nil
}

// backupTarget keeps the current content of path under path.bak-<stamp>.
// It returns "" when there is nothing to keep.
func backupTarget(path, stamp string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s is not a regular file", path)
	}
	b := path + ".bak-" + stamp
	if err := os.Link(path, b); err == nil {
		return b, nil
	}
	if err := copyFile(path, b, info.Mode().Perm()); err != nil {
		_ = os.Remove(b)
		return "", fmt.Errorf("backing up: %w", err)
	}
	return b, nil
}

// restore undoes the renames already done for batch.
func restore(batch []Pending, backups []string) error {
	var errs []error
	for i, p := range batch {
		if backups[i] == "" {
			if err := os.Remove(p.Path); err != nil && !os.IsNotExist(err) {
				errs = append(errs, err)
			}
			continue
		}
		if err := os.Rename(backups[i], p.Path); err != nil {
			errs = append(errs, err)
			continue
		}
		backups[i] = ""
	}
	return errors.Join(errs...)
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func writeTemp(path string, t *Table) (string, error) {
	data, err := Marshal(t)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()

	// CreateTemp uses 0600; keep the mode of the file being replaced.
	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("chmod temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return tmpPath, nil
}
