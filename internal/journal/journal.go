// Package journal keeps a free-text, append-only daily log per game.
package journal

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"
)

// DefaultSuffix is appended to the sanitized title to form a log file name.
const DefaultSuffix = "_log.txt"

// TimestampLayout formats the time prefix of each entry.
const TimestampLayout = "2006-01-02 15:04"

// Entry is one logged line.
type Entry struct {
	Timestamp string
	Text      string
}

// String renders the entry as it is stored on disk.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Timestamp, e.Text)
}

// Store reads and writes log files under a single directory.
type Store struct {
	dir    string
	suffix string
	now    func() time.Time
	log    zerolog.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New creates a Store rooted at dir. An empty suffix selects DefaultSuffix.
func New(dir, suffix string, opts ...Option) *Store {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	s := &Store{dir: dir, suffix: suffix, now: time.Now, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// FilenameFor returns the log path for title. Only letters, digits, spaces,
// hyphens and underscores survive; titles that sanitize to the same string
// share a file.
func (s *Store) FilenameFor(title string) string {
	return filepath.Join(s.dir, Sanitize(title)+s.suffix)
}

// Sanitize strips a title down to the characters allowed in a log file name.
func Sanitize(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Read returns the whole log for title, or "" when none exists yet.
func (s *Store) Read(title string) (string, error) {
	data, err := os.ReadFile(s.FilenameFor(title))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading log: %w", err)
	}
	return string(data), nil
}

// Append adds one timestamped line and syncs it to disk before returning.
func (s *Store) Append(title, text string) (Entry, error) {
	e := Entry{
		Timestamp: s.now().Format(TimestampLayout),
		Text:      flatten(text),
	}

	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return Entry{}, fmt.Errorf("create log dir: %w", err)
	}
	path := s.FilenameFor(title)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Entry{}, fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, e.String()); err != nil {
		return Entry{}, fmt.Errorf("writing log: %w", err)
	}
	if err := f.Sync(); err != nil {
		return Entry{}, fmt.Errorf("syncing log: %w", err)
	}
	s.log.Debug().Str("title", title).Str("path", path).Msg("log entry appended")
	return e, nil
}

// Overwrite replaces the full log for title. It is the only way to edit or
// remove existing entries.
func (s *Store) Overwrite(title, full string) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	path := s.FilenameFor(title)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, []byte(full), 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing log: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing log: %w", err)
	}
	s.log.Debug().Str("title", title).Int("bytes", len(full)).Msg("log overwritten")
	return nil
}

// Entries parses the log for title in file order. Lines that do not start
// with a bracketed timestamp are kept with an empty Timestamp.
func (s *Store) Entries(title string) ([]Entry, error) {
	f, err := os.Open(s.FilenameFor(title))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, parseLine(line))
	}
	return entries, sc.Err()
}

func parseLine(line string) Entry {
	if strings.HasPrefix(line, "[") {
		if end := strings.Index(line, "] "); end > 0 {
			return Entry{Timestamp: line[1:end], Text: line[end+2:]}
		}
		if strings.HasSuffix(line, "]") {
			return Entry{Timestamp: line[1 : len(line)-1]}
		}
	}
	return Entry{Text: line}
}

func flatten(text string) string {
	text = strings.TrimRight(text, "\r\n")
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
}
