// Package mru implements the most-recently-used file store.
//
// The store is a newline-delimited text file holding one absolute path per
// line, most recent first. The file is the only state: every call reads it,
// and every mutation rewrites it atomically.
package mru

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/donghojung/mru/internal/constants"
	"github.com/donghojung/mru/internal/fileutil"
	"github.com/donghojung/mru/internal/logging"
)

// Config holds the store location and capacity.
type Config struct {
	Path       string
	MaxEntries int
}

// Store is a file-backed MRU list of absolute paths.
type Store struct {
	path       string
	maxEntries int
}

// New creates a store. A non-positive MaxEntries uses the default capacity.
func New(cfg Config) *Store {
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = constants.DefaultMaxEntries
	}
	return &Store{
		path:       cfg.Path,
		maxEntries: maxEntries,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// MaxEntries returns the capacity.
func (s *Store) MaxEntries() int {
	return s.maxEntries
}

// Ensure creates the backing file and its directory if missing.
func (s *Store) Ensure() error {
	if err := fileutil.EnsureFile(s.path); err != nil {
		return ioError("ensure", s.path, err)
	}
	return nil
}

// Drop deletes the backing file. A missing file is not an error.
func (s *Store) Drop() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return ioError("clean", s.path, err)
	}
	logging.Debug("store removed: %s", s.path)
	return nil
}

// Insert promotes path to the head of the store, adding it if absent.
// The path is resolved to its canonical absolute form, which is returned.
func (s *Store) Insert(path string) (string, error) {
	canonical, err := Canonical(path)
	if err != nil {
		return "", err
	}

	entries, err := s.Entries()
	if err != nil {
		return "", err
	}

	entries = promote(entries, canonical, s.maxEntries)
	if err := s.write("insert", entries); err != nil {
		return "", err
	}

	logging.Debug("inserted %s (%d entries)", canonical, len(entries))
	return canonical, nil
}

// Validate drops entries whose file no longer exists, trims the rest to the
// capacity and returns how many were removed. Survivors keep their relative
// order.
func (s *Store) Validate() (int, error) {
	entries, err := s.Entries()
	if err != nil {
		return 0, err
	}

	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if fileutil.IsRegularFile(e) {
			kept = append(kept, e)
		}
	}
	if len(kept) > s.maxEntries {
		kept = kept[:s.maxEntries]
	}

	if err := s.write("validate", kept); err != nil {
		return 0, err
	}

	dropped := len(entries) - len(kept)
	logging.Debug("validate: kept %d, dropped %d", len(kept), dropped)
	return dropped, nil
}

// Peek returns the first n entries and whether more exist beyond them.
// A non-positive n uses the preview window size.
func (s *Store) Peek(n int) ([]string, bool, error) {
	if n <= 0 {
		n = constants.PreviewEntries
	}

	var head []string
	more := false
	err := s.scan("peek", func(line string) bool {
		if len(head) == n {
			more = true
			return false
		}
		head = append(head, line)
		return true
	})
	if err != nil {
		return nil, false, err
	}
	return head, more, nil
}

// Entries returns the full store, most recent first.
// A missing backing file reads as an empty store.
func (s *Store) Entries() ([]string, error) {
	var entries []string
	err := s.scan("read", func(line string) bool {
		entries = append(entries, line)
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// scan streams entries to fn in store order until fn returns false.
// Blank lines are skipped and repeated paths are reported once.
func (s *Store) scan(op string, fn func(line string) bool) error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return ioError(op, s.path, err)
	}
	defer func() { _ = f.Close() }()

	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		if !fn(line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return ioError(op, s.path, err)
	}
	return nil
}

// write replaces the store with entries.
func (s *Store) write(op string, entries []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil { //nolint:gosec // G301: standard directory permissions
		return ioError(op, s.path, err)
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e)
		sb.WriteByte('\n')
	}

	if err := fileutil.WriteFileAtomic(s.path, []byte(sb.String()), 0644); err != nil {
		return ioError(op, s.path, err)
	}
	return nil
}

// promote removes any exact occurrence of path, puts it first, and caps
// the result at maxEntries.
func promote(entries []string, path string, maxEntries int) []string {
	result := make([]string, 0, len(entries)+1)
	result = append(result, path)
	for _, e := range entries {
		if e != path {
			result = append(result, e)
		}
	}
	if len(result) > maxEntries {
		result = result[:maxEntries]
	}
	return result
}

// Canonical resolves path to an absolute, symlink-free form and checks that
// it names an existing regular file.
func Canonical(path string) (string, error) {
	if path == "" || strings.ContainsAny(path, "\n\r") {
		return "", InvalidArgumentError("unsupported path %q", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ioError("resolve", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", NotFoundError(abs)
		}
		return "", ioError("resolve", abs, fmt.Errorf("failed to resolve symlinks: %w", err))
	}

	if !fileutil.IsRegularFile(resolved) {
		return "", NotFoundError(abs)
	}
	return resolved, nil
}
