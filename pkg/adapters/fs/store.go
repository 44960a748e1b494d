// Package fs persists serialized navigation state on the local filesystem:
// one live state file written atomically, plus named snapshots alongside it.
package fs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const (
	// StateFileName is the file the live navigation state is persisted to.
	StateFileName = "state.nav"
	// SnapshotExt is the extension used for named snapshots.
	SnapshotExt = ".nav"
)

// Store persists serialized navigation state under a directory. Methods are
// safe to call before the directory exists; it is created on first write.
type Store struct {
	Dir    string
	Logger *slog.Logger
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{Dir: dir, Logger: logger}
}

func (s *Store) statePath() string {
	return filepath.Join(s.Dir, StateFileName)
}

// Save writes the serialized state atomically to the live state file.
func (s *Store) Save(state string) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	return writeFileAtomic(s.statePath(), []byte(state), 0644)
}

// Load reads the persisted state. A missing file yields an empty string and
// no error, so consumers can start fresh.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.statePath())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read state: %w", err)
	}
	return string(data), nil
}

// SaveSnapshot stores state under a named snapshot file next to the live
// state. Names must not contain path separators.
func (s *Store) SaveSnapshot(name, state string) error {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid snapshot name: %q", name)
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	return writeFileAtomic(filepath.Join(s.Dir, name+SnapshotExt), []byte(state), 0644)
}

// LoadSnapshot reads a named snapshot. Unlike Load, a missing snapshot is an
// error: the caller asked for it explicitly.
func (s *Store) LoadSnapshot(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name+SnapshotExt))
	if err != nil {
		return "", fmt.Errorf("read snapshot %s: %w", name, err)
	}
	return string(data), nil
}

// ListSnapshots returns snapshot names matching the glob pattern, sorted.
// An empty pattern matches everything.
func (s *Store) ListSnapshots(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	var names []string
	for _, de := range entries {
		if de.IsDir() || de.Name() == StateFileName || !strings.HasSuffix(de.Name(), SnapshotExt) {
			continue
		}
		name := strings.TrimSuffix(de.Name(), SnapshotExt)
		match, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if match {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Prune removes snapshots that are not in the 'keep' set.
func (s *Store) Prune(keep map[string]bool) error {
	names, err := s.ListSnapshots("*")
	if err != nil {
		return err
	}
	for _, name := range names {
		if keep[name] {
			continue
		}
		if err := os.Remove(filepath.Join(s.Dir, name+SnapshotExt)); err != nil {
			return fmt.Errorf("prune snapshot %s: %w", name, err)
		}
		s.Logger.Debug("pruned snapshot", "name", name)
	}
	return nil
}
