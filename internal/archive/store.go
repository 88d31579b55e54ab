// Package archive keeps accepted contact submissions on disk, one JSON
// file per submission.
package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"websakha/internal/jsonutil"
)

const (
	// DirEnv overrides the archive directory (for testing).
	DirEnv = "WEBSAKHA_ARCHIVE_DIR"
	// DefaultBase is the archive location under the user's home.
	DefaultBase = ".websakha/submissions"
)

// Store reads and writes records under a base directory.
// Layout: <base>/<id>.json
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir. An empty dir falls back to
// $WEBSAKHA_ARCHIVE_DIR, then to the user's home + DefaultBase.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = os.Getenv(DirEnv)
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, DefaultBase)
	}
	return &Store{baseDir: dir}, nil
}

// BaseDir returns the directory records are written to.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the file for a record id.
func (s *Store) Path(id string) string {
	return filepath.Join(s.baseDir, normalize(id)+".json")
}

func normalize(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	return strings.NewReplacer("/", "-", "\\", "-", " ", "-", "..", "-").Replace(id)
}

// Save writes v as the record id. The file is written next to its final
// name and renamed, so readers never see a partial record.
func (s *Store) Save(id string, v any) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("archive: empty id")
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("archive: create dir: %w", err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("archive: encode %s: %w", id, err)
	}
	tmp, err := os.CreateTemp(s.baseDir, ".record-*")
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("archive: write %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("archive: %w", err)
	}
	return os.Rename(tmp.Name(), s.Path(id))
}

// Load reads the record id into v.
func (s *Store) Load(id string, v any) error {
	b, err := os.ReadFile(s.Path(id))
	if err != nil {
		return err
	}
	return jsonutil.UnmarshalWithContext(b, v, "archive: decode "+id)
}

// IDs lists stored record ids in lexical order. A missing directory is
// an empty archive.
func (s *Store) IDs() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != ".json" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}
