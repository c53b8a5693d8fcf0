package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDir = "vqa-annotator"

// Record is the last-used paths snapshot persisted between runs.
type Record struct {
	DatasetRoot  string `json:"rope3d_path"`
	ImageFolder  string `json:"image_folder"`
	LastFileName string `json:"last_file_name"`
}

// Store loads and saves a Record at Path.
type Store struct {
	Path   string
	Logger *slog.Logger
}

// DefaultPath returns settings.json under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, "settings.json")
}

func NewStore(path string, logger *slog.Logger) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path, Logger: logger}
}

// Load returns the stored record. A missing, empty or corrupt file yields the
// zero Record; corruption is logged, never returned.
func (s *Store) Load() Record {
	var rec Record
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.warn("settings read failed", err)
		}
		return Record{}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Record{}
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		s.warn("settings corrupt, using defaults", err)
		return Record{}
	}
	return rec
}

// Save overwrites the settings file with rec.
func (s *Store) Save(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

func (s *Store) warn(msg string, err error) {
	if s.Logger != nil {
		s.Logger.Warn(msg, "path", s.Path, "error", err)
	}
}
