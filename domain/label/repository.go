package label

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Repository reads source labels from SourceDir and appends confirmed boxes
// to per-image files under OutputDir. Both are keyed by filename key.
type Repository struct {
	SourceDir string
	OutputDir string
	Logger    *slog.Logger
}

// NewRepository returns a Repository for the given directories.
func NewRepository(sourceDir, outputDir string, logger *slog.Logger) *Repository {
	return &Repository{SourceDir: sourceDir, OutputDir: outputDir, Logger: logger}
}

// SourcePath returns the label file read by Load for key.
func (r *Repository) SourcePath(key string) string {
	return filepath.Join(r.SourceDir, key+".txt")
}

// OutputPath returns the label file written by AppendBox for key.
func (r *Repository) OutputPath(key string) string {
	return filepath.Join(r.OutputDir, key+".txt")
}

// Load parses the source label file for key. A file that exists but holds no
// valid record yields an empty slice.
func (r *Repository) Load(key string) ([]BoundingBox, error) {
	path := r.SourcePath(key)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLabelFileMissing, path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer f.Close()
	boxes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if r.Logger != nil {
		r.Logger.Debug("labels loaded", "path", path, "boxes", len(boxes))
	}
	return boxes, nil
}

// AppendBox appends the serialized box as a new line. Earlier lines are never
// rewritten, so saving the same box twice produces two lines.
func (r *Repository) AppendBox(key string, box BoundingBox) error {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	path := r.OutputPath(key)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := f.WriteString(Format(box) + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrIO, path, err)
	}
	return nil
}
