// Package dataset lists the images of a dataset and resolves the output
// directories that annotations are written to.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Output directory names, created next to the dataset root.
const (
	QuestionsDir = "Questions"
	AnswersDir   = "Answers"
	LabelsDir    = "Labels"
)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// IsImage reports whether name has a .png, .jpg or .jpeg extension, ignoring case.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// ScanImages returns the image files directly inside dir as full paths,
// sorted lexicographically.
func ScanImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Key returns the filename key of path: its base name without extension.
func Key(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Layout resolves Questions/Answers/Labels under the parent of the dataset root.
type Layout struct {
	Base string
}

// NewLayout returns the output layout for datasetRoot.
func NewLayout(datasetRoot string) Layout {
	return Layout{Base: filepath.Dir(filepath.Clean(datasetRoot))}
}

func (l Layout) Dir(name string) string { return filepath.Join(l.Base, name) }

func (l Layout) QuestionPath(key string) string {
	return filepath.Join(l.Base, QuestionsDir, key+".txt")
}

func (l Layout) AnswerPath(key string) string {
	return filepath.Join(l.Base, AnswersDir, key+".txt")
}

// EnsureDirs creates the three output directories if missing.
func (l Layout) EnsureDirs() error {
	for _, name := range []string{QuestionsDir, AnswersDir, LabelsDir} {
		if err := os.MkdirAll(l.Dir(name), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
	}
	return nil
}

// WriteFileAtomic replaces path with data via a temporary file in the same
// directory, creating the directory when needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		_ = os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}
