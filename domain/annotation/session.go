// Package annotation holds the per-image annotation session: current image,
// its boxes and selection, and the question/answer/label writes.
package annotation

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/soocke/vqa-annotator/domain/dataset"
	"github.com/soocke/vqa-annotator/domain/geometry"
	"github.com/soocke/vqa-annotator/domain/label"
	"github.com/soocke/vqa-annotator/domain/settings"
)

// imageExt is appended to the filename key when resolving an image. It is
// fixed even though ScanImages also lists .png and .jpeg files.
const imageExt = ".jpg"

// ImageDecoder decodes a still image from disk into native-resolution pixels.
type ImageDecoder interface {
	Decode(path string) (image.Image, error)
}

// LabelStore is the subset of label.Repository the session uses.
type LabelStore interface {
	Load(key string) ([]label.BoundingBox, error)
	AppendBox(key string, box label.BoundingBox) error
}

// SettingsStore persists the last-used paths.
type SettingsStore interface {
	Load() settings.Record
	Save(settings.Record) error
}

// LabelStoreFactory builds the label store once the dataset paths are known.
type LabelStoreFactory func(sourceDir, outputDir string) LabelStore

// Direction selects the navigation step.
type Direction int

const (
	Next Direction = iota
	Prev
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// LoadResult describes a successfully displayed image.
type LoadResult struct {
	Key   string
	Index int
	Path  string
	Image image.Image
	Boxes int
	// Warning is set when the label file is missing; the image is shown
	// without boxes.
	Warning error
}

// Options configures a Session.
type Options struct {
	Decoder       ImageDecoder
	Settings      SettingsStore
	Labels        LabelStoreFactory
	DisplayWidth  int
	DisplayHeight int
	Logger        *slog.Logger
}

// Session owns all state of one annotation run. It is not safe for concurrent
// use; every call is expected on the UI event loop.
type Session struct {
	decoder   ImageDecoder
	settings  SettingsStore
	newLabels LabelStoreFactory
	logger    *slog.Logger

	datasetRoot string
	imageFolder string
	layout      dataset.Layout
	labels      LabelStore
	files       []string
	index       int

	key       string
	img       image.Image
	boxes     []label.BoundingBox
	selection geometry.Selection
	scale     geometry.Scale
	displayW  int
	displayH  int
}

// New returns an unstarted Session.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	newLabels := opts.Labels
	if newLabels == nil {
		newLabels = func(src, out string) LabelStore { return label.NewRepository(src, out, logger) }
	}
	return &Session{
		decoder:   opts.Decoder,
		settings:  opts.Settings,
		newLabels: newLabels,
		logger:    logger.With("session", uuid.NewString()),
		displayW:  opts.DisplayWidth,
		displayH:  opts.DisplayHeight,
	}
}

// Start validates the dataset root and image folder, scans the image list,
// creates the output directories and saves the paths. It returns the stored
// settings so callers can pre-fill the last file name.
func (s *Session) Start(datasetRoot, imageFolder string) (settings.Record, error) {
	datasetRoot = strings.TrimSpace(datasetRoot)
	imageFolder = strings.TrimSpace(imageFolder)
	if datasetRoot == "" || imageFolder == "" {
		return settings.Record{}, fmt.Errorf("%w: paths must not be empty", ErrPathValidation)
	}
	for _, p := range []string{datasetRoot, imageFolder} {
		fi, err := os.Stat(p)
		if err != nil || !fi.IsDir() {
			return settings.Record{}, fmt.Errorf("%w: %s", ErrPathValidation, p)
		}
	}
	files, err := dataset.ScanImages(imageFolder)
	if err != nil {
		return settings.Record{}, fmt.Errorf("%w: %v", ErrPathValidation, err)
	}
	if len(files) == 0 {
		return settings.Record{}, fmt.Errorf("%w: %s", ErrNoImages, imageFolder)
	}

	rec := settings.Record{DatasetRoot: datasetRoot, ImageFolder: imageFolder}
	if s.settings != nil {
		rec.LastFileName = s.settings.Load().LastFileName
		if err := s.settings.Save(rec); err != nil {
			s.logger.Warn("settings save failed", "error", err)
		}
	}

	layout := dataset.NewLayout(datasetRoot)
	if err := layout.EnsureDirs(); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrIO, err)
	}

	s.datasetRoot = datasetRoot
	s.imageFolder = imageFolder
	s.layout = layout
	s.labels = s.newLabels(datasetRoot, layout.Dir(dataset.LabelsDir))
	s.files = files
	s.index = 0
	s.unload()
	s.logger.Info("session started", "dataset", datasetRoot, "images", imageFolder, "files", len(files))
	return rec, nil
}

// LoadImage displays the image named by key, replacing the current boxes and
// clearing the selection. A missing label file is reported as
// LoadResult.Warning. A label parse error is returned together with a valid
// result: the image is displayed with zero boxes.
func (s *Session) LoadImage(key string) (LoadResult, error) {
	if s.files == nil {
		return LoadResult{}, ErrNotStarted
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return LoadResult{}, ErrEmptyFilename
	}
	path := filepath.Join(s.imageFolder, key+imageExt)
	if _, err := os.Stat(path); err != nil {
		return LoadResult{}, fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}
	idx := s.indexOf(path)
	if idx < 0 {
		return LoadResult{}, fmt.Errorf("%w: %s", ErrImageNotInList, path)
	}
	// The key names the output files, so it must be the listed file's own
	// basename. Join cleans "../images/a" onto a listed path.
	if dataset.Key(s.files[idx]) != key {
		return LoadResult{}, fmt.Errorf("%w: key %q is not a bare file name", ErrImageNotInList, key)
	}
	s.index = idx

	img, err := s.decoder.Decode(path)
	if err != nil || img == nil {
		return LoadResult{}, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}

	s.unload()
	s.key = key
	s.img = img
	s.rescale()

	res := LoadResult{Key: key, Index: idx, Path: path, Image: img}
	var loadErr error
	boxes, err := s.labels.Load(key)
	switch {
	case err == nil:
		s.boxes = boxes
	case errors.Is(err, ErrLabelFileMissing):
		res.Warning = err
		s.logger.Warn("label file missing", "key", key, "error", err)
	default:
		loadErr = err
		s.logger.Error("label load failed", "key", key, "error", err)
	}
	res.Boxes = len(s.boxes)

	s.saveLastFile(key)
	s.logger.Info("image loaded", "key", key, "index", idx, "boxes", res.Boxes)
	return res, loadErr
}

// Navigate moves the current index one step with wraparound and loads the
// image at the new position. The index advances even when that load fails.
func (s *Session) Navigate(dir Direction) (LoadResult, error) {
	n := len(s.files)
	if n == 0 {
		return LoadResult{}, ErrEmptyFileList
	}
	step := 1
	if dir == Prev {
		step = -1
	}
	s.index = ((s.index+step)%n + n) % n
	s.logger.Debug("navigate", "dir", dir.String(), "index", s.index)
	return s.LoadImage(dataset.Key(s.files[s.index]))
}

// ToggleAt toggles the first box under the display-space point (x, y). It
// returns the box index and whether it is selected afterwards; ok is false
// when no box was hit and the selection is unchanged.
func (s *Session) ToggleAt(x, y float64) (idx int, selected bool, ok bool) {
	if s.img == nil {
		return -1, false, false
	}
	idx, ok = geometry.HitTest(geometry.Point{X: x, Y: y}, s.boxes, s.scale)
	if !ok {
		return -1, false, false
	}
	selected = s.selection.Toggle(idx)
	s.logger.Debug("box toggled", "box", s.boxes[idx].DisplayName(), "selected", selected)
	return idx, selected, true
}

// SaveAnnotation writes the question and answer files for the current image,
// then appends every selected box in selection order. Appends stop at the
// first failure; n reports how many boxes were written.
func (s *Session) SaveAnnotation(question, answer string) (n int, err error) {
	if s.key == "" {
		return 0, ErrEmptyFilename
	}
	if s.selection.Len() == 0 {
		return 0, ErrNoSelection
	}
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return 0, ErrEmptyQuestion
	}
	if answer == "" {
		return 0, ErrEmptyAnswer
	}

	if err := dataset.WriteFileAtomic(s.layout.QuestionPath(s.key), []byte(question+"\n")); err != nil {
		return 0, fmt.Errorf("%w: write question: %v", ErrIO, err)
	}
	if err := dataset.WriteFileAtomic(s.layout.AnswerPath(s.key), []byte(answer+"\n")); err != nil {
		return 0, fmt.Errorf("%w: write answer: %v", ErrIO, err)
	}

	sel := s.selection.Indices()
	for _, i := range sel {
		if err := s.labels.AppendBox(s.key, s.boxes[i]); err != nil {
			s.logger.Error("label append failed", "key", s.key, "appended", n, "selected", len(sel), "error", err)
			return n, fmt.Errorf("%w: appended %d of %d boxes: %w", ErrIO, n, len(sel), err)
		}
		n++
	}
	s.logger.Info("annotation saved", "key", s.key, "boxes", n)
	return n, nil
}

// Resize updates the display surface size and recomputes the scale.
func (s *Session) Resize(width, height int) {
	s.displayW, s.displayH = width, height
	s.rescale()
}

func (s *Session) rescale() {
	if s.img == nil {
		return
	}
	b := s.img.Bounds()
	sc, err := geometry.ComputeScale(b.Dx(), b.Dy(), s.displayW, s.displayH)
	if err != nil {
		s.logger.Warn("scale not updated", "error", err)
		return
	}
	s.scale = sc
}

func (s *Session) unload() {
	s.key = ""
	s.img = nil
	s.boxes = nil
	s.selection.Clear()
	s.scale = geometry.Scale{}
}

func (s *Session) indexOf(path string) int {
	for i, f := range s.files {
		if f == path {
			return i
		}
	}
	return -1
}

func (s *Session) saveLastFile(key string) {
	if s.settings == nil {
		return
	}
	rec := settings.Record{DatasetRoot: s.datasetRoot, ImageFolder: s.imageFolder, LastFileName: key}
	if err := s.settings.Save(rec); err != nil {
		s.logger.Warn("settings save failed", "error", err)
	}
}

// Key returns the current filename key, empty when no image is displayed.
func (s *Session) Key() string { return s.key }

// Index returns the current position in the file list.
func (s *Session) Index() int { return s.index }

// Files returns a copy of the ordered image list.
func (s *Session) Files() []string {
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

// Image returns the decoded native image, or nil.
func (s *Session) Image() image.Image { return s.img }

// Boxes returns a copy of the loaded boxes in load order.
func (s *Session) Boxes() []label.BoundingBox {
	out := make([]label.BoundingBox, len(s.boxes))
	copy(out, s.boxes)
	return out
}

// Selected reports whether box i is selected.
func (s *Session) Selected(i int) bool { return s.selection.Contains(i) }

// SelectedIndices returns the selection in selection order.
func (s *Session) SelectedIndices() []int { return s.selection.Indices() }

// Scale returns the current display/native ratio.
func (s *Session) Scale() geometry.Scale { return s.scale }

// DisplaySize returns the display surface size used for scaling.
func (s *Session) DisplaySize() (int, int) { return s.displayW, s.displayH }
