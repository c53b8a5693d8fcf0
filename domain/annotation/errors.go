package annotation

import (
	"errors"

	"github.com/soocke/vqa-annotator/domain/label"
)

// Validation errors abort only the current action; the session stays usable.
var (
	ErrPathValidation = errors.New("dataset or image folder path invalid")
	ErrNoImages       = errors.New("no image files found")
	ErrEmptyFilename  = errors.New("file name must not be empty")
	ErrImageNotFound  = errors.New("image file not found")
	ErrImageNotInList = errors.New("image is not in the file list")
	ErrImageDecode    = errors.New("image decode failed")
	ErrNoSelection    = errors.New("no bounding box selected")
	ErrEmptyQuestion  = errors.New("question must not be empty")
	ErrEmptyAnswer    = errors.New("answer must not be empty")
	ErrEmptyFileList  = errors.New("no images to navigate")
	ErrNotStarted     = errors.New("session not started")
)

// Label errors are shared with the label package so errors.Is works across layers.
var (
	ErrLabelFileMissing = label.ErrLabelFileMissing
	ErrLabelParse       = label.ErrLabelParse
	ErrIO               = label.ErrIO
)
