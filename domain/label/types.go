package label

import (
	"errors"
	"strconv"
)

// FieldCount is the number of whitespace separated fields in one label record.
const FieldCount = 15

var (
	ErrLabelFileMissing = errors.New("label file missing")
	ErrLabelParse       = errors.New("label parse error")
	ErrIO               = errors.New("label io error")
)

// BoundingBox is one parsed label record. Values are copied around freely and
// never modified after Parse returns them.
type BoundingBox struct {
	Type string
	// Ordinal is the 1-based occurrence of Type within one label file. It is
	// display-only and not written back by Format.
	Ordinal          int
	Truncated        int
	Occluded         int
	ObservationAngle float64
	BBox2D           [4]float64 // x1, y1, x2, y2 in native image pixels
	Dimensions       [3]float64
	Position         [3]float64
	RotationY        float64
}

// DisplayName returns the on-screen caption, e.g. "Car 2".
func (b BoundingBox) DisplayName() string {
	return b.Type + " " + strconv.Itoa(b.Ordinal)
}
