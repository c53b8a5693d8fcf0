// Package geometry maps label boxes between native image space and the
// display surface and resolves clicks to boxes.
package geometry

import (
	"errors"
	"fmt"

	"github.com/soocke/vqa-annotator/domain/label"
)

var ErrInvalidSize = errors.New("invalid image size")

// Scale holds the per-axis display/native ratio. Aspect ratio is not kept:
// the image is stretched to the fixed display surface.
type Scale struct {
	X, Y float64
}

// Point is a display-space position.
type Point struct {
	X, Y float64
}

// Rect is an axis aligned rectangle given by its two corners.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Contains reports whether p lies inside r. All four edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return r.X1 <= p.X && p.X <= r.X2 && r.Y1 <= p.Y && p.Y <= r.Y2
}

// ComputeScale returns display/native per axis.
func ComputeScale(nativeW, nativeH, displayW, displayH int) (Scale, error) {
	if nativeW <= 0 || nativeH <= 0 {
		return Scale{}, fmt.Errorf("%w: native %dx%d", ErrInvalidSize, nativeW, nativeH)
	}
	if displayW <= 0 || displayH <= 0 {
		return Scale{}, fmt.Errorf("%w: display %dx%d", ErrInvalidSize, displayW, displayH)
	}
	return Scale{
		X: float64(displayW) / float64(nativeW),
		Y: float64(displayH) / float64(nativeH),
	}, nil
}

// ToDisplaySpace scales the box's 2D rectangle: even indices by s.X, odd by s.Y.
func ToDisplaySpace(b label.BoundingBox, s Scale) Rect {
	var c [4]float64
	for i, v := range b.BBox2D {
		if i%2 == 0 {
			c[i] = v * s.X
		} else {
			c[i] = v * s.Y
		}
	}
	return Rect{X1: c[0], Y1: c[1], X2: c[2], Y2: c[3]}
}

// ToNativeSpace is the inverse of ToDisplaySpace.
func ToNativeSpace(r Rect, s Scale) Rect {
	if s.X == 0 || s.Y == 0 {
		return Rect{}
	}
	return Rect{X1: r.X1 / s.X, Y1: r.Y1 / s.Y, X2: r.X2 / s.X, Y2: r.Y2 / s.Y}
}

// HitTest returns the index of the first box in load order whose display
// rectangle contains p. Overlaps resolve to the earlier box.
func HitTest(p Point, boxes []label.BoundingBox, s Scale) (int, bool) {
	for i, b := range boxes {
		if ToDisplaySpace(b, s).Contains(p) {
			return i, true
		}
	}
	return -1, false
}
