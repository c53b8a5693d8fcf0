package view

import (
	"image"

	"github.com/soocke/vqa-annotator/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImageCanvas shows the rendered image with its box overlay and reports clicks
// in display coordinates.
type ImageCanvas interface {
	Show(img image.Image)
}

type imageCanvas struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image, deleted on replacement
}

// NewImageCanvas creates the canvas label inside parent at row and binds
// left clicks to onClick.
func NewImageCanvas(parent *ToplevelWidget, row int, onClick func(x, y float64)) ImageCanvas {
	placeholder := image.NewRGBA(image.Rect(0, 0, 320, 180))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	// No inset, so event coordinates are image pixels.
	lbl := parent.Label(Image(photo), Borderwidth(0), Padx(0), Pady(0), Highlightthickness(0), Anchor("nw"))
	Grid(lbl, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("1m"), Pady("1m"))
	Bind(lbl, "<Button-1>", Command(func(e *Event) {
		if onClick != nil {
			onClick(float64(e.X), float64(e.Y))
		}
	}))
	return &imageCanvas{label: lbl, prevPhoto: photo}
}

func (v *imageCanvas) Show(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}
