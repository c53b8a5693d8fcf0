package images

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// OverlayBox is one display-space rectangle with its caption.
type OverlayBox struct {
	Rect    image.Rectangle
	Caption string
	Outline color.Color
	Text    color.Color
}

const (
	outlineWidth = 2
	captionInset = 10
)

// RenderOverlay draws the boxes onto a copy of base and returns it.
func RenderOverlay(base image.Image, boxes []OverlayBox) *image.NRGBA {
	if base == nil {
		return nil
	}
	b := base.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), base, b.Min, draw.Src)
	for _, ob := range boxes {
		drawOutline(dst, ob.Rect, ob.Outline)
		drawCaption(dst, ob.Rect.Min, ob.Caption, ob.Text)
	}
	return dst
}

func drawOutline(dst draw.Image, r image.Rectangle, c color.Color) {
	if c == nil {
		c = color.NRGBA{R: 255, A: 255}
	}
	r = r.Canon()
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Min.Y+outlineWidth),
		image.Rect(r.Min.X, r.Max.Y-outlineWidth+1, r.Max.X+1, r.Max.Y+1),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+outlineWidth, r.Max.Y+1),
		image.Rect(r.Max.X-outlineWidth+1, r.Min.Y, r.Max.X+1, r.Max.Y+1),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
	}
}

func drawCaption(dst draw.Image, at image.Point, text string, c color.Color) {
	if text == "" {
		return
	}
	if c == nil {
		c = color.NRGBA{R: 255, G: 255, A: 255}
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(at.X+captionInset, at.Y+captionInset+face.Ascent),
	}
	d.DrawString(text)
}
