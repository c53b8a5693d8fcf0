package presenter

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/soocke/vqa-annotator/domain/annotation"
	"github.com/soocke/vqa-annotator/domain/geometry"
	"github.com/soocke/vqa-annotator/domain/label"
	"github.com/soocke/vqa-annotator/domain/settings"
	"github.com/soocke/vqa-annotator/ui/images"
)

// Controller is the session surface the presenter drives.
type Controller interface {
	Start(datasetRoot, imageFolder string) (settings.Record, error)
	LoadImage(key string) (annotation.LoadResult, error)
	Navigate(dir annotation.Direction) (annotation.LoadResult, error)
	ToggleAt(x, y float64) (idx int, selected bool, ok bool)
	SaveAnnotation(question, answer string) (int, error)
	Resize(width, height int)

	Key() string
	Index() int
	Files() []string
	Image() image.Image
	Boxes() []label.BoundingBox
	Selected(i int) bool
	Scale() geometry.Scale
	DisplaySize() (int, int)
}

// AnnotationView is the UI surface updated by the presenter.
type AnnotationView interface {
	OpenAnnotation(lastFileName string)
	SetFileName(key string)
	ClearText()
	ShowImage(img image.Image)
}

// Notifier receives user-facing messages.
type Notifier interface {
	Info(text string)
	Warn(text string)
	Error(text string)
}

// BoxColors styles the overlay.
type BoxColors struct {
	Outline  color.Color
	Selected color.Color
	Caption  color.Color
}

// DefaultBoxColors draws red boxes that turn yellow when selected.
var DefaultBoxColors = BoxColors{
	Outline:  color.NRGBA{R: 255, A: 255},
	Selected: color.NRGBA{R: 255, G: 255, A: 255},
	Caption:  color.NRGBA{R: 255, G: 255, A: 255},
}

// AnnotationPresenter translates view actions into session calls and renders
// the result. All methods run on the UI thread.
type AnnotationPresenter struct {
	ctrl   Controller
	view   AnnotationView
	notify Notifier
	colors BoxColors
	logger *slog.Logger

	// stretched image for baseKey; reused across selection redraws
	base    *image.NRGBA
	baseKey string
}

func NewAnnotationPresenter(ctrl Controller, view AnnotationView, notify Notifier, colors BoxColors, logger *slog.Logger) *AnnotationPresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnnotationPresenter{ctrl: ctrl, view: view, notify: notify, colors: colors, logger: logger}
}

// Dispatch executes a. Errors are reported to the notifier and returned.
func (p *AnnotationPresenter) Dispatch(a Action) error {
	if p == nil || p.ctrl == nil || p.view == nil {
		return nil
	}
	p.logger.Debug("dispatch", "action", a.Kind.String())
	var err error
	switch a.Kind {
	case ActionStart:
		err = p.start(a.DatasetRoot, a.ImageFolder)
	case ActionLoad:
		err = p.loaded(p.ctrl.LoadImage(a.Key))
	case ActionNext, ActionPrev:
		dir := annotation.Next
		if a.Kind == ActionPrev {
			dir = annotation.Prev
		}
		res, nerr := p.ctrl.Navigate(dir)
		// A failed load leaves the previous image current; saves still target it.
		if nerr != nil && res.Image == nil && p.ctrl.Key() != "" {
			nerr = fmt.Errorf("%w; still showing %s", nerr, p.ctrl.Key())
		}
		err = p.loaded(res, nerr)
	case ActionClick:
		if _, _, ok := p.ctrl.ToggleAt(a.X, a.Y); ok {
			p.render()
		}
	case ActionSave:
		err = p.save(a.Question, a.Answer)
	case ActionResize:
		p.ctrl.Resize(a.Width, a.Height)
		p.base = nil
		p.render()
	default:
		err = fmt.Errorf("unknown action %v", a.Kind)
	}
	if err != nil {
		p.logger.Warn("action failed", "action", a.Kind.String(), "error", err)
		if p.notify != nil {
			p.notify.Error(err.Error())
		}
	}
	return err
}

func (p *AnnotationPresenter) start(datasetRoot, imageFolder string) error {
	rec, err := p.ctrl.Start(datasetRoot, imageFolder)
	if err != nil {
		return err
	}
	p.base, p.baseKey = nil, ""
	p.view.OpenAnnotation(rec.LastFileName)
	if p.notify != nil {
		p.notify.Info(fmt.Sprintf("%d images in %s", len(p.ctrl.Files()), filepath.Base(imageFolder)))
	}
	return nil
}

// loaded reflects a load or navigate result. A result carrying an image is
// displayed even when err is set (label parse failure).
func (p *AnnotationPresenter) loaded(res annotation.LoadResult, err error) error {
	if res.Image != nil {
		p.view.SetFileName(res.Key)
		p.view.ClearText()
		p.base = nil
		p.render()
	}
	if err != nil {
		return err
	}
	if p.notify == nil {
		return nil
	}
	if res.Warning != nil {
		p.notify.Warn("no label file for " + res.Key + ", showing image without boxes")
		return nil
	}
	p.notify.Info(fmt.Sprintf("%s (%d/%d): %d boxes", res.Key, res.Index+1, len(p.ctrl.Files()), res.Boxes))
	return nil
}

func (p *AnnotationPresenter) save(question, answer string) error {
	n, err := p.ctrl.SaveAnnotation(question, answer)
	if err != nil {
		if errors.Is(err, annotation.ErrIO) && n > 0 {
			return fmt.Errorf("saved %d boxes before failure: %w", n, err)
		}
		return err
	}
	if p.notify != nil {
		p.notify.Info(fmt.Sprintf("Annotation saved (%d boxes)", n))
	}
	return nil
}

// render stretches the current image to the display size and draws the boxes.
func (p *AnnotationPresenter) render() {
	img := p.ctrl.Image()
	if img == nil {
		return
	}
	w, h := p.ctrl.DisplaySize()
	if p.base == nil || p.baseKey != p.ctrl.Key() {
		p.base = images.Stretch(img, w, h)
		p.baseKey = p.ctrl.Key()
	}
	p.view.ShowImage(images.RenderOverlay(p.base, p.overlayBoxes()))
}

func (p *AnnotationPresenter) overlayBoxes() []images.OverlayBox {
	boxes := p.ctrl.Boxes()
	scale := p.ctrl.Scale()
	out := make([]images.OverlayBox, 0, len(boxes))
	for i, b := range boxes {
		r := geometry.ToDisplaySpace(b, scale)
		outline := p.colors.Outline
		if p.ctrl.Selected(i) {
			outline = p.colors.Selected
		}
		out = append(out, images.OverlayBox{
			Rect:    image.Rect(int(r.X1), int(r.Y1), int(r.X2), int(r.Y2)),
			Caption: b.DisplayName(),
			Outline: outline,
			Text:    p.colors.Caption,
		})
	}
	return out
}
