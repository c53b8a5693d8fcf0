package view

import (
	"image"
	"log/slog"

	"github.com/soocke/vqa-annotator/config"
	"github.com/soocke/vqa-annotator/domain/settings"
	"github.com/soocke/vqa-annotator/ui/model"
	"github.com/soocke/vqa-annotator/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the setup form on the App root and owns the annotation
// window. It satisfies the presenter view contracts.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Setup      SetupPanel
	Status     StatusBar
	Annotation *AnnotationWindow
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	OpenAnnotation(lastFileName string)
	SetFileName(key string)
	ClearText()
	ShowImage(img image.Image)
	SetStatus(text string, level model.StatusLevel)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the setup layout pre-filled from rec. Handlers are invoked
// on user actions.
func (rv *RootView) Build(rec settings.Record, h Handlers, onExit func()) {
	if rv == nil {
		return
	}
	GridColumnConfigure(App, 1, Weight(1))
	rv.Setup = NewSetupPanel()
	row := rv.Setup.Build(0, rec, h.OnStart)
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(onExit))
	Grid(exitBtn, Row(row-1), Column(2), Sticky("e"), Padx("2m"))
	rv.Status = NewStatusBar(nil, row, 3)
	rv.Annotation = NewAnnotationWindow(h, rv.cfg.DisplayWidth, rv.cfg.DisplayHeight, rv.logger)
	rv.Annotation.onClose = func() { rv.Setup.SetEditable(true) }
}

// OpenAnnotation opens the annotation window with lastFileName pre-filled.
func (rv *RootView) OpenAnnotation(lastFileName string) {
	if rv == nil || rv.Annotation == nil {
		return
	}
	if rv.Setup != nil {
		rv.Setup.SetEditable(false)
	}
	rv.Annotation.Open()
	rv.Annotation.SetFileName(lastFileName)
}

func (rv *RootView) SetFileName(key string) {
	if rv != nil && rv.Annotation != nil {
		rv.Annotation.SetFileName(key)
	}
}

func (rv *RootView) ClearText() {
	if rv != nil && rv.Annotation != nil {
		rv.Annotation.ClearText()
	}
}

func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Annotation != nil {
		rv.Annotation.ShowImage(img)
	}
}

// SetStatus routes to the annotation window when it is open, otherwise to the
// setup form.
func (rv *RootView) SetStatus(text string, level model.StatusLevel) {
	if rv == nil {
		return
	}
	if rv.Annotation.IsOpen() {
		rv.Annotation.SetStatus(text, level)
		return
	}
	if rv.Status != nil {
		rv.Status.SetStatus(text, level)
	}
}
