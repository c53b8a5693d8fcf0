package view

import (
	"github.com/soocke/vqa-annotator/ui/model"
	"github.com/soocke/vqa-annotator/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the transient status line.
type StatusBar interface {
	SetStatus(text string, level model.StatusLevel)
}

type statusBar struct {
	lbl *LabelWidget
}

// NewStatusBar places a status label at row spanning span columns. If parent
// is nil the label is placed relative to the App root.
func NewStatusBar(parent *ToplevelWidget, row, span int) StatusBar {
	var lbl *LabelWidget
	if parent != nil {
		lbl = parent.Label(Txt(""), Anchor("w"))
	} else {
		lbl = Label(Txt(""), Anchor("w"))
	}
	Grid(lbl, Row(row), Column(0), Columnspan(span), Sticky("we"), Padx("1m"), Pady("1m"))
	return &statusBar{lbl: lbl}
}

// SetStatus updates the text and colours it by level.
func (s *statusBar) SetStatus(text string, level model.StatusLevel) {
	if s == nil || s.lbl == nil {
		return
	}
	p := theme.CurrentPalette()
	fg := p.Accent
	switch level {
	case model.StatusWarn:
		fg = p.Warn
	case model.StatusError:
		fg = p.Danger
	}
	s.lbl.Configure(Txt(text), Foreground(fg))
}
