package presenter

import (
	"time"

	"github.com/soocke/vqa-annotator/ui/model"
)

// StatusView displays the status line.
type StatusView interface {
	SetStatus(text string, level model.StatusLevel)
}

// StatusPresenter pushes status model changes to the view.
type StatusPresenter struct {
	status *model.StatusModel
	view   StatusView
	now    func() time.Time
}

// NewStatusPresenter returns a new StatusPresenter.
func NewStatusPresenter(status *model.StatusModel, view StatusView) *StatusPresenter {
	return &StatusPresenter{status: status, view: view, now: time.Now}
}

func (p *StatusPresenter) Info(text string)  { p.set(model.StatusInfo, text) }
func (p *StatusPresenter) Warn(text string)  { p.set(model.StatusWarn, text) }
func (p *StatusPresenter) Error(text string) { p.set(model.StatusError, text) }

func (p *StatusPresenter) set(level model.StatusLevel, text string) {
	if p == nil || p.status == nil {
		return
	}
	p.status.Set(level, text, p.now())
	p.flush()
}

// Tick expires old messages and updates the view when the text changed.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.status == nil {
		return
	}
	p.status.OnTick(now)
	p.flush()
}

func (p *StatusPresenter) flush() {
	if p.view == nil || !p.status.TakeDirty() {
		return
	}
	text, level := p.status.Values()
	p.view.SetStatus(text, level)
}
