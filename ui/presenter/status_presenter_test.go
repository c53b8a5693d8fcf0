package presenter

import (
	"testing"
	"time"

	"github.com/soocke/vqa-annotator/ui/model"
)

type mockStatusView struct {
	calls int
	text  string
	level model.StatusLevel
}

func (v *mockStatusView) SetStatus(text string, level model.StatusLevel) {
	v.calls++
	v.text, v.level = text, level
}

func TestStatusPresenter_ShowsAndExpires(t *testing.T) {
	base := time.Unix(100, 0)
	view := &mockStatusView{}
	p := NewStatusPresenter(model.NewStatusModel(3*time.Second), view)
	p.now = func() time.Time { return base }

	p.Info("Annotation saved")
	if view.calls != 1 || view.text != "Annotation saved" {
		t.Fatalf("expected status pushed, got calls=%d text=%q", view.calls, view.text)
	}
	p.Tick(base.Add(time.Second))
	if view.calls != 1 {
		t.Fatalf("unchanged status should not be pushed again")
	}
	p.Tick(base.Add(3 * time.Second))
	if view.calls != 2 || view.text != "" {
		t.Fatalf("expected cleared status, got calls=%d text=%q", view.calls, view.text)
	}
}

func TestStatusPresenter_ErrorLevel(t *testing.T) {
	view := &mockStatusView{}
	p := NewStatusPresenter(model.NewStatusModel(time.Second), view)
	p.Error("no bounding box selected")
	if view.level != model.StatusError {
		t.Fatalf("expected error level, got %v", view.level)
	}
	p.Tick(time.Now().Add(time.Hour))
	if view.text == "" {
		t.Fatalf("errors should not expire")
	}
}

func TestLoop_TickSchedules(t *testing.T) {
	scheduled := 0
	l := NewLoop(nil, func() { scheduled++ })
	l.Tick()
	var nilLoop *Loop
	nilLoop.Tick()
	if scheduled != 1 {
		t.Fatalf("expected one schedule, got %d", scheduled)
	}
}
