package presenter

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/vqa-annotator/domain/annotation"
	"github.com/soocke/vqa-annotator/domain/settings"
)

type stubDecoder struct{}

func (stubDecoder) Decode(path string) (image.Image, error) {
	img := image.NewNRGBA(image.Rect(0, 0, 200, 100))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img, nil
}

type mockView struct {
	opened    int
	lastFile  string
	fileName  string
	cleared   int
	shown     int
	lastImage image.Image
}

func (v *mockView) OpenAnnotation(last string) { v.opened++; v.lastFile = last }
func (v *mockView) SetFileName(key string)     { v.fileName = key }
func (v *mockView) ClearText()                 { v.cleared++ }
func (v *mockView) ShowImage(img image.Image)  { v.shown++; v.lastImage = img }

type mockNotifier struct{ infos, warns, errs []string }

func (n *mockNotifier) Info(s string)  { n.infos = append(n.infos, s) }
func (n *mockNotifier) Warn(s string)  { n.warns = append(n.warns, s) }
func (n *mockNotifier) Error(s string) { n.errs = append(n.errs, s) }

func setup(t *testing.T) (*AnnotationPresenter, *mockView, *mockNotifier, string) {
	t.Helper()
	root := t.TempDir()
	labels := filepath.Join(root, "Rope3D")
	imgs := filepath.Join(root, "images")
	for _, d := range []string{labels, imgs} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, n := range []string{"a.jpg", "b.jpg"} {
		if err := os.WriteFile(filepath.Join(imgs, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	// 200x100 native image shown at 400x100: x doubles, y unchanged.
	if err := os.WriteFile(filepath.Join(labels, "a.txt"), []byte("Car 0 0 0 10 20 60 80 1 1 1 0 0 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sess := annotation.New(annotation.Options{
		Decoder:       stubDecoder{},
		Settings:      settings.NewStore(filepath.Join(root, "settings.json"), nil),
		DisplayWidth:  400,
		DisplayHeight: 100,
	})
	view := &mockView{}
	note := &mockNotifier{}
	p := NewAnnotationPresenter(sess, view, note, DefaultBoxColors, nil)
	if err := p.Dispatch(Start(labels, imgs)); err != nil {
		t.Fatalf("start: %v", err)
	}
	return p, view, note, root
}

func TestAnnotationPresenter_StartOpensWindow(t *testing.T) {
	_, view, note, _ := setup(t)
	if view.opened != 1 {
		t.Fatalf("expected annotation window opened once, got %d", view.opened)
	}
	if len(note.infos) != 1 || !strings.HasPrefix(note.infos[0], "2 images") {
		t.Fatalf("unexpected start message %v", note.infos)
	}
}

func TestAnnotationPresenter_StartErrorReported(t *testing.T) {
	p, view, note, _ := setup(t)
	err := p.Dispatch(Start("", ""))
	if !errors.Is(err, annotation.ErrPathValidation) {
		t.Fatalf("expected path validation error, got %v", err)
	}
	if len(note.errs) != 1 || view.opened != 1 {
		t.Fatalf("error should be reported without reopening: errs=%v opened=%d", note.errs, view.opened)
	}
}

func TestAnnotationPresenter_LoadRendersAndClicksToggle(t *testing.T) {
	p, view, _, _ := setup(t)
	if err := p.Dispatch(Load("a")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if view.fileName != "a" || view.cleared != 1 || view.shown != 1 {
		t.Fatalf("unexpected view state %+v", view)
	}
	img := view.lastImage.(*image.NRGBA)
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 100 {
		t.Fatalf("expected display-sized image, got %v", img.Bounds())
	}
	red := color.NRGBA{R: 255, A: 255}
	if got := img.NRGBAAt(20, 20); got != red {
		t.Fatalf("expected red outline at scaled corner (20,20), got %v", got)
	}

	// Empty space does not redraw.
	_ = p.Dispatch(Click(300, 50))
	if view.shown != 1 {
		t.Fatalf("click on empty space should not redraw")
	}

	// Inside the box in display space.
	_ = p.Dispatch(Click(60, 50))
	if view.shown != 2 {
		t.Fatalf("expected redraw after toggle")
	}
	img = view.lastImage.(*image.NRGBA)
	yellow := color.NRGBA{R: 255, G: 255, A: 255}
	if got := img.NRGBAAt(20, 50); got != yellow {
		t.Fatalf("expected selected outline to be yellow, got %v", got)
	}
}

func TestAnnotationPresenter_MissingLabelsWarns(t *testing.T) {
	p, view, note, _ := setup(t)
	if err := p.Dispatch(Load("b")); err != nil {
		t.Fatalf("missing labels must not fail: %v", err)
	}
	if view.shown != 1 || len(note.warns) != 1 {
		t.Fatalf("expected image shown with warning, shown=%d warns=%v", view.shown, note.warns)
	}
}

func TestAnnotationPresenter_NavigateAndSave(t *testing.T) {
	p, view, note, root := setup(t)
	if err := p.Dispatch(Prev()); err != nil {
		t.Fatalf("prev: %v", err)
	}
	if view.fileName != "b" {
		t.Fatalf("prev from index 0 should wrap to b, got %q", view.fileName)
	}
	if err := p.Dispatch(Next()); err != nil {
		t.Fatalf("next: %v", err)
	}
	if view.fileName != "a" {
		t.Fatalf("expected a, got %q", view.fileName)
	}

	err := p.Dispatch(Save("q", "a"))
	if !errors.Is(err, annotation.ErrNoSelection) {
		t.Fatalf("expected no selection error, got %v", err)
	}
	_ = p.Dispatch(Click(60, 50))
	if err := p.Dispatch(Save("Which car?", "The red one")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if last := note.infos[len(note.infos)-1]; last != "Annotation saved (1 boxes)" {
		t.Fatalf("unexpected status %q", last)
	}
	data, err := os.ReadFile(filepath.Join(root, "Labels", "a.txt"))
	if err != nil {
		t.Fatalf("labels not written: %v", err)
	}
	if string(data) != "Car 0 0 0 10 20 60 80 1 1 1 0 0 0 0\n" {
		t.Fatalf("unexpected labels %q", data)
	}
}

func TestAnnotationPresenter_FailedNavigateKeepsCurrentKey(t *testing.T) {
	p, view, note, root := setup(t)
	if err := p.Dispatch(Load("a")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := os.Remove(filepath.Join(root, "images", "b.jpg")); err != nil {
		t.Fatal(err)
	}
	err := p.Dispatch(Next())
	if !errors.Is(err, annotation.ErrImageNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if view.fileName != "a" {
		t.Fatalf("entry must keep the displayed key, got %q", view.fileName)
	}
	if last := note.errs[len(note.errs)-1]; !strings.Contains(last, "still showing a") {
		t.Fatalf("status should name the current image, got %q", last)
	}
	_ = p.Dispatch(Click(60, 50))
	if err := p.Dispatch(Save("q", "ans")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "Questions", "a.txt")); err != nil {
		t.Fatalf("save should target the displayed image: %v", err)
	}
}

func TestAnnotationPresenter_Resize(t *testing.T) {
	p, view, _, _ := setup(t)
	_ = p.Dispatch(Load("a"))
	_ = p.Dispatch(Resize(200, 200))
	img := view.lastImage.(*image.NRGBA)
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("expected resized render, got %v", img.Bounds())
	}
}

func TestAnnotationPresenter_UnknownAction(t *testing.T) {
	p, _, note, _ := setup(t)
	if err := p.Dispatch(Action{Kind: 99}); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if len(note.errs) != 1 {
		t.Fatalf("expected error notification")
	}
}
