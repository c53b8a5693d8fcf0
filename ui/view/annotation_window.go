package view

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/soocke/vqa-annotator/ui/model"
	"github.com/soocke/vqa-annotator/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// Handlers are the user actions the views forward. Nil handlers are ignored.
type Handlers struct {
	OnStart  func(datasetRoot, imageFolder string)
	OnLoad   func(key string)
	OnNext   func()
	OnPrev   func()
	OnClick  func(x, y float64)
	OnSave   func(question, answer string)
	OnResize func(width, height int)
}

// AnnotationWindow is the toplevel used while annotating one image at a time.
type AnnotationWindow struct {
	logger   *slog.Logger
	handlers Handlers
	width    int
	height   int
	onClose  func()

	win      *ToplevelWidget
	fileName *TextWidget
	question *TextWidget
	answer   *TextWidget
	sizeText *TextWidget
	canvas   ImageCanvas
	status   StatusBar
}

// NewAnnotationWindow returns an unopened window for a display surface of width x height.
func NewAnnotationWindow(handlers Handlers, width, height int, logger *slog.Logger) *AnnotationWindow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AnnotationWindow{handlers: handlers, width: width, height: height, logger: logger}
}

// Open creates the window. It is a no-op when the window already exists.
func (v *AnnotationWindow) Open() {
	if v.win != nil {
		return
	}
	win := App.Toplevel(Borderwidth(2))
	win.WmTitle("Annotation")
	v.win = win
	v.logger.Debug("annotation window opened", "width", v.width, "height", v.height)
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+40+40", v.width+40, v.height+260))
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.Close)
	GridColumnConfigure(win.Window, 1, Weight(1))

	// Row 0: file name and load
	top := win.Frame()
	Grid(top, Row(0), Column(0), Columnspan(4), Sticky("we"), Padx("1m"), Pady("1m"))
	Grid(win.Label(Txt("File name (without extension):")), In(top), Row(0), Column(0), Sticky("w"), Padx("1m"))
	v.fileName = win.Text(Height(1), Width(70))
	Grid(v.fileName, In(top), Row(0), Column(1), Sticky("we"), Padx("1m"))
	load := win.TButton(Txt("Load image"), Style(theme.StylePrimaryButton), Command(func() {
		if v.handlers.OnLoad != nil {
			v.handlers.OnLoad(strings.TrimSpace(textValue(v.fileName)))
		}
	}))
	Grid(load, In(top), Row(0), Column(2), Padx("1m"))

	// Rows 1-2: question and answer
	Grid(win.Label(Txt("Question:")), Row(1), Column(0), Sticky("ne"), Padx("1m"))
	v.question = win.Text(Height(2), Width(87))
	Grid(v.question, Row(1), Column(1), Columnspan(3), Sticky("we"), Padx("1m"), Pady("0.5m"))
	Grid(win.Label(Txt("Answer:")), Row(2), Column(0), Sticky("ne"), Padx("1m"))
	v.answer = win.Text(Height(2), Width(87))
	Grid(v.answer, Row(2), Column(1), Columnspan(3), Sticky("we"), Padx("1m"), Pady("0.5m"))

	// Row 3: save, navigation and display size
	controls := win.Frame()
	Grid(controls, Row(3), Column(0), Columnspan(4), Sticky("we"), Padx("1m"), Pady("1m"))
	prev := win.TButton(Txt("Previous"), Command(func() {
		if v.handlers.OnPrev != nil {
			v.handlers.OnPrev()
		}
	}))
	Grid(prev, In(controls), Row(0), Column(0), Padx("1m"))
	save := win.TButton(Txt("Save annotation"), Style(theme.StylePrimaryButton), Command(func() {
		if v.handlers.OnSave != nil {
			v.handlers.OnSave(textValue(v.question), textValue(v.answer))
		}
	}))
	Grid(save, In(controls), Row(0), Column(1), Padx("4m"))
	next := win.TButton(Txt("Next"), Command(func() {
		if v.handlers.OnNext != nil {
			v.handlers.OnNext()
		}
	}))
	Grid(next, In(controls), Row(0), Column(2), Padx("1m"))
	v.sizeText = win.Text(Height(1), Width(11))
	Grid(v.sizeText, In(controls), Row(0), Column(3), Padx("4m"))
	setText(v.sizeText, fmt.Sprintf("%dx%d", v.width, v.height))
	apply := win.TButton(Txt("Apply size"), Command(v.applySize))
	Grid(apply, In(controls), Row(0), Column(4), Padx("1m"))

	// Row 4: image; row 5: status
	v.canvas = NewImageCanvas(win, 4, func(x, y float64) {
		if v.handlers.OnClick != nil {
			v.handlers.OnClick(x, y)
		}
	})
	v.status = NewStatusBar(win, 5, 4)

	Bind(win, "<Prior>", Command(func() {
		if v.handlers.OnPrev != nil {
			v.handlers.OnPrev()
		}
	}))
	Bind(win, "<Next>", Command(func() {
		if v.handlers.OnNext != nil {
			v.handlers.OnNext()
		}
	}))
}

// Close destroys the window; Open builds a fresh one.
func (v *AnnotationWindow) Close() {
	if v.win == nil {
		return
	}
	Destroy(v.win)
	v.win = nil
	v.canvas = nil
	v.status = nil
	if v.onClose != nil {
		v.onClose()
	}
}

// IsOpen reports whether the window exists.
func (v *AnnotationWindow) IsOpen() bool { return v != nil && v.win != nil }

func (v *AnnotationWindow) SetFileName(key string) { setText(v.fileName, key) }

// ClearText empties the question and answer fields.
func (v *AnnotationWindow) ClearText() {
	setText(v.question, "")
	setText(v.answer, "")
}

func (v *AnnotationWindow) ShowImage(img image.Image) {
	if v.canvas != nil {
		v.canvas.Show(img)
	}
}

func (v *AnnotationWindow) SetStatus(text string, level model.StatusLevel) {
	if v.status != nil {
		v.status.SetStatus(text, level)
	}
}

func (v *AnnotationWindow) applySize() {
	w, h, ok := parseSize(textValue(v.sizeText))
	if !ok {
		v.SetStatus("display size must look like 1920x1080", model.StatusError)
		return
	}
	v.width, v.height = w, h
	if v.handlers.OnResize != nil {
		v.handlers.OnResize(w, h)
	}
}

// sizeRe matches display sizes in the format "WIDTHxHEIGHT".
var sizeRe = regexp.MustCompile(`^(\d+)\s*[xX]\s*(\d+)$`)

// parseSize parses "WIDTHxHEIGHT" into positive dimensions.
func parseSize(s string) (int, int, bool) {
	m := sizeRe.FindStringSubmatch(strings.TrimSpace(s))
	if len(m) != 3 {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(m[1])
	h, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
