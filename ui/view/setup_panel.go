package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/vqa-annotator/domain/settings"
	"github.com/soocke/vqa-annotator/ui/theme"
)

// SetupPanel is the first form: dataset root and image folder plus a confirm
// button that starts the session.
type SetupPanel interface {
	Build(startRow int, rec settings.Record, onConfirm func(datasetRoot, imageFolder string)) (endRow int)
	SetEditable(enabled bool)
}

type setupPanel struct {
	confirmBtn *TButtonWidget
	widgets    map[string]*TextWidget // keyed by field id
}

// NewSetupPanel creates an unbuilt panel.
func NewSetupPanel() SetupPanel {
	return &setupPanel{widgets: make(map[string]*TextWidget)}
}

func (v *setupPanel) Build(startRow int, rec settings.Record, onConfirm func(datasetRoot, imageFolder string)) (row int) {
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("e"))
		Grid(lbl, Row(row), Column(0), Sticky("e"), Padx("2m"), Pady("2m"))
		w := Text(Height(1), Width(50))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("2m"), Pady("2m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("datasetRoot", "Rope3D dataset path:", rec.DatasetRoot)
	makeRow("imageFolder", "Image folder path:", rec.ImageFolder)
	v.confirmBtn = TButton(Txt("Confirm"), Style(theme.StylePrimaryButton), Command(func() {
		if onConfirm != nil {
			onConfirm(v.value("datasetRoot"), v.value("imageFolder"))
		}
	}))
	Grid(v.confirmBtn, Row(row), Column(1), Pady("4m"))
	row++
	return row
}

func (v *setupPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.confirmBtn != nil {
		v.confirmBtn.Configure(State(state))
	}
}

func (v *setupPanel) value(id string) string {
	return strings.TrimSpace(textValue(v.widgets[id]))
}

// textValue returns the full content of a Text widget.
func textValue(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.Join(w.Get("1.0", END), "")
}

func setText(w *TextWidget, s string) {
	if w == nil {
		return
	}
	w.Delete("1.0", END)
	if s != "" {
		w.Insert("1.0", s)
	}
}
