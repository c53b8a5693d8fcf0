package presenter

import "fmt"

// ActionKind enumerates user commands the view can dispatch.
type ActionKind int

const (
	ActionStart ActionKind = iota + 1
	ActionLoad
	ActionNext
	ActionPrev
	ActionClick
	ActionSave
	ActionResize
)

func (k ActionKind) String() string {
	switch k {
	case ActionStart:
		return "start"
	case ActionLoad:
		return "load"
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionClick:
		return "click"
	case ActionSave:
		return "save"
	case ActionResize:
		return "resize"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// Action is one user command. Only the fields relevant to Kind are read.
type Action struct {
	Kind ActionKind

	DatasetRoot string // start
	ImageFolder string // start
	Key         string // load

	X, Y float64 // click, display space

	Question string // save
	Answer   string // save

	Width, Height int // resize
}

func Start(datasetRoot, imageFolder string) Action {
	return Action{Kind: ActionStart, DatasetRoot: datasetRoot, ImageFolder: imageFolder}
}
func Load(key string) Action    { return Action{Kind: ActionLoad, Key: key} }
func Next() Action              { return Action{Kind: ActionNext} }
func Prev() Action              { return Action{Kind: ActionPrev} }
func Click(x, y float64) Action { return Action{Kind: ActionClick, X: x, Y: y} }
func Save(question, answer string) Action {
	return Action{Kind: ActionSave, Question: question, Answer: answer}
}
func Resize(w, h int) Action { return Action{Kind: ActionResize, Width: w, Height: h} }
