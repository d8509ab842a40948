package script

import (
	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// Capture is the committed picture at an export step.
type Capture struct {
	Step    int // 1-based
	Name    string
	Scale   float64 // 0 means the default
	Picture sketch.Picture
}

// Replay applies every step of s to pad in order and returns the pictures
// captured by export steps. The script must already be valid.
func Replay(pad *sketch.Pad, s *Script) ([]Capture, error) {
	var captures []Capture
	for i, st := range s.Steps {
		if err := apply(pad, st); err != nil {
			return captures, errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d (%s)", i+1, st.Action)
		}
		if st.Action == ActionExport {
			captures = append(captures, Capture{
				Step:    i + 1,
				Name:    st.Name,
				Scale:   st.Scale,
				Picture: pad.Snapshot(),
			})
		}
	}
	return captures, nil
}

func apply(pad *sketch.Pad, st Step) error {
	switch st.Action {
	case ActionDown, ActionMove, ActionUp:
		p, err := point(st.At)
		if err != nil {
			return err
		}
		switch st.Action {
		case ActionDown:
			pad.PointerDown(p)
		case ActionMove:
			pad.PointerMove(p)
		default:
			pad.PointerUp(p)
		}
	case ActionLeave:
		pad.PointerLeave()
	case ActionStroke:
		return stroke(pad, st.Path)
	case ActionWidth:
		return pad.SetBrushWidth(st.Width)
	case ActionThin:
		pad.Thin()
	case ActionThick:
		pad.Thick()
	case ActionColor:
		c, err := sketch.ParseColor(st.Color)
		if err != nil {
			return err
		}
		pad.SetColor(c)
	case ActionRandomColor:
		pad.RandomColor()
	case ActionSticker:
		pad.SelectSticker(st.Sticker)
	case ActionBrush:
		pad.SelectSticker("")
	case ActionCustomSticker:
		if pad.AddCustomSticker(st.Text) {
			pad.SelectSticker(st.Text)
		}
	case ActionUndo:
		pad.Undo()
	case ActionRedo:
		pad.Redo()
	case ActionClear:
		pad.Clear()
	case ActionExport:
		// Captured by Replay.
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown action %q", st.Action)
	}
	return nil
}

// stroke presses at the first point, drags through the rest and releases
// at the last.
func stroke(pad *sketch.Pad, path [][]float64) error {
	pts := make([]sketch.Point, len(path))
	for i, xy := range path {
		p, err := point(xy)
		if err != nil {
			return err
		}
		pts[i] = p
	}
	pad.PointerDown(pts[0])
	for _, p := range pts[1:] {
		pad.PointerMove(p)
	}
	pad.PointerUp(pts[len(pts)-1])
	return nil
}
