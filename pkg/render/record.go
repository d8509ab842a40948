package render

import (
	"encoding/json"
	"image/color"
	"io"

	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpBackground OpKind = iota
	OpLine
	OpText
	OpCircle
)

func (k OpKind) String() string {
	switch k {
	case OpBackground:
		return "background"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	case OpCircle:
		return "circle"
	}
	return "unknown"
}

// Op is one recorded drawing call. Fields not used by Kind are zero.
type Op struct {
	Kind  OpKind
	From  sketch.Point // line start, text anchor, circle center
	To    sketch.Point // line end
	Width float64      // line width, font size, circle radius
	Color color.NRGBA
	Text  string
}

// Recorder is a surface that keeps a display list instead of pixels.
// Clear drops every recorded operation.
type Recorder struct {
	W, H float64
	Ops  []Op
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) Clear() { r.Ops = r.Ops[:0] }

func (r *Recorder) FillBackground(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpBackground, Color: nrgba(c)})
}

func (r *Recorder) Line(from, to sketch.Point, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: from, To: to, Width: width, Color: nrgba(c)})
}

func (r *Recorder) Text(s string, at sketch.Point, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, From: at, Width: size, Color: nrgba(c), Text: s})
}

func (r *Recorder) FillCircle(center sketch.Point, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, From: center, Width: radius, Color: nrgba(c)})
}

// Replay issues the recorded operations onto s in order.
func (r *Recorder) Replay(s sketch.Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpBackground:
			s.FillBackground(op.Color)
		case OpLine:
			s.Line(op.From, op.To, op.Width, op.Color)
		case OpText:
			s.Text(op.Text, op.From, op.Width, op.Color)
		case OpCircle:
			s.FillCircle(op.From, op.Width, op.Color)
		}
	}
}

// Encode writes the display list as JSON.
func (r *Recorder) Encode(w io.Writer) error {
	return json.NewEncoder(w).Encode(r)
}

var _ sketch.ExportSurface = (*Recorder)(nil)
