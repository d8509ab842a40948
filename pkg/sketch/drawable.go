package sketch

import (
	"image/color"

	"github.com/google/uuid"
)

// Kind names a drawable variant.
type Kind string

const (
	KindStroke  Kind = "stroke"
	KindSticker Kind = "sticker"
	KindDisc    Kind = "disc"
)

// Drawable is a renderable element of a picture. The set of implementations
// is closed: *Stroke, *Sticker and *Disc.
type Drawable interface {
	ID() uuid.UUID
	Kind() Kind
	drawable()
}

// Stroke is a freehand polyline. Width and color are captured when the
// stroke is created and never change.
type Stroke struct {
	id     uuid.UUID
	points []Point
	width  float64
	color  color.NRGBA
}

// NewStroke creates a stroke with a fresh ID.
func NewStroke(width float64, c color.NRGBA, pts ...Point) *Stroke {
	return RestoreStroke(uuid.New(), width, c, pts...)
}

// RestoreStroke creates a stroke with a known ID, as read back from an
// exported picture.
func RestoreStroke(id uuid.UUID, width float64, c color.NRGBA, pts ...Point) *Stroke {
	return &Stroke{
		id:     id,
		points: append([]Point(nil), pts...),
		width:  width,
		color:  c,
	}
}

func (s *Stroke) ID() uuid.UUID      { return s.id }
func (s *Stroke) Kind() Kind         { return KindStroke }
func (s *Stroke) Width() float64     { return s.width }
func (s *Stroke) Color() color.NRGBA { return s.color }
func (s *Stroke) Len() int           { return len(s.points) }
func (*Stroke) drawable()            {}

// Points returns a copy of the recorded points.
func (s *Stroke) Points() []Point {
	return append([]Point(nil), s.points...)
}

func (s *Stroke) extend(p Point) {
	s.points = append(s.points, p)
}

func (s *Stroke) last() (Point, bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

func (s *Stroke) clone() *Stroke {
	return RestoreStroke(s.id, s.width, s.color, s.points...)
}

// Sticker is a glyph (an emoji or free text) drawn with its baseline
// starting at Anchor.
type Sticker struct {
	id     uuid.UUID
	anchor Point
	glyph  string
	size   float64
	color  color.NRGBA
}

// DefaultStickerSize is the base font size of a sticker in surface units.
const DefaultStickerSize = 40

// NewSticker creates a sticker with a fresh ID and the default size.
func NewSticker(glyph string, anchor Point, c color.NRGBA) *Sticker {
	return RestoreSticker(uuid.New(), glyph, anchor, DefaultStickerSize, c)
}

// RestoreSticker creates a sticker with a known ID and size.
func RestoreSticker(id uuid.UUID, glyph string, anchor Point, size float64, c color.NRGBA) *Sticker {
	return &Sticker{id: id, anchor: anchor, glyph: glyph, size: size, color: c}
}

func (s *Sticker) ID() uuid.UUID      { return s.id }
func (s *Sticker) Kind() Kind         { return KindSticker }
func (s *Sticker) Anchor() Point      { return s.anchor }
func (s *Sticker) Glyph() string      { return s.glyph }
func (s *Sticker) Size() float64      { return s.size }
func (s *Sticker) Color() color.NRGBA { return s.color }
func (*Sticker) drawable()            {}

// Disc is a filled circle. It is used for the brush preview and is never
// committed.
type Disc struct {
	id     uuid.UUID
	center Point
	radius float64
	color  color.NRGBA
}

func (d *Disc) ID() uuid.UUID      { return d.id }
func (d *Disc) Kind() Kind         { return KindDisc }
func (d *Disc) Center() Point      { return d.center }
func (d *Disc) Radius() float64    { return d.radius }
func (d *Disc) Color() color.NRGBA { return d.color }
func (*Disc) drawable()            {}

// Render draws d onto s with every coordinate, width and font size
// multiplied by scale. The drawable itself is not modified.
//
// A stroke with fewer than two points draws nothing.
func Render(s Surface, d Drawable, scale float64) {
	switch d := d.(type) {
	case *Stroke:
		w := d.width * scale
		for i := 1; i < len(d.points); i++ {
			s.Line(d.points[i-1].Scale(scale), d.points[i].Scale(scale), w, d.color)
		}
	case *Sticker:
		s.Text(d.glyph, d.anchor.Scale(scale), d.size*scale, d.color)
	case *Disc:
		s.FillCircle(d.center.Scale(scale), d.radius*scale, d.color)
	}
}
