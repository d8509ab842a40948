package sketch

import (
	"fmt"
	"image/color"
	"io"
)

type op struct {
	kind string
	a, b Point
	w    float64
	c    color.Color
	s    string
}

func (o op) String() string {
	return fmt.Sprintf("%s %v %v %g %v %q", o.kind, o.a, o.b, o.w, o.c, o.s)
}

// recordSurface records every call for assertions.
type recordSurface struct {
	w, h   int
	ops    []op
	closed bool
}

func (r *recordSurface) Close() error { r.closed = true; return nil }

func (r *recordSurface) Clear() { r.ops = r.ops[:0]; r.ops = append(r.ops, op{kind: "clear"}) }
func (r *recordSurface) FillBackground(c color.Color) {
	r.ops = append(r.ops, op{kind: "background", c: c})
}
func (r *recordSurface) Line(from, to Point, width float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "line", a: from, b: to, w: width, c: c})
}
func (r *recordSurface) Text(s string, at Point, size float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "text", a: at, w: size, c: c, s: s})
}
func (r *recordSurface) FillCircle(center Point, radius float64, c color.Color) {
	r.ops = append(r.ops, op{kind: "circle", a: center, w: radius, c: c})
}
func (r *recordSurface) Encode(w io.Writer) error {
	fmt.Fprintf(w, "%dx%d\n", r.w, r.h)
	for _, o := range r.ops {
		fmt.Fprintln(w, o)
	}
	return nil
}

func (r *recordSurface) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

// recordFactory returns a SurfaceFactory that remembers the surfaces it made.
func recordFactory(made *[]*recordSurface) SurfaceFactory {
	return func(w, h int) (ExportSurface, error) {
		s := &recordSurface{w: w, h: h}
		*made = append(*made, s)
		return s, nil
	}
}
