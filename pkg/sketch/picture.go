package sketch

import "slices"

// Picture is a frozen copy of a committed sequence together with the base
// canvas size it was drawn on. It is what export sinks consume.
type Picture struct {
	// Size is the edge length of the square base canvas in surface units.
	Size float64

	drawables []Drawable
}

// NewPicture builds a picture from drawables, bottom to top. Strokes are
// copied so later changes to the originals do not leak into the picture.
func NewPicture(size float64, ds ...Drawable) Picture {
	out := make([]Drawable, len(ds))
	for i, d := range ds {
		if st, ok := d.(*Stroke); ok {
			d = st.clone()
		}
		out[i] = d
	}
	return Picture{Size: size, drawables: out}
}

// Drawables returns the drawables bottom to top.
func (p Picture) Drawables() []Drawable {
	return slices.Clone(p.drawables)
}

// Len returns the number of drawables.
func (p Picture) Len() int { return len(p.drawables) }

// RenderExport paints a white background and draws every drawable at scale.
func (p Picture) RenderExport(s Surface, scale float64) {
	renderExport(s, p.drawables, scale)
}

// PixelSize returns the edge length in pixels of an export at scale.
func (p Picture) PixelSize(scale float64) int {
	return int(p.Size*scale + 0.5)
}
