package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/fonts"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// Raster is a pixel surface. Coordinates are pixels; one surface unit maps
// to one pixel.
type Raster struct {
	dc    *gg.Context
	faces *fonts.Faces
}

// NewRaster returns a transparent w by h raster. It fails with
// SURFACE_UNAVAILABLE for an empty size or when the font cannot be loaded.
func NewRaster(w, h int) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeSurfaceUnavailable, "raster size must be positive, got %dx%d", w, h)
	}
	faces, err := fonts.NewFaces()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSurfaceUnavailable, err, "load font")
	}
	return &Raster{dc: gg.NewContext(w, h), faces: faces}, nil
}

// NewSurface is a [sketch.SurfaceFactory] producing rasters.
func NewSurface(w, h int) (sketch.ExportSurface, error) {
	return NewRaster(w, h)
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

// Image returns the backing image. It is updated in place by later drawing.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) Clear() {
	r.dc.SetColor(color.Transparent)
	r.dc.Clear()
}

func (r *Raster) FillBackground(c color.Color) {
	r.dc.DrawRectangle(0, 0, float64(r.dc.Width()), float64(r.dc.Height()))
	r.dc.SetColor(c)
	r.dc.Fill()
}

func (r *Raster) Line(from, to sketch.Point, width float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.SetLineWidth(width)
	r.dc.SetLineCapButt()
	r.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	r.dc.Stroke()
}

func (r *Raster) Text(s string, at sketch.Point, size float64, c color.Color) {
	r.dc.SetFontFace(r.faces.Face(size))
	r.dc.SetColor(c)
	r.dc.DrawString(s, at.X, at.Y)
}

func (r *Raster) FillCircle(center sketch.Point, radius float64, c color.Color) {
	r.dc.DrawCircle(center.X, center.Y, radius)
	r.dc.SetColor(c)
	r.dc.Fill()
}

// Encode writes the raster as PNG.
func (r *Raster) Encode(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Close releases cached font faces.
func (r *Raster) Close() error {
	return r.faces.Close()
}

var _ sketch.ExportSurface = (*Raster)(nil)
