package sketch

import (
	"image/color"
	"io"
)

// Surface is a 2D drawing target. Paint order equals call order.
type Surface interface {
	// Clear resets every pixel to transparent.
	Clear()

	// FillBackground paints the whole surface with c.
	FillBackground(c color.Color)

	// Line strokes a straight segment with butt caps.
	Line(from, to Point, width float64, c color.Color)

	// Text draws s with its baseline starting at at.
	Text(s string, at Point, size float64, c color.Color)

	// FillCircle fills a disc.
	FillCircle(center Point, radius float64, c color.Color)
}

// ExportSurface is an off-screen Surface that can serialize its contents.
type ExportSurface interface {
	Surface
	Encode(w io.Writer) error
}

// SurfaceFactory creates an off-screen surface of the given pixel size.
type SurfaceFactory func(width, height int) (ExportSurface, error)
