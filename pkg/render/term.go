package render

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// halfBlock paints the upper half of a cell in the foreground color and the
// lower half in the background color.
const halfBlock = "▀"

// Grid maps terminal cells to canvas pixels. Each cell covers CellW by
// CellH pixels and shows two stacked samples.
type Grid struct {
	CellW, CellH int
}

// DefaultGrid shows a 256 pixel canvas as 64 columns by 32 rows.
var DefaultGrid = Grid{CellW: 4, CellH: 8}

// Cols returns how many cells span w pixels.
func (g Grid) Cols(w int) int { return (w + g.CellW - 1) / g.CellW }

// Rows returns how many cells span h pixels.
func (g Grid) Rows(h int) int { return (h + g.CellH - 1) / g.CellH }

// Point returns the canvas position at the center of cell (col, row).
func (g Grid) Point(col, row int) sketch.Point {
	return sketch.Pt(
		(float64(col)+0.5)*float64(g.CellW),
		(float64(row)+0.5)*float64(g.CellH),
	)
}

// Cell returns the cell containing p.
func (g Grid) Cell(p sketch.Point) (col, row int) {
	return int(math.Floor(p.X / float64(g.CellW))), int(math.Floor(p.Y / float64(g.CellH)))
}

var paper = colorful.Color{R: 1, G: 1, B: 1}

// Present renders img as lines of half-block characters, one line per grid
// row. Each half cell shows the pixel that differs most from white, so thin
// lines survive the down-sampling. Transparent pixels read as white.
func Present(img image.Image, g Grid) string {
	b := img.Bounds()
	cols, rows := g.Cols(b.Dx()), g.Rows(b.Dy())
	half := g.CellH / 2
	styles := make(map[[2]string]lipgloss.Style)

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			x0 := b.Min.X + col*g.CellW
			y0 := b.Min.Y + row*g.CellH
			top := sample(img, image.Rect(x0, y0, x0+g.CellW, y0+half)).Hex()
			bottom := sample(img, image.Rect(x0, y0+half, x0+g.CellW, y0+g.CellH)).Hex()

			key := [2]string{top, bottom}
			st, ok := styles[key]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom))
				styles[key] = st
			}
			sb.WriteString(st.Render(halfBlock))
		}
	}
	return sb.String()
}

func sample(img image.Image, r image.Rectangle) colorful.Color {
	r = r.Intersect(img.Bounds())
	best, bestDist := paper, 0.0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			cc := overPaper(c)
			if d := cc.DistanceLab(paper); d > bestDist {
				best, bestDist = cc, d
			}
		}
	}
	return best
}

// overPaper composites c over opaque white.
func overPaper(c color.Color) colorful.Color {
	r, g, b, a := c.RGBA()
	k := float64(0xffff - a)
	return colorful.Color{
		R: (float64(r) + k) / 0xffff,
		G: (float64(g) + k) / 0xffff,
		B: (float64(b) + k) / 0xffff,
	}
}
