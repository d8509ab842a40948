package render

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/sketchpad/pkg/sketch"
)

func TestGrid(t *testing.T) {
	g := DefaultGrid

	if g.Cols(256) != 64 || g.Rows(256) != 32 {
		t.Errorf("grid = %dx%d, want 64x32", g.Cols(256), g.Rows(256))
	}
	if g.Cols(257) != 65 {
		t.Errorf("partial cells should round up, got %d", g.Cols(257))
	}

	p := g.Point(2, 3)
	if p != sketch.Pt(10, 28) {
		t.Errorf("Point(2,3) = %v, want (10,28)", p)
	}
	if col, row := g.Cell(p); col != 2 || row != 3 {
		t.Errorf("Cell(%v) = %d,%d", p, col, row)
	}
}

func TestPresentShape(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	out := Present(img, Grid{CellW: 4, CellH: 8})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 4 {
			t.Errorf("line %d width = %d, want 4", i, w)
		}
	}
}

func TestSamplePicksInk(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 0xff, A: 0xff})
	img.Set(2, 2, color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff})

	if got := sample(img, img.Bounds()).Hex(); got != "#ff0000" {
		t.Errorf("sample = %s, want #ff0000", got)
	}
	if got := sample(image.NewNRGBA(image.Rect(0, 0, 4, 4)), image.Rect(0, 0, 4, 4)).Hex(); got != "#ffffff" {
		t.Errorf("empty sample = %s, want white", got)
	}
}

func TestOverPaper(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{color.NRGBA{A: 0xff}, "#000000"},
		{color.NRGBA{}, "#ffffff"},
		{color.NRGBA{A: 0x80}, "#7f7f7f"},
	}
	for _, tt := range tests {
		if got := overPaper(tt.in).Hex(); got != tt.want {
			t.Errorf("overPaper(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
