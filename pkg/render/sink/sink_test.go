package sink

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/sketchpad/pkg/errors"
	pio "github.com/matzehuels/sketchpad/pkg/io"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

func testPicture() sketch.Picture {
	return sketch.NewPicture(256,
		sketch.NewStroke(2, sketch.Black, sketch.Pt(10, 10), sketch.Pt(20, 10), sketch.Pt(30, 10)),
		sketch.NewStroke(5, sketch.DefaultPalette[1], sketch.Pt(100, 100), sketch.Pt(200, 200)),
		sketch.NewSticker("<b>&", sketch.Pt(50, 50), sketch.Black),
	)
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testPicture(), WithScale(4))
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1024 || b.Dy() != 1024 {
		t.Errorf("size = %dx%d, want 1024x1024", b.Dx(), b.Dy())
	}

	// White background, opaque everywhere.
	if got := color.NRGBAModel.Convert(img.At(1000, 5)).(color.NRGBA); got != sketch.White {
		t.Errorf("background = %v", got)
	}
	// Stroke (10,10)-(30,10) at width 2 lands on y=40 between x=40 and x=120.
	if got := color.NRGBAModel.Convert(img.At(80, 40)).(color.NRGBA); got != sketch.Black {
		t.Errorf("scaled stroke pixel = %v, want black", got)
	}
	// Outside the scaled stroke.
	if got := color.NRGBAModel.Convert(img.At(80, 60)).(color.NRGBA); got != sketch.White {
		t.Errorf("pixel below stroke = %v, want white", got)
	}
}

func TestRenderPNGDeterministic(t *testing.T) {
	pic := testPicture()
	a, err := RenderPNG(pic)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderPNG(pic)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated PNG renders differ")
	}
}

func TestRenderPNGEmpty(t *testing.T) {
	data, err := RenderPNG(sketch.NewPicture(256), WithScale(1))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := color.NRGBAModel.Convert(img.At(128, 128)).(color.NRGBA); got != sketch.White {
		t.Errorf("empty picture pixel = %v, want white", got)
	}
}

func TestInvalidScale(t *testing.T) {
	renderers := map[string]func(sketch.Picture, ...Option) ([]byte, error){
		"png": RenderPNG,
		"pdf": RenderPDF,
		"svg": RenderSVG,
	}
	for name, r := range renderers {
		if _, err := r(testPicture(), WithScale(0)); !errors.Is(err, errors.ErrCodeInvalidScale) {
			t.Errorf("%s with scale 0: %v", name, err)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG(testPicture(), WithScale(2))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	svg := string(data)

	for _, want := range []string{
		`viewBox="0 0 512.0 512.0"`,
		`<rect width="100%" height="100%" fill="#ffffff"/>`,
		`<line x1="20.00" y1="20.00" x2="40.00" y2="20.00" stroke="#000000" stroke-width="4.00"`,
		`stroke="#e6194b" stroke-width="10.00"`,
		`font-size="80.00"`,
		`&lt;b&gt;&amp;</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Count(svg, "<line") != 3 {
		t.Errorf("lines = %d, want 3", strings.Count(svg, "<line"))
	}

	again, _ := RenderSVG(testPicture(), WithScale(2))
	if strings.Count(string(again), "<line") != 3 {
		t.Error("second render differs in shape")
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(testPicture())
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:min(len(data), 8)])
	}
	if !bytes.Contains(data, []byte("%%EOF")) {
		t.Error("output has no EOF marker")
	}
}

func TestRenderJSON(t *testing.T) {
	pic := testPicture()
	data, err := RenderJSON(pic)
	if err != nil {
		t.Fatal(err)
	}
	back, err := pio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if back.Len() != pic.Len() {
		t.Errorf("round trip len = %d, want %d", back.Len(), pic.Len())
	}
}
