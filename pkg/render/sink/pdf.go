package sink

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/fonts"
	"github.com/matzehuels/sketchpad/pkg/render"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

const pdfFont = "Go"

// RenderPDF draws pic on a single page whose size in points equals the
// scaled canvas size in pixels.
func RenderPDF(pic sketch.Picture, opts ...Option) ([]byte, error) {
	c := newConfig(opts)
	if err := errors.ValidateScale(c.scale); err != nil {
		return nil, err
	}

	side := pic.Size * c.scale
	rec := render.NewRecorder(side, side)
	pic.RenderExport(rec, c.scale)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: side, Ht: side},
	})
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes(pdfFont, "", fonts.RegularTTF())
	pdf.AddPage()
	pdf.SetLineCapStyle("butt")

	for _, op := range rec.Ops {
		setPDFAlpha(pdf, op.Color.A)
		r, g, b := int(op.Color.R), int(op.Color.G), int(op.Color.B)
		switch op.Kind {
		case render.OpBackground:
			pdf.SetFillColor(r, g, b)
			pdf.Rect(0, 0, side, side, "F")
		case render.OpLine:
			pdf.SetDrawColor(r, g, b)
			pdf.SetLineWidth(op.Width)
			pdf.Line(op.From.X, op.From.Y, op.To.X, op.To.Y)
		case render.OpText:
			pdf.SetFont(pdfFont, "", op.Width)
			pdf.SetTextColor(r, g, b)
			pdf.Text(op.From.X, op.From.Y, op.Text)
		case render.OpCircle:
			pdf.SetFillColor(r, g, b)
			pdf.Circle(op.From.X, op.From.Y, op.Width, "F")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write pdf")
	}
	return buf.Bytes(), nil
}

func setPDFAlpha(pdf *gofpdf.Fpdf, a uint8) {
	pdf.SetAlpha(float64(a)/255, "Normal")
}
