package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sketchpad/pkg/sketch"
)

type picture struct {
	Size      float64    `json:"size"`
	Drawables []drawable `json:"drawables"`
}

type drawable struct {
	ID     string       `json:"id,omitempty"`
	Kind   string       `json:"kind"`
	Width  float64      `json:"width,omitempty"`
	Color  string       `json:"color"`
	Points [][2]float64 `json:"points,omitempty"`
	Glyph  string       `json:"glyph,omitempty"`
	Size   float64      `json:"size,omitempty"`
	Anchor *[2]float64  `json:"anchor,omitempty"`
}

// Option configures encoding.
type Option func(*encoder)

type encoder struct {
	omitIDs bool
	indent  bool
}

// WithoutIDs omits drawable IDs from the output.
func WithoutIDs() Option { return func(e *encoder) { e.omitIDs = true } }

// Compact disables indentation.
func Compact() Option { return func(e *encoder) { e.indent = false } }

// WriteJSON encodes pic as JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(pic sketch.Picture, w io.Writer, opts ...Option) error {
	e := encoder{indent: true}
	for _, opt := range opts {
		opt(&e)
	}

	out := picture{Size: pic.Size, Drawables: []drawable{}}
	for _, d := range pic.Drawables() {
		out.Drawables = append(out.Drawables, e.drawable(d))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes pic to a JSON file at path.
func ExportJSON(pic sketch.Picture, path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(pic, f, opts...)
}

func (e encoder) drawable(d sketch.Drawable) drawable {
	out := drawable{Kind: string(d.Kind())}
	if !e.omitIDs {
		out.ID = d.ID().String()
	}
	switch d := d.(type) {
	case *sketch.Stroke:
		out.Width = d.Width()
		out.Color = sketch.HexColor(d.Color())
		pts := d.Points()
		out.Points = make([][2]float64, len(pts))
		for i, p := range pts {
			out.Points[i] = [2]float64{p.X, p.Y}
		}
	case *sketch.Sticker:
		a := d.Anchor()
		out.Glyph = d.Glyph()
		out.Size = d.Size()
		out.Color = sketch.HexColor(d.Color())
		out.Anchor = &[2]float64{a.X, a.Y}
	}
	return out
}
