// Package sink renders sketch pictures into export formats.
//
// # Overview
//
// A "sink" transforms a [sketch.Picture] into the bytes of one file format:
//
//   - PNG: anti-aliased raster via fogleman/gg (the default export)
//   - PDF: vector page via jung-kurt/gofpdf
//   - SVG: hand-written vector markup
//   - JSON: the drawable list, readable by [io.ReadJSON]
//
// Every sink draws the committed picture alone on a white background, with
// coordinates, widths and font sizes multiplied by the scale factor:
//
//	png, err := sink.RenderPNG(pic, sink.WithScale(4))  // 256 -> 1024 px
//
// Sinks never modify the picture, so rendering the same picture twice
// produces the same PNG, SVG and JSON bytes.
//
// [io.ReadJSON]: github.com/matzehuels/sketchpad/pkg/io.ReadJSON
package sink

import "github.com/matzehuels/sketchpad/pkg/sketch"

// Option configures a sink.
type Option func(*config)

type config struct {
	scale float64
}

// WithScale sets the up-scale factor (default 4).
func WithScale(k float64) Option {
	return func(c *config) { c.scale = k }
}

func newConfig(opts []Option) config {
	c := config{scale: sketch.DefaultScale}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
