// Package io provides JSON import and export for sketch pictures.
//
// # Overview
//
// A picture is written as its base canvas size and the committed drawables
// in z-order, bottom first. The format is used for:
//
//   - The "json" export sink
//   - Re-rendering a saved picture with "sketchpad render picture.json"
//   - Content hashing for the artifact cache
//
// # JSON Format
//
//	{
//	  "size": 256,
//	  "drawables": [
//	    {"id": "6f1c...", "kind": "stroke", "width": 2, "color": "#000000",
//	     "points": [[10, 10], [20, 10], [30, 10]]},
//	    {"id": "0b8e...", "kind": "sticker", "glyph": "🍝", "size": 40,
//	     "color": "#000000", "anchor": [50, 50]}
//	  ]
//	}
//
// Colors are "#rrggbb" strings. Points are [x, y] pairs in surface units.
// IDs are UUIDs; [WithoutIDs] omits them so that two pictures with the same
// content encode identically.
//
// Reading validates every drawable: unknown kinds, malformed colors or IDs,
// non-positive widths or sizes, and empty glyphs are rejected with an
// INVALID_INPUT error naming the drawable's index.
package io
