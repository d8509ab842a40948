// Package pkg provides the core libraries for the sketchpad drawing pad.
//
// # Overview
//
// A sketchpad records freehand strokes and stickers on one undo/redo
// history and exports the picture as a scaled PNG. The pkg directory is
// organized into four main areas:
//
//  1. [sketch] - Domain logic (registry, stroke builder, preview, the Pad)
//  2. [render] - Drawing surfaces and export sinks (PNG, PDF, SVG, JSON)
//  3. [pipeline] - Export orchestration with artifact caching
//  4. [script] - Headless replay of recorded pointer and tool events
//
// # Architecture
//
// The typical data flow through sketchpad:
//
//	Pointer events (terminal mouse, script, tests)
//	         ↓
//	    [sketch] Pad (builder → registry → preview)
//	         ↓
//	    live Surface (redrawn after every change)
//
//	    Pad.Snapshot()
//	         ↓
//	    [pipeline] Runner (hash → cache lookup → sink)
//	         ↓
//	    PNG/PDF/SVG/JSON output
//
// # Quick Start
//
// Draw a stroke and export it:
//
//	import (
//	    "github.com/matzehuels/sketchpad/pkg/render"
//	    "github.com/matzehuels/sketchpad/pkg/sketch"
//	)
//
//	live, _ := render.NewRaster(256, 256)
//	pad, _ := sketch.New(live, sketch.Options{NewSurface: render.NewSurface})
//
//	pad.PointerDown(sketch.Pt(10, 10))
//	pad.PointerMove(sketch.Pt(20, 10))
//	pad.PointerUp(sketch.Pt(30, 10))
//
//	png, _ := pad.ExportImage(4) // 1024x1024
//
// # Main Packages
//
// [sketch] - The drawing model. Committed drawables and the redo buffer live
// in a [sketch.Registry]; a [sketch.Builder] turns one pointer-down
// interaction into one drawable; [sketch.ComputePreview] derives the brush
// disc or sticker ghost. [sketch.Pad] ties them to a live surface.
//
// [render] - Surfaces: [render.Raster] (fogleman/gg), [render.Recorder] (a
// display list) and [render.Present] for terminal output.
//
// [render/sink] - Export formats. Every sink draws the committed picture on
// white at the export scale.
//
// [pipeline] - The export runner used by the CLI. Artifacts are cached by
// picture content, format and scale.
//
// [cache] - Artifact caches: file (CLI), redis (shared) and null.
//
// [io] - JSON serialization of pictures.
//
// [script] - TOML event scripts replayed onto a Pad.
//
// [errors] - Structured error codes shared by all packages.
//
// [observability] - Hooks for history, export and cache events.
//
// [sketch]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/sketch
// [render]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/io
// [script]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/script
// [errors]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sketchpad/pkg/observability
package pkg
