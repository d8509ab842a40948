// Package render provides concrete drawing surfaces for sketch pictures.
//
// # Overview
//
// The sketch core draws through the [sketch.Surface] interface. This package
// implements it three ways:
//
//   - [Raster]: an anti-aliased RGBA image backed by fogleman/gg, encoded as
//     PNG. It is both the live canvas of the terminal UI and the off-screen
//     export surface.
//   - [Recorder]: a display list of drawing operations. Vector sinks record
//     a picture and then translate the operations to their own format.
//   - [Present]: not a surface but a presenter that turns a rendered image
//     into terminal text, two pixel blocks per character cell.
//
// Export formats live in the [sink] subpackage.
//
// [sink]: github.com/matzehuels/sketchpad/pkg/render/sink
package render
