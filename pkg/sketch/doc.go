// Package sketch implements the drawing model of a freehand sketchpad.
//
// # Overview
//
// A picture is an ordered sequence of drawables. Insertion order is z-order:
// later drawables paint over earlier ones. Two drawable kinds are committed:
//
//   - [Stroke]: a polyline with a fixed width and color
//   - [Sticker]: a text or emoji glyph anchored at a point
//
// A third kind, [Disc], only ever appears as the brush preview.
//
// # History
//
// The [Registry] holds the committed sequence and a redo buffer. [Registry.Undo]
// moves the top drawable onto the redo buffer, [Registry.Redo] moves it back,
// and any new commit clears the redo buffer. Undo and redo on an empty
// collection are no-ops, never errors.
//
// # Interaction
//
// The [Builder] turns pointer interactions into drawables. A pointer-down
// commits a new drawable immediately so that it is visible while the pointer
// is held; pointer-moves extend the active stroke; pointer-up finalizes it.
// [ComputePreview] derives the transient cursor preview from the pointer and
// the [ToolState].
//
// [Pad] ties these together into one application state with a live
// [Surface] that is redrawn synchronously after every change.
//
// # Rendering
//
// Every drawable is rendered by one function, [Render], at a scale factor.
// The live surface is drawn at 1x. Exports draw the committed picture alone
// onto an off-screen [ExportSurface] at an up-scale factor, on a white
// background. Scaling never modifies the drawables, so repeated exports of
// the same picture are identical.
package sketch
