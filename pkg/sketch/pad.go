package sketch

import (
	"bytes"
	"image/color"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/observability"
)

// Pad is the complete state of one sketchpad: the registry, the active
// interaction, the tool selection, the preview and the live surface.
//
// Every state change redraws the live surface synchronously. Pad is not
// safe for concurrent use; drive it from a single event loop.
type Pad struct {
	opts    Options
	live    Surface
	reg     *Registry
	builder *Builder
	tool    ToolState
	preview Drawable

	stickers []string
	pointer  Point
	hover    bool
	rng      *rand.Rand
	logger   *log.Logger
}

// New creates a pad drawing onto live. It fails with
// SURFACE_UNAVAILABLE when live is nil.
func New(live Surface, opts Options) (*Pad, error) {
	if live == nil {
		return nil, errors.New(errors.ErrCodeSurfaceUnavailable, "no drawing surface")
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := &Pad{
		opts:     opts,
		live:     live,
		stickers: slices.Clone(opts.Stickers),
		rng:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef)),
		logger:   opts.Logger,
		tool: ToolState{
			Width: opts.ThinWidth,
			Color: opts.Color,
		},
	}
	p.reg = NewRegistry(p.Redraw)
	p.builder = NewBuilder(p.reg)
	p.Redraw()
	return p, nil
}

// =============================================================================
// Pointer events
// =============================================================================

// PointerDown starts a stroke or places a sticker at pos.
func (p *Pad) PointerDown(pos Point) {
	p.pointer, p.hover = pos, true
	p.preview = nil

	d := p.builder.Down(pos, p.tool)
	observability.Sketch().OnCommit(string(d.Kind()), d.ID().String(), p.reg.Len())
	p.logger.Debug("commit", "kind", d.Kind(), "id", d.ID(), "at", pos)

	if d.Kind() == KindSticker && !p.opts.StickyStickers {
		p.tool.Sticker = ""
	}
	p.Redraw()
}

// PointerMove extends the active stroke, or moves the preview when idle.
func (p *Pad) PointerMove(pos Point) {
	p.pointer, p.hover = pos, true
	if p.builder.Accumulating() {
		if p.builder.Move(pos) {
			p.Redraw()
		}
		return
	}
	p.refreshPreview()
}

// PointerUp ends the active interaction. It is honoured wherever the
// pointer is, including outside the surface.
func (p *Pad) PointerUp(pos Point) {
	d, ok := p.builder.Up(pos)
	if !ok {
		return
	}
	if st, isStroke := d.(*Stroke); isStroke {
		p.logger.Debug("stroke finished", "id", st.ID(), "points", st.Len())
	}
	p.pointer = pos
	p.refreshPreview()
}

// PointerLeave hides the preview until the pointer returns.
func (p *Pad) PointerLeave() {
	p.hover = false
	if p.preview != nil {
		p.preview = nil
		p.Redraw()
	}
}

// Accumulating reports whether a pointer interaction is in progress.
func (p *Pad) Accumulating() bool {
	return p.builder.Accumulating()
}

// =============================================================================
// Tools
// =============================================================================

// SetBrushWidth selects a brush of width w and leaves sticker mode.
func (p *Pad) SetBrushWidth(w float64) error {
	if err := errors.ValidateWidth(w); err != nil {
		return err
	}
	p.tool.Width = w
	p.tool.Sticker = ""
	if p.opts.RandomizeOnToolSwitch {
		p.pickColor()
	}
	p.refreshPreview()
	return nil
}

// Thin selects the thin brush preset.
func (p *Pad) Thin() { _ = p.SetBrushWidth(p.opts.ThinWidth) }

// Thick selects the thick brush preset.
func (p *Pad) Thick() { _ = p.SetBrushWidth(p.opts.ThickWidth) }

// SetColor sets the color of subsequent strokes and stickers. Drawables
// already created keep their color.
func (p *Pad) SetColor(c color.NRGBA) {
	c.A = 0xff
	p.tool.Color = c
	p.refreshPreview()
}

// RandomColor picks a palette color different from the current one when
// the palette allows it, and returns it.
func (p *Pad) RandomColor() color.NRGBA {
	p.pickColor()
	p.refreshPreview()
	return p.tool.Color
}

func (p *Pad) pickColor() {
	candidates := make([]color.NRGBA, 0, len(p.opts.Palette))
	for _, c := range p.opts.Palette {
		if c != p.tool.Color {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return
	}
	p.tool.Color = candidates[p.rng.IntN(len(candidates))]
}

// SelectSticker enters sticker mode with glyph. An empty glyph returns to
// brush mode.
func (p *Pad) SelectSticker(glyph string) {
	p.tool.Sticker = glyph
	p.refreshPreview()
}

// AddCustomSticker adds text to the selectable stickers. Empty or
// whitespace-only text is ignored. It reports whether text is selectable
// afterwards.
func (p *Pad) AddCustomSticker(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if !slices.Contains(p.stickers, text) {
		p.stickers = append(p.stickers, text)
		p.logger.Debug("sticker added", "text", text)
	}
	return true
}

// Stickers returns the selectable sticker glyphs in insertion order.
func (p *Pad) Stickers() []string {
	return slices.Clone(p.stickers)
}

// Tool returns the current tool state.
func (p *Pad) Tool() ToolState {
	return p.tool
}

// =============================================================================
// History
// =============================================================================

// Undo moves the most recent drawable to the redo buffer. It is a no-op on
// an empty picture.
func (p *Pad) Undo() bool {
	p.builder.Reset()
	d, ok := p.reg.Undo()
	if ok {
		observability.Sketch().OnUndo(string(d.Kind()), d.ID().String(), p.reg.Len(), len(p.reg.redo))
	}
	return ok
}

// Redo restores the most recently undone drawable. It is a no-op when
// nothing was undone.
func (p *Pad) Redo() bool {
	p.builder.Reset()
	d, ok := p.reg.Redo()
	if ok {
		observability.Sketch().OnRedo(string(d.Kind()), d.ID().String(), p.reg.Len(), len(p.reg.redo))
	}
	return ok
}

// Clear empties the picture and the redo buffer.
func (p *Pad) Clear() {
	p.builder.Reset()
	n := p.reg.Clear()
	observability.Sketch().OnClear(n)
}

// Committed returns the committed drawables, bottom to top.
func (p *Pad) Committed() []Drawable { return p.reg.Committed() }

// RedoBuffer returns the undone drawables; the last one is restored first.
func (p *Pad) RedoBuffer() []Drawable { return p.reg.RedoBuffer() }

// Snapshot returns an immutable copy of the committed picture.
func (p *Pad) Snapshot() Picture { return p.reg.Snapshot(p.opts.Size) }

// Preview returns the current preview drawable, or nil.
func (p *Pad) Preview() Drawable { return p.preview }

// Size returns the canvas edge length.
func (p *Pad) Size() float64 { return p.opts.Size }

// =============================================================================
// Rendering
// =============================================================================

// Redraw repaints the live surface: the committed picture at 1x, then the
// preview.
func (p *Pad) Redraw() {
	p.reg.RenderAll(p.live)
	if p.preview != nil {
		Render(p.live, p.preview, 1)
	}
}

// ExportImage renders the committed picture, without the preview, onto a
// new off-screen surface scale times the canvas size and returns the
// encoded bytes. A zero scale uses Options.ExportScale. The pad is not
// modified.
func (p *Pad) ExportImage(scale float64) ([]byte, error) {
	if scale == 0 {
		scale = p.opts.ExportScale
	}
	if err := errors.ValidateScale(scale); err != nil {
		return nil, err
	}
	if p.opts.NewSurface == nil {
		return nil, errors.New(errors.ErrCodeSurfaceUnavailable, "no export surface configured")
	}

	pic := p.Snapshot()
	n := pic.PixelSize(scale)
	s, err := p.opts.NewSurface(n, n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSurfaceUnavailable, err, "create %dx%d export surface", n, n)
	}
	if c, ok := s.(io.Closer); ok {
		defer c.Close()
	}
	pic.RenderExport(s, scale)

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode export")
	}
	p.logger.Debug("exported", "drawables", pic.Len(), "size", n, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (p *Pad) refreshPreview() {
	if p.hover {
		p.preview = ComputePreview(p.pointer, p.tool, p.builder.Accumulating())
	} else {
		p.preview = nil
	}
	p.Redraw()
}
