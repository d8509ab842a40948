package sketch

// Builder turns one pointer interaction into one drawable.
//
// It is Idle until Down and Accumulating until Up. The drawable is committed
// to the registry on Down so it is visible while the pointer is held.
type Builder struct {
	reg    *Registry
	active Drawable
}

// NewBuilder returns an idle builder committing to reg.
func NewBuilder(reg *Registry) *Builder {
	return &Builder{reg: reg}
}

// Accumulating reports whether a pointer interaction is in progress.
func (b *Builder) Accumulating() bool {
	return b.active != nil
}

// Down starts an interaction at p. In sticker mode it commits a sticker
// anchored at p; otherwise a stroke whose first point is p. An interaction
// already in progress is finalized first.
func (b *Builder) Down(p Point, tool ToolState) Drawable {
	b.Reset()

	var d Drawable
	if tool.Mode() == ModeSticker {
		d = NewSticker(tool.Sticker, p, tool.Color)
	} else {
		d = NewStroke(tool.Width, tool.Color, p)
	}
	b.active = d
	b.reg.Commit(d)
	return d
}

// Move appends p to the active stroke. It reports whether a point was
// recorded; stickers ignore motion.
func (b *Builder) Move(p Point) bool {
	st, ok := b.active.(*Stroke)
	if !ok {
		return false
	}
	st.extend(p)
	return true
}

// Up ends the interaction. A stroke records p as its final point unless p
// repeats the last recorded point. It returns the finalized drawable, or
// false when no interaction was active.
func (b *Builder) Up(p Point) (Drawable, bool) {
	d := b.active
	if d == nil {
		return nil, false
	}
	if st, ok := d.(*Stroke); ok {
		if last, ok := st.last(); !ok || last != p {
			st.extend(p)
		}
	}
	b.active = nil
	return d, true
}

// Reset abandons accumulation without recording a final point. The
// drawable stays committed.
func (b *Builder) Reset() {
	b.active = nil
}
