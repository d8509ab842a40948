package sketch

import "slices"

// Registry is the committed picture plus its redo buffer.
//
// Both collections are ordered bottom to top: the last committed drawable
// paints over every other one, and the last element of the redo buffer is
// the next one Redo restores. Registry is not safe for concurrent use.
type Registry struct {
	committed []Drawable
	redo      []Drawable
	onChange  func()
}

// NewRegistry returns an empty registry. onChange, if non-nil, is called
// synchronously after every mutation.
func NewRegistry(onChange func()) *Registry {
	return &Registry{onChange: onChange}
}

// Commit appends d and clears the redo buffer.
func (r *Registry) Commit(d Drawable) {
	r.committed = append(r.committed, d)
	clear(r.redo)
	r.redo = r.redo[:0]
	r.changed()
}

// Undo moves the top committed drawable onto the redo buffer. It reports
// false and changes nothing when nothing is committed.
func (r *Registry) Undo() (Drawable, bool) {
	d, ok := pop(&r.committed)
	if !ok {
		return nil, false
	}
	r.redo = append(r.redo, d)
	r.changed()
	return d, true
}

// Redo moves the top of the redo buffer back onto the committed sequence.
// It reports false and changes nothing when the redo buffer is empty.
func (r *Registry) Redo() (Drawable, bool) {
	d, ok := pop(&r.redo)
	if !ok {
		return nil, false
	}
	r.committed = append(r.committed, d)
	r.changed()
	return d, true
}

// Clear empties both collections and returns how many committed drawables
// were dropped.
func (r *Registry) Clear() int {
	n := len(r.committed)
	r.committed = nil
	r.redo = nil
	r.changed()
	return n
}

func (r *Registry) Len() int      { return len(r.committed) }
func (r *Registry) CanUndo() bool { return len(r.committed) > 0 }
func (r *Registry) CanRedo() bool { return len(r.redo) > 0 }

// Top returns the most recently committed drawable.
func (r *Registry) Top() (Drawable, bool) {
	if len(r.committed) == 0 {
		return nil, false
	}
	return r.committed[len(r.committed)-1], true
}

// Committed returns a copy of the committed sequence, bottom to top.
func (r *Registry) Committed() []Drawable {
	return slices.Clone(r.committed)
}

// RedoBuffer returns a copy of the redo buffer, bottom to top.
func (r *Registry) RedoBuffer() []Drawable {
	return slices.Clone(r.redo)
}

// RenderAll clears s and draws the committed sequence at 1x.
func (r *Registry) RenderAll(s Surface) {
	s.Clear()
	for _, d := range r.committed {
		Render(s, d, 1)
	}
}

// RenderExport paints a white background and draws the committed sequence
// at scale.
func (r *Registry) RenderExport(s Surface, scale float64) {
	renderExport(s, r.committed, scale)
}

// Snapshot returns an immutable copy of the committed picture.
func (r *Registry) Snapshot(size float64) Picture {
	return NewPicture(size, r.committed...)
}

func (r *Registry) changed() {
	if r.onChange != nil {
		r.onChange()
	}
}

func pop(s *[]Drawable) (Drawable, bool) {
	n := len(*s)
	if n == 0 {
		return nil, false
	}
	d := (*s)[n-1]
	(*s)[n-1] = nil
	*s = (*s)[:n-1]
	return d, true
}

func renderExport(s Surface, ds []Drawable, scale float64) {
	s.FillBackground(White)
	for _, d := range ds {
		Render(s, d, scale)
	}
}
