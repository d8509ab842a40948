package sketch

import (
	"slices"
	"testing"
)

func ids(ds []Drawable) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID().String()
	}
	return out
}

func TestRegistryUndoAll(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		reg := NewRegistry(nil)
		var committed []Drawable
		for i := 0; i < n; i++ {
			d := NewStroke(Thin, Black, Pt(float64(i), 0), Pt(float64(i), 1))
			reg.Commit(d)
			committed = append(committed, d)
		}
		for i := 0; i < n; i++ {
			if _, ok := reg.Undo(); !ok {
				t.Fatalf("n=%d: undo %d reported nothing to undo", n, i)
			}
		}

		if reg.Len() != 0 {
			t.Errorf("n=%d: committed = %d, want 0", n, reg.Len())
		}
		want := slices.Clone(committed)
		slices.Reverse(want)
		if got := reg.RedoBuffer(); !slices.Equal(ids(got), ids(want)) {
			t.Errorf("n=%d: redo buffer = %v, want %v", n, ids(got), ids(want))
		}
	}
}

func TestRegistryUndoRedoIdentity(t *testing.T) {
	reg := NewRegistry(nil)
	a := NewStroke(Thin, Black, Pt(0, 0), Pt(1, 1))
	b := NewSticker("🦴", Pt(5, 5), Black)
	reg.Commit(a)
	reg.Commit(b)

	before := ids(reg.Committed())
	reg.Undo()
	reg.Redo()
	if after := ids(reg.Committed()); !slices.Equal(before, after) {
		t.Errorf("undo;redo changed committed: %v -> %v", before, after)
	}
	if reg.CanRedo() {
		t.Error("redo buffer should be empty after undo;redo")
	}
}

func TestRegistryCommitClearsRedo(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Commit(NewStroke(Thin, Black))
	reg.Commit(NewStroke(Thin, Black))
	reg.Undo()
	reg.Undo()
	if !reg.CanRedo() {
		t.Fatal("expected redo entries")
	}

	reg.Commit(NewStroke(Thin, Black))
	if reg.CanRedo() {
		t.Error("commit after undo should clear the redo buffer")
	}
	if _, ok := reg.Redo(); ok {
		t.Error("redo after commit should be a no-op")
	}
}

func TestRegistryEmptyNoOps(t *testing.T) {
	changes := 0
	reg := NewRegistry(func() { changes++ })

	if d, ok := reg.Undo(); ok || d != nil {
		t.Errorf("Undo on empty = %v, %v", d, ok)
	}
	if d, ok := reg.Redo(); ok || d != nil {
		t.Errorf("Redo on empty = %v, %v", d, ok)
	}
	if reg.Len() != 0 || reg.CanRedo() {
		t.Error("empty registry changed")
	}
	if changes != 0 {
		t.Errorf("no-op undo/redo triggered %d redraws", changes)
	}
}

func TestRegistrySequence(t *testing.T) {
	reg := NewRegistry(nil)
	a := NewStroke(Thin, Black, Pt(0, 0), Pt(1, 0))
	b := NewStroke(Thick, Black, Pt(0, 1), Pt(1, 1))
	reg.Commit(a)
	reg.Commit(b)

	steps := []struct {
		name      string
		do        func()
		committed []Drawable
		redo      []Drawable
	}{
		{"undo", func() { reg.Undo() }, []Drawable{a}, []Drawable{b}},
		{"undo", func() { reg.Undo() }, nil, []Drawable{b, a}},
		{"redo", func() { reg.Redo() }, []Drawable{a}, []Drawable{b}},
	}

	for i, s := range steps {
		s.do()
		if got := ids(reg.Committed()); !slices.Equal(got, ids(s.committed)) {
			t.Errorf("step %d (%s): committed = %v, want %v", i, s.name, got, ids(s.committed))
		}
		if got := ids(reg.RedoBuffer()); !slices.Equal(got, ids(s.redo)) {
			t.Errorf("step %d (%s): redo = %v, want %v", i, s.name, got, ids(s.redo))
		}
	}
}

func TestRegistryClear(t *testing.T) {
	reg := NewRegistry(nil)
	for i := 0; i < 3; i++ {
		reg.Commit(NewStroke(Thin, Black))
	}
	reg.Undo()

	if n := reg.Clear(); n != 2 {
		t.Errorf("Clear dropped %d, want 2", n)
	}
	if reg.Len() != 0 || reg.CanRedo() {
		t.Error("Clear should empty both collections")
	}

	// Clearing an empty registry is still fine.
	if n := reg.Clear(); n != 0 {
		t.Errorf("second Clear dropped %d", n)
	}
}

func TestRegistryNotifies(t *testing.T) {
	changes := 0
	reg := NewRegistry(func() { changes++ })

	reg.Commit(NewStroke(Thin, Black))
	reg.Undo()
	reg.Redo()
	reg.Clear()
	if changes != 4 {
		t.Errorf("onChange called %d times, want 4", changes)
	}
}

func TestRegistryCopiesAreIndependent(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Commit(NewStroke(Thin, Black))

	got := reg.Committed()
	got[0] = nil
	if top, _ := reg.Top(); top == nil {
		t.Error("mutating Committed() result leaked into the registry")
	}
}

func TestRegistryRenderAll(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Commit(NewStroke(Thin, Black, Pt(0, 0), Pt(10, 0), Pt(10, 10)))
	reg.Commit(NewSticker("🧩", Pt(50, 50), Black))
	reg.Commit(NewStroke(Thin, Black, Pt(3, 3))) // single point: nothing drawn

	s := &recordSurface{}
	reg.RenderAll(s)

	if s.ops[0].kind != "clear" {
		t.Errorf("first op = %s, want clear", s.ops[0].kind)
	}
	if got := s.count("line"); got != 2 {
		t.Errorf("lines = %d, want 2", got)
	}
	if got := s.count("text"); got != 1 {
		t.Errorf("texts = %d, want 1", got)
	}

	// Idempotent: a second redraw produces the same ops.
	first := slices.Clone(s.ops)
	reg.RenderAll(s)
	if len(first) != len(s.ops) {
		t.Errorf("redraw not idempotent: %d ops then %d", len(first), len(s.ops))
	}
}

func TestRegistryRenderExport(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Commit(NewStroke(Thin, Black, Pt(10, 10), Pt(20, 10)))
	reg.Commit(NewSticker("🍝", Pt(50, 50), Black))

	s := &recordSurface{}
	reg.RenderExport(s, 4)

	want := []op{
		{kind: "background", c: White},
		{kind: "line", a: Pt(40, 40), b: Pt(80, 40), w: 8, c: Black},
		{kind: "text", a: Pt(200, 200), w: 160, c: Black, s: "🍝"},
	}
	if len(s.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", s.ops, want)
	}
	for i := range want {
		if s.ops[i].String() != want[i].String() {
			t.Errorf("op %d = %v, want %v", i, s.ops[i], want[i])
		}
	}

	// The registry is unchanged by scaling.
	st := reg.Committed()[0].(*Stroke)
	if pts := st.Points(); pts[0] != Pt(10, 10) || pts[1] != Pt(20, 10) {
		t.Errorf("export mutated stroke points: %v", pts)
	}
}
