package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Sketch hooks
	s := NoopSketchHooks{}
	s.OnCommit("stroke", "a", 1)
	s.OnUndo("stroke", "a", 0, 1)
	s.OnRedo("stroke", "a", 1, 0)
	s.OnClear(1)

	// Export hooks
	e := NoopExportHooks{}
	e.OnExportStart(ctx, []string{"png"}, 4)
	e.OnExportComplete(ctx, []string{"png"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Sketch().(NoopSketchHooks); !ok {
		t.Error("Sketch() should return NoopSketchHooks by default")
	}
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Export() should return NoopExportHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customSketch := &testSketchHooks{}
	SetSketchHooks(customSketch)
	if Sketch() != customSketch {
		t.Error("SetSketchHooks should set custom hooks")
	}

	customExport := &testExportHooks{}
	SetExportHooks(customExport)
	if Export() != customExport {
		t.Error("SetExportHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Sketch().(NoopSketchHooks); !ok {
		t.Error("Reset() should restore NoopSketchHooks")
	}
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Reset() should restore NoopExportHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testSketchHooks{}
	SetSketchHooks(custom)
	SetSketchHooks(nil)

	if Sketch() != custom {
		t.Error("SetSketchHooks(nil) should be ignored")
	}
}

type testSketchHooks struct{ NoopSketchHooks }
type testExportHooks struct{ NoopExportHooks }
type testCacheHooks struct{ NoopCacheHooks }
