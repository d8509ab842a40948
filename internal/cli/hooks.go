package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/observability"
)

// logHooks reports drawing, export and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

// installHooks registers logHooks for all event categories.
func installHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetSketchHooks(h)
	observability.SetExportHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnCommit(kind, id string, committed int) {
	h.logger.Debug("committed", "kind", kind, "id", id, "total", committed)
}

func (h logHooks) OnUndo(kind, id string, committed, redo int) {
	h.logger.Debug("undo", "kind", kind, "id", id, "committed", committed, "redo", redo)
}

func (h logHooks) OnRedo(kind, id string, committed, redo int) {
	h.logger.Debug("redo", "kind", kind, "id", id, "committed", committed, "redo", redo)
}

func (h logHooks) OnClear(dropped int) {
	h.logger.Debug("cleared", "dropped", dropped)
}

func (h logHooks) OnExportStart(ctx context.Context, formats []string, scale float64) {
	loggerFromContext(ctx).Debug("export started", "formats", formats, "scale", scale)
}

func (h logHooks) OnExportComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("export failed", "formats", formats, "duration", d, "error", err)
		return
	}
	l.Debug("export finished", "formats", formats, "duration", d)
}

func (h logHooks) OnCacheHit(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache hit", "key", keyType)
}

func (h logHooks) OnCacheMiss(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache miss", "key", keyType)
}

func (h logHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	loggerFromContext(ctx).Debug("cache set", "key", keyType, "bytes", size)
}
