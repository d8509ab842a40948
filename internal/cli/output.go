package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/pipeline"
)

// basePath strips a known format extension from output, so that
// "drawing.png" and "drawing" both yield "drawing".
func basePath(output string) string {
	if output == "" {
		return pipeline.DefaultFilename
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes every format of result next to base and returns
// the written paths in format order.
func writeArtifacts(ctx context.Context, result *pipeline.Result, formats []string, base string) ([]string, error) {
	logger := loggerFromContext(ctx)

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := result.Artifacts[format]
		if !ok {
			return paths, errors.New(errors.ErrCodeInternal, "missing %s artifact", format)
		}
		path := pipeline.Filename(base, format)
		if err := errors.ValidateOutputPath(path); err != nil {
			return paths, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		logger.Debugf("Wrote %s: %d bytes", path, len(data))
		paths = append(paths, path)
	}
	return paths, nil
}

// printResult prints the written files and export statistics.
func printResult(result *pipeline.Result, paths []string) {
	printSuccess("Exported %d drawables", result.Stats.Drawables)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.PixelSize, len(paths), result.CacheInfo.RenderHit)
}
