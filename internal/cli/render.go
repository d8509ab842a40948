package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/errors"
	pio "github.com/matzehuels/sketchpad/pkg/io"
	"github.com/matzehuels/sketchpad/pkg/pipeline"
	"github.com/matzehuels/sketchpad/pkg/render"
	"github.com/matzehuels/sketchpad/pkg/script"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// renderFlags holds command-line overrides for the render command.
type renderFlags struct {
	output  string
	formats string
	scale   float64
	noCache bool
	refresh bool
}

// renderCommand creates the headless render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [script.toml | picture.json]",
		Short: "Replay a drawing script or load a picture and export it",
		Long: `Replay a drawing script or load a saved picture and export it.

A .toml input is a script of pointer and tool events. Every export step in
the script writes one set of files; a script without export steps is
exported once at the end. A .json input is a picture written by the json
format and is exported as is.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if err := applyExportFlags(cmd, &cfg, flags.output, flags.formats, flags.scale); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output base path (default \"canvas\")")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): png (default), pdf, svg, json (comma-separated)")
	cmd.Flags().Float64Var(&flags.scale, "scale", 0, "export scale factor (default 4)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even if artifacts are cached")

	return cmd
}

// job is one picture to export.
type job struct {
	pic   sketch.Picture
	base  string
	scale float64
}

// runRender loads input and exports every picture it yields.
func (c *CLI) runRender(ctx context.Context, input string, cfg Config, flags renderFlags) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	jobs, err := c.loadJobs(input, cfg)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg.Cache, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	for _, j := range jobs {
		opts := cfg.exportOptions(logger, flags.refresh)
		if j.scale != 0 {
			opts.Scale = j.scale
		}

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Exporting %s...", j.base))
		spinner.Start()
		res, err := runner.Export(ctx, j.pic, opts)
		if err != nil {
			spinner.StopWithError("Export failed")
			return fmt.Errorf("export %s: %w", j.base, err)
		}
		spinner.Stop()

		paths, err := writeArtifacts(ctx, res, opts.Formats, j.base)
		if err != nil {
			return err
		}
		printResult(res, paths)
	}

	prog.done(fmt.Sprintf("Rendered %s", input))
	return nil
}

// loadJobs reads a script or picture file.
func (c *CLI) loadJobs(input string, cfg Config) ([]job, error) {
	base := basePath(cfg.Export.Output)

	switch strings.ToLower(filepath.Ext(input)) {
	case ".json":
		pic, err := pio.ImportJSON(input)
		if err != nil {
			return nil, err
		}
		return []job{{pic: pic, base: base}}, nil
	case ".toml":
		return c.replayScript(input, cfg, base)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported input %s (want .toml or .json)", input)
	}
}

// replayScript replays the script at path on a headless pad.
func (c *CLI) replayScript(path string, cfg Config, base string) ([]job, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.sketchOptions(c.Logger)
	if err != nil {
		return nil, err
	}
	if err := s.Canvas.ApplyTo(&opts); err != nil {
		return nil, err
	}
	pad, err := sketch.New(render.NewRecorder(opts.Size, opts.Size), opts)
	if err != nil {
		return nil, err
	}

	captures, err := script.Replay(pad, s)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("replayed script", "steps", len(s.Steps), "exports", len(captures))

	if len(captures) == 0 {
		return []job{{pic: pad.Snapshot(), base: base}}, nil
	}
	jobs := make([]job, len(captures))
	for i, cp := range captures {
		jobs[i] = job{pic: cp.Picture, base: captureBase(base, cp, len(captures)), scale: cp.Scale}
	}
	return jobs, nil
}

// captureBase names the files of one export step. Named steps write next
// to base; unnamed steps are numbered when there are several.
func captureBase(base string, cp script.Capture, total int) string {
	switch {
	case cp.Name != "":
		return filepath.Join(filepath.Dir(base), cp.Name)
	case total > 1:
		return fmt.Sprintf("%s_%d", base, cp.Step)
	default:
		return base
	}
}
