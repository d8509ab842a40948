package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/pipeline"
	"github.com/matzehuels/sketchpad/pkg/render"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// drawFlags holds command-line overrides for the draw command.
type drawFlags struct {
	output  string
	formats string
	scale   float64
	sticky  bool
	seed    uint64
	noCache bool
	logFile string
}

// drawCommand creates the interactive draw command.
func (c *CLI) drawCommand() *cobra.Command {
	var flags drawFlags

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Open the interactive drawing pad",
		Long: `Open the interactive drawing pad in the terminal.

Drag with the left mouse button to draw. Keys select the brush (1 thin,
2 thick), a random color (k), stickers (s cycles, t adds custom text, b
returns to the brush) and history operations (u undo, r redo, c clear).
Press e to export the picture; the default is canvas.png at 4x scale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if err := applyDrawFlags(cmd, &cfg, flags); err != nil {
				return err
			}
			return c.runDraw(cmd.Context(), cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output base path (default \"canvas\")")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "export format(s): png (default), pdf, svg, json (comma-separated)")
	cmd.Flags().Float64Var(&flags.scale, "scale", 0, "export scale factor (default 4)")
	cmd.Flags().BoolVar(&flags.sticky, "sticky-stickers", false, "keep a sticker selected after placing it")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "random color seed (default 42)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file while the pad is open")

	return cmd
}

// applyDrawFlags overrides config values with flags the user set.
func applyDrawFlags(cmd *cobra.Command, cfg *Config, flags drawFlags) error {
	if err := applyExportFlags(cmd, cfg, flags.output, flags.formats, flags.scale); err != nil {
		return err
	}
	if cmd.Flags().Changed("sticky-stickers") {
		cfg.Canvas.StickyStickers = flags.sticky
	}
	if cmd.Flags().Changed("seed") {
		cfg.Canvas.Seed = flags.seed
	}
	return nil
}

// applyExportFlags overrides the export section with the shared export flags.
func applyExportFlags(cmd *cobra.Command, cfg *Config, output, formats string, scale float64) error {
	if cmd.Flags().Changed("output") {
		cfg.Export.Output = output
	}
	if cmd.Flags().Changed("format") {
		fs, err := pipeline.ParseFormats(formats)
		if err != nil {
			return err
		}
		cfg.Export.Formats = fs
	}
	if cmd.Flags().Changed("scale") {
		if err := errors.ValidateScale(scale); err != nil {
			return err
		}
		cfg.Export.Scale = scale
	}
	return nil
}

// runDraw runs the pad until the user quits.
func (c *CLI) runDraw(ctx context.Context, cfg Config, flags drawFlags) error {
	restore, err := c.redirectLogs(flags.logFile)
	if err != nil {
		return err
	}
	defer restore()

	opts, err := cfg.sketchOptions(c.Logger)
	if err != nil {
		return err
	}
	opts.NewSurface = render.NewSurface

	size := int(opts.Size)
	live, err := render.NewRaster(size, size)
	if err != nil {
		return err
	}
	defer live.Close()

	pad, err := sketch.New(live, opts)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg.Cache, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	exportOpts := cfg.exportOptions(c.Logger, false)
	if err := exportOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	base := basePath(cfg.Export.Output)

	export := func(pic sketch.Picture) tea.Cmd {
		return func() tea.Msg {
			res, err := runner.Export(ctx, pic, exportOpts)
			if err != nil {
				return exportedMsg{err: err}
			}
			paths, err := writeArtifacts(ctx, res, exportOpts.Formats, base)
			return exportedMsg{paths: paths, cached: res.CacheInfo.RenderHit, err: err}
		}
	}

	prog := tea.NewProgram(newPadModel(pad, live, export),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	if _, err := prog.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run pad: %w", err)
	}

	c.Logger.Info("pad closed", "drawables", len(pad.Committed()))
	return nil
}

// redirectLogs sends log output to path, or discards it, while the
// alternate screen is active. The returned func restores stderr.
func (c *CLI) redirectLogs(path string) (func(), error) {
	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}
	c.Logger.SetOutput(w)
	return func() {
		c.Logger.SetOutput(os.Stderr)
		if f != nil {
			f.Close()
		}
	}, nil
}
