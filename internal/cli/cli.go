// Package cli implements the sketchpad command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchpad/pkg/buildinfo"
	"github.com/matzehuels/sketchpad/pkg/cache"
	"github.com/matzehuels/sketchpad/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "sketchpad"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
)

// Cache backends.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sketchpad is a terminal drawing pad with undo, stickers and PNG export",
		Long:         `Sketchpad draws freehand strokes and stickers with the mouse in your terminal, keeps a full undo/redo history and exports the picture as a scaled PNG (or PDF, SVG, JSON).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			installHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sketchpad/config.toml)")

	// Register all subcommands
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates an export runner for CLI use. Keys are scoped to the
// build version so a renderer upgrade never serves stale artifacts.
func (c *CLI) newRunner(ctx context.Context, cfg CacheConfig, noCache bool) (*pipeline.Runner, error) {
	if noCache {
		cfg.Backend = cacheBackendNone
	}
	ch, err := c.newCache(ctx, cfg)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.CachePrefix())
	return pipeline.NewRunner(ch, keyer, c.Logger), nil
}

// newCache opens the configured cache backend. An unreachable redis server
// or a missing cache directory degrades to no caching with a warning.
func (c *CLI) newCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case cacheBackendNone:
		return cache.NewNullCache(), nil
	case cacheBackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "addr", cfg.Redis.Addr, "error", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	default:
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warn("cache directory unavailable, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/sketchpad/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/sketchpad/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
