package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/pipeline"
	"github.com/matzehuels/sketchpad/pkg/sketch"
)

// Config is the contents of config.toml. Command-line flags override it.
//
//	[canvas]
//	size = 256
//	palette = ["#000000", "#e6194b", "#3cb44b"]
//	stickers = ["🍝", "🦴", "🧩"]
//
//	[export]
//	scale = 4
//	output = "canvas"
//	formats = ["png"]
//
//	[cache]
//	backend = "redis"
//	redis = { addr = "localhost:6379" }
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Export ExportConfig `toml:"export"`
	Cache  CacheConfig  `toml:"cache"`
}

// CanvasConfig configures the pad.
type CanvasConfig struct {
	Size                  float64  `toml:"size"`
	Palette               []string `toml:"palette"`
	Color                 string   `toml:"color"`
	ThinWidth             float64  `toml:"thin_width"`
	ThickWidth            float64  `toml:"thick_width"`
	Stickers              []string `toml:"stickers"`
	StickyStickers        bool     `toml:"sticky_stickers"`
	RandomizeOnToolSwitch bool     `toml:"randomize_on_tool_switch"`
	Seed                  uint64   `toml:"seed"`
}

// ExportConfig configures exported files.
type ExportConfig struct {
	Scale   float64  `toml:"scale"`
	Output  string   `toml:"output"` // base path without extension
	Formats []string `toml:"formats"`
}

// CacheConfig selects the artifact cache.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file (default), redis, none
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig addresses a redis server.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Scale:   pipeline.DefaultScale,
			Output:  pipeline.DefaultFilename,
			Formats: []string{pipeline.DefaultFormat},
		},
		Cache: CacheConfig{
			Backend: cacheBackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// loadConfig reads path on top of the defaults. An empty path reads the
// default location, where a missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
			}
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := pipeline.ValidateFormats(c.Export.Formats); err != nil {
		return err
	}
	if err := errors.ValidateScale(c.Export.Scale); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", cacheBackendFile, cacheBackendRedis, cacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	_, err := c.sketchOptions(nil)
	return err
}

// sketchOptions converts the canvas section into pad options.
func (c Config) sketchOptions(logger *log.Logger) (sketch.Options, error) {
	cc := c.Canvas
	palette, err := sketch.ParsePalette(cc.Palette)
	if err != nil {
		return sketch.Options{}, err
	}
	opts := sketch.Options{
		Size:                  cc.Size,
		ExportScale:           c.Export.Scale,
		Palette:               palette,
		ThinWidth:             cc.ThinWidth,
		ThickWidth:            cc.ThickWidth,
		StickyStickers:        cc.StickyStickers,
		RandomizeOnToolSwitch: cc.RandomizeOnToolSwitch,
		Seed:                  cc.Seed,
		Logger:                logger,
	}
	if len(cc.Stickers) > 0 {
		opts.Stickers = cc.Stickers
	}
	if cc.Color != "" {
		if opts.Color, err = sketch.ParseColor(cc.Color); err != nil {
			return sketch.Options{}, err
		}
	}
	opts.SetDefaults()
	return opts, opts.Validate()
}

// exportOptions converts the export section into runner options.
func (c Config) exportOptions(logger *log.Logger, refresh bool) pipeline.Options {
	return pipeline.Options{
		Formats: c.Export.Formats,
		Scale:   c.Export.Scale,
		Refresh: refresh,
		Logger:  logger,
	}
}
