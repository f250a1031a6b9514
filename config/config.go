// Package config loads interpreter and CLI settings from TOML.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/pdfvector/core"
	"github.com/tsawler/pdfvector/graphicsstate"
	"github.com/tsawler/pdfvector/pages"
)

// Config holds every setting. Keys absent from a file keep the defaults
// of New.
type Config struct {
	// MaxStackDepth limits how many q levels may be open at once; 0 removes
	// the limit
	MaxStackDepth int `toml:"max_stack_depth"`

	// Strict stops interpretation at the first diagnostic
	Strict bool

	// Scale is device pixels per user space unit
	Scale float32

	Log    LogConf
	Page   PageConf
	Output OutputConf

	md toml.MetaData
}

// LogConf configures the zap logger.
type LogConf struct {
	Level       string
	Development bool
}

// PageConf describes the page a raw content stream is drawn on.
type PageConf struct {
	// MediaBox entries must be written as floats, e.g. [0.0, 0.0, 612.0, 792.0]
	MediaBox []float64 `toml:"media_box"`
	Rotate   int
	UserUnit float64 `toml:"user_unit"`
}

// OutputConf names the files the CLI writes. Empty means no output.
type OutputConf struct {
	PNG string `toml:"png"`
	SVG string `toml:"svg"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		MaxStackDepth: graphicsstate.DefaultMaxStackDepth,
		Scale:         1,
		Log:           LogConf{Level: "info"},
		Page: PageConf{
			MediaBox: []float64{0, 0, 612, 792},
			UserUnit: 1,
		},
	}
}

// Load reads the TOML file at path. It fails on keys it does not know.
func Load(path string) (*Config, error) {
	return load(path, true)
}

// Parse is like Load but reads the configuration from a string.
func Parse(conf string) (*Config, error) {
	return load(conf, false)
}

func load(conf string, isFileName bool) (*Config, error) {
	c := New()
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, c)
	} else {
		md, err = toml.Decode(conf, c)
	}
	if err != nil {
		return c, errors.Wrap(err, "decoding configuration")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, errors.Errorf("undecoded fields in configuration: %v", undecoded)
	}
	c.md = md

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// IsDefined reports whether the file set key, e.g. "output", "png".
func (c *Config) IsDefined(key ...string) bool {
	return c.md.IsDefined(key...)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MaxStackDepth < 0 {
		return errors.Errorf("max_stack_depth must not be negative, got %d", c.MaxStackDepth)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", c.Scale)
	}
	if len(c.Page.MediaBox) != 4 {
		return errors.Errorf("page.media_box needs 4 numbers, got %d", len(c.Page.MediaBox))
	}
	if c.Page.Rotate%90 != 0 {
		return errors.Errorf("page.rotate must be a multiple of 90, got %d", c.Page.Rotate)
	}
	if c.Page.UserUnit <= 0 {
		return errors.Errorf("page.user_unit must be positive, got %v", c.Page.UserUnit)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	return nil
}

func (l LogConf) level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return level, errors.Wrapf(err, "log.level %q", l.Level)
	}
	return level, nil
}

// Logger builds the logger described by the [log] section.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := c.Log.level()
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}

// PageDict returns the [page] section as a page dictionary.
func (c *Config) PageDict() core.Dict {
	box := make(core.Array, len(c.Page.MediaBox))
	for i, v := range c.Page.MediaBox {
		box[i] = core.Real(v)
	}
	return core.Dict{
		"Type":     core.Name("Page"),
		"MediaBox": box,
		"Rotate":   core.Int(c.Page.Rotate),
		"UserUnit": core.Real(c.Page.UserUnit),
	}
}

// BasePage returns the page raw content streams are drawn on.
func (c *Config) BasePage() *pages.Page {
	return pages.NewPage(c.PageDict(), nil)
}
