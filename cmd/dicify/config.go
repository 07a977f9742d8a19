package main

import (
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/wbrown/img2dice"
	"github.com/wbrown/img2dice/display"
	"github.com/wbrown/img2dice/imageutil"
)

// Output modes.
const (
	ModeStatic = "static"
	ModeFrames = "frames"
	ModeGIF    = "gif"
	ModeWindow = "window"
)

// DefaultInput is read when no file is given on the command line.
const DefaultInput = "cat.jpg"

// Config holds every setting of a run. Environment variables provide the
// defaults and command-line flags override them.
type Config struct {
	Mode     string  `env:"DICIFY_MODE" envDefault:"static"`
	Output   string  `env:"DICIFY_OUTPUT"`
	Scale    float64 `env:"DICIFY_SCALE"`
	Seed     int64   `env:"DICIFY_SEED" envDefault:"0"`
	FPS      int     `env:"DICIFY_FPS" envDefault:"60"`
	MinSteps int     `env:"DICIFY_MIN_STEPS" envDefault:"5"`
	MaxSteps int     `env:"DICIFY_MAX_STEPS" envDefault:"50"`

	Sheet       string
	SheetCell   int
	Font        string
	Dithered    string
	WindowScale float64
	Quiet       bool
	Adjust      imageutil.Adjustments
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	cfg := Config{SheetCell: img2dice.DefaultSheetCell}
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}

// Validate checks the settings and fills in the ones that depend on the
// mode.
func (c *Config) Validate() error {
	c.Mode = strings.ToLower(c.Mode)
	switch c.Mode {
	case ModeStatic, ModeFrames, ModeGIF, ModeWindow:
	default:
		return errors.Errorf("invalid mode %q, options are static, frames, gif or window", c.Mode)
	}
	if c.Scale == 0 {
		c.Scale = defaultScale(c.Mode)
	}
	if c.Scale < 0 {
		return errors.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.FPS <= 0 {
		c.FPS = display.DefaultFPS
	}
	if c.MinSteps < 0 || c.MaxSteps < c.MinSteps {
		return errors.Errorf("invalid step range [%d, %d]", c.MinSteps, c.MaxSteps)
	}
	if c.SheetCell <= 0 {
		c.SheetCell = img2dice.DefaultSheetCell
	}
	if c.WindowScale <= 0 {
		c.WindowScale = 1.2
	}
	return nil
}

// defaultScale is the input scale used when none is configured. Stills
// are rendered at twice the size of animations.
func defaultScale(mode string) float64 {
	if mode == ModeStatic {
		return 2
	}
	return 1
}

// OutputPath returns where the mode writes for input. For frames mode it
// is the directory receiving the numbered files.
func (c *Config) OutputPath(input string) string {
	if c.Output != "" {
		return c.Output
	}
	base := filepath.Base(input)
	switch c.Mode {
	case ModeFrames:
		return "."
	case ModeGIF:
		return "dice_" + strings.TrimSuffix(base, filepath.Ext(base)) + ".gif"
	default:
		return "dice_" + base
	}
}
