package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/integralab/internal/numeric"
	"github.com/san-kum/integralab/internal/viz"
)

const (
	DefaultSamples    = 200
	DefaultWidth      = 600.0
	DefaultHeight     = 400.0
	DefaultPadding    = 30.0
	DefaultMargin     = 1.0
	DefaultRule       = "midpoint"
	DefaultExpression = "0.5*sin(x)+1"
	DefaultA          = 0.5
	DefaultB          = 3.5
	DefaultStep       = 0.02
	DefaultFPS        = 60
	DefaultAnimPad    = 40.0
	DefaultFormat     = "svg"
	DefaultScale      = 1.0
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Plot      PlotConfig      `yaml:"plot" toml:"plot" json:"plot"`
	Integral  IntegralConfig  `yaml:"integral" toml:"integral" json:"integral"`
	Animation AnimationConfig `yaml:"animation" toml:"animation" json:"animation"`
	Export    ExportConfig    `yaml:"export" toml:"export" json:"export"`
}

// PlotConfig sizes plots. Margin widens the x range on both sides of the
// integration limits.
type PlotConfig struct {
	Samples int     `yaml:"samples" toml:"samples" json:"samples"`
	Width   float64 `yaml:"width" toml:"width" json:"width"`
	Height  float64 `yaml:"height" toml:"height" json:"height"`
	Padding float64 `yaml:"padding" toml:"padding" json:"padding"`
	Margin  float64 `yaml:"margin" toml:"margin" json:"margin"`
}

type IntegralConfig struct {
	Partitions int    `yaml:"partitions" toml:"partitions" json:"partitions"`
	Rule       string `yaml:"rule" toml:"rule" json:"rule"`
}

type AnimationConfig struct {
	Expression string  `yaml:"expression" toml:"expression" json:"expression"`
	A          float64 `yaml:"a" toml:"a" json:"a"`
	B          float64 `yaml:"b" toml:"b" json:"b"`
	Step       float64 `yaml:"step" toml:"step" json:"step"`
	FPS        int     `yaml:"fps" toml:"fps" json:"fps"`
	Padding    float64 `yaml:"padding" toml:"padding" json:"padding"`
}

// ExportConfig controls file output. Scale multiplies the plot size for
// raster formats.
type ExportConfig struct {
	Format string  `yaml:"format" toml:"format" json:"format"`
	Scale  float64 `yaml:"scale" toml:"scale" json:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Plot: PlotConfig{
			Samples: DefaultSamples,
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Padding: DefaultPadding,
			Margin:  DefaultMargin,
		},
		Integral: IntegralConfig{
			Partitions: numeric.DefaultPartitions,
			Rule:       DefaultRule,
		},
		Animation: AnimationConfig{
			Expression: DefaultExpression,
			A:          DefaultA,
			B:          DefaultB,
			Step:       DefaultStep,
			FPS:        DefaultFPS,
			Padding:    DefaultAnimPad,
		},
		Export: ExportConfig{
			Format: DefaultFormat,
			Scale:  DefaultScale,
		},
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load reads a YAML or TOML file (chosen by extension) over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Plot.Samples < 1:
		return fmt.Errorf("%w: plot.samples must be positive, got %d", ErrInvalidConfig, c.Plot.Samples)
	case !c.Frame().Valid():
		return fmt.Errorf("%w: plot frame %gx%g leaves no room inside padding %g",
			ErrInvalidConfig, c.Plot.Width, c.Plot.Height, c.Plot.Padding)
	case c.Plot.Margin < 0:
		return fmt.Errorf("%w: plot.margin must not be negative", ErrInvalidConfig)
	case c.Integral.Partitions < 0:
		return fmt.Errorf("%w: integral.partitions must not be negative", ErrInvalidConfig)
	case c.Animation.A >= c.Animation.B:
		return fmt.Errorf("%w: animation needs a < b, got [%g, %g]", ErrInvalidConfig, c.Animation.A, c.Animation.B)
	case c.Animation.Step <= 0:
		return fmt.Errorf("%w: animation.step must be positive", ErrInvalidConfig)
	case c.Animation.FPS < 1:
		return fmt.Errorf("%w: animation.fps must be positive", ErrInvalidConfig)
	case c.Export.Scale <= 0:
		return fmt.Errorf("%w: export.scale must be positive", ErrInvalidConfig)
	}
	if _, err := numeric.NewRule(c.Integral.Rule); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Export.Format {
	case "svg", "png", "json":
	default:
		return fmt.Errorf("%w: unknown export format %q", ErrInvalidConfig, c.Export.Format)
	}
	return nil
}

// Frame is the drawing frame for plots.
func (c *Config) Frame() viz.Frame {
	return viz.Frame{Width: c.Plot.Width, Height: c.Plot.Height, Padding: c.Plot.Padding}
}

// AnimationFrame is the drawing frame for the accumulation view.
func (c *Config) AnimationFrame() viz.Frame {
	return viz.Frame{Width: c.Plot.Width, Height: c.Plot.Height, Padding: c.Animation.Padding}
}

// ApplyPreset copies a preset's integrand and limits into the animation
// section.
func (c *Config) ApplyPreset(p *Preset) {
	c.Animation.Expression = p.Expression
	c.Animation.A = p.Lower
	c.Animation.B = p.Upper
	if p.Step > 0 {
		c.Animation.Step = p.Step
	}
}
