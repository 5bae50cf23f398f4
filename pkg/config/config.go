// Package config loads the JSON settings file and fills in defaults for
// everything a run of the generator needs.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/chazu/goldberg/pkg/export"
	"github.com/chazu/goldberg/pkg/graph"
	"github.com/chazu/goldberg/pkg/polyhedron"
)

// Default settings applied by Resolve.
const (
	DefaultFormat  = export.FormatGLB
	DefaultOutput  = "out/sphere.glb"
	DefaultTimeout = "5s"
	DefaultSeed    = 1
)

// Config holds all configurable generator, engine and export settings.
type Config struct {
	Defaults    Defaults `json:"defaults"`
	Precision   float64  `json:"precision"`    // vertex dedup quantization, see polyhedron.WithPrecision
	Export      Export   `json:"export"`
	EvalTimeout string   `json:"eval_timeout"` // time.ParseDuration syntax
	Seed        int64    `json:"seed"`         // color source seed; zero selects DefaultSeed
	Palette     []string `json:"palette,omitempty"`
	LogLevel    string   `json:"log_level,omitempty"` // debug, info, warn, error
}

// Defaults are the shape parameters a script form falls back to.
type Defaults struct {
	Radius float64 `json:"radius"`
	Detail *int    `json:"detail"` // nil when unset; zero is a valid level
	Shape  string  `json:"shape"`
}

// Export selects the output file.
type Export struct {
	Format       string `json:"format"`
	Path         string `json:"path"`
	VertexColors bool   `json:"vertex_colors"` // random per-vertex colors from Seed
}

// Flags holds CLI flag values that override config file settings.
// Zero values (and Detail < 0) leave the file's setting alone.
type Flags struct {
	Radius float64
	Detail int
	Shape  string
	Format string
	Output string
	Seed   int64
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies flag overrides and fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Radius != 0 {
		c.Defaults.Radius = flags.Radius
	}
	if flags.Detail >= 0 {
		d := flags.Detail
		c.Defaults.Detail = &d
	}
	if flags.Shape != "" {
		c.Defaults.Shape = flags.Shape
	}
	if flags.Format != "" {
		c.Export.Format = flags.Format
	}
	if flags.Output != "" {
		c.Export.Path = flags.Output
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}

	if c.Defaults.Radius == 0 {
		c.Defaults.Radius = graph.DefaultRadius
	}
	if c.Defaults.Detail == nil {
		d := graph.DefaultDetail
		c.Defaults.Detail = &d
	}
	if c.Defaults.Shape == "" {
		c.Defaults.Shape = graph.ShapeGoldberg.String()
	}
	if c.Precision <= 0 {
		c.Precision = polyhedron.DefaultPrecision
	}
	if c.Export.Path == "" {
		c.Export.Path = DefaultOutput
		if c.Export.Format != "" {
			c.Export.Path = strings.TrimSuffix(DefaultOutput, ".glb") + "." + c.Export.Format
		}
	}
	if c.Export.Format == "" {
		if f, err := export.FormatFromPath(c.Export.Path); err == nil {
			c.Export.Format = string(f)
		} else {
			c.Export.Format = string(DefaultFormat)
		}
	}
	if c.EvalTimeout == "" {
		c.EvalTimeout = DefaultTimeout
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), export.DefaultPalette...)
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first setting that cannot be used. Call it after
// Resolve.
func (c *Config) Validate() error {
	if _, err := c.GraphDefaults(); err != nil {
		return err
	}
	if math.IsNaN(c.Precision) || math.IsInf(c.Precision, 0) || c.Precision <= 0 {
		return fmt.Errorf("config: precision must be positive and finite, got %g", c.Precision)
	}
	if _, err := c.Format(); err != nil {
		return err
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	for _, p := range c.Palette {
		if _, err := export.ParseHexColor(p); err != nil {
			return fmt.Errorf("config: palette: %w", err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// GraphDefaults converts Defaults to the scene graph's form.
func (c *Config) GraphDefaults() (graph.GlobalDefaults, error) {
	shape, err := graph.ParseShape(c.Defaults.Shape)
	if err != nil {
		return graph.GlobalDefaults{}, fmt.Errorf("config: defaults: %w", err)
	}
	if !(c.Defaults.Radius > 0) || math.IsInf(c.Defaults.Radius, 0) {
		return graph.GlobalDefaults{}, fmt.Errorf("config: defaults: radius must be positive, got %g", c.Defaults.Radius)
	}
	detail := graph.DefaultDetail
	if c.Defaults.Detail != nil {
		detail = *c.Defaults.Detail
	}
	if detail < 0 || detail > polyhedron.MaxDetail {
		return graph.GlobalDefaults{}, fmt.Errorf("config: defaults: detail %d outside [0,%d]", detail, polyhedron.MaxDetail)
	}
	return graph.GlobalDefaults{Radius: c.Defaults.Radius, Detail: detail, Shape: shape}, nil
}

// Format returns the export format.
func (c *Config) Format() (export.Format, error) {
	f, err := export.ParseFormat(c.Export.Format)
	if err != nil {
		return "", fmt.Errorf("config: %w", err)
	}
	return f, nil
}

// Timeout returns the parsed evaluation time limit.
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.EvalTimeout)
	if err != nil {
		return 0, fmt.Errorf("config: eval_timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: eval_timeout must be positive, got %s", d)
	}
	return d, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}
