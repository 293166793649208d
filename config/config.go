// Package config loads astarmap settings from defaults, an optional YAML
// file and environment variables, in that order of increasing priority, and
// validates the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/astarmap/astar"
	"github.com/katalvlaran/astarmap/builder"
	"github.com/katalvlaran/astarmap/core"
	"github.com/katalvlaran/astarmap/locate"
)

// ErrInvalidConfig wraps every loading and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvNodes = "ASTARMAP_NODES"
	EnvEdges = "ASTARMAP_EDGES"
	EnvSeed  = "ASTARMAP_SEED"
)

var validate = validator.New()

// Config holds the generation, search and logging settings.
type Config struct {
	Nodes int `yaml:"nodes" validate:"min=1"`
	Edges int `yaml:"edges" validate:"min=0"`
	// Seed makes generation reproducible; nil means wall-clock seeding.
	Seed          *int64  `yaml:"seed,omitempty"`
	Bounds        Bounds  `yaml:"bounds"`
	Weights       Weights `yaml:"weights"`
	MaxAttempts   int     `yaml:"max_attempts" validate:"min=0"`
	IntegerCoords bool    `yaml:"integer_coords"`
	MaxExpansions int     `yaml:"max_expansions" validate:"min=0"`
	HitRadius     float64 `yaml:"hit_radius" validate:"gt=0"`
	Log           Log     `yaml:"log"`
}

// Bounds is the node placement rectangle; the max edges are exclusive.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x" validate:"gtfield=MinX"`
	MaxY float64 `yaml:"max_y" validate:"gtfield=MinY"`
}

// Weights is the inclusive edge weight range.
type Weights struct {
	Min int64 `yaml:"min" validate:"min=1"`
	Max int64 `yaml:"max" validate:"gtefield=Min"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the reference map settings: 100 nodes, 150 edges in
// [50,800)×[50,600), weights 1..20.
func Default() Config {
	return Config{
		Nodes: builder.DefaultNodeCount,
		Edges: builder.DefaultEdgeCount,
		Bounds: Bounds{
			MinX: builder.DefaultMinX, MinY: builder.DefaultMinY,
			MaxX: builder.DefaultMaxX, MaxY: builder.DefaultMaxY,
		},
		Weights:   Weights{Min: builder.DefaultMinWeight, Max: builder.DefaultMaxWeight},
		HitRadius: locate.DefaultHitRadius,
		Log:       Log{Level: "info"},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides, and validates it.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if err := cfg.decode(bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decode overlays YAML onto c; unknown keys are rejected.
func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overlays the ASTARMAP_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvNodes); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvNodes, v, err)
		}
		c.Nodes = n
	}
	if v, ok := lookup(EnvEdges); ok {
		e, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvEdges, v, err)
		}
		c.Edges = e
	}
	if v, ok := lookup(EnvSeed); ok {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = &s
	}

	return nil
}

// Validate checks struct tags, finite bounds, the node and weight caps of
// core, and the cross-field rule that the requested edge count fits in a
// simple graph.
func (c *Config) Validate() error {
	// NaN fails every comparison tag, so finiteness is checked first.
	for _, v := range []float64{c.Bounds.MinX, c.Bounds.MinY, c.Bounds.MaxX, c.Bounds.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bounds must be finite, got %+v", ErrInvalidConfig, c.Bounds)
		}
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	if c.Nodes > core.MaxNodes {
		return fmt.Errorf("%w: nodes=%d exceeds %d", ErrInvalidConfig, c.Nodes, core.MaxNodes)
	}
	if c.Weights.Max > core.MaxWeight {
		return fmt.Errorf("%w: weights.max=%d exceeds %d", ErrInvalidConfig, c.Weights.Max, core.MaxWeight)
	}
	if max := core.MaxEdges(c.Nodes); c.Edges > max {
		return fmt.Errorf("%w: edges=%d exceeds %d possible pairs for %d nodes",
			ErrInvalidConfig, c.Edges, max, c.Nodes)
	}

	return nil
}

// BuilderOptions translates the generation settings; logger may be nil.
func (c *Config) BuilderOptions(logger *zap.Logger) []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithBounds(orb.Bound{
			Min: orb.Point{c.Bounds.MinX, c.Bounds.MinY},
			Max: orb.Point{c.Bounds.MaxX, c.Bounds.MaxY},
		}),
		builder.WithWeightRange(c.Weights.Min, c.Weights.Max),
	}
	if c.Seed != nil {
		opts = append(opts, builder.WithSeed(*c.Seed))
	}
	if c.MaxAttempts > 0 {
		opts = append(opts, builder.WithMaxAttempts(c.MaxAttempts))
	}
	if c.IntegerCoords {
		opts = append(opts, builder.WithIntegerCoords())
	}
	if logger != nil {
		opts = append(opts, builder.WithLogger(logger))
	}

	return opts
}

// SearchOptions translates the search settings.
func (c *Config) SearchOptions() []astar.Option {
	return []astar.Option{astar.WithMaxExpansions(c.MaxExpansions)}
}

// NewLogger builds a production (JSON) or development (console) zap logger
// at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// formatValidationError flattens validator errors into "field: rule" pairs.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Namespace())
		switch fe.Tag() {
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "gt":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "gtfield":
			parts = append(parts, fmt.Sprintf("%s must be greater than %s", field, strings.ToLower(fe.Param())))
		case "gtefield":
			parts = append(parts, fmt.Sprintf("%s must not be below %s", field, strings.ToLower(fe.Param())))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}

	return strings.Join(parts, "; ")
}
