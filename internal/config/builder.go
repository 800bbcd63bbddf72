package config

import (
	"io"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the untimed search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.DefaultDepth = depth
	return b
}

// WithTimeBands replaces the clock bands.
func (b *ConfigBuilder) WithTimeBands(bands ...TimeBand) *ConfigBuilder {
	b.cfg.Search.TimeBands = bands
	return b
}

// WithMateDepth sets the mate-solver depths.
func (b *ConfigBuilder) WithMateDepth(depth, nearKing int) *ConfigBuilder {
	b.cfg.Search.MateDepth = depth
	b.cfg.Search.MateDepthNearKing = nearKing
	return b
}

// WithMateSafety controls the mate-in-one root filter.
func (b *ConfigBuilder) WithMateSafety(enabled bool) *ConfigBuilder {
	b.cfg.Search.MateSafety = enabled
	return b
}

// WithWorkers sets the worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithPromotions sets the promotion set.
func (b *ConfigBuilder) WithPromotions(kinds ...chess.Kind) *ConfigBuilder {
	b.cfg.Rules.Promotions = kinds
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithBoard controls whether boards are printed after each move.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithHumanColor sets the side played from standard input.
func (b *ConfigBuilder) WithHumanColor(c chess.Color) *ConfigBuilder {
	b.cfg.Play.HumanColor = c
	return b
}

// WithClock sets the starting clock per side.
func (b *ConfigBuilder) WithClock(d time.Duration) *ConfigBuilder {
	b.cfg.Play.Clock = d
	return b
}

// WithMaxPlies sets the ply limit for a game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Play.MaxPlies = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
