package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// TimeBand maps a minimum remaining clock time to a search depth.
type TimeBand struct {
	Min   time.Duration
	Depth int
}

// SearchConfig holds settings for the move search and the mate solver.
type SearchConfig struct {
	// DefaultDepth is the search depth when no clock is running
	DefaultDepth int

	// TimeBands are tried in order; the first band whose Min does not
	// exceed the remaining time gives the depth
	TimeBands []TimeBand

	// MateDepth is the mate-solver depth tried before every search
	MateDepth int

	// MateDepthNearKing replaces MateDepth when a queen is close to the
	// enemy king
	MateDepthNearKing int

	// MateSafety rejects root moves that allow a mate in one
	MateSafety bool

	// Workers is the number of goroutines for parallel perft and puzzle
	// solving (0 = number of CPUs)
	Workers int
}

// DefaultTimeBands returns the standard clock bands: three plies with at
// least three minutes left, two with at least thirty seconds, otherwise one.
func DefaultTimeBands() []TimeBand {
	return []TimeBand{
		{Min: 3 * time.Minute, Depth: 3},
		{Min: 30 * time.Second, Depth: 2},
		{Min: 0, Depth: 1},
	}
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		DefaultDepth:      2,
		TimeBands:         DefaultTimeBands(),
		MateDepth:         1,
		MateDepthNearKing: 2,
		MateSafety:        true,
	}
}

// Validate checks that the search configuration is usable.
func (s *SearchConfig) Validate() error {
	if s.DefaultDepth < 1 {
		return fmt.Errorf("default depth %d < 1: %w", s.DefaultDepth, errors.ErrInvalidConfig)
	}
	if s.MateDepth < 0 || s.MateDepthNearKing < 0 {
		return fmt.Errorf("negative mate depth: %w", errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers %d < 0: %w", s.Workers, errors.ErrInvalidConfig)
	}
	for i, band := range s.TimeBands {
		if band.Depth < 1 {
			return fmt.Errorf("time band %d depth %d < 1: %w", i, band.Depth, errors.ErrInvalidConfig)
		}
		if i > 0 && band.Min >= s.TimeBands[i-1].Min {
			return fmt.Errorf("time bands not in descending order at %d: %w", i, errors.ErrInvalidConfig)
		}
	}
	return nil
}
