package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// PlayConfig holds settings for interactive and self-play games.
type PlayConfig struct {
	// HumanColor is the side entered from standard input in play mode
	HumanColor chess.Color

	// Clock is the starting time per side (0 = untimed)
	Clock time.Duration

	// MaxPlies ends a game as a draw after this many plies (0 = no limit)
	MaxPlies int

	// RepetitionLimit is the occurrence count that draws a game
	RepetitionLimit int
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		HumanColor:      chess.White,
		MaxPlies:        200,
		RepetitionLimit: 3,
	}
}

// Validate checks that the play configuration is usable.
func (p *PlayConfig) Validate() error {
	if p.MaxPlies < 0 {
		return fmt.Errorf("max plies %d < 0: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	if p.RepetitionLimit < 2 {
		return fmt.Errorf("repetition limit %d < 2: %w", p.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if p.Clock < 0 {
		return fmt.Errorf("negative clock %v: %w", p.Clock, errors.ErrInvalidConfig)
	}
	return nil
}
