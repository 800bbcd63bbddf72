package engine

import (
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/eval"
)

// DepthForTime picks a search depth from the remaining clock time. A
// remaining time of zero or less means no clock and gives DefaultDepth.
func DepthForTime(remaining time.Duration, cfg *config.SearchConfig) int {
	if remaining <= 0 {
		return cfg.DefaultDepth
	}
	for _, band := range cfg.TimeBands {
		if remaining >= band.Min {
			return band.Depth
		}
	}
	return 1
}

// MateDepth returns how deep the mate solver looks before a search: deeper
// when a queen of color is already close to the enemy king.
func MateDepth(b *chess.Board, color chess.Color, cfg *config.SearchConfig) int {
	if eval.QueenNearKing(b, color) {
		return cfg.MateDepthNearKing
	}
	return cfg.MateDepth
}
