package engine

import (
	"testing"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

func TestDepthForTime(t *testing.T) {
	cfg := config.NewSearchConfig()

	tests := []struct {
		name      string
		remaining time.Duration
		want      int
	}{
		{"untimed", 0, cfg.DefaultDepth},
		{"negative is untimed", -time.Second, cfg.DefaultDepth},
		{"plenty", 10 * time.Minute, 3},
		{"exactly three minutes", 3 * time.Minute, 3},
		{"just under three minutes", 3*time.Minute - time.Millisecond, 2},
		{"thirty seconds", 30 * time.Second, 2},
		{"short", 5 * time.Second, 1},
		{"one millisecond", time.Millisecond, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DepthForTime(tt.remaining, cfg); got != tt.want {
				t.Errorf("DepthForTime(%v) = %d, want %d", tt.remaining, got, tt.want)
			}
		})
	}
}

func TestDepthForTime_NoBands(t *testing.T) {
	cfg := config.NewSearchConfig()
	cfg.TimeBands = nil
	testutil.AssertEqual(t, DepthForTime(time.Hour, cfg), 1)
	testutil.AssertEqual(t, DepthForTime(0, cfg), cfg.DefaultDepth)
}

func TestMateDepth(t *testing.T) {
	cfg := config.NewSearchConfig()

	near := testutil.BoardFromPieces(t, chess.White, "kh8", "Qg6", "Ka1")
	testutil.AssertEqual(t, MateDepth(near, chess.White, cfg), cfg.MateDepthNearKing)

	far := testutil.BoardFromPieces(t, chess.White, "kh8", "Qa3", "Ka1")
	testutil.AssertEqual(t, MateDepth(far, chess.White, cfg), cfg.MateDepth)
}
