package hashing

import (
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

func benchBoards(b *testing.B) map[string]*chess.Board {
	midgame := chess.DefaultBoard()
	testutil.MustPlay(b, midgame, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6")
	endgame := testutil.BoardFromPieces(b, chess.White, "kf7", "Kf2", "Re1")
	return map[string]*chess.Board{
		"Initial": chess.DefaultBoard(),
		"Midgame": midgame,
		"Endgame": endgame,
	}
}

func BenchmarkZobristHash(b *testing.B) {
	for name, board := range benchBoards(b) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				board.Hash()
			}
		})
	}
}

func BenchmarkWeakHash(b *testing.B) {
	for name, board := range benchBoards(b) {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				WeakHash(board)
			}
		})
	}
}

func BenchmarkRepetitionTracker_Record(b *testing.B) {
	for _, exact := range []bool{false, true} {
		name := "Fast"
		if exact {
			name = "Exact"
		}
		b.Run(name, func(b *testing.B) {
			board := chess.DefaultBoard()
			tracker := NewRepetitionTracker(exact)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tracker.Record(board)
			}
		})
	}
}
