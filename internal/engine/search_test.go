package engine

import (
	"bytes"
	"testing"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/eval"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

// minimax is a plain negamax without pruning.
func minimax(b *chess.Board, side chess.Color, depth int) int {
	if depth <= 0 {
		return eval.Evaluate(b, side)
	}
	moves := b.Moves(side)
	if len(moves) == 0 {
		if b.KingInCheck(side) {
			return -eval.MateScore
		}
		return 0
	}
	best := -Inf
	for _, m := range SortMoves(b, moves) {
		m.Make()
		score := -minimax(b, side.Opposite(), depth-1)
		m.Unmake()
		if score > best {
			best = score
		}
	}
	return best
}

// minimaxRoot returns the first sorted move with the best minimax score.
func minimaxRoot(b *chess.Board, color chess.Color, depth int) (string, int) {
	best, bestScore := "", -Inf
	for _, m := range SortMoves(b, b.Moves(color)) {
		m.Make()
		score := -minimax(b, color.Opposite(), depth-1)
		m.Unmake()
		if score > bestScore {
			best, bestScore = m.String(), score
		}
	}
	return best, bestScore
}

func unsafePlayer() *Player {
	return NewPlayer(config.NewConfigBuilder().WithMateSafety(false).Build())
}

func TestSearch_MatchesMinimax(t *testing.T) {
	tests := []struct {
		name  string
		board func(testing.TB) *chess.Board
		color chess.Color
		depth int
	}{
		{"initial depth 1", func(testing.TB) *chess.Board { return chess.DefaultBoard() }, chess.White, 1},
		{"initial depth 2", func(testing.TB) *chess.Board { return chess.DefaultBoard() }, chess.White, 2},
		{"italian depth 2", italian, chess.White, 2},
		{"kiwipete depth 2", kiwipete, chess.Black, 2},
		{"rook endgame depth 3", rookEndgame, chess.White, 3},
		{"king and rook depth 3", func(t testing.TB) *chess.Board {
			return testutil.BoardFromPieces(t, chess.White, "kh8", "Kf6", "Ra1")
		}, chess.White, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := tt.board(t)
			before := b.FEN()

			wantMove, wantScore := minimaxRoot(b, tt.color, tt.depth)
			m, score := unsafePlayer().Search(b, tt.color, tt.depth)

			if m == nil {
				t.Fatal("no move returned")
			}
			testutil.AssertEqual(t, m.String(), wantMove)
			testutil.AssertEqual(t, score, wantScore)
			testutil.AssertEqual(t, b.FEN(), before, "search changed the board")
		})
	}
}

func TestSearch_PrunesNodes(t *testing.T) {
	b := italian(t)
	p := unsafePlayer()
	p.Search(b, chess.White, 3)

	testutil.AssertTrue(t, p.Nodes() > 0, "no nodes counted")
	testutil.AssertTrue(t, p.Nodes() < Perft(b, chess.White, 3)+Perft(b, chess.White, 2),
		"alpha-beta visited %d nodes, no fewer than a full tree", p.Nodes())
}

func TestSearch_DepthClamped(t *testing.T) {
	b := chess.DefaultBoard()
	p := unsafePlayer()

	m0, s0 := p.Search(b, chess.White, 0)
	m1, s1 := p.Search(b, chess.White, 1)
	testutil.AssertEqual(t, m0.String(), m1.String())
	testutil.AssertEqual(t, s0, s1)
}

func TestSearch_MateSafety(t *testing.T) {
	// Any rook move off the back rank allows Ra8 mate.
	b := testutil.BoardFromPieces(t, chess.Black, "kg8", "re8", "pf7", "pg7", "ph7", "Kg1", "Ra1", "Pf2", "Pg2", "Ph2")

	m, _ := NewPlayer(nil).Search(b, chess.Black, 1)
	if m == nil {
		t.Fatal("no move returned")
	}
	m.Make()
	testutil.AssertEqual(t, len(FindMateInDepth(b, chess.White, 1)), 0, "%s allows mate in one", m)
	m.Unmake()
}

func TestSearch_AllMovesLose(t *testing.T) {
	// Black's only move, Kg8, allows Qg7 mate, so the filtered search
	// falls back to the first sorted move with a mated score.
	b := testutil.BoardFromPieces(t, chess.Black, "kh8", "Kf6", "Qa7")
	moves := SortMoves(b, b.Moves(chess.Black))
	testutil.AssertTrue(t, len(moves) > 0, "black has no moves")

	m, score := NewPlayer(nil).Search(b, chess.Black, 2)
	testutil.AssertEqual(t, m.String(), moves[0].String())
	testutil.AssertEqual(t, score, -eval.MateScore)
}

func TestBestMove_TakesMate(t *testing.T) {
	b := testutil.BoardFromPieces(t, chess.White, "kg8", "pf7", "pg7", "ph7", "Kg1", "Ra1")

	m := NewPlayer(nil).BestMove(b, chess.White, 0)
	if m == nil {
		t.Fatal("no move returned")
	}
	testutil.AssertEqual(t, m.String(), "a1a8")
	testutil.AssertNoError(t, b.Play(m))
	testutil.AssertTrue(t, b.IsCheckMate(chess.Black), "a1a8 should mate")
}

func TestBestMove_NoMoves(t *testing.T) {
	stalemate := testutil.BoardFromPieces(t, chess.Black, "kh8", "Qf7", "Kg6")
	testutil.AssertNil(t, NewPlayer(nil).BestMove(stalemate, chess.Black, 0))

	mated := testutil.BoardFromPieces(t, chess.Black, "kh8", "Qg7", "Kg6")
	testutil.AssertNil(t, NewPlayer(nil).BestMove(mated, chess.Black, time.Minute))
}

func TestBestMove_Legal(t *testing.T) {
	b := italian(t)
	m := NewPlayer(nil).BestMove(b, chess.White, 10*time.Second)
	if m == nil {
		t.Fatal("no move returned")
	}
	testutil.AssertNoError(t, b.Play(m))
}

func TestBestMove_Logs(t *testing.T) {
	var log bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&log).WithVerbosity(config.Trace).Build()
	b := testutil.BoardFromPieces(t, chess.White, "kg8", "pf7", "pg7", "ph7", "Kg1", "Ra1")

	NewPlayer(cfg).BestMove(b, chess.White, 0)
	testutil.AssertContains(t, log.String(), "white mates in 1 with a1a8")
}
