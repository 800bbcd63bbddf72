package chess_test

import (
	"sort"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

// refereePosition loads b's position into an independent rules implementation.
func refereePosition(t *testing.T, b *chess.Board) *notnil.Position {
	t.Helper()
	opt, err := notnil.FEN(b.FEN())
	if err != nil {
		t.Fatalf("FEN %q rejected: %v", b.FEN(), err)
	}
	return notnil.NewGame(opt).Position()
}

func TestReferee_LegalMoves(t *testing.T) {
	for name, b := range roundTripBoards(t) {
		t.Run(name, func(t *testing.T) {
			b = b.Clone()
			testutil.AssertNoError(t, b.SetPromotionKinds(chess.AllPromotions...))

			got := testutil.MoveStrings(b.Moves(b.SideToMove()))
			sort.Strings(got)

			var want []string
			for _, m := range refereePosition(t, b).ValidMoves() {
				want = append(want, m.String())
			}
			sort.Strings(want)

			testutil.AssertEqual(t, got, want, "legal moves of %s", b.FEN())
		})
	}
}

func TestReferee_GameEnd(t *testing.T) {
	tests := []struct {
		name   string
		toMove chess.Color
		pieces []string
		moves  []string
	}{
		{"queen check", chess.Black, []string{"Ke1", "ke8", "Qa8"}, nil},
		{"queen and rook mate", chess.Black, []string{"Ke1", "ke8", "Qa8", "Rb7"}, nil},
		{"back rank rook mate", chess.Black, []string{"Kg6", "kh8", "Ra8"}, nil},
		{"queen stalemate", chess.Black, []string{"ka8", "Qb6", "Kc8"}, nil},
		{"smothered mate", chess.White, []string{"kh8", "rg8", "pg7", "ph7", "Ng5", "Kg1"}, []string{"g5f7"}},
		{"queen takes f7", chess.White, []string{"ke8", "bd8", "pd7", "pf7", "Qh5", "Kg1", "Bc4"}, []string{"h5f7"}},
		{"king takes f7", chess.White, []string{"ke8", "bd8", "pd7", "pf7", "Qh5", "Kg1", "Bb5"}, []string{"h5f7"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := testutil.BoardFromPieces(t, tt.toMove, tt.pieces...)
			testutil.MustPlay(t, b, tt.moves...)
			side := b.SideToMove()
			status := refereePosition(t, b).Status()

			testutil.AssertEqual(t, b.IsCheckMate(side), status == notnil.Checkmate, "checkmate of %s", b.FEN())
			testutil.AssertEqual(t, b.IsDraw(side), status == notnil.Stalemate, "stalemate of %s", b.FEN())
		})
	}
}
