package eval

import (
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

func TestEvaluate_StartPosition(t *testing.T) {
	b := chess.DefaultBoard()

	// Equal material and mobility: only the bishop pair and the move bonus count.
	testutil.AssertEqual(t, Evaluate(b, chess.White), BishopPairBonus+SideToMoveBonus)
	testutil.AssertEqual(t, Evaluate(b, chess.Black), BishopPairBonus)
	testutil.AssertEqual(t, Material(b, chess.White), Material(b, chess.Black))
}

func TestEvaluate_Idempotent(t *testing.T) {
	b := chess.DefaultBoard()
	testutil.MustPlay(t, b, "e2e4", "d7d5", "e4d5", "d8d5", "b1c3")
	fen, hash := b.FEN(), b.Hash()

	first := Evaluate(b, chess.Black)
	second := Evaluate(b, chess.Black)

	testutil.AssertEqual(t, second, first)
	testutil.AssertEqual(t, b.FEN(), fen, "Evaluate changed the board")
	testutil.AssertEqual(t, b.Hash(), hash)
}

func TestEvaluate_Checkmate(t *testing.T) {
	b := testutil.BoardFromPieces(t, chess.Black, "Kg6", "kh8", "Ra8")

	testutil.AssertEqual(t, Evaluate(b, chess.White), MateScore)
	testutil.AssertEqual(t, Evaluate(b, chess.Black), -MateScore)
}

func TestEvaluate_StalemateIsNotMate(t *testing.T) {
	b := testutil.BoardFromPieces(t, chess.Black, "ka8", "Qb6", "Kc8")

	got := Evaluate(b, chess.White)
	if got >= MateScore || got <= -MateScore {
		t.Errorf("Evaluate() = %d on a stalemate, want a non-mate score", got)
	}
}

func TestEvaluate_ComposesTerms(t *testing.T) {
	b := chess.DefaultBoard()
	testutil.MustPlay(t, b, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1")

	own := len(b.Moves(chess.White))
	theirs := len(b.Moves(chess.Black))
	want := CastledBonus + BishopPairBonus + own - theirs +
		Material(b, chess.White) - Material(b, chess.Black)

	testutil.AssertEqual(t, Evaluate(b, chess.White), want)
}

func TestIsEndgame(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		want   bool
	}{
		{"bare kings", []string{"Ke1", "ke8"}, true},
		{"queens only", []string{"Ke1", "ke8", "Qd1", "qd8", "Pa2"}, true},
		{"rooks without queens", []string{"Ke1", "ke8", "Ra1", "ra8"}, true},
		{"queen and rook", []string{"Ke1", "ke8", "Qd1", "ra8"}, false},
		{"queen and knight", []string{"Ke1", "ke8", "Qd1", "nb8"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := testutil.BoardFromPieces(t, chess.White, tt.pieces...)
			testutil.AssertEqual(t, IsEndgame(b), tt.want)
		})
	}
	testutil.AssertFalse(t, IsEndgame(chess.DefaultBoard()), "start position")
}

func TestQueenNearKing(t *testing.T) {
	near := testutil.BoardFromPieces(t, chess.White, "Ke1", "kh8", "Qf6")
	far := testutil.BoardFromPieces(t, chess.White, "Ke1", "kh8", "Qe5")

	testutil.AssertTrue(t, QueenNearKing(near, chess.White), "queen two steps away")
	testutil.AssertFalse(t, QueenNearKing(far, chess.White), "queen three steps away")
	testutil.AssertFalse(t, QueenNearKing(near, chess.Black), "black has no queen")
}

func TestTableIndex(t *testing.T) {
	tests := []struct {
		color chess.Color
		sq    string
		want  int
	}{
		{chess.White, "a1", 0},
		{chess.White, "h8", 63},
		{chess.White, "e2", 12},
		{chess.Black, "a8", 0},
		{chess.Black, "h1", 63},
		{chess.Black, "e7", 12},
	}
	for _, tt := range tests {
		if got := tableIndex(tt.color, chess.MustSquare(tt.sq)); got != tt.want {
			t.Errorf("tableIndex(%v, %s) = %d, want %d", tt.color, tt.sq, got, tt.want)
		}
	}
}

func TestPawnStructure(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		pawn   string
		want   int
	}{
		{"isolated", []string{"Pa2"}, "a2", IsolatedPenalty},
		{"doubled and isolated", []string{"Pa2", "Pa3"}, "a2", DoubledIsolatedPenalty},
		{"doubled", []string{"Pa2", "Pa3", "Pb2"}, "a2", DoubledPenalty},
		{"connected passed", []string{"Pd5", "Pe5"}, "e5", ConnectedPassedBonus},
		{"protected passed", []string{"Pe5", "Pd4", "pc6"}, "e5", ProtectedPassedBonus},
		{"passed", []string{"Pe5", "Pd3", "pc4"}, "e5", PassedBonus},
		{"blocked", []string{"Pd2", "Pe4", "pe5"}, "e4", 0},
		{"black passed", []string{"pd4", "pe4"}, "e4", ConnectedPassedBonus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pieces := append([]string{"Kh1", "kh8"}, tt.pieces...)
			b := testutil.BoardFromPieces(t, chess.White, pieces...)
			p := b.At(chess.MustSquare(tt.pawn))
			testutil.AssertEqual(t, pawnStructure(b, p), tt.want)
		})
	}
}

func TestRookTerms(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		rook   string
		want   int
	}{
		{"open file", []string{"Ra1"}, "a1", rookOpenFileBonus},
		{"semi-open file", []string{"Ra1", "pa6"}, "a1", rookSemiOpenFileBonus},
		{"closed file", []string{"Ra1", "Pa2", "pa7"}, "a1", 0},
		{"doubled on open file", []string{"Ra1", "Ra3"}, "a1", rookDoubledOpenFileBonus},
		{"doubled on semi-open file", []string{"Ra1", "Qa3", "pa6"}, "a1", rookDoubledSemiOpenBonus},
		{"seventh rank", []string{"Ra7"}, "a7", rookSeventhRankBonus + rookOpenFileBonus},
		{"doubled on seventh", []string{"Ra7", "Rb7"}, "a7", rookSeventhRankBonus + rookDoubledSeventhBonus + rookOpenFileBonus},
		{"enemy queen on file", []string{"Ra1", "qa8"}, "a1", rookQueenFileBonus + rookOpenFileBonus},
		{"black seventh rank", []string{"ra2"}, "a2", rookSeventhRankBonus + rookOpenFileBonus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pieces := append([]string{"Ke1", "ke8"}, tt.pieces...)
			b := testutil.BoardFromPieces(t, chess.White, pieces...)
			p := b.At(chess.MustSquare(tt.rook))
			testutil.AssertEqual(t, rookTerms(b, p), tt.want)
		})
	}
}

func TestBlocksCenterPawn(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		piece  string
		want   bool
	}{
		{"knight on d3", []string{"Nd3", "Pd2"}, "d3", true},
		{"bishop on e3", []string{"Be3", "Pe2"}, "e3", true},
		{"black knight on d6", []string{"nd6", "pd7"}, "d6", true},
		{"pawn already moved", []string{"Nd3", "Pd4"}, "d3", false},
		{"wing pawn", []string{"Nc3", "Pc2"}, "c3", false},
		{"enemy pawn", []string{"Ne3", "pe2"}, "e3", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pieces := append([]string{"Kh1", "kh8"}, tt.pieces...)
			b := testutil.BoardFromPieces(t, chess.White, pieces...)
			testutil.AssertEqual(t, blocksCenterPawn(b, b.At(chess.MustSquare(tt.piece))), tt.want)
		})
	}
}

func TestKnightTerms_TempoLoss(t *testing.T) {
	b := chess.DefaultBoard()
	testutil.MustPlay(t, b, "g1f3", "g8f6", "f3g5")

	knight := b.At(chess.MustSquare("g5"))
	testutil.AssertEqual(t, knightTerms(b, knight, false), knightTempoPenalty)
	testutil.AssertEqual(t, knightTerms(b, knight, true), knightTempoPenalty+knightEndgamePenalty)

	fresh := b.At(chess.MustSquare("f6"))
	testutil.AssertEqual(t, knightTerms(b, fresh, false), 0)
}

func TestPieceValue_QueenOutEarly(t *testing.T) {
	b := chess.DefaultBoard()
	testutil.MustPlay(t, b, "e2e4", "e7e5", "d1h5")

	sq := chess.MustSquare("h5")
	want := QueenValue + queenTable[tableIndex(chess.White, sq)] + queenOutEarlyPenalty
	testutil.AssertEqual(t, PieceValue(b, b.At(sq)), want)
}

func TestPieceValue_KingPhase(t *testing.T) {
	b := testutil.BoardFromPieces(t, chess.White, "Ke1", "ke8")
	testutil.AssertEqual(t, PieceValue(b, b.At(chess.MustSquare("e1"))), KingValue+kingEndgameTable[4])

	b = chess.DefaultBoard()
	testutil.AssertEqual(t, PieceValue(b, b.At(chess.MustSquare("e1"))), KingValue+kingMiddlegameTable[4])
	testutil.AssertEqual(t, PieceValue(b, b.At(chess.MustSquare("e8"))), KingValue+kingMiddlegameTable[4])
}

func TestBaseValue(t *testing.T) {
	testutil.AssertEqual(t, BaseValue(chess.PawnKind), PawnValue)
	testutil.AssertEqual(t, BaseValue(chess.QueenKind), QueenValue)
	testutil.AssertEqual(t, BaseValue(chess.KingKind), KingValue)
}
