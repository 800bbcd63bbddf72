// Package eval scores chess positions statically.
package eval

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// MateScore is the score of a checkmate. Every other evaluation is strictly
// smaller in magnitude.
const MateScore = 1_000_000

// Position terms.
const (
	SideToMoveBonus    = 10
	BishopPairBonus    = 15
	CastledBonus       = 45
	QueenNearKingBonus = 25
)

// queenNearKing is the king-step distance counted as near.
const queenNearKing = 2

// Evaluate scores the position for color: positive favours color. It does
// not modify the board.
func Evaluate(b *chess.Board, color chess.Color) int {
	opp := color.Opposite()
	own := len(b.Moves(color))
	theirs := len(b.Moves(opp))

	if theirs == 0 && b.KingInCheck(opp) {
		return MateScore
	}
	if own == 0 && b.KingInCheck(color) {
		return -MateScore
	}

	endgame := IsEndgame(b)
	value := 0
	if b.FindKing(color).HasCastled() && !endgame {
		value += CastledBonus
	}
	if QueenNearKing(b, color) {
		value += QueenNearKingBonus
	}
	if hasBishopPair(b, color) {
		value += BishopPairBonus
	}
	if b.SideToMove() == color {
		value += SideToMoveBonus
	}
	value += own - theirs
	value += material(b, color, endgame) - material(b, opp, endgame)
	return value
}

// IsEndgame reports whether the board is in the endgame: no queens, or
// queens with neither rooks nor minor pieces left.
func IsEndgame(b *chess.Board) bool {
	var count [chess.NumKinds]int
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for _, p := range b.Pieces(c) {
			count[p.Kind()]++
		}
	}
	if count[chess.QueenKind] == 0 {
		return true
	}
	return count[chess.RookKind] == 0 && count[chess.KnightKind] == 0 && count[chess.BishopKind] == 0
}

// QueenNearKing reports whether a queen of color stands within two king
// steps of the opposing king.
func QueenNearKing(b *chess.Board, color chess.Color) bool {
	k := b.FindKing(color.Opposite()).Square()
	for _, p := range b.Pieces(color) {
		if p.Kind() == chess.QueenKind && chess.Distance(p.Square(), k) <= queenNearKing {
			return true
		}
	}
	return false
}

// Material returns the summed piece values of color.
func Material(b *chess.Board, color chess.Color) int {
	return material(b, color, IsEndgame(b))
}

func material(b *chess.Board, color chess.Color, endgame bool) int {
	total := 0
	for _, p := range b.Pieces(color) {
		total += pieceValue(b, p, endgame)
	}
	return total
}

func hasBishopPair(b *chess.Board, color chess.Color) bool {
	bishops := 0
	for _, p := range b.Pieces(color) {
		if p.Kind() == chess.BishopKind {
			bishops++
		}
	}
	return bishops >= 2
}
