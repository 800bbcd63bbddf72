package chess

import (
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// IsAttacked reports whether any piece of color by attacks (r, c).
func (b *Board) IsAttacked(r, c int, by Color) bool {
	for _, p := range b.pieces[by] {
		if p.IsAttacking(b, r, c) {
			return true
		}
	}
	return false
}

// IsDefended reports whether any piece of color by covers (r, c).
func (b *Board) IsDefended(r, c int, by Color) bool {
	for _, p := range b.pieces[by] {
		if p.IsDefending(b, r, c) {
			return true
		}
	}
	return false
}

// king returns the king of color c, or nil.
func (b *Board) king(c Color) *King {
	for _, p := range b.pieces[c] {
		if k, ok := p.(*King); ok {
			return k
		}
	}
	return nil
}

// FindKing returns the king of color c. A board without one is an illegal
// state and panics.
func (b *Board) FindKing(c Color) *King {
	k := b.king(c)
	if k == nil {
		panic(errors.Wrapf(errors.ErrNoKing, "%s", c))
	}
	return k
}

// KingInCheck reports whether the king of color c is attacked.
func (b *Board) KingInCheck(c Color) bool {
	sq := b.FindKing(c).Square()
	return b.IsAttacked(sq.Row, sq.Col, c.Opposite())
}

// Moves returns every legal move of color c.
func (b *Board) Moves(c Color) []*Move {
	var moves []*Move
	// Move generation trial-makes moves, so iterate over a stable copy.
	for _, p := range b.Pieces(c) {
		moves = append(moves, p.Moves(b)...)
	}
	return moves
}

// HasMoves reports whether color c has at least one legal move.
func (b *Board) HasMoves(c Color) bool {
	for _, p := range b.Pieces(c) {
		if len(p.Moves(b)) > 0 {
			return true
		}
	}
	return false
}

// IsCheckMate reports whether color c is in check with no legal move.
func (b *Board) IsCheckMate(c Color) bool {
	return b.KingInCheck(c) && !b.HasMoves(c)
}

// IsDraw reports whether color c is stalemated: not in check, no legal move.
func (b *Board) IsDraw(c Color) bool {
	return !b.KingInCheck(c) && !b.HasMoves(c)
}

// IsGameOver reports whether either side is checkmated or stalemated.
func (b *Board) IsGameOver() bool {
	return !b.HasMoves(White) || !b.HasMoves(Black)
}
