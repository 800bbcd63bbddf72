package chess

import (
	"fmt"
	"strings"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN converts the board to a Forsyth-Edwards string. Castling rights are
// derived from unmoved kings and rooks on their home squares; the halfmove
// clock is not tracked and is always 0. The fullmove number starts at 1.
func (b *Board) FEN() string {
	var sb strings.Builder

	b.writePiecePositions(&sb)
	sb.WriteByte(' ')
	b.writeSideToMove(&sb)
	sb.WriteByte(' ')
	b.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	b.writeEnPassant(&sb)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", 0, b.fullMoveNumber())

	return sb.String()
}

// fullMoveNumber counts from 1 and advances after each Black move, so a
// position set up with Black to move stays on move 1 until Black plays.
func (b *Board) fullMoveNumber() int {
	n := 1
	for _, m := range b.history {
		if m.Color() == Black {
			n++
		}
	}
	return n
}

// writePiecePositions writes the piece placement, rank 8 first.
func (b *Board) writePiecePositions(sb *strings.Builder) {
	for r := 0; r < BoardSize; r++ {
		emptyCount := 0
		for c := 0; c < BoardSize; c++ {
			p := b.grid[r][c]
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if r < BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move.
func (b *Board) writeSideToMove(sb *strings.Builder) {
	if b.toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability.
func (b *Board) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, right := range []struct {
		color  Color
		short  bool
		letter byte
	}{
		{White, true, 'K'}, {White, false, 'Q'}, {Black, true, 'k'}, {Black, false, 'q'},
	} {
		if b.castlingRight(right.color, right.short) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// castlingRight reports whether the king and the rook of one side are
// unmoved on their home squares.
func (b *Board) castlingRight(c Color, short bool) bool {
	row := backRow(c)
	k, ok := b.grid[row][kingStartCol].(*King)
	if !ok || k.color != c || k.moves != 0 {
		return false
	}
	rookCol := longRookCol
	if short {
		rookCol = shortRookCol
	}
	rk, ok := b.grid[row][rookCol].(*Rook)
	return ok && rk.color == c && rk.moves == 0
}

// writeEnPassant writes the en passant target square.
func (b *Board) writeEnPassant(sb *strings.Builder) {
	if !b.hasEP {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(b.ep.String())
}
