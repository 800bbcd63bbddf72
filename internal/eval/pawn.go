package eval

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// Pawn structure terms. Only the first matching term applies.
const (
	DoubledIsolatedPenalty = -25
	IsolatedPenalty        = -10
	DoubledPenalty         = -7
	ConnectedPassedBonus   = 50
	ProtectedPassedBonus   = 10
	PassedBonus            = 10
)

// pawnStructure returns the structure term of pawn p.
func pawnStructure(b *chess.Board, p chess.Piece) int {
	isolated := isIsolated(b, p)
	doubled := isDoubled(b, p)
	switch {
	case isolated && doubled:
		return DoubledIsolatedPenalty
	case isolated:
		return IsolatedPenalty
	case doubled:
		return DoubledPenalty
	}
	if !isPassed(b, p) {
		return 0
	}
	switch {
	case hasPassedNeighbour(b, p):
		return ConnectedPassedBonus
	case isProtectedByUnpassed(b, p):
		return ProtectedPassedBonus
	}
	return PassedBonus
}

// isIsolated reports whether no own pawn stands on an adjacent file.
func isIsolated(b *chess.Board, p chess.Piece) bool {
	col := p.Square().Col
	for r := 0; r < chess.BoardSize; r++ {
		if isPawn(b.Occupant(r, col-1), p.Color()) || isPawn(b.Occupant(r, col+1), p.Color()) {
			return false
		}
	}
	return true
}

// isDoubled reports whether another own pawn shares the file.
func isDoubled(b *chess.Board, p chess.Piece) bool {
	sq := p.Square()
	for r := 0; r < chess.BoardSize; r++ {
		if r != sq.Row && isPawn(b.Occupant(r, sq.Col), p.Color()) {
			return true
		}
	}
	return false
}

// isPassed reports whether no enemy pawn stands ahead of p on its own or an
// adjacent file.
func isPassed(b *chess.Board, p chess.Piece) bool {
	sq := p.Square()
	enemy := p.Color().Opposite()
	step := forward(p.Color())
	for r := sq.Row + step; r >= 0 && r < chess.BoardSize; r += step {
		for c := sq.Col - 1; c <= sq.Col+1; c++ {
			if isPawn(b.Occupant(r, c), enemy) {
				return false
			}
		}
	}
	return true
}

// hasPassedNeighbour reports whether an own pawn on an adjacent file is also
// passed.
func hasPassedNeighbour(b *chess.Board, p chess.Piece) bool {
	col := p.Square().Col
	for r := 0; r < chess.BoardSize; r++ {
		for _, c := range []int{col - 1, col + 1} {
			q := b.Occupant(r, c)
			if isPawn(q, p.Color()) && isPassed(b, q) {
				return true
			}
		}
	}
	return false
}

// isProtectedByUnpassed reports whether an own pawn that is not itself
// passed defends p.
func isProtectedByUnpassed(b *chess.Board, p chess.Piece) bool {
	sq := p.Square()
	behind := sq.Row - forward(p.Color())
	for _, c := range []int{sq.Col - 1, sq.Col + 1} {
		q := b.Occupant(behind, c)
		if isPawn(q, p.Color()) && q.IsDefending(b, sq.Row, sq.Col) && !isPassed(b, q) {
			return true
		}
	}
	return false
}
