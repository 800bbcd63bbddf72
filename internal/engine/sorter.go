// Package engine chooses moves: a move orderer, a negamax search with
// alpha-beta pruning, a forced-mate solver and perft node counting.
package engine

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// Move bands, best first.
const (
	bandCheck = iota
	bandCapture
	bandCastle
	bandQuiet
	numBands
)

// SortMoves returns a copy of moves ordered for search: checking moves,
// then captures, then castles, then the rest. Moves keep their relative
// order within a band. The board is left unchanged.
func SortMoves(b *chess.Board, moves []*chess.Move) []*chess.Move {
	var bands [numBands][]*chess.Move
	for _, m := range moves {
		k := moveBand(b, m)
		bands[k] = append(bands[k], m)
	}
	sorted := make([]*chess.Move, 0, len(moves))
	for _, band := range bands {
		sorted = append(sorted, band...)
	}
	return sorted
}

// moveBand classifies m by trying it on b.
func moveBand(b *chess.Board, m *chess.Move) int {
	m.Make()
	defer m.Unmake()
	switch {
	case b.KingInCheck(m.Color().Opposite()):
		return bandCheck
	case m.Captured() != nil:
		return bandCapture
	case m.IsCastle():
		return bandCastle
	}
	return bandQuiet
}
