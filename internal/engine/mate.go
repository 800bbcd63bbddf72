package engine

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// FindMateUpToN looks for a forced mate by color in at most n moves,
// shortest first. It returns the mating line, or nil if there is none.
func FindMateUpToN(b *chess.Board, color chess.Color, n int) []*chess.Move {
	for depth := 1; depth <= n; depth++ {
		if line := FindMateInDepth(b, color, depth); len(line) > 0 {
			return line
		}
	}
	return nil
}

// FindMateInDepth looks for a first move after which color mates within
// depth moves against any defence. The line alternates sides: the first
// move, the reply that holds out longest and its continuation. Moves in the
// line are bound to b and are unmade when it returns.
func FindMateInDepth(b *chess.Board, color chess.Color, depth int) []*chess.Move {
	if depth < 1 {
		return nil
	}
	opp := color.Opposite()
	for _, m := range SortMoves(b, b.Moves(color)) {
		m.Make()
		var line []*chess.Move
		if depth == 1 {
			if b.IsCheckMate(opp) {
				line = []*chess.Move{m}
			}
		} else if rest := forcedContinuation(b, color, depth-1); rest != nil {
			line = append([]*chess.Move{m}, rest...)
		}
		m.Unmake()
		if line != nil {
			return line
		}
	}
	return nil
}

// forcedContinuation checks that every reply of the side to defend still
// leaves color a mate within depth moves. It returns the longest defence
// with its mating line, or nil if some reply escapes or there is no reply.
func forcedContinuation(b *chess.Board, color chess.Color, depth int) []*chess.Move {
	replies := b.Moves(color.Opposite())
	if len(replies) == 0 {
		return nil
	}
	var longest []*chess.Move
	for _, reply := range replies {
		reply.Make()
		line := FindMateUpToN(b, color, depth)
		reply.Unmake()
		if line == nil {
			return nil
		}
		if len(line)+1 > len(longest) {
			longest = append([]*chess.Move{reply}, line...)
		}
	}
	return longest
}
