package engine

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
	"github.com/lgbarn/cpuchess-go/internal/worker"
)

// Perft counts the leaf positions reached by every legal move sequence of
// depth plies, color moving first.
func Perft(b *chess.Board, color chess.Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.Moves(color)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	opp := color.Opposite()
	for _, m := range moves {
		m.Make()
		nodes += Perft(b, opp, depth-1)
		m.Unmake()
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move's
// coordinate text.
func Divide(b *chess.Board, color chess.Color, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth < 1 {
		return counts
	}
	opp := color.Opposite()
	for _, m := range b.Moves(color) {
		m.Make()
		counts[m.String()] += Perft(b, opp, depth-1)
		m.Unmake()
	}
	return counts
}

// ParallelPerft is Perft with the root moves spread over a worker pool.
// Each root move is searched on its own clone of b; b itself is only read.
// workers follows worker.WithWorkers: zero means one per CPU.
func ParallelPerft(b *chess.Board, color chess.Color, depth, workers int) (uint64, error) {
	if depth < 2 {
		return Perft(b, color, depth), nil
	}

	var items []worker.WorkItem
	for i, m := range b.Moves(color) {
		clone := b.Clone()
		own, err := clone.Resolve(m)
		if err != nil {
			return 0, errors.Wrapf(err, "root move %s", m)
		}
		own.Make()
		items = append(items, worker.WorkItem{
			Board: clone,
			Color: color.Opposite(),
			Depth: depth - 1,
			Index: i,
			Label: own.String(),
		})
	}

	results, err := worker.Run(items, perftItem, worker.WithWorkers(workers))
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, r := range results {
		nodes += r.Nodes
	}
	return nodes, nil
}

// perftItem counts the nodes below one root move.
func perftItem(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Index: item.Index,
		Label: item.Label,
		Nodes: Perft(item.Board, item.Color, item.Depth),
	}
}
