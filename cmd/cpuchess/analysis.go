package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/engine"
	"github.com/lgbarn/cpuchess-go/internal/output"
	"github.com/lgbarn/cpuchess-go/internal/puzzles"
)

// solvePuzzles solves the puzzle library concurrently and writes one
// solution per puzzle, in library order.
func solvePuzzles(cfg *config.Config, w output.GameWriter, library []puzzles.Puzzle) error {
	tasks := make([]engine.MateTask, 0, len(library))
	for _, p := range library {
		b, err := p.Board()
		if err != nil {
			return fmt.Errorf("puzzle %q: %w", p.Name, err)
		}
		if err := cfg.Rules.Apply(b); err != nil {
			return err
		}
		depth := p.MateIn
		if depth < cfg.Search.MateDepth {
			depth = cfg.Search.MateDepth
		}
		tasks = append(tasks, engine.MateTask{Name: p.Name, Board: b, Color: p.ToMove, Depth: depth})
	}

	start := time.Now()
	solved := 0
	for _, s := range engine.SolveAll(tasks, cfg.Search.Workers) {
		rec := output.SolutionRecord{Name: s.Name}
		switch {
		case s.Err != nil:
			rec.Error = s.Err.Error()
		case s.Found():
			rec.MateIn = s.MateIn()
			rec.Moves = s.Moves
			solved++
		}
		if err := w.WriteSolution(rec); err != nil {
			return err
		}
	}
	cfg.Logf(config.Normal, "%d of %d puzzle(s) solved in %v.", solved, len(tasks), time.Since(start).Round(time.Millisecond))
	return nil
}

// runPerft counts leaf nodes from the standard position.
func runPerft(cfg *config.Config, w output.GameWriter, depth int, showDivide bool) error {
	b := chess.DefaultBoard()
	if err := cfg.Rules.Apply(b); err != nil {
		return err
	}

	rec := output.PerftRecord{FEN: b.FEN(), Depth: depth}
	start := time.Now()
	if showDivide {
		rec.Divide = engine.Divide(b, b.SideToMove(), depth)
		for _, n := range rec.Divide {
			rec.Nodes += n
		}
	} else {
		nodes, err := engine.ParallelPerft(b, b.SideToMove(), depth, cfg.Search.Workers)
		if err != nil {
			return fmt.Errorf("perft(%d): %w", depth, err)
		}
		rec.Nodes = nodes
	}
	rec.Elapsed = time.Since(start)
	return w.WritePerft(rec)
}
