package engine

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/worker"
)

// MateTask is one position handed to SolveAll.
type MateTask struct {
	Name  string
	Board *chess.Board
	Color chess.Color // Side that mates
	Depth int         // Longest mate to look for, in moves
}

// MateSolution is the result of one MateTask.
type MateSolution struct {
	Name  string
	Line  []*chess.Move // Bound to a clone of the task's board; empty when no mate
	Moves []string      // Coordinate text of Line
	Err   error
}

// Found reports whether a mate was found.
func (s MateSolution) Found() bool {
	return len(s.Line) > 0
}

// MateIn returns the number of moves of the mating side, or 0.
func (s MateSolution) MateIn() int {
	return (len(s.Line) + 1) / 2
}

// SolveAll runs FindMateUpToN on every task concurrently and returns the
// solutions in task order. Each task is solved on a clone, so the caller's
// boards are never touched. A failing task is reported in its solution's
// Err and does not stop the others.
func SolveAll(tasks []MateTask, workers int) []MateSolution {
	items := make([]worker.WorkItem, len(tasks))
	for i, task := range tasks {
		items[i] = worker.WorkItem{
			Board: task.Board.Clone(),
			Color: task.Color,
			Depth: task.Depth,
			Index: i,
			Label: task.Name,
		}
	}

	pool := worker.NewPool(solveItem, worker.WithWorkers(workers), worker.WithBufferSize(len(items)+1))
	pool.Start()
	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	solutions := make([]MateSolution, len(tasks))
	for r := range pool.Results() {
		solutions[r.Index] = MateSolution{
			Name:  tasks[r.Index].Name,
			Line:  r.Line,
			Moves: moveStrings(r.Line),
			Err:   r.Error,
		}
	}
	return solutions
}

// solveItem solves one work item.
func solveItem(item worker.WorkItem) worker.ProcessResult {
	line := FindMateUpToN(item.Board, item.Color, item.Depth)
	return worker.ProcessResult{Index: item.Index, Label: item.Label, Line: line}
}

func moveStrings(moves []*chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
