package output

import "time"

// SolutionRecord is the outcome of one mate search.
type SolutionRecord struct {
	Name   string
	MateIn int      // 0 when no mate was found
	Moves  []string // Coordinate text of the mating line
	Error  string
}

// PerftRecord is the outcome of one perft run.
type PerftRecord struct {
	FEN     string
	Depth   int
	Nodes   uint64
	Divide  map[string]uint64 // Per root move, when requested
	Elapsed time.Duration
}

// NodesPerSecond returns the counting speed of the run.
func (p PerftRecord) NodesPerSecond() float64 {
	if p.Elapsed <= 0 {
		return 0
	}
	return float64(p.Nodes) / p.Elapsed.Seconds()
}
