package engine

import (
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/eval"
)

// Inf bounds every score the search can return.
const Inf = eval.MateScore + 1

// Player picks moves for one side with a negamax alpha-beta search. A
// Player keeps a node counter and must not be shared between goroutines.
type Player struct {
	cfg   *config.Config
	nodes uint64
}

// NewPlayer creates a Player. A nil cfg selects the default configuration.
func NewPlayer(cfg *config.Config) *Player {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Player{cfg: cfg}
}

// Nodes returns the number of positions visited by the last search.
func (p *Player) Nodes() uint64 {
	return p.nodes
}

// BestMove returns the move color should play on b, or nil if color has no
// legal move. remaining is the clock time left; zero or less means untimed.
// The board is left as it was found.
func (p *Player) BestMove(b *chess.Board, color chess.Color, remaining time.Duration) *chess.Move {
	if !b.HasMoves(color) {
		return nil
	}

	mateDepth := MateDepth(b, color, p.cfg.Search)
	if line := FindMateUpToN(b, color, mateDepth); len(line) > 0 {
		p.cfg.Logf(config.Trace, "%s mates in %d with %s", color, (len(line)+1)/2, line[0])
		return line[0]
	}

	depth := DepthForTime(remaining, p.cfg.Search)
	m, score := p.Search(b, color, depth)
	p.cfg.Logf(config.Trace, "%s plays %s at depth %d: score %d, %d nodes", color, m, depth, score, p.nodes)
	return m
}

// Search runs a fixed-depth search for color and returns the chosen move and
// its score from color's point of view. Depths below 1 search one ply. The
// move is nil only when color has no legal move.
func (p *Player) Search(b *chess.Board, color chess.Color, depth int) (*chess.Move, int) {
	if depth < 1 {
		depth = 1
	}
	p.nodes = 0

	moves := SortMoves(b, b.Moves(color))
	if len(moves) == 0 {
		return nil, -eval.MateScore
	}

	opp := color.Opposite()
	var best *chess.Move
	alpha := -Inf
	for _, m := range moves {
		m.Make()
		if p.cfg.Search.MateSafety && len(FindMateInDepth(b, opp, 1)) > 0 {
			m.Unmake()
			p.cfg.Logf(config.Trace, "skipping %s: allows mate in one", m)
			continue
		}
		score := -p.negamax(b, opp, -Inf, -alpha, depth-1)
		m.Unmake()
		if score > alpha {
			alpha = score
			best = m
		}
	}

	if best == nil {
		return moves[0], -eval.MateScore
	}
	return best, alpha
}

// negamax scores b for side with a fail-soft alpha-beta search.
func (p *Player) negamax(b *chess.Board, side chess.Color, alpha, beta, depth int) int {
	p.nodes++
	if depth <= 0 {
		return eval.Evaluate(b, side)
	}

	moves := b.Moves(side)
	if len(moves) == 0 {
		if b.KingInCheck(side) {
			return -eval.MateScore
		}
		return 0
	}

	opp := side.Opposite()
	best := -Inf
	for _, m := range SortMoves(b, moves) {
		m.Make()
		score := -p.negamax(b, opp, -beta, -alpha, depth-1)
		m.Unmake()
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return alpha
		}
	}
	return best
}
