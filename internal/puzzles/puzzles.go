// Package puzzles holds hand-built forced-mate positions with their known
// solutions.
package puzzles

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// Puzzle is a position where ToMove mates in exactly MateIn moves.
type Puzzle struct {
	Name string

	// Pieces lists the position as a FEN letter followed by a square,
	// e.g. "Kg1" or "kh8". Uppercase is White.
	Pieces []string

	ToMove chess.Color
	MateIn int // 0 when there is no forced mate

	// FirstMoves holds every first move that leads to the shortest mate,
	// in coordinate notation. Empty when the puzzle accepts any.
	FirstMoves []string
}

// All is the puzzle library.
var All = []Puzzle{
	{
		Name:   "two-rook ladder",
		Pieces: []string{"kh8", "Rc5", "Rd6", "Kg1"},
		ToMove: chess.White,
		MateIn: 2,
	},
	{
		Name:       "rook lift",
		Pieces:     []string{"ra8", "qa5", "rg8", "kh7", "Rg4", "Nf5", "Kb2", "Pb3", "Rc3"},
		ToMove:     chess.White,
		MateIn:     1,
		FirstMoves: []string{"c3h3"},
	},
	{
		Name:       "queen sacrifice",
		Pieces:     []string{"ra8", "qa5", "rg8", "ph7", "kh8", "Qh6", "Rg4", "Nf5", "Kb2", "Pb3", "Rc3"},
		ToMove:     chess.White,
		MateIn:     2,
		FirstMoves: []string{"h6h7"},
	},
	{
		Name:       "rook offer on h6",
		Pieces:     []string{"kh8", "bg8", "pg7", "ph7", "Kf8", "Rh1", "Pg6"},
		ToMove:     chess.White,
		MateIn:     2,
		FirstMoves: []string{"h1h6"},
	},
	{
		Name:       "back rank",
		Pieces:     []string{"kg8", "pf7", "pg7", "ph7", "Kg1", "Ra1"},
		ToMove:     chess.White,
		MateIn:     1,
		FirstMoves: []string{"a1a8"},
	},
	{
		Name:       "king and queen",
		Pieces:     []string{"kh8", "Kg6", "Qa7"},
		ToMove:     chess.White,
		MateIn:     1,
		FirstMoves: []string{"a7a8", "a7b8", "a7g7", "a7h7"},
	},
	{
		Name:       "smothered",
		Pieces:     []string{"kh8", "rg8", "pg7", "ph7", "Ng5", "Ka1"},
		ToMove:     chess.White,
		MateIn:     1,
		FirstMoves: []string{"g5f7"},
	},
	{
		Name:   "king and rook",
		Pieces: []string{"kh8", "Kf6", "Ra1"},
		ToMove: chess.White,
		MateIn: 2,
	},
	{
		Name:       "promotion",
		Pieces:     []string{"kh8", "pg7", "ph7", "Ke1", "Pb7"},
		ToMove:     chess.White,
		MateIn:     1,
		FirstMoves: []string{"b7b8q"},
	},
}

// NoMate is a position without a forced mate for White.
var NoMate = Puzzle{
	Name:   "lone knight",
	Pieces: []string{"Ka1", "Nb1", "kh8"},
	ToMove: chess.White,
}

// Board builds the puzzle position with the default promotion set.
func (p Puzzle) Board() (*chess.Board, error) {
	b := chess.NewBoard()
	for _, spec := range p.Pieces {
		piece, sq, err := parseSpec(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "puzzle %q", p.Name)
		}
		if err := b.Place(sq, piece); err != nil {
			return nil, errors.Wrapf(err, "puzzle %q: %s", p.Name, spec)
		}
	}
	b.SetSideToMove(p.ToMove)
	return b, nil
}

// MustBoard is like Board but panics on error.
func (p Puzzle) MustBoard() *chess.Board {
	b, err := p.Board()
	if err != nil {
		panic(err)
	}
	return b
}

// Accepts reports whether move is one of the documented first moves.
func (p Puzzle) Accepts(move string) bool {
	if len(p.FirstMoves) == 0 {
		return true
	}
	for _, m := range p.FirstMoves {
		if m == move {
			return true
		}
	}
	return false
}

// parseSpec splits a spec like "Qh6" into a new piece and its square.
func parseSpec(spec string) (chess.Piece, chess.Square, error) {
	if len(spec) != 3 {
		return nil, chess.NoSquare, errors.Wrapf(errors.ErrInvalidArgument, "bad piece spec %q", spec)
	}
	kind, ok := chess.KindFromLetter(spec[0])
	if !ok {
		return nil, chess.NoSquare, errors.Wrapf(errors.ErrInvalidArgument, "bad piece letter in %q", spec)
	}
	sq, err := chess.ParseSquare(spec[1:])
	if err != nil {
		return nil, chess.NoSquare, err
	}
	color := chess.Black
	if spec[0] >= 'A' && spec[0] <= 'Z' {
		color = chess.White
	}
	return chess.NewPiece(kind, color), sq, nil
}
