package chess

// Piece is one of the six variants: *Pawn, *Knight, *Bishop, *Rook, *Queen
// or *King. The unexported methods keep the set of variants closed.
type Piece interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Color returns the owning side.
	Color() Color
	// Square returns the square the piece stands on.
	Square() Square
	// MoveCount returns how many times the piece has moved.
	MoveCount() int
	// HasMoved reports whether the piece has moved at least once.
	HasMoved() bool
	// Letter returns the FEN letter: uppercase for White, lowercase for Black.
	Letter() byte

	// CanMove reports whether moving to (r, c) is legal, including the
	// rule that the mover may not leave its own king attacked.
	CanMove(b *Board, r, c int) bool
	// IsAttacking reports whether the piece attacks (r, c). It never
	// tests for self-check and never considers castling.
	IsAttacking(b *Board, r, c int) bool
	// IsDefending reports whether the piece covers (r, c) when the square
	// is empty or holds a friendly piece.
	IsDefending(b *Board, r, c int) bool
	// Moves returns every legal move of the piece.
	Moves(b *Board) []*Move
	// Clone returns an unplaced copy carrying the same state.
	Clone() Piece

	canMove(b *Board, r, c int, testCheck bool) bool
	state() *pieceState
}

// pieceState holds what every variant tracks.
type pieceState struct {
	kind  Kind
	color Color
	sq    Square
	moves int
}

func (s *pieceState) Kind() Kind         { return s.kind }
func (s *pieceState) Color() Color       { return s.color }
func (s *pieceState) Square() Square     { return s.sq }
func (s *pieceState) MoveCount() int     { return s.moves }
func (s *pieceState) HasMoved() bool     { return s.moves != 0 }
func (s *pieceState) state() *pieceState { return s }

// Letter returns the FEN letter of the piece.
func (s *pieceState) Letter() byte {
	l := s.kind.Letter()
	if s.color == White {
		l -= 'a' - 'A'
	}
	return l
}

// String returns the letter followed by the square, e.g. "Ng1".
func (s *pieceState) String() string {
	return string(s.Letter()) + s.sq.String()
}

// NewPiece creates an unplaced piece of the given kind and color.
func NewPiece(kind Kind, color Color) Piece {
	st := pieceState{kind: kind, color: color, sq: NoSquare}
	switch kind {
	case PawnKind:
		return &Pawn{pieceState: st}
	case KnightKind:
		return &Knight{pieceState: st}
	case BishopKind:
		return &Bishop{pieceState: st}
	case RookKind:
		return &Rook{pieceState: st}
	case QueenKind:
		return &Queen{pieceState: st}
	case KingKind:
		return &King{pieceState: st}
	}
	return nil
}

// NewPawn creates an unplaced pawn.
func NewPawn(c Color) *Pawn { return NewPiece(PawnKind, c).(*Pawn) }

// NewKnight creates an unplaced knight.
func NewKnight(c Color) *Knight { return NewPiece(KnightKind, c).(*Knight) }

// NewBishop creates an unplaced bishop.
func NewBishop(c Color) *Bishop { return NewPiece(BishopKind, c).(*Bishop) }

// NewRook creates an unplaced rook.
func NewRook(c Color) *Rook { return NewPiece(RookKind, c).(*Rook) }

// NewQueen creates an unplaced queen.
func NewQueen(c Color) *Queen { return NewPiece(QueenKind, c).(*Queen) }

// NewKing creates an unplaced king.
func NewKing(c Color) *King { return NewPiece(KingKind, c).(*King) }

// enterable reports whether p may land on (r, c): on the board and not
// holding a piece of its own color.
func enterable(b *Board, p Piece, r, c int) bool {
	if !InBounds(r, c) {
		return false
	}
	occ := b.grid[r][c]
	return occ == nil || occ.Color() != p.Color()
}

// coverable reports whether (r, c) is on the board and empty or friendly.
func coverable(b *Board, p Piece, r, c int) bool {
	if !InBounds(r, c) {
		return false
	}
	occ := b.grid[r][c]
	return occ == nil || occ.Color() == p.Color()
}

// leavesKingInCheck trial-makes the move of p to (r, c) and reports whether
// p's own king is attacked afterwards.
func leavesKingInCheck(b *Board, p Piece, r, c int) bool {
	m := inferMove(b, p, Square{Row: r, Col: c})
	m.Make()
	inCheck := b.KingInCheck(p.Color())
	m.Unmake()
	return inCheck
}

// appendLegal appends the move of p to sq when it does not leave p's king
// in check.
func appendLegal(b *Board, p Piece, dst []*Move, sq Square) []*Move {
	m := inferMove(b, p, sq)
	m.Make()
	inCheck := b.KingInCheck(p.Color())
	m.Unmake()
	if inCheck {
		return dst
	}
	return append(dst, m)
}

// copyState returns a copy of a piece state detached from any board.
func copyState(s *pieceState) pieceState {
	cp := *s
	return cp
}
