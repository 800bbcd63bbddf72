package chess

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// Move is a reversible state transition on one Board. It snapshots the
// mover (kind, color, origin, move count) when built, and records what it
// destroys when made so that Unmake restores the board exactly.
//
// Make and Unmake must alternate, starting with Make. Breaking that order is
// a programmer error and panics with a *errors.MoveError.
type Move struct {
	board *Board
	mover Piece

	// Snapshot of the mover at construction.
	kind  Kind
	color Color
	from  Square
	count int

	to    Square
	typ   MoveType
	promo Kind

	// Filled in by Make.
	piece       Piece
	captured    Piece
	capturedAt  Square
	capturedIdx int
	pawnIdx     int
	prevEP      Square
	prevHasEP   bool
	made        bool
	everMade    bool
}

// NewMove builds the move of p to (r, c) on b, inferring castling, en
// passant and promotion from the geometry. Promotions use the first kind of
// the board's promotion set. Legality is not checked; see Board.Play.
func NewMove(b *Board, p Piece, r, c int) (*Move, error) {
	if err := checkMover(b, p, r, c); err != nil {
		return nil, err
	}
	return inferMove(b, p, Square{Row: r, Col: c}), nil
}

// NewPromotion builds the promotion of pawn p to (r, c) as kind.
func NewPromotion(b *Board, p Piece, r, c int, kind Kind) (*Move, error) {
	if err := checkMover(b, p, r, c); err != nil {
		return nil, err
	}
	pawn, ok := p.(*Pawn)
	if !ok || r != pawn.promotionRow() {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "%v cannot promote on %v", p, Square{Row: r, Col: c})
	}
	if !slices.Contains(AllPromotions, kind) {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "promotion kind %s", kind)
	}
	return newPromotion(b, p, Square{Row: r, Col: c}, kind), nil
}

// checkMover validates the arguments shared by the move constructors.
func checkMover(b *Board, p Piece, r, c int) error {
	if b == nil || p == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "nil board or piece")
	}
	if !InBounds(r, c) {
		return errors.Wrapf(errors.ErrOffBoard, "target (%d,%d)", r, c)
	}
	if sq := p.Square(); !sq.Valid() || b.grid[sq.Row][sq.Col] != p {
		return errors.Wrapf(errors.ErrInvalidArgument, "%v is not on this board", p)
	}
	return nil
}

// inferMove builds a move of p to sq, choosing its type from the geometry.
func inferMove(b *Board, p Piece, sq Square) *Move {
	from := p.Square()
	typ := Normal
	switch p.Kind() {
	case KingKind:
		if from.Col == kingStartCol && sq.Row == from.Row && abs(sq.Col-from.Col) == 2 {
			typ = castleType(p.Color(), sq.Col == shortKingCol)
		}
	case PawnKind:
		if sq.Col != from.Col && b.hasEP && sq == b.ep && b.grid[sq.Row][sq.Col] == nil {
			typ = EnPassant
		} else if sq.Row == backRow(p.Color().Opposite()) {
			return newPromotion(b, p, sq, b.promotions[0])
		}
	}
	return newMove(b, p, sq, typ, PawnKind)
}

// newPromotion builds a promotion of p to sq as kind.
func newPromotion(b *Board, p Piece, sq Square, kind Kind) *Move {
	typ := UnderPromotion
	if kind == QueenKind {
		typ = QueenPromotion
	}
	return newMove(b, p, sq, typ, kind)
}

func newMove(b *Board, p Piece, sq Square, typ MoveType, promo Kind) *Move {
	return &Move{
		board:  b,
		mover:  p,
		kind:   p.Kind(),
		color:  p.Color(),
		from:   p.Square(),
		count:  p.MoveCount(),
		to:     sq,
		typ:    typ,
		promo:  promo,
		prevEP: NoSquare,
	}
}

// castleType returns the castle move type for a color and side.
func castleType(c Color, short bool) MoveType {
	switch {
	case c == White && short:
		return WhiteShortCastle
	case c == White:
		return WhiteLongCastle
	case short:
		return BlackShortCastle
	}
	return BlackLongCastle
}

// Board returns the board the move is bound to.
func (m *Move) Board() *Board { return m.board }

// Piece returns the moving piece as it was when the move was built.
func (m *Move) Piece() Piece { return m.mover }

// Color returns the mover's color.
func (m *Move) Color() Color { return m.color }

// From returns the origin square.
func (m *Move) From() Square { return m.from }

// To returns the target square.
func (m *Move) To() Square { return m.to }

// Type returns the move type.
func (m *Move) Type() MoveType { return m.typ }

// Promotion returns the promotion kind; it is meaningful only for promotions.
func (m *Move) Promotion() Kind { return m.promo }

// IsMade reports whether the move is currently applied.
func (m *Move) IsMade() bool { return m.made }

// IsCastle reports whether the move is a castle.
func (m *Move) IsCastle() bool { return m.typ.IsCastle() }

// Captured returns the piece taken by the last Make, or nil. Calling it
// before the move has ever been made panics.
func (m *Move) Captured() Piece {
	if !m.everMade {
		panic(m.fail(errors.ErrMoveNotMade))
	}
	return m.captured
}

// IsCapture reports whether the move takes a piece.
func (m *Move) IsCapture() bool {
	if m.made {
		return m.captured != nil
	}
	return m.typ == EnPassant || m.board.grid[m.to.Row][m.to.Col] != nil
}

// Make applies the move to its board.
func (m *Move) Make() {
	if m.made {
		panic(m.fail(errors.ErrMoveMade))
	}
	b := m.board
	p := b.grid[m.from.Row][m.from.Col]
	if p == nil || p.Kind() != m.kind || p.Color() != m.color || p.MoveCount() != m.count {
		panic(m.fail(errors.ErrStaleMove))
	}

	m.piece = p
	m.captured = nil
	m.prevEP, m.prevHasEP = b.ep, b.hasEP
	b.ep, b.hasEP = NoSquare, false

	switch {
	case m.typ.IsCastle():
		m.makeCastle()
	case m.typ == EnPassant:
		m.capturedAt = Square{Row: m.from.Row, Col: m.to.Col}
		m.captured, m.capturedIdx = b.removeAt(m.capturedAt)
		b.relocate(m.from, m.to)
		p.state().moves++
	case m.typ.IsPromotion():
		m.capturePlain()
		_, m.pawnIdx = b.removeAt(m.from)
		promoted := NewPiece(m.promo, m.color)
		promoted.state().moves = m.count + 1
		b.restore(promoted, m.to, m.pawnIdx)
	default:
		m.capturePlain()
		b.relocate(m.from, m.to)
		p.state().moves++
		if m.kind == PawnKind && abs(m.to.Row-m.from.Row) == 2 {
			b.ep, b.hasEP = Square{Row: (m.from.Row + m.to.Row) / 2, Col: m.from.Col}, true
		}
	}

	b.toMove = b.toMove.Opposite()
	m.made, m.everMade = true, true
}

// capturePlain removes an enemy piece standing on the target square.
func (m *Move) capturePlain() {
	if m.board.grid[m.to.Row][m.to.Col] == nil {
		return
	}
	m.capturedAt = m.to
	m.captured, m.capturedIdx = m.board.removeAt(m.to)
}

// Unmake reverses the last Make.
func (m *Move) Unmake() {
	if !m.made {
		panic(m.fail(errors.ErrMoveNotMade))
	}
	b := m.board

	switch {
	case m.typ.IsCastle():
		m.undoCastle()
	case m.typ.IsPromotion():
		b.removeAt(m.to)
		b.restore(m.piece, m.from, m.pawnIdx)
	default:
		b.relocate(m.to, m.from)
		m.piece.state().moves--
	}
	if m.captured != nil {
		b.restore(m.captured, m.capturedAt, m.capturedIdx)
	}

	b.ep, b.hasEP = m.prevEP, m.prevHasEP
	b.toMove = b.toMove.Opposite()
	m.made = false
}

// castleRook returns the rook's origin and landing squares for a castle type.
func castleRook(typ MoveType) (Square, Square, bool) {
	switch typ {
	case WhiteShortCastle:
		return Square{Row: whiteBackRow, Col: shortRookCol}, Square{Row: whiteBackRow, Col: shortRookLandsCol}, true
	case WhiteLongCastle:
		return Square{Row: whiteBackRow, Col: longRookCol}, Square{Row: whiteBackRow, Col: longRookLandsCol}, true
	case BlackShortCastle:
		return Square{Row: blackBackRow, Col: shortRookCol}, Square{Row: blackBackRow, Col: shortRookLandsCol}, true
	case BlackLongCastle:
		return Square{Row: blackBackRow, Col: longRookCol}, Square{Row: blackBackRow, Col: longRookLandsCol}, true
	}
	return NoSquare, NoSquare, false
}

func (m *Move) makeCastle() {
	b := m.board
	rookFrom, rookTo, _ := castleRook(m.typ)
	rook := b.grid[rookFrom.Row][rookFrom.Col]
	b.relocate(m.from, m.to)
	b.relocate(rookFrom, rookTo)
	m.piece.state().moves++
	rook.state().moves++
	m.piece.(*King).castled = true
}

// undoCastle puts king and rook back and clears the castled flag.
func (m *Move) undoCastle() {
	rookFrom, rookTo, ok := castleRook(m.typ)
	if !ok {
		panic(m.fail(errors.ErrNotCastling))
	}
	b := m.board
	rook := b.grid[rookTo.Row][rookTo.Col]
	b.relocate(m.to, m.from)
	b.relocate(rookTo, rookFrom)
	m.piece.state().moves--
	rook.state().moves--
	m.piece.(*King).castled = false
}

// IsChecking reports whether playing the move would check the opponent.
// The board is left unchanged.
func (m *Move) IsChecking() bool {
	m.Make()
	defer m.Unmake()
	return m.board.KingInCheck(m.color.Opposite())
}

// Equal reports whether two moves describe the same transition, even when
// they are bound to different boards.
func (m *Move) Equal(o *Move) bool {
	if o == nil {
		return false
	}
	return m.kind == o.kind && m.color == o.color && m.from == o.from &&
		m.count == o.count && m.to == o.to && m.typ == o.typ &&
		(!m.typ.IsPromotion() || m.promo == o.promo)
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m *Move) String() string {
	s := m.from.String() + m.to.String()
	if m.typ.IsPromotion() {
		s += string(m.promo.Letter())
	}
	return s
}

// Label returns a short human form: the piece letter and target square,
// "=X" for promotions, and O-O / O-O-O for castles.
func (m *Move) Label() string {
	switch m.typ {
	case WhiteShortCastle, BlackShortCastle:
		return "O-O"
	case WhiteLongCastle, BlackLongCastle:
		return "O-O-O"
	}
	var sb strings.Builder
	if m.kind != PawnKind {
		sb.WriteByte(m.kind.Letter() - ('a' - 'A'))
	}
	sb.WriteString(m.to.String())
	if m.typ.IsPromotion() {
		fmt.Fprintf(&sb, "=%c", m.promo.Letter()-('a'-'A'))
	}
	return sb.String()
}

// fail wraps err with the move's context.
func (m *Move) fail(err error) *errors.MoveError {
	return &errors.MoveError{Err: err, Move: m.String(), Ply: len(m.board.history) + 1}
}
