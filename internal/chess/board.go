package chess

import (
	"fmt"
	"slices"

	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// Board represents a chess position with all state needed for play and search.
type Board struct {
	// grid[row][col]; row 0 is rank 8.
	grid [BoardSize][BoardSize]Piece

	// Per-color piece lists, indexed by Color, kept in step with grid.
	pieces [2][]Piece

	// Who has the next move.
	toMove Color

	// En passant target square, valid only when hasEP is set.
	ep    Square
	hasEP bool

	// Moves played through Play, oldest first.
	history []*Move

	// Kinds a pawn may promote to, in generation order.
	promotions []Kind
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		toMove:     White,
		ep:         NoSquare,
		promotions: slices.Clone(DefaultPromotions),
	}
}

// DefaultBoard creates a board holding the standard starting position.
func DefaultBoard() *Board {
	b := NewBoard()
	backRank := []Kind{RookKind, KnightKind, BishopKind, QueenKind, KingKind, BishopKind, KnightKind, RookKind}

	for _, c := range []Color{White, Black} {
		pawnRow := backRow(c) + forward(c)
		for col, kind := range backRank {
			b.put(NewPiece(kind, c), Square{Row: backRow(c), Col: col})
		}
		for col := 0; col < BoardSize; col++ {
			b.put(NewPiece(PawnKind, c), Square{Row: pawnRow, Col: col})
		}
	}
	return b
}

// Place puts an unplaced piece on an empty square.
func (b *Board) Place(sq Square, p Piece) error {
	if p == nil {
		return errors.Wrap(errors.ErrInvalidArgument, "placing nil piece")
	}
	if !sq.Valid() {
		return &errors.SquareError{Err: errors.ErrOffBoard, Square: sq.String()}
	}
	if b.grid[sq.Row][sq.Col] != nil {
		return &errors.SquareError{Err: errors.ErrOccupied, Square: sq.String()}
	}
	if p.Square() != NoSquare {
		return &errors.SquareError{
			Err:    errors.ErrInvalidArgument,
			Square: sq.String(),
			Detail: fmt.Sprintf("%s is already placed", p.Kind()),
		}
	}
	if p.Kind() == KingKind && b.king(p.Color()) != nil {
		return &errors.SquareError{
			Err:    errors.ErrInvalidArgument,
			Square: sq.String(),
			Detail: fmt.Sprintf("second %s king", p.Color()),
		}
	}
	b.put(p, sq)
	return nil
}

// PlaceAt puts a piece on the square named by file letter and rank number.
func (b *Board) PlaceAt(file byte, rank int, p Piece) error {
	sq, err := SquareAt(file, rank)
	if err != nil {
		return err
	}
	return b.Place(sq, p)
}

// Remove takes the piece off sq and returns it, or nil if sq was empty.
func (b *Board) Remove(sq Square) (Piece, error) {
	if !sq.Valid() {
		return nil, &errors.SquareError{Err: errors.ErrOffBoard, Square: sq.String()}
	}
	if b.grid[sq.Row][sq.Col] == nil {
		return nil, nil
	}
	p, _ := b.removeAt(sq)
	p.state().sq = NoSquare
	return p, nil
}

// put places p on sq and appends it to its color's list.
func (b *Board) put(p Piece, sq Square) {
	b.grid[sq.Row][sq.Col] = p
	p.state().sq = sq
	b.pieces[p.Color()] = append(b.pieces[p.Color()], p)
}

// removeAt clears sq and returns the piece together with its list index.
func (b *Board) removeAt(sq Square) (Piece, int) {
	p := b.grid[sq.Row][sq.Col]
	if p == nil {
		panic(&errors.SquareError{Err: errors.ErrIllegalState, Square: sq.String(), Detail: "remove from empty square"})
	}
	b.grid[sq.Row][sq.Col] = nil
	list := b.pieces[p.Color()]
	idx := slices.Index(list, p)
	b.pieces[p.Color()] = slices.Delete(list, idx, idx+1)
	return p, idx
}

// restore puts p back on sq at position idx of its color's list.
func (b *Board) restore(p Piece, sq Square, idx int) {
	b.grid[sq.Row][sq.Col] = p
	p.state().sq = sq
	b.pieces[p.Color()] = slices.Insert(b.pieces[p.Color()], idx, p)
}

// relocate moves the piece on from to the empty square to.
func (b *Board) relocate(from, to Square) {
	p := b.grid[from.Row][from.Col]
	b.grid[from.Row][from.Col] = nil
	b.grid[to.Row][to.Col] = p
	p.state().sq = to
}

// Occupant returns the piece on (r, c), or nil if the square is empty or off the board.
func (b *Board) Occupant(r, c int) Piece {
	if !InBounds(r, c) {
		return nil
	}
	return b.grid[r][c]
}

// At returns the piece on sq, or nil.
func (b *Board) At(sq Square) Piece {
	return b.Occupant(sq.Row, sq.Col)
}

// IsOccupied reports whether a piece stands on (r, c).
func (b *Board) IsOccupied(r, c int) bool {
	return b.Occupant(r, c) != nil
}

// IsEmpty reports whether (r, c) is on the board and empty.
func (b *Board) IsEmpty(r, c int) bool {
	return InBounds(r, c) && b.grid[r][c] == nil
}

// Pieces returns a copy of the given color's piece list.
func (b *Board) Pieces(c Color) []Piece {
	return slices.Clone(b.pieces[c])
}

// SideToMove returns the color due to move.
func (b *Board) SideToMove() Color {
	return b.toMove
}

// SetSideToMove sets the color due to move. It is a setup operation.
func (b *Board) SetSideToMove(c Color) {
	b.toMove = c
}

// EnPassant returns the en passant target square, if any.
func (b *Board) EnPassant() (Square, bool) {
	return b.ep, b.hasEP
}

// SetEnPassant sets the en passant target square. Only rows 2 and 5 (ranks
// 6 and 3) can hold one.
func (b *Board) SetEnPassant(sq Square) error {
	if !sq.Valid() || (sq.Row != 2 && sq.Row != 5) {
		return &errors.SquareError{
			Err:    errors.ErrBadEnPassant,
			Square: sq.String(),
			Detail: fmt.Sprintf("row %d", sq.Row),
		}
	}
	b.ep, b.hasEP = sq, true
	return nil
}

// ClearEnPassant removes the en passant target square.
func (b *Board) ClearEnPassant() {
	b.ep, b.hasEP = NoSquare, false
}

// PromotionKinds returns the kinds pawns promote to, in generation order.
func (b *Board) PromotionKinds() []Kind {
	return slices.Clone(b.promotions)
}

// SetPromotionKinds replaces the promotion set. Kinds must be distinct and
// drawn from queen, rook, bishop and knight.
func (b *Board) SetPromotionKinds(kinds ...Kind) error {
	if len(kinds) == 0 {
		return errors.Wrap(errors.ErrInvalidArgument, "empty promotion set")
	}
	seen := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		if !slices.Contains(AllPromotions, k) || seen[k] {
			return errors.Wrapf(errors.ErrInvalidArgument, "promotion kind %s", k)
		}
		seen[k] = true
	}
	b.promotions = slices.Clone(kinds)
	return nil
}

// History returns a copy of the played moves, oldest first.
func (b *Board) History() []*Move {
	return slices.Clone(b.history)
}

// LastMove returns the most recently played move, or nil.
func (b *Board) LastMove() *Move {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1]
}

// MoveCount returns how many moves have been played through Play.
func (b *Board) MoveCount() int {
	return len(b.history)
}

// Between returns the squares strictly between two squares sharing a rank,
// file or diagonal.
func (b *Board) Between(from, to Square) ([]Square, error) {
	if !from.Valid() || !to.Valid() {
		return nil, errors.Wrapf(errors.ErrOffBoard, "between %s and %s", from, to)
	}
	if !aligned(from, to) {
		return nil, errors.Wrapf(errors.ErrNotAligned, "between %s and %s", from, to)
	}
	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	var squares []Square
	for r, c := from.Row+dr, from.Col+dc; r != to.Row || c != to.Col; r, c = r+dr, c+dc {
		squares = append(squares, Square{Row: r, Col: c})
	}
	return squares, nil
}

// pathClear reports whether every square strictly between two aligned
// squares is empty.
func (b *Board) pathClear(from, to Square) bool {
	dr, dc := sign(to.Row-from.Row), sign(to.Col-from.Col)
	for r, c := from.Row+dr, from.Col+dc; r != to.Row || c != to.Col; r, c = r+dr, c+dc {
		if b.grid[r][c] != nil {
			return false
		}
	}
	return true
}

// Clone returns a deep copy. The copy shares no piece with b, so it can be
// searched on another goroutine while b stays in use. The history is copied
// for reading only; moves in it stay bound to b.
func (b *Board) Clone() *Board {
	cp := &Board{
		toMove:     b.toMove,
		ep:         b.ep,
		hasEP:      b.hasEP,
		history:    slices.Clone(b.history),
		promotions: slices.Clone(b.promotions),
	}
	for c := range b.pieces {
		for _, p := range b.pieces[c] {
			q := p.Clone()
			sq := p.Square()
			cp.grid[sq.Row][sq.Col] = q
			q.state().sq = sq
			cp.pieces[c] = append(cp.pieces[c], q)
		}
	}
	return cp
}

// Equal reports whether two boards hold the same position: the same pieces
// with the same move counters on the same squares, the same side to move
// and the same en passant square.
func (b *Board) Equal(o *Board) bool {
	if o == nil {
		return false
	}
	if b.toMove != o.toMove || b.hasEP != o.hasEP || (b.hasEP && b.ep != o.ep) {
		return false
	}
	for c := range b.pieces {
		if len(b.pieces[c]) != len(o.pieces[c]) {
			return false
		}
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if !samePiece(b.grid[r][c], o.grid[r][c]) {
				return false
			}
		}
	}
	return true
}

// samePiece compares two optional pieces by content.
func samePiece(a, b Piece) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Color() != b.Color() || a.MoveCount() != b.MoveCount() {
		return false
	}
	if ka, ok := a.(*King); ok {
		return ka.castled == b.(*King).castled
	}
	return true
}
