package chess

import (
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// Play makes a legal move of the side to move permanently and records it in
// the history. The move must have been built on this board.
func (b *Board) Play(m *Move) error {
	if m == nil {
		return errors.Wrap(errors.ErrIllegalMove, "nil move")
	}
	reject := func(detail string) error {
		return &errors.MoveError{
			Err:  errors.Wrap(errors.ErrIllegalMove, detail),
			Move: m.String(),
			Ply:  len(b.history) + 1,
		}
	}
	if m.board != b {
		return reject("move belongs to another board")
	}
	if m.made {
		return reject("move already made")
	}
	if m.color != b.toMove {
		return reject(m.color.String() + " is not to move")
	}
	if !b.isLegal(m) {
		return reject("not a legal move")
	}
	m.Make()
	b.history = append(b.history, m)
	return nil
}

// isLegal reports whether m matches one of the side to move's legal moves.
func (b *Board) isLegal(m *Move) bool {
	p := b.At(m.from)
	if p == nil {
		return false
	}
	for _, legal := range p.Moves(b) {
		if legal.Equal(m) {
			return true
		}
	}
	return false
}

// Undo takes back the last played move.
func (b *Board) Undo() error {
	m := b.LastMove()
	if m == nil {
		return errors.Wrap(errors.ErrIllegalState, "no move to undo")
	}
	if m.board != b {
		return errors.Wrap(errors.ErrIllegalState, "history of a cloned board cannot be undone")
	}
	m.Unmake()
	b.history = b.history[:len(b.history)-1]
	return nil
}

// FindMove returns the legal move of the piece on from to to. For promotions
// promo selects the piece; for any other move it is ignored.
func (b *Board) FindMove(from, to Square, promo Kind) (*Move, error) {
	p := b.At(from)
	if p == nil {
		return nil, &errors.SquareError{Err: errors.ErrIllegalMove, Square: from.String(), Detail: "no piece"}
	}
	for _, m := range p.Moves(b) {
		if m.to == to && (!m.typ.IsPromotion() || m.promo == promo) {
			return m, nil
		}
	}
	return nil, &errors.MoveError{
		Err:  errors.ErrIllegalMove,
		Move: from.String() + to.String(),
		Ply:  len(b.history) + 1,
	}
}

// ParseMove resolves coordinate text such as "g1f3" or "a7a8n". Without a
// promotion letter the first kind of the promotion set is used.
func (b *Board) ParseMove(text string) (*Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return nil, &errors.MoveError{Err: errors.ErrInvalidArgument, Move: text}
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return nil, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return nil, errors.Wrapf(err, "move %q", text)
	}
	promo := b.promotions[0]
	if len(text) == 5 {
		k, ok := KindFromLetter(text[4])
		if !ok {
			return nil, &errors.MoveError{Err: errors.ErrInvalidArgument, Move: text}
		}
		promo = k
	}
	return b.FindMove(from, to, promo)
}

// Resolve returns the move on this board equal to m, which may have been
// found on a clone.
func (b *Board) Resolve(m *Move) (*Move, error) {
	if m == nil {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "nil move")
	}
	p := b.At(m.from)
	if p != nil {
		for _, legal := range p.Moves(b) {
			if legal.Equal(m) {
				return legal, nil
			}
		}
	}
	return nil, &errors.MoveError{Err: errors.ErrIllegalMove, Move: m.String(), Ply: len(b.history) + 1}
}
