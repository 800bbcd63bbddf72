package chess

// Pawn advances one square, two from its home row, captures diagonally
// and promotes on the far rank.
type Pawn struct {
	pieceState
}

// homeRow returns the row the pawn starts on.
func (p *Pawn) homeRow() int {
	if p.color == White {
		return 6
	}
	return 1
}

// promotionRow returns the far rank in grid rows.
func (p *Pawn) promotionRow() int {
	return backRow(p.color.Opposite())
}

// enPassantRow returns the row a pawn must stand on to capture en passant.
func (p *Pawn) enPassantRow() int {
	if p.color == White {
		return 3
	}
	return 4
}

// CanMove reports whether the pawn may legally move to (r, c).
func (p *Pawn) CanMove(b *Board, r, c int) bool {
	return p.canMove(b, r, c, true)
}

func (p *Pawn) canMove(b *Board, r, c int, testCheck bool) bool {
	if !InBounds(r, c) {
		return false
	}
	if !(p.canStepOne(b, r, c) || p.canStepTwo(b, r, c) ||
		p.canCapture(b, r, c) || p.canEnPassant(b, r, c)) {
		return false
	}
	return !testCheck || !leavesKingInCheck(b, p, r, c)
}

func (p *Pawn) canStepOne(b *Board, r, c int) bool {
	return c == p.sq.Col && r == p.sq.Row+forward(p.color) && b.grid[r][c] == nil
}

func (p *Pawn) canStepTwo(b *Board, r, c int) bool {
	fwd := forward(p.color)
	return c == p.sq.Col && p.sq.Row == p.homeRow() && r == p.sq.Row+2*fwd &&
		b.grid[r][c] == nil && b.grid[p.sq.Row+fwd][c] == nil
}

// diagonal reports whether (r, c) is one of the two forward diagonals.
func (p *Pawn) diagonal(r, c int) bool {
	return r == p.sq.Row+forward(p.color) && abs(c-p.sq.Col) == 1
}

func (p *Pawn) canCapture(b *Board, r, c int) bool {
	if !p.diagonal(r, c) {
		return false
	}
	occ := b.grid[r][c]
	return occ != nil && occ.Color() != p.color
}

func (p *Pawn) canEnPassant(b *Board, r, c int) bool {
	ep, ok := b.EnPassant()
	return ok && p.sq.Row == p.enPassantRow() && p.diagonal(r, c) &&
		ep == (Square{Row: r, Col: c}) && b.grid[r][c] == nil
}

// IsAttacking reports whether the pawn attacks (r, c).
func (p *Pawn) IsAttacking(b *Board, r, c int) bool {
	return p.diagonal(r, c) && enterable(b, p, r, c)
}

// IsDefending reports whether the pawn covers an empty or friendly (r, c).
func (p *Pawn) IsDefending(b *Board, r, c int) bool {
	return p.diagonal(r, c) && coverable(b, p, r, c)
}

// Moves returns every legal pawn move, one per promotion kind on the far rank.
func (p *Pawn) Moves(b *Board) []*Move {
	fwd := forward(p.color)
	candidates := [4]Square{
		{Row: p.sq.Row + fwd, Col: p.sq.Col},
		{Row: p.sq.Row + 2*fwd, Col: p.sq.Col},
		{Row: p.sq.Row + fwd, Col: p.sq.Col - 1},
		{Row: p.sq.Row + fwd, Col: p.sq.Col + 1},
	}

	var moves []*Move
	for _, sq := range candidates {
		if !p.canMove(b, sq.Row, sq.Col, true) {
			continue
		}
		if sq.Row != p.promotionRow() {
			moves = append(moves, inferMove(b, p, sq))
			continue
		}
		for _, kind := range b.promotions {
			moves = append(moves, newPromotion(b, p, sq, kind))
		}
	}
	return moves
}

// Clone returns an unplaced copy of the pawn.
func (p *Pawn) Clone() Piece {
	return &Pawn{pieceState: copyState(&p.pieceState)}
}
