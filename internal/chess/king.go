package chess

// Castling geometry in columns.
const (
	kingStartCol      = 4
	shortRookCol      = 7
	longRookCol       = 0
	shortKingCol      = 6
	longKingCol       = 2
	shortRookLandsCol = 5
	longRookLandsCol  = 3
)

// King steps one square in any direction and may castle once per game.
type King struct {
	pieceState
	castled bool
}

// HasCastled reports whether the king's last castling move is still on the board.
func (k *King) HasCastled() bool {
	return k.castled
}

// steps reports whether (r, c) is one king step away.
func (k *King) steps(r, c int) bool {
	return chebyshev(k.sq, Square{Row: r, Col: c}) == 1
}

// CanMove reports whether the king may legally move to (r, c), castling included.
func (k *King) CanMove(b *Board, r, c int) bool {
	return k.canMove(b, r, c, true)
}

func (k *King) canMove(b *Board, r, c int, testCheck bool) bool {
	if !InBounds(r, c) {
		return false
	}
	if r == backRow(k.color) && k.sq.Row == r && k.sq.Col == kingStartCol {
		if c == shortKingCol && k.canCastle(b, true) {
			return true
		}
		if c == longKingCol && k.canCastle(b, false) {
			return true
		}
	}
	if !enterable(b, k, r, c) || !k.steps(r, c) {
		return false
	}
	return !testCheck || !leavesKingInCheck(b, k, r, c)
}

// canCastle checks the castling preconditions: king and rook unmoved, king
// not in check, the squares between them empty, and the squares the king
// crosses and lands on not attacked.
func (k *King) canCastle(b *Board, short bool) bool {
	row := backRow(k.color)
	if k.moves != 0 || k.sq != (Square{Row: row, Col: kingStartCol}) {
		return false
	}

	rookCol, empty, safe := longRookCol, []int{1, 2, 3}, []int{3, 2}
	if short {
		rookCol, empty, safe = shortRookCol, []int{5, 6}, []int{5, 6}
	}

	rook, ok := b.grid[row][rookCol].(*Rook)
	if !ok || rook.color != k.color || rook.moves != 0 {
		return false
	}
	for _, c := range empty {
		if b.grid[row][c] != nil {
			return false
		}
	}

	enemy := k.color.Opposite()
	if b.IsAttacked(row, kingStartCol, enemy) {
		return false
	}
	for _, c := range safe {
		if b.IsAttacked(row, c, enemy) {
			return false
		}
	}
	return true
}

// IsAttacking reports whether the king attacks (r, c). Castling never attacks.
func (k *King) IsAttacking(b *Board, r, c int) bool {
	return enterable(b, k, r, c) && k.steps(r, c)
}

// IsDefending reports whether the king covers an empty or friendly (r, c).
func (k *King) IsDefending(b *Board, r, c int) bool {
	return coverable(b, k, r, c) && k.steps(r, c)
}

// Moves returns every legal king move, castling included.
func (k *King) Moves(b *Board) []*Move {
	var moves []*Move
	for _, d := range allDirections {
		r, c := k.sq.Row+d[0], k.sq.Col+d[1]
		if enterable(b, k, r, c) {
			moves = appendLegal(b, k, moves, Square{Row: r, Col: c})
		}
	}
	row := backRow(k.color)
	if k.canCastle(b, true) {
		moves = append(moves, inferMove(b, k, Square{Row: row, Col: shortKingCol}))
	}
	if k.canCastle(b, false) {
		moves = append(moves, inferMove(b, k, Square{Row: row, Col: longKingCol}))
	}
	return moves
}

// Clone returns an unplaced copy of the king, castled flag included.
func (k *King) Clone() Piece {
	return &King{pieceState: copyState(&k.pieceState), castled: k.castled}
}
