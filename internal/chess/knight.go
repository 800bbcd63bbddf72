package chess

// knightOffsets are the eight L-shaped jumps.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Knight jumps in an L shape, ignoring intervening pieces.
type Knight struct {
	pieceState
}

// reaches reports whether (r, c) is a knight jump away.
func (n *Knight) reaches(r, c int) bool {
	dr, dc := abs(r-n.sq.Row), abs(c-n.sq.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// CanMove reports whether the knight may legally move to (r, c).
func (n *Knight) CanMove(b *Board, r, c int) bool {
	return n.canMove(b, r, c, true)
}

func (n *Knight) canMove(b *Board, r, c int, testCheck bool) bool {
	if !enterable(b, n, r, c) || !n.reaches(r, c) {
		return false
	}
	return !testCheck || !leavesKingInCheck(b, n, r, c)
}

// IsAttacking reports whether the knight attacks (r, c).
func (n *Knight) IsAttacking(b *Board, r, c int) bool {
	return n.canMove(b, r, c, false)
}

// IsDefending reports whether the knight covers an empty or friendly (r, c).
func (n *Knight) IsDefending(b *Board, r, c int) bool {
	return coverable(b, n, r, c) && n.reaches(r, c)
}

// Moves returns every legal knight move.
func (n *Knight) Moves(b *Board) []*Move {
	var moves []*Move
	for _, off := range knightOffsets {
		r, c := n.sq.Row+off[0], n.sq.Col+off[1]
		if enterable(b, n, r, c) {
			moves = appendLegal(b, n, moves, Square{Row: r, Col: c})
		}
	}
	return moves
}

// Clone returns an unplaced copy of the knight.
func (n *Knight) Clone() Piece {
	return &Knight{pieceState: copyState(&n.pieceState)}
}
