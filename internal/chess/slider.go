package chess

// Ray directions as (row, col) deltas.
var (
	diagonalDirections   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonalDirections = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirections        = [][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

// slides reports whether a slider on from can reach to along one of its
// allowed lines with every square strictly between them empty.
func slides(b *Board, from, to Square, diagonal, straight bool) bool {
	if from == to {
		return false
	}
	dr, dc := to.Row-from.Row, to.Col-from.Col
	onDiagonal := abs(dr) == abs(dc)
	onStraight := dr == 0 || dc == 0
	if !(diagonal && onDiagonal) && !(straight && onStraight) {
		return false
	}
	return b.pathClear(from, to)
}

// rayMoves walks each direction until it leaves the board or meets a piece,
// collecting the legal destinations.
func rayMoves(b *Board, p Piece, directions [][2]int) []*Move {
	var moves []*Move
	from := p.Square()
	for _, d := range directions {
		r, c := from.Row+d[0], from.Col+d[1]
		for InBounds(r, c) {
			occ := b.grid[r][c]
			if occ != nil && occ.Color() == p.Color() {
				break
			}
			moves = appendLegal(b, p, moves, Square{Row: r, Col: c})
			if occ != nil {
				break
			}
			r, c = r+d[0], c+d[1]
		}
	}
	return moves
}

// Bishop moves along diagonals.
type Bishop struct {
	pieceState
}

// CanMove reports whether the bishop may legally move to (r, c).
func (bp *Bishop) CanMove(b *Board, r, c int) bool {
	return bp.canMove(b, r, c, true)
}

func (bp *Bishop) canMove(b *Board, r, c int, testCheck bool) bool {
	if !enterable(b, bp, r, c) || !slides(b, bp.sq, Square{Row: r, Col: c}, true, false) {
		return false
	}
	return !testCheck || !leavesKingInCheck(b, bp, r, c)
}

// IsAttacking reports whether the bishop attacks (r, c).
func (bp *Bishop) IsAttacking(b *Board, r, c int) bool {
	return bp.canMove(b, r, c, false)
}

// IsDefending reports whether the bishop covers an empty or friendly (r, c).
func (bp *Bishop) IsDefending(b *Board, r, c int) bool {
	return coverable(b, bp, r, c) && slides(b, bp.sq, Square{Row: r, Col: c}, true, false)
}

// Moves returns every legal bishop move.
func (bp *Bishop) Moves(b *Board) []*Move {
	return rayMoves(b, bp, diagonalDirections)
}

// Clone returns an unplaced copy of the bishop.
func (bp *Bishop) Clone() Piece {
	return &Bishop{pieceState: copyState(&bp.pieceState)}
}

// Rook moves along ranks and files.
type Rook struct {
	pieceState
}

// CanMove reports whether the rook may legally move to (r, c).
func (rk *Rook) CanMove(b *Board, r, c int) bool {
	return rk.canMove(b, r, c, true)
}

func (rk *Rook) canMove(b *Board, r, c int, testCheck bool) bool {
	if !enterable(b, rk, r, c) || !slides(b, rk.sq, Square{Row: r, Col: c}, false, true) {
		return false
	}
	return !testCheck || !leavesKingInCheck(b, rk, r, c)
}

// IsAttacking reports whether the rook attacks (r, c).
func (rk *Rook) IsAttacking(b *Board, r, c int) bool {
	return rk.canMove(b, r, c, false)
}

// IsDefending reports whether the rook covers an empty or friendly (r, c).
func (rk *Rook) IsDefending(b *Board, r, c int) bool {
	return coverable(b, rk, r, c) && slides(b, rk.sq, Square{Row: r, Col: c}, false, true)
}

// Moves returns every legal rook move.
func (rk *Rook) Moves(b *Board) []*Move {
	return rayMoves(b, rk, orthogonalDirections)
}

// Clone returns an unplaced copy of the rook.
func (rk *Rook) Clone() Piece {
	return &Rook{pieceState: copyState(&rk.pieceState)}
}

// Queen combines the rook and bishop lines.
type Queen struct {
	pieceState
}

// CanMove reports whether the queen may legally move to (r, c).
func (q *Queen) CanMove(b *Board, r, c int) bool {
	return q.canMove(b, r, c, true)
}

func (q *Queen) canMove(b *Board, r, c int, testCheck bool) bool {
	if !enterable(b, q, r, c) || !slides(b, q.sq, Square{Row: r, Col: c}, true, true) {
		return false
	}
	return !testCheck || !leavesKingInCheck(b, q, r, c)
}

// IsAttacking reports whether the queen attacks (r, c).
func (q *Queen) IsAttacking(b *Board, r, c int) bool {
	return q.canMove(b, r, c, false)
}

// IsDefending reports whether the queen covers an empty or friendly (r, c).
func (q *Queen) IsDefending(b *Board, r, c int) bool {
	return coverable(b, q, r, c) && slides(b, q.sq, Square{Row: r, Col: c}, true, true)
}

// Moves returns every legal queen move.
func (q *Queen) Moves(b *Board) []*Move {
	return rayMoves(b, q, allDirections)
}

// Clone returns an unplaced copy of the queen.
func (q *Queen) Clone() Piece {
	return &Queen{pieceState: copyState(&q.pieceState)}
}
