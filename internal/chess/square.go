package chess

import (
	"fmt"

	"github.com/lgbarn/cpuchess-go/internal/errors"
)

// Square is an immutable grid coordinate. Row 0 is rank 8, column 0 is file a.
type Square struct {
	Row int
	Col int
}

// NoSquare is returned where a square is absent.
var NoSquare = Square{Row: -1, Col: -1}

// InBounds reports whether (r, c) lies on the board.
func InBounds(r, c int) bool {
	return r >= 0 && r < BoardSize && c >= 0 && c < BoardSize
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return InBounds(s.Row, s.Col)
}

// File returns the file letter 'a'..'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank number 1..8.
func (s Square) Rank() int {
	return BoardSize - s.Row
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", s.File(), s.Rank())
}

// Index returns row*8+col.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// SquareAt converts a file letter and rank number into a square.
func SquareAt(file byte, rank int) (Square, error) {
	sq := Square{Row: BoardSize - rank, Col: int(file) - 'a'}
	if !sq.Valid() {
		return NoSquare, &errors.SquareError{
			Err:    errors.ErrOffBoard,
			Square: fmt.Sprintf("%c%d", file, rank),
		}
	}
	return sq, nil
}

// ParseSquare converts algebraic text such as "e4" into a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 || text[1] < '1' || text[1] > '8' {
		return NoSquare, &errors.SquareError{Err: errors.ErrOffBoard, Square: text}
	}
	return SquareAt(text[0], int(text[1]-'0'))
}

// MustSquare is ParseSquare for literals known to be valid; it panics otherwise.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// aligned reports whether two distinct squares share a rank, file or diagonal.
func aligned(a, b Square) bool {
	if a == b {
		return false
	}
	dr, dc := b.Row-a.Row, b.Col-a.Col
	return dr == 0 || dc == 0 || abs(dr) == abs(dc)
}

// chebyshev returns the king-move distance between two squares.
func chebyshev(a, b Square) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr > dc {
		return dr
	}
	return dc
}

// Distance returns the number of king steps between two squares.
func Distance(a, b Square) int {
	return chebyshev(a, b)
}
