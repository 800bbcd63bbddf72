// Package chess provides the board model, the six piece variants and
// reversible moves.
package chess

// Color represents the color of a piece or player.
type Color int

const (
	White Color = iota
	Black
)

// String returns the string representation of a color.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite color.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Kind identifies one of the six piece variants.
type Kind int

const (
	PawnKind Kind = iota
	KnightKind
	BishopKind
	RookKind
	QueenKind
	KingKind
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase single letter for a kind.
func (k Kind) Letter() byte {
	letters := []byte{'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(letter byte) (Kind, bool) {
	switch letter {
	case 'p', 'P':
		return PawnKind, true
	case 'n', 'N':
		return KnightKind, true
	case 'b', 'B':
		return BishopKind, true
	case 'r', 'R':
		return RookKind, true
	case 'q', 'Q':
		return QueenKind, true
	case 'k', 'K':
		return KingKind, true
	}
	return 0, false
}

// MoveType categorizes the state transition a move performs.
type MoveType int

const (
	Normal MoveType = iota
	WhiteShortCastle
	WhiteLongCastle
	BlackShortCastle
	BlackLongCastle
	EnPassant
	QueenPromotion
	UnderPromotion
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	names := []string{
		"Normal", "WhiteShortCastle", "WhiteLongCastle", "BlackShortCastle",
		"BlackLongCastle", "EnPassant", "QueenPromotion", "UnderPromotion",
	}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// IsCastle reports whether the type is one of the four castles.
func (t MoveType) IsCastle() bool {
	return t >= WhiteShortCastle && t <= BlackLongCastle
}

// IsPromotion reports whether the type replaces a pawn.
func (t MoveType) IsPromotion() bool {
	return t == QueenPromotion || t == UnderPromotion
}

// Board dimensions and the home rows of each side, in grid rows (row 0 is rank 8).
const (
	BoardSize = 8

	whiteBackRow = 7
	blackBackRow = 0
)

// DefaultPromotions is the promotion set a new board starts with.
var DefaultPromotions = []Kind{QueenKind, KnightKind}

// AllPromotions lists every legal promotion target.
var AllPromotions = []Kind{QueenKind, RookKind, BishopKind, KnightKind}

// backRow returns the grid row holding a color's pieces at the start.
func backRow(c Color) int {
	if c == White {
		return whiteBackRow
	}
	return blackBackRow
}

// forward returns the row delta of a pawn advance for a color.
func forward(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
