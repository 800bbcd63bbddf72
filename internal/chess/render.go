package chess

import "strings"

// String renders the board as eight lines, rank 8 first, using FEN letters
// and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if p := b.grid[r][c]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Diagram renders the board with rank and file labels, from White's side.
func (b *Board) Diagram() string {
	var sb strings.Builder
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	for r, line := range lines {
		sb.WriteByte(byte('8' - r))
		sb.WriteString("  ")
		for i := 0; i < len(line); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(line[i])
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
