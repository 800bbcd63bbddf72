package puzzles

import (
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

func TestAll_BoardsBuild(t *testing.T) {
	if len(All) != 9 {
		t.Fatalf("len(All) = %d, want 9", len(All))
	}
	for _, p := range All {
		p := p
		t.Run(p.Name, func(t *testing.T) {
			t.Parallel()
			b, err := p.Board()
			if err != nil {
				t.Fatalf("Board() error = %v", err)
			}
			if b.SideToMove() != p.ToMove {
				t.Errorf("SideToMove() = %v, want %v", b.SideToMove(), p.ToMove)
			}
			if b.IsGameOver() {
				t.Error("puzzle starts with the game over")
			}
			if b.KingInCheck(p.ToMove.Opposite()) {
				t.Error("defender starts in check")
			}
			if p.MateIn < 1 {
				t.Errorf("MateIn = %d, want at least 1", p.MateIn)
			}
		})
	}
}

func TestAll_FirstMovesAreLegal(t *testing.T) {
	for _, p := range All {
		b := p.MustBoard()
		for _, text := range p.FirstMoves {
			if _, err := b.ParseMove(text); err != nil {
				t.Errorf("%s: first move %s: %v", p.Name, text, err)
			}
		}
	}
}

func TestAll_NamesAreUnique(t *testing.T) {
	seen := map[string]bool{NoMate.Name: true}
	for _, p := range All {
		if seen[p.Name] {
			t.Errorf("duplicate puzzle name %q", p.Name)
		}
		seen[p.Name] = true
	}
}

func TestPuzzle_Accepts(t *testing.T) {
	kq := All[5]
	if !kq.Accepts("a7g7") {
		t.Error("Accepts(a7g7) = false, want true")
	}
	if kq.Accepts("a7a1") {
		t.Error("Accepts(a7a1) = true, want false")
	}
	if !All[0].Accepts("c5c8") {
		t.Error("a puzzle without first moves should accept any move")
	}
}

func TestPuzzle_BoardErrors(t *testing.T) {
	tests := []struct {
		name   string
		pieces []string
		want   error
	}{
		{"short spec", []string{"K1"}, errors.ErrInvalidArgument},
		{"bad letter", []string{"Xe1"}, errors.ErrInvalidArgument},
		{"off board", []string{"Ke9"}, errors.ErrOffBoard},
		{"same square", []string{"Ke1", "ke1"}, errors.ErrOccupied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Puzzle{Name: tt.name, Pieces: tt.pieces}.Board()
			if !errors.Is(err, tt.want) {
				t.Errorf("Board() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNoMate_Board(t *testing.T) {
	b := NoMate.MustBoard()
	if got := len(b.Pieces(chess.White)); got != 2 {
		t.Errorf("white pieces = %d, want 2", got)
	}
	if NoMate.MateIn != 0 {
		t.Errorf("MateIn = %d, want 0", NoMate.MateIn)
	}
}
