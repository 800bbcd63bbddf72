package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// BoardFromPieces builds a board from piece specs such as "Ke1" or "pe7":
// a FEN letter (uppercase White, lowercase Black) followed by a square.
// It calls t.Fatal on a malformed spec.
func BoardFromPieces(t testing.TB, toMove chess.Color, specs ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, spec := range specs {
		if len(spec) != 3 {
			t.Fatalf("bad piece spec %q", spec)
		}
		kind, ok := chess.KindFromLetter(spec[0])
		if !ok {
			t.Fatalf("bad piece letter in %q", spec)
		}
		color := chess.Black
		if spec[0] >= 'A' && spec[0] <= 'Z' {
			color = chess.White
		}
		sq, err := chess.ParseSquare(spec[1:])
		if err != nil {
			t.Fatalf("bad square in %q: %v", spec, err)
		}
		if err := b.Place(sq, chess.NewPiece(kind, color)); err != nil {
			t.Fatalf("placing %q: %v", spec, err)
		}
	}
	b.SetSideToMove(toMove)
	return b
}

// MustPlay plays coordinate moves such as "e2e4" in order and calls
// t.Fatal if one of them is rejected.
func MustPlay(t testing.TB, b *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := b.ParseMove(text)
		if err != nil {
			t.Fatalf("parsing %q: %v", text, err)
		}
		if err := b.Play(m); err != nil {
			t.Fatalf("playing %q: %v", text, err)
		}
	}
}

// MoveStrings returns the coordinate text of each move.
func MoveStrings(moves []*chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// AssertSameBoard fails unless got and want hold the same position,
// printing a diagram diff when they differ.
func AssertSameBoard(t testing.TB, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if got.Equal(want) {
		return
	}
	msg := formatMessage(msgAndArgs...)
	diff := cmp.Diff(want.String()+want.FEN(), got.String()+got.FEN())
	if msg != "" {
		t.Errorf("%s: boards differ (-want +got):\n%s", msg, diff)
	} else {
		t.Errorf("boards differ (-want +got):\n%s", diff)
	}
}

// AssertSamePiece fails unless got and want are the same piece object.
func AssertSamePiece(t testing.TB, got, want chess.Piece, msgAndArgs ...interface{}) {
	t.Helper()
	if got == want {
		return
	}
	msg := formatMessage(msgAndArgs...)
	if msg != "" {
		t.Errorf("%s: got piece %v, want %v", msg, got, want)
	} else {
		t.Errorf("got piece %v, want %v", got, want)
	}
}
