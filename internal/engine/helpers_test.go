package engine

import (
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/testutil"
)

// kiwipete is the r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R
// test position.
func kiwipete(t testing.TB) *chess.Board {
	return testutil.BoardFromPieces(t, chess.White,
		"ra8", "ke8", "rh8",
		"pa7", "pc7", "pd7", "qe7", "pf7", "bg7",
		"ba6", "nb6", "pe6", "nf6", "pg6",
		"Pd5", "Ne5",
		"pb4", "Pe4",
		"Nc3", "Qf3", "ph3",
		"Pa2", "Pb2", "Pc2", "Bd2", "Be2", "Pf2", "Pg2", "Ph2",
		"Ra1", "Ke1", "Rh1",
	)
}

// rookEndgame is 8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -, rich in en
// passant and discovered checks.
func rookEndgame(t testing.TB) *chess.Board {
	return testutil.BoardFromPieces(t, chess.White,
		"pc7", "pd6", "Ka5", "Pb5", "rh5", "Rb4", "pf4", "kh4", "Pe2", "Pg2")
}

// promotions is n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - with every promotion
// piece enabled.
func promotions(t testing.TB) *chess.Board {
	b := testutil.BoardFromPieces(t, chess.Black,
		"na8", "nc8", "Pa7", "Pb7", "Pc7", "kd7", "Ke2", "pf2", "pg2", "ph2", "Nf1", "Nh1")
	if err := b.SetPromotionKinds(chess.AllPromotions...); err != nil {
		t.Fatal(err)
	}
	return b
}

// italian is the position after 1.e4 e5 2.Nf3 Nc6 3.Bc4 Bc5.
func italian(t testing.TB) *chess.Board {
	b := chess.DefaultBoard()
	testutil.MustPlay(t, b, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5")
	return b
}
