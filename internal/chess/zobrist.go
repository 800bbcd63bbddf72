package chess

import "math/rand"

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5eed_c0de

var (
	zobristPieces    [2][NumKinds][BoardSize * BoardSize]uint64
	zobristBlack     uint64
	zobristCastling  [2][2]uint64
	zobristEnPassant [BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range zobristPieces {
		for k := range zobristPieces[c] {
			for sq := range zobristPieces[c][k] {
				zobristPieces[c][k][sq] = rng.Uint64()
			}
		}
	}
	zobristBlack = rng.Uint64()
	for c := range zobristCastling {
		zobristCastling[c][0] = rng.Uint64()
		zobristCastling[c][1] = rng.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rng.Uint64()
	}
}

// Hash returns a Zobrist key of the position. Boards that are Equal hash
// alike; the castling component follows the rights FEN reports.
func (b *Board) Hash() uint64 {
	var h uint64
	for c := range b.pieces {
		for _, p := range b.pieces[c] {
			h ^= zobristPieces[c][p.Kind()][p.Square().Index()]
		}
	}
	if b.toMove == Black {
		h ^= zobristBlack
	}
	for _, c := range []Color{White, Black} {
		if b.castlingRight(c, true) {
			h ^= zobristCastling[c][0]
		}
		if b.castlingRight(c, false) {
			h ^= zobristCastling[c][1]
		}
	}
	if b.hasEP {
		h ^= zobristEnPassant[b.ep.Col]
	}
	return h
}
