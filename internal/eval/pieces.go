package eval

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// Base values.
const (
	PawnValue   = 100
	KnightValue = 325
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 1000
	KingValue   = 10000
)

// Knight, bishop and queen terms.
const (
	knightEndgamePenalty = -10
	blockingPawnPenalty  = -10
	knightTempoPenalty   = -30
	knightTempoMoves     = 10
	queenOutEarlyPenalty = -15
	queenOutEarlyMoves   = 6
)

// Rook terms.
const (
	rookSeventhRankBonus     = 55
	rookDoubledSeventhBonus  = 10
	rookQueenFileBonus       = 10
	rookDoubledOpenFileBonus = 50
	rookDoubledSemiOpenBonus = 30
	rookOpenFileBonus        = 20
	rookSemiOpenFileBonus    = 15
)

// BaseValue returns the material value of a kind, before positional terms.
func BaseValue(k chess.Kind) int {
	switch k {
	case chess.PawnKind:
		return PawnValue
	case chess.KnightKind:
		return KnightValue
	case chess.BishopKind:
		return BishopValue
	case chess.RookKind:
		return RookValue
	case chess.QueenKind:
		return QueenValue
	case chess.KingKind:
		return KingValue
	}
	return 0
}

// PieceValue scores a placed piece: base value, piece-square table and the
// variant's own terms.
func PieceValue(b *chess.Board, p chess.Piece) int {
	return pieceValue(b, p, IsEndgame(b))
}

func pieceValue(b *chess.Board, p chess.Piece, endgame bool) int {
	idx := tableIndex(p.Color(), p.Square())
	switch p.Kind() {
	case chess.PawnKind:
		return PawnValue + pawnTable[idx] + pawnStructure(b, p)
	case chess.KnightKind:
		return KnightValue + knightTable[idx] + knightTerms(b, p, endgame)
	case chess.BishopKind:
		v := BishopValue + bishopTable[idx]
		if blocksCenterPawn(b, p) {
			v += blockingPawnPenalty
		}
		return v
	case chess.RookKind:
		return RookValue + rookTable[idx] + rookTerms(b, p)
	case chess.QueenKind:
		v := QueenValue + queenTable[idx]
		if p.HasMoved() && b.MoveCount() < queenOutEarlyMoves {
			v += queenOutEarlyPenalty
		}
		return v
	case chess.KingKind:
		if endgame {
			return KingValue + kingEndgameTable[idx]
		}
		return KingValue + kingMiddlegameTable[idx]
	}
	return 0
}

func knightTerms(b *chess.Board, p chess.Piece, endgame bool) int {
	v := 0
	if endgame {
		v += knightEndgamePenalty
	}
	if blocksCenterPawn(b, p) {
		v += blockingPawnPenalty
	}
	if p.MoveCount() > 1 && b.MoveCount() < knightTempoMoves {
		v += knightTempoPenalty
	}
	return v
}

// blocksCenterPawn reports whether p stands directly in front of an own d or
// e pawn that is still on its home square.
func blocksCenterPawn(b *chess.Board, p chess.Piece) bool {
	sq := p.Square()
	if sq.Col != 3 && sq.Col != 4 {
		return false
	}
	home := 6
	if p.Color() == chess.Black {
		home = 1
	}
	if sq.Row != home+forward(p.Color()) {
		return false
	}
	return isPawn(b.Occupant(home, sq.Col), p.Color())
}

func rookTerms(b *chess.Board, p chess.Piece) int {
	sq := p.Square()
	c := p.Color()
	v := 0

	seventh := 1
	if c == chess.Black {
		seventh = 6
	}
	if sq.Row == seventh {
		v += rookSeventhRankBonus
		if heavyOnRank(b, p) {
			v += rookDoubledSeventhBonus
		}
	}

	ownPawns, oppPawns, oppQueen := false, false, false
	for r := 0; r < chess.BoardSize; r++ {
		q := b.Occupant(r, sq.Col)
		if q == nil {
			continue
		}
		switch {
		case q.Kind() == chess.PawnKind && q.Color() == c:
			ownPawns = true
		case q.Kind() == chess.PawnKind:
			oppPawns = true
		case q.Kind() == chess.QueenKind && q.Color() != c:
			oppQueen = true
		}
	}
	if oppQueen {
		v += rookQueenFileBonus
	}

	open := !ownPawns && !oppPawns
	semiOpen := !ownPawns && oppPawns
	doubled := heavyOnFile(b, p)
	switch {
	case open && doubled:
		v += rookDoubledOpenFileBonus
	case semiOpen && doubled:
		v += rookDoubledSemiOpenBonus
	case open:
		v += rookOpenFileBonus
	case semiOpen:
		v += rookSemiOpenFileBonus
	}
	return v
}

// heavyOnFile reports whether another own rook or queen shares p's file.
func heavyOnFile(b *chess.Board, p chess.Piece) bool {
	sq := p.Square()
	for r := 0; r < chess.BoardSize; r++ {
		if r != sq.Row && isHeavy(b.Occupant(r, sq.Col), p.Color()) {
			return true
		}
	}
	return false
}

// heavyOnRank reports whether another own rook or queen shares p's rank.
func heavyOnRank(b *chess.Board, p chess.Piece) bool {
	sq := p.Square()
	for c := 0; c < chess.BoardSize; c++ {
		if c != sq.Col && isHeavy(b.Occupant(sq.Row, c), p.Color()) {
			return true
		}
	}
	return false
}

func isHeavy(p chess.Piece, c chess.Color) bool {
	return p != nil && p.Color() == c && (p.Kind() == chess.RookKind || p.Kind() == chess.QueenKind)
}

func isPawn(p chess.Piece, c chess.Color) bool {
	return p != nil && p.Kind() == chess.PawnKind && p.Color() == c
}

// forward is the row step of an advancing pawn.
func forward(c chess.Color) int {
	if c == chess.White {
		return -1
	}
	return 1
}
