package output

import (
	"strconv"

	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// Game results.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// GameRecord is a played game ready to be written.
type GameRecord struct {
	// Tags for this game (e.g., Event, White, Black, Result).
	Tags map[string]string

	// The moves in the order played.
	Moves []MoveRecord

	// Result is one of WhiteWins, BlackWins, Draw or Unfinished.
	Result string

	// Termination says why the game ended, e.g. "checkmate".
	Termination string

	InitialFEN string
	FinalFEN   string

	// Diagram of the final position.
	Diagram string
}

// MoveRecord is one ply of a GameRecord.
type MoveRecord struct {
	Ply       int
	Color     chess.Color
	UCI       string
	Label     string
	Piece     string
	From      string
	To        string
	Captured  string
	Promotion string
}

// NewGameRecord creates an empty record.
func NewGameRecord() *GameRecord {
	return &GameRecord{
		Tags:   make(map[string]string),
		Result: Unfinished,
	}
}

// RecordGame builds a record from the history of b. initialFEN is the FEN
// of the position the history starts from.
func RecordGame(b *chess.Board, initialFEN, termination string) *GameRecord {
	g := NewGameRecord()
	g.InitialFEN = initialFEN
	g.FinalFEN = b.FEN()
	g.Diagram = b.Diagram()
	g.Termination = termination
	g.Result = ResultOf(b)

	for i, m := range b.History() {
		g.Moves = append(g.Moves, recordMove(i+1, m))
	}

	g.SetTag(ResultTag, g.Result)
	g.SetTag(PlyCountTag, strconv.Itoa(len(g.Moves)))
	if termination != "" {
		g.SetTag(TerminationTag, termination)
	}
	if initialFEN != "" && initialFEN != chess.InitialFEN {
		g.SetTag(FENTag, initialFEN)
	}
	return g
}

// recordMove describes a move that has been played.
func recordMove(ply int, m *chess.Move) MoveRecord {
	mr := MoveRecord{
		Ply:   ply,
		Color: m.Color(),
		UCI:   m.String(),
		Label: m.Label(),
		Piece: pieceTypeName(m.Piece().Kind()),
		From:  m.From().String(),
		To:    m.To().String(),
	}
	if captured := m.Captured(); captured != nil {
		mr.Captured = pieceTypeName(captured.Kind())
	}
	if m.Type().IsPromotion() {
		mr.Promotion = pieceTypeName(m.Promotion())
	}
	return mr
}

// ResultOf returns the result of the position on b: a win for the side
// that delivered mate, a draw on stalemate, otherwise Unfinished.
func ResultOf(b *chess.Board) string {
	switch {
	case b.IsCheckMate(chess.White):
		return BlackWins
	case b.IsCheckMate(chess.Black):
		return WhiteWins
	case b.IsDraw(b.SideToMove()):
		return Draw
	}
	return Unfinished
}

// SetResult overrides the result, for games adjudicated by the caller.
func (g *GameRecord) SetResult(result string) {
	g.Result = result
	g.SetTag(ResultTag, result)
}

// GetTag returns a tag value, or empty string if not present.
func (g *GameRecord) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *GameRecord) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag exists.
func (g *GameRecord) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if nil.
func (g *GameRecord) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// PlyCount returns the number of half-moves in the game.
func (g *GameRecord) PlyCount() int {
	return len(g.Moves)
}

// pieceTypeName returns the piece kind as a lowercase name.
func pieceTypeName(k chess.Kind) string {
	switch k {
	case chess.PawnKind:
		return "pawn"
	case chess.KnightKind:
		return "knight"
	case chess.BishopKind:
		return "bishop"
	case chess.RookKind:
		return "rook"
	case chess.QueenKind:
		return "queen"
	case chess.KingKind:
		return "king"
	default:
		return ""
	}
}
