package output

import (
	"github.com/lgbarn/cpuchess-go/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags        map[string]string `json:"tags"`
	Moves       []JSONMove        `json:"moves,omitempty"`
	Result      string            `json:"result"`
	Termination string            `json:"termination,omitempty"`
	PlyCount    int               `json:"plyCount"`
	InitialFEN  string            `json:"initialFEN,omitempty"`
	FinalFEN    string            `json:"finalFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	Label      string `json:"label,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Piece      string `json:"piece,omitempty"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONSolution represents a mate search outcome in JSON format.
type JSONSolution struct {
	Name   string   `json:"name"`
	Found  bool     `json:"found"`
	MateIn int      `json:"mateIn,omitempty"`
	Moves  []string `json:"moves,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// JSONPerft represents a perft run in JSON format.
type JSONPerft struct {
	FEN       string            `json:"fen,omitempty"`
	Depth     int               `json:"depth"`
	Nodes     uint64            `json:"nodes"`
	Divide    map[string]uint64 `json:"divide,omitempty"`
	ElapsedMS int64             `json:"elapsedMs"`
}

// JSONOutput holds every record of a batch.
type JSONOutput struct {
	Games     []*JSONGame    `json:"games,omitempty"`
	Solutions []JSONSolution `json:"solutions,omitempty"`
	Perft     []JSONPerft    `json:"perft,omitempty"`
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(game *GameRecord) *JSONGame {
	jg := &JSONGame{
		Tags:        copyTags(game.Tags),
		Result:      game.Result,
		Termination: game.Termination,
		PlyCount:    game.PlyCount(),
		InitialFEN:  game.InitialFEN,
		FinalFEN:    game.FinalFEN,
	}
	if jg.Result == "" {
		jg.Result = Unfinished
	}

	jg.Moves = make([]JSONMove, 0, len(game.Moves))
	for _, m := range game.Moves {
		jm := JSONMove{
			Color:     m.Color.String(),
			UCI:       m.UCI,
			Label:     m.Label,
			From:      m.From,
			To:        m.To,
			Piece:     m.Piece,
			Captured:  m.Captured,
			Promotion: m.Promotion,
		}
		if m.Color == chess.White {
			jm.MoveNumber = (m.Ply + 1) / 2
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

// SolutionToJSON converts a solution record to JSON format.
func SolutionToJSON(s SolutionRecord) JSONSolution {
	return JSONSolution{
		Name:   s.Name,
		Found:  s.MateIn > 0,
		MateIn: s.MateIn,
		Moves:  s.Moves,
		Error:  s.Error,
	}
}

// PerftToJSON converts a perft record to JSON format.
func PerftToJSON(p PerftRecord) JSONPerft {
	return JSONPerft{
		FEN:       p.FEN,
		Depth:     p.Depth,
		Nodes:     p.Nodes,
		Divide:    p.Divide,
		ElapsedMS: p.Elapsed.Milliseconds(),
	}
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}
