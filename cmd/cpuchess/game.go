package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/engine"
	"github.com/lgbarn/cpuchess-go/internal/hashing"
	"github.com/lgbarn/cpuchess-go/internal/output"
)

// Reasons a game stopped, written to the Termination tag.
const (
	endCheckmate  = "checkmate"
	endStalemate  = "stalemate"
	endRepetition = "repetition"
	endPlyLimit   = "ply limit"
	endTime       = "time forfeit"
	endAbandoned  = "abandoned"
)

// GameSession plays one game on a board. Each side is either the CPU or a
// human reading coordinate moves from input.
type GameSession struct {
	cfg     *config.Config
	board   *chess.Board
	initial string
	players map[chess.Color]*engine.Player
	clocks  map[chess.Color]time.Duration
	tracker *hashing.RepetitionTracker
	input   *bufio.Scanner
}

// NewGameSession prepares a game from the standard position. Sides listed in
// cpu are played by the engine; any other side reads moves from in.
func NewGameSession(cfg *config.Config, in io.Reader, cpu ...chess.Color) (*GameSession, error) {
	b := chess.DefaultBoard()
	if err := cfg.Rules.Apply(b); err != nil {
		return nil, err
	}

	s := &GameSession{
		cfg:     cfg,
		board:   b,
		initial: b.FEN(),
		players: make(map[chess.Color]*engine.Player),
		clocks:  map[chess.Color]time.Duration{chess.White: cfg.Play.Clock, chess.Black: cfg.Play.Clock},
		tracker: hashing.NewRepetitionTracker(true),
	}
	for _, c := range cpu {
		s.players[c] = engine.NewPlayer(cfg)
	}
	if in != nil {
		s.input = bufio.NewScanner(in)
	}
	s.tracker.Record(b)
	return s, nil
}

// Board returns the board the game is played on.
func (s *GameSession) Board() *chess.Board {
	return s.board
}

// Run plays until the game ends and returns its record.
func (s *GameSession) Run() (*output.GameRecord, error) {
	for {
		if end := s.adjudicate(); end != "" {
			return s.record(end), nil
		}

		side := s.board.SideToMove()
		start := time.Now()
		var (
			m   *chess.Move
			err error
		)
		if p, ok := s.players[side]; ok {
			m = p.BestMove(s.board, side, s.clocks[side])
		} else {
			m, err = s.humanMove(side)
			if err != nil {
				return nil, err
			}
			if m == nil {
				return s.record(endAbandoned), nil
			}
		}

		if s.cfg.Play.Clock > 0 {
			s.clocks[side] -= time.Since(start)
			if s.clocks[side] <= 0 {
				rec := s.record(endTime)
				rec.SetResult(winner(side.Opposite()))
				return rec, nil
			}
		}

		if m == nil {
			// No legal move; adjudicate reports it on the next pass.
			continue
		}
		if err := s.board.Play(m); err != nil {
			if _, cpu := s.players[side]; cpu {
				return nil, err
			}
			s.cfg.Logf(config.Silent, "Illegal move %s: %v", m, err)
			continue
		}
		s.tracker.Record(s.board)
		s.cfg.Logf(config.Normal, "%d. %s %s (%s)", s.board.MoveCount(), side, m.Label(), remainingLabel(s.clocks[side]))
		if s.cfg.Output.ShowBoard {
			s.cfg.Logf(config.Normal, "%s", s.board.Diagram())
		}
	}
}

// adjudicate returns the termination reason once the game is over.
func (s *GameSession) adjudicate() string {
	side := s.board.SideToMove()
	switch {
	case s.board.IsCheckMate(side):
		return endCheckmate
	case s.board.IsDraw(side):
		return endStalemate
	case s.tracker.Repeated(s.board, s.cfg.Play.RepetitionLimit):
		return endRepetition
	case s.cfg.Play.MaxPlies > 0 && s.board.MoveCount() >= s.cfg.Play.MaxPlies:
		return endPlyLimit
	}
	return ""
}

// record builds the game record for a finished game.
func (s *GameSession) record(termination string) *output.GameRecord {
	rec := output.RecordGame(s.board, s.initial, termination)
	if termination == endRepetition || termination == endPlyLimit {
		rec.SetResult(output.Draw)
	}
	rec.SetTag(output.EventTag, "cpuchess game")
	rec.SetTag(output.WhiteTag, s.playerName(chess.White))
	rec.SetTag(output.BlackTag, s.playerName(chess.Black))
	rec.SetTag(output.DateTag, time.Now().Format("2006.01.02"))
	return rec
}

func (s *GameSession) playerName(c chess.Color) string {
	if _, ok := s.players[c]; ok {
		return "cpuchess"
	}
	return "human"
}

// humanMove reads lines until one holds a legal move for side. "undo" takes
// back the last full move; "quit" or end of input abandons the game and
// returns a nil move.
func (s *GameSession) humanMove(side chess.Color) (*chess.Move, error) {
	if s.input == nil {
		return nil, nil
	}
	for {
		s.cfg.Logf(config.Silent, "%s to move: ", side)
		if !s.input.Scan() {
			return nil, s.input.Err()
		}
		text := strings.ToLower(strings.TrimSpace(s.input.Text()))
		switch text {
		case "":
			continue
		case "quit", "resign":
			return nil, nil
		case "undo":
			s.undoFullMove()
			s.cfg.Logf(config.Silent, "%s", s.board.Diagram())
			continue
		case "board":
			s.cfg.Logf(config.Silent, "%s", s.board.Diagram())
			continue
		}

		m, err := s.board.ParseMove(text)
		if err != nil {
			s.cfg.Logf(config.Silent, "Illegal move %s: %v", text, err)
			continue
		}
		if m.Color() != side {
			s.cfg.Logf(config.Silent, "Illegal move %s: %s is not to move", text, m.Color())
			continue
		}
		return m, nil
	}
}

// undoFullMove takes back plies until it is a human's turn again, or the
// history runs out.
func (s *GameSession) undoFullMove() {
	for s.board.MoveCount() > 0 {
		s.tracker.Forget(s.board)
		if err := s.board.Undo(); err != nil {
			s.cfg.Logf(config.Normal, "Error undoing move: %v", err)
			return
		}
		if _, cpu := s.players[s.board.SideToMove()]; !cpu {
			return
		}
	}
}

// winner returns the result string for a win by c.
func winner(c chess.Color) string {
	if c == chess.White {
		return output.WhiteWins
	}
	return output.BlackWins
}

// playGame runs a play or selfplay game and writes its record.
func playGame(cfg *config.Config, w output.GameWriter, in io.Reader, selfPlay bool) error {
	cpu := []chess.Color{cfg.Play.HumanColor.Opposite()}
	if selfPlay {
		cpu = []chess.Color{chess.White, chess.Black}
		in = nil
	}

	session, err := NewGameSession(cfg, in, cpu...)
	if err != nil {
		return err
	}
	rec, err := session.Run()
	if err != nil {
		return fmt.Errorf("playing game: %w", err)
	}
	cfg.Logf(config.Normal, "%s (%s) after %d plies", rec.Result, rec.Termination, rec.PlyCount())
	return w.WriteGame(rec)
}
