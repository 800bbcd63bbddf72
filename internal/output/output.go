// Package output writes games, mate solutions and perft counts as text or
// JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// TextWriter writes records as readable text: games as tag pairs followed
// by a numbered move list.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer. A nil cfg selects the defaults.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes a game: tags, moves, result and, if configured, the
// final diagram.
func (tw *TextWriter) WriteGame(game *GameRecord) error {
	tw.writeTags(game)
	fmt.Fprintln(tw.w)
	tw.writeMoves(game)
	if tw.cfg.ShowBoard && game.Diagram != "" {
		fmt.Fprintln(tw.w)
		fmt.Fprint(tw.w, game.Diagram)
	}
	if game.FinalFEN != "" {
		fmt.Fprintf(tw.w, "FEN: %s\n", game.FinalFEN)
	}
	_, err := fmt.Fprintln(tw.w)
	return err
}

// writeTags outputs the seven tag roster, then the other tags sorted.
func (tw *TextWriter) writeTags(game *GameRecord) {
	for _, tag := range SevenTagRoster {
		value := game.GetTag(tag)
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(tw.w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	var extra []string
	for tag := range game.Tags {
		if !IsSevenTagRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		fmt.Fprintf(tw.w, "[%s \"%s\"]\n", tag, escapeTagValue(game.Tags[tag]))
	}
}

// writeMoves outputs the numbered move list and the result.
func (tw *TextWriter) writeMoves(game *GameRecord) {
	ow := NewOutputWriter(tw.w, 80)
	for i, m := range game.Moves {
		moveNum := (m.Ply + 1) / 2
		if m.Color == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(tw.moveText(m))
	}
	ow.Write(game.Result)
	ow.NewLine()
}

// moveText returns the coordinates of a move, with its label if configured.
func (tw *TextWriter) moveText(m MoveRecord) string {
	if tw.cfg.ShowLabels && m.Label != "" {
		return m.UCI + "(" + m.Label + ")"
	}
	return m.UCI
}

// WriteSolution writes one line per puzzle.
func (tw *TextWriter) WriteSolution(s SolutionRecord) error {
	var err error
	switch {
	case s.Error != "":
		_, err = fmt.Fprintf(tw.w, "%s: error: %s\n", s.Name, s.Error)
	case s.MateIn == 0:
		_, err = fmt.Fprintf(tw.w, "%s: no mate found\n", s.Name)
	default:
		_, err = fmt.Fprintf(tw.w, "%s: mate in %d: %s\n", s.Name, s.MateIn, strings.Join(s.Moves, " "))
	}
	return err
}

// WritePerft writes the divide table, if any, and the total.
func (tw *TextWriter) WritePerft(p PerftRecord) error {
	moves := make([]string, 0, len(p.Divide))
	for m := range p.Divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)
	for _, m := range moves {
		fmt.Fprintf(tw.w, "%s: %d\n", m, p.Divide[m])
	}
	_, err := fmt.Fprintf(tw.w, "perft(%d) = %d in %v (%.0f nodes/s)\n",
		p.Depth, p.Nodes, p.Elapsed, p.NodesPerSecond())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
