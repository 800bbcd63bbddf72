package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/cpuchess-go/internal/config"
)

// GameWriter is the interface for writing records to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *GameRecord) error

	// WriteSolution writes the outcome of one mate search.
	WriteSolution(s SolutionRecord) error

	// WritePerft writes the outcome of one perft run.
	WritePerft(p PerftRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured format.
func NewWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg != nil && cfg.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as one JSON document on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	games     []*GameRecord
	solutions []SolutionRecord
	perft     []PerftRecord
	single    bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as one document on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*GameRecord, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *GameRecord) error {
	if jw.single {
		return jw.encode(GameToJSON(game))
	}
	jw.games = append(jw.games, game)
	return nil
}

// WriteSolution buffers a solution (or writes immediately in single mode).
func (jw *JSONWriter) WriteSolution(s SolutionRecord) error {
	if jw.single {
		return jw.encode(SolutionToJSON(s))
	}
	jw.solutions = append(jw.solutions, s)
	return nil
}

// WritePerft buffers a perft run (or writes immediately in single mode).
func (jw *JSONWriter) WritePerft(p PerftRecord) error {
	if jw.single {
		return jw.encode(PerftToJSON(p))
	}
	jw.perft = append(jw.perft, p)
	return nil
}

// Flush writes all buffered records as one JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games)+len(jw.solutions)+len(jw.perft) == 0 {
		return nil
	}

	output := &JSONOutput{}
	for _, game := range jw.games {
		output.Games = append(output.Games, GameToJSON(game))
	}
	for _, s := range jw.solutions {
		output.Solutions = append(output.Solutions, SolutionToJSON(s))
	}
	for _, p := range jw.perft {
		output.Perft = append(output.Perft, PerftToJSON(p))
	}

	err := jw.encode(output)

	// Clear buffers after writing
	jw.games = jw.games[:0]
	jw.solutions = jw.solutions[:0]
	jw.perft = jw.perft[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
