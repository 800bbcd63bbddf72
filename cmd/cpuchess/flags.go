// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/lgbarn/cpuchess-go/internal/chess"
	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/errors"
)

var (
	// Mode selection
	mode = flag.String("mode", "selfplay", "What to run: play, selfplay, solve, perft")

	// Search options
	depth      = flag.Int("depth", 0, "Search depth when untimed (0 = default)")
	clock      = flag.Duration("time", 0, "Starting clock per side, e.g. 5m (0 = untimed)")
	mateDepth  = flag.Int("matedepth", 0, "Mate search depth in moves (0 = default)")
	noSafety   = flag.Bool("nosafety", false, "Don't skip root moves that allow mate in one")
	workers    = flag.Int("workers", 0, "Number of worker goroutines for solve and perft (0 = one per CPU)")
	perftDepth = flag.Int("perft", 4, "Perft depth")
	divide     = flag.Bool("divide", false, "Show perft counts per root move")

	// Rules
	promotions = flag.String("promotions", "qn", "Promotion pieces, e.g. qn, qrbn or all")

	// Game options
	humanColor = flag.String("color", "white", "Side you play in play mode: white or black")
	maxPly     = flag.Int("maxply", 200, "Adjudicate a draw after N plies (0 = no limit)")
	repetition = flag.Int("repetition", 3, "Adjudicate a draw when a position occurs N times")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("json", false, "Output in JSON format")
	showBoard  = flag.Bool("board", false, "Show the board after every move")
	noLabels   = flag.Bool("nolabels", false, "Don't write short move labels next to coordinates")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Trace the search")
	quiet   = flag.Bool("s", false, "Silent mode (results only)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	if err := applyRulesFlags(cfg); err != nil {
		return err
	}
	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Trace
	}
	return cfg.Validate()
}

// applySearchFlags configures search depth and workers.
func applySearchFlags(cfg *config.Config) error {
	if *depth < 0 {
		return fmt.Errorf("depth %d < 0: %w", *depth, errors.ErrInvalidConfig)
	}
	if *depth > 0 {
		cfg.Search.DefaultDepth = *depth
	}
	if *mateDepth > 0 {
		cfg.Search.MateDepth = *mateDepth
		if cfg.Search.MateDepthNearKing < *mateDepth {
			cfg.Search.MateDepthNearKing = *mateDepth
		}
	}
	cfg.Search.MateSafety = !*noSafety
	cfg.Search.Workers = *workers
	return nil
}

// applyRulesFlags configures the promotion set.
func applyRulesFlags(cfg *config.Config) error {
	kinds, err := config.ParsePromotions(*promotions)
	if err != nil {
		return err
	}
	cfg.Rules.Promotions = kinds
	return nil
}

// applyPlayFlags configures the human side, clock and draw adjudication.
func applyPlayFlags(cfg *config.Config) error {
	c, err := parseColor(*humanColor)
	if err != nil {
		return err
	}
	cfg.Play.HumanColor = c
	cfg.Play.Clock = *clock
	cfg.Play.MaxPlies = *maxPly
	cfg.Play.RepetitionLimit = *repetition
	return nil
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	} else {
		cfg.Output.Format = config.Text
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowLabels = !*noLabels
}

// parseColor accepts white, black or their first letters.
func parseColor(s string) (chess.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("unknown color %q: %w", s, errors.ErrInvalidConfig)
}

// remainingLabel formats a clock for the log.
func remainingLabel(d time.Duration) string {
	if d <= 0 {
		return "untimed"
	}
	return d.Round(time.Second).String()
}
