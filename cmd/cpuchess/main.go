// cpuchess plays chess against a human or itself, solves mate puzzles and
// counts move-generation nodes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/errors"
	"github.com/lgbarn/cpuchess-go/internal/output"
	"github.com/lgbarn/cpuchess-go/internal/puzzles"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("cpuchess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error in options: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	w := output.NewWriter(cfg.OutputFile, cfg.Output)
	if err := run(cfg, w, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches on the -mode flag.
func run(cfg *config.Config, w output.GameWriter, in io.Reader) error {
	switch *mode {
	case "play":
		return playGame(cfg, w, in, false)
	case "selfplay":
		return playGame(cfg, w, nil, true)
	case "solve":
		return solvePuzzles(cfg, w, puzzles.All)
	case "perft":
		return runPerft(cfg, w, *perftDepth, *divide)
	}
	return fmt.Errorf("unknown mode %q: %w", *mode, errors.ErrInvalidArgument)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: cpuchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A chess engine with alpha-beta search and a mate solver.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  play      Play against the CPU; enter moves like e2e4 or a7a8n\n")
	fmt.Fprintf(os.Stderr, "  selfplay  The CPU plays both sides\n")
	fmt.Fprintf(os.Stderr, "  solve     Solve the built-in mate puzzles\n")
	fmt.Fprintf(os.Stderr, "  perft     Count move-generation nodes from the start position\n")
	fmt.Fprintf(os.Stderr, "\nIn play mode, \"undo\" takes back a move, \"board\" shows the board\n")
	fmt.Fprintf(os.Stderr, "and \"quit\" ends the game.\n")
}
