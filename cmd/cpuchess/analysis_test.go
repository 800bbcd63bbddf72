package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/cpuchess-go/internal/config"
	"github.com/lgbarn/cpuchess-go/internal/output"
	"github.com/lgbarn/cpuchess-go/internal/puzzles"
)

func TestSolvePuzzles_Text(t *testing.T) {
	log := &bytes.Buffer{}
	cfg := newTestConfig(log)
	cfg.Search.Workers = 2

	library := []puzzles.Puzzle{puzzles.All[4], puzzles.NoMate, puzzles.All[3]}
	out := &bytes.Buffer{}
	if err := solvePuzzles(cfg, output.NewTextWriter(out, cfg.Output), library); err != nil {
		t.Fatalf("solvePuzzles() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want 3:\n%s", len(lines), out.String())
	}
	if lines[0] != "back rank: mate in 1: a1a8" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "lone knight: no mate found" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "rook offer on h6: mate in 2: h1h6 ") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if !strings.Contains(log.String(), "2 of 3 puzzle(s) solved") {
		t.Errorf("log missing summary:\n%s", log.String())
	}
}

func TestSolvePuzzles_JSON(t *testing.T) {
	cfg := newTestConfig(&bytes.Buffer{})
	out := &bytes.Buffer{}
	w := output.NewJSONWriter(out)

	if err := solvePuzzles(cfg, w, puzzles.All); err != nil {
		t.Fatalf("solvePuzzles() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var doc output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(doc.Solutions) != len(puzzles.All) {
		t.Fatalf("got %d solutions; want %d", len(doc.Solutions), len(puzzles.All))
	}
	for i, s := range doc.Solutions {
		p := puzzles.All[i]
		if s.Name != p.Name || !s.Found || s.MateIn != p.MateIn {
			t.Errorf("solution %d = %+v; want %s mate in %d", i, s, p.Name, p.MateIn)
		}
		if len(s.Moves) > 0 && !p.Accepts(s.Moves[0]) {
			t.Errorf("%s: first move %s is not a documented solution", p.Name, s.Moves[0])
		}
	}
}

func TestRunPerft(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		divide bool
		want   []string
	}{
		{"depth 1 divide", 1, true, []string{"e2e4: 1\n", "g1f3: 1\n", "perft(1) = 20 in "}},
		{"depth 2 divide", 2, true, []string{"e2e4: 20\n", "perft(2) = 400 in "}},
		{"depth 3 parallel", 3, false, []string{"perft(3) = 8902 in "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(&bytes.Buffer{})
			cfg.Search.Workers = 3
			out := &bytes.Buffer{}
			if err := runPerft(cfg, output.NewTextWriter(out, cfg.Output), tt.depth, tt.divide); err != nil {
				t.Fatalf("runPerft() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRun_UnknownMode(t *testing.T) {
	defer saveRestoreString(mode, "blitz")()
	cfg := newTestConfig(&bytes.Buffer{})
	err := run(cfg, output.NewTextWriter(&bytes.Buffer{}, cfg.Output), nil)
	if err == nil || !strings.Contains(err.Error(), "blitz") {
		t.Errorf("run() error = %v; want unknown mode", err)
	}
}

func TestRun_Perft(t *testing.T) {
	defer saveRestoreString(mode, "perft")()
	defer saveRestoreInt(perftDepth, 2)()
	defer saveRestoreBool(divide, false)()

	cfg := config.NewConfigBuilder().WithLog(&bytes.Buffer{}).WithJSONOutput(true).Build()
	out := &bytes.Buffer{}
	w := output.NewWriter(out, cfg.Output)
	if err := run(cfg, w, nil); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var doc output.JSONOutput
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(doc.Perft) != 1 || doc.Perft[0].Nodes != 400 || doc.Perft[0].Depth != 2 {
		t.Errorf("perft = %+v; want one run of 400 nodes at depth 2", doc.Perft)
	}
}
