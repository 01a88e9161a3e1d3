package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// isolate keeps config lookups away from the real home and working directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestGameOptions(t *testing.T) {
	isolate(t)

	tests := []struct {
		name       string
		mode       string
		difficulty string
		rows, cols int
		walls      int
		points     int
		interval   time.Duration
	}{
		{"classic normal", snake.ModeClassic, "", 20, 40, 0, 10, 150 * time.Millisecond},
		{"classic hard", snake.ModeClassic, "hard", 20, 40, 0, 20, 90 * time.Millisecond},
		{"maze easy", snake.ModeMaze, "easy", 20, 40, 20, 5, 200 * time.Millisecond},
		{"mini", snake.ModeMini, "normal", 10, 20, 0, 10, 150 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := gameOptions(tc.mode, "", tc.difficulty, core.DefaultConfig())
			if err != nil {
				t.Fatalf("gameOptions() error = %v", err)
			}
			s := opts.Settings
			if s.Rows != tc.rows || s.Cols != tc.cols || s.Walls != tc.walls || s.PointsPerFood != tc.points {
				t.Errorf("settings = %+v", s)
			}
			if opts.Runtime.TickInterval != tc.interval {
				t.Errorf("TickInterval = %v, expected %v", opts.Runtime.TickInterval, tc.interval)
			}
			if opts.ModeID != tc.mode {
				t.Errorf("ModeID = %q, expected %q", opts.ModeID, tc.mode)
			}
		})
	}
}

func TestGameOptionsErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := gameOptions("nope", "", "", core.DefaultConfig()); err == nil {
		t.Error("unknown mode should fail")
	}
	if _, err := gameOptions(snake.ModeClassic, "", "insane", core.DefaultConfig()); err == nil {
		t.Error("unknown difficulty should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("snake:\n  initial_direction: sideways\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := gameOptions(snake.ModeClassic, bad, "", core.DefaultConfig()); err == nil {
		t.Error("invalid direction in config should fail")
	}
}

func TestGameOptionsCustomConfig(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	data := "board:\n  rows: 12\n  cols: 16\nsnake:\n  starting_length: 4\n  initial_direction: up\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := gameOptions(snake.ModeClassic, path, "", core.DefaultConfig())
	if err != nil {
		t.Fatalf("gameOptions() error = %v", err)
	}
	s := opts.Settings
	if s.Rows != 12 || s.Cols != 16 || s.StartingLength != 4 || s.InitialDirection != snake.DirUp {
		t.Errorf("settings = %+v", s)
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	l, closer, err := newLogger(path, true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	l.Debug("hello", "n", 1)
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected debug line", data)
	}

	if _, _, err := newLogger("", false); err != nil {
		t.Errorf("empty path should disable logging, got %v", err)
	}
}

func TestScoreBackendsWithoutDatabase(t *testing.T) {
	// A directory cannot be opened as a database
	scores, history, closer := scoreBackends(t.TempDir())
	defer closer()
	if scores != nil || history != nil {
		t.Error("failed open must leave the interfaces nil")
	}
}

func TestPrintModes(t *testing.T) {
	var buf bytes.Buffer
	printModes(&buf)

	out := buf.String()
	for _, id := range []string{snake.ModeClassic, snake.ModeMaze, snake.ModeMini} {
		if !strings.Contains(out, id) {
			t.Errorf("output missing mode %q:\n%s", id, out)
		}
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, score := range []int{40, 70} {
		if _, err := store.SaveScore(storage.ScoreEntry{ModeID: snake.ModeMaze, Score: score, Length: 6, Outcome: "wall"}); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := printSummary(&buf, store); err != nil {
		t.Fatalf("printSummary() error = %v", err)
	}
	if !strings.Contains(buf.String(), "never") {
		t.Error("unplayed modes should be listed as never played")
	}

	mode := mustMode(t, snake.ModeMaze)
	buf.Reset()
	if err := printModeScores(&buf, store, mode); err != nil {
		t.Fatalf("printModeScores() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "High Scores - Maze") || !strings.Contains(out, "Best: 70  Games: 2  Average: 55.0") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func mustMode(t *testing.T, id string) registry.Mode {
	t.Helper()
	m, err := registry.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
