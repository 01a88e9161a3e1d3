package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// newLogger opens the log file. The terminal belongs to the game, so logs
// never go to stdout or stderr. An empty path discards everything.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path = config.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l, func() { f.Close() }, nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// scoreBackends opens the scores database. Without it games still run, just
// without persistence, so a failure is only a warning. The interfaces stay
// nil in that case.
func scoreBackends(path string) (storage.ScoreStore, tui.ScoreHistory, func()) {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil, nil, func() {}
	}
	return store, store, func() { store.Close() }
}

// gameOptions resolves a mode into a ready-to-run game session: the config
// file is loaded, the difficulty preset applied, then the mode's own changes.
func gameOptions(modeID, configPath, difficulty string, rt core.RuntimeConfig) (tui.GameOptions, error) {
	mode, err := registry.Get(modeID)
	if err != nil {
		return tui.GameOptions{}, err
	}

	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return tui.GameOptions{}, err
	}
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return tui.GameOptions{}, err
	}
	config.ApplySnakePreset(&cfg, preset)
	cfg = mode.Apply(cfg)

	settings, err := snake.SettingsFromConfig(cfg)
	if err != nil {
		return tui.GameOptions{}, fmt.Errorf("mode %s: %w", modeID, err)
	}

	rt.FPS = cfg.Timing.FPS
	rt.TickInterval = cfg.Timing.TickInterval()

	return tui.GameOptions{
		ModeID:   mode.ID,
		Title:    mode.Title,
		Settings: settings,
		Runtime:  rt,
		Logger:   logger.With("mode", mode.ID),
	}, nil
}
