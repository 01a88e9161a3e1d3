package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func updateMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsModes(t *testing.T) {
	store := openStore(t)
	store.RecordHighScore(snake.ModeMaze, 50)

	m := NewMenuModel(store, core.DefaultConfig())
	if len(m.items) < 3 {
		t.Fatalf("menu has %d items, expected the registered modes", len(m.items))
	}

	var maze *MenuItem
	for i := range m.items {
		if m.items[i].ModeID == snake.ModeMaze {
			maze = &m.items[i]
		}
	}
	if maze == nil || maze.Best != 50 {
		t.Errorf("maze item = %+v, expected best 50", maze)
	}
	if !strings.Contains(m.View(), "Maze") {
		t.Error("menu view missing mode titles")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyUp}) // Already at top
	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.result()
	if res.Quit || res.WantsScoreboard {
		t.Fatalf("result = %+v, expected a selection", res)
	}
	if res.ModeID != m.items[1].ModeID {
		t.Errorf("ModeID = %q, expected %q", res.ModeID, m.items[1].ModeID)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	for range len(m.items) + 3 {
		m = updateMenu(m, runeKey('j'))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := updateMenu(NewMenuModel(nil, core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = updateMenu(NewMenuModel(nil, core.DefaultConfig()), runeKey('q'))
	if !m.result().Quit || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestMenuResize(t *testing.T) {
	m := updateMenu(NewMenuModel(nil, core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestScoreboard(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{30, 90, 60} {
		store.SaveScore(storage.ScoreEntry{ModeID: snake.ModeClassic, Score: score, Length: 5, Outcome: "self"})
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.modes[0].ID != snake.ModeClassic {
		t.Fatalf("first mode = %q, expected classic", m.modes[0].ID)
	}
	if len(m.scores) != 3 || m.scores[0].Score != 90 {
		t.Errorf("scores = %+v, expected 3 entries led by 90", m.scores)
	}
	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Classic") {
		t.Error("scoreboard title missing")
	}
	if !strings.Contains(view, "Best 90  Games 3  Average 60.0") {
		t.Errorf("scoreboard summary missing:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.modes[m.modeCursor].ID == snake.ModeClassic || len(m.scores) != 0 {
		t.Errorf("tab should switch to an empty mode, got %q with %d scores", m.modes[m.modeCursor].ID, len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty mode should show a placeholder")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

// brokenHistory fails every read.
type brokenHistory struct{}

func (brokenHistory) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("disk gone")
}

func (brokenHistory) GetModeStats(string) (*storage.ModeStats, error) {
	return nil, errors.New("disk gone")
}

func TestScoreboardModeCycling(t *testing.T) {
	m := NewScoreboardModel(brokenHistory{}, 60, 20)
	last := len(m.modes) - 1

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.modeCursor != last {
		t.Errorf("shift+tab from the first mode: cursor = %d, expected %d", m.modeCursor, last)
	}

	next, _ = m.Update(runeKey('l'))
	m = next.(ScoreboardModel)
	if m.modeCursor != 0 {
		t.Errorf("next from the last mode: cursor = %d, expected 0", m.modeCursor)
	}

	if len(m.scores) != 0 || m.stats != nil {
		t.Error("store errors should leave the mode empty")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("narrow view should show the placeholder")
	}
}

func TestOutcomeLabel(t *testing.T) {
	tests := map[string]string{
		"out_of_bounds": "edge",
		"board_full":    "board full",
		"self":          "self",
		"":              "-",
	}
	for in, expected := range tests {
		if got := outcomeLabel(in); got != expected {
			t.Errorf("outcomeLabel(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "snake", core.ColorDefault)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	for _, want := range []string{"ab", "cd", "snake"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abc", 9); got != "   abc" {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() should not truncate, got %q", got)
	}
}
