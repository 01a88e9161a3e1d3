package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderBoard(t *testing.T) {
	e := newTestEngine(t, DefaultSettings())
	moveFood(t, e, Point{0, 0})
	e.board.set(Point{19, 39}, CellWall)
	e.publish()

	w, h := MinScreenSize(20, 40)
	screen := core.NewScreen(w, h)
	Render(e.CurrentSnapshot(), screen, HUD{Title: "Classic", HighScore: 120})

	if !strings.HasPrefix(screen.Row(0), " Classic  Score: 0  Length: 3  High: 120") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
	if screen.Get(0, 1) != '┌' || screen.Get(w-1, h-1) != '┘' {
		t.Error("board frame missing")
	}

	// Board cell (r, c) lands at screen (c+1, r+2)
	tests := []struct {
		x, y  int
		glyph rune
		color core.Color
	}{
		{21, 12, GlyphHead, core.ColorBrightGreen},
		{20, 12, GlyphBody, core.ColorGreen},
		{19, 12, GlyphBody, core.ColorGreen},
		{1, 2, GlyphFood, core.ColorRed},
		{40, 21, GlyphWall, core.ColorGray},
		{18, 12, ' ', core.ColorDefault},
	}
	for _, tc := range tests {
		c := screen.GetCell(tc.x, tc.y)
		if c.Rune != tc.glyph || c.Color != tc.color {
			t.Errorf("cell (%d, %d) = %q/%d, expected %q/%d", tc.x, tc.y, c.Rune, c.Color, tc.glyph, tc.color)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name     string
		gameOver bool
		hud      HUD
		expected string
	}{
		{"ready", false, HUD{Ready: true}, "Press any key to start"},
		{"game over", true, HUD{}, "Hit the edge - Score: 0"},
		{"new high score", true, HUD{NewHigh: true}, "NEW HIGH SCORE!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, DefaultSettings())
			if tc.gameOver {
				moveFood(t, e, Point{0, 0})
				for e.Tick() {
				}
			}
			screen := core.NewScreen(MinScreenSize(20, 40))
			Render(e.CurrentSnapshot(), screen, tc.hud)

			if !strings.Contains(screen.String(), tc.expected) {
				t.Errorf("screen missing %q:\n%s", tc.expected, screen.String())
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	e := newTestEngine(t, DefaultSettings())
	screen := core.NewScreen(30, 12)
	Render(e.CurrentSnapshot(), screen, HUD{})

	out := screen.String()
	if !strings.Contains(out, "Window too small") {
		t.Errorf("expected too-small overlay:\n%s", out)
	}
	if strings.ContainsRune(out, GlyphHead) {
		t.Error("board should not be drawn on a small screen")
	}
}

func TestRenderNilSnapshot(t *testing.T) {
	screen := core.NewScreen(10, 3)
	screen.Set(0, 0, 'x')
	Render(nil, screen, HUD{})

	if strings.TrimSpace(screen.String()) != "" {
		t.Error("nil snapshot should leave a blank screen")
	}
}
