package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the board.
const (
	GlyphHead = 'O'
	GlyphBody = 'o'
	GlyphFood = '*'
	GlyphWall = '#'
)

// hudHeight is the number of screen rows above the board frame.
const hudHeight = 1

// HUD carries the presentation state that lives outside the engine.
type HUD struct {
	Title     string // Mode title shown at the left of the status line
	HighScore int
	Ready     bool // Waiting for the first key press
	NewHigh   bool // The finished game beat the previous best
}

// MinScreenSize returns the smallest screen that fits a rows x cols board.
func MinScreenSize(rows, cols int) (w, h int) {
	return cols + 2, rows + 2 + hudHeight
}

// Render draws snap onto dst. The screen is cleared first.
func Render(snap *Snapshot, dst *core.Screen, hud HUD) {
	dst.Clear()
	if snap == nil {
		return
	}

	renderHUD(snap, dst, hud)

	minW, minH := MinScreenSize(snap.Rows(), snap.Cols())
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
		return
	}

	frame := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).Centered(minW, minH-hudHeight)
	dst.DrawBox(frame, core.ColorGray)
	renderBoard(snap, dst, frame.X+1, frame.Y+1)

	switch {
	case hud.Ready:
		renderOverlay(dst, "Press any key to start", "Arrows/WASD/hjkl to steer")
	case snap.GameOver():
		line := fmt.Sprintf("%s - Score: %d", outcomeText(snap.Outcome()), snap.Score())
		if hud.NewHigh {
			line = "NEW HIGH SCORE! " + line
		}
		renderOverlay(dst, line, "R replay  B menu  Q quit")
	}
}

// renderHUD draws the top status bar.
func renderHUD(snap *Snapshot, dst *core.Screen, hud HUD) {
	title := hud.Title
	if title == "" {
		title = "Snake"
	}
	high := max(hud.HighScore, snap.Score())
	line := fmt.Sprintf(" %s  Score: %d  Length: %d  High: %d", title, snap.Score(), snap.SnakeLen(), high)
	dst.DrawText(0, 0, line, core.ColorYellow)
}

// renderBoard draws every cell with the board's top-left at (ox, oy).
func renderBoard(snap *Snapshot, dst *core.Screen, ox, oy int) {
	head := snap.Head()
	hasHead := snap.SnakeLen() > 0
	for r := 0; r < snap.Rows(); r++ {
		for c := 0; c < snap.Cols(); c++ {
			x, y := ox+c, oy+r
			switch snap.Cell(r, c) {
			case CellSnake:
				if hasHead && head == (Point{Row: r, Col: c}) {
					dst.SetColored(x, y, GlyphHead, core.ColorBrightGreen)
				} else {
					dst.SetColored(x, y, GlyphBody, core.ColorGreen)
				}
			case CellFood:
				dst.SetColored(x, y, GlyphFood, core.ColorRed)
			case CellWall:
				dst.SetColored(x, y, GlyphWall, core.ColorGray)
			}
		}
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

func outcomeText(o Outcome) string {
	switch o {
	case OutcomeOutOfBounds:
		return "Hit the edge"
	case OutcomeWall:
		return "Hit a wall"
	case OutcomeSelf:
		return "Bit yourself"
	case OutcomeBoardFull:
		return "Board full"
	default:
		return "Game over"
	}
}
