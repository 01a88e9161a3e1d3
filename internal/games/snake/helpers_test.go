package snake

import (
	"fmt"
	"testing"
)

// newTestEngine returns a seeded engine initialized with s.
func newTestEngine(t *testing.T, s Settings) *Engine {
	t.Helper()
	e := NewEngine(WithSeed(1))
	if err := e.Initialize(s); err != nil {
		t.Fatalf("Initialize(%+v) error = %v", s, err)
	}
	return e
}

// moveFood relocates the food so a test controls what the snake meets.
func moveFood(t *testing.T, e *Engine, p Point) {
	t.Helper()
	if e.foodExists {
		e.board.set(e.food, CellEmpty)
	}
	if got := e.board.At(p); got != CellEmpty {
		t.Fatalf("cannot put food on %v: cell is %s", p, got)
	}
	e.food = p
	e.foodExists = true
	e.board.set(p, CellFood)
}

// snapshotError checks the board against the body and the food fields.
func snapshotError(s *Snapshot) error {
	body := make(map[Point]bool, s.SnakeLen())
	for _, p := range s.Snake() {
		if body[p] {
			return fmt.Errorf("seq %d: duplicate segment %v", s.Seq(), p)
		}
		body[p] = true
	}

	food := 0
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Cols(); c++ {
			p := Point{Row: r, Col: c}
			cell := s.Cell(r, c)
			if (cell == CellSnake) != body[p] {
				return fmt.Errorf("seq %d: cell %v is %s but in body = %v", s.Seq(), p, cell, body[p])
			}
			if cell == CellFood {
				food++
			}
		}
	}

	fp, ok := s.Food()
	switch {
	case ok && (food != 1 || s.Cell(fp.Row, fp.Col) != CellFood):
		return fmt.Errorf("seq %d: food at %v but board has %d food cells", s.Seq(), fp, food)
	case !ok && food != 0:
		return fmt.Errorf("seq %d: no food but board has %d food cells", s.Seq(), food)
	}
	return nil
}

func checkSnapshot(t *testing.T, s *Snapshot) {
	t.Helper()
	if err := snapshotError(s); err != nil {
		t.Fatal(err)
	}
}

// countCells returns how many cells of b hold c.
func countCells(b Board, c Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == c {
			n++
		}
	}
	return n
}

// pending peeks at the intake slot without consuming it.
func pending(in *Intake) Direction {
	return Direction(in.pending.Load())
}
