package snake

// Outcome records why a game ended.
type Outcome string

const (
	OutcomeNone        Outcome = ""
	OutcomeOutOfBounds Outcome = "out_of_bounds"
	OutcomeWall        Outcome = "wall"
	OutcomeSelf        Outcome = "self"
	OutcomeBoardFull   Outcome = "board_full"
)

// Snapshot is an immutable copy of everything a renderer needs for one tick.
// It owns its board and body storage; nothing in it aliases engine state.
type Snapshot struct {
	seq        uint64
	board      Board
	score      int
	gameOver   bool
	outcome    Outcome
	food       Point
	foodExists bool
	snake      []Point // Head at index 0
	direction  Direction
	growth     int
}

// Seq is the publication number. It increases by one for every snapshot the
// engine publishes, including across re-initialization.
func (s *Snapshot) Seq() uint64 {
	return s.seq
}

// Rows returns the board height.
func (s *Snapshot) Rows() int {
	return s.board.rows
}

// Cols returns the board width.
func (s *Snapshot) Cols() int {
	return s.board.cols
}

// Score returns the score at this tick.
func (s *Snapshot) Score() int {
	return s.score
}

// GameOver reports whether the game had ended by this tick.
func (s *Snapshot) GameOver() bool {
	return s.gameOver
}

// Outcome returns why the game ended, or OutcomeNone while it is running.
func (s *Snapshot) Outcome() Outcome {
	return s.outcome
}

// Food returns the food position and whether food exists at all.
func (s *Snapshot) Food() (Point, bool) {
	return s.food, s.foodExists
}

// Snake returns a copy of the body, head first.
func (s *Snapshot) Snake() []Point {
	out := make([]Point, len(s.snake))
	copy(out, s.snake)
	return out
}

// SnakeLen returns the body length.
func (s *Snapshot) SnakeLen() int {
	return len(s.snake)
}

// Head returns the head position. An empty snapshot reports the zero point.
func (s *Snapshot) Head() Point {
	if len(s.snake) == 0 {
		return Point{}
	}
	return s.snake[0]
}

// Direction returns the heading the snake moved in on this tick.
func (s *Snapshot) Direction() Direction {
	return s.direction
}

// Growth returns the number of tail removals still to be skipped.
func (s *Snapshot) Growth() int {
	return s.growth
}

// Cell returns the cell at (row, col). Out-of-range lookups return CellWall.
func (s *Snapshot) Cell(row, col int) Cell {
	return s.board.At(Point{Row: row, Col: col})
}

// Equal reports whether two snapshots hold the same content.
func (s *Snapshot) Equal(o *Snapshot) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if s.seq != o.seq || s.score != o.score || s.gameOver != o.gameOver ||
		s.outcome != o.outcome || s.foodExists != o.foodExists || s.food != o.food ||
		s.direction != o.direction || s.growth != o.growth || len(s.snake) != len(o.snake) {
		return false
	}
	for i := range s.snake {
		if s.snake[i] != o.snake[i] {
			return false
		}
	}
	return s.board.equal(o.board)
}
