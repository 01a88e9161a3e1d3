package snake

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gammazero/deque"
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// ErrInvalidSettings is wrapped by every Settings validation failure.
var ErrInvalidSettings = errors.New("snake: invalid settings")

// MaxCells is the largest board, in cells, an engine accepts.
const MaxCells = config.MaxBoardCells

// Settings are the construction parameters for one game.
type Settings struct {
	Rows             int
	Cols             int
	StartingLength   int
	PointsPerFood    int
	InitialDirection Direction
	Walls            int // Random wall cells placed at initialization
}

// DefaultSettings returns the classic 20x40 board.
func DefaultSettings() Settings {
	return Settings{
		Rows:             20,
		Cols:             40,
		StartingLength:   3,
		PointsPerFood:    10,
		InitialDirection: DirRight,
	}
}

// Validate checks the construction preconditions.
func (s Settings) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidSettings, s.Rows, s.Cols)
	}
	if s.Rows > MaxCells/s.Cols {
		return fmt.Errorf("%w: %dx%d board exceeds %d cells", ErrInvalidSettings, s.Rows, s.Cols, MaxCells)
	}
	if s.StartingLength <= 0 {
		return fmt.Errorf("%w: starting length must be positive, got %d", ErrInvalidSettings, s.StartingLength)
	}
	if s.PointsPerFood < 0 {
		return fmt.Errorf("%w: points per food must not be negative, got %d", ErrInvalidSettings, s.PointsPerFood)
	}
	if !s.InitialDirection.Valid() {
		return fmt.Errorf("%w: initial direction %s is not a heading", ErrInvalidSettings, s.InitialDirection)
	}
	if s.Walls < 0 {
		return fmt.Errorf("%w: wall count must not be negative, got %d", ErrInvalidSettings, s.Walls)
	}

	// The body is laid out backwards from the center and must stay on the board.
	b := Board{rows: s.Rows, cols: s.Cols}
	fits := s.StartingLength <= max(s.Rows, s.Cols)
	if fits {
		dr, dc := s.InitialDirection.Delta()
		n := s.StartingLength - 1
		c := s.center()
		fits = b.InBounds(Point{Row: c.Row - dr*n, Col: c.Col - dc*n})
	}
	if !fits {
		return fmt.Errorf("%w: starting length %d does not fit a %dx%d board heading %s",
			ErrInvalidSettings, s.StartingLength, s.Rows, s.Cols, s.InitialDirection)
	}

	if free := s.Rows*s.Cols - s.StartingLength; s.Walls > 0 && s.Walls >= free {
		return fmt.Errorf("%w: %d walls leave no room for food (%d free cells)", ErrInvalidSettings, s.Walls, free)
	}
	return nil
}

func (s Settings) center() Point {
	return Point{Row: s.Rows / 2, Col: s.Cols / 2}
}

// Engine is the snake simulation.
//
// Board, body, score, direction, food and RNG are owned by whichever
// goroutine calls Initialize and Tick; those two must never run concurrently
// with each other. RequestDirection and CurrentSnapshot are safe from any
// goroutine at any time and never block.
type Engine struct {
	settings   Settings
	board      Board
	body       deque.Deque[Point] // Front is the head
	score      int
	direction  Direction
	food       Point
	foodExists bool
	growth     int
	gameOver   bool
	outcome    Outcome
	seq        uint64

	rng    *rand.Rand
	logger *log.Logger

	intake  Intake
	mailbox Mailbox
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSeed makes food and wall placement reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine that is inert until Initialize is called.
// Without WithSeed the RNG is seeded from the clock, so separately created
// engines are not correlated.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rng:      rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		logger:   log.New(io.Discard),
		gameOver: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	// Readers never observe a nil snapshot.
	e.publish()
	return e
}

// Initialize resets all mutable state for a new game and publishes the
// first snapshot.
func (e *Engine) Initialize(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	e.settings = s
	e.board = newBoard(s.Rows, s.Cols)
	e.body.Clear()
	e.score = 0
	e.growth = 0
	e.direction = s.InitialDirection
	e.foodExists = false
	e.food = Point{}
	e.gameOver = false
	e.outcome = OutcomeNone
	e.intake.take() // Drop requests aimed at the previous game

	seg := s.center()
	back := s.InitialDirection.Opposite()
	for range s.StartingLength {
		e.body.PushBack(seg)
		e.board.set(seg, CellSnake)
		seg = seg.Step(back)
	}

	e.placeWalls(s.Walls)
	e.placeFood()
	e.publish()

	e.logger.Debug("game initialized",
		"rows", s.Rows, "cols", s.Cols, "length", s.StartingLength,
		"direction", s.InitialDirection, "walls", s.Walls)
	return nil
}

// Settings returns the settings of the current game.
func (e *Engine) Settings() Settings {
	return e.settings
}

// RequestDirection records a direction change for the next tick.
// Reversals are not rejected here; Tick discards them.
func (e *Engine) RequestDirection(d Direction) {
	e.intake.Request(d)
}

// CurrentSnapshot returns the most recently published snapshot.
func (e *Engine) CurrentSnapshot() *Snapshot {
	return e.mailbox.Load()
}

// Published returns the number of snapshots published so far.
func (e *Engine) Published() uint64 {
	return e.mailbox.Published()
}

// Tick advances the game by one cell. It returns false once the game is over,
// and after that it does nothing.
func (e *Engine) Tick() bool {
	if e.gameOver {
		return false
	}

	if req := e.intake.take(); req != DirNone && req != e.direction.Opposite() {
		e.direction = req
	}

	next := e.body.Front().Step(e.direction)

	// The tail still counts as occupied even though it is about to move.
	switch {
	case !e.board.InBounds(next):
		return e.end(OutcomeOutOfBounds)
	case e.board.At(next) == CellWall:
		return e.end(OutcomeWall)
	case e.board.At(next) == CellSnake:
		return e.end(OutcomeSelf)
	}

	if e.foodExists && next == e.food {
		e.growth++
		e.score += e.settings.PointsPerFood
		e.foodExists = false
	}

	e.advance(next)

	if !e.foodExists {
		e.placeFood()
	}
	if !e.foodExists && e.growth == 0 {
		return e.end(OutcomeBoardFull)
	}

	e.publish()
	return true
}

// advance pushes the new head and drops the tail unless growth is pending.
func (e *Engine) advance(head Point) {
	e.body.PushFront(head)
	e.board.set(head, CellSnake)

	if e.growth > 0 {
		e.growth--
		return
	}
	tail := e.body.PopBack()
	e.board.set(tail, CellEmpty)
}

// end marks the game as over and publishes the final state.
func (e *Engine) end(outcome Outcome) bool {
	e.gameOver = true
	e.outcome = outcome
	e.publish()

	e.logger.Info("game over",
		"outcome", outcome, "score", e.score, "length", e.body.Len())
	return false
}

// placeFood puts food on a uniformly chosen empty cell.
func (e *Engine) placeFood() {
	empty := e.board.emptyCells()
	if len(empty) == 0 {
		e.foodExists = false
		e.logger.Debug("no empty cell for food", "length", e.body.Len())
		return
	}

	e.food = empty[e.rng.Intn(len(empty))]
	e.board.set(e.food, CellFood)
	e.foodExists = true
}

// placeWalls scatters n walls over empty cells, keeping the lane in front of
// the head clear so the first moves are always safe.
func (e *Engine) placeWalls(n int) {
	if n == 0 {
		return
	}

	lane := make(map[Point]bool)
	for p := e.body.Front().Step(e.direction); e.board.InBounds(p); p = p.Step(e.direction) {
		lane[p] = true
	}

	for range n {
		var candidates []Point
		for _, p := range e.board.emptyCells() {
			if !lane[p] {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			return
		}
		e.board.set(candidates[e.rng.Intn(len(candidates))], CellWall)
	}
}

// publish copies the engine state into a fresh snapshot and hands it to the
// mailbox.
func (e *Engine) publish() {
	e.seq++

	body := make([]Point, e.body.Len())
	for i := range body {
		body[i] = e.body.At(i)
	}

	e.mailbox.Publish(&Snapshot{
		seq:        e.seq,
		board:      e.board.clone(),
		score:      e.score,
		gameOver:   e.gameOver,
		outcome:    e.outcome,
		food:       e.food,
		foodExists: e.foodExists,
		snake:      body,
		direction:  e.direction,
		growth:     e.growth,
	})
}
