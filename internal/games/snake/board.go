package snake

// Cell is the content of one board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSnake
	CellFood
	CellWall
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellFood:
		return "food"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}

// Point is a board coordinate.
type Point struct {
	Row, Col int
}

// Step returns the neighbouring point one cell away in direction d.
func (p Point) Step(d Direction) Point {
	dr, dc := d.Delta()
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// Board is a fixed-size grid of cells stored row-major.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// newBoard allocates an all-empty board.
func newBoard(rows, cols int) Board {
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the board height.
func (b Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b Board) Cols() int {
	return b.cols
}

// InBounds reports whether p lies on the board.
func (b Board) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

// At returns the cell at p. Coordinates off the board read as CellWall.
func (b Board) At(p Point) Cell {
	if !b.InBounds(p) {
		return CellWall
	}
	return b.cells[p.Row*b.cols+p.Col]
}

func (b *Board) set(p Point, c Cell) {
	b.cells[p.Row*b.cols+p.Col] = c
}

// clone returns a deep copy that shares no storage with b.
func (b Board) clone() Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cols: b.cols, cells: cells}
}

// emptyCells collects every empty coordinate in row-major order.
func (b Board) emptyCells() []Point {
	var out []Point
	for i, v := range b.cells {
		if v == CellEmpty {
			out = append(out, Point{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return out
}

func (b Board) equal(o Board) bool {
	if b.rows != o.rows || b.cols != o.cols || len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
