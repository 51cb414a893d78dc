package maze

import "fmt"

// MaxCells bounds rows*cols of a grid.
const MaxCells = 1 << 20

// Grid is a fixed rows x cols store of cell markers indexed from (0,0).
type Grid struct {
	rows  int
	cols  int
	cells []Marker
}

// NewGrid returns a grid with every cell Empty. Grids of more than MaxCells
// cells are rejected.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Marker, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the marker stored at (row, col).
func (g *Grid) Get(row, col int) (Marker, error) {
	if !g.InBounds(row, col) {
		return Empty, g.outOfBounds(row, col)
	}
	return g.cells[row*g.cols+col], nil
}

// Set stores marker at (row, col).
func (g *Grid) Set(row, col int, marker Marker) error {
	if !g.InBounds(row, col) {
		return g.outOfBounds(row, col)
	}
	g.cells[row*g.cols+col] = marker
	return nil
}

// at and put skip bounds checks; callers must have validated the position.
func (g *Grid) at(p CellPosition) Marker {
	return g.cells[p.Row*g.cols+p.Col]
}

func (g *Grid) put(p CellPosition, marker Marker) {
	g.cells[p.Row*g.cols+p.Col] = marker
}

func (g *Grid) outOfBounds(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) not in %dx%d grid", ErrIndexOutOfBounds, row, col, g.rows, g.cols)
}
