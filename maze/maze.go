/*
Package maze models a rectangular grid of walls and open cells with a start
and an exit, and searches it for a path.

The search is a depth-first backtracking walk driven by an explicit stack.
Moves are tried in a fixed order (up, right, down, left), so for a given wall
layout the outcome and the recorded path are always the same. Visited state
lives in the grid itself: a cell becomes Path when the search steps off it and
Tried when it is proven to be a dead end.

The package also includes a text loader (Parse, Load) and an ASCII renderer
(String).
*/
package maze

import (
	"context"
	"fmt"
	"strings"
)

// Maze owns a grid together with its start and exit positions and runs the
// path search over it. A Maze is not safe for concurrent use.
type Maze struct {
	grid     *Grid
	start    *CellPosition
	exit     *CellPosition
	solution []CellPosition
}

// New returns a rows x cols maze with every cell Empty and no start or exit.
func New(rows, cols int) (*Maze, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Maze{grid: grid}, nil
}

// Rows returns the number of rows in the maze.
func (m *Maze) Rows() int { return m.grid.Rows() }

// Cols returns the number of columns in the maze.
func (m *Maze) Cols() int { return m.grid.Cols() }

// Marker returns the current marker of the cell at (row, col).
func (m *Maze) Marker(row, col int) (Marker, error) {
	return m.grid.Get(row, col)
}

// SetWall fills the cell at (row, col) with a wall. Walls may be placed on
// the start or exit cell; such a maze has no path.
func (m *Maze) SetWall(row, col int) error {
	return m.grid.Set(row, col, Wall)
}

// SetStart sets the starting cell.
func (m *Maze) SetStart(row, col int) error {
	if !m.grid.InBounds(row, col) {
		return m.grid.outOfBounds(row, col)
	}
	m.start = &CellPosition{Row: row, Col: col}
	return nil
}

// SetExit sets the exit cell.
func (m *Maze) SetExit(row, col int) error {
	if !m.grid.InBounds(row, col) {
		return m.grid.outOfBounds(row, col)
	}
	m.exit = &CellPosition{Row: row, Col: col}
	return nil
}

// Start returns the starting cell and whether it has been set.
func (m *Maze) Start() (CellPosition, bool) {
	if m.start == nil {
		return CellPosition{}, false
	}
	return *m.start, true
}

// Exit returns the exit cell and whether it has been set.
func (m *Maze) Exit() (CellPosition, bool) {
	if m.exit == nil {
		return CellPosition{}, false
	}
	return *m.exit, true
}

// FindPath searches for a path from start to exit and reports whether one
// exists. On success every cell of the path, both endpoints included, is
// marked Path. On failure the grid keeps the Tried markers of the exhausted
// search.
//
// Markers left by an earlier search are cleared first, so calling FindPath
// twice is the same as calling Reset and then FindPath.
func (m *Maze) FindPath() bool {
	found, _ := m.FindPathContext(context.Background())
	return found
}

// FindPathContext is FindPath with cancellation. The context is checked once
// per step; when it is done the search stops, the grid keeps its partial
// markers and an error wrapping ErrCancelled is returned.
func (m *Maze) FindPathContext(ctx context.Context) (bool, error) {
	m.Reset()
	if m.start == nil || m.exit == nil {
		return false, nil
	}
	if m.grid.at(*m.start) == Wall || m.grid.at(*m.exit) == Wall {
		return false, nil
	}

	stack := newFrontier(m.Rows() * m.Cols())
	stack.push(*m.start)
	for {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		current, ok := stack.peek()
		if !ok {
			return false, nil
		}

		if current == *m.exit {
			m.grid.put(current, Path)
			m.solution = stack.snapshot()
			return true, nil
		}

		if next, ok := m.nextMove(current); ok {
			// Mark before pushing so the neighbor never steps back into current.
			m.grid.put(current, Path)
			stack.push(next)
			continue
		}

		m.grid.put(current, Tried)
		stack.pop()
		if stack.len() == 0 {
			return false, nil
		}
	}
}

// nextMove returns the first open neighbor of p in search order.
func (m *Maze) nextMove(p CellPosition) (CellPosition, bool) {
	for _, delta := range Directions {
		n := p.Add(delta)
		if m.validMove(n) {
			return n, true
		}
	}
	return CellPosition{}, false
}

// validMove reports whether p is in bounds and still Empty.
func (m *Maze) validMove(p CellPosition) bool {
	return m.grid.InBounds(p.Row, p.Col) && m.grid.at(p) == Empty
}

// Path returns the start-to-exit path recorded by the last successful
// search, or nil if there is none.
func (m *Maze) Path() []CellPosition {
	if m.solution == nil {
		return nil
	}
	out := make([]CellPosition, len(m.solution))
	copy(out, m.solution)
	return out
}

// Explored returns the number of cells currently marked Tried.
func (m *Maze) Explored() int {
	n := 0
	for _, c := range m.grid.cells {
		if c == Tried {
			n++
		}
	}
	return n
}

// Reset turns every Path and Tried cell back to Empty. Walls, start and exit
// are left untouched.
func (m *Maze) Reset() {
	for i, c := range m.grid.cells {
		if c == Path || c == Tried {
			m.grid.cells[i] = Empty
		}
	}
	m.solution = nil
}

// String renders the maze one glyph per cell, cells separated by a space and
// rows by a newline.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.Rows() * (2*m.Cols() + 1))
	for row := 0; row < m.Rows(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < m.Cols(); col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(m.grid.at(CellPosition{Row: row, Col: col}).Glyph())
		}
	}
	return sb.String()
}
