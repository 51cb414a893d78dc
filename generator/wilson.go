/*
Package generator creates random maze layouts with Wilson's algorithm.

Wilson's algorithm produces a uniform spanning tree over a width x height
lattice of rooms: loop-erased random walks are grown from unvisited rooms until
they hit the tree. The result is a perfect maze, so exactly one route joins any
two rooms.

Rooms are then laid out on a block grid of (2*height+1) x (2*width+1) cells,
where every room and every opened passage between two rooms is an open cell
and everything else is a wall. The start is the top-left room and the exit is
the bottom-right room.
*/
package generator

import (
	"errors"
	"math/rand"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

const (
	maxMazeDimension = 20
)

var (
	ErrInvalidDimensions = errors.New("generator: invalid maze dimensions")
)

// room holds the four walls of a lattice room.
type room struct {
	NorthWall bool
	SouthWall bool
	EastWall  bool
	WestWall  bool
}

// move is a step from one room to an adjacent one.
type move struct {
	From      maze.CellPosition
	To        maze.CellPosition
	Direction string
}

var directions = map[string]maze.CellPosition{
	"North": {Row: -1, Col: 0},
	"South": {Row: 1, Col: 0},
	"East":  {Row: 0, Col: 1},
	"West":  {Row: 0, Col: -1},
}

// directionOrder fixes iteration order so a seed always yields the same maze.
var directionOrder = []string{"North", "East", "South", "West"}

// Wilson generates mazes from a seeded random source.
// It is not safe for concurrent use.
type Wilson struct {
	rng    *rand.Rand
	width  int
	height int
	grid   [][]room
}

// New returns a generator seeded with seed.
func New(seed int64) *Wilson {
	return &Wilson{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns the block-grid layout of a new width x height room maze.
func (w *Wilson) Generate(width, height int) (maze.Layout, error) {
	if min(width, height) <= 0 || max(width, height) > maxMazeDimension {
		return maze.Layout{}, ErrInvalidDimensions
	}

	w.width, w.height = width, height
	w.grid = make([][]room, height)
	for i := range w.grid {
		w.grid[i] = make([]room, width)
		for j := range w.grid[i] {
			w.grid[i][j] = room{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
		}
	}
	w.generateMaze()
	return w.layout(), nil
}

// randomCellPosition picks a random room.
func (w *Wilson) randomCellPosition() maze.CellPosition {
	return maze.CellPosition{Row: w.rng.Intn(w.height), Col: w.rng.Intn(w.width)}
}

// randomUnvisitedCellPosition picks a random room that is not yet in the tree.
func (w *Wilson) randomUnvisitedCellPosition(visited map[maze.CellPosition]struct{}) maze.CellPosition {
	for {
		pos := w.randomCellPosition()
		if _, included := visited[pos]; !included {
			return pos
		}
	}
}

// neighbors lists the in-bounds moves out of pos.
func (w *Wilson) neighbors(pos maze.CellPosition) []move {
	var result []move
	for _, dir := range directionOrder {
		neighbor := pos.Add(directions[dir])
		if neighbor.Row >= 0 && neighbor.Row < w.height && neighbor.Col >= 0 && neighbor.Col < w.width {
			result = append(result, move{From: pos, To: neighbor, Direction: dir})
		}
	}
	return result
}

// openWall removes the wall between the two rooms of m.
func (w *Wilson) openWall(m move) {
	from, to := &w.grid[m.From.Row][m.From.Col], &w.grid[m.To.Row][m.To.Col]
	switch m.Direction {
	case "North":
		from.NorthWall, to.SouthWall = false, false
	case "South":
		from.SouthWall, to.NorthWall = false, false
	case "East":
		from.EastWall, to.WestWall = false, false
	case "West":
		from.WestWall, to.EastWall = false, false
	}
}

// randomWalk walks from a random unvisited room until it reaches the tree.
// Revisiting a room overwrites its exit move, which erases the loop.
func (w *Wilson) randomWalk(visited map[maze.CellPosition]struct{}) (maze.CellPosition, map[maze.CellPosition]move) {
	start := w.randomUnvisitedCellPosition(visited)
	visits := make(map[maze.CellPosition]move)
	cell := start

	for {
		neighbors := w.neighbors(cell)
		next := neighbors[w.rng.Intn(len(neighbors))]
		visits[cell] = next
		if _, included := visited[next.To]; included {
			break
		}
		cell = next.To
	}

	return start, visits
}

// generateMaze carves the spanning tree.
func (w *Wilson) generateMaze() {
	visited := make(map[maze.CellPosition]struct{})
	visited[w.randomCellPosition()] = struct{}{}

	for len(visited) < w.width*w.height {
		start, visits := w.randomWalk(visited)
		// Follow the loop-erased walk from its start instead of ranging over
		// the map, which would also open walls of erased loops.
		for cell := start; ; {
			if _, included := visited[cell]; included {
				break
			}
			m := visits[cell]
			w.openWall(m)
			visited[cell] = struct{}{}
			cell = m.To
		}
	}
}

// layout converts the room lattice to a block grid.
func (w *Wilson) layout() maze.Layout {
	rows, cols := 2*w.height+1, 2*w.width+1
	open := make([][]bool, rows)
	for i := range open {
		open[i] = make([]bool, cols)
	}
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			br, bc := 2*r+1, 2*c+1
			open[br][bc] = true
			if !w.grid[r][c].EastWall {
				open[br][bc+1] = true
			}
			if !w.grid[r][c].SouthWall {
				open[br+1][bc] = true
			}
		}
	}

	l := maze.Layout{
		Rows:  rows,
		Cols:  cols,
		Start: maze.CellPosition{Row: 1, Col: 1},
		Exit:  maze.CellPosition{Row: rows - 2, Col: cols - 2},
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !open[r][c] {
				l.Walls = append(l.Walls, maze.CellPosition{Row: r, Col: c})
			}
		}
	}
	return l
}
