package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// MazeService manages stored mazes and solves them.
type MazeService interface {
	// Create stores a caller-supplied layout.
	Create(ctx context.Context, ownerID uuid.UUID, layout maze.Layout) (*dmn.MazeRecord, error)

	// Generate stores a random layout of width x height rooms.
	Generate(ctx context.Context, ownerID uuid.UUID, width, height int, seed int64) (*dmn.MazeRecord, error)

	// ByID returns a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// ByOwner lists the mazes of a user.
	ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.MazeRecord, error)

	// Solve searches a stored maze for a path.
	Solve(ctx context.Context, id uuid.UUID) (*dmn.Solution, error)

	// Ranking lists solved mazes by explored cells, most first.
	Ranking(ctx context.Context, limit int64) ([]dmn.RankedMaze, error)
}
