package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// SolutionCache stores solve results and serializes concurrent solves of the same maze.
type SolutionCache interface {
	// Get returns the cached solution, or (nil, nil) on a miss.
	Get(ctx context.Context, mazeID uuid.UUID) (*dmn.Solution, error)

	// Set caches a solution.
	Set(ctx context.Context, solution *dmn.Solution) error

	// Lock takes the solve lock of a maze. The returned func releases it.
	Lock(ctx context.Context, mazeID uuid.UUID) (func(), error)
}

// SortedSet keeps members ordered by score.
type SortedSet interface {
	// Add sets the score of member under key.
	Add(ctx context.Context, key string, score float64, member string) error

	// TopN returns up to n members with the highest scores, best first.
	TopN(ctx context.Context, key string, n int64) ([]ScoredMember, error)
}

// ScoredMember is a sorted set entry.
type ScoredMember struct {
	Member string
	Score  float64
}
