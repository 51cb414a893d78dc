package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// Maze origins.
const (
	SourceUser   = "user"
	SourceWilson = "wilson"
)

// MazeRecord is a stored maze layout.
type MazeRecord struct {
	ID        uuid.UUID   `bson:"_id"`
	OwnerID   uuid.UUID   `bson:"ownerId"`
	Source    string      `bson:"source"`
	Seed      int64       `bson:"seed,omitempty"`
	Layout    maze.Layout `bson:"layout"`
	CreatedAt time.Time   `bson:"createdAt"`
}

// MazeRecordConfig holds parameters for creating a MazeRecord.
type MazeRecordConfig struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Source  string
	Seed    int64
	Layout  maze.Layout
}

// NewMazeRecord validates the layout by building it and returns the record.
func NewMazeRecord(config MazeRecordConfig) (*MazeRecord, error) {
	if _, err := config.Layout.Build(); err != nil {
		return nil, err
	}
	return &MazeRecord{
		ID:        config.ID,
		OwnerID:   config.OwnerID,
		Source:    config.Source,
		Seed:      config.Seed,
		Layout:    config.Layout,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Solution is the outcome of searching a stored maze.
type Solution struct {
	MazeID   uuid.UUID           `json:"maze_id"`
	Found    bool                `json:"found"`
	Path     []maze.CellPosition `json:"path"`
	Explored int                 `json:"explored"`
	Rendered string              `json:"rendered"`
	SolvedAt time.Time           `json:"solved_at"`
}

// Solve runs the path search over a fresh copy of the record's layout.
func (r *MazeRecord) Solve(find func(*maze.Maze) (bool, error)) (*Solution, error) {
	m, err := r.Layout.Build()
	if err != nil {
		return nil, err
	}
	found, err := find(m)
	if err != nil {
		return nil, err
	}
	return &Solution{
		MazeID:   r.ID,
		Found:    found,
		Path:     m.Path(),
		Explored: m.Explored(),
		Rendered: m.String(),
		SolvedAt: time.Now().UTC(),
	}, nil
}

// RankedMaze is a maze ID with the number of dead-end cells its search explored.
type RankedMaze struct {
	MazeID   uuid.UUID `json:"maze_id"`
	Explored int       `json:"explored"`
}
