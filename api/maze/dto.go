// Package mazeapi exposes maze storage and solving over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// PositionDTO is a cell coordinate.
type PositionDTO struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

func (p PositionDTO) toCell() maze.CellPosition {
	return maze.CellPosition{Row: *p.Row, Col: *p.Col}
}

// CreateMazeRequest describes a layout to store. Bounds keep rows*cols
// within maze.MaxCells.
type CreateMazeRequest struct {
	Rows  int           `json:"rows" binding:"required,min=1,max=1024"`
	Cols  int           `json:"cols" binding:"required,min=1,max=1024"`
	Start PositionDTO   `json:"start" binding:"required"`
	Exit  PositionDTO   `json:"exit" binding:"required"`
	Walls []PositionDTO `json:"walls" binding:"max=1048576,dive"`
}

func (r *CreateMazeRequest) layout() maze.Layout {
	l := maze.Layout{
		Rows:  r.Rows,
		Cols:  r.Cols,
		Start: r.Start.toCell(),
		Exit:  r.Exit.toCell(),
		Walls: make([]maze.CellPosition, 0, len(r.Walls)),
	}
	for _, w := range r.Walls {
		l.Walls = append(l.Walls, w.toCell())
	}
	return l
}

// GenerateMazeRequest asks for a random Wilson maze of width x height rooms.
type GenerateMazeRequest struct {
	Width  int    `json:"width" binding:"required,min=1"`
	Height int    `json:"height" binding:"required,min=1"`
	Seed   *int64 `json:"seed"`
}

// MazeResponse is a stored maze.
type MazeResponse struct {
	ID        string              `json:"id"`
	OwnerID   string              `json:"owner_id"`
	Source    string              `json:"source"`
	Seed      int64               `json:"seed,omitempty"`
	Rows      int                 `json:"rows"`
	Cols      int                 `json:"cols"`
	Start     maze.CellPosition   `json:"start"`
	Exit      maze.CellPosition   `json:"exit"`
	Walls     []maze.CellPosition `json:"walls"`
	Rendered  string              `json:"rendered"`
	CreatedAt time.Time           `json:"created_at"`
}

func newMazeResponse(r *dmn.MazeRecord) *MazeResponse {
	resp := &MazeResponse{
		ID:        r.ID.String(),
		OwnerID:   r.OwnerID.String(),
		Source:    r.Source,
		Seed:      r.Seed,
		Rows:      r.Layout.Rows,
		Cols:      r.Layout.Cols,
		Start:     r.Layout.Start,
		Exit:      r.Layout.Exit,
		Walls:     r.Layout.Walls,
		CreatedAt: r.CreatedAt,
	}
	if m, err := r.Layout.Build(); err == nil {
		resp.Rendered = m.String()
	}
	return resp
}

// RankingResponse lists solved mazes by search effort.
type RankingResponse struct {
	Mazes []dmn.RankedMaze `json:"mazes"`
}
