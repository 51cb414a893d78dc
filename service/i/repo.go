package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo defines persistence for maze layouts.
type MazeRepo interface {
	// Save inserts a maze record, replacing any record with the same ID.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID returns the record with the given ID or ErrMazeNotFound.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// ByOwner returns the records owned by a user, newest first.
	ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.MazeRecord, error)
}
