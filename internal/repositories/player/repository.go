// Package player provides the interface for player snapshot persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/wuxing-api/internal/repositories/player Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/wuxing-api/internal/entities/wuxing"
)

// Record is a stored player snapshot
type Record struct {
	State     *wuxing.GameState `json:"state"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Repository defines the interface for player persistence. Snapshots are
// stored whole; there is no partial update.
type Repository interface {
	// Create stores the first snapshot of a player
	// Returns errors.InvalidArgument for a missing state or player ID
	// Returns errors.AlreadyExists if the player already has a record
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player's snapshot
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a player's snapshot
	// Returns errors.InvalidArgument for a missing state or player ID
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a player
	// Returns errors.NotFound if the player doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of every stored player, sorted
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	State *wuxing.GameState
}

// CreateOutput defines the output for creating a player
type CreateOutput struct {
	Record *Record
}

// GetInput defines the input for getting a player
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Record *Record
}

// UpdateInput defines the input for updating a player
type UpdateInput struct {
	State *wuxing.GameState
}

// UpdateOutput defines the output for updating a player
type UpdateOutput struct {
	Record *Record
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}

// ListInput defines the input for listing players
type ListInput struct{}

// ListOutput defines the output for listing players
type ListOutput struct {
	PlayerIDs []string
}

const (
	errStateNil      = "state cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)
