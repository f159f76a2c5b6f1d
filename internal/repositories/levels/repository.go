// Package levels persists level definitions: grid size, terrain and placed
// buildings.
package levels

//go:generate mockgen -destination=mock/mock_repository.go -package=levelsmock github.com/Esderin/Standard-of-Iron/internal/repositories/levels Repository

import (
	"context"
	"time"

	"github.com/Esderin/Standard-of-Iron/internal/buildings"
)

// Repository stores levels.
type Repository interface {
	// Save creates or replaces a level.
	// Returns errors.InvalidArgument when the level has no id or size.
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get returns errors.NotFound when the level does not exist.
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete returns errors.NotFound when the level does not exist.
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns the ids of every stored level in ascending order.
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// LevelData is the stored form of a level.
type LevelData struct {
	ID          string                `json:"id"`
	Width       int                   `json:"width"`
	Height      int                   `json:"height"`
	CellSize    float64               `json:"cell_size"`
	OffsetX     float64               `json:"offset_x"`
	OffsetZ     float64               `json:"offset_z"`
	TerrainRows []string              `json:"terrain_rows,omitempty"`
	Buildings   []buildings.Footprint `json:"buildings,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// SaveInput defines the request for saving a level
type SaveInput struct {
	Level *LevelData
}

// SaveOutput defines the response for saving a level
type SaveOutput struct{}

// GetInput defines the request for retrieving a level
type GetInput struct {
	LevelID string
}

// GetOutput defines the response for retrieving a level
type GetOutput struct {
	Level *LevelData
}

// DeleteInput defines the request for deleting a level
type DeleteInput struct {
	LevelID string
}

// DeleteOutput defines the response for deleting a level
type DeleteOutput struct{}

// ListInput defines the request for listing levels
type ListInput struct{}

// ListOutput defines the response for listing levels
type ListOutput struct {
	LevelIDs []string
}
