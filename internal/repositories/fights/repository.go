// Package fights stores the records of concluded fights
package fights

import (
	"context"

	"github.com/KirkDiggler/skirmish/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockfights -source=repository.go

// Repository defines the interface for fight record storage
type Repository interface {
	// Create stores a record. Storing an ID twice is an already exists error.
	Create(ctx context.Context, record *entities.FightRecord) error

	// Get retrieves a record by fight ID
	Get(ctx context.Context, id string) (*entities.FightRecord, error)

	// ListRecent returns up to limit records, most recently ended first
	ListRecent(ctx context.Context, limit int) ([]*entities.FightRecord, error)

	// Delete removes a record
	Delete(ctx context.Context, id string) error
}
