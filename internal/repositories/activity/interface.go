package activity

import (
	"context"

	"github.com/fiestalog/fiesta/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fiestalog/fiesta/internal/repositories/activity Repository

// Repository defines the interface for the append-only activity log.
// The engine only reads it; SaveEvent exists for the logging feature
// and for test fixtures.
type Repository interface {
	// SaveEvent appends an event to a user's log
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// GetEvent retrieves a single event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.ActivityEvent, error)

	// ListEvents retrieves a user's full log ordered by timestamp
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)
}
