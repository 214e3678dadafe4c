package stats

import (
	"context"

	"github.com/fiestalog/fiesta/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fiestalog/fiesta/internal/repositories/stats Repository,Subscription

// Repository defines the interface for StatsSnapshot persistence. Two
// denormalized copies of the same logical snapshot exist: the one
// embedded in the user's profile record and the separately keyed public
// leaderboard record. Copies are replaced wholesale, never merged.
type Repository interface {
	// GetSnapshot retrieves a user's snapshot from one store
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.StatsSnapshot, error)

	// SaveSnapshot replaces a user's snapshot in one store
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// SubscribeSnapshotChanges opens a change feed for snapshot
	// publications. The caller must Close the subscription on every
	// exit path or handler deliveries leak indefinitely.
	SubscribeSnapshotChanges(ctx context.Context, input *SubscribeInput) (Subscription, error)
}

// Subscription is a live snapshot change feed. The feed may deliver
// duplicate notifications; consumers must be idempotent.
type Subscription interface {
	// Events returns the channel change notifications arrive on. The
	// channel closes when the subscription is closed.
	Events() <-chan *SnapshotChange

	// Close releases the subscription
	Close() error
}
