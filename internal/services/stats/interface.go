package stats

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fiestalog/fiesta/internal/services/stats Service,BadgeCounter

// Service defines the interface for stats aggregation
type Service interface {
	// RecomputeStats rebuilds a user's snapshot from their full
	// activity log and republishes it to every denormalized store
	RecomputeStats(ctx context.Context, input *RecomputeStatsInput) (*RecomputeStatsOutput, error)

	// GetStats reads a user's snapshot; a missing snapshot comes back
	// as level 1 with zero counts, never as an error
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
}

// BadgeCounter supplies the badge count for a user. Badges are owned by
// an external collaborator; the aggregator only reads the count.
type BadgeCounter interface {
	// CountBadges returns the number of badges a user has unlocked
	CountBadges(ctx context.Context, userID string) (int, error)
}
