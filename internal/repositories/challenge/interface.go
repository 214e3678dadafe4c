package challenge

import (
	"context"

	"github.com/fiestalog/fiesta/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fiestalog/fiesta/internal/repositories/challenge Repository

// Repository defines the interface for challenge persistence
type Repository interface {
	// SaveChallenge persists a challenge and its participant indexes
	SaveChallenge(ctx context.Context, input *SaveChallengeInput) error

	// GetChallenge retrieves a challenge by ID
	GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error)

	// ListChallengesForUser retrieves every challenge a user participates in
	ListChallengesForUser(ctx context.Context, input *ListChallengesForUserInput) (*ListChallengesOutput, error)

	// ListChallengesForGroup retrieves every challenge owned by a group
	ListChallengesForGroup(ctx context.Context, input *ListChallengesForGroupInput) (*ListChallengesOutput, error)

	// CountCompletedChallenges counts the challenges a user has earned
	// credit for; feeds the XP recompute
	CountCompletedChallenges(ctx context.Context, input *CountCompletedChallengesInput) (*CountCompletedChallengesOutput, error)
}
