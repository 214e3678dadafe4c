package challenge

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fiestalog/fiesta/internal/services/challenge Service,Notifier

// Service defines the interface for the challenge lifecycle: adaptive
// generation, baseline capture for duels and group challenges, and
// subscription-driven progress tracking.
type Service interface {
	// GenerateWeeklyChallenges synthesizes this week's personal
	// challenges from the user's current stats
	GenerateWeeklyChallenges(ctx context.Context, input *GenerateWeeklyChallengesInput) (*GenerateWeeklyChallengesOutput, error)

	// CreateFriendDuel creates a pending duel with frozen baselines
	CreateFriendDuel(ctx context.Context, input *CreateFriendDuelInput) (*CreateFriendDuelOutput, error)

	// AcceptFriendDuel activates a pending duel
	AcceptFriendDuel(ctx context.Context, input *AcceptFriendDuelInput) (*AcceptFriendDuelOutput, error)

	// CreateGroupChallenge creates a collective challenge with a frozen
	// member list
	CreateGroupChallenge(ctx context.Context, input *CreateGroupChallengeInput) (*CreateGroupChallengeOutput, error)

	// HandleSnapshotChange re-evaluates every challenge referencing a
	// user after their snapshot changed; duplicate deliveries are no-ops
	HandleSnapshotChange(ctx context.Context, input *HandleSnapshotChangeInput) (*HandleSnapshotChangeOutput, error)

	// ExpireChallenges sweeps a user's challenges past their deadline
	ExpireChallenges(ctx context.Context, input *ExpireChallengesInput) (*ExpireChallengesOutput, error)

	// ListChallenges retrieves a user's challenges
	ListChallenges(ctx context.Context, input *ListChallengesInput) (*ListChallengesOutput, error)
}

// Notifier receives challenge announcements. Delivery is an external
// concern; failures are logged and never fail the operation.
type Notifier interface {
	// ChallengeCompleted announces a completed challenge
	ChallengeCompleted(ctx context.Context, notification *CompletedNotification) error

	// DuelInvited announces a new pending duel to the challenged user
	DuelInvited(ctx context.Context, invitation *DuelInvitation) error
}
