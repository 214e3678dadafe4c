package notifier

import "context"

// Service is the interface for the notifier service
type Service interface {
	// GetChallengeCompletedMessage returns a message for a completed challenge
	GetChallengeCompletedMessage(ctx context.Context, input *GetChallengeCompletedMessageInput) (*GetChallengeCompletedMessageOutput, error)

	// GetLevelUpMessage returns a message for a level-up
	GetLevelUpMessage(ctx context.Context, input *GetLevelUpMessageInput) (*GetLevelUpMessageOutput, error)

	// GetDuelInviteMessage returns a message for a duel invitation
	GetDuelInviteMessage(ctx context.Context, input *GetDuelInviteMessageInput) (*GetDuelInviteMessageOutput, error)
}
