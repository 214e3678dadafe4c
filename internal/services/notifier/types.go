package notifier

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetChallengeCompletedMessageInput contains parameters for a challenge completion message
type GetChallengeCompletedMessageInput struct {
	// UserName is the display name of the user credited with the completion
	UserName string

	// ChallengeTitle is the title of the completed challenge
	ChallengeTitle string

	// XPReward is the experience awarded for the completion
	XPReward int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetChallengeCompletedMessageOutput contains the result of getting a challenge completion message
type GetChallengeCompletedMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetLevelUpMessageInput contains parameters for a level-up message
type GetLevelUpMessageInput struct {
	// UserName is the display name of the user who leveled up
	UserName string

	// NewLevel is the level the user just reached
	NewLevel int

	// LevelName is the display name of the new level
	LevelName string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetLevelUpMessageOutput contains the result of getting a level-up message
type GetLevelUpMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetDuelInviteMessageInput contains parameters for a duel invitation message
type GetDuelInviteMessageInput struct {
	// ChallengerName is the display name of the challenger
	ChallengerName string

	// TargetName is the display name of the challenged user
	TargetName string

	// Description is the duel's description
	Description string
}

// GetDuelInviteMessageOutput contains the result of getting a duel invitation message
type GetDuelInviteMessageOutput struct {
	// Message is the generated message
	Message string
}

// ServiceConfig contains configuration for the notifier service
type ServiceConfig struct {
}
