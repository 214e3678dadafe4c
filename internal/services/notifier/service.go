package notifier

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new notifier service
func NewService(config *ServiceConfig) (Service, error) {
	// Create a new random source with the current time as seed
	source := rand.NewSource(time.Now().UnixNano())

	return &service{
		rand: rand.New(source),
	}, nil
}

// GetChallengeCompletedMessage returns a message for a completed challenge
func (s *service) GetChallengeCompletedMessage(ctx context.Context, input *GetChallengeCompletedMessageInput) (*GetChallengeCompletedMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	templates := []string{
		"%s crushed it! \"%s\" is done — %d XP in the bank! 🎉",
		"Challenge complete! %s finished \"%s\" and walks away with %d XP.",
		"Ding ding ding! %s just wrapped up \"%s\" for %d XP!",
		"%s did the thing! \"%s\" complete, %d XP earned. Respect.",
		"Another one bites the dust: %s completed \"%s\" (+%d XP).",
	}

	selected := templates[s.rand.Intn(len(templates))]

	return &GetChallengeCompletedMessageOutput{
		Message: fmt.Sprintf(selected, input.UserName, input.ChallengeTitle, input.XPReward),
		Tone:    tone,
	}, nil
}

// GetLevelUpMessage returns a message for a level-up
func (s *service) GetLevelUpMessage(ctx context.Context, input *GetLevelUpMessageInput) (*GetLevelUpMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	templates := []string{
		"LEVEL UP! %s just hit level %d — welcome to %s! 🍻",
		"%s is moving up in the world: level %d, now known as %s.",
		"The grind pays off! %s reached level %d (%s).",
		"Somebody stop them! %s just leveled up to %d — %s.",
	}

	selected := templates[s.rand.Intn(len(templates))]

	return &GetLevelUpMessageOutput{
		Message: fmt.Sprintf(selected, input.UserName, input.NewLevel, input.LevelName),
		Tone:    tone,
	}, nil
}

// GetDuelInviteMessage returns a message for a duel invitation
func (s *service) GetDuelInviteMessage(ctx context.Context, input *GetDuelInviteMessageInput) (*GetDuelInviteMessageOutput, error) {
	templates := []string{
		"%s has challenged %s to a duel! %s. Do you accept?",
		"It's on! %s just threw down the gauntlet at %s: %s.",
		"A challenger appears! %s vs %s — %s. May the best partier win.",
	}

	selected := templates[s.rand.Intn(len(templates))]

	return &GetDuelInviteMessageOutput{
		Message: fmt.Sprintf(selected, input.ChallengerName, input.TargetName, input.Description),
	}, nil
}
