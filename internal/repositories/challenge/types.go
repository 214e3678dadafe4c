package challenge

import "github.com/fiestalog/fiesta/internal/models"

// SaveChallengeInput contains parameters for persisting a challenge
type SaveChallengeInput struct {
	Challenge *models.Challenge
}

// GetChallengeInput contains parameters for retrieving a challenge
type GetChallengeInput struct {
	ChallengeID string
}

// ListChallengesForUserInput contains parameters for listing a user's challenges
type ListChallengesForUserInput struct {
	UserID string
}

// ListChallengesForGroupInput contains parameters for listing a group's challenges
type ListChallengesForGroupInput struct {
	GroupID string
}

// ListChallengesOutput contains the challenges matching a listing
type ListChallengesOutput struct {
	Challenges []*models.Challenge
}

// CountCompletedChallengesInput contains parameters for counting a
// user's completed challenges
type CountCompletedChallengesInput struct {
	UserID string
}

// CountCompletedChallengesOutput contains the completed challenge count
type CountCompletedChallengesOutput struct {
	Count int
}
