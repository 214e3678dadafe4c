package models

import (
	"time"
)

// MostConsumedDrink identifies the drink type a user consumes the most,
// and the most frequent brand within that type.
type MostConsumedDrink struct {
	// Type is the most consumed drink type
	Type string

	// Brand is the most frequent brand for that type, if any
	Brand string

	// Quantity is the total number of units of that type
	Quantity int
}

// StatsSnapshot is the canonical per-user aggregate, recomputed wholesale
// from the activity log. It is always replaced as a unit, never merged
// field by field.
type StatsSnapshot struct {
	// UserID is the owner of the snapshot
	UserID string

	// TotalParties is the number of logged parties
	TotalParties int

	// TotalDrinks is the total number of drinks across all parties
	TotalDrinks int

	// TotalVolume is the total volume consumed, in centilitres
	TotalVolume float64

	// TotalBadges is the number of badges unlocked (supplied externally)
	TotalBadges int

	// TotalChallenges is the number of completed challenges
	TotalChallenges int

	// TotalQuizQuestions is the number of quiz questions answered
	TotalQuizQuestions int

	// TotalFights is the total fight count across all parties
	TotalFights int

	// TotalVomits is the total sickness count across all parties
	TotalVomits int

	// TotalRejections is the total rejection count across all parties
	TotalRejections int

	// UniqueLocations is the number of distinct party locations
	UniqueLocations int

	// DrinkTypes maps drink type to total units consumed
	DrinkTypes map[string]int

	// DrinkVolumes maps drink type to total volume in centilitres
	DrinkVolumes map[string]float64

	// PartyTypes maps venue category to party count
	PartyTypes map[string]int

	// MostConsumed is the user's most consumed drink
	MostConsumed MostConsumedDrink

	// TotalXP is the experience derived from the counts above
	TotalXP int

	// Level is derived from TotalXP
	Level int

	// LevelName is the display rank for Level
	LevelName string

	// XPToNextLevel is how much XP is missing for the next level
	XPToNextLevel int

	// ProgressToNextLevel is the progress through the current level, 0-100
	ProgressToNextLevel float64

	// UpdatedAt is when the snapshot was recomputed
	UpdatedAt time.Time
}

// FieldValue returns the snapshot value for a leaderboard category.
func (s *StatsSnapshot) FieldValue(category Category) int {
	if s == nil {
		return 0
	}

	switch category {
	case CategoryXP:
		return s.TotalXP
	case CategoryParties:
		return s.TotalParties
	case CategoryBadges:
		return s.TotalBadges
	case CategoryChallenges:
		return s.TotalChallenges
	case CategoryDrinks:
		return s.TotalDrinks
	case CategoryLocations:
		return s.UniqueLocations
	default:
		return s.Level
	}
}
