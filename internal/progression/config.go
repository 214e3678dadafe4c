package progression

import (
	"github.com/fiestalog/fiesta/internal/models"
)

// Default XP weights and formula constants, used when the corresponding
// Config field is left zero.
const (
	DefaultXPPerParty           = 50
	DefaultXPPerDrink           = 5
	DefaultXPPerBadge           = 100
	DefaultXPPerChallenge       = 25
	DefaultXPPerQuizAnswer      = 10
	DefaultLevelDivisor         = 100
	DefaultGroupMultiplier      = 1.2
	DefaultWeekendMultiplier    = 1.1
	DefaultTournamentMultiplier = 1.5
)

// ModeBonus computes the conditional XP bonus one party mode grants for
// an event. Bonuses are applied before the mode multiplier.
type ModeBonus func(cfg *Config, event *models.ActivityEvent) int

// ModeRule holds the multiplier and bonus strategy for one party mode.
// Adding a mode means adding a table entry, not a new branch.
type ModeRule struct {
	// Multiplier scales the event's full XP
	Multiplier float64

	// Bonus is the conditional flat bonus, may be nil
	Bonus ModeBonus
}

// Config holds every constant the calculator uses. It is immutable once
// passed to New; alternate configs make the math deterministic in tests.
type Config struct {
	// XPPerParty is the base XP for logging a party
	XPPerParty int

	// XPPerDrink is the XP per drink consumed
	XPPerDrink int

	// XPPerBadge is the XP per unlocked badge
	XPPerBadge int

	// XPPerChallenge is the XP per completed challenge
	XPPerChallenge int

	// XPPerQuizAnswer is the XP per answered quiz question
	XPPerQuizAnswer int

	// LevelDivisor controls how fast levels grow: level = floor(sqrt(xp/divisor)) + 1
	LevelDivisor int

	// GroupMultiplier applies when the activity happened in a group
	GroupMultiplier float64

	// WeekendMultiplier applies to weekend activity
	WeekendMultiplier float64

	// TournamentMultiplier applies during tournaments
	TournamentMultiplier float64

	// ModerationBonus is granted in moderation mode for a low drink count
	ModerationBonus int

	// ModerationMaxDrinks is the drink count at or under which the
	// moderation bonus applies
	ModerationMaxDrinks int

	// ExplorerBonus is granted in explorer mode when a location was logged
	ExplorerBonus int

	// CompanionBonus is granted in social mode per companion
	CompanionBonus int

	// EnduranceBonus is granted in party mode at or above EnduranceDrinks
	EnduranceBonus int

	// EnduranceDrinks is the drink count that counts as endurance
	EnduranceDrinks int

	// AspectBonus is granted in balanced mode per non-empty aspect among
	// drinks, location, companions and duration
	AspectBonus int

	// Modes overrides the built-in mode rule table when non-nil
	Modes map[models.PartyMode]ModeRule
}

func (c *Config) applyDefaults() {
	if c.XPPerParty == 0 {
		c.XPPerParty = DefaultXPPerParty
	}
	if c.XPPerDrink == 0 {
		c.XPPerDrink = DefaultXPPerDrink
	}
	if c.XPPerBadge == 0 {
		c.XPPerBadge = DefaultXPPerBadge
	}
	if c.XPPerChallenge == 0 {
		c.XPPerChallenge = DefaultXPPerChallenge
	}
	if c.XPPerQuizAnswer == 0 {
		c.XPPerQuizAnswer = DefaultXPPerQuizAnswer
	}
	if c.GroupMultiplier == 0 {
		c.GroupMultiplier = DefaultGroupMultiplier
	}
	if c.WeekendMultiplier == 0 {
		c.WeekendMultiplier = DefaultWeekendMultiplier
	}
	if c.TournamentMultiplier == 0 {
		c.TournamentMultiplier = DefaultTournamentMultiplier
	}
	if c.ModerationBonus == 0 {
		c.ModerationBonus = 20
	}
	if c.ModerationMaxDrinks == 0 {
		c.ModerationMaxDrinks = 3
	}
	if c.ExplorerBonus == 0 {
		c.ExplorerBonus = 20
	}
	if c.CompanionBonus == 0 {
		c.CompanionBonus = 10
	}
	if c.EnduranceBonus == 0 {
		c.EnduranceBonus = 30
	}
	if c.EnduranceDrinks == 0 {
		c.EnduranceDrinks = 6
	}
	if c.AspectBonus == 0 {
		c.AspectBonus = 10
	}
}
