package models

import (
	"time"
)

// ChallengeKind represents the type of a challenge
type ChallengeKind string

const (
	// ChallengeKindPersonalWeekly is a weekly challenge generated for one user
	ChallengeKindPersonalWeekly ChallengeKind = "personal_weekly"

	// ChallengeKindFriendDuel is a two-party challenge between friends
	ChallengeKindFriendDuel ChallengeKind = "friend_duel"

	// ChallengeKindGroupCollective is a collective challenge for a group
	ChallengeKindGroupCollective ChallengeKind = "group_collective"
)

// ChallengeStatus represents the lifecycle state of a challenge
type ChallengeStatus string

const (
	// ChallengeStatusPending indicates a challenge awaiting acceptance
	ChallengeStatusPending ChallengeStatus = "pending"

	// ChallengeStatusActive indicates a challenge being tracked
	ChallengeStatusActive ChallengeStatus = "active"

	// ChallengeStatusCompleted indicates the target was reached
	ChallengeStatusCompleted ChallengeStatus = "completed"

	// ChallengeStatusExpired indicates the deadline passed first
	ChallengeStatusExpired ChallengeStatus = "expired"
)

// IsTerminal returns true once no further transitions may occur.
func (s ChallengeStatus) IsTerminal() bool {
	return s == ChallengeStatusCompleted || s == ChallengeStatusExpired
}

// Challenge is a time-boxed target on one snapshot field. Progress is
// always a delta from the baselines captured at creation, never an
// absolute value.
type Challenge struct {
	// ID is the unique identifier for the challenge
	ID string

	// Kind is the challenge type
	Kind ChallengeKind

	// Title is a short display name
	Title string

	// Description is a human-readable description built from the target
	Description string

	// Field is the snapshot field the challenge tracks
	Field Category

	// Target is the per-participant delta to reach
	Target int

	// Reverse marks a limitation challenge: it completes at expiry if
	// progress stayed at or under Target, instead of expiring
	Reverse bool

	// XPReward is granted once on completion
	XPReward int

	// Status is the lifecycle state
	Status ChallengeStatus

	// Participants lists every user whose snapshot drives progress
	Participants []string

	// Baselines holds the tracked field's value per participant at
	// creation time, frozen for the life of the challenge
	Baselines map[string]int

	// Progress holds the current delta from baseline per participant
	Progress map[string]int

	// WinnerID is the participant that completed a duel, if any
	WinnerID string

	// ChallengerID is the duel initiator (friend duels only)
	ChallengerID string

	// TargetUserID is the duel opponent (friend duels only)
	TargetUserID string

	// GroupID is the owning group (group challenges only)
	GroupID string

	// CollectiveTarget is the summed group target (group challenges only)
	CollectiveTarget int

	// CollectiveProgress is the summed member progress (group challenges only)
	CollectiveProgress int

	// CreatedAt is when the challenge was created
	CreatedAt time.Time

	// ExpiresAt is the deadline
	ExpiresAt time.Time

	// CompletedAt is when the challenge completed, if it did
	CompletedAt time.Time
}

// HasParticipant returns true when the user's snapshot drives this
// challenge's progress.
func (c *Challenge) HasParticipant(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}
