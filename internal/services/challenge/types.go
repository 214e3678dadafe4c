package challenge

import (
	"log/slog"
	"time"

	"github.com/fiestalog/fiesta/internal/common/clock"
	"github.com/fiestalog/fiesta/internal/common/uuid"
	"github.com/fiestalog/fiesta/internal/models"
	challengeRepo "github.com/fiestalog/fiesta/internal/repositories/challenge"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
	statsService "github.com/fiestalog/fiesta/internal/services/stats"
)

// Default generation constants, used when the corresponding Config
// field is left zero.
const (
	DefaultWeeklyDuration    = 7 * 24 * time.Hour
	DefaultDuelDuration      = 7 * 24 * time.Hour
	DefaultGroupDuration     = 14 * 24 * time.Hour
	DefaultModerationXP      = 75
	DefaultExplorationXP     = 100
	DefaultExplorationTarget = 2
	DefaultExplorationCutoff = 10
	DefaultDuelXP            = 50
	DefaultGroupXP           = 150
	DefaultAverageDrinks     = 3
)

// Config holds configuration for the challenge service
type Config struct {
	// Repository dependencies
	ChallengeRepo challengeRepo.Repository
	StatsRepo     statsRepo.Repository

	// Service dependencies
	Stats statsService.Service

	// Notifier receives completion announcements; optional
	Notifier Notifier

	// Clock drives expiry and timestamps
	Clock clock.Clock

	// UUIDGenerator mints challenge IDs
	UUIDGenerator uuid.UUID

	// WeeklyDuration is how long generated weekly challenges run
	WeeklyDuration time.Duration

	// DuelDuration is the default friend duel length
	DuelDuration time.Duration

	// GroupDuration is the default group challenge length
	GroupDuration time.Duration

	// ExplorationCutoff gates the exploration challenge: it is only
	// generated while the user has seen fewer unique locations
	ExplorationCutoff int

	// Logger, defaults to slog.Default
	Logger *slog.Logger
}

func (c *Config) applyDefaults() {
	if c.WeeklyDuration == 0 {
		c.WeeklyDuration = DefaultWeeklyDuration
	}
	if c.DuelDuration == 0 {
		c.DuelDuration = DefaultDuelDuration
	}
	if c.GroupDuration == 0 {
		c.GroupDuration = DefaultGroupDuration
	}
	if c.ExplorationCutoff == 0 {
		c.ExplorationCutoff = DefaultExplorationCutoff
	}
}

// GenerateWeeklyChallengesInput contains parameters for weekly generation
type GenerateWeeklyChallengesInput struct {
	// UserID is the user to generate challenges for
	UserID string
}

// GenerateWeeklyChallengesOutput contains the generated challenges
type GenerateWeeklyChallengesOutput struct {
	Challenges []*models.Challenge
}

// CreateFriendDuelInput contains parameters for creating a duel
type CreateFriendDuelInput struct {
	// ChallengerID is the duel initiator
	ChallengerID string

	// TargetUserID is the challenged friend
	TargetUserID string

	// Field is the tracked snapshot field
	Field models.Category

	// Target is the delta either side must reach to win
	Target int

	// Duration overrides the default duel length when positive
	Duration time.Duration
}

// CreateFriendDuelOutput contains the created duel
type CreateFriendDuelOutput struct {
	Challenge *models.Challenge
}

// AcceptFriendDuelInput contains parameters for accepting a duel
type AcceptFriendDuelInput struct {
	// ChallengeID is the duel to accept
	ChallengeID string

	// UserID is the accepting user; must be the duel's target
	UserID string
}

// AcceptFriendDuelOutput contains the activated duel
type AcceptFriendDuelOutput struct {
	Challenge *models.Challenge
}

// CreateGroupChallengeInput contains parameters for a group challenge
type CreateGroupChallengeInput struct {
	// GroupID is the owning group
	GroupID string

	// MemberIDs is the member list, frozen at creation
	MemberIDs []string

	// Field is the tracked snapshot field
	Field models.Category

	// PerMemberTarget is the delta expected from each member; the
	// collective target is PerMemberTarget times the member count
	PerMemberTarget int

	// Title is an optional display name
	Title string

	// Duration overrides the default group length when positive
	Duration time.Duration
}

// CreateGroupChallengeOutput contains the created group challenge
type CreateGroupChallengeOutput struct {
	Challenge *models.Challenge
}

// HandleSnapshotChangeInput contains one observed snapshot change
type HandleSnapshotChangeInput struct {
	// UserID is the user whose snapshot changed
	UserID string

	// Snapshot is the newly published snapshot
	Snapshot *models.StatsSnapshot
}

// HandleSnapshotChangeOutput contains the re-evaluation result
type HandleSnapshotChangeOutput struct {
	// Updated lists challenges whose progress changed
	Updated []*models.Challenge

	// Completed lists challenges that reached their target on this
	// change; rewards for these were granted exactly once
	Completed []*models.Challenge

	// Expired lists challenges whose deadline had passed
	Expired []*models.Challenge
}

// ExpireChallengesInput contains parameters for an expiry sweep
type ExpireChallengesInput struct {
	// UserID is the user whose challenges are swept
	UserID string
}

// ExpireChallengesOutput contains the swept challenges
type ExpireChallengesOutput struct {
	// Expired lists challenges moved to expired
	Expired []*models.Challenge

	// Completed lists reverse challenges that held their limit until
	// the deadline and completed instead
	Completed []*models.Challenge
}

// ListChallengesInput contains parameters for listing challenges
type ListChallengesInput struct {
	// UserID is the participant to list for
	UserID string

	// IncludeTerminal keeps completed and expired challenges in the
	// result when true
	IncludeTerminal bool
}

// ListChallengesOutput contains the listed challenges
type ListChallengesOutput struct {
	Challenges []*models.Challenge
}

// DuelInvitation announces a freshly created duel awaiting acceptance
type DuelInvitation struct {
	// Challenge is the pending duel
	Challenge *models.Challenge

	// ChallengerID is the user who issued the duel
	ChallengerID string

	// TargetUserID is the user being challenged
	TargetUserID string
}

// CompletedNotification announces one completed challenge
type CompletedNotification struct {
	// Challenge is the completed challenge
	Challenge *models.Challenge

	// UserID is the participant credited with the completion
	UserID string

	// XPReward is the XP granted
	XPReward int
}
