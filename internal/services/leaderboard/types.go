package leaderboard

import (
	"log/slog"

	"github.com/fiestalog/fiesta/internal/models"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
)

// Config holds configuration for the leaderboard service
type Config struct {
	// StatsRepo supplies the snapshots being ranked
	StatsRepo statsRepo.Repository

	// Logger, defaults to slog.Default
	Logger *slog.Logger
}

// RankInput contains parameters for ranking a snapshot set
type RankInput struct {
	// Snapshots are the already-fetched snapshots to rank, in fetch
	// order; ties keep this order
	Snapshots []*models.StatsSnapshot

	// Category selects the ranked field; unknown values rank by level
	Category models.Category

	// CurrentUserID marks the viewer's own entry
	CurrentUserID string
}

// RankOutput contains the ranked view
type RankOutput struct {
	Leaderboard *models.Leaderboard
}

// GetFriendsLeaderboardInput contains parameters for a friends leaderboard
type GetFriendsLeaderboardInput struct {
	// UserID is the viewer, always included in the peer set
	UserID string

	// FriendIDs is the viewer's friend set, owned by an external
	// collaborator
	FriendIDs []string

	// Category selects the ranked field
	Category models.Category
}

// GetFriendsLeaderboardOutput contains the ranked friends view
type GetFriendsLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetGroupLeaderboardInput contains parameters for a group leaderboard
type GetGroupLeaderboardInput struct {
	// MemberIDs is the group's member set
	MemberIDs []string

	// Category selects the ranked field
	Category models.Category

	// CurrentUserID marks the viewer's own entry, may be empty
	CurrentUserID string
}

// GetGroupLeaderboardOutput contains the ranked group view
type GetGroupLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// CompareFriendsInput contains parameters for a head-to-head comparison
type CompareFriendsInput struct {
	// UserID is the viewer
	UserID string

	// FriendID is the compared friend
	FriendID string
}

// CategoryComparison is one category of a head-to-head comparison
type CategoryComparison struct {
	// Category is the compared field
	Category models.Category

	// UserValue is the viewer's value
	UserValue int

	// FriendValue is the friend's value
	FriendValue int

	// Difference is UserValue - FriendValue
	Difference int
}

// CompareFriendsOutput contains the head-to-head comparison
type CompareFriendsOutput struct {
	// User is the viewer's snapshot
	User *models.StatsSnapshot

	// Friend is the friend's snapshot
	Friend *models.StatsSnapshot

	// Categories is the per-category breakdown
	Categories []CategoryComparison
}
