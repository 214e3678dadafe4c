package leaderboard

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fiestalog/fiesta/internal/services/leaderboard Service

// Service defines the interface for leaderboard ranking. Rankings are
// ephemeral views: they are recomputed on every call and never stored.
type Service interface {
	// Rank sorts and annotates a set of already-fetched snapshots
	Rank(ctx context.Context, input *RankInput) (*RankOutput, error)

	// GetFriendsLeaderboard ranks a user against their friend set
	GetFriendsLeaderboard(ctx context.Context, input *GetFriendsLeaderboardInput) (*GetFriendsLeaderboardOutput, error)

	// GetGroupLeaderboard ranks a group's members
	GetGroupLeaderboard(ctx context.Context, input *GetGroupLeaderboardInput) (*GetGroupLeaderboardOutput, error)

	// CompareFriends builds a head-to-head comparison of two users
	CompareFriends(ctx context.Context, input *CompareFriendsInput) (*CompareFriendsOutput, error)
}
