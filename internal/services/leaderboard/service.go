package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/fiestalog/fiesta/internal/models"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
)

// comparedCategories is the fixed category order for head-to-head views
var comparedCategories = []models.Category{
	models.CategoryLevel,
	models.CategoryXP,
	models.CategoryParties,
	models.CategoryDrinks,
	models.CategoryBadges,
	models.CategoryChallenges,
}

// service implements the Service interface
type service struct {
	config *Config
	logger *slog.Logger
}

// NewService creates a new leaderboard service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		config: cfg,
		logger: logger,
	}, nil
}

// Rank sorts and annotates a set of already-fetched snapshots.
//
// The sort is stable: tied values keep the order the snapshots were
// passed in. No secondary tie-break is applied, so two callers fetching
// the same peers in different orders may present ties differently.
// Ranks are 1-based and contiguous even on ties.
func (s *service) Rank(ctx context.Context, input *RankInput) (*RankOutput, error) {
	if input == nil {
		return nil, LeaderboardError("input cannot be nil")
	}

	category := normalizeCategory(input.Category)

	snapshots := make([]*models.StatsSnapshot, 0, len(input.Snapshots))
	for _, snapshot := range input.Snapshots {
		if snapshot != nil {
			snapshots = append(snapshots, snapshot)
		}
	}

	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].FieldValue(category) > snapshots[j].FieldValue(category)
	})

	entries := make([]*models.LeaderboardEntry, 0, len(snapshots))
	for i, snapshot := range snapshots {
		entry := &models.LeaderboardEntry{
			UserID:        snapshot.UserID,
			Rank:          i + 1,
			IsCurrentUser: snapshot.UserID == input.CurrentUserID,
			Value:         snapshot.FieldValue(category),
			Snapshot:      snapshot,
		}
		if i > 0 {
			entry.GapToAbove = snapshots[i-1].FieldValue(category) - entry.Value
		}
		entries = append(entries, entry)
	}

	return &RankOutput{
		Leaderboard: &models.Leaderboard{
			Category: category,
			Entries:  entries,
		},
	}, nil
}

// GetFriendsLeaderboard ranks a user against their friend set. Peers
// without a published snapshot are omitted, never ranked as zero.
func (s *service) GetFriendsLeaderboard(ctx context.Context, input *GetFriendsLeaderboardInput) (*GetFriendsLeaderboardOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	peerIDs := append([]string{input.UserID}, input.FriendIDs...)

	snapshots, err := s.fetchSnapshots(ctx, peerIDs)
	if err != nil {
		return nil, err
	}

	ranked, err := s.Rank(ctx, &RankInput{
		Snapshots:     snapshots,
		Category:      input.Category,
		CurrentUserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &GetFriendsLeaderboardOutput{
		Leaderboard: ranked.Leaderboard,
	}, nil
}

// GetGroupLeaderboard ranks a group's members
func (s *service) GetGroupLeaderboard(ctx context.Context, input *GetGroupLeaderboardInput) (*GetGroupLeaderboardOutput, error) {
	if input == nil {
		return nil, LeaderboardError("input cannot be nil")
	}

	snapshots, err := s.fetchSnapshots(ctx, input.MemberIDs)
	if err != nil {
		return nil, err
	}

	ranked, err := s.Rank(ctx, &RankInput{
		Snapshots:     snapshots,
		Category:      input.Category,
		CurrentUserID: input.CurrentUserID,
	})
	if err != nil {
		return nil, err
	}

	return &GetGroupLeaderboardOutput{
		Leaderboard: ranked.Leaderboard,
	}, nil
}

// CompareFriends builds a head-to-head comparison of two users. Absent
// snapshots compare as zero stats rather than failing, so a fresh user
// can still be compared against.
func (s *service) CompareFriends(ctx context.Context, input *CompareFriendsInput) (*CompareFriendsOutput, error) {
	if input == nil || input.UserID == "" || input.FriendID == "" {
		return nil, ErrMissingUserID
	}

	userSnapshot, err := s.fetchSnapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if userSnapshot == nil {
		userSnapshot = &models.StatsSnapshot{UserID: input.UserID, Level: 1}
	}

	friendSnapshot, err := s.fetchSnapshot(ctx, input.FriendID)
	if err != nil {
		return nil, err
	}
	if friendSnapshot == nil {
		friendSnapshot = &models.StatsSnapshot{UserID: input.FriendID, Level: 1}
	}

	categories := make([]CategoryComparison, 0, len(comparedCategories))
	for _, category := range comparedCategories {
		userValue := userSnapshot.FieldValue(category)
		friendValue := friendSnapshot.FieldValue(category)
		categories = append(categories, CategoryComparison{
			Category:    category,
			UserValue:   userValue,
			FriendValue: friendValue,
			Difference:  userValue - friendValue,
		})
	}

	return &CompareFriendsOutput{
		User:       userSnapshot,
		Friend:     friendSnapshot,
		Categories: categories,
	}, nil
}

// fetchSnapshots reads public snapshots for a peer set, dropping peers
// that have none
func (s *service) fetchSnapshots(ctx context.Context, userIDs []string) ([]*models.StatsSnapshot, error) {
	snapshots := make([]*models.StatsSnapshot, 0, len(userIDs))
	for _, userID := range userIDs {
		snapshot, err := s.fetchSnapshot(ctx, userID)
		if err != nil {
			return nil, err
		}
		if snapshot != nil {
			snapshots = append(snapshots, snapshot)
		}
	}
	return snapshots, nil
}

func (s *service) fetchSnapshot(ctx context.Context, userID string) (*models.StatsSnapshot, error) {
	snapshot, err := s.config.StatsRepo.GetSnapshot(ctx, &statsRepo.GetSnapshotInput{
		UserID: userID,
		Store:  statsRepo.StorePublic,
	})
	if err != nil {
		if errors.Is(err, statsRepo.ErrSnapshotNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot for %s: %w", userID, err)
	}
	return snapshot, nil
}

func normalizeCategory(category models.Category) models.Category {
	switch category {
	case models.CategoryLevel, models.CategoryXP, models.CategoryParties,
		models.CategoryBadges, models.CategoryChallenges, models.CategoryDrinks:
		return category
	default:
		return models.CategoryLevel
	}
}
