package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fiestalog/fiesta/internal/models"
	"github.com/fiestalog/fiesta/internal/progression"
	activityRepo "github.com/fiestalog/fiesta/internal/repositories/activity"
	challengeRepo "github.com/fiestalog/fiesta/internal/repositories/challenge"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
	"golang.org/x/sync/errgroup"
)

// service implements the Service interface.
//
// A recompute always reads the full log and replaces both snapshot
// copies wholesale, so it is idempotent: a caller seeing a partial
// publish failure retries the whole recompute instead of repairing
// individual stores. There is no background reconciliation job; the
// next recompute is the corrective action.
type service struct {
	config *Config
	logger *slog.Logger
}

// NewService creates a new stats service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}
	if cfg.ChallengeRepo == nil {
		return nil, ErrNilChallengeRepo
	}
	if cfg.Calculator == nil {
		return nil, ErrNilCalculator
	}
	if cfg.VolumeLookup == nil {
		return nil, ErrNilVolumeLookup
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
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

// RecomputeStats rebuilds a user's snapshot from their full activity log
// and republishes it to every denormalized store
func (s *service) RecomputeStats(ctx context.Context, input *RecomputeStatsInput) (*RecomputeStatsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	// Capture the previous XP before overwriting, for level-up detection
	previousXP := 0
	if previous, err := s.config.StatsRepo.GetSnapshot(ctx, &statsRepo.GetSnapshotInput{
		UserID: input.UserID,
		Store:  statsRepo.StorePublic,
	}); err == nil {
		previousXP = previous.TotalXP
	} else if !errors.Is(err, statsRepo.ErrSnapshotNotFound) {
		return nil, fmt.Errorf("failed to read previous snapshot: %w", err)
	}

	events, err := s.config.ActivityRepo.ListEvents(ctx, &activityRepo.ListEventsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity events: %w", err)
	}

	snapshot := s.fold(input.UserID, events.Events)

	badgeCount := 0
	if s.config.Badges != nil {
		badgeCount, err = s.config.Badges.CountBadges(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to count badges: %w", err)
		}
	}
	snapshot.TotalBadges = badgeCount

	completed, err := s.config.ChallengeRepo.CountCompletedChallenges(ctx, &challengeRepo.CountCompletedChallengesInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count completed challenges: %w", err)
	}
	snapshot.TotalChallenges = completed.Count

	s.applyProgression(snapshot)
	snapshot.UpdatedAt = s.config.Clock.Now()

	if err := s.publish(ctx, snapshot); err != nil {
		return nil, err
	}

	return &RecomputeStatsOutput{
		Snapshot: snapshot,
		LevelUp:  s.config.Calculator.DetectLevelUp(previousXP, snapshot.TotalXP),
	}, nil
}

// fold accumulates the raw counts from the full event log. Malformed
// events are treated permissively: missing quantities count as zero and
// empty locations are excluded from unique-location tracking.
func (s *service) fold(userID string, events []*models.ActivityEvent) *models.StatsSnapshot {
	snapshot := &models.StatsSnapshot{
		UserID:       userID,
		DrinkTypes:   map[string]int{},
		DrinkVolumes: map[string]float64{},
		PartyTypes:   map[string]int{},
	}

	locations := map[string]bool{}
	brandQuantities := map[string]map[string]int{}

	// Track first-seen order for the most-consumed tie break
	var typeOrder []string
	brandOrder := map[string][]string{}

	for _, event := range events {
		if event == nil {
			continue
		}

		snapshot.TotalParties++

		for _, drink := range event.Drinks {
			quantity := drink.Quantity
			if quantity < 0 {
				quantity = 0
			}

			if _, seen := snapshot.DrinkTypes[drink.Type]; !seen {
				typeOrder = append(typeOrder, drink.Type)
			}

			snapshot.TotalDrinks += quantity
			snapshot.DrinkTypes[drink.Type] += quantity

			v := s.config.VolumeLookup.Volume(drink.Type, event.Category, quantity)
			snapshot.TotalVolume += v
			snapshot.DrinkVolumes[drink.Type] += v

			if drink.Brand != "" {
				if brandQuantities[drink.Type] == nil {
					brandQuantities[drink.Type] = map[string]int{}
				}
				if _, seen := brandQuantities[drink.Type][drink.Brand]; !seen {
					brandOrder[drink.Type] = append(brandOrder[drink.Type], drink.Brand)
				}
				brandQuantities[drink.Type][drink.Brand] += quantity
			}
		}

		snapshot.TotalFights += event.Fights
		snapshot.TotalVomits += event.Vomits
		snapshot.TotalRejections += event.Rejections
		snapshot.TotalQuizQuestions += event.QuizQuestions

		if event.Location != "" {
			locations[strings.ToLower(event.Location)] = true
		}

		if event.Category != "" {
			snapshot.PartyTypes[event.Category]++
		}
	}

	snapshot.UniqueLocations = len(locations)
	snapshot.MostConsumed = mostConsumed(snapshot.DrinkTypes, typeOrder, brandQuantities, brandOrder)

	return snapshot
}

// mostConsumed picks the drink type with the highest quantity, ties
// broken by first-seen order, and the most frequent brand within it.
// Brand ties break on first-seen order too, so recomputing the same
// log always yields an identical snapshot.
func mostConsumed(quantities map[string]int, typeOrder []string, brands map[string]map[string]int, brandOrder map[string][]string) models.MostConsumedDrink {
	var best models.MostConsumedDrink
	for _, drinkType := range typeOrder {
		if quantities[drinkType] > best.Quantity {
			best.Type = drinkType
			best.Quantity = quantities[drinkType]
		}
	}

	if best.Type == "" {
		return best
	}

	bestBrandQuantity := 0
	for _, brand := range brandOrder[best.Type] {
		if brands[best.Type][brand] > bestBrandQuantity {
			best.Brand = brand
			bestBrandQuantity = brands[best.Type][brand]
		}
	}

	return best
}

func (s *service) applyProgression(snapshot *models.StatsSnapshot) {
	snapshot.TotalXP = s.config.Calculator.TotalXP(progression.ActivityCounts{
		Parties:       snapshot.TotalParties,
		Drinks:        snapshot.TotalDrinks,
		Badges:        snapshot.TotalBadges,
		Challenges:    snapshot.TotalChallenges,
		QuizQuestions: snapshot.TotalQuizQuestions,
	}, progression.Modifiers{})

	progress := s.config.Calculator.LevelProgress(snapshot.TotalXP)
	snapshot.Level = progress.Level
	snapshot.LevelName = progress.LevelName
	snapshot.XPToNextLevel = progress.XPToNextLevel
	snapshot.ProgressToNextLevel = progress.PercentToNextLevel
}

// publish writes the snapshot to every store in parallel. The writes
// are independent and non-transactional: a failure in one store does
// not stop the other, and a partial failure leaves the copies
// transiently inconsistent until the next recompute.
func (s *service) publish(ctx context.Context, snapshot *models.StatsSnapshot) error {
	var g errgroup.Group

	for _, store := range statsRepo.Stores {
		store := store
		g.Go(func() error {
			err := s.config.StatsRepo.SaveSnapshot(ctx, &statsRepo.SaveSnapshotInput{
				Snapshot: snapshot,
				Store:    store,
			})
			if err != nil {
				s.logger.Warn("snapshot publish failed, store inconsistent until next recompute",
					"user_id", snapshot.UserID,
					"store", store,
					"error", err)
				return fmt.Errorf("failed to publish snapshot to %s store: %w", store, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// GetStats reads a user's snapshot; a missing snapshot comes back as
// level 1 with zero counts, never as an error
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	store := input.Store
	if store == "" {
		store = statsRepo.StorePublic
	}

	snapshot, err := s.config.StatsRepo.GetSnapshot(ctx, &statsRepo.GetSnapshotInput{
		UserID: input.UserID,
		Store:  store,
	})
	if err != nil {
		if errors.Is(err, statsRepo.ErrSnapshotNotFound) {
			return &GetStatsOutput{
				Snapshot: s.zeroSnapshot(input.UserID),
				Found:    false,
			}, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	return &GetStatsOutput{
		Snapshot: snapshot,
		Found:    true,
	}, nil
}

func (s *service) zeroSnapshot(userID string) *models.StatsSnapshot {
	snapshot := &models.StatsSnapshot{
		UserID:       userID,
		DrinkTypes:   map[string]int{},
		DrinkVolumes: map[string]float64{},
		PartyTypes:   map[string]int{},
	}
	s.applyProgression(snapshot)
	return snapshot
}
