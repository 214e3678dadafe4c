package challenge

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/fiestalog/fiesta/internal/models"
	challengeRepo "github.com/fiestalog/fiesta/internal/repositories/challenge"
	statsService "github.com/fiestalog/fiesta/internal/services/stats"
)

// service implements the Service interface
type service struct {
	config *Config
	logger *slog.Logger
}

// NewService creates a new challenge service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ChallengeRepo == nil {
		return nil, ErrNilChallengeRepo
	}
	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}
	if cfg.Stats == nil {
		return nil, ErrNilStatsService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	cfg.applyDefaults()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		config: cfg,
		logger: logger,
	}, nil
}

// GenerateWeeklyChallenges synthesizes this week's personal challenges.
// Targets adapt to the user: the party target scales with level, the
// moderation budget comes from the user's own historical average
// drinks per party, and the exploration challenge only appears while
// the user has few unique locations.
func (s *service) GenerateWeeklyChallenges(ctx context.Context, input *GenerateWeeklyChallengesInput) (*GenerateWeeklyChallengesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	current, err := s.config.Stats.GetStats(ctx, &statsService.GetStatsInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	snapshot := current.Snapshot

	now := s.config.Clock.Now()
	expiresAt := now.Add(s.config.WeeklyDuration)

	partiesTarget := snapshot.Level/5 + 1
	if partiesTarget < 2 {
		partiesTarget = 2
	}

	challenges := []*models.Challenge{
		{
			ID:          s.config.UUIDGenerator.NewUUID(),
			Kind:        models.ChallengeKindPersonalWeekly,
			Title:        "Weekly Socializer",
			Description:  fmt.Sprintf("Log %d %s this week", partiesTarget, plural(partiesTarget, "party", "parties")),
			Field:        models.CategoryParties,
			Target:       partiesTarget,
			XPReward:     50 + snapshot.Level*5,
			Status:       models.ChallengeStatusActive,
			Participants: []string{input.UserID},
			Baselines:    map[string]int{input.UserID: snapshot.FieldValue(models.CategoryParties)},
			Progress:     map[string]int{input.UserID: 0},
			CreatedAt:    now,
			ExpiresAt:    expiresAt,
		},
	}

	averageDrinks := DefaultAverageDrinks
	if snapshot.TotalParties > 0 {
		averageDrinks = int(math.Ceil(float64(snapshot.TotalDrinks) / float64(snapshot.TotalParties)))
	}
	drinkBudget := averageDrinks * partiesTarget
	challenges = append(challenges, &models.Challenge{
		ID:           s.config.UUIDGenerator.NewUUID(),
		Kind:         models.ChallengeKindPersonalWeekly,
		Title:        "Master of Moderation",
		Description:  fmt.Sprintf("Stay at or under %d drinks this week", drinkBudget),
		Field:        models.CategoryDrinks,
		Target:       drinkBudget,
		Reverse:      true,
		XPReward:     DefaultModerationXP,
		Status:       models.ChallengeStatusActive,
		Participants: []string{input.UserID},
		Baselines:    map[string]int{input.UserID: snapshot.FieldValue(models.CategoryDrinks)},
		Progress:     map[string]int{input.UserID: 0},
		CreatedAt:    now,
		ExpiresAt:    expiresAt,
	})

	if snapshot.UniqueLocations < s.config.ExplorationCutoff {
		challenges = append(challenges, &models.Challenge{
			ID:           s.config.UUIDGenerator.NewUUID(),
			Kind:         models.ChallengeKindPersonalWeekly,
			Title:        "Night Explorer",
			Description:  fmt.Sprintf("Visit %d new %s this week", DefaultExplorationTarget, plural(DefaultExplorationTarget, "place", "places")),
			Field:        models.CategoryLocations,
			Target:       DefaultExplorationTarget,
			XPReward:     DefaultExplorationXP,
			Status:       models.ChallengeStatusActive,
			Participants: []string{input.UserID},
			Baselines:    map[string]int{input.UserID: snapshot.FieldValue(models.CategoryLocations)},
			Progress:     map[string]int{input.UserID: 0},
			CreatedAt:    now,
			ExpiresAt:    expiresAt,
		})
	}

	for _, c := range challenges {
		if err := s.config.ChallengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
			Challenge: c,
		}); err != nil {
			return nil, fmt.Errorf("failed to save challenge: %w", err)
		}
	}

	return &GenerateWeeklyChallengesOutput{
		Challenges: challenges,
	}, nil
}

// CreateFriendDuel creates a pending duel. Both participants' tracked
// field values are snapshotted as frozen baselines, so progress is
// always a delta and the duel is fair regardless of existing totals.
func (s *service) CreateFriendDuel(ctx context.Context, input *CreateFriendDuelInput) (*CreateFriendDuelOutput, error) {
	if input == nil || input.ChallengerID == "" || input.TargetUserID == "" {
		return nil, ErrMissingUserID
	}
	if input.ChallengerID == input.TargetUserID {
		return nil, ErrSelfDuel
	}
	if input.Target <= 0 {
		return nil, ErrInvalidTarget
	}

	challengerStats, err := s.config.Stats.GetStats(ctx, &statsService.GetStatsInput{
		UserID: input.ChallengerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get challenger stats: %w", err)
	}

	targetStats, err := s.config.Stats.GetStats(ctx, &statsService.GetStatsInput{
		UserID: input.TargetUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get target stats: %w", err)
	}

	duration := input.Duration
	if duration <= 0 {
		duration = s.config.DuelDuration
	}

	now := s.config.Clock.Now()
	noun := categoryNoun(input.Field)

	duel := &models.Challenge{
		ID:          s.config.UUIDGenerator.NewUUID(),
		Kind:        models.ChallengeKindFriendDuel,
		Title:       "Friend Duel",
		Description: fmt.Sprintf("First to gain %d %s wins", input.Target, noun),
		Field:       input.Field,
		Target:      input.Target,
		XPReward:    DefaultDuelXP,
		Status:      models.ChallengeStatusPending,
		Participants: []string{input.ChallengerID, input.TargetUserID},
		Baselines: map[string]int{
			input.ChallengerID: challengerStats.Snapshot.FieldValue(input.Field),
			input.TargetUserID: targetStats.Snapshot.FieldValue(input.Field),
		},
		Progress: map[string]int{
			input.ChallengerID: 0,
			input.TargetUserID: 0,
		},
		ChallengerID: input.ChallengerID,
		TargetUserID: input.TargetUserID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(duration),
	}

	if err := s.config.ChallengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: duel,
	}); err != nil {
		return nil, fmt.Errorf("failed to save duel: %w", err)
	}

	s.notifyDuelInvited(ctx, duel)

	return &CreateFriendDuelOutput{
		Challenge: duel,
	}, nil
}

// AcceptFriendDuel activates a pending duel. Only the challenged user
// may accept; a duel whose deadline already passed expires instead.
func (s *service) AcceptFriendDuel(ctx context.Context, input *AcceptFriendDuelInput) (*AcceptFriendDuelOutput, error) {
	if input == nil || input.ChallengeID == "" || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	duel, err := s.config.ChallengeRepo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: input.ChallengeID,
	})
	if err != nil {
		return nil, err
	}

	if duel.Kind != models.ChallengeKindFriendDuel {
		return nil, ErrNotDuel
	}
	if duel.Status != models.ChallengeStatusPending {
		return nil, ErrChallengeTerminal
	}
	if duel.TargetUserID != input.UserID {
		return nil, ErrNotDuelTarget
	}

	if s.config.Clock.Now().After(duel.ExpiresAt) {
		duel.Status = models.ChallengeStatusExpired
		if err := s.saveChallenge(ctx, duel); err != nil {
			return nil, err
		}
		return nil, ErrChallengeTerminal
	}

	duel.Status = models.ChallengeStatusActive
	if err := s.saveChallenge(ctx, duel); err != nil {
		return nil, err
	}

	return &AcceptFriendDuelOutput{
		Challenge: duel,
	}, nil
}

// CreateGroupChallenge creates a collective challenge. The member list
// is frozen at creation; later membership changes do not alter it. The
// collective target is the per-member target times the frozen count.
func (s *service) CreateGroupChallenge(ctx context.Context, input *CreateGroupChallengeInput) (*CreateGroupChallengeOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, ErrMissingGroupID
	}
	if len(input.MemberIDs) == 0 {
		return nil, ErrNoGroupMembers
	}
	if input.PerMemberTarget <= 0 {
		return nil, ErrInvalidTarget
	}

	members := append([]string(nil), input.MemberIDs...)

	baselines := make(map[string]int, len(members))
	progress := make(map[string]int, len(members))
	for _, memberID := range members {
		memberStats, err := s.config.Stats.GetStats(ctx, &statsService.GetStatsInput{
			UserID: memberID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get stats for member %s: %w", memberID, err)
		}
		baselines[memberID] = memberStats.Snapshot.FieldValue(input.Field)
		progress[memberID] = 0
	}

	duration := input.Duration
	if duration <= 0 {
		duration = s.config.GroupDuration
	}

	title := input.Title
	if title == "" {
		title = "Group Challenge"
	}

	now := s.config.Clock.Now()
	collectiveTarget := input.PerMemberTarget * len(members)

	groupChallenge := &models.Challenge{
		ID:               s.config.UUIDGenerator.NewUUID(),
		Kind:             models.ChallengeKindGroupCollective,
		Title:            title,
		Description:      fmt.Sprintf("Reach %d %s together", collectiveTarget, categoryNoun(input.Field)),
		Field:            input.Field,
		Target:           input.PerMemberTarget,
		XPReward:         DefaultGroupXP,
		Status:           models.ChallengeStatusActive,
		Participants:     members,
		Baselines:        baselines,
		Progress:         progress,
		GroupID:          input.GroupID,
		CollectiveTarget: collectiveTarget,
		CreatedAt:        now,
		ExpiresAt:        now.Add(duration),
	}

	if err := s.config.ChallengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: groupChallenge,
	}); err != nil {
		return nil, fmt.Errorf("failed to save group challenge: %w", err)
	}

	return &CreateGroupChallengeOutput{
		Challenge: groupChallenge,
	}, nil
}

// HandleSnapshotChange re-evaluates every challenge referencing the
// changed user. Expiry wins over completion when both conditions hold.
// Terminal challenges are skipped entirely, which makes duplicate feed
// deliveries no-ops and keeps the reward grant exactly-once.
func (s *service) HandleSnapshotChange(ctx context.Context, input *HandleSnapshotChangeInput) (*HandleSnapshotChangeOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}
	if input.Snapshot == nil {
		return nil, ChallengeError("snapshot cannot be nil")
	}

	listed, err := s.config.ChallengeRepo.ListChallengesForUser(ctx, &challengeRepo.ListChallengesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	now := s.config.Clock.Now()
	output := &HandleSnapshotChangeOutput{}

	for _, c := range listed.Challenges {
		if c.Status.IsTerminal() || !c.HasParticipant(input.UserID) {
			continue
		}

		// Expiry is checked before completion: whichever transition
		// condition was satisfied first wins
		if now.After(c.ExpiresAt) {
			s.resolveExpiry(ctx, c, func(resolved *models.Challenge, completed bool) {
				if completed {
					output.Completed = append(output.Completed, resolved)
				} else {
					output.Expired = append(output.Expired, resolved)
				}
			})
			continue
		}

		delta := input.Snapshot.FieldValue(c.Field) - c.Baselines[input.UserID]
		if delta < 0 {
			delta = 0
		}

		if c.Progress == nil {
			c.Progress = map[string]int{}
		}

		changed := c.Progress[input.UserID] != delta
		c.Progress[input.UserID] = delta

		if c.Kind == models.ChallengeKindGroupCollective {
			c.CollectiveProgress = 0
			for _, p := range c.Progress {
				c.CollectiveProgress += p
			}
		}

		completed := s.checkCompletion(c, input.UserID, now)

		if !changed && !completed {
			continue
		}

		if err := s.saveChallenge(ctx, c); err != nil {
			return nil, err
		}

		if completed {
			output.Completed = append(output.Completed, c)
			s.notifyCompleted(ctx, c)
		} else {
			output.Updated = append(output.Updated, c)
		}
	}

	return output, nil
}

// checkCompletion applies the kind-specific completion rule and marks
// the challenge completed when its target is reached. Reverse
// challenges only complete at expiry.
func (s *service) checkCompletion(c *models.Challenge, userID string, now time.Time) bool {
	if c.Reverse {
		return false
	}

	switch c.Kind {
	case models.ChallengeKindFriendDuel:
		if c.Status != models.ChallengeStatusActive {
			return false
		}
		if c.Progress[userID] < c.Target {
			return false
		}
		c.WinnerID = userID
	case models.ChallengeKindGroupCollective:
		if c.CollectiveProgress < c.CollectiveTarget {
			return false
		}
	default:
		if c.Progress[userID] < c.Target {
			return false
		}
	}

	c.Status = models.ChallengeStatusCompleted
	c.CompletedAt = now
	return true
}

// ExpireChallenges sweeps a user's non-terminal challenges whose
// deadline has passed. Reverse challenges that held their limit
// complete instead of expiring.
func (s *service) ExpireChallenges(ctx context.Context, input *ExpireChallengesInput) (*ExpireChallengesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	listed, err := s.config.ChallengeRepo.ListChallengesForUser(ctx, &challengeRepo.ListChallengesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	now := s.config.Clock.Now()
	output := &ExpireChallengesOutput{}

	for _, c := range listed.Challenges {
		if c.Status.IsTerminal() || !now.After(c.ExpiresAt) {
			continue
		}
		s.resolveExpiry(ctx, c, func(expired *models.Challenge, completed bool) {
			if completed {
				output.Completed = append(output.Completed, expired)
			} else {
				output.Expired = append(output.Expired, expired)
			}
		})
	}

	return output, nil
}

// resolveExpiry finishes a challenge past its deadline: reverse
// challenges that stayed at or under their limit complete, everything
// else expires.
func (s *service) resolveExpiry(ctx context.Context, c *models.Challenge, record func(*models.Challenge, bool)) {
	completed := false
	if c.Reverse && s.withinReverseLimit(c) {
		c.Status = models.ChallengeStatusCompleted
		c.CompletedAt = c.ExpiresAt
		completed = true
	} else {
		c.Status = models.ChallengeStatusExpired
	}

	if err := s.saveChallenge(ctx, c); err != nil {
		s.logger.Warn("failed to save challenge on expiry",
			"challenge_id", c.ID,
			"error", err)
		return
	}

	if completed {
		s.notifyCompleted(ctx, c)
	}
	record(c, completed)
}

func (s *service) withinReverseLimit(c *models.Challenge) bool {
	for _, p := range c.Progress {
		if p > c.Target {
			return false
		}
	}
	return true
}

// ListChallenges retrieves a user's challenges
func (s *service) ListChallenges(ctx context.Context, input *ListChallengesInput) (*ListChallengesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	listed, err := s.config.ChallengeRepo.ListChallengesForUser(ctx, &challengeRepo.ListChallengesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	if input.IncludeTerminal {
		return &ListChallengesOutput{Challenges: listed.Challenges}, nil
	}

	challenges := make([]*models.Challenge, 0, len(listed.Challenges))
	for _, c := range listed.Challenges {
		if !c.Status.IsTerminal() {
			challenges = append(challenges, c)
		}
	}

	return &ListChallengesOutput{Challenges: challenges}, nil
}

func (s *service) saveChallenge(ctx context.Context, c *models.Challenge) error {
	if err := s.config.ChallengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: c,
	}); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}
	return nil
}

// notifyCompleted announces a completion. Delivery failures never fail
// the completion itself.
func (s *service) notifyCompleted(ctx context.Context, c *models.Challenge) {
	if s.config.Notifier == nil {
		return
	}

	creditedUser := c.WinnerID
	if creditedUser == "" && len(c.Participants) > 0 {
		creditedUser = c.Participants[0]
	}

	err := s.config.Notifier.ChallengeCompleted(ctx, &CompletedNotification{
		Challenge: c,
		UserID:    creditedUser,
		XPReward:  c.XPReward,
	})
	if err != nil {
		s.logger.Warn("challenge completion notification failed",
			"challenge_id", c.ID,
			"error", err)
	}
}

// notifyDuelInvited announces a pending duel to the challenged user.
// Delivery failures never fail the duel creation.
func (s *service) notifyDuelInvited(ctx context.Context, duel *models.Challenge) {
	if s.config.Notifier == nil {
		return
	}

	err := s.config.Notifier.DuelInvited(ctx, &DuelInvitation{
		Challenge:    duel,
		ChallengerID: duel.ChallengerID,
		TargetUserID: duel.TargetUserID,
	})
	if err != nil {
		s.logger.Warn("duel invitation notification failed",
			"challenge_id", duel.ID,
			"error", err)
	}
}

func categoryNoun(category models.Category) string {
	switch category {
	case models.CategoryXP:
		return "XP"
	case models.CategoryParties:
		return "parties"
	case models.CategoryBadges:
		return "badges"
	case models.CategoryChallenges:
		return "challenges"
	case models.CategoryLocations:
		return "new locations"
	case models.CategoryLevel:
		return "levels"
	default:
		return "drinks"
	}
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
