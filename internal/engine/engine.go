package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fiestalog/fiesta/internal/models"
	activityRepo "github.com/fiestalog/fiesta/internal/repositories/activity"
	challengeService "github.com/fiestalog/fiesta/internal/services/challenge"
	notifierService "github.com/fiestalog/fiesta/internal/services/notifier"
	statsService "github.com/fiestalog/fiesta/internal/services/stats"
)

// Engine is the composition root for activity ingestion. It persists
// incoming activity events, drives the stats recompute, and feeds
// challenge completions back into the stats pipeline. It implements
// challenge.Notifier so completions re-enter through the same door.
type Engine struct {
	activityRepo activityRepo.Repository
	stats        statsService.Service
	notifier     notifierService.Service
	tracker      *challengeService.Tracker
	logger       *slog.Logger
}

// Config holds the configuration for the engine
type Config struct {
	// ActivityRepo persists activity events
	ActivityRepo activityRepo.Repository

	// Stats recomputes and serves snapshots
	Stats statsService.Service

	// Notifier composes user-facing announcement messages
	Notifier notifierService.Service

	// Logger, defaults to slog.Default
	Logger *slog.Logger
}

// New creates a new engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ActivityRepo == nil {
		return nil, ErrNilActivityRepo
	}
	if cfg.Stats == nil {
		return nil, ErrNilStatsService
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		activityRepo: cfg.ActivityRepo,
		stats:        cfg.Stats,
		notifier:     cfg.Notifier,
		logger:       logger,
	}, nil
}

// StartTracking attaches the challenge tracker and opens its change
// feed subscription
func (e *Engine) StartTracking(ctx context.Context, tracker *challengeService.Tracker) error {
	if tracker == nil {
		return ErrNilTracker
	}

	if err := tracker.Start(ctx); err != nil {
		return fmt.Errorf("failed to start challenge tracker: %w", err)
	}

	e.tracker = tracker
	return nil
}

// Stop shuts down the challenge tracker if one was attached
func (e *Engine) Stop() error {
	if e.tracker == nil {
		return nil
	}
	return e.tracker.Stop()
}

// HandleActivityLogged persists a new activity event and recomputes
// the user's stats. The recompute publishes the fresh snapshot, which
// in turn drives leaderboards and challenge progress.
func (e *Engine) HandleActivityLogged(ctx context.Context, input *HandleActivityLoggedInput) (*HandleActivityLoggedOutput, error) {
	if input == nil || input.Event == nil {
		return nil, ErrNilEvent
	}
	if input.Event.UserID == "" {
		return nil, ErrMissingUserID
	}

	if err := e.activityRepo.SaveEvent(ctx, &activityRepo.SaveEventInput{
		Event: input.Event,
	}); err != nil {
		return nil, fmt.Errorf("failed to save activity event: %w", err)
	}

	recomputed, err := e.stats.RecomputeStats(ctx, &statsService.RecomputeStatsInput{
		UserID: input.Event.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recompute stats: %w", err)
	}

	output := &HandleActivityLoggedOutput{
		Snapshot: recomputed.Snapshot,
		LevelUp:  recomputed.LevelUp,
	}

	if recomputed.LevelUp.LeveledUp {
		msg, msgErr := e.notifier.GetLevelUpMessage(ctx, &notifierService.GetLevelUpMessageInput{
			UserName:  input.Event.UserID,
			NewLevel:  recomputed.LevelUp.NewLevel,
			LevelName: recomputed.LevelUp.NewLevelName,
		})
		if msgErr != nil {
			e.logger.Warn("failed to compose level-up message",
				"user_id", input.Event.UserID,
				"error", msgErr)
		} else {
			output.LevelUpMessage = msg.Message
			e.logger.Info("level up",
				"user_id", input.Event.UserID,
				"level", recomputed.LevelUp.NewLevel,
				"message", msg.Message)
		}
	}

	return output, nil
}

// ChallengeCompleted implements challenge.Notifier. It announces the
// completion and recomputes the credited user's stats so the reward
// XP and challenge count land in the next snapshot.
func (e *Engine) ChallengeCompleted(ctx context.Context, notification *challengeService.CompletedNotification) error {
	if notification == nil || notification.Challenge == nil {
		return ErrNilEvent
	}

	msg, err := e.notifier.GetChallengeCompletedMessage(ctx, &notifierService.GetChallengeCompletedMessageInput{
		UserName:       notification.UserID,
		ChallengeTitle: notification.Challenge.Title,
		XPReward:       notification.XPReward,
	})
	if err != nil {
		e.logger.Warn("failed to compose completion message",
			"challenge_id", notification.Challenge.ID,
			"error", err)
	} else {
		e.logger.Info("challenge completed",
			"challenge_id", notification.Challenge.ID,
			"user_id", notification.UserID,
			"message", msg.Message)
	}

	for _, userID := range creditedUsers(notification.Challenge) {
		if _, err := e.stats.RecomputeStats(ctx, &statsService.RecomputeStatsInput{
			UserID: userID,
		}); err != nil {
			e.logger.Warn("failed to recompute stats after completion",
				"challenge_id", notification.Challenge.ID,
				"user_id", userID,
				"error", err)
		}
	}

	return nil
}

// DuelInvited implements challenge.Notifier. It composes and logs the
// invitation so the challenged user can be pinged by whatever delivery
// channel sits in front of the engine.
func (e *Engine) DuelInvited(ctx context.Context, invitation *challengeService.DuelInvitation) error {
	if invitation == nil || invitation.Challenge == nil {
		return ErrNilEvent
	}

	msg, err := e.notifier.GetDuelInviteMessage(ctx, &notifierService.GetDuelInviteMessageInput{
		ChallengerName: invitation.ChallengerID,
		TargetName:     invitation.TargetUserID,
		Description:    invitation.Challenge.Description,
	})
	if err != nil {
		e.logger.Warn("failed to compose duel invitation message",
			"challenge_id", invitation.Challenge.ID,
			"error", err)
		return nil
	}

	e.logger.Info("duel invitation",
		"challenge_id", invitation.Challenge.ID,
		"challenger_id", invitation.ChallengerID,
		"target_user_id", invitation.TargetUserID,
		"message", msg.Message)
	return nil
}

// creditedUsers lists the participants a completed challenge counts
// for. Duels credit only the winner; everything else credits all
// participants.
func creditedUsers(c *models.Challenge) []string {
	if c.Kind == models.ChallengeKindFriendDuel {
		if c.WinnerID == "" {
			return nil
		}
		return []string{c.WinnerID}
	}
	return c.Participants
}
