package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fiestalog/fiesta/internal/models"
	"github.com/fiestalog/fiesta/internal/progression"
	activityRepo "github.com/fiestalog/fiesta/internal/repositories/activity"
	activityMocks "github.com/fiestalog/fiesta/internal/repositories/activity/mocks"
	challengeService "github.com/fiestalog/fiesta/internal/services/challenge"
	notifierService "github.com/fiestalog/fiesta/internal/services/notifier"
	statsService "github.com/fiestalog/fiesta/internal/services/stats"
	statsSvcMocks "github.com/fiestalog/fiesta/internal/services/stats/mocks"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockActivityRepo *activityMocks.MockRepository
	mockStats        *statsSvcMocks.MockService
	engine           *Engine
	ctx              context.Context

	testTime time.Time
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockActivityRepo = activityMocks.NewMockRepository(s.mockCtrl)
	s.mockStats = statsSvcMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2026, 6, 5, 22, 0, 0, 0, time.UTC)

	notifier, err := notifierService.NewService(&notifierService.ServiceConfig{})
	s.Require().NoError(err)

	eng, err := New(&Config{
		ActivityRepo: s.mockActivityRepo,
		Stats:        s.mockStats,
		Notifier:     notifier,
	})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) testEvent() *models.ActivityEvent {
	return &models.ActivityEvent{
		ID:        "test-event-id",
		UserID:    "test-user-id",
		Drinks:    []models.Drink{{Type: "beer", Quantity: 2}},
		Timestamp: s.testTime,
	}
}

func (s *EngineTestSuite) TestHandleActivityLoggedSavesAndRecomputes() {
	event := s.testEvent()

	s.mockActivityRepo.EXPECT().
		SaveEvent(s.ctx, &activityRepo.SaveEventInput{Event: event}).
		Return(nil)
	s.mockStats.EXPECT().
		RecomputeStats(s.ctx, &statsService.RecomputeStatsInput{UserID: "test-user-id"}).
		Return(&statsService.RecomputeStatsOutput{
			Snapshot: &models.StatsSnapshot{UserID: "test-user-id", TotalXP: 60, Level: 1},
		}, nil)

	output, err := s.engine.HandleActivityLogged(s.ctx, &HandleActivityLoggedInput{
		Event: event,
	})
	s.Require().NoError(err)
	s.Equal(60, output.Snapshot.TotalXP)
	s.False(output.LevelUp.LeveledUp)
	s.Empty(output.LevelUpMessage)
}

func (s *EngineTestSuite) TestHandleActivityLoggedAnnouncesLevelUp() {
	event := s.testEvent()

	s.mockActivityRepo.EXPECT().SaveEvent(s.ctx, gomock.Any()).Return(nil)
	s.mockStats.EXPECT().
		RecomputeStats(s.ctx, gomock.Any()).
		Return(&statsService.RecomputeStatsOutput{
			Snapshot: &models.StatsSnapshot{UserID: "test-user-id", TotalXP: 120, Level: 2},
			LevelUp: progression.LevelUp{
				LeveledUp:    true,
				OldLevel:     1,
				NewLevel:     2,
				LevelsGained: 1,
				NewLevelName: "Rookie Apprentice",
			},
		}, nil)

	output, err := s.engine.HandleActivityLogged(s.ctx, &HandleActivityLoggedInput{
		Event: event,
	})
	s.Require().NoError(err)
	s.True(output.LevelUp.LeveledUp)
	s.NotEmpty(output.LevelUpMessage)
	s.Contains(output.LevelUpMessage, "Rookie Apprentice")
}

func (s *EngineTestSuite) TestHandleActivityLoggedValidation() {
	_, err := s.engine.HandleActivityLogged(s.ctx, nil)
	s.ErrorIs(err, ErrNilEvent)

	_, err = s.engine.HandleActivityLogged(s.ctx, &HandleActivityLoggedInput{
		Event: &models.ActivityEvent{ID: "test-event-id"},
	})
	s.ErrorIs(err, ErrMissingUserID)
}

func (s *EngineTestSuite) TestChallengeCompletedRecomputesWinnerOnly() {
	s.mockStats.EXPECT().
		RecomputeStats(s.ctx, &statsService.RecomputeStatsInput{UserID: "winner-id"}).
		Return(&statsService.RecomputeStatsOutput{
			Snapshot: &models.StatsSnapshot{UserID: "winner-id"},
		}, nil)

	err := s.engine.ChallengeCompleted(s.ctx, &challengeService.CompletedNotification{
		Challenge: &models.Challenge{
			ID:           "duel-id",
			Kind:         models.ChallengeKindFriendDuel,
			Title:        "Friend Duel",
			Participants: []string{"winner-id", "loser-id"},
			WinnerID:     "winner-id",
			XPReward:     50,
		},
		UserID:   "winner-id",
		XPReward: 50,
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TestChallengeCompletedRecomputesAllGroupMembers() {
	for _, memberID := range []string{"member-1", "member-2"} {
		s.mockStats.EXPECT().
			RecomputeStats(s.ctx, &statsService.RecomputeStatsInput{UserID: memberID}).
			Return(&statsService.RecomputeStatsOutput{
				Snapshot: &models.StatsSnapshot{UserID: memberID},
			}, nil)
	}

	err := s.engine.ChallengeCompleted(s.ctx, &challengeService.CompletedNotification{
		Challenge: &models.Challenge{
			ID:           "group-challenge-id",
			Kind:         models.ChallengeKindGroupCollective,
			Title:        "Group Challenge",
			Participants: []string{"member-1", "member-2"},
			XPReward:     150,
		},
		UserID:   "member-1",
		XPReward: 150,
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TestDuelInvitedAnnouncesInvitation() {
	err := s.engine.DuelInvited(s.ctx, &challengeService.DuelInvitation{
		Challenge: &models.Challenge{
			ID:          "duel-id",
			Kind:        models.ChallengeKindFriendDuel,
			Title:       "Friend Duel",
			Description: "First to gain 3 parties wins",
		},
		ChallengerID: "challenger-id",
		TargetUserID: "target-id",
	})
	s.Require().NoError(err)

	err = s.engine.DuelInvited(s.ctx, nil)
	s.ErrorIs(err, ErrNilEvent)
}
