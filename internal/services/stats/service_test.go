package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/fiestalog/fiesta/internal/common/clock/mocks"
	"github.com/fiestalog/fiesta/internal/models"
	"github.com/fiestalog/fiesta/internal/progression"
	activityRepo "github.com/fiestalog/fiesta/internal/repositories/activity"
	activityMocks "github.com/fiestalog/fiesta/internal/repositories/activity/mocks"
	challengeRepo "github.com/fiestalog/fiesta/internal/repositories/challenge"
	challengeMocks "github.com/fiestalog/fiesta/internal/repositories/challenge/mocks"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
	statsMocks "github.com/fiestalog/fiesta/internal/repositories/stats/mocks"
	"github.com/fiestalog/fiesta/internal/volume"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockActivityRepo  *activityMocks.MockRepository
	mockStatsRepo     *statsMocks.MockRepository
	mockChallengeRepo *challengeMocks.MockRepository
	mockClock         *clockMocks.MockClock
	statsService      Service
	ctx               context.Context

	// Test data
	testTime   time.Time
	testUserID string
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockActivityRepo = activityMocks.NewMockRepository(s.mockCtrl)
	s.mockStatsRepo = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockChallengeRepo = challengeMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2026, 6, 5, 22, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"

	svc, err := NewService(&Config{
		ActivityRepo:  s.mockActivityRepo,
		StatsRepo:     s.mockStatsRepo,
		ChallengeRepo: s.mockChallengeRepo,
		Calculator:    progression.New(nil, nil),
		VolumeLookup:  volume.NewTable(),
		Clock:         s.mockClock,
	})
	s.Require().NoError(err)
	s.statsService = svc
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) testEvent(id string, drinks int) *models.ActivityEvent {
	event := &models.ActivityEvent{
		ID:        id,
		UserID:    s.testUserID,
		Location:  "Kater Blau",
		Category:  "club",
		Timestamp: s.testTime,
	}
	for i := 0; i < drinks; i++ {
		event.Drinks = append(event.Drinks, models.Drink{Type: "beer", Brand: "Augustiner", Quantity: 1})
	}
	return event
}

// expectNoPreviousSnapshot stubs the level-up baseline read
func (s *StatsServiceTestSuite) expectNoPreviousSnapshot() {
	s.mockStatsRepo.EXPECT().
		GetSnapshot(s.ctx, &statsRepo.GetSnapshotInput{
			UserID: s.testUserID,
			Store:  statsRepo.StorePublic,
		}).
		Return(nil, statsRepo.ErrSnapshotNotFound)
}

func (s *StatsServiceTestSuite) expectCompletedChallenges(count int) {
	s.mockChallengeRepo.EXPECT().
		CountCompletedChallenges(s.ctx, &challengeRepo.CountCompletedChallengesInput{
			UserID: s.testUserID,
		}).
		Return(&challengeRepo.CountCompletedChallengesOutput{Count: count}, nil)
}

// expectPublishToAllStores expects one successful write per store
func (s *StatsServiceTestSuite) expectPublishToAllStores() {
	published := map[statsRepo.Store]bool{}
	s.mockStatsRepo.EXPECT().
		SaveSnapshot(s.ctx, gomock.AssignableToTypeOf(&statsRepo.SaveSnapshotInput{})).
		Times(len(statsRepo.Stores)).
		DoAndReturn(func(_ context.Context, input *statsRepo.SaveSnapshotInput) error {
			s.Equal(s.testUserID, input.Snapshot.UserID)
			s.False(published[input.Store], "store %s published twice", input.Store)
			published[input.Store] = true
			return nil
		})
}

func (s *StatsServiceTestSuite) TestRecomputeStatsFromFullLog() {
	s.expectNoPreviousSnapshot()
	s.mockActivityRepo.EXPECT().
		ListEvents(s.ctx, &activityRepo.ListEventsInput{UserID: s.testUserID}).
		Return(&activityRepo.ListEventsOutput{Events: []*models.ActivityEvent{
			s.testEvent("event-1", 2),
			s.testEvent("event-2", 2),
			s.testEvent("event-3", 2),
		}}, nil)
	s.expectCompletedChallenges(0)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectPublishToAllStores()

	output, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Snapshot)

	// 3 parties * 50 + 6 drinks * 5
	s.Equal(3, output.Snapshot.TotalParties)
	s.Equal(6, output.Snapshot.TotalDrinks)
	s.Equal(180, output.Snapshot.TotalXP)
	s.Equal(2, output.Snapshot.Level)
	s.Equal(1, output.Snapshot.UniqueLocations)
	s.Equal(map[string]int{"beer": 6}, output.Snapshot.DrinkTypes)
	// 6 pints at 50cl
	s.Equal(300.0, output.Snapshot.TotalVolume)
	s.Equal("beer", output.Snapshot.MostConsumed.Type)
	s.Equal("Augustiner", output.Snapshot.MostConsumed.Brand)
	s.True(output.Snapshot.UpdatedAt.Equal(s.testTime))

	s.True(output.LevelUp.LeveledUp)
	s.Equal(1, output.LevelUp.OldLevel)
	s.Equal(2, output.LevelUp.NewLevel)
}

func (s *StatsServiceTestSuite) TestRecomputeStatsIncludesChallengeCredit() {
	s.expectNoPreviousSnapshot()
	s.mockActivityRepo.EXPECT().
		ListEvents(s.ctx, gomock.Any()).
		Return(&activityRepo.ListEventsOutput{Events: []*models.ActivityEvent{
			s.testEvent("event-1", 2),
		}}, nil)
	s.expectCompletedChallenges(2)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectPublishToAllStores()

	output, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)

	// 50 + 2*5 + 2 challenges * 25
	s.Equal(2, output.Snapshot.TotalChallenges)
	s.Equal(110, output.Snapshot.TotalXP)
}

func (s *StatsServiceTestSuite) TestRecomputeStatsEmptyLog() {
	s.expectNoPreviousSnapshot()
	s.mockActivityRepo.EXPECT().
		ListEvents(s.ctx, gomock.Any()).
		Return(&activityRepo.ListEventsOutput{Events: nil}, nil)
	s.expectCompletedChallenges(0)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectPublishToAllStores()

	output, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)

	s.Equal(0, output.Snapshot.TotalXP)
	s.Equal(1, output.Snapshot.Level)
	s.False(output.LevelUp.LeveledUp)
}

func (s *StatsServiceTestSuite) TestRecomputeStatsIsIdempotent() {
	// Tied brand quantities must not make the winning brand flap
	// between recomputes of the same log.
	tied := s.testEvent("event-3", 0)
	tied.Drinks = []models.Drink{
		{Type: "beer", Brand: "Corona", Quantity: 5},
		{Type: "beer", Brand: "Heineken", Quantity: 5},
	}

	for i := 0; i < 2; i++ {
		s.expectNoPreviousSnapshot()
		s.mockActivityRepo.EXPECT().
			ListEvents(s.ctx, gomock.Any()).
			Return(&activityRepo.ListEventsOutput{Events: []*models.ActivityEvent{
				s.testEvent("event-1", 2),
				s.testEvent("event-2", 2),
				tied,
			}}, nil)
		s.expectCompletedChallenges(0)
		s.mockClock.EXPECT().Now().Return(s.testTime)
		s.expectPublishToAllStores()
	}

	first, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	second, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{UserID: s.testUserID})
	s.Require().NoError(err)

	// Same log in, same snapshot out
	s.Equal(first.Snapshot.TotalXP, second.Snapshot.TotalXP)
	s.Equal(first.Snapshot.TotalVolume, second.Snapshot.TotalVolume)
	s.Equal(first.Snapshot.DrinkTypes, second.Snapshot.DrinkTypes)
	s.Equal(first.Snapshot.MostConsumed, second.Snapshot.MostConsumed)
	s.Equal("Corona", first.Snapshot.MostConsumed.Brand)
}

func (s *StatsServiceTestSuite) TestRecomputeStatsPartialPublishAttemptsBothStores() {
	s.expectNoPreviousSnapshot()
	s.mockActivityRepo.EXPECT().
		ListEvents(s.ctx, gomock.Any()).
		Return(&activityRepo.ListEventsOutput{Events: []*models.ActivityEvent{
			s.testEvent("event-1", 2),
		}}, nil)
	s.expectCompletedChallenges(0)
	s.mockClock.EXPECT().Now().Return(s.testTime)

	// One store write fails; the other must still be attempted
	published := map[statsRepo.Store]bool{}
	s.mockStatsRepo.EXPECT().
		SaveSnapshot(s.ctx, gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, input *statsRepo.SaveSnapshotInput) error {
			published[input.Store] = true
			if input.Store == statsRepo.StoreProfile {
				return errors.New("connection reset")
			}
			return nil
		})

	_, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{
		UserID: s.testUserID,
	})
	s.Require().Error(err)
	s.True(published[statsRepo.StoreProfile])
	s.True(published[statsRepo.StorePublic])
}

func (s *StatsServiceTestSuite) TestRecomputeStatsCaseInsensitiveLocations() {
	s.expectNoPreviousSnapshot()

	first := s.testEvent("event-1", 1)
	first.Location = "Berghain"
	second := s.testEvent("event-2", 1)
	second.Location = "berghain"
	third := s.testEvent("event-3", 1)
	third.Location = "Sisyphos"

	s.mockActivityRepo.EXPECT().
		ListEvents(s.ctx, gomock.Any()).
		Return(&activityRepo.ListEventsOutput{Events: []*models.ActivityEvent{first, second, third}}, nil)
	s.expectCompletedChallenges(0)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectPublishToAllStores()

	output, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)
	s.Equal(2, output.Snapshot.UniqueLocations)
}

func (s *StatsServiceTestSuite) TestRecomputeStatsMostConsumedTieBreak() {
	s.expectNoPreviousSnapshot()

	event := s.testEvent("event-1", 0)
	event.Drinks = []models.Drink{
		{Type: "wine", Quantity: 3},
		{Type: "beer", Quantity: 3},
	}

	s.mockActivityRepo.EXPECT().
		ListEvents(s.ctx, gomock.Any()).
		Return(&activityRepo.ListEventsOutput{Events: []*models.ActivityEvent{event}}, nil)
	s.expectCompletedChallenges(0)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectPublishToAllStores()

	output, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)

	// Ties go to the first-seen type
	s.Equal("wine", output.Snapshot.MostConsumed.Type)
	s.Equal(3, output.Snapshot.MostConsumed.Quantity)
}

func (s *StatsServiceTestSuite) TestRecomputeStatsMostConsumedBrandTieBreak() {
	s.expectNoPreviousSnapshot()

	event := s.testEvent("event-1", 0)
	event.Drinks = []models.Drink{
		{Type: "beer", Brand: "Heineken", Quantity: 2},
		{Type: "beer", Brand: "Corona", Quantity: 2},
	}

	s.mockActivityRepo.EXPECT().
		ListEvents(s.ctx, gomock.Any()).
		Return(&activityRepo.ListEventsOutput{Events: []*models.ActivityEvent{event}}, nil)
	s.expectCompletedChallenges(0)
	s.mockClock.EXPECT().Now().Return(s.testTime)
	s.expectPublishToAllStores()

	output, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{
		UserID: s.testUserID,
	})
	s.Require().NoError(err)

	// Tied brands go to the first-seen brand as well
	s.Equal("Heineken", output.Snapshot.MostConsumed.Brand)
}

func (s *StatsServiceTestSuite) TestRecomputeStatsMissingUserID() {
	_, err := s.statsService.RecomputeStats(s.ctx, &RecomputeStatsInput{})
	s.ErrorIs(err, ErrMissingUserID)
}

func (s *StatsServiceTestSuite) TestGetStatsFound() {
	s.mockStatsRepo.EXPECT().
		GetSnapshot(s.ctx, &statsRepo.GetSnapshotInput{
			UserID: s.testUserID,
			Store:  statsRepo.StorePublic,
		}).
		Return(&models.StatsSnapshot{UserID: s.testUserID, TotalXP: 180, Level: 2}, nil)

	output, err := s.statsService.GetStats(s.ctx, &GetStatsInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal(180, output.Snapshot.TotalXP)
}

func (s *StatsServiceTestSuite) TestGetStatsSubstitutesZeroSnapshot() {
	s.mockStatsRepo.EXPECT().
		GetSnapshot(s.ctx, gomock.Any()).
		Return(nil, statsRepo.ErrSnapshotNotFound)

	output, err := s.statsService.GetStats(s.ctx, &GetStatsInput{UserID: "brand-new-user"})
	s.Require().NoError(err)
	s.False(output.Found)
	s.Require().NotNil(output.Snapshot)
	s.Equal("brand-new-user", output.Snapshot.UserID)
	s.Equal(0, output.Snapshot.TotalXP)
	s.Equal(1, output.Snapshot.Level)
	s.Equal("Rookie Novice", output.Snapshot.LevelName)
}

func (s *StatsServiceTestSuite) TestGetStatsPropagatesRepoErrors() {
	s.mockStatsRepo.EXPECT().
		GetSnapshot(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := s.statsService.GetStats(s.ctx, &GetStatsInput{UserID: s.testUserID})
	s.Require().Error(err)
}
