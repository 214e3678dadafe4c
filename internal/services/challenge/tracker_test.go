package challenge_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fiestalog/fiesta/internal/models"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
	statsMocks "github.com/fiestalog/fiesta/internal/repositories/stats/mocks"
	"github.com/fiestalog/fiesta/internal/services/challenge"
	"github.com/fiestalog/fiesta/internal/services/challenge/mocks"
)

type TrackerTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockService   *mocks.MockService
	mockStatsRepo *statsMocks.MockRepository
	mockSub       *statsMocks.MockSubscription
	events        chan *statsRepo.SnapshotChange
	closeEvents   sync.Once
}

func (s *TrackerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.mockCtrl)
	s.mockStatsRepo = statsMocks.NewMockRepository(s.mockCtrl)
	s.mockSub = statsMocks.NewMockSubscription(s.mockCtrl)
	s.events = make(chan *statsRepo.SnapshotChange)
	s.closeEvents = sync.Once{}

	s.mockStatsRepo.EXPECT().
		SubscribeSnapshotChanges(gomock.Any(), gomock.Any()).
		Return(s.mockSub, nil).
		AnyTimes()
	s.mockSub.EXPECT().Events().Return(s.events).AnyTimes()
	s.mockSub.EXPECT().
		Close().
		DoAndReturn(func() error {
			s.closeEvents.Do(func() { close(s.events) })
			return nil
		}).
		AnyTimes()
}

func (s *TrackerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) TestDispatchesChangesToService() {
	handled := make(chan string, 1)
	s.mockService.EXPECT().
		HandleSnapshotChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *challenge.HandleSnapshotChangeInput) (*challenge.HandleSnapshotChangeOutput, error) {
			handled <- input.UserID
			return &challenge.HandleSnapshotChangeOutput{}, nil
		})

	tracker, err := challenge.NewTracker(s.mockService, s.mockStatsRepo, nil)
	s.Require().NoError(err)
	s.Require().NoError(tracker.Start(context.Background()))

	s.events <- &statsRepo.SnapshotChange{
		UserID:   "test-user-id",
		Snapshot: &models.StatsSnapshot{UserID: "test-user-id"},
	}

	select {
	case userID := <-handled:
		s.Equal("test-user-id", userID)
	case <-time.After(2 * time.Second):
		s.Fail("change was not dispatched")
	}

	s.Require().NoError(tracker.Stop())
}

func (s *TrackerTestSuite) TestSkipsMalformedChanges() {
	// nil snapshot deliveries must not reach the service
	tracker, err := challenge.NewTracker(s.mockService, s.mockStatsRepo, nil)
	s.Require().NoError(err)
	s.Require().NoError(tracker.Start(context.Background()))

	s.events <- &statsRepo.SnapshotChange{UserID: "test-user-id"}

	s.Require().NoError(tracker.Stop())
}

func (s *TrackerTestSuite) TestStartTwiceFails() {
	tracker, err := challenge.NewTracker(s.mockService, s.mockStatsRepo, nil)
	s.Require().NoError(err)
	s.Require().NoError(tracker.Start(context.Background()))

	s.Error(tracker.Start(context.Background()))

	s.Require().NoError(tracker.Stop())
}

func (s *TrackerTestSuite) TestStopWithoutStart() {
	// SetupTest expectations are AnyTimes/unused here
	tracker, err := challenge.NewTracker(s.mockService, s.mockStatsRepo, nil)
	s.Require().NoError(err)

	s.NoError(tracker.Stop())
}
