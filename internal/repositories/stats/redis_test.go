package stats

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/fiestalog/fiesta/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 6, 5, 22, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testSnapshot(userID string) *models.StatsSnapshot {
	return &models.StatsSnapshot{
		UserID:       userID,
		TotalParties: 3,
		TotalDrinks:  6,
		TotalXP:      180,
		Level:        2,
		LevelName:    "Rookie Apprentice",
		DrinkTypes:   map[string]int{"beer": 6},
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSnapshotPerStore() {
	snapshot := s.testSnapshot("test-user-id")

	for _, store := range Stores {
		err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
			Snapshot: snapshot,
			Store:    store,
		})
		s.Require().NoError(err)

		retrieved, err := s.repo.GetSnapshot(context.Background(), &GetSnapshotInput{
			UserID: "test-user-id",
			Store:  store,
		})
		s.Require().NoError(err)
		s.Require().NotNil(retrieved)

		s.Equal(180, retrieved.TotalXP)
		s.Equal(2, retrieved.Level)
		s.Equal(map[string]int{"beer": 6}, retrieved.DrinkTypes)
	}
}

func (s *RedisRepositoryTestSuite) TestStoresAreIndependent() {
	snapshot := s.testSnapshot("test-user-id")

	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: snapshot,
		Store:    StoreProfile,
	})
	s.Require().NoError(err)

	// only the profile copy exists
	_, err = s.repo.GetSnapshot(context.Background(), &GetSnapshotInput{
		UserID: "test-user-id",
		Store:  StorePublic,
	})
	s.ErrorIs(err, ErrSnapshotNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetSnapshotNotFound() {
	_, err := s.repo.GetSnapshot(context.Background(), &GetSnapshotInput{
		UserID: "no-such-user",
		Store:  StorePublic,
	})
	s.ErrorIs(err, ErrSnapshotNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSnapshotUnknownStore() {
	err := s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: s.testSnapshot("test-user-id"),
		Store:    Store("archive"),
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestPublicSavePublishesChange() {
	sub, err := s.repo.SubscribeSnapshotChanges(context.Background(), &SubscribeInput{})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: s.testSnapshot("test-user-id"),
		Store:    StorePublic,
	})
	s.Require().NoError(err)

	select {
	case change := <-sub.Events():
		s.Require().NotNil(change)
		s.Equal("test-user-id", change.UserID)
		s.Require().NotNil(change.Snapshot)
		s.Equal(180, change.Snapshot.TotalXP)
	case <-time.After(2 * time.Second):
		s.Fail("expected a change notification")
	}
}

func (s *RedisRepositoryTestSuite) TestProfileSaveDoesNotPublish() {
	sub, err := s.repo.SubscribeSnapshotChanges(context.Background(), &SubscribeInput{})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: s.testSnapshot("test-user-id"),
		Store:    StoreProfile,
	})
	s.Require().NoError(err)

	select {
	case change := <-sub.Events():
		s.Failf("unexpected notification", "got change for %s", change.UserID)
	case <-time.After(200 * time.Millisecond):
	}
}

func (s *RedisRepositoryTestSuite) TestSubscriptionFiltersByUser() {
	sub, err := s.repo.SubscribeSnapshotChanges(context.Background(), &SubscribeInput{
		UserID: "watched-user-id",
	})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: s.testSnapshot("other-user-id"),
		Store:    StorePublic,
	})
	s.Require().NoError(err)

	err = s.repo.SaveSnapshot(context.Background(), &SaveSnapshotInput{
		Snapshot: s.testSnapshot("watched-user-id"),
		Store:    StorePublic,
	})
	s.Require().NoError(err)

	select {
	case change := <-sub.Events():
		s.Equal("watched-user-id", change.UserID)
	case <-time.After(2 * time.Second):
		s.Fail("expected a change notification")
	}
}

func (s *RedisRepositoryTestSuite) TestSubscriptionCloseIsIdempotent() {
	sub, err := s.repo.SubscribeSnapshotChanges(context.Background(), &SubscribeInput{})
	s.Require().NoError(err)

	s.NoError(sub.Close())
	s.NoError(sub.Close())
}
