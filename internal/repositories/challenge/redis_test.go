package challenge

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

func (s *RedisRepositoryTestSuite) testChallenge(id string) *models.Challenge {
	return &models.Challenge{
		ID:           id,
		Kind:         models.ChallengeKindPersonalWeekly,
		Title:        "Weekly Socializer",
		Field:        models.CategoryParties,
		Target:       3,
		XPReward:     60,
		Status:       models.ChallengeStatusActive,
		Participants: []string{"test-user-id"},
		Baselines:    map[string]int{"test-user-id": 5},
		Progress:     map[string]int{"test-user-id": 0},
		CreatedAt:    s.testNow,
		ExpiresAt:    s.testNow.Add(7 * 24 * time.Hour),
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetChallenge() {
	challenge := s.testChallenge("test-challenge-id")

	err := s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{
		Challenge: challenge,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetChallenge(context.Background(), &GetChallengeInput{
		ChallengeID: "test-challenge-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-challenge-id", retrieved.ID)
	s.Equal(models.ChallengeKindPersonalWeekly, retrieved.Kind)
	s.Equal(models.CategoryParties, retrieved.Field)
	s.Equal(map[string]int{"test-user-id": 5}, retrieved.Baselines)
	s.True(retrieved.ExpiresAt.Equal(s.testNow.Add(7 * 24 * time.Hour)))
}

func (s *RedisRepositoryTestSuite) TestGetChallengeNotFound() {
	_, err := s.repo.GetChallenge(context.Background(), &GetChallengeInput{
		ChallengeID: "no-such-challenge",
	})
	s.ErrorIs(err, ErrChallengeNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveChallengeMissingID() {
	challenge := s.testChallenge("")

	err := s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{
		Challenge: challenge,
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestListChallengesForUserIndexesAllParticipants() {
	duel := s.testChallenge("duel-id")
	duel.Kind = models.ChallengeKindFriendDuel
	duel.Participants = []string{"challenger-id", "target-id"}

	err := s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{
		Challenge: duel,
	})
	s.Require().NoError(err)

	for _, userID := range duel.Participants {
		listed, err := s.repo.ListChallengesForUser(context.Background(), &ListChallengesForUserInput{
			UserID: userID,
		})
		s.Require().NoError(err)
		s.Require().Len(listed.Challenges, 1)
		s.Equal("duel-id", listed.Challenges[0].ID)
	}
}

func (s *RedisRepositoryTestSuite) TestListChallengesOrderedOldestFirst() {
	older := s.testChallenge("older-id")
	newer := s.testChallenge("newer-id")
	newer.CreatedAt = s.testNow.Add(time.Hour)

	s.Require().NoError(s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{Challenge: newer}))
	s.Require().NoError(s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{Challenge: older}))

	listed, err := s.repo.ListChallengesForUser(context.Background(), &ListChallengesForUserInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)
	s.Require().Len(listed.Challenges, 2)
	s.Equal("older-id", listed.Challenges[0].ID)
	s.Equal("newer-id", listed.Challenges[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListChallengesForGroup() {
	groupChallenge := s.testChallenge("group-challenge-id")
	groupChallenge.Kind = models.ChallengeKindGroupCollective
	groupChallenge.GroupID = "test-group-id"
	groupChallenge.Participants = []string{"member-1", "member-2"}

	err := s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{
		Challenge: groupChallenge,
	})
	s.Require().NoError(err)

	listed, err := s.repo.ListChallengesForGroup(context.Background(), &ListChallengesForGroupInput{
		GroupID: "test-group-id",
	})
	s.Require().NoError(err)
	s.Require().Len(listed.Challenges, 1)
	s.Equal("group-challenge-id", listed.Challenges[0].ID)

	empty, err := s.repo.ListChallengesForGroup(context.Background(), &ListChallengesForGroupInput{
		GroupID: "other-group-id",
	})
	s.Require().NoError(err)
	s.Empty(empty.Challenges)
}

func (s *RedisRepositoryTestSuite) TestSaveChallengeUpdatesInPlace() {
	challenge := s.testChallenge("test-challenge-id")
	s.Require().NoError(s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{Challenge: challenge}))

	challenge.Status = models.ChallengeStatusCompleted
	challenge.Progress["test-user-id"] = 3
	s.Require().NoError(s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{Challenge: challenge}))

	listed, err := s.repo.ListChallengesForUser(context.Background(), &ListChallengesForUserInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)
	s.Require().Len(listed.Challenges, 1)
	s.Equal(models.ChallengeStatusCompleted, listed.Challenges[0].Status)
	s.Equal(3, listed.Challenges[0].Progress["test-user-id"])
}

func (s *RedisRepositoryTestSuite) TestCountCompletedChallenges() {
	completed := s.testChallenge("completed-id")
	completed.Status = models.ChallengeStatusCompleted

	active := s.testChallenge("active-id")

	wonDuel := s.testChallenge("won-duel-id")
	wonDuel.Kind = models.ChallengeKindFriendDuel
	wonDuel.Status = models.ChallengeStatusCompleted
	wonDuel.Participants = []string{"test-user-id", "rival-id"}
	wonDuel.WinnerID = "test-user-id"

	lostDuel := s.testChallenge("lost-duel-id")
	lostDuel.Kind = models.ChallengeKindFriendDuel
	lostDuel.Status = models.ChallengeStatusCompleted
	lostDuel.Participants = []string{"test-user-id", "rival-id"}
	lostDuel.WinnerID = "rival-id"

	for _, c := range []*models.Challenge{completed, active, wonDuel, lostDuel} {
		s.Require().NoError(s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{Challenge: c}))
	}

	// the lost duel and the still-active challenge earn no credit
	counted, err := s.repo.CountCompletedChallenges(context.Background(), &CountCompletedChallengesInput{
		UserID: "test-user-id",
	})
	s.Require().NoError(err)
	s.Equal(2, counted.Count)

	rivalCounted, err := s.repo.CountCompletedChallenges(context.Background(), &CountCompletedChallengesInput{
		UserID: "rival-id",
	})
	s.Require().NoError(err)
	s.Equal(1, rivalCounted.Count)
}
