package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/fiestalog/fiesta/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	challengeKeyPrefix       = "challenge:"
	userChallengesKeyPrefix  = "user_challenges:"
	groupChallengesKeyPrefix = "group_challenges:"
)

// ErrChallengeNotFound is returned when a challenge is not found
var ErrChallengeNotFound = errors.New("challenge not found")

// Config holds configuration for the Redis challenge repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed challenge repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveChallenge persists a challenge and its participant indexes
func (r *redisRepository) SaveChallenge(ctx context.Context, input *SaveChallengeInput) error {
	if input == nil || input.Challenge == nil {
		return errors.New("input and challenge cannot be nil")
	}

	c := input.Challenge

	if c.ID == "" {
		return errors.New("challenge ID cannot be empty")
	}

	challengeJSON, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	// Write the document and every index in one round trip
	pipe := r.client.Pipeline()

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, c.ID)
	pipe.Set(ctx, challengeKey, challengeJSON, 0)

	for _, userID := range c.Participants {
		userKey := fmt.Sprintf("%s%s", userChallengesKeyPrefix, userID)
		pipe.SAdd(ctx, userKey, c.ID)
	}

	if c.GroupID != "" {
		groupKey := fmt.Sprintf("%s%s", groupChallengesKeyPrefix, c.GroupID)
		pipe.SAdd(ctx, groupKey, c.ID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	return nil
}

// GetChallenge retrieves a challenge by ID
func (r *redisRepository) GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, input.ChallengeID)
	challengeJSON, err := r.client.Get(ctx, challengeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var c models.Challenge
	if err := json.Unmarshal([]byte(challengeJSON), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &c, nil
}

// ListChallengesForUser retrieves every challenge a user participates in
func (r *redisRepository) ListChallengesForUser(ctx context.Context, input *ListChallengesForUserInput) (*ListChallengesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userKey := fmt.Sprintf("%s%s", userChallengesKeyPrefix, input.UserID)
	return r.listByIndex(ctx, userKey)
}

// ListChallengesForGroup retrieves every challenge owned by a group
func (r *redisRepository) ListChallengesForGroup(ctx context.Context, input *ListChallengesForGroupInput) (*ListChallengesOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	groupKey := fmt.Sprintf("%s%s", groupChallengesKeyPrefix, input.GroupID)
	return r.listByIndex(ctx, groupKey)
}

func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) (*ListChallengesOutput, error) {
	challengeIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge IDs: %w", err)
	}

	if len(challengeIDs) == 0 {
		return &ListChallengesOutput{
			Challenges: []*models.Challenge{},
		}, nil
	}

	pipe := r.client.Pipeline()
	challengeCommands := make(map[string]*redis.StringCmd)

	for _, challengeID := range challengeIDs {
		challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, challengeID)
		challengeCommands[challengeID] = pipe.Get(ctx, challengeKey)
	}

	// Exec surfaces redis.Nil when an indexed challenge was deleted;
	// the per-command loop below skips those
	_, err = pipe.Exec(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get challenges: %w", err)
	}

	challenges := make([]*models.Challenge, 0, len(challengeIDs))
	for challengeID, cmd := range challengeCommands {
		challengeJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Challenge was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get challenge %s: %w", challengeID, err)
		}

		var c models.Challenge
		if err := json.Unmarshal([]byte(challengeJSON), &c); err != nil {
			return nil, fmt.Errorf("failed to unmarshal challenge %s: %w", challengeID, err)
		}

		challenges = append(challenges, &c)
	}

	// Set indexes have no order; present oldest first
	sort.SliceStable(challenges, func(i, j int) bool {
		return challenges[i].CreatedAt.Before(challenges[j].CreatedAt)
	})

	return &ListChallengesOutput{
		Challenges: challenges,
	}, nil
}

// CountCompletedChallenges counts the challenges a user has earned
// credit for. Duels only credit the winner; other kinds credit every
// participant.
func (r *redisRepository) CountCompletedChallenges(ctx context.Context, input *CountCompletedChallengesInput) (*CountCompletedChallengesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	output, err := r.ListChallengesForUser(ctx, &ListChallengesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	count := 0
	for _, c := range output.Challenges {
		if c.Status != models.ChallengeStatusCompleted {
			continue
		}
		if c.Kind == models.ChallengeKindFriendDuel && c.WinnerID != input.UserID {
			continue
		}
		count++
	}

	return &CountCompletedChallengesOutput{
		Count: count,
	}, nil
}
