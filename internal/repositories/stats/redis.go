package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/fiestalog/fiesta/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileStatsKeyPrefix = "profile_stats:"
	publicStatsKeyPrefix  = "public_user_stats:"

	// statsChangedChannel carries snapshot change notifications
	statsChangedChannel = "stats_changed"
)

// ErrSnapshotNotFound is returned when a snapshot is not found
var ErrSnapshotNotFound = errors.New("stats snapshot not found")

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
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

func snapshotKey(store Store, userID string) (string, error) {
	switch store {
	case StoreProfile:
		return fmt.Sprintf("%s%s", profileStatsKeyPrefix, userID), nil
	case StorePublic:
		return fmt.Sprintf("%s%s", publicStatsKeyPrefix, userID), nil
	default:
		return "", fmt.Errorf("unknown store %q", store)
	}
}

// GetSnapshot retrieves a user's snapshot from one store
func (r *redisRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.StatsSnapshot, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	key, err := snapshotKey(input.Store, input.UserID)
	if err != nil {
		return nil, err
	}

	snapshotJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot models.StatsSnapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// SaveSnapshot replaces a user's snapshot in one store. The public
// store additionally publishes a change notification, so subscribers
// see each recompute exactly once per publish.
func (r *redisRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	snapshot := input.Snapshot

	if snapshot.UserID == "" {
		return errors.New("snapshot user ID cannot be empty")
	}

	key, err := snapshotKey(input.Store, snapshot.UserID)
	if err != nil {
		return err
	}

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, snapshotJSON, 0)

	if input.Store == StorePublic {
		change := &SnapshotChange{
			UserID:   snapshot.UserID,
			Snapshot: snapshot,
		}
		changeJSON, err := json.Marshal(change)
		if err != nil {
			return fmt.Errorf("failed to marshal change notification: %w", err)
		}
		pipe.Publish(ctx, statsChangedChannel, changeJSON)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// SubscribeSnapshotChanges opens a change feed for snapshot publications
func (r *redisRepository) SubscribeSnapshotChanges(ctx context.Context, input *SubscribeInput) (Subscription, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	pubsub := r.client.Subscribe(ctx, statsChangedChannel)

	// Wait for the subscription to be confirmed so no change published
	// after this call returns is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to snapshot changes: %w", err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		events: make(chan *SnapshotChange),
		done:   make(chan struct{}),
	}

	go sub.forward(input.UserID)

	return sub, nil
}

// redisSubscription adapts a Redis pub/sub channel to the Subscription
// interface, filtering by user when one was requested.
type redisSubscription struct {
	pubsub *redis.PubSub
	events chan *SnapshotChange
	done   chan struct{}

	closeOnce sync.Once
}

func (s *redisSubscription) forward(userID string) {
	defer close(s.events)

	for msg := range s.pubsub.Channel() {
		var change SnapshotChange
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			// Malformed notifications are dropped; the next recompute
			// publishes a fresh one
			continue
		}

		if userID != "" && change.UserID != userID {
			continue
		}

		select {
		case s.events <- &change:
		case <-s.done:
			return
		}
	}
}

// Events returns the channel change notifications arrive on
func (s *redisSubscription) Events() <-chan *SnapshotChange {
	return s.events
}

// Close releases the subscription
func (s *redisSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}
