package activity

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
	eventKeyPrefix      = "activity_event:"
	userEventsKeyPrefix = "user_events:"
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("activity event not found")

// Config holds configuration for the Redis activity repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed activity repository
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

// SaveEvent appends an event to a user's log
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	event := input.Event

	if event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	if event.UserID == "" {
		return errors.New("event user ID cannot be empty")
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Save the document and index it under the owning user
	pipe := r.client.Pipeline()

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, event.ID)
	pipe.Set(ctx, eventKey, eventJSON, 0)

	userEventsKey := fmt.Sprintf("%s%s", userEventsKeyPrefix, event.UserID)
	pipe.SAdd(ctx, userEventsKey, event.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// GetEvent retrieves a single event by ID
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.ActivityEvent, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	eventJSON, err := r.client.Get(ctx, eventKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.ActivityEvent
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// ListEvents retrieves a user's full log ordered by timestamp
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	userEventsKey := fmt.Sprintf("%s%s", userEventsKeyPrefix, input.UserID)
	eventIDs, err := r.client.SMembers(ctx, userEventsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs for user: %w", err)
	}

	if len(eventIDs) == 0 {
		return &ListEventsOutput{
			Events: []*models.ActivityEvent{},
		}, nil
	}

	// Fetch all event documents in one pipeline round trip
	pipe := r.client.Pipeline()
	eventCommands := make(map[string]*redis.StringCmd)

	for _, eventID := range eventIDs {
		eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, eventID)
		eventCommands[eventID] = pipe.Get(ctx, eventKey)
	}

	// Exec surfaces redis.Nil when an indexed event was deleted; the
	// per-command loop below skips those
	_, err = pipe.Exec(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]*models.ActivityEvent, 0, len(eventIDs))
	for eventID, cmd := range eventCommands {
		eventJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Event was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
		}

		var event models.ActivityEvent
		if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", eventID, err)
		}

		events = append(events, &event)
	}

	// The set index has no order; recomputes expect the log oldest first
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})

	return &ListEventsOutput{
		Events: events,
	}, nil
}
