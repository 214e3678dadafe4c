package challenge

import (
	"context"
	"log/slog"
	"sync"

	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
)

// Tracker consumes the snapshot change feed and drives challenge
// progress. It owns its subscription: Start opens it, Stop closes it
// and waits for the consume loop to drain.
type Tracker struct {
	service Service
	repo    statsRepo.Repository
	logger  *slog.Logger

	mu      sync.Mutex
	sub     statsRepo.Subscription
	done    chan struct{}
	started bool
}

// NewTracker creates a tracker wired to the given challenge service
// and stats repository
func NewTracker(svc Service, repo statsRepo.Repository, logger *slog.Logger) (*Tracker, error) {
	if svc == nil {
		return nil, ErrNilStatsService
	}
	if repo == nil {
		return nil, ErrNilStatsRepo
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Tracker{
		service: svc,
		repo:    repo,
		logger:  logger,
	}, nil
}

// Start subscribes to the change feed and begins dispatching. Calling
// Start twice without Stop is an error.
func (t *Tracker) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return ChallengeError("tracker already started")
	}

	sub, err := t.repo.SubscribeSnapshotChanges(ctx, &statsRepo.SubscribeInput{})
	if err != nil {
		return err
	}

	t.sub = sub
	t.done = make(chan struct{})
	t.started = true

	go t.consume(ctx, sub, t.done)

	return nil
}

// Stop closes the subscription and waits for in-flight dispatches to
// finish
func (t *Tracker) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.started {
		return nil
	}

	err := t.sub.Close()
	<-t.done

	t.sub = nil
	t.done = nil
	t.started = false

	return err
}

func (t *Tracker) consume(ctx context.Context, sub statsRepo.Subscription, done chan struct{}) {
	defer close(done)

	for change := range sub.Events() {
		if change == nil || change.Snapshot == nil {
			continue
		}

		output, err := t.service.HandleSnapshotChange(ctx, &HandleSnapshotChangeInput{
			UserID:   change.UserID,
			Snapshot: change.Snapshot,
		})
		if err != nil {
			t.logger.Warn("failed to handle snapshot change",
				"user_id", change.UserID,
				"error", err)
			continue
		}

		if len(output.Completed) > 0 || len(output.Expired) > 0 {
			t.logger.Info("challenges resolved",
				"user_id", change.UserID,
				"completed", len(output.Completed),
				"expired", len(output.Expired))
		}
	}
}
