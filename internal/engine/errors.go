package engine

// EngineError is a typed error for engine failures
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = EngineError("config cannot be nil")

	// ErrNilActivityRepo is returned when the activity repository is nil
	ErrNilActivityRepo = EngineError("activity repository cannot be nil")

	// ErrNilStatsService is returned when the stats service is nil
	ErrNilStatsService = EngineError("stats service cannot be nil")

	// ErrNilNotifier is returned when the notifier service is nil
	ErrNilNotifier = EngineError("notifier service cannot be nil")

	// ErrNilTracker is returned when the challenge tracker is nil
	ErrNilTracker = EngineError("tracker cannot be nil")

	// ErrNilEvent is returned when an event or notification is nil
	ErrNilEvent = EngineError("event cannot be nil")

	// ErrMissingUserID is returned when an event has no user id
	ErrMissingUserID = EngineError("user id cannot be empty")
)
