package stats

// StatsError is a custom error type for stats-related errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        StatsError = "config cannot be nil"
	ErrNilActivityRepo  StatsError = "activity repository cannot be nil"
	ErrNilStatsRepo     StatsError = "stats repository cannot be nil"
	ErrNilChallengeRepo StatsError = "challenge repository cannot be nil"
	ErrNilCalculator    StatsError = "calculator cannot be nil"
	ErrNilVolumeLookup  StatsError = "volume lookup cannot be nil"
	ErrNilClock         StatsError = "clock cannot be nil"
	ErrMissingUserID    StatsError = "user ID cannot be empty"
)
