package leaderboard

// LeaderboardError is a custom error type for leaderboard-related errors
type LeaderboardError string

// Error implements the error interface
func (e LeaderboardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     LeaderboardError = "config cannot be nil"
	ErrNilStatsRepo  LeaderboardError = "stats repository cannot be nil"
	ErrMissingUserID LeaderboardError = "user ID cannot be empty"
)
