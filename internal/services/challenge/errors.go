package challenge

// ChallengeError is a custom error type for challenge-related errors
type ChallengeError string

// Error implements the error interface
func (e ChallengeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig         ChallengeError = "config cannot be nil"
	ErrNilChallengeRepo  ChallengeError = "challenge repository cannot be nil"
	ErrNilStatsService   ChallengeError = "stats service cannot be nil"
	ErrNilStatsRepo      ChallengeError = "stats repository cannot be nil"
	ErrNilClock          ChallengeError = "clock cannot be nil"
	ErrNilUUIDGenerator  ChallengeError = "UUID generator cannot be nil"
	ErrMissingUserID     ChallengeError = "user ID cannot be empty"
	ErrMissingGroupID    ChallengeError = "group ID cannot be empty"
	ErrNoGroupMembers    ChallengeError = "group must have at least one member"
	ErrSelfDuel          ChallengeError = "cannot duel yourself"
	ErrNotDuel           ChallengeError = "challenge is not a friend duel"
	ErrNotDuelTarget     ChallengeError = "only the challenged user can accept a duel"
	ErrChallengeTerminal ChallengeError = "challenge already completed or expired"
	ErrInvalidTarget     ChallengeError = "target must be positive"
)
