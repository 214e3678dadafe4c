package models

// LeaderboardEntry is one ranked row of a leaderboard view. Entries are
// ephemeral and recomputed on every view, never persisted.
type LeaderboardEntry struct {
	// UserID is the ranked user
	UserID string

	// Rank is the 1-based position, contiguous even on ties
	Rank int

	// IsCurrentUser marks the viewer's own row
	IsCurrentUser bool

	// Value is the snapshot value for the ranked category
	Value int

	// GapToAbove is the value distance to the entry ranked directly
	// above; 0 for the first entry
	GapToAbove int

	// Snapshot is the stats the entry was ranked from
	Snapshot *StatsSnapshot
}

// Leaderboard is a ranked view of a peer set for one category.
type Leaderboard struct {
	// Category is the field the entries are ranked by
	Category Category

	// Entries are the ranked rows, best first
	Entries []*LeaderboardEntry
}
