package stats

import "github.com/fiestalog/fiesta/internal/models"

// Store identifies one denormalized snapshot copy.
type Store string

const (
	// StoreProfile is the snapshot embedded in the user's profile record
	StoreProfile Store = "profile"

	// StorePublic is the public leaderboard record. Saving to it also
	// publishes a change notification.
	StorePublic Store = "public"
)

// Stores lists every store holding a snapshot copy, in publish order.
var Stores = []Store{StoreProfile, StorePublic}

// GetSnapshotInput contains parameters for retrieving a snapshot
type GetSnapshotInput struct {
	UserID string
	Store  Store
}

// SaveSnapshotInput contains parameters for replacing a snapshot
type SaveSnapshotInput struct {
	Snapshot *models.StatsSnapshot
	Store    Store
}

// SubscribeInput contains parameters for opening a change feed.
// An empty UserID subscribes to every user's changes.
type SubscribeInput struct {
	UserID string
}

// SnapshotChange is one change feed notification.
type SnapshotChange struct {
	// UserID is the user whose snapshot changed
	UserID string

	// Snapshot is the newly published snapshot
	Snapshot *models.StatsSnapshot
}
