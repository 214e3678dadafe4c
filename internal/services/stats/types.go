package stats

import (
	"log/slog"

	"github.com/fiestalog/fiesta/internal/common/clock"
	"github.com/fiestalog/fiesta/internal/models"
	"github.com/fiestalog/fiesta/internal/progression"
	activityRepo "github.com/fiestalog/fiesta/internal/repositories/activity"
	challengeRepo "github.com/fiestalog/fiesta/internal/repositories/challenge"
	statsRepo "github.com/fiestalog/fiesta/internal/repositories/stats"
	"github.com/fiestalog/fiesta/internal/volume"
)

// Config holds configuration for the stats service
type Config struct {
	// Repository dependencies
	ActivityRepo  activityRepo.Repository
	StatsRepo     statsRepo.Repository
	ChallengeRepo challengeRepo.Repository

	// Calculator converts the folded counts into progression fields
	Calculator *progression.Calculator

	// VolumeLookup resolves drink volumes per type and venue category
	VolumeLookup volume.Lookup

	// Badges supplies externally owned badge counts; optional, a nil
	// counter means zero badges
	Badges BadgeCounter

	// Clock supplies snapshot timestamps
	Clock clock.Clock

	// Logger, defaults to slog.Default
	Logger *slog.Logger
}

// RecomputeStatsInput contains parameters for a full recompute
type RecomputeStatsInput struct {
	// UserID is the user to recompute
	UserID string
}

// RecomputeStatsOutput contains the result of a full recompute
type RecomputeStatsOutput struct {
	// Snapshot is the recomputed, published snapshot
	Snapshot *models.StatsSnapshot

	// LevelUp describes the level change against the previous snapshot
	LevelUp progression.LevelUp
}

// GetStatsInput contains parameters for reading a snapshot
type GetStatsInput struct {
	// UserID is the user to read
	UserID string

	// Store selects the copy to read; defaults to the public store
	Store statsRepo.Store
}

// GetStatsOutput contains the result of reading a snapshot
type GetStatsOutput struct {
	// Snapshot is the stored snapshot, or a zero-stats level 1
	// snapshot when none exists
	Snapshot *models.StatsSnapshot

	// Found is false when the zero snapshot was substituted
	Found bool
}
