package engine

import (
	"github.com/fiestalog/fiesta/internal/models"
	"github.com/fiestalog/fiesta/internal/progression"
)

// HandleActivityLoggedInput contains a newly logged activity event
type HandleActivityLoggedInput struct {
	// Event is the activity to ingest
	Event *models.ActivityEvent
}

// HandleActivityLoggedOutput contains the result of ingesting an event
type HandleActivityLoggedOutput struct {
	// Snapshot is the recomputed, published snapshot
	Snapshot *models.StatsSnapshot

	// LevelUp describes the level change caused by this event
	LevelUp progression.LevelUp

	// LevelUpMessage is a user-facing announcement, empty when no
	// level was gained
	LevelUpMessage string
}
