package activity

import "github.com/fiestalog/fiesta/internal/models"

// SaveEventInput contains parameters for appending an event
type SaveEventInput struct {
	Event *models.ActivityEvent
}

// GetEventInput contains parameters for retrieving a single event
type GetEventInput struct {
	EventID string
}

// ListEventsInput contains parameters for listing a user's log
type ListEventsInput struct {
	UserID string
}

// ListEventsOutput contains a user's full log, oldest first
type ListEventsOutput struct {
	Events []*models.ActivityEvent
}
