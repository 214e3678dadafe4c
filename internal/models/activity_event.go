package models

import (
	"time"
)

// Drink represents one kind of drink consumed during a party
type Drink struct {
	// Type is the drink type (beer, wine, spirits, ...)
	Type string

	// Brand is the brand of the drink, if recorded
	Brand string

	// Quantity is the number of units consumed
	Quantity int
}

// ActivityEvent represents one logged party. Events are owned by the
// logging feature and are immutable once aggregated; the engine only
// reads them.
type ActivityEvent struct {
	// ID is the unique identifier for this event
	ID string

	// UserID is the user who logged the event
	UserID string

	// Drinks lists the drinks consumed during the party
	Drinks []Drink

	// Location is where the party took place
	Location string

	// Category is the venue category (bar, club, house, ...)
	Category string

	// Companions lists the people the user partied with
	Companions []string

	// Mode is the competitive party mode the event was logged under
	Mode PartyMode

	// Fights is the number of fights during the party
	Fights int

	// Vomits is the number of times the user was sick
	Vomits int

	// Rejections is the number of rejections taken
	Rejections int

	// QuizQuestions is the number of quiz questions answered for this party
	QuizQuestions int

	// DurationMinutes is how long the party lasted, 0 when not tracked
	DurationMinutes int

	// Timestamp is when the party happened
	Timestamp time.Time
}

// DrinkCount returns the total number of drinks in the event. Missing
// quantities count as zero.
func (e *ActivityEvent) DrinkCount() int {
	var total int
	for _, d := range e.Drinks {
		if d.Quantity > 0 {
			total += d.Quantity
		}
	}
	return total
}
