package models

// Category selects which snapshot field a leaderboard is ranked by.
// Unknown categories fall back to CategoryLevel.
type Category string

const (
	// CategoryLevel ranks by level
	CategoryLevel Category = "level"

	// CategoryXP ranks by total experience
	CategoryXP Category = "xp"

	// CategoryParties ranks by party count
	CategoryParties Category = "parties"

	// CategoryBadges ranks by badge count
	CategoryBadges Category = "badges"

	// CategoryChallenges ranks by completed challenge count
	CategoryChallenges Category = "challenges"

	// CategoryDrinks ranks by drink count
	CategoryDrinks Category = "drinks"

	// CategoryLocations tracks unique locations. Challenges use it;
	// leaderboards treat it as unknown and rank by level.
	CategoryLocations Category = "locations"
)
