package models

// PartyMode represents the competitive mode a party was logged under.
// Modes change how much XP an event is worth.
type PartyMode string

const (
	// PartyModeBalanced rewards rounded parties that touch every aspect
	PartyModeBalanced PartyMode = "balanced"

	// PartyModeModeration rewards keeping the drink count low
	PartyModeModeration PartyMode = "moderation"

	// PartyModeExplorer rewards logging a location
	PartyModeExplorer PartyMode = "explorer"

	// PartyModeSocial rewards partying with companions
	PartyModeSocial PartyMode = "social"

	// PartyModeParty rewards endurance
	PartyModeParty PartyMode = "party"
)
