package progression

import (
	"fmt"
)

// tierWidth is the number of levels each named tier spans. The last
// tier is open-ended and cycles through its rank labels.
const tierWidth = 10

type tier struct {
	// floor is the last level below the tier
	floor int

	// label prefixes every rank name in the tier
	label string

	// ranks are the ten ordered rank labels within the tier
	ranks [tierWidth]string
}

// Levels map onto a bounded, human-distinct name space instead of an
// unbounded "Level N". Six tiers of ten levels, the sixth open-ended.
var tiers = []tier{
	{floor: 0, label: "Rookie", ranks: [tierWidth]string{
		"Novice", "Apprentice", "Regular", "Connoisseur", "Expert",
		"Veteran", "Master", "Champion", "Legend", "Party God",
	}},
	{floor: 10, label: "Bronze", ranks: [tierWidth]string{
		"Barfly", "Night Owl", "Socialite", "Showstopper", "Firestarter",
		"Crowd Favorite", "Headliner", "Ringleader", "Icon", "Royalty",
	}},
	{floor: 20, label: "Silver", ranks: [tierWidth]string{
		"Wanderer", "Navigator", "Trailblazer", "Pathfinder", "Voyager",
		"Globetrotter", "Pioneer", "Conqueror", "Sovereign", "Luminary",
	}},
	{floor: 30, label: "Gold", ranks: [tierWidth]string{
		"Challenger", "Contender", "Gladiator", "Warrior", "Duelist",
		"Vanquisher", "Warlord", "Overlord", "Colossus", "Titan",
	}},
	{floor: 40, label: "Platinum", ranks: [tierWidth]string{
		"Ace", "Virtuoso", "Maestro", "Prodigy", "Savant",
		"Oracle", "Sage", "Mythmaker", "Immortal", "Eternal",
	}},
	{floor: 50, label: "Legendary", ranks: [tierWidth]string{
		"Comet", "Meteor", "Eclipse", "Nova", "Supernova",
		"Nebula", "Galaxy", "Cosmos", "Infinity", "Deity",
	}},
}

// LevelName returns the display rank for a level, "{tier} {rank}". It
// degrades gracefully for arbitrarily large levels: the last tier never
// runs out, its rank labels cycle.
func (c *Calculator) LevelName(level int) string {
	if level < 1 {
		level = 1
	}

	t := tiers[len(tiers)-1]
	for i := len(tiers) - 1; i >= 0; i-- {
		if level > tiers[i].floor {
			t = tiers[i]
			break
		}
	}

	rank := t.ranks[(level-t.floor-1)%tierWidth]
	return fmt.Sprintf("%s %s", t.label, rank)
}
