package progression

import (
	"log/slog"
	"math"

	"github.com/fiestalog/fiesta/internal/models"
)

// Calculator converts activity counts into experience points and levels.
// Every method is a total, side-effect-free function: bad input degrades
// to zero values, never to a panic.
type Calculator struct {
	cfg   Config
	modes map[models.PartyMode]ModeRule
}

// New creates a calculator. A nil config uses the documented defaults; a
// missing level divisor falls back to DefaultLevelDivisor with a warning.
func New(cfg *Config, logger *slog.Logger) *Calculator {
	if cfg == nil {
		cfg = &Config{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	resolved := *cfg
	resolved.applyDefaults()

	if resolved.LevelDivisor <= 0 {
		logger.Warn("level divisor missing, using default",
			"default", DefaultLevelDivisor)
		resolved.LevelDivisor = DefaultLevelDivisor
	}

	modes := resolved.Modes
	if modes == nil {
		modes = defaultModeRules()
	}

	return &Calculator{
		cfg:   resolved,
		modes: modes,
	}
}

func defaultModeRules() map[models.PartyMode]ModeRule {
	return map[models.PartyMode]ModeRule{
		models.PartyModeBalanced: {
			Multiplier: 1.0,
			Bonus: func(cfg *Config, event *models.ActivityEvent) int {
				aspects := 0
				if event.DrinkCount() > 0 {
					aspects++
				}
				if event.Location != "" {
					aspects++
				}
				if len(event.Companions) > 0 {
					aspects++
				}
				if event.DurationMinutes > 0 {
					aspects++
				}
				return aspects * cfg.AspectBonus
			},
		},
		models.PartyModeModeration: {
			Multiplier: 1.1,
			Bonus: func(cfg *Config, event *models.ActivityEvent) int {
				if event.DrinkCount() <= cfg.ModerationMaxDrinks {
					return cfg.ModerationBonus
				}
				return 0
			},
		},
		models.PartyModeExplorer: {
			Multiplier: 1.2,
			Bonus: func(cfg *Config, event *models.ActivityEvent) int {
				if event.Location != "" {
					return cfg.ExplorerBonus
				}
				return 0
			},
		},
		models.PartyModeSocial: {
			Multiplier: 1.15,
			Bonus: func(cfg *Config, event *models.ActivityEvent) int {
				return len(event.Companions) * cfg.CompanionBonus
			},
		},
		models.PartyModeParty: {
			Multiplier: 1.25,
			Bonus: func(cfg *Config, event *models.ActivityEvent) int {
				if event.DrinkCount() >= cfg.EnduranceDrinks {
					return cfg.EnduranceBonus
				}
				return 0
			},
		},
	}
}

// PartyXP returns the XP one event is worth under its party mode: base
// XP plus per-drink XP plus the mode's conditional bonus, scaled by the
// mode multiplier and floored. Unknown modes get multiplier 1.0 and no
// bonus.
func (c *Calculator) PartyXP(event *models.ActivityEvent, mode models.PartyMode) int {
	if event == nil {
		return 0
	}

	xp := c.cfg.XPPerParty + event.DrinkCount()*c.cfg.XPPerDrink

	multiplier := 1.0
	if rule, ok := c.modes[mode]; ok {
		if rule.Bonus != nil {
			xp += rule.Bonus(&c.cfg, event)
		}
		if rule.Multiplier > 0 {
			multiplier = rule.Multiplier
		}
	}

	return int(math.Floor(float64(xp) * multiplier))
}

// ActivityCounts are the inputs to TotalXP, one count per contribution.
type ActivityCounts struct {
	// Parties is the total party count
	Parties int

	// Drinks is the total drink count
	Drinks int

	// Badges is the total badge count
	Badges int

	// Challenges is the total completed challenge count
	Challenges int

	// QuizQuestions is the total answered quiz question count
	QuizQuestions int
}

// Modifiers are optional multiplicative XP incentives. They compound
// multiplicatively over the summed total.
type Modifiers struct {
	// GroupActivity applies the group multiplier
	GroupActivity bool

	// Weekend applies the weekend multiplier
	Weekend bool

	// Tournament applies the tournament multiplier
	Tournament bool
}

// TotalXP returns the weighted sum of the five activity contributions,
// scaled by any active modifiers and floored.
func (c *Calculator) TotalXP(counts ActivityCounts, mods Modifiers) int {
	total := counts.Parties*c.cfg.XPPerParty +
		counts.Drinks*c.cfg.XPPerDrink +
		counts.Badges*c.cfg.XPPerBadge +
		counts.Challenges*c.cfg.XPPerChallenge +
		counts.QuizQuestions*c.cfg.XPPerQuizAnswer

	multiplier := 1.0
	if mods.GroupActivity {
		multiplier *= c.cfg.GroupMultiplier
	}
	if mods.Weekend {
		multiplier *= c.cfg.WeekendMultiplier
	}
	if mods.Tournament {
		multiplier *= c.cfg.TournamentMultiplier
	}

	return int(math.Floor(float64(total) * multiplier))
}

// Level returns the level for an XP total: floor(sqrt(xp/divisor)) + 1,
// never below 1. Negative XP counts as zero.
func (c *Calculator) Level(xp int) int {
	if xp <= 0 {
		return 1
	}
	level := int(math.Floor(math.Sqrt(float64(xp)/float64(c.cfg.LevelDivisor)))) + 1
	if level < 1 {
		return 1
	}
	return level
}

// XPForLevel returns the XP threshold at which a level starts, the
// inverse of Level. Levels at or below 1 start at 0.
func (c *Calculator) XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * c.cfg.LevelDivisor
}

// Progress describes where an XP total sits within its level.
type Progress struct {
	// Level is the level for the XP total
	Level int

	// LevelName is the display rank for Level
	LevelName string

	// XPToNextLevel is the XP still missing for the next level
	XPToNextLevel int

	// PercentToNextLevel is the progress through the current level, 0-100
	PercentToNextLevel float64
}

// LevelProgress derives the level, display rank and next-level progress
// for an XP total in one call.
func (c *Calculator) LevelProgress(xp int) Progress {
	if xp < 0 {
		xp = 0
	}

	level := c.Level(xp)
	current := c.XPForLevel(level)
	next := c.XPForLevel(level + 1)

	percent := 0.0
	if next > current {
		percent = float64(xp-current) / float64(next-current) * 100
	}

	return Progress{
		Level:              level,
		LevelName:          c.LevelName(level),
		XPToNextLevel:      next - xp,
		PercentToNextLevel: percent,
	}
}

// LevelUp describes a level change between two XP totals.
type LevelUp struct {
	// LeveledUp is true when NewLevel is above OldLevel
	LeveledUp bool

	// OldLevel is the level for the old XP total
	OldLevel int

	// NewLevel is the level for the new XP total
	NewLevel int

	// LevelsGained is NewLevel - OldLevel, never negative
	LevelsGained int

	// NewLevelName is the display rank for NewLevel
	NewLevelName string
}

// DetectLevelUp compares the levels for two XP totals. Negative totals
// count as zero, so the result is always well formed.
func (c *Calculator) DetectLevelUp(oldXP, newXP int) LevelUp {
	oldLevel := c.Level(oldXP)
	newLevel := c.Level(newXP)

	up := LevelUp{
		OldLevel:     oldLevel,
		NewLevel:     newLevel,
		NewLevelName: c.LevelName(newLevel),
	}
	if newLevel > oldLevel {
		up.LeveledUp = true
		up.LevelsGained = newLevel - oldLevel
	}
	return up
}
