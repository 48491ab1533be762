package levels

// LevelConfig describes what a subject at a given level demands each day:
// how many consecutive qualifying days advance the subject to the next
// level, and the minimum input (reading, listening) and output (writing,
// speaking, exercises) minutes a session must reach to qualify.
type LevelConfig struct {
	Level         int
	RequiredDays  int
	InputMinutes  int
	OutputMinutes int
}

// catalog is the static level table, ordered by level. Changing these
// values never recomputes past subject state.
var catalog = []LevelConfig{
	{Level: 1, RequiredDays: 15, InputMinutes: 13, OutputMinutes: 2},
	{Level: 2, RequiredDays: 30, InputMinutes: 25, OutputMinutes: 5},
	{Level: 3, RequiredDays: 30, InputMinutes: 45, OutputMinutes: 15},
	{Level: 4, RequiredDays: 30, InputMinutes: 60, OutputMinutes: 20},
	{Level: 5, RequiredDays: 30, InputMinutes: 75, OutputMinutes: 25},
}

// Config returns the catalog entry for level. Levels above the highest
// defined entry clamp to that entry; levels below 1 clamp to level 1.
func Config(level int) LevelConfig {
	if level < 1 {
		return catalog[0]
	}
	for _, cfg := range catalog {
		if cfg.Level == level {
			return cfg
		}
	}
	return catalog[len(catalog)-1]
}

// MaxLevel returns the highest level defined in the catalog.
func MaxLevel() int {
	return catalog[len(catalog)-1].Level
}
