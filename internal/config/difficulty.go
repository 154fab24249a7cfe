package config

// DifficultyPreset is a named difficulty level selectable from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplySnakePreset adjusts movement pacing for a preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.StartIntervalMs = 180
		cfg.Speed.MinIntervalMs = 100
	case DifficultyHard:
		cfg.Speed.StartIntervalMs = 120
		cfg.Speed.MinIntervalMs = 60
	}
}

// ApplyCookingPreset adjusts round time and the mistake budget.
func ApplyCookingPreset(cfg *CookingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Round.Seconds = 90
		cfg.Mistakes.Max = 5
	case DifficultyHard:
		cfg.Round.Seconds = 45
		cfg.Mistakes.Max = 2
	}
}

// ApplyShopPreset adjusts customer patience pacing and the robbery rate.
func ApplyShopPreset(cfg *ShopConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Queue.PatienceMs = 1500
		cfg.Day.RobberyChance = 0.05
	case DifficultyHard:
		cfg.Queue.PatienceMs = 750
		cfg.Day.RobberyChance = 0.2
	}
}
