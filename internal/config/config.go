// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

// SnakeConfig contains all tunables for the Snake game.
type SnakeConfig struct {
	Grid    SnakeGrid    `yaml:"grid"`
	Speed   SnakeSpeed   `yaml:"speed"`
	Scoring SnakeScoring `yaml:"scoring"`
	Spawn   SnakeSpawn   `yaml:"spawn"`
}

// SnakeGrid defines the play field.
type SnakeGrid struct {
	TileCount int `yaml:"tile_count"` // Square grid side length
}

// SnakeSpeed defines the movement interval progression.
type SnakeSpeed struct {
	StartIntervalMs int `yaml:"start_interval_ms"` // Interval between moves at game start
	MinIntervalMs   int `yaml:"min_interval_ms"`   // Floor the interval never drops below
	StepMs          int `yaml:"step_ms"`           // Interval reduction per speed-up
	EveryPoints     int `yaml:"every_points"`      // Score multiple that triggers a speed-up
}

// SnakeScoring defines point values.
type SnakeScoring struct {
	FoodPoints int `yaml:"food_points"`
}

// SnakeSpawn bounds food placement retries.
type SnakeSpawn struct {
	FoodAttempts int `yaml:"food_attempts"` // Retry budget before accepting an occupied cell
}

// CookingConfig contains all tunables for the Cooking game.
type CookingConfig struct {
	Round    CookingRound    `yaml:"round"`
	Scoring  CookingScoring  `yaml:"scoring"`
	Mistakes CookingMistakes `yaml:"mistakes"`
	Pan      CookingPan      `yaml:"pan"`
}

// CookingRound defines the countdown and leveling.
type CookingRound struct {
	Seconds        int `yaml:"seconds"`          // Initial countdown
	LevelBonusSecs int `yaml:"level_bonus_secs"` // Time granted on level up
	LevelThreshold int `yaml:"level_threshold"`  // Base score threshold per level
}

// CookingScoring defines the serve scoring formula inputs.
type CookingScoring struct {
	FallbackPoints    int     `yaml:"fallback_points"`     // When the pan matches no known recipe
	ClassicTimeBonus  int     `yaml:"classic_time_bonus"`  // Points per remaining second (classic)
	ExtendedTimeBonus int     `yaml:"extended_time_bonus"` // Points per remaining second (extended)
	PerfectBonus      int     `yaml:"perfect_bonus"`       // Zero-mistake dish bonus (extended)
	StreakBonus       int     `yaml:"streak_bonus"`        // Per consecutive serve (extended)
	ComboStep         float64 `yaml:"combo_step"`          // Multiplier growth per combo (extended)
}

// CookingMistakes defines the extended-mode mistake rules.
type CookingMistakes struct {
	Max         int `yaml:"max"`          // Mistakes allowed before game over
	PenaltySecs int `yaml:"penalty_secs"` // Countdown deduction per mistake
}

// CookingPan defines cook-time scaling.
type CookingPan struct {
	LevelSpeedup float64 `yaml:"level_speedup"` // Cook-time factor reduction per level
	MinCookSecs  int     `yaml:"min_cook_secs"` // Floor for scaled cook times
}

// ShopConfig contains all tunables for the Shop game.
type ShopConfig struct {
	Economy    ShopEconomy    `yaml:"economy"`
	Queue      ShopQueue      `yaml:"queue"`
	Day        ShopDay        `yaml:"day"`
	Reputation ShopReputation `yaml:"reputation"`
	Stock      ShopStock      `yaml:"stock"`
	Upgrades   ShopUpgrades   `yaml:"upgrades"`
}

// ShopEconomy defines starting resources.
type ShopEconomy struct {
	StartingMoney      int `yaml:"starting_money"`
	StartingReputation int `yaml:"starting_reputation"`
}

// ShopQueue defines customer arrival and patience pacing.
type ShopQueue struct {
	Capacity             int `yaml:"capacity"`               // Max concurrent customers
	ArrivalMs            int `yaml:"arrival_ms"`             // Interval between arrivals
	ArrivalAdvertisingMs int `yaml:"arrival_advertising_ms"` // Interval with the Advertising upgrade
	PatienceMs           int `yaml:"patience_ms"`            // Interval between patience decrements
}

// ShopDay defines day progression and the night robbery.
type ShopDay struct {
	ProgressMs    int     `yaml:"progress_ms"`    // Interval between timeProgress increments
	RobberyChance float64 `yaml:"robbery_chance"` // Per night tick
}

// ShopReputation defines reputation movement, clamped to [0, 100].
type ShopReputation struct {
	HappyDelta int `yaml:"happy_delta"`
	AngryDelta int `yaml:"angry_delta"` // Applied as a subtraction
}

// ShopStock defines per-product inventory caps.
type ShopStock struct {
	BaseCap    int `yaml:"base_cap"`
	StorageCap int `yaml:"storage_cap"` // Cap with the Storage upgrade
}

// ShopUpgrades defines upgrade prices.
type ShopUpgrades struct {
	Counter     int `yaml:"counter"`
	Storage     int `yaml:"storage"`
	Advertising int `yaml:"advertising"`
	Security    int `yaml:"security"`
}
