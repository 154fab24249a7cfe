package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/cooking.yaml
var defaultCookingYAML []byte

//go:embed defaults/shop.yaml
var defaultShopYAML []byte

// DefaultSnakeConfig returns the hardcoded Snake defaults, used as the
// last-resort fallback if the embedded YAML fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{TileCount: 20},
		Speed: SnakeSpeed{
			StartIntervalMs: 150,
			MinIntervalMs:   80,
			StepMs:          10,
			EveryPoints:     50,
		},
		Scoring: SnakeScoring{FoodPoints: 10},
		Spawn:   SnakeSpawn{FoodAttempts: 100},
	}
}

// DefaultCookingConfig returns the hardcoded Cooking defaults.
func DefaultCookingConfig() CookingConfig {
	return CookingConfig{
		Round: CookingRound{
			Seconds:        60,
			LevelBonusSecs: 30,
			LevelThreshold: 500,
		},
		Scoring: CookingScoring{
			FallbackPoints:    50,
			ClassicTimeBonus:  2,
			ExtendedTimeBonus: 3,
			PerfectBonus:      100,
			StreakBonus:       15,
			ComboStep:         0.25,
		},
		Mistakes: CookingMistakes{Max: 3, PenaltySecs: 5},
		Pan:      CookingPan{LevelSpeedup: 0.1, MinCookSecs: 1},
	}
}

// DefaultShopConfig returns the hardcoded Shop defaults.
func DefaultShopConfig() ShopConfig {
	return ShopConfig{
		Economy: ShopEconomy{StartingMoney: 1000, StartingReputation: 50},
		Queue: ShopQueue{
			Capacity:             5,
			ArrivalMs:            2000,
			ArrivalAdvertisingMs: 1500,
			PatienceMs:           1000,
		},
		Day:        ShopDay{ProgressMs: 2000, RobberyChance: 0.1},
		Reputation: ShopReputation{HappyDelta: 2, AngryDelta: 3},
		Stock:      ShopStock{BaseCap: 5, StorageCap: 8},
		Upgrades: ShopUpgrades{
			Counter:     500,
			Storage:     300,
			Advertising: 200,
			Security:    400,
		},
	}
}
