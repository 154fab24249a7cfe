package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config using the standard search order:
// customPath -> ~/.arcade/configs/<name> -> ./configs/<name> -> embedded default.
// A custom path that cannot be read or parsed is an error; the fallback
// locations fail silently to the next candidate.
func load(customPath, filename string, embedded []byte, cfg any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, cfg)
}

// userConfigPath returns the per-user config path, or "" if the home
// directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads the Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := load(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// LoadCooking loads the Cooking configuration.
func LoadCooking(customPath string) (CookingConfig, error) {
	var cfg CookingConfig
	if err := load(customPath, "cooking.yaml", defaultCookingYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultCookingConfig(), nil
	}
	return cfg, nil
}

// LoadShop loads the Shop configuration.
func LoadShop(customPath string) (ShopConfig, error) {
	var cfg ShopConfig
	if err := load(customPath, "shop.yaml", defaultShopYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultShopConfig(), nil
	}
	return cfg, nil
}
