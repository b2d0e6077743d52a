package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "ztminer.yaml"

// LoadZTMiner loads the ZT Miner configuration.
// Search order: customPath -> ~/.ztminer/configs/ztminer.yaml -> ./configs/ztminer.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial YAML only overrides
// the keys it names.
func LoadZTMiner(customPath string) (ZTMinerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultZTMinerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseZTMiner(data)
		if err != nil {
			return DefaultZTMinerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseZTMiner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := parseZTMiner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseZTMiner(defaultZTMinerYAML)
	if err != nil {
		return DefaultZTMinerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseZTMiner decodes data over the hardcoded defaults and validates the result.
func parseZTMiner(data []byte) (ZTMinerConfig, error) {
	cfg := DefaultZTMinerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c ZTMinerConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("playfield must have positive size, got %gx%g", c.Playfield.Width, c.Playfield.Height)
	case c.World.Layers <= 0:
		return fmt.Errorf("world.layers must be positive, got %d", c.World.Layers)
	case c.World.LayerHeight <= 0 || c.World.ScrollSpeed <= 0:
		return fmt.Errorf("world.layer_height and world.scroll_speed must be positive")
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("player.max_health must be positive, got %d", c.Player.MaxHealth)
	case c.Enemies.MaxSpeed < c.Enemies.MinSpeed:
		return fmt.Errorf("enemies.max_speed %g below min_speed %g", c.Enemies.MaxSpeed, c.Enemies.MinSpeed)
	case c.Enemies.MaxShootTicks < c.Enemies.MinShootTicks:
		return fmt.Errorf("enemies.max_shoot_ticks below min_shoot_ticks")
	case c.Orbs.MaxPerLayer < c.Orbs.MinPerLayer:
		return fmt.Errorf("orbs.max_per_layer below min_per_layer")
	case c.Playfield.Width <= 2*c.Statics.EdgeMargin+c.Statics.Size:
		return fmt.Errorf("playfield too narrow for static emplacements")
	}
	return c.Obstacles.validate()
}

func (o ObstacleConfig) validate() error {
	formations := []struct {
		name string
		spec FormationSpec
	}{
		{"floor", o.Floor},
		{"wall", o.Wall},
		{"maze", o.Maze},
		{"tunnel", o.Tunnel},
		{"cluster", o.Cluster},
		{"scattered", o.Scattered},
	}
	for _, f := range formations {
		for _, sp := range []struct {
			key  string
			span Span
		}{
			{"ahead", f.spec.Ahead},
			{"width", f.spec.Width},
			{"height", f.spec.Height},
			{"count", f.spec.Count},
			{"gap", f.spec.Gap},
		} {
			if sp.span.Max < sp.span.Min {
				return fmt.Errorf("obstacles.%s.%s: max %g below min %g", f.name, sp.key, sp.span.Max, sp.span.Min)
			}
		}
		if f.spec.Width.Max > 1 {
			return fmt.Errorf("obstacles.%s.width is a fraction of the playfield, got max %g", f.name, f.spec.Width.Max)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ztminer", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and unknown presets leave the loaded values untouched.
func ApplyPreset(cfg *ZTMinerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.ScaleWithLayer = false
		return
	}
	cfg.Difficulty.ScaleWithLayer = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 150
		cfg.Difficulty.Enemy.BaseInterval = 90
		cfg.Difficulty.Enemy.MinInterval = 45
		cfg.Difficulty.Enemy.CapStep = 2
		cfg.Difficulty.Static.BaseInterval = 240
		cfg.Difficulty.Static.MinInterval = 180
	case DifficultyHard:
		cfg.Player.MaxHealth = 80
		cfg.Difficulty.Enemy.BaseInterval = 45
		cfg.Difficulty.Enemy.MinInterval = 20
		cfg.Difficulty.Enemy.BaseCap = 3
		cfg.Difficulty.Static.BaseInterval = 150
		cfg.Difficulty.Static.MinInterval = 90
		cfg.Difficulty.Static.BaseCap = 3
	}
}

// Marshal encodes the config as YAML.
func (c ZTMinerConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
