package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// Decode into a zero value so every key must be present in the file
	var cfg ZTMinerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultZTMinerConfig()

	if cfg.Playfield != def.Playfield {
		t.Errorf("playfield: embedded %+v, hardcoded %+v", cfg.Playfield, def.Playfield)
	}
	if cfg.World != def.World {
		t.Errorf("world: embedded %+v, hardcoded %+v", cfg.World, def.World)
	}
	if cfg.Player != def.Player {
		t.Errorf("player: embedded %+v, hardcoded %+v", cfg.Player, def.Player)
	}
	if cfg.Enemies != def.Enemies {
		t.Errorf("enemies: embedded %+v, hardcoded %+v", cfg.Enemies, def.Enemies)
	}
	if cfg.Statics != def.Statics {
		t.Errorf("statics: embedded %+v, hardcoded %+v", cfg.Statics, def.Statics)
	}
	if cfg.Combat != def.Combat {
		t.Errorf("combat: embedded %+v, hardcoded %+v", cfg.Combat, def.Combat)
	}
	if cfg.Obstacles != def.Obstacles {
		t.Errorf("obstacles: embedded %+v, hardcoded %+v", cfg.Obstacles, def.Obstacles)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty: embedded %+v, hardcoded %+v", cfg.Difficulty, def.Difficulty)
	}
	if len(cfg.Scoring.LayerBonus) != 5 || cfg.Scoring.LayerBonus[4] != 3000 {
		t.Errorf("layer bonus = %v", cfg.Scoring.LayerBonus)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  max_health: 250\nworld:\n  scroll_speed: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadZTMiner(path)
	if err != nil {
		t.Fatalf("LoadZTMiner() failed: %v", err)
	}
	if cfg.Player.MaxHealth != 250 {
		t.Errorf("MaxHealth = %d, want 250", cfg.Player.MaxHealth)
	}
	if cfg.World.ScrollSpeed != 3 {
		t.Errorf("ScrollSpeed = %g, want 3", cfg.World.ScrollSpeed)
	}
	// Untouched keys keep defaults
	if cfg.Player.Speed != 5 {
		t.Errorf("Speed = %g, want default 5", cfg.Player.Speed)
	}
	if cfg.World.LayerHeight != 3000 {
		t.Errorf("LayerHeight = %g, want default 3000", cfg.World.LayerHeight)
	}
}

func TestLoadFormationOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("obstacles:\n  wall:\n    gap: {min: 200, max: 240}\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadZTMiner(path)
	if err != nil {
		t.Fatalf("LoadZTMiner() failed: %v", err)
	}
	if cfg.Obstacles.Wall.Gap != (Span{200, 240}) {
		t.Errorf("wall gap = %+v, want {200 240}", cfg.Obstacles.Wall.Gap)
	}
	if cfg.Obstacles.Wall.Margin != 60 || cfg.Obstacles.Wall.Height != (Span{60, 60}) {
		t.Errorf("untouched wall keys should keep defaults, got %+v", cfg.Obstacles.Wall)
	}
	if cfg.Obstacles.Tunnel.Gap != (Span{140, 220}) {
		t.Errorf("tunnel gap = %+v, want defaults", cfg.Obstacles.Tunnel.Gap)
	}
}

func TestValidateFormations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ObstacleConfig)
		wantErr bool
	}{
		{"defaults", func(*ObstacleConfig) {}, false},
		{"reversed gap", func(o *ObstacleConfig) { o.Wall.Gap = Span{180, 120} }, true},
		{"reversed count", func(o *ObstacleConfig) { o.Scattered.Count = Span{4, 2} }, true},
		{"reversed ahead", func(o *ObstacleConfig) { o.Floor.Ahead = Span{400, 200} }, true},
		{"width over playfield", func(o *ObstacleConfig) { o.Maze.Width = Span{0.5, 1.5} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultZTMinerConfig()
			tt.mutate(&cfg.Obstacles)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [1, 2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  max_health: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
		{"invalid values", invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadZTMiner(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if cfg.Player.MaxHealth != 100 {
				t.Errorf("error path should return defaults, got MaxHealth %d", cfg.Player.MaxHealth)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantHealth int
		wantScale  bool
	}{
		{DifficultyEasy, 150, true},
		{DifficultyNormal, 100, true},
		{DifficultyHard, 80, true},
		{DifficultyFixed, 100, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultZTMinerConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Player.MaxHealth != tt.wantHealth {
				t.Errorf("MaxHealth = %d, want %d", cfg.Player.MaxHealth, tt.wantHealth)
			}
			if cfg.Difficulty.ScaleWithLayer != tt.wantScale {
				t.Errorf("ScaleWithLayer = %v, want %v", cfg.Difficulty.ScaleWithLayer, tt.wantScale)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestThemeName(t *testing.T) {
	want := []string{"Core", "Mantle", "Lower Crust", "Upper Crust", "Ice"}
	for i, name := range want {
		if got := ThemeName(i); got != name {
			t.Errorf("ThemeName(%d) = %q, want %q", i, got, name)
		}
	}
	if ThemeName(7) != "Unknown" {
		t.Error("out of range layer should be Unknown")
	}
}
