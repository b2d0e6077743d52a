package config

import (
	_ "embed"
)

//go:embed defaults/ztminer.yaml
var defaultZTMinerYAML []byte

// DefaultZTMinerConfig returns the default ZT Miner configuration.
// It mirrors defaults/ztminer.yaml and is used when the embedded file fails to parse.
func DefaultZTMinerConfig() ZTMinerConfig {
	return ZTMinerConfig{
		Playfield: PlayfieldConfig{
			Width:         800,
			Height:        600,
			DespawnMargin: 50,
		},
		World: WorldConfig{
			Layers:       5,
			LayerHeight:  3000,
			ScrollSpeed:  2,
			FinalStretch: 0.5,
			IntroTicks:   300, // 5 seconds at 60fps
		},
		Player: PlayerConfig{
			Width:           40,
			Height:          60,
			Speed:           5,
			MaxHealth:       100,
			ShootCooldown:   10,
			DrillCooldown:   10,
			Invulnerability: 60,
			SpawnOffset:     100,
			BulletSpeed:     8,
			BulletWidth:     4,
			BulletHeight:    10,
			Drill:           BoxSpec{X: 15, Y: -10, W: 10, H: 15},
		},
		Enemies: EnemyConfig{
			Width:            30,
			Height:           70,
			MinSpeed:         1,
			MaxSpeed:         3,
			Drift:            0.5,
			ChaseFactor:      0.7,
			BasicHealth:      20,
			AggressiveHealth: 40,
			MinShootTicks:    60,
			MaxShootTicks:    180,
			MaxBullets:       2,
			BulletSpeed:      4,
			BulletWidth:      3,
			BulletHeight:     8,
			SpawnMinAhead:    100,
			SpawnMaxAhead:    200,
		},
		Statics: StaticConfig{
			Size:           50,
			Health:         60,
			EdgeMargin:     50,
			SpawnMinAhead:  150,
			SpawnMaxAhead:  300,
			BulletSize:     4,
			MuzzleOffset:   10,
			CircularPeriod: 20,
			CircularCount:  8,
			CircularSpeed:  3,
			CircularTurn:   22.5,
			SpiralPeriod:   8,
			SpiralSpeed:    4,
			SpiralStep:     15,
			AimedPeriod:    40,
			AimedSpeed:     4,
			AimedSpread:    0.3,
		},
		Obstacles: ObstacleConfig{
			FormationInterval: 90,
			MaxForFormation:   8,
			MinCount:          2,
			BasicHealth:       30,
			ToughHealth:       50,
			MinSlabWidth:      20,
			Floor: FormationSpec{
				Ahead:  Span{200, 400},
				Width:  Span{1.0 / 3, 2.0 / 3},
				Height: Span{40, 80},
				Count:  Span{2, 2},
			},
			Wall: FormationSpec{
				Ahead:  Span{300, 500},
				Height: Span{60, 60},
				Gap:    Span{120, 180},
				Margin: 60,
			},
			Maze: FormationSpec{
				Ahead:   Span{400, 600},
				Width:   Span{1.0 / 3, 0.5},
				Height:  Span{50, 50},
				Count:   Span{3, 3},
				Spacing: 80,
			},
			Tunnel: FormationSpec{
				Ahead:  Span{350, 550},
				Height: Span{100, 100},
				Gap:    Span{140, 220},
				Margin: 40,
			},
			Cluster: FormationSpec{
				Ahead:   Span{300, 500},
				Width:   Span{1.0 / 3, 0.5},
				Height:  Span{45, 45},
				Count:   Span{3, 3},
				Spacing: 60,
			},
			Scattered: FormationSpec{
				Ahead:  Span{250, 450},
				Width:  Span{1.0 / 3, 2.0 / 3},
				Height: Span{40, 70},
				Count:  Span{2, 4},
			},
		},
		Orbs: OrbConfig{
			Size:        20,
			Interval:    600,
			MinPerLayer: 1,
			MaxPerLayer: 3,
			HealPercent: 15,
			EdgeMargin:  50,
			SpawnY:      -50,
			PulsePeriod: 60,
		},
		Combat: CombatConfig{
			BulletVsEnemy:   20,
			BulletVsStatic:  15,
			BulletVsBlock:   10,
			DrillVsBlock:    8,
			EnemyBullet:     10,
			PatternBullet:   12,
			EnemyContact:    15,
			StaticContact:   20,
			ObstacleContact: 5,
		},
		Scoring: ScoringConfig{
			BasicKill:          100,
			AggressiveKill:     150,
			CircularKill:       200,
			SpiralKill:         250,
			AimedKill:          300,
			BasicObstacle:      25,
			CrystalObstacle:    35,
			ReinforcedObstacle: 50,
			LayerBonus:         []int{1000, 1500, 2000, 2500, 3000},
			DeathPenalty:       1000,
		},
		Difficulty: DifficultyConfig{
			ScaleWithLayer: true,
			Enemy: SpawnSchedule{
				BaseInterval: 60,
				IntervalStep: 10,
				MinInterval:  30,
				BaseCap:      2,
				CapStep:      3,
			},
			Static: SpawnSchedule{
				BaseInterval: 180,
				IntervalStep: 15,
				MinInterval:  120,
				BaseCap:      2,
				CapStep:      1,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultZTMinerYAML
}
