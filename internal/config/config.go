// Package config provides YAML-based game configuration loading and
// difficulty management for ZT Miner.
package config

// ZTMinerConfig contains all tuning for the ZT Miner simulation.
// Distances are world units (one unit per pixel of the 800x600 playfield),
// durations are frames at the fixed 60 Hz tick.
type ZTMinerConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Statics    StaticConfig     `yaml:"statics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Orbs       OrbConfig        `yaml:"orbs"`
	Combat     CombatConfig     `yaml:"combat"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the visible world rectangle.
type PlayfieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	DespawnMargin float64 `yaml:"despawn_margin"` // Distance past the edge before entities are pruned
}

// WorldConfig defines scrolling and layer progression.
type WorldConfig struct {
	Layers       int     `yaml:"layers"`
	LayerHeight  float64 `yaml:"layer_height"`
	ScrollSpeed  float64 `yaml:"scroll_speed"`
	FinalStretch float64 `yaml:"final_stretch"` // Fraction of the last layer that must be crossed to win
	IntroTicks   int     `yaml:"intro_ticks"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	MaxHealth       int     `yaml:"max_health"`
	ShootCooldown   int     `yaml:"shoot_cooldown"`
	DrillCooldown   int     `yaml:"drill_cooldown"`
	Invulnerability int     `yaml:"invulnerability"`
	SpawnOffset     float64 `yaml:"spawn_offset"` // Distance of the spawn point above the bottom edge
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletWidth     float64 `yaml:"bullet_width"`
	BulletHeight    float64 `yaml:"bullet_height"`
	Drill           BoxSpec `yaml:"drill"` // Drill hitbox relative to the ship's top-left corner
}

// BoxSpec is a rectangle expressed as offsets and size.
type BoxSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// EnemyConfig defines mobile enemies and their bullets.
type EnemyConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	Drift            float64 `yaml:"drift"`        // Lateral drift per frame for basic enemies
	ChaseFactor      float64 `yaml:"chase_factor"` // Fraction of speed used by aggressive enemies
	BasicHealth      int     `yaml:"basic_health"`
	AggressiveHealth int     `yaml:"aggressive_health"`
	MinShootTicks    int     `yaml:"min_shoot_ticks"`
	MaxShootTicks    int     `yaml:"max_shoot_ticks"`
	MaxBullets       int     `yaml:"max_bullets"` // Live bullets an enemy may own at once
	BulletSpeed      float64 `yaml:"bullet_speed"`
	BulletWidth      float64 `yaml:"bullet_width"`
	BulletHeight     float64 `yaml:"bullet_height"`
	SpawnMinAhead    float64 `yaml:"spawn_min_ahead"`
	SpawnMaxAhead    float64 `yaml:"spawn_max_ahead"`
}

// StaticConfig defines stationary emplacements and their firing patterns.
type StaticConfig struct {
	Size          float64 `yaml:"size"`
	Health        int     `yaml:"health"`
	EdgeMargin    float64 `yaml:"edge_margin"`
	SpawnMinAhead float64 `yaml:"spawn_min_ahead"`
	SpawnMaxAhead float64 `yaml:"spawn_max_ahead"`
	BulletSize    float64 `yaml:"bullet_size"`
	MuzzleOffset  float64 `yaml:"muzzle_offset"`

	CircularPeriod int     `yaml:"circular_period"`
	CircularCount  int     `yaml:"circular_count"`
	CircularSpeed  float64 `yaml:"circular_speed"`
	CircularTurn   float64 `yaml:"circular_turn"` // Degrees the ring rotates after each volley

	SpiralPeriod int     `yaml:"spiral_period"`
	SpiralSpeed  float64 `yaml:"spiral_speed"`
	SpiralStep   float64 `yaml:"spiral_step"` // Degrees between consecutive spiral shots

	AimedPeriod int     `yaml:"aimed_period"`
	AimedSpeed  float64 `yaml:"aimed_speed"`
	AimedSpread float64 `yaml:"aimed_spread"` // Radians between fan bullets
}

// ObstacleConfig defines obstacle formations.
type ObstacleConfig struct {
	FormationInterval int     `yaml:"formation_interval"`
	MaxForFormation   int     `yaml:"max_for_formation"` // Formations spawn only below this count
	MinCount          int     `yaml:"min_count"`         // Floor: top up when fewer exist
	BasicHealth       int     `yaml:"basic_health"`
	ToughHealth       int     `yaml:"tough_health"`
	MinSlabWidth      float64 `yaml:"min_slab_width"` // Narrower barrier halves are dropped

	Floor     FormationSpec `yaml:"floor"`
	Wall      FormationSpec `yaml:"wall"`
	Maze      FormationSpec `yaml:"maze"`
	Tunnel    FormationSpec `yaml:"tunnel"`
	Cluster   FormationSpec `yaml:"cluster"`
	Scattered FormationSpec `yaml:"scattered"`
}

// Span is a closed range of values.
type Span struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// FormationSpec shapes one obstacle layout.
// Width is a fraction of the playfield width. Ahead is the distance above
// the visible top where the layout starts. Barrier layouts use Gap and
// Margin; row layouts use Count and Spacing.
type FormationSpec struct {
	Ahead   Span    `yaml:"ahead"`
	Width   Span    `yaml:"width"`
	Height  Span    `yaml:"height"`
	Count   Span    `yaml:"count"`
	Gap     Span    `yaml:"gap"`
	Margin  float64 `yaml:"margin"`
	Spacing float64 `yaml:"spacing"`
}

// OrbConfig defines health orb pickups.
type OrbConfig struct {
	Size        float64 `yaml:"size"`
	Interval    int     `yaml:"interval"`
	MinPerLayer int     `yaml:"min_per_layer"`
	MaxPerLayer int     `yaml:"max_per_layer"`
	HealPercent int     `yaml:"heal_percent"`
	EdgeMargin  float64 `yaml:"edge_margin"`
	SpawnY      float64 `yaml:"spawn_y"`
	PulsePeriod int     `yaml:"pulse_period"`
}

// CombatConfig defines damage amounts for every hit category.
type CombatConfig struct {
	BulletVsEnemy   int `yaml:"bullet_vs_enemy"`
	BulletVsStatic  int `yaml:"bullet_vs_static"`
	BulletVsBlock   int `yaml:"bullet_vs_obstacle"`
	DrillVsBlock    int `yaml:"drill_vs_obstacle"`
	EnemyBullet     int `yaml:"enemy_bullet"`
	PatternBullet   int `yaml:"pattern_bullet"`
	EnemyContact    int `yaml:"enemy_contact"`
	StaticContact   int `yaml:"static_contact"`
	ObstacleContact int `yaml:"obstacle_contact"`
}

// ScoringConfig defines point awards and penalties.
type ScoringConfig struct {
	BasicKill          int   `yaml:"basic_kill"`
	AggressiveKill     int   `yaml:"aggressive_kill"`
	CircularKill       int   `yaml:"circular_kill"`
	SpiralKill         int   `yaml:"spiral_kill"`
	AimedKill          int   `yaml:"aimed_kill"`
	BasicObstacle      int   `yaml:"basic_obstacle"`
	CrystalObstacle    int   `yaml:"crystal_obstacle"`
	ReinforcedObstacle int   `yaml:"reinforced_obstacle"`
	LayerBonus         []int `yaml:"layer_bonus"`
	DeathPenalty       int   `yaml:"death_penalty"`
}

// DifficultyConfig defines the layer-indexed spawn schedule.
type DifficultyConfig struct {
	ScaleWithLayer bool          `yaml:"scale_with_layer"` // When false every layer uses layer 0 rates
	Enemy          SpawnSchedule `yaml:"enemy"`
	Static         SpawnSchedule `yaml:"static"`
}

// SpawnSchedule expresses interval = max(MinInterval, BaseInterval - IntervalStep*layer)
// and cap = BaseCap + CapStep*layer.
type SpawnSchedule struct {
	BaseInterval int `yaml:"base_interval"`
	IntervalStep int `yaml:"interval_step"`
	MinInterval  int `yaml:"min_interval"`
	BaseCap      int `yaml:"base_cap"`
	CapStep      int `yaml:"cap_step"`
}

// LayerTheme names a layer.
type LayerTheme struct {
	Name string
}

// LayerThemes lists the five layers bottom to top.
var LayerThemes = []LayerTheme{
	{Name: "Core"},
	{Name: "Mantle"},
	{Name: "Lower Crust"},
	{Name: "Upper Crust"},
	{Name: "Ice"},
}

// ThemeName returns the display name for a layer index.
func ThemeName(layer int) string {
	if layer < 0 || layer >= len(LayerThemes) {
		return "Unknown"
	}
	return LayerThemes[layer].Name
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
