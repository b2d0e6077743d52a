package sim

import (
	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
)

// EnemyKind selects a mobile enemy's movement rule.
type EnemyKind uint8

const (
	EnemyBasic      EnemyKind = iota // Drifts down with a small lateral slide
	EnemyAggressive                  // Homes in on the player
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Pattern selects a static emplacement's firing pattern.
type Pattern uint8

const (
	PatternCircular Pattern = iota // Rotating ring of bullets
	PatternSpiral                  // One bullet at a time, advancing the angle
	PatternAimed                   // Three-bullet fan toward the player
)

func (p Pattern) String() string {
	switch p {
	case PatternCircular:
		return "circular"
	case PatternSpiral:
		return "spiral"
	case PatternAimed:
		return "aimed"
	default:
		return "unknown"
	}
}

// ObstacleKind selects an obstacle's toughness and score value.
type ObstacleKind uint8

const (
	ObstacleBasic ObstacleKind = iota
	ObstacleReinforced
	ObstacleCrystal
	ObstacleIndestructible
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBasic:
		return "basic"
	case ObstacleReinforced:
		return "reinforced"
	case ObstacleCrystal:
		return "crystal"
	case ObstacleIndestructible:
		return "indestructible"
	default:
		return "unknown"
	}
}

// Bullet is any projectile. X, Y is the top-left corner of its hitbox.
// Owner is the ID of the firing entity, or 0 for the player.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Owner  int

	dead bool
}

// Box returns the bullet hitbox.
func (b *Bullet) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// advance moves the bullet along its own velocity.
func (b *Bullet) advance() {
	b.X += b.VX
	b.Y += b.VY
}

// Enemy is a mobile enemy.
type Enemy struct {
	ID         int
	Kind       EnemyKind
	Layer      int
	X, Y       float64
	W, H       float64
	Speed      float64
	Dir        float64 // -1 or +1
	Health     int
	MaxHealth  int
	ShootTimer int

	dead bool
}

// Box returns the enemy hitbox.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// StaticEnemy is a stationary emplacement. It never moves on its own.
type StaticEnemy struct {
	ID           int
	Pattern      Pattern
	Layer        int
	X, Y         float64
	Size         float64
	Health       int
	MaxHealth    int
	ShootTimer   int
	PatternTimer int
	Angle        float64 // Ring rotation in degrees (circular)
	SpiralOffset int     // Shots fired so far (spiral)

	dead bool
}

// Box returns the emplacement hitbox.
func (s *StaticEnemy) Box() core.Box {
	return core.NewBox(s.X, s.Y, s.Size, s.Size)
}

// Obstacle is a block fixed in world space.
type Obstacle struct {
	Kind      ObstacleKind
	Layer     int
	X, Y      float64
	W, H      float64
	Health    int
	MaxHealth int

	dead bool
}

func newObstacle(cfg config.ObstacleConfig, kind ObstacleKind, layer int, x, y, w, h float64) Obstacle {
	hp := cfg.ToughHealth
	if kind == ObstacleBasic {
		hp = cfg.BasicHealth
	}
	return Obstacle{Kind: kind, Layer: layer, X: x, Y: y, W: w, H: h, Health: hp, MaxHealth: hp}
}

// Box returns the obstacle bounds.
func (o *Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Destructible reports whether damage affects the obstacle.
func (o *Obstacle) Destructible() bool {
	return o.Kind != ObstacleIndestructible
}

// Damage applies damage and reports whether the obstacle was destroyed.
// Indestructible obstacles ignore damage.
func (o *Obstacle) Damage(amount int) bool {
	if !o.Destructible() {
		return false
	}
	o.Health -= amount
	return o.Health <= 0
}

// HealthOrb is a healing pickup.
type HealthOrb struct {
	X, Y  float64
	Size  float64
	Pulse int // Cosmetic phase, wraps every pulse period

	dead bool
}

// Box returns the orb bounds.
func (h *HealthOrb) Box() core.Box {
	return core.NewBox(h.X, h.Y, h.Size, h.Size)
}
