package sim

import "github.com/vovakirdan/zt-miner/internal/core"

// SpriteKind identifies what a sprite depicts.
type SpriteKind uint8

const (
	SpritePlayer SpriteKind = iota
	SpriteDrill
	SpriteShot
	SpriteEnemyShot
	SpritePatternShot
	SpriteEnemy
	SpriteStatic
	SpriteObstacle
	SpriteOrb
)

// Sprite is a read-only view of one live entity for drawing.
// Variant holds the EnemyKind, Pattern or ObstacleKind for those sprites.
type Sprite struct {
	Kind    SpriteKind
	Variant uint8
	Box     core.Box
	Health  float64 // Health ratio in [0, 1]; 1 for entities without health
	Layer   int
	Flash   bool    // Player is invulnerable
	Pulse   float64 // Orb pulse phase in [0, 1)
}

// Status is the read-only session summary for HUDs and overlays.
type Status struct {
	Phase        Phase
	Paused       bool
	Running      bool
	Score        int
	Layer        int
	Layers       int
	Progress     float64 // Current layer progress in [0, 1]
	Health       int
	MaxHealth    int
	Invulnerable bool
	Drilling     bool
	IntroTicks   int
	Scene        Scene
	Kills        int
	Destruction  int
	Bonuses      int
	Penalties    int
	Frame        int
}

// HealthRatio returns player health as a fraction of max.
func (st Status) HealthRatio() float64 {
	return ratio(st.Health, st.MaxHealth)
}

// Status returns the session summary.
func (s *Session) Status() Status {
	return Status{
		Phase:        s.phase,
		Paused:       s.paused,
		Running:      s.running,
		Score:        s.ledger.Score(),
		Layer:        s.world.Layer,
		Layers:       s.cfg.World.Layers,
		Progress:     s.world.ProgressRatio(),
		Health:       s.player.Health,
		MaxHealth:    s.player.MaxHealth,
		Invulnerable: s.player.Invulnerable > 0,
		Drilling:     s.player.Drilling,
		IntroTicks:   s.introTicks,
		Scene:        s.scene,
		Kills:        s.ledger.Credited(CategoryKill),
		Destruction:  s.ledger.Credited(CategoryDestruction),
		Bonuses:      s.ledger.Credited(CategoryBonus),
		Penalties:    s.ledger.Penalties(),
		Frame:        s.frame,
	}
}

// AppendSprites appends every live entity to dst, back to front, and
// returns the extended slice.
func (s *Session) AppendSprites(dst []Sprite) []Sprite {
	for i := range s.obstacles {
		o := &s.obstacles[i]
		dst = append(dst, Sprite{Kind: SpriteObstacle, Variant: uint8(o.Kind), Box: o.Box(), Health: ratio(o.Health, o.MaxHealth), Layer: o.Layer})
	}
	for i := range s.orbs {
		o := &s.orbs[i]
		pulse := 0.0
		if period := s.cfg.Orbs.PulsePeriod; period > 0 {
			pulse = float64(o.Pulse) / float64(period)
		}
		dst = append(dst, Sprite{Kind: SpriteOrb, Box: o.Box(), Health: 1, Pulse: pulse})
	}
	for i := range s.statics {
		st := &s.statics[i]
		dst = append(dst, Sprite{Kind: SpriteStatic, Variant: uint8(st.Pattern), Box: st.Box(), Health: ratio(st.Health, st.MaxHealth), Layer: st.Layer})
	}
	for i := range s.enemies {
		e := &s.enemies[i]
		dst = append(dst, Sprite{Kind: SpriteEnemy, Variant: uint8(e.Kind), Box: e.Box(), Health: ratio(e.Health, e.MaxHealth), Layer: e.Layer})
	}
	for i := range s.shots {
		dst = append(dst, Sprite{Kind: SpriteShot, Box: s.shots[i].Box(), Health: 1})
	}
	for i := range s.enemyShots {
		dst = append(dst, Sprite{Kind: SpriteEnemyShot, Box: s.enemyShots[i].Box(), Health: 1})
	}
	for i := range s.patternShots {
		dst = append(dst, Sprite{Kind: SpritePatternShot, Box: s.patternShots[i].Box(), Health: 1})
	}

	p := &s.player
	dst = append(dst, Sprite{Kind: SpritePlayer, Box: p.Box(), Health: ratio(p.Health, p.MaxHealth), Layer: s.world.Layer, Flash: p.Invulnerable > 0})
	if p.Drilling {
		dst = append(dst, Sprite{Kind: SpriteDrill, Box: p.DrillBox(), Health: 1})
	}
	return dst
}

// Counts returns the live population per category, for logging and tests.
func (s *Session) Counts() map[SpriteKind]int {
	return map[SpriteKind]int{
		SpriteShot:        len(s.shots),
		SpriteEnemyShot:   len(s.enemyShots),
		SpritePatternShot: len(s.patternShots),
		SpriteEnemy:       len(s.enemies),
		SpriteStatic:      len(s.statics),
		SpriteObstacle:    len(s.obstacles),
		SpriteOrb:         len(s.orbs),
	}
}

func ratio(v, max int) float64 {
	if max <= 0 {
		return 1
	}
	r := float64(v) / float64(max)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
