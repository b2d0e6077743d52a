package sim

import (
	"math"

	"github.com/vovakirdan/zt-miner/internal/config"
)

// moveEnemy applies the enemy's own movement rule for one frame.
func moveEnemy(e *Enemy, p *Player, cfg config.EnemyConfig) {
	switch e.Kind {
	case EnemyBasic:
		e.Y += e.Speed
		e.X += e.Dir * cfg.Drift
	case EnemyAggressive:
		dx := p.X - e.X
		dy := p.Y - e.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			step := e.Speed * cfg.ChaseFactor
			e.X += dx / dist * step
			e.Y += dy / dist * step
		}
	}
}

// enemyFire counts down the shoot timer and fires from the enemy's
// bottom-center once the timer has run out and the enemy owns fewer than
// the allowed live bullets. The timer keeps running below zero while capped.
func enemyFire(e *Enemy, owned int, cfg config.EnemyConfig, roll func(lo, hi int) int) (Bullet, bool) {
	e.ShootTimer--
	if e.ShootTimer > 0 || owned >= cfg.MaxBullets {
		return Bullet{}, false
	}
	e.ShootTimer = roll(cfg.MinShootTicks, cfg.MaxShootTicks)
	return Bullet{
		X:     e.X + e.W/2,
		Y:     e.Y + e.H,
		VY:    cfg.BulletSpeed,
		W:     cfg.BulletWidth,
		H:     cfg.BulletHeight,
		Owner: e.ID,
	}, true
}

// staticFire advances the emplacement's pattern state and returns any
// bullets fired this frame.
func staticFire(s *StaticEnemy, p *Player, cfg config.StaticConfig) []Bullet {
	s.ShootTimer++
	s.PatternTimer++

	cx := s.X + s.Size/2
	cy := s.Y + s.Size/2

	switch s.Pattern {
	case PatternCircular:
		if s.ShootTimer < cfg.CircularPeriod || cfg.CircularCount <= 0 {
			return nil
		}
		step := 360 / float64(cfg.CircularCount)
		out := make([]Bullet, 0, cfg.CircularCount)
		for i := 0; i < cfg.CircularCount; i++ {
			rad := (float64(i)*step + s.Angle) * math.Pi / 180
			out = append(out, patternBullet(s, cfg, cx, cy, rad, cfg.CircularSpeed, true))
		}
		s.Angle += cfg.CircularTurn
		s.ShootTimer = 0
		return out

	case PatternSpiral:
		if s.ShootTimer < cfg.SpiralPeriod {
			return nil
		}
		rad := float64(s.SpiralOffset) * cfg.SpiralStep * math.Pi / 180
		s.SpiralOffset++
		s.ShootTimer = 0
		return []Bullet{patternBullet(s, cfg, cx, cy, rad, cfg.SpiralSpeed, true)}

	case PatternAimed:
		if s.ShootTimer < cfg.AimedPeriod {
			return nil
		}
		s.ShootTimer = 0
		dx := p.X - s.X
		dy := p.Y - s.Y
		if math.Hypot(dx, dy) == 0 {
			return nil
		}
		base := math.Atan2(dy, dx)
		out := make([]Bullet, 0, 3)
		for i := -1; i <= 1; i++ {
			out = append(out, patternBullet(s, cfg, cx, cy, base+float64(i)*cfg.AimedSpread, cfg.AimedSpeed, false))
		}
		return out
	}
	return nil
}

// patternBullet builds a bullet centered on its spawn point, optionally
// pushed out from the emplacement center along its heading.
func patternBullet(s *StaticEnemy, cfg config.StaticConfig, cx, cy, rad, speed float64, muzzle bool) Bullet {
	cos, sin := math.Cos(rad), math.Sin(rad)
	x, y := cx, cy
	if muzzle {
		x += cos * cfg.MuzzleOffset
		y += sin * cfg.MuzzleOffset
	}
	half := cfg.BulletSize / 2
	return Bullet{
		X:     x - half,
		Y:     y - half,
		VX:    cos * speed,
		VY:    sin * speed,
		W:     cfg.BulletSize,
		H:     cfg.BulletSize,
		Owner: s.ID,
	}
}
