package sim

import "slices"

// resolveCollisions runs every hit test in a fixed order. Removals are
// marked on the entity and swept after each pass.
func (s *Session) resolveCollisions() {
	dmg := s.cfg.Combat
	p := &s.player

	// Player bullets against enemies, emplacements, then obstacles.
	// A bullet stops at the first thing it hits.
	for i := range s.shots {
		b := &s.shots[i]
		for j := range s.enemies {
			e := &s.enemies[j]
			if e.dead || !b.Box().Intersects(e.Box()) {
				continue
			}
			b.dead = true
			e.Health -= dmg.BulletVsEnemy
			if e.Health <= 0 {
				e.dead = true
				s.ledger.Credit(CategoryKill, s.enemyPoints(e.Kind))
			}
			break
		}
	}
	s.sweepShots()
	s.enemies = slices.DeleteFunc(s.enemies, func(e Enemy) bool { return e.dead })

	for i := range s.shots {
		b := &s.shots[i]
		for j := range s.statics {
			st := &s.statics[j]
			if st.dead || !b.Box().Intersects(st.Box()) {
				continue
			}
			b.dead = true
			st.Health -= dmg.BulletVsStatic
			if st.Health <= 0 {
				st.dead = true
				s.ledger.Credit(CategoryKill, s.staticPoints(st.Pattern))
			}
			break
		}
	}
	s.sweepShots()
	s.statics = slices.DeleteFunc(s.statics, func(st StaticEnemy) bool { return st.dead })

	for i := range s.shots {
		b := &s.shots[i]
		for j := range s.obstacles {
			o := &s.obstacles[j]
			if o.dead || !b.Box().Intersects(o.Box()) {
				continue
			}
			b.dead = true
			if o.Damage(dmg.BulletVsBlock) {
				o.dead = true
				s.ledger.Credit(CategoryDestruction, s.obstaclePoints(o.Kind))
			}
			break
		}
	}
	s.sweepShots()

	// Drill grinds every obstacle it touches, every frame it is held.
	if p.Drilling {
		drill := p.DrillBox()
		for j := range s.obstacles {
			o := &s.obstacles[j]
			if o.dead || !drill.Intersects(o.Box()) {
				continue
			}
			if o.Damage(dmg.DrillVsBlock) {
				o.dead = true
				s.ledger.Credit(CategoryDestruction, s.obstaclePoints(o.Kind))
			}
		}
	}
	s.sweepObstacles()

	body := p.Box()

	for i := range s.enemyShots {
		b := &s.enemyShots[i]
		if b.Box().Intersects(body) {
			b.dead = true
			p.TakeDamage(dmg.EnemyBullet)
		}
	}
	s.enemyShots = slices.DeleteFunc(s.enemyShots, func(b Bullet) bool { return b.dead })

	for i := range s.patternShots {
		b := &s.patternShots[i]
		if b.Box().Intersects(body) {
			b.dead = true
			p.TakeDamage(dmg.PatternBullet)
		}
	}
	s.patternShots = slices.DeleteFunc(s.patternShots, func(b Bullet) bool { return b.dead })

	for i := range s.orbs {
		o := &s.orbs[i]
		if o.Box().Intersects(body) {
			o.dead = true
			p.Heal(p.MaxHealth * s.cfg.Orbs.HealPercent / 100)
			s.events |= EventOrbCollected
		}
	}
	s.orbs = slices.DeleteFunc(s.orbs, func(o HealthOrb) bool { return o.dead })

	// Ramming enemies are consumed only when the hit actually lands.
	for i := range s.enemies {
		e := &s.enemies[i]
		if e.Box().Intersects(body) && p.TakeDamage(dmg.EnemyContact) {
			e.dead = true
		}
	}
	s.enemies = slices.DeleteFunc(s.enemies, func(e Enemy) bool { return e.dead })

	for i := range s.statics {
		if s.statics[i].Box().Intersects(body) {
			p.TakeDamage(dmg.StaticContact)
		}
	}

	// Drilling protects against breakable blocks only.
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if !o.Box().Intersects(body) {
			continue
		}
		if !p.Drilling || !o.Destructible() {
			p.TakeDamage(dmg.ObstacleContact)
		}
	}
}

func (s *Session) sweepShots() {
	s.shots = slices.DeleteFunc(s.shots, func(b Bullet) bool { return b.dead })
}

func (s *Session) sweepObstacles() {
	s.obstacles = slices.DeleteFunc(s.obstacles, func(o Obstacle) bool { return o.dead })
}

func (s *Session) enemyPoints(k EnemyKind) int {
	if k == EnemyAggressive {
		return s.cfg.Scoring.AggressiveKill
	}
	return s.cfg.Scoring.BasicKill
}

func (s *Session) staticPoints(p Pattern) int {
	switch p {
	case PatternSpiral:
		return s.cfg.Scoring.SpiralKill
	case PatternAimed:
		return s.cfg.Scoring.AimedKill
	default:
		return s.cfg.Scoring.CircularKill
	}
}

func (s *Session) obstaclePoints(k ObstacleKind) int {
	switch k {
	case ObstacleBasic:
		return s.cfg.Scoring.BasicObstacle
	case ObstacleCrystal:
		return s.cfg.Scoring.CrystalObstacle
	case ObstacleReinforced:
		return s.cfg.Scoring.ReinforcedObstacle
	default:
		return 0
	}
}
