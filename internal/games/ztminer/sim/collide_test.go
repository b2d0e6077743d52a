package sim

import (
	"testing"

	"github.com/vovakirdan/zt-miner/internal/core"
)

// shotAt places a player bullet of default size.
func shotAt(x, y float64) Bullet {
	return Bullet{X: x, Y: y, VY: -8, W: 4, H: 10}
}

func TestEnemyBulletsRespectInvulnerability(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()

	// Each bullet lands on the player after this frame's move (4) and scroll (2)
	drop := func() {
		s.enemyShots = append(s.enemyShots, Bullet{X: p.X + 10, Y: p.Y + 10 - 6, VY: 4, W: 3, H: 8, Owner: 99})
	}

	for i := 0; i < 3; i++ {
		drop()
		s.Step(frame())
		if len(s.enemyShots) != 0 {
			t.Fatalf("hit %d: bullet should be removed even when absorbed", i+1)
		}
	}
	if got := s.Player().Health; got != 90 {
		t.Fatalf("health after three hits = %d, want 90", got)
	}

	// First hit landed on frame 1; frames 2..60 are still covered
	run(s, 56)
	drop()
	s.Step(frame())
	if got := s.Player().Health; got != 90 {
		t.Fatalf("hit on frame 60 should be absorbed, health %d", got)
	}

	drop()
	s.Step(frame())
	if got := s.Player().Health; got != 80 {
		t.Errorf("hit on frame 61 should land, health %d", got)
	}
}

func TestBasicObstacleDestroyedOnThirdHit(t *testing.T) {
	s := playing(t, quietConfig())
	s.addObstacle(ObstacleBasic, 0, 100, 800, 40)

	wantHealth := []int{20, 10}
	for i, hp := range wantHealth {
		s.shots = append(s.shots, shotAt(420, 110))
		s.resolveCollisions()
		if len(s.obstacles) != 1 || s.obstacles[0].Health != hp {
			t.Fatalf("hit %d: obstacle health %d, want %d", i+1, s.obstacles[0].Health, hp)
		}
		if s.Score() != 0 {
			t.Fatalf("hit %d: points credited before destruction", i+1)
		}
	}

	s.shots = append(s.shots, shotAt(420, 110))
	s.resolveCollisions()
	if len(s.obstacles) != 0 {
		t.Fatal("obstacle should be destroyed on the third hit")
	}
	if s.Score() != 25 {
		t.Errorf("score = %d, want 25", s.Score())
	}

	// Fourth bullet finds nothing to hit
	s.shots = append(s.shots, shotAt(420, 110))
	s.resolveCollisions()
	if s.Score() != 25 || len(s.shots) != 1 {
		t.Errorf("fourth bullet should pass through empty space, score %d shots %d", s.Score(), len(s.shots))
	}
}

func TestIndestructibleAbsorbsBullets(t *testing.T) {
	s := playing(t, quietConfig())
	s.addObstacle(ObstacleIndestructible, 0, 100, 800, 100)

	for i := 0; i < 10; i++ {
		s.shots = append(s.shots, shotAt(420, 110))
		s.resolveCollisions()
	}
	if len(s.obstacles) != 1 || s.obstacles[0].Health != s.obstacles[0].MaxHealth {
		t.Error("indestructible obstacle took damage")
	}
	if len(s.shots) != 0 {
		t.Error("bullets should be absorbed")
	}
}

func TestBulletKillsAwardPoints(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Session)
		shots  int
		points int
	}{
		{"basic enemy", func(s *Session) {
			s.addEnemy(Enemy{Kind: EnemyBasic, X: 400, Y: 100, W: 30, H: 70, Health: 20, MaxHealth: 20})
		}, 1, 100},
		{"aggressive enemy", func(s *Session) {
			s.addEnemy(Enemy{Kind: EnemyAggressive, X: 400, Y: 100, W: 30, H: 70, Health: 40, MaxHealth: 40})
		}, 2, 150},
		{"circular emplacement", func(s *Session) {
			s.addStatic(StaticEnemy{Pattern: PatternCircular, X: 400, Y: 100, Size: 50, Health: 60, MaxHealth: 60})
		}, 4, 200},
		{"spiral emplacement", func(s *Session) {
			s.addStatic(StaticEnemy{Pattern: PatternSpiral, X: 400, Y: 100, Size: 50, Health: 60, MaxHealth: 60})
		}, 4, 250},
		{"aimed emplacement", func(s *Session) {
			s.addStatic(StaticEnemy{Pattern: PatternAimed, X: 400, Y: 100, Size: 50, Health: 60, MaxHealth: 60})
		}, 4, 300},
		{"crystal obstacle", func(s *Session) {
			s.addObstacle(ObstacleCrystal, 380, 100, 100, 40)
		}, 5, 35},
		{"reinforced obstacle", func(s *Session) {
			s.addObstacle(ObstacleReinforced, 380, 100, 100, 40)
		}, 5, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playing(t, quietConfig())
			tt.setup(s)
			for i := 0; i < tt.shots; i++ {
				if s.Score() != 0 {
					t.Fatalf("points credited after %d of %d hits", i, tt.shots)
				}
				s.shots = append(s.shots, shotAt(410, 110))
				s.resolveCollisions()
			}
			if s.Score() != tt.points {
				t.Errorf("score = %d, want %d", s.Score(), tt.points)
			}
			c := s.Counts()
			if c[SpriteEnemy]+c[SpriteStatic]+c[SpriteObstacle] != 0 {
				t.Error("target should be removed")
			}
		})
	}
}

func TestBulletStopsAtFirstTarget(t *testing.T) {
	s := playing(t, quietConfig())
	s.addEnemy(Enemy{Kind: EnemyBasic, X: 400, Y: 100, W: 30, H: 70, Health: 40, MaxHealth: 40})
	s.addStatic(StaticEnemy{Pattern: PatternSpiral, X: 400, Y: 100, Size: 50, Health: 60, MaxHealth: 60})

	s.shots = append(s.shots, shotAt(410, 110))
	s.resolveCollisions()

	if s.enemies[0].Health != 20 {
		t.Errorf("enemy health = %d, want 20", s.enemies[0].Health)
	}
	if s.statics[0].Health != 60 {
		t.Errorf("emplacement should be shielded by the enemy, health %d", s.statics[0].Health)
	}
}

func TestDrillGrindsEveryFrame(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()
	// Obstacle overlapping the drill tip only
	s.addObstacle(ObstacleBasic, p.X, p.Y-30, 40, 25)

	run(s, 1, core.ActionDrill)
	if got := s.obstacles[0].Health; got != 22 {
		t.Fatalf("health after one drill frame = %d, want 22", got)
	}
	if s.Player().Health != 100 {
		t.Errorf("drilling should block contact damage from breakable blocks")
	}

	// The block scrolls into the hull on frame 3; drilling keeps that harmless
	run(s, 3, core.ActionDrill)
	if s.Player().Health != 100 {
		t.Errorf("drilling should block contact damage from breakable blocks")
	}
	if len(s.obstacles) != 0 {
		t.Fatal("obstacle should be ground down in four frames")
	}
	if s.Score() != 25 {
		t.Errorf("score = %d, want 25", s.Score())
	}
}

func TestIndestructibleHurtsWhileDrilling(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()
	s.addObstacle(ObstacleIndestructible, p.X-10, p.Y, 60, 20)

	run(s, 1, core.ActionDrill)
	if got := s.Player().Health; got != 95 {
		t.Errorf("health = %d, want 95", got)
	}
}

func TestObstacleContactWithoutDrill(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()
	s.addObstacle(ObstacleBasic, p.X-10, p.Y, 60, 20)

	run(s, 1)
	if got := s.Player().Health; got != 95 {
		t.Errorf("health = %d, want 95", got)
	}
}

func TestEnemyContactCoupledToInvulnerability(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()
	s.addEnemy(Enemy{Kind: EnemyAggressive, X: p.X, Y: p.Y, W: 30, H: 70, Speed: 0, Health: 40, MaxHealth: 40, ShootTimer: never})

	s.player.Invulnerable = 30
	s.resolveCollisions()
	if len(s.enemies) != 1 {
		t.Fatal("enemy should persist while the player is invulnerable")
	}
	if s.Player().Health != 100 {
		t.Fatal("contact during invulnerability should not hurt")
	}

	s.player.Invulnerable = 0
	s.resolveCollisions()
	if len(s.enemies) != 0 {
		t.Error("enemy should be consumed when the hit lands")
	}
	if s.Player().Health != 85 {
		t.Errorf("health = %d, want 85", s.Player().Health)
	}
	if s.Score() != 0 {
		t.Error("ramming kills award no points")
	}
}

func TestStaticContactKeepsEmplacement(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()
	s.addStatic(StaticEnemy{Pattern: PatternCircular, X: p.X, Y: p.Y, Size: 50, Health: 60, MaxHealth: 60})

	s.resolveCollisions()
	if len(s.statics) != 1 || s.Player().Health != 80 {
		t.Errorf("statics %d health %d, want 1 and 80", len(s.statics), s.Player().Health)
	}
}

func TestPatternBulletDamage(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()
	s.patternShots = append(s.patternShots, Bullet{X: p.X + 5, Y: p.Y + 5, W: 4, H: 4, Owner: 7})

	s.resolveCollisions()
	if len(s.patternShots) != 0 || s.Player().Health != 88 {
		t.Errorf("pattern shots %d health %d, want 0 and 88", len(s.patternShots), s.Player().Health)
	}
}

func TestHealthOrbHealsClamped(t *testing.T) {
	s := playing(t, quietConfig())
	p := s.Player()

	s.player.Health = 50
	s.orbs = append(s.orbs, HealthOrb{X: p.X, Y: p.Y, Size: 20})
	s.resolveCollisions()
	if s.Player().Health != 65 || len(s.orbs) != 0 {
		t.Fatalf("health %d orbs %d, want 65 and 0", s.Player().Health, len(s.orbs))
	}

	s.player.Health = 95
	s.orbs = append(s.orbs, HealthOrb{X: p.X, Y: p.Y, Size: 20})
	s.resolveCollisions()
	if s.Player().Health != 100 {
		t.Errorf("heal should clamp at max, health %d", s.Player().Health)
	}
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	s := playing(t, quietConfig())
	s.player.Health = 3
	if !s.player.TakeDamage(10) {
		t.Fatal("damage should land")
	}
	if s.player.Health != 0 {
		t.Errorf("health = %d, want 0", s.player.Health)
	}
	if s.player.Invulnerable != 60 {
		t.Errorf("invulnerability = %d, want 60", s.player.Invulnerable)
	}
	if s.player.TakeDamage(10) {
		t.Error("damage during invulnerability should fail")
	}
}
