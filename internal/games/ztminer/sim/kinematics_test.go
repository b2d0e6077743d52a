package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/zt-miner/internal/config"
)

func fixedRoll(v int) func(lo, hi int) int {
	return func(lo, hi int) int { return v }
}

func TestEnemyFireCap(t *testing.T) {
	cfg := config.DefaultZTMinerConfig().Enemies

	tests := []struct {
		name  string
		timer int
		owned int
		fire  bool
	}{
		{"timer running", 5, 0, false},
		{"ready", 1, 0, true},
		{"ready with one in flight", 1, 1, true},
		{"capped", 1, 2, false},
		{"overdue and capped", -10, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Enemy{ID: 3, X: 100, Y: 50, W: 30, H: 70, ShootTimer: tt.timer}
			b, ok := enemyFire(&e, tt.owned, cfg, fixedRoll(90))
			if ok != tt.fire {
				t.Fatalf("fired = %v, want %v", ok, tt.fire)
			}
			if !ok {
				if e.ShootTimer != tt.timer-1 {
					t.Errorf("timer = %d, want %d", e.ShootTimer, tt.timer-1)
				}
				return
			}
			if e.ShootTimer != 90 {
				t.Errorf("timer should be re-rolled, got %d", e.ShootTimer)
			}
			if b.X != 115 || b.Y != 120 || b.VY != 4 || b.VX != 0 || b.Owner != 3 {
				t.Errorf("unexpected bullet %+v", b)
			}
		})
	}
}

func TestOwnedShotsIgnoreOffscreenBullets(t *testing.T) {
	s := playing(t, quietConfig())
	s.enemyShots = []Bullet{
		{Owner: 1, Y: 100},
		{Owner: 1, Y: 650},
		{Owner: 2, Y: 100},
		{Owner: 1, Y: 600},
	}
	if got := s.ownedEnemyShots(1); got != 2 {
		t.Errorf("owned = %d, want 2", got)
	}
}

func TestMoveEnemy(t *testing.T) {
	cfg := config.DefaultZTMinerConfig().Enemies
	p := &Player{X: 100, Y: 400}

	basic := Enemy{Kind: EnemyBasic, X: 200, Y: 0, Speed: 2, Dir: -1}
	moveEnemy(&basic, p, cfg)
	if basic.X != 199.5 || basic.Y != 2 {
		t.Errorf("basic moved to (%g, %g), want (199.5, 2)", basic.X, basic.Y)
	}

	// 3-4-5 triangle toward the player
	chaser := Enemy{Kind: EnemyAggressive, X: p.X - 300, Y: p.Y - 400, Speed: 2}
	moveEnemy(&chaser, p, cfg)
	step := 2 * cfg.ChaseFactor
	if math.Abs(chaser.X-(p.X-300+0.6*step)) > 1e-9 || math.Abs(chaser.Y-(p.Y-400+0.8*step)) > 1e-9 {
		t.Errorf("aggressive moved to (%g, %g)", chaser.X, chaser.Y)
	}

	onTop := Enemy{Kind: EnemyAggressive, X: p.X, Y: p.Y, Speed: 2}
	moveEnemy(&onTop, p, cfg)
	if onTop.X != p.X || onTop.Y != p.Y {
		t.Error("aggressive enemy on top of the player should hold still")
	}
}

func TestStaticPatterns(t *testing.T) {
	cfg := config.DefaultZTMinerConfig().Statics
	p := &Player{X: 400, Y: 500}

	tests := []struct {
		pattern Pattern
		period  int
		volley  int
	}{
		{PatternCircular, 20, 8},
		{PatternSpiral, 8, 1},
		{PatternAimed, 40, 3},
	}
	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			st := StaticEnemy{ID: 5, Pattern: tt.pattern, X: 100, Y: 100, Size: 50}
			for i := 1; i < tt.period; i++ {
				if out := staticFire(&st, p, cfg); len(out) != 0 {
					t.Fatalf("fired %d bullets on tick %d", len(out), i)
				}
			}
			out := staticFire(&st, p, cfg)
			if len(out) != tt.volley {
				t.Fatalf("volley of %d, want %d", len(out), tt.volley)
			}
			if st.ShootTimer != 0 {
				t.Errorf("timer should reset after a volley, got %d", st.ShootTimer)
			}
			for _, b := range out {
				if b.Owner != 5 || b.W != 4 || b.H != 4 {
					t.Errorf("unexpected bullet %+v", b)
				}
			}
		})
	}
}

func TestCircularVolleyRotates(t *testing.T) {
	cfg := config.DefaultZTMinerConfig().Statics
	st := StaticEnemy{Pattern: PatternCircular, X: 100, Y: 100, Size: 50, ShootTimer: 19}

	out := staticFire(&st, &Player{}, cfg)
	// First bullet heads along +X, pushed out by the muzzle offset
	if b := out[0]; math.Abs(b.X-(125+10-2)) > 1e-9 || math.Abs(b.Y-(125-2)) > 1e-9 {
		t.Errorf("first bullet at (%g, %g)", b.X, b.Y)
	}
	if math.Abs(out[0].VX-3) > 1e-9 || math.Abs(out[0].VY) > 1e-9 {
		t.Errorf("first bullet velocity (%g, %g)", out[0].VX, out[0].VY)
	}
	if st.Angle != 22.5 {
		t.Errorf("ring angle = %g, want 22.5", st.Angle)
	}
}

func TestSpiralAdvancesOffset(t *testing.T) {
	cfg := config.DefaultZTMinerConfig().Statics
	st := StaticEnemy{Pattern: PatternSpiral, X: 100, Y: 100, Size: 50}

	var headings []float64
	for i := 0; i < 3*cfg.SpiralPeriod; i++ {
		for _, b := range staticFire(&st, &Player{}, cfg) {
			headings = append(headings, math.Atan2(b.VY, b.VX)*180/math.Pi)
		}
	}
	if len(headings) != 3 || st.SpiralOffset != 3 {
		t.Fatalf("got %d shots, offset %d", len(headings), st.SpiralOffset)
	}
	for i := 1; i < len(headings); i++ {
		if d := headings[i] - headings[i-1]; math.Abs(d-cfg.SpiralStep) > 1e-6 {
			t.Errorf("shot %d turned %g degrees, want %g", i, d, cfg.SpiralStep)
		}
	}
}

func TestAimedFanSkipsZeroDistance(t *testing.T) {
	cfg := config.DefaultZTMinerConfig().Statics
	st := StaticEnemy{Pattern: PatternAimed, X: 100, Y: 100, Size: 50, ShootTimer: cfg.AimedPeriod - 1}

	out := staticFire(&st, &Player{X: 100, Y: 100}, cfg)
	if len(out) != 0 {
		t.Fatalf("fired %d bullets at zero distance", len(out))
	}
	if st.ShootTimer != 0 {
		t.Error("timer should reset even when nothing fires")
	}

	st.ShootTimer = cfg.AimedPeriod - 1
	out = staticFire(&st, &Player{X: 100, Y: 400}, cfg)
	if len(out) != 3 {
		t.Fatalf("fan of %d, want 3", len(out))
	}
	// Middle bullet aims straight down from the emplacement's center
	mid := out[1]
	if math.Abs(mid.VX) > 1e-9 || math.Abs(mid.VY-cfg.AimedSpeed) > 1e-9 {
		t.Errorf("middle bullet velocity (%g, %g)", mid.VX, mid.VY)
	}
	if mid.X != 123 || mid.Y != 123 {
		t.Errorf("aimed bullets start at the center without muzzle offset, got (%g, %g)", mid.X, mid.Y)
	}
}
