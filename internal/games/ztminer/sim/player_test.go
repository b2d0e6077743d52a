package sim

import (
	"testing"

	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
)

var testField = core.NewBox(0, 0, 800, 600)

func testPlayer() Player {
	return newPlayer(config.DefaultZTMinerConfig().Player, testField)
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name           string
		startX, startY float64
		actions        []core.Action
		wantX, wantY   float64
	}{
		{"idle", 400, 300, nil, 400, 300},
		{"left", 400, 300, []core.Action{core.ActionLeft}, 395, 300},
		{"right", 400, 300, []core.Action{core.ActionRight}, 405, 300},
		{"up", 400, 300, []core.Action{core.ActionUp}, 400, 295},
		{"down", 400, 300, []core.Action{core.ActionDown}, 400, 305},
		{"diagonal is not normalized", 400, 300, []core.Action{core.ActionUp, core.ActionRight}, 405, 295},
		{"opposite keys cancel", 400, 300, []core.Action{core.ActionLeft, core.ActionRight}, 400, 300},
		{"clamped at top left", 2, 3, []core.Action{core.ActionUp, core.ActionLeft}, 0, 0},
		{"clamped at bottom right", 758, 538, []core.Action{core.ActionDown, core.ActionRight}, 760, 540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			p.X, p.Y = tt.startX, tt.startY
			p.update(frame(tt.actions...), testField)
			if p.X != tt.wantX || p.Y != tt.wantY {
				t.Errorf("position = (%g, %g), want (%g, %g)", p.X, p.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestShootCooldown(t *testing.T) {
	p := testPlayer()

	var fired []int
	for f := 0; f < 35; f++ {
		shot, ok := p.update(frame(core.ActionShoot), testField)
		if !ok {
			continue
		}
		fired = append(fired, f)
		if shot.VY != -8 || shot.W != 4 || shot.H != 10 {
			t.Errorf("frame %d: shot = %+v", f, shot)
		}
		if shot.X != p.X+p.W/2 || shot.Y != p.Y {
			t.Errorf("frame %d: shot at (%g, %g), want ship top center", f, shot.X, shot.Y)
		}
	}

	want := []int{0, 10, 20, 30}
	if len(fired) != len(want) {
		t.Fatalf("fired on frames %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("fired on frames %v, want %v", fired, want)
		}
	}
}

func TestShootNeedsHeldKey(t *testing.T) {
	p := testPlayer()
	for f := 0; f < 20; f++ {
		if _, ok := p.update(frame(), testField); ok {
			t.Fatalf("frame %d: fired without the shoot key", f)
		}
	}
}

func TestDrillOnlyWhileHeld(t *testing.T) {
	p := testPlayer()

	steps := []struct {
		held bool
		want bool
	}{
		{true, true},
		{true, true},
		{false, false},
		{true, true},
		{false, false},
	}

	for i, st := range steps {
		in := frame()
		if st.held {
			in = frame(core.ActionDrill)
		}
		p.update(in, testField)
		if p.Drilling != st.want {
			t.Errorf("step %d: drilling = %v, want %v", i, p.Drilling, st.want)
		}
	}
}

func TestInvulnerabilityCountsDown(t *testing.T) {
	p := testPlayer()
	if !p.TakeDamage(10) {
		t.Fatal("first hit should land")
	}
	if p.Invulnerable != 60 {
		t.Fatalf("invulnerable = %d, want 60", p.Invulnerable)
	}
	for range 59 {
		p.update(frame(), testField)
	}
	if p.TakeDamage(10) {
		t.Error("hit one frame before the window closes should be absorbed")
	}
	p.update(frame(), testField)
	if p.Invulnerable != 0 || !p.TakeDamage(10) {
		t.Errorf("window should be over, invulnerable = %d", p.Invulnerable)
	}
	if p.Health != 80 {
		t.Errorf("health = %d, want 80", p.Health)
	}
}

func TestOrbPulseWrapsEveryPeriod(t *testing.T) {
	s := playing(t, quietConfig())
	s.orbs = append(s.orbs, HealthOrb{X: 10, Y: 0, Size: 20})

	run(s, 59)
	if got := s.orbs[0].Pulse; got != 59 {
		t.Fatalf("pulse after 59 frames = %d, want 59", got)
	}
	run(s, 1)
	if got := s.orbs[0].Pulse; got != 0 {
		t.Errorf("pulse after 60 frames = %d, want 0", got)
	}
}
