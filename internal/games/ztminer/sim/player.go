package sim

import (
	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
)

// Player is the ship. It is created once per run and never destroyed;
// health reaching zero ends play instead.
type Player struct {
	X, Y          float64
	W, H          float64
	Health        int
	MaxHealth     int
	Invulnerable  int // Frames left before damage applies again
	Drilling      bool
	DrillCooldown int
	ShootCooldown int

	cfg config.PlayerConfig
}

func newPlayer(cfg config.PlayerConfig, field core.Box) Player {
	return Player{
		X:         field.W / 2,
		Y:         field.H - cfg.SpawnOffset,
		W:         cfg.Width,
		H:         cfg.Height,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		cfg:       cfg,
	}
}

// Box returns the ship hitbox.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// DrillBox returns the drill hitbox, fixed relative to the ship.
func (p Player) DrillBox() core.Box {
	d := p.cfg.Drill
	return core.NewBox(p.X+d.X, p.Y+d.Y, d.W, d.H)
}

// TakeDamage is the only way the player loses health. It applies only when
// the invulnerability counter is zero, then restarts the window.
// It reports whether the hit landed.
func (p *Player) TakeDamage(amount int) bool {
	if p.Invulnerable != 0 {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.Invulnerable = p.cfg.Invulnerability
	return true
}

// Heal restores health up to the maximum.
func (p *Player) Heal(amount int) {
	p.Health = core.Min(p.MaxHealth, p.Health+amount)
}

// Dead reports whether health is exhausted.
func (p Player) Dead() bool {
	return p.Health <= 0
}

// update moves the ship from held directions, tracks the drill and fires.
// Diagonal movement is not normalized. It returns a new bullet when one is fired.
func (p *Player) update(in core.InputFrame, field core.Box) (Bullet, bool) {
	if in.Has(core.ActionLeft) {
		p.X -= p.cfg.Speed
	}
	if in.Has(core.ActionRight) {
		p.X += p.cfg.Speed
	}
	if in.Has(core.ActionUp) {
		p.Y -= p.cfg.Speed
	}
	if in.Has(core.ActionDown) {
		p.Y += p.cfg.Speed
	}
	p.X = core.ClampF(p.X, 0, field.W-p.W)
	p.Y = core.ClampF(p.Y, 0, field.H-p.H)

	p.Drilling = in.Has(core.ActionDrill)
	if p.Drilling {
		p.DrillCooldown = p.cfg.DrillCooldown
	}
	if p.DrillCooldown > 0 {
		p.DrillCooldown--
	}

	var shot Bullet
	fired := false
	if in.Has(core.ActionShoot) && p.ShootCooldown < 1 {
		shot = Bullet{
			X:  p.X + p.W/2,
			Y:  p.Y,
			VY: -p.cfg.BulletSpeed,
			W:  p.cfg.BulletWidth,
			H:  p.cfg.BulletHeight,
		}
		fired = true
		p.ShootCooldown = p.cfg.ShootCooldown
	}
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}

	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	return shot, fired
}
