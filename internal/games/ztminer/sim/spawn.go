package sim

import (
	"math/rand"

	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
)

// Formation names a multi-obstacle spawn layout.
type Formation uint8

const (
	FormationWall Formation = iota
	FormationMaze
	FormationScattered
	FormationTunnel
	FormationCluster
	formationCount
)

func (f Formation) String() string {
	switch f {
	case FormationWall:
		return "wall"
	case FormationMaze:
		return "maze"
	case FormationScattered:
		return "scattered"
	case FormationTunnel:
		return "tunnel"
	case FormationCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// Director injects new content on layer-scaled timers.
// Spawned entities appear above the visible top so they scroll into view.
type Director struct {
	cfg  *config.ZTMinerConfig
	diff *config.LayerDifficulty
	rng  *rand.Rand

	enemyTimer     int
	staticTimer    int
	formationTimer int
	orbTimer       int

	orbsThisLayer int
	orbCap        int
}

func newDirector(cfg *config.ZTMinerConfig, rng *rand.Rand) Director {
	d := Director{
		cfg:  cfg,
		diff: config.NewLayerDifficulty(cfg.Difficulty),
		rng:  rng,
	}
	d.rollOrbCap()
	return d
}

// between returns a uniform integer in [lo, hi]. A reversed range yields lo.
func (d *Director) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.rng.Intn(hi-lo+1)
}

// rollOrbCap picks how many orbs the current layer may spawn and clears the count.
func (d *Director) rollOrbCap() {
	d.orbsThisLayer = 0
	d.orbCap = d.between(d.cfg.Orbs.MinPerLayer, d.cfg.Orbs.MaxPerLayer)
}

// OrbsThisLayer returns how many orbs the current layer has spawned.
func (d *Director) OrbsThisLayer() int {
	return d.orbsThisLayer
}

// OrbCap returns the current layer's orb quota.
func (d *Director) OrbCap() int {
	return d.orbCap
}

// update advances the enemy, static and formation timers and spawns
// whatever is due.
func (d *Director) update(s *Session) {
	layer := s.world.Layer
	d.enemyTimer++
	d.staticTimer++
	d.formationTimer++

	if d.enemyTimer >= d.diff.EnemyInterval(layer) {
		d.spawnEnemy(s)
		d.enemyTimer = 0
	}
	if d.staticTimer >= d.diff.StaticInterval(layer) {
		d.spawnStatic(s)
		d.staticTimer = 0
	}
	if d.formationTimer >= d.cfg.Obstacles.FormationInterval {
		if len(s.obstacles) < d.cfg.Obstacles.MaxForFormation {
			d.spawnFormation(s, Formation(d.rng.Intn(int(formationCount))))
		}
		d.formationTimer = 0
	}

	d.orbTimer++
	if d.orbTimer >= d.cfg.Orbs.Interval {
		d.spawnOrb(s)
	}
}

// ensureObstacles keeps a minimum obstacle population on screen.
func (d *Director) ensureObstacles(s *Session) {
	oc := d.cfg.Obstacles
	if len(s.obstacles) >= oc.MinCount {
		return
	}
	w := int(d.cfg.Playfield.Width)
	for range d.count(oc.Floor) {
		width := d.width(oc.Floor)
		height := d.span(oc.Floor.Height)
		x := d.between(0, w-width)
		kind := d.pick(ObstacleBasic, ObstacleCrystal, ObstacleReinforced)
		s.addObstacle(kind, float64(x), float64(-d.span(oc.Floor.Ahead)), float64(width), float64(height))
	}
}

func (d *Director) spawnEnemy(s *Session) {
	if len(s.enemies) >= d.diff.EnemyCap(s.world.Layer) {
		return
	}
	ec := d.cfg.Enemies
	kind := EnemyBasic
	if d.rng.Intn(2) == 1 {
		kind = EnemyAggressive
	}
	hp := ec.BasicHealth
	if kind == EnemyAggressive {
		hp = ec.AggressiveHealth
	}
	dir := 1.0
	if d.rng.Intn(2) == 0 {
		dir = -1
	}
	e := Enemy{
		Kind:       kind,
		Layer:      s.world.Layer,
		X:          float64(d.between(0, int(d.cfg.Playfield.Width-ec.Width))),
		Y:          -float64(d.between(int(ec.SpawnMinAhead), int(ec.SpawnMaxAhead))),
		W:          ec.Width,
		H:          ec.Height,
		Speed:      ec.MinSpeed + d.rng.Float64()*(ec.MaxSpeed-ec.MinSpeed),
		Dir:        dir,
		Health:     hp,
		MaxHealth:  hp,
		ShootTimer: d.between(ec.MinShootTicks, ec.MaxShootTicks),
	}
	s.addEnemy(e)
}

func (d *Director) spawnStatic(s *Session) {
	if len(s.statics) >= d.diff.StaticCap(s.world.Layer) {
		return
	}
	sc := d.cfg.Statics
	st := StaticEnemy{
		Pattern:   Pattern(d.rng.Intn(3)),
		Layer:     s.world.Layer,
		X:         float64(d.between(int(sc.EdgeMargin), int(d.cfg.Playfield.Width-sc.EdgeMargin-sc.Size))),
		Y:         -float64(d.between(int(sc.SpawnMinAhead), int(sc.SpawnMaxAhead))),
		Size:      sc.Size,
		Health:    sc.Health,
		MaxHealth: sc.Health,
	}
	s.addStatic(st)
}

// spawnFormation places one obstacle layout above the screen.
func (d *Director) spawnFormation(s *Session, f Formation) {
	oc := d.cfg.Obstacles
	add := func(kind ObstacleKind, x, y, width, height int) {
		s.addObstacle(kind, float64(x), float64(y), float64(width), float64(height))
	}

	switch f {
	case FormationWall:
		d.barrier(add, oc.Wall, ObstacleReinforced)

	case FormationMaze:
		d.rows(add, oc.Maze, ObstacleBasic, ObstacleCrystal)

	case FormationTunnel:
		d.barrier(add, oc.Tunnel, ObstacleIndestructible)

	case FormationCluster:
		d.rows(add, oc.Cluster, ObstacleBasic, ObstacleCrystal, ObstacleReinforced)

	case FormationScattered:
		w := int(d.cfg.Playfield.Width)
		for range d.count(oc.Scattered) {
			width := d.width(oc.Scattered)
			height := d.span(oc.Scattered.Height)
			x := d.between(0, w-width)
			add(d.pick(ObstacleBasic, ObstacleCrystal, ObstacleReinforced), x, -d.span(oc.Scattered.Ahead), width, height)
		}
	}
}

// barrier adds the two halves of a full-width barrier around a gap.
// A half narrower than the minimum slab width is skipped.
func (d *Director) barrier(add func(ObstacleKind, int, int, int, int), spec config.FormationSpec, kind ObstacleKind) {
	w := int(d.cfg.Playfield.Width)
	edge := int(d.cfg.Obstacles.MinSlabWidth)
	margin := int(spec.Margin)

	y := -d.span(spec.Ahead)
	height := d.span(spec.Height)
	gap := d.span(spec.Gap)
	start := d.between(margin, w-gap-margin)

	if start > edge {
		add(kind, 0, y, start, height)
	}
	if end := start + gap; end < w-edge {
		add(kind, end, y, w-end, height)
	}
}

// rows adds staggered rectangles, one per row, Spacing apart.
func (d *Director) rows(add func(ObstacleKind, int, int, int, int), spec config.FormationSpec, kinds ...ObstacleKind) {
	w := int(d.cfg.Playfield.Width)
	base := -d.span(spec.Ahead)
	for i := range d.count(spec) {
		width := d.width(spec)
		y := base + i*int(spec.Spacing)
		add(d.pick(kinds...), d.between(0, w-width), y, width, d.span(spec.Height))
	}
}

// span returns a uniform integer in a configured range.
func (d *Director) span(r config.Span) int {
	return d.between(int(r.Min), int(r.Max))
}

// width returns a rectangle width from a fraction-of-playfield range.
func (d *Director) width(spec config.FormationSpec) int {
	w := d.cfg.Playfield.Width
	return d.between(int(w*spec.Width.Min), int(w*spec.Width.Max))
}

func (d *Director) count(spec config.FormationSpec) int {
	return d.span(spec.Count)
}

// spawnOrb places an orb when the layer quota allows and the spot is clear.
// The timer resets only on success, so a blocked spot is retried next frame.
func (d *Director) spawnOrb(s *Session) {
	if d.orbsThisLayer >= d.orbCap {
		return
	}
	oc := d.cfg.Orbs
	x := float64(d.between(int(oc.EdgeMargin), int(d.cfg.Playfield.Width-oc.EdgeMargin)))
	if !s.orbSpotClear(core.NewBox(x, oc.SpawnY, oc.Size, oc.Size)) {
		return
	}
	s.orbs = append(s.orbs, HealthOrb{X: x, Y: oc.SpawnY, Size: oc.Size})
	d.orbsThisLayer++
	d.orbTimer = 0
}

func (d *Director) pick(kinds ...ObstacleKind) ObstacleKind {
	return kinds[d.rng.Intn(len(kinds))]
}

// resetTimers zeroes every spawn timer.
func (d *Director) resetTimers() {
	d.enemyTimer = 0
	d.staticTimer = 0
	d.formationTimer = 0
	d.orbTimer = 0
}
