// Package sim is the ZT Miner simulation core: entity kinematics, the spawn
// director, the collision resolver, layer progression and the score ledger,
// driven one fixed 60 Hz frame at a time. It draws nothing and owns no text.
package sim

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
)

// Phase is the session's top-level state.
type Phase uint8

const (
	PhaseBriefing Phase = iota // Story briefing, shown to first-time players
	PhaseIntro                 // Title card with countdown
	PhasePlaying
	PhaseGameOver
	PhaseVictory
	PhaseEpilogue // Story epilogue, reachable from victory
)

func (p Phase) String() string {
	switch p {
	case PhaseBriefing:
		return "briefing"
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	case PhaseEpilogue:
		return "epilogue"
	default:
		return "unknown"
	}
}

// Events reports what happened during a Step.
type Events uint16

const (
	EventBriefingCompleted Events = 1 << iota // First-time briefing finished; persist it
	EventLayerCleared
	EventDeath
	EventVictory
	EventCheckpointRestart
	EventNewRun
	EventOrbCollected
	EventQuit
)

// Has reports whether all bits of f are set.
func (e Events) Has(f Events) bool {
	return e&f == f
}

// Options configures a new session.
type Options struct {
	Config    config.ZTMinerConfig
	Seed      int64
	FirstTime bool // Start with the briefing instead of the intro card

	// Rune lengths of each story line; they drive the typewriter reveal.
	Briefing []int
	Epilogue []int
}

const (
	revealPerTick = 2  // Characters revealed per frame
	minLineTicks  = 60 // Frames a line stays before it can be advanced
)

// Scene is the progress through a story sequence.
type Scene struct {
	Line     int
	Revealed int // Characters of the current line shown so far
	Ticks    int // Frames the current line has been up

	lengths []int
}

// Done reports whether every line has been advanced past.
func (sc Scene) Done() bool {
	return sc.Line >= len(sc.lengths)
}

func (sc Scene) lineLen() int {
	if sc.Done() {
		return 0
	}
	return sc.lengths[sc.Line]
}

// LineComplete reports whether the current line is fully revealed.
func (sc Scene) LineComplete() bool {
	return sc.Revealed >= sc.lineLen()
}

func (sc *Scene) tick() {
	if sc.Done() {
		return
	}
	sc.Ticks++
	sc.Revealed = min(sc.Revealed+revealPerTick, sc.lineLen())
}

// confirm finishes the current line's reveal, or advances once the line
// has been up long enough.
func (sc *Scene) confirm() {
	switch {
	case sc.Done():
	case !sc.LineComplete():
		sc.Revealed = sc.lineLen()
	case sc.Ticks >= minLineTicks:
		sc.Line++
		sc.Revealed = 0
		sc.Ticks = 0
	}
}

// Session owns all mutable state of one game and advances it per frame.
type Session struct {
	cfg   config.ZTMinerConfig
	opts  Options
	rng   *rand.Rand
	field core.Box

	phase      Phase
	paused     bool
	running    bool
	firstTime  bool
	introTicks int
	scene      Scene
	prev       core.InputFrame
	frame      int
	events     Events

	world    World
	ledger   Ledger
	director Director
	player   Player
	nextID   int

	shots        []Bullet // Player bullets
	enemyShots   []Bullet
	patternShots []Bullet
	enemies      []Enemy
	statics      []StaticEnemy
	obstacles    []Obstacle
	orbs         []HealthOrb
}

// New creates a session ready for its first frame.
func New(opts Options) *Session {
	s := &Session{
		cfg:       opts.Config,
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		field:     core.NewBox(0, 0, opts.Config.Playfield.Width, opts.Config.Playfield.Height),
		running:   true,
		firstTime: opts.FirstTime,
		prev:      core.NewInputFrame(),
	}
	s.director = newDirector(&s.cfg, s.rng)
	s.resetRun()
	if s.firstTime {
		s.startScene(PhaseBriefing, opts.Briefing)
	} else {
		s.phase = PhaseIntro
		s.introTicks = s.cfg.World.IntroTicks
	}
	return s
}

// Step advances the session by one frame using the actions held this frame.
// One-shot actions fire on the frame they become held.
func (s *Session) Step(in core.InputFrame) Events {
	s.events = 0
	defer func() { s.prev = in.Clone() }()

	if !s.running {
		return s.events
	}
	if in.Pressed(s.prev, core.ActionQuit) {
		s.running = false
		s.events |= EventQuit
		return s.events
	}

	switch s.phase {
	case PhaseBriefing:
		s.stepScene(in, func() {
			if s.firstTime {
				s.firstTime = false
				s.events |= EventBriefingCompleted
			}
			s.phase = PhasePlaying
		})

	case PhaseIntro:
		switch {
		case in.Pressed(s.prev, core.ActionBriefing):
			s.startScene(PhaseBriefing, s.opts.Briefing)
		case in.Pressed(s.prev, core.ActionConfirm):
			s.phase = PhasePlaying
		default:
			s.introTicks--
			if s.introTicks <= 0 {
				s.phase = PhasePlaying
			}
		}

	case PhasePlaying:
		if in.Pressed(s.prev, core.ActionPause) {
			s.paused = !s.paused
		}
		if !s.paused {
			s.frame++
			s.stepPlaying(in)
		}

	case PhaseGameOver:
		if in.Pressed(s.prev, core.ActionRestart) {
			s.restartFromCheckpoint()
		}

	case PhaseVictory:
		switch {
		case in.Pressed(s.prev, core.ActionRestart):
			s.resetRun()
			s.phase = PhasePlaying
			s.events |= EventNewRun
		case in.Pressed(s.prev, core.ActionOutro):
			s.startScene(PhaseEpilogue, s.opts.Epilogue)
		}

	case PhaseEpilogue:
		s.stepScene(in, func() { s.phase = PhaseVictory })
	}
	return s.events
}

func (s *Session) startScene(phase Phase, lengths []int) {
	s.phase = phase
	s.scene = Scene{lengths: lengths}
}

// stepScene advances a story sequence; Back skips the rest of it.
func (s *Session) stepScene(in core.InputFrame, done func()) {
	if in.Pressed(s.prev, core.ActionBack) {
		done()
		return
	}
	if in.Pressed(s.prev, core.ActionConfirm) || in.Pressed(s.prev, core.ActionShoot) {
		s.scene.confirm()
	}
	s.scene.tick()
	if s.scene.Done() {
		done()
	}
}

// stepPlaying runs one frame of gameplay.
func (s *Session) stepPlaying(in core.InputFrame) {
	p := &s.player

	if shot, fired := p.update(in, s.field); fired {
		s.shots = append(s.shots, shot)
	}
	for i := range s.shots {
		s.shots[i].advance()
	}
	s.shots = slices.DeleteFunc(s.shots, func(b Bullet) bool { return b.Y < 0 })

	if s.checkDeath() {
		return
	}

	s.world.advance()
	if s.world.readyToDescend() {
		s.creditLayer(s.world.Layer)
		s.world.enterNextLayer(p.Y)
		s.director.rollOrbCap()
		s.events |= EventLayerCleared
	}
	if s.world.reachedSurface() {
		s.creditLayer(s.world.Layer)
		s.phase = PhaseVictory
		s.events |= EventVictory
		return
	}

	s.director.update(s)

	scroll := s.cfg.World.ScrollSpeed
	bottom := s.field.H + s.cfg.Playfield.DespawnMargin
	margin := s.cfg.Playfield.DespawnMargin

	for i := range s.orbs {
		o := &s.orbs[i]
		o.Y += scroll
		o.Pulse++
		if o.Pulse >= s.cfg.Orbs.PulsePeriod {
			o.Pulse = 0
		}
	}
	s.orbs = slices.DeleteFunc(s.orbs, func(o HealthOrb) bool { return o.Y > bottom })

	s.director.ensureObstacles(s)

	for i := range s.enemies {
		e := &s.enemies[i]
		moveEnemy(e, p, s.cfg.Enemies)
		if shot, ok := enemyFire(e, s.ownedEnemyShots(e.ID), s.cfg.Enemies, s.director.between); ok {
			s.enemyShots = append(s.enemyShots, shot)
		}
		e.Y += scroll
	}
	s.enemies = slices.DeleteFunc(s.enemies, func(e Enemy) bool { return e.Y > bottom })

	for i := range s.statics {
		st := &s.statics[i]
		s.patternShots = append(s.patternShots, staticFire(st, p, s.cfg.Statics)...)
		st.Y += scroll
	}
	s.statics = slices.DeleteFunc(s.statics, func(st StaticEnemy) bool { return st.Y > bottom })

	for i := range s.enemyShots {
		b := &s.enemyShots[i]
		b.advance()
		b.Y += scroll
	}
	s.enemyShots = slices.DeleteFunc(s.enemyShots, func(b Bullet) bool {
		return b.Y > bottom || b.Y < -margin
	})

	for i := range s.patternShots {
		b := &s.patternShots[i]
		b.advance()
		b.Y += scroll
	}
	s.patternShots = slices.DeleteFunc(s.patternShots, func(b Bullet) bool {
		return b.X < -margin || b.X > s.field.W+margin || b.Y < -margin || b.Y > bottom
	})

	for i := range s.obstacles {
		s.obstacles[i].Y += scroll
	}
	s.obstacles = slices.DeleteFunc(s.obstacles, func(o Obstacle) bool { return o.Y > bottom })

	s.resolveCollisions()
	s.checkDeath()
}

// ownedEnemyShots counts an enemy's live bullets still on screen.
func (s *Session) ownedEnemyShots(owner int) int {
	n := 0
	for i := range s.enemyShots {
		if s.enemyShots[i].Owner == owner && s.enemyShots[i].Y <= s.field.H {
			n++
		}
	}
	return n
}

// creditLayer pays a layer's completion bonus once.
func (s *Session) creditLayer(layer int) {
	if !s.world.completeLayer(layer) {
		return
	}
	if bonus := s.cfg.Scoring.LayerBonus; layer < len(bonus) {
		s.ledger.Credit(CategoryBonus, bonus[layer])
	}
}

// checkDeath ends play when the player has no health left.
func (s *Session) checkDeath() bool {
	if !s.player.Dead() {
		return false
	}
	s.ledger.Penalize(s.cfg.Scoring.DeathPenalty)
	s.phase = PhaseGameOver
	s.events |= EventDeath
	return true
}

// restartFromCheckpoint resumes the current layer from its start.
// Enemies and obstacles already in play are kept.
func (s *Session) restartFromCheckpoint() {
	p := &s.player
	p.Health = p.MaxHealth
	p.X = s.field.W / 2
	if y, ok := s.world.Checkpoint(s.world.Layer); ok {
		p.Y = y
	} else {
		p.Y = s.field.H - s.cfg.Player.SpawnOffset
	}
	s.shots = s.shots[:0]
	s.enemyShots = s.enemyShots[:0]
	s.patternShots = s.patternShots[:0]
	s.orbs = s.orbs[:0]
	s.director.rollOrbCap()
	s.world.rewind()
	s.phase = PhasePlaying
	s.paused = false
	s.events |= EventCheckpointRestart
}

// resetRun clears everything for a fresh run from the first layer.
func (s *Session) resetRun() {
	s.player = newPlayer(s.cfg.Player, s.field)
	s.world = newWorld(s.cfg.World, s.player.Y)
	s.ledger = Ledger{}
	s.shots = nil
	s.enemyShots = nil
	s.patternShots = nil
	s.enemies = nil
	s.statics = nil
	s.obstacles = nil
	s.orbs = nil
	s.director.resetTimers()
	s.director.rollOrbCap()
	s.paused = false
	s.frame = 0
}

func (s *Session) addEnemy(e Enemy) {
	s.nextID++
	e.ID = s.nextID
	s.enemies = append(s.enemies, e)
}

func (s *Session) addStatic(st StaticEnemy) {
	s.nextID++
	st.ID = s.nextID
	s.statics = append(s.statics, st)
}

func (s *Session) addObstacle(kind ObstacleKind, x, y, w, h float64) {
	s.obstacles = append(s.obstacles, newObstacle(s.cfg.Obstacles, kind, s.world.Layer, x, y, w, h))
}

// orbSpotClear reports whether a box overlaps no obstacle.
func (s *Session) orbSpotClear(b core.Box) bool {
	for i := range s.obstacles {
		if b.Intersects(s.obstacles[i].Box()) {
			return false
		}
	}
	return true
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Running reports whether the host should keep looping.
func (s *Session) Running() bool { return s.running }

// Paused reports whether gameplay is frozen.
func (s *Session) Paused() bool { return s.paused }

// Score returns the current score.
func (s *Session) Score() int { return s.ledger.Score() }

// Ledger returns the score breakdown.
func (s *Session) Ledger() Ledger { return s.ledger }

// World returns a copy of the progression state.
func (s *Session) World() World { return s.world }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Frame returns gameplay frames simulated since the run began.
func (s *Session) Frame() int { return s.frame }

// IntroTicks returns frames left on the intro card.
func (s *Session) IntroTicks() int { return s.introTicks }

// Scene returns story sequence progress.
func (s *Session) Scene() Scene { return s.scene }

// Field returns the playfield bounds.
func (s *Session) Field() core.Box { return s.field }
