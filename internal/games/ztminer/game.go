// Package ztminer adapts the ZT Miner simulation to the arcade host:
// it loads tuning config, projects the world onto the terminal grid,
// draws the HUD and story screens, and keeps the per-profile briefing flag.
package ztminer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
	"github.com/vovakirdan/zt-miner/internal/games/ztminer/sim"
	"github.com/vovakirdan/zt-miner/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "ztminer"

// briefingFlag marks a profile that has seen the story briefing.
const briefingFlag = "briefing_seen"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game diagnostics to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for ZT Miner.
type Game struct {
	session *sim.Session
	runtime core.RuntimeConfig
	cfg     config.ZTMinerConfig

	store   core.FlagStore
	profile string
	seen    bool // Briefing already shown to this profile

	sprites []sim.Sprite
}

// New creates a new ZT Miner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "ZT Miner"
}

// AttachProfile binds the game to a player's persisted flags.
// A failed read is treated as a first visit.
func (g *Game) AttachProfile(store core.FlagStore, profile string) {
	g.store = store
	g.profile = profile
	g.seen = false
	if store == nil {
		return
	}
	seen, err := store.Flag(profile, briefingFlag)
	if err != nil {
		logger.Warn("could not read briefing flag", "profile", profile, "error", err)
		return
	}
	g.seen = seen
}

// Reset starts a new session from the title or briefing screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadZTMiner(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.session = sim.New(sim.Options{
		Config:    cfg,
		Seed:      runtime.Seed,
		FirstTime: !g.seen,
		Briefing:  runeLens(briefingLines),
		Epilogue:  runeLens(epilogueLines),
	})
	logger.Debug("session reset", "seed", runtime.Seed, "preset", difficultyPreset, "first_time", !g.seen)
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	ev := g.session.Step(in)

	if ev.Has(sim.EventBriefingCompleted) {
		g.markBriefingSeen()
	}
	if ev.Has(sim.EventLayerCleared) {
		w := g.session.World()
		logger.Debug("layer cleared", "layer", w.Layer, "theme", config.ThemeName(w.Layer), "score", g.session.Score())
	}
	if ev.Has(sim.EventDeath) {
		logger.Debug("player died", "layer", g.session.World().Layer, "score", g.session.Score())
	}
	if ev.Has(sim.EventVictory) {
		logger.Info("surface reached", "profile", g.profile, "score", g.session.Score(), "frames", g.session.Frame())
	}

	return core.StepResult{
		State:  g.State(),
		NewRun: ev.Has(sim.EventNewRun),
	}
}

func (g *Game) markBriefingSeen() {
	g.seen = true
	if g.store == nil {
		return
	}
	if err := g.store.SetFlag(g.profile, briefingFlag, true); err != nil {
		logger.Warn("could not save briefing flag", "profile", g.profile, "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Running: true}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: phase == sim.PhaseGameOver,
		Victory:  phase == sim.PhaseVictory || phase == sim.PhaseEpilogue,
		Paused:   g.session.Paused(),
		Running:  g.session.Running(),
	}
}

// Depth returns the layer index the run has reached.
func (g *Game) Depth() int {
	if g.session == nil {
		return 0
	}
	return g.session.World().Layer
}

// Session exposes the running simulation.
func (g *Game) Session() *sim.Session {
	return g.session
}

var (
	_ registry.Game         = (*Game)(nil)
	_ registry.ProfileAware = (*Game)(nil)
	_ registry.Progress     = (*Game)(nil)
)

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
