package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zt-miner/internal/core"
	"github.com/vovakirdan/zt-miner/internal/registry"
	"github.com/vovakirdan/zt-miner/internal/storage"
)

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	profile string

	keys KeyMap
	held *HeldKeys
	tick int

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the current run's score is recorded
	newBest    bool // The recorded run beat every earlier run
}

// NewModel creates a model for game. A nil store disables persistence.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, profile string, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	if pa, ok := game.(registry.ProfileAware); ok {
		// A typed nil store must not reach the game as a non-nil interface.
		var flags core.FlagStore
		if store != nil {
			flags = store
		}
		pa.AttachProfile(flags, profile)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		logger:  logger,
		config:  cfg,
		profile: profile,
		keys:    DefaultKeyMap(),
		held:    NewHeldKeys(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		m.held.Press(m.keys.Action(msg), m.tick)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.held.Release()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation frame with the keys held right now.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.held.Frame(m.tick)
	m.tick++

	result := m.game.Step(in)
	m.gameState = result.State
	if result.NewRun {
		m.scoreSaved = false
		m.newBest = false
	}

	if m.gameState.Finished() {
		m.saveScore()
	}
	if !m.gameState.Running {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the run once. Failures are logged and play continues.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	entry := storage.ScoreEntry{
		GameID:  m.game.ID(),
		Profile: m.profile,
		Score:   m.gameState.Score,
		Victory: m.gameState.Victory,
	}
	if p, ok := m.game.(registry.Progress); ok {
		entry.Layer = p.Depth()
	}
	best, bestErr := m.store.HighScore(entry.GameID)
	if bestErr != nil {
		m.logger.Warn("could not read high score", "error", bestErr)
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "profile", m.profile, "score", entry.Score, "error", err)
		return
	}
	m.newBest = bestErr == nil && entry.Score > best
	m.logger.Info("score saved", "profile", m.profile, "score", entry.Score, "layer", entry.Layer, "victory", entry.Victory, "new_best", m.newBest)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".ztminer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the host.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, profile string, logger *log.Logger) error {
	model := NewModel(game, store, cfg, profile, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
