package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zt-miner/internal/core"
)

// KeyMap binds terminal keys to game actions.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Drill    key.Binding
	Shoot    key.Binding
	Confirm  key.Binding
	Restart  key.Binding
	Briefing key.Binding
	Outro    key.Binding
	Pause    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down")),
		Left:     key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
		Right:    key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
		Drill:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "drill")),
		Shoot:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Briefing: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "briefing")),
		Outro:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "epilogue")),
		Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Back:     key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "skip")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drill, k.Shoot, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Drill, k.Shoot, k.Pause},
		{k.Confirm, k.Back, k.Briefing, k.Outro, k.Restart, k.Quit},
	}
}

// Action translates a key message to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		b key.Binding
		a core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Drill, core.ActionDrill},
		{k.Shoot, core.ActionShoot},
		{k.Confirm, core.ActionConfirm},
		{k.Restart, core.ActionRestart},
		{k.Briefing, core.ActionBriefing},
		{k.Outro, core.ActionOutro},
		{k.Pause, core.ActionPause},
		{k.Back, core.ActionBack},
	}
	for _, kb := range bindings {
		if key.Matches(msg, kb.b) {
			return kb.a
		}
	}
	return core.ActionNone
}
