package tui

import "github.com/vovakirdan/zt-miner/internal/core"

// Terminals report key presses and auto-repeats but never releases, so a
// held key is inferred from how recently it was seen.
const (
	firstHoldTicks  = 18 // Covers the typical auto-repeat delay
	repeatHoldTicks = 6  // Covers the gap between auto-repeats
)

// HeldKeys turns a stream of key presses into per-tick "currently held" frames.
type HeldKeys struct {
	until map[core.Action]int // Tick at which each action stops being held
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{until: make(map[core.Action]int)}
}

// continuous reports whether an action is meant to be held down.
func continuous(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionDrill, core.ActionShoot:
		return true
	}
	return false
}

// Press records a key press seen at tick now.
func (h *HeldKeys) Press(a core.Action, now int) {
	if a == core.ActionNone {
		return
	}
	if !continuous(a) {
		h.until[a] = now + 1
		return
	}
	if end, held := h.until[a]; held && end > now {
		h.until[a] = max(end, now+repeatHoldTicks)
		return
	}
	h.until[a] = now + firstHoldTicks
}

// Frame returns the actions held at tick now and forgets expired ones.
func (h *HeldKeys) Frame(now int) core.InputFrame {
	in := core.NewInputFrame()
	for a, end := range h.until {
		if end <= now {
			delete(h.until, a)
			continue
		}
		in.Set(a)
	}
	return in
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.until)
}
