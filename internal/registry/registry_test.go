package registry

import (
	"testing"

	"github.com/vovakirdan/zt-miner/internal/core"
)

type stubGame struct{ state core.GameState }

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{Running: true} }
func (g *stubGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(dst *core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterCreate(t *testing.T) {
	Register("stub-test", func() Game { return &stubGame{} })

	if !Exists("stub-test") {
		t.Fatal("expected stub-test to be registered")
	}

	g, err := Create("stub-test")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-test" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing stub-test")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-test", func() Game { return &stubGame{} })
}
