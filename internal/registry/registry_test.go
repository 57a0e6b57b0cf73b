package registry

import (
	"testing"

	"github.com/vovakirdan/bounce-arcade/internal/core"
)

type stubGame struct {
	id    string
	ticks int
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Controls() []Control {
	return []Control{{Key: "p", Help: "pause"}}
}
func (g *stubGame) Reset(core.RuntimeConfig) { g.ticks = 0 }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.ticks++
	return core.StepResult{State: g.State()}
}
func (g *stubGame) Render(*core.Screen)   {}
func (g *stubGame) State() core.GameState { return core.GameState{Score: g.ticks} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || Exists("missing") {
		t.Error("Exists() mismatch")
	}

	g1, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	g2, _ := Create("stub-a")
	g1.Step(core.NewInputFrame())
	if g2.State().Score != 0 {
		t.Error("Create() should return independent instances")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	info, ok := Info("stub-b")
	if !ok || info.Title != "Stub stub-b" || len(info.Controls) != 1 {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	var ids []string
	for _, gi := range List() {
		if gi.ID == "stub-a" || gi.ID == "stub-b" {
			ids = append(ids, gi.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub-a" {
		t.Errorf("List() not sorted: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
