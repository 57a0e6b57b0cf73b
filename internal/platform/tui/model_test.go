package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

// countingGame records every frame it is stepped with.
type countingGame struct {
	frames  []core.InputFrame
	resets  int
	overAt  int
	score   int
	paused  bool
	lastCfg core.RuntimeConfig
}

func (g *countingGame) ID() string { return "counting" }
func (g *countingGame) Title() string { return "Counting" }
func (g *countingGame) Controls() []registry.Control { return nil }

func (g *countingGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.lastCfg = cfg
}

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	copied := core.NewInputFrame()
	for a := range in.Actions {
		copied.Set(a)
	}
	g.frames = append(g.frames, copied)
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	return core.StepResult{State: g.State()}
}

func (g *countingGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "frames")
}

func (g *countingGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.overAt > 0 && len(g.frames) >= g.overAt,
		Paused:   g.paused,
	}
}

func newTestModel(g registry.Game, store *storage.Store) Model {
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 10, Seed: 1})
	m.Init()
	return m
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	if cmd == nil {
		t.Fatal("tick did not schedule the next frame")
	}
	return next.(Model)
}

func TestTicksFollowElapsedTime(t *testing.T) {
	g := &countingGame{}
	m := newTestModel(g, nil)

	start := time.Unix(1000, 0)
	m = tick(t, m, start) // First frame counts as one interval
	if len(g.frames) != 1 {
		t.Fatalf("after first frame: %d steps, expected 1", len(g.frames))
	}

	m = tick(t, m, start.Add(250*time.Millisecond))
	if len(g.frames) != 3 {
		t.Errorf("after 250ms at 10 Hz: %d steps, expected 3", len(g.frames))
	}

	tick(t, m, start.Add(300*time.Millisecond))
	if len(g.frames) != 4 {
		t.Errorf("after leftover 50ms: %d steps, expected 4", len(g.frames))
	}
}

func TestInputGoesToFirstTickOnly(t *testing.T) {
	g := &countingGame{}
	m := newTestModel(g, nil)

	next, _ := m.Update(runeKey("c"))
	m = next.(Model)

	start := time.Unix(1000, 0)
	m = tick(t, m, start)
	tick(t, m, start.Add(200*time.Millisecond))

	if !g.frames[0].Has(core.ActionCycle) {
		t.Error("first step missing the pressed key")
	}
	for i, f := range g.frames[1:] {
		if !f.Empty() {
			t.Errorf("step %d carried stale input", i+1)
		}
	}
}

func TestScoreSavedOnceOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &countingGame{overAt: 2, score: 42}
	m := newTestModel(g, store)

	at := time.Unix(1000, 0)
	for range 5 {
		m = tick(t, m, at)
		at = at.Add(100 * time.Millisecond)
	}

	scores, err := store.TopScores("counting", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Errorf("scores = %+v, expected a single 42", scores)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &countingGame{overAt: 1}
	m := newTestModel(g, nil)

	at := time.Unix(1000, 0)
	m = tick(t, m, at)
	resets := g.resets

	next, _ := m.Update(runeKey("r"))
	m = next.(Model)
	tick(t, m, at.Add(100*time.Millisecond))

	if g.resets != resets+1 {
		t.Errorf("resets = %d, expected %d", g.resets, resets+1)
	}
	if m.clock.Ticks() != 0 {
		t.Errorf("clock ticks = %d after restart, expected 0", m.clock.Ticks())
	}
}

func TestBackToMenuOnlyWhenPausedInSession(t *testing.T) {
	g := &countingGame{}
	m := newSessionModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 10})
	m.Init()

	next, _ := m.Update(runeKey("b"))
	m = next.(Model)
	if m.BackToMenu() {
		t.Fatal("back honoured while playing")
	}

	next, _ = m.Update(runeKey("p"))
	m = next.(Model)
	m = tick(t, m, time.Unix(1000, 0))

	next, _ = m.Update(runeKey("b"))
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("back ignored while paused")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&countingGame{}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("ctrl+c did not quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestResizeResetsGame(t *testing.T) {
	g := &countingGame{}
	m := newTestModel(g, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 12})
	m = next.(Model)

	if g.lastCfg.ScreenW != 50 || g.lastCfg.ScreenH != 12 {
		t.Errorf("Reset saw %dx%d, expected 50x12", g.lastCfg.ScreenW, g.lastCfg.ScreenH)
	}
	if !strings.Contains(m.View(), "frames") {
		t.Error("View() missing game output")
	}
}

// resizingGame follows resizes without resetting.
type resizingGame struct {
	countingGame
	resized int
}

func (g *resizingGame) Resize(cfg core.RuntimeConfig) {
	g.resized++
	g.lastCfg = cfg
}

func TestResizePrefersResizer(t *testing.T) {
	g := &resizingGame{}
	m := newTestModel(g, nil)
	resets := g.resets

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 12})
	_ = next.(Model)

	if g.resized != 1 {
		t.Errorf("Resize called %d times, expected 1", g.resized)
	}
	if g.resets != resets {
		t.Errorf("Reset called on resize, resets %d -> %d", resets, g.resets)
	}
	if g.lastCfg.ScreenW != 50 || g.lastCfg.ScreenH != 12 {
		t.Errorf("Resize saw %dx%d, expected 50x12", g.lastCfg.ScreenW, g.lastCfg.ScreenH)
	}
}
