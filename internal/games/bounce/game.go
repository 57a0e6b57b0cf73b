// Package bounce is the interactive front end of the kinematics simulator:
// a screenful of bouncing shapes whose gravity, restitution, count and
// shape can be changed while they move.
package bounce

import (
	"fmt"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/kinematics"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

const (
	// hudRows are reserved at the top of the screen for the status line.
	hudRows = 1
	// cellAspect is how many columns make up one arena unit, so that
	// shapes look round on terminals with tall cells.
	cellAspect = 2.0
	// noticeTicks is how long a notice stays on the status line.
	noticeTicks = 120
	// maxRestitution caps the Right key; above 1 bodies gain energy.
	maxRestitution = 1.0
)

var (
	configPath string
	preset     config.BouncePreset
)

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects a physics preset for the next Reset.
func SetPreset(name string) error {
	p := config.BouncePreset(name)
	cfg := config.DefaultBounceConfig()
	if err := config.ApplyBouncePreset(&cfg, p); err != nil {
		return err
	}
	preset = p
	return nil
}

// Game adapts a kinematics.Simulator to the registry.Game interface.
type Game struct {
	cfg     config.BounceConfig
	sim     *kinematics.Simulator
	runtime core.RuntimeConfig
	paused  bool

	notice    string
	noticeTTL int
}

// New creates a new bounce toy. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string {
	return "bounce"
}

func (g *Game) Title() string {
	return "Bouncing Shapes"
}

// Controls lists the key bindings.
func (g *Game) Controls() []registry.Control {
	return []registry.Control{
		{Key: "↑/↓", Help: "gravity"},
		{Key: "←/→", Help: "bounciness"},
		{Key: "+/-", Help: "body count"},
		{Key: "c", Help: "cycle shape"},
		{Key: "r", Help: "respawn"},
		{Key: "p", Help: "pause"},
	}
}

// Reset loads the config and spawns a fresh population sized to the
// screen. A resize goes through here too, which re-seeds the arena.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.notice, g.noticeTTL = "", 0

	cfg, err := config.LoadBounce(configPath)
	if err != nil {
		cfg = config.DefaultBounceConfig()
		g.setNotice("config: " + err.Error())
	}
	//nolint:errcheck // Preset was validated by SetPreset
	config.ApplyBouncePreset(&cfg, preset)
	g.cfg = cfg

	params, err := cfg.Params()
	if err != nil {
		params = kinematics.DefaultParams()
		g.setNotice("config: " + err.Error())
	}

	arena := ArenaFor(runtime.ScreenW, runtime.ScreenH)
	sim, err := kinematics.New(params, arena, runtime.Seed)
	if err != nil {
		g.setNotice(err.Error())
		sim, _ = kinematics.New(kinematics.DefaultParams(), kinematics.NewArena(1, 1), runtime.Seed)
	}
	g.sim = sim
}

// Resize fits the arena to a new screen size. Bodies are re-seeded but
// the gravity, restitution, count and shape set from the keyboard stay.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.sim == nil {
		g.Reset(runtime)
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	arena := ArenaFor(runtime.ScreenW, runtime.ScreenH)
	if err := g.sim.Resize(arena.Width(), arena.Height()); err != nil {
		g.setNotice(err.Error())
	}
}

// ArenaFor returns the arena that fits a screen of the given size below
// the status line.
func ArenaFor(screenW, screenH int) kinematics.Arena {
	w := float64(screenW) / cellAspect
	h := float64(screenH - hudRows)
	return kinematics.NewArena(max(w, 1), max(h, 1))
}

// Step applies the frame's input and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	g.handleInput(in)

	if g.noticeTTL > 0 {
		g.noticeTTL--
		if g.noticeTTL == 0 {
			g.notice = ""
		}
	}

	if !g.paused {
		g.sim.Tick()
	}
	return core.StepResult{State: g.State(), Notice: g.notice}
}

func (g *Game) handleInput(in core.InputFrame) {
	p := g.sim.Params()
	ctl := g.cfg.Controls

	var err error
	switch {
	case in.Has(core.ActionUp):
		err = g.sim.SetGravity(p.Gravity + ctl.GravityStep)
	case in.Has(core.ActionDown):
		err = g.sim.SetGravity(p.Gravity - ctl.GravityStep)
	case in.Has(core.ActionRight):
		err = g.sim.SetRestitution(min(p.Restitution+ctl.RestitutionStep, maxRestitution))
	case in.Has(core.ActionLeft):
		err = g.sim.SetRestitution(max(p.Restitution-ctl.RestitutionStep, 0))
	case in.Has(core.ActionMore):
		err = g.sim.SetPopulation(min(p.Count+ctl.CountStep, ctl.MaxCount))
	case in.Has(core.ActionLess):
		err = g.sim.SetPopulation(max(p.Count-ctl.CountStep, 1))
	case in.Has(core.ActionCycle):
		err = g.sim.SetShape(p.Shape.Next())
		if err == nil {
			g.setNotice("shape: " + g.sim.Params().Shape.String())
		}
	case in.Has(core.ActionRestart):
		err = g.sim.Reset()
	}
	if err != nil {
		g.setNotice(err.Error())
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTTL = noticeTicks
}

// Render draws the bodies and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for i, b := range g.sim.Bodies() {
		drawBody(dst, b, core.PaletteColor(i))
	}
	g.drawHUD(dst)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.sim.Params()
	st := g.sim.Stats()
	status := fmt.Sprintf(" g=%.3f  e=%.2f  n=%d  %s  rest %d/%d  KE %.1f ",
		p.Gravity, p.Restitution, st.Bodies, p.Shape, st.Resting, st.Bodies, st.Kinetic)

	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, status, core.ColorBrightCyan)
	if g.notice != "" {
		dst.DrawTextColored(len([]rune(status))+1, 0, g.notice, core.ColorYellow)
	}
}

// State returns the current state. The toy has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Simulator exposes the underlying simulator for headless hosts.
func (g *Game) Simulator() *kinematics.Simulator {
	return g.sim
}

func init() {
	registry.Register("bounce", func() registry.Game {
		return New()
	})
}
