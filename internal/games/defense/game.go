// Package defense is the playable front end of the tower-defense world:
// the player moves a cursor over the lane field and spends gold on towers
// and troops while the difficulty manager speeds up the waves.
package defense

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	world "github.com/vovakirdan/bounce-arcade/internal/defense"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

const (
	hudRows     = 1
	noticeTicks = 90
)

var (
	configPath string
	difficulty config.DifficultyPreset
)

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects a difficulty preset for the next Reset.
func SetDifficulty(name string) error {
	p, err := config.ParseDifficulty(name)
	if err != nil {
		return err
	}
	difficulty = p
	return nil
}

// Game adapts a defense world to the registry.Game interface.
type Game struct {
	cfg     config.DefenseConfig
	world   *world.World
	diff    *config.DifficultyManager
	colors  []core.Color // Per enemy type
	cursorX int
	cursorY int
	paused  bool

	notice    string
	noticeTTL int
}

// New creates a new defense toy. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string {
	return "defense"
}

func (g *Game) Title() string {
	return "Lane Defense"
}

// Controls lists the key bindings.
func (g *Game) Controls() []registry.Control {
	return []registry.Control{
		{Key: "arrows", Help: "move cursor"},
		{Key: "t", Help: "tower"},
		{Key: "y", Help: "troop"},
		{Key: "u", Help: "upgrade"},
		{Key: "m", Help: "merge"},
		{Key: "p", Help: "pause"},
		{Key: "r", Help: "restart"},
	}
}

// Reset loads the config and starts a new round on a field sized to the
// screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.paused = false
	g.notice, g.noticeTTL = "", 0

	cfg, err := config.LoadDefense(configPath)
	if err != nil {
		cfg = config.DefaultDefenseConfig()
		g.setNotice("config: " + err.Error())
	}
	config.ApplyDefensePreset(&cfg, difficulty)
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	g.colors = make([]core.Color, len(cfg.Enemies.Types))
	for i, t := range cfg.Enemies.Types {
		g.colors[i] = colorByName(t.Color)
	}

	w := max(runtime.ScreenW, 1)
	h := max(runtime.ScreenH-hudRows, 1)
	g.world, err = world.NewWorld(cfg.World(float64(w), float64(h)), runtime.Seed)
	if err != nil {
		g.setNotice(err.Error())
		g.world, _ = world.NewWorld(world.DefaultConfig(), runtime.Seed)
	}

	g.cursorX = w / 2
	g.cursorY = h / 2
}

// Step applies the frame's input and advances the world one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Over() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Notice: g.notice}
	}

	g.moveCursor(in)
	g.handleActions(in)

	if g.noticeTTL > 0 {
		g.noticeTTL--
		if g.noticeTTL == 0 {
			g.notice = ""
		}
	}

	score, ticks := g.world.Earned(), g.world.Tick()
	g.world.SetSpawnInterval(g.diff.SpawnInterval(g.cfg.Enemies.SpawnInterval, score, ticks))
	g.world.SetHPScale(g.diff.HPScale(score, ticks))
	g.world.SetSpeedScale(g.diff.Speed(g.cfg.Enemies.SpeedScale, score, ticks))

	ev := g.world.Step()
	if len(ev.Leaked) > 0 {
		g.setNotice(fmt.Sprintf("%d leaked!", g.world.Leaks()))
	}

	return core.StepResult{State: g.State(), Notice: g.notice}
}

func (g *Game) moveCursor(in core.InputFrame) {
	cfg := g.world.Config()
	switch {
	case in.Has(core.ActionUp):
		g.cursorY--
	case in.Has(core.ActionDown):
		g.cursorY++
	case in.Has(core.ActionLeft):
		g.cursorX--
	case in.Has(core.ActionRight):
		g.cursorX++
	}
	g.cursorX = core.Clamp(g.cursorX, 0, int(cfg.Width)-1)
	g.cursorY = core.Clamp(g.cursorY, 0, int(cfg.Height)-1)
}

func (g *Game) handleActions(in core.InputFrame) {
	var err error
	switch {
	case in.Has(core.ActionPrimary):
		err = g.world.PlaceTower(g.Cursor())
	case in.Has(core.ActionSecondary):
		err = g.world.PlaceTroop(g.Cursor())
	case in.Has(core.ActionUpgrade):
		err = g.world.UpgradeTower()
	case in.Has(core.ActionMerge):
		err = g.world.MergeTowers()
	}

	switch {
	case err == nil:
	case errors.Is(err, world.ErrInsufficientGold):
		g.setNotice("not enough gold")
	case errors.Is(err, world.ErrNothingToUpgrade):
		g.setNotice("no tower to upgrade")
	case errors.Is(err, world.ErrCannotMerge):
		g.setNotice("merge needs two towers of equal level")
	default:
		g.setNotice(err.Error())
	}
}

// Cursor returns the arena point under the cursor, the centre of its cell.
func (g *Game) Cursor() r2.Point {
	return core.CellCenter(g.cursorX, g.cursorY)
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTTL = noticeTicks
}

// State reports the bounty earned as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Earned(),
		GameOver: g.world.Over(),
		Paused:   g.paused,
	}
}

// World exposes the underlying world for headless hosts.
func (g *Game) World() *world.World {
	return g.world
}

func colorByName(name string) core.Color {
	switch name {
	case "red":
		return core.ColorBrightRed
	case "blue":
		return core.ColorBrightBlue
	case "green":
		return core.ColorBrightGreen
	case "yellow":
		return core.ColorBrightYellow
	case "magenta":
		return core.ColorBrightMagenta
	case "cyan":
		return core.ColorBrightCyan
	case "orange":
		return core.ColorOrange
	default:
		return core.ColorWhite
	}
}

func init() {
	registry.Register("defense", func() registry.Game {
		return New()
	})
}
