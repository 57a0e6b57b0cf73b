package defense

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	world "github.com/vovakirdan/bounce-arcade/internal/defense"
)

const (
	enemyRune  = '◆'
	towerRune  = 'T'
	troopRune  = 't'
	cursorRune = '┼'
	healthRune = '▀'
	healthBar  = 3 // Cells in a full health bar
)

// Render draws the field, units, enemies and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, u := range g.world.Troops() {
		g.drawUnit(dst, u, troopRune, core.ColorCyan)
	}
	for _, u := range g.world.Towers() {
		g.drawUnit(dst, u, towerRune, core.ColorBrightYellow)
	}
	for _, e := range g.world.Enemies() {
		g.drawEnemy(dst, e)
	}

	if dst.GetCell(g.cursorX, g.cursorY+hudRows).Rune == ' ' {
		dst.SetColored(g.cursorX, g.cursorY+hudRows, cursorRune, core.ColorBrightWhite)
	}

	g.drawHUD(dst)

	switch {
	case g.world.Over():
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Earned()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawUnit(dst *core.Screen, u world.Unit, r rune, c core.Color) {
	x, y := core.CellOf(u.Pos)
	dst.SetColored(x, y+hudRows, r, c)
	if u.Level > 1 {
		dst.DrawTextColored(x+1, y+hudRows, fmt.Sprint(u.Level), c)
	}
}

func (g *Game) drawEnemy(dst *core.Screen, e world.Enemy) {
	x, y := core.CellOf(e.Pos)
	color := core.ColorWhite
	if e.Type >= 0 && e.Type < len(g.colors) {
		color = g.colors[e.Type]
	}
	dst.SetColored(x, y+hudRows, enemyRune, color)

	frac := e.HealthFraction()
	cells := int(math.Ceil(frac * healthBar))
	barColor := core.ColorGreen
	switch {
	case frac < 0.3:
		barColor = core.ColorRed
	case frac < 0.6:
		barColor = core.ColorYellow
	}
	dst.DrawHLine(x-1, y+hudRows+1, cells, healthRune, barColor)
}

func (g *Game) drawHUD(dst *core.Screen) {
	cfg := g.world.Config()
	leaks := fmt.Sprint(g.world.Leaks())
	if cfg.MaxLeaks > 0 {
		leaks += fmt.Sprintf("/%d", cfg.MaxLeaks)
	}
	status := fmt.Sprintf(" Gold %d  Score %d  Kills %d  Leaks %s  Towers %d  Troops %d ",
		g.world.Gold(), g.world.Earned(), g.world.Kills(), leaks,
		len(g.world.Towers()), len(g.world.Troops()))
	if g.diff.IsEnabled() {
		status += fmt.Sprintf(" Lvl %.2f ", g.diff.Level(g.world.Earned(), g.world.Tick()))
	}

	dst.DrawTextColored(0, 0, status, core.ColorBrightCyan)
	if g.notice != "" {
		dst.DrawTextColored(len([]rune(status))+1, 0, g.notice, core.ColorYellow)
	}
}
