package bounce

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/kinematics"
)

const (
	// Bodies whose larger half-size is below this draw as a single glyph.
	glyphThreshold = 0.75
	fillRune       = '█'
	starInner      = 0.45 // Inner radius of a star as a fraction of the outer
	polygonSides   = 6
)

// glyphs are the single-cell renderings of small bodies.
var glyphs = map[kinematics.Kind]rune{
	kinematics.KindCircle:    '●',
	kinematics.KindSquare:    '■',
	kinematics.KindRectangle: '▬',
	kinematics.KindPolygon:   '⬢',
	kinematics.KindStar:      '★',
	kinematics.KindHeart:     '♥',
}

// toScreen maps an arena point to continuous screen coordinates.
func toScreen(p r2.Point) r2.Point {
	return r2.Point{X: p.X * cellAspect, Y: p.Y + hudRows}
}

// toArena maps continuous screen coordinates back to the arena.
func toArena(p r2.Point) r2.Point {
	return r2.Point{X: p.X / cellAspect, Y: p.Y - hudRows}
}

// drawBody rasterises one body: every cell whose centre falls inside the
// rotated shape is filled. Bodies too small to cover any cell centre get
// their kind's glyph instead.
func drawBody(dst *core.Screen, b kinematics.Body, color core.Color) {
	hw, hh := b.HalfSize()
	if max(hw, hh) < glyphThreshold || !fillBody(dst, b, color) {
		x, y := core.CellOf(toScreen(b.Pos))
		dst.SetColored(x, y, glyphs[b.Kind], color)
	}
}

func fillBody(dst *core.Screen, b kinematics.Body, color core.Color) bool {
	filled := false

	r := b.EffectiveRadius()
	lo := toScreen(b.Pos.Sub(r2.Point{X: r, Y: r}))
	hi := toScreen(b.Pos.Add(r2.Point{X: r, Y: r}))
	x0, y0 := core.CellOf(lo)
	x1, y1 := core.CellOf(hi)

	sin, cos := math.Sincos(-b.Angle)
	for y := max(y0, hudRows); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := toArena(core.CellCenter(x, y)).Sub(b.Pos)
			local := r2.Point{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos}
			if inside(b, local) {
				dst.SetColored(x, y, fillRune, color)
				filled = true
			}
		}
	}
	return filled
}

// inside reports whether a point in the body's rotated frame lies within
// its outline.
func inside(b kinematics.Body, p r2.Point) bool {
	e := b.Extent
	switch b.Kind {
	case kinematics.KindCircle:
		return p.Norm() <= e
	case kinematics.KindSquare, kinematics.KindRectangle:
		hw, hh := b.HalfSize()
		return math.Abs(p.X) <= hw && math.Abs(p.Y) <= hh
	case kinematics.KindPolygon:
		return insidePolygon(p, e, polygonSides)
	case kinematics.KindStar:
		return insideStar(p, e)
	case kinematics.KindHeart:
		return insideHeart(p, e)
	default:
		return false
	}
}

// insidePolygon tests a regular polygon with circumradius r and a vertex
// on the +x axis.
func insidePolygon(p r2.Point, r float64, sides int) bool {
	step := 2 * math.Pi / float64(sides)
	apothem := r * math.Cos(step/2)
	for i := range sides {
		sin, cos := math.Sincos(step/2 + float64(i)*step)
		if p.Dot(r2.Point{X: cos, Y: sin}) > apothem {
			return false
		}
	}
	return true
}

// insideStar tests a five-pointed star whose radius swings linearly
// between the outer and inner radius, with a point straight up.
func insideStar(p r2.Point, r float64) bool {
	const points = 5
	dist := p.Norm()
	if dist == 0 {
		return true
	}
	theta := math.Atan2(p.X, -p.Y) // 0 at the top point
	sector := 2 * math.Pi / points
	t := math.Mod(theta+2*math.Pi, sector) / sector
	edge := starInner + (1-starInner)*math.Abs(2*t-1)
	return dist <= r*edge
}

// insideHeart uses the implicit curve (x²+y²-1)³ - x²y³ <= 0, which spans
// about 1.2 units, scaled to the extent. Screen y grows downwards, so y is
// flipped to keep the heart upright.
func insideHeart(p r2.Point, r float64) bool {
	const span = 1.2
	x := p.X / r * span
	y := -p.Y/r*span + 0.15
	a := x*x + y*y - 1
	return a*a*a-x*x*y*y*y <= 0
}
