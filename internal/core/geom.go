// Package core provides the types shared between the simulations and the
// terminal platform: the screen buffer, input frames and runtime config.
// It has no Bubble Tea dependency so toys stay pure and testable.
package core

import (
	"math"

	"github.com/golang/geo/r2"
)

// Rect is an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Bounds converts the cell block to continuous coordinates, one unit per cell.
func (r Rect) Bounds() r2.Rect {
	return r2.RectFromPoints(
		r2.Point{X: float64(r.X), Y: float64(r.Y)},
		r2.Point{X: float64(r.Right()), Y: float64(r.Bottom())},
	)
}

// CellOf returns the cell containing a continuous point.
func CellOf(p r2.Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// CellCenter returns the continuous centre of cell (x, y).
func CellCenter(x, y int) r2.Point {
	return r2.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
