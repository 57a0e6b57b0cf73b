package kinematics

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Fixed tuning constants of the simulation.
const (
	GroundFriction = 0.98 // Horizontal velocity multiplier on floor contact
	SpinDamping    = 0.95 // Angular velocity multiplier on floor contact
	RestFactor     = 2.0  // |vy| below RestFactor*gravity snaps to zero on the floor
	LaunchBoost    = 0.2  // Added to every spawn speed so no body starts stationary
	MinSizeRatio   = 0.3  // Spawn extents never go below this fraction of MaxSize
	SpinKickScale  = 0.05 // Upper bound of the cosmetic spin kick at MaxSpeed
)

// Params holds the externally supplied simulation parameters.
// Gravity and Restitution may change between ticks; changing any other
// field requires a respawn (see Simulator.Apply).
type Params struct {
	Gravity     float64 // Added to vertical velocity every tick (positive = down)
	Restitution float64 // Bounce coefficient, intended in [0, 1]

	Count    int     // Number of bodies
	MinSize  float64 // Configured minimum extent
	MaxSize  float64 // Maximum extent
	MinSpeed float64 // Minimum launch speed before LaunchBoost
	MaxSpeed float64 // Maximum launch speed before LaunchBoost
	MaxSpin  float64 // Spin is sampled from [-MaxSpin, MaxSpin]
	Shape    Kind    // Kind of every body, or KindMixed
}

// DefaultParams returns parameters tuned for an 80x24 terminal arena.
func DefaultParams() Params {
	return Params{
		Gravity:     0.05,
		Restitution: 0.8,
		Count:       12,
		MinSize:     0.5,
		MaxSize:     2.5,
		MinSpeed:    0.2,
		MaxSpeed:    1.2,
		MaxSpin:     0.1,
		Shape:       KindMixed,
	}
}

// Validate rejects parameters that would put NaN or negative extents into
// the tick loop.
func (p Params) Validate() error {
	if !finite(p.Gravity) {
		return invalid("gravity", p.Gravity, "must be finite")
	}
	if !finite(p.Restitution) || p.Restitution < 0 {
		return invalid("restitution", p.Restitution, "must be finite and non-negative")
	}
	if p.Count <= 0 {
		return invalid("count", float64(p.Count), "must be positive")
	}
	if !finite(p.MinSize) || p.MinSize < 0 {
		return invalid("min_size", p.MinSize, "must be finite and non-negative")
	}
	if !finite(p.MaxSize) || p.MaxSize <= 0 {
		return invalid("max_size", p.MaxSize, "must be finite and positive")
	}
	if p.MinSize > p.MaxSize {
		return invalid("min_size", p.MinSize, "exceeds max_size")
	}
	if !finite(p.MinSpeed) || p.MinSpeed < 0 {
		return invalid("min_speed", p.MinSpeed, "must be finite and non-negative")
	}
	if !finite(p.MaxSpeed) || p.MaxSpeed < p.MinSpeed {
		return invalid("max_speed", p.MaxSpeed, "must be finite and at least min_speed")
	}
	if !finite(p.MaxSpin) || p.MaxSpin < 0 {
		return invalid("max_spin", p.MaxSpin, "must be finite and non-negative")
	}
	if p.Shape < KindCircle || p.Shape > KindMixed {
		return invalid("shape", float64(p.Shape), "unknown shape")
	}
	return nil
}

// sizeRange returns the interval spawn extents are sampled from.
func (p Params) sizeRange() r1.Interval {
	return r1.Interval{Lo: math.Max(p.MinSize, MinSizeRatio*p.MaxSize), Hi: p.MaxSize}
}

// samePopulation reports whether q would spawn the same population as p.
func (p Params) samePopulation(q Params) bool {
	return p.Count == q.Count &&
		p.MinSize == q.MinSize && p.MaxSize == q.MaxSize &&
		p.MinSpeed == q.MinSpeed && p.MaxSpeed == q.MaxSpeed &&
		p.MaxSpin == q.MaxSpin && p.Shape == q.Shape
}

// Arena is the rectangle [0, W] x [0, H] bodies bounce inside.
// The y axis points down, so the floor is at y = H.
type Arena struct {
	Bounds r2.Rect
}

// NewArena creates an arena of the given size anchored at the origin.
// The corners are not reordered: a negative size yields an empty arena
// that Validate rejects.
func NewArena(width, height float64) Arena {
	return Arena{Bounds: r2.Rect{
		X: r1.Interval{Lo: 0, Hi: width},
		Y: r1.Interval{Lo: 0, Hi: height},
	}}
}

// Width returns the arena width.
func (a Arena) Width() float64 {
	return a.Bounds.X.Length()
}

// Height returns the arena height.
func (a Arena) Height() float64 {
	return a.Bounds.Y.Length()
}

// Validate rejects empty or non-finite arenas.
func (a Arena) Validate() error {
	if !finite(a.Width()) || a.Width() <= 0 {
		return invalid("arena_width", a.Width(), "must be positive")
	}
	if !finite(a.Height()) || a.Height() <= 0 {
		return invalid("arena_height", a.Height(), "must be positive")
	}
	return nil
}

// Span returns the range of valid center coordinates on one axis for a
// body with the given radius. When the body is wider than the axis the
// span collapses to the axis midpoint so the center stays inside the arena.
func Span(axis r1.Interval, radius float64) r1.Interval {
	inner := r1.Interval{Lo: axis.Lo + radius, Hi: axis.Hi - radius}
	if inner.IsEmpty() {
		c := axis.Center()
		return r1.Interval{Lo: c, Hi: c}
	}
	return inner
}

// Contains reports whether b sits inside the arena shrunk by its own
// collision radius.
func (a Arena) Contains(b Body) bool {
	r := b.EffectiveRadius()
	return Span(a.Bounds.X, r).Contains(b.Pos.X) && Span(a.Bounds.Y, r).Contains(b.Pos.Y)
}
