package kinematics

import (
	"math"
	"math/rand"
)

// Tick advances every body by one step. Per body: gravity, position,
// orientation, then the right, left, bottom and top walls are checked
// independently. The rng feeds the cosmetic spin kick only.
func Tick(bodies []Body, arena Arena, p Params, rng *rand.Rand) {
	for i := range bodies {
		step(&bodies[i], arena, p, rng)
	}
}

func step(b *Body, arena Arena, p Params, rng *rand.Rand) {
	b.Vel.Y += p.Gravity
	b.Pos = b.Pos.Add(b.Vel)
	b.Angle += b.Spin

	r := b.EffectiveRadius()
	xs := Span(arena.Bounds.X, r)
	ys := Span(arena.Bounds.Y, r)

	// Right
	if b.Pos.X > xs.Hi {
		b.Pos.X = xs.Hi
		b.Vel.X *= -p.Restitution
		kickSpin(b, b.Vel.Y, p, rng)
	}
	// Left
	if b.Pos.X < xs.Lo {
		b.Pos.X = xs.Lo
		b.Vel.X *= -p.Restitution
		kickSpin(b, b.Vel.Y, p, rng)
	}
	// Bottom (floor)
	if b.Pos.Y > ys.Hi {
		b.Pos.Y = ys.Hi
		b.Vel.Y *= -p.Restitution
		b.Vel.X *= GroundFriction
		b.Spin *= SpinDamping
		if math.Abs(b.Vel.Y) < RestFactor*math.Abs(p.Gravity) {
			b.Vel.Y = 0
		}
	}
	// Top
	if b.Pos.Y < ys.Lo {
		b.Pos.Y = ys.Lo
		b.Vel.Y *= -p.Restitution
		kickSpin(b, b.Vel.X, p, rng)
	}
}

// kickSpin perturbs the spin of non-circular bodies after a side or top
// contact. The magnitude scales with the tangential speed relative to
// MaxSpeed; the sign is random.
func kickSpin(b *Body, tangential float64, p Params, rng *rand.Rand) {
	if b.Kind == KindCircle || rng == nil {
		return
	}
	ref := p.MaxSpeed
	if ref <= 0 {
		ref = 1
	}
	b.Spin += (rng.Float64()*2 - 1) * SpinKickScale * math.Min(math.Abs(tangential)/ref, 1)
}

// Resting reports whether b is sitting on the arena floor with no
// vertical velocity. Gravity takes it out of this state on the next tick
// unless the floor contact snaps it back.
func (b Body) Resting(arena Arena) bool {
	return b.Vel.Y == 0 && b.Pos.Y >= Span(arena.Bounds.Y, b.EffectiveRadius()).Hi
}
