package kinematics

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Spawn creates a fresh batch of p.Count bodies inside the arena.
// Bodies may overlap each other; only body-vs-wall contact is modelled.
func Spawn(rng *rand.Rand, p Params, arena Arena) ([]Body, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := arena.Validate(); err != nil {
		return nil, err
	}

	sizes := p.sizeRange()
	bodies := make([]Body, 0, p.Count)
	for range p.Count {
		kind := p.Shape
		if kind == KindMixed {
			kind = concreteKinds[rng.Intn(len(concreteKinds))]
		}

		extent := uniform(rng, sizes)
		b := NewBody(kind, extent, r2.Point{})

		r := b.EffectiveRadius()
		b.Pos = r2.Point{
			X: uniform(rng, Span(arena.Bounds.X, r)),
			Y: uniform(rng, Span(arena.Bounds.Y, r)),
		}

		angle := rng.Float64() * 2 * math.Pi
		speed := uniform(rng, r1.Interval{Lo: p.MinSpeed, Hi: p.MaxSpeed}) + LaunchBoost
		b.Vel = r2.Point{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}

		b.Angle = rng.Float64() * 2 * math.Pi
		b.Spin = uniform(rng, r1.Interval{Lo: -p.MaxSpin, Hi: p.MaxSpin})

		bodies = append(bodies, b)
	}
	return bodies, nil
}

// uniform samples a value in [iv.Lo, iv.Hi].
func uniform(rng *rand.Rand, iv r1.Interval) float64 {
	if iv.Hi <= iv.Lo {
		return iv.Lo
	}
	return iv.Lo + rng.Float64()*iv.Length()
}
