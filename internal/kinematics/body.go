// Package kinematics implements the bouncing-bodies simulator: a batch of
// independently moving 2D bodies inside a fixed rectangular arena, advanced
// one fixed tick at a time with gravity, wall reflection and ground friction.
// It has no UI dependencies; hosts read bodies back for rendering.
package kinematics

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r2"
)

// Kind selects the render geometry of a body. It has no effect on motion
// except that circles never receive a spin kick from wall contact.
type Kind int

const (
	KindCircle Kind = iota
	KindSquare
	KindRectangle
	KindPolygon
	KindStar
	KindHeart

	// KindMixed is only meaningful in Params.Shape: every spawned body
	// picks one of the concrete kinds at random.
	KindMixed
)

// concreteKinds lists the kinds a body can actually have.
var concreteKinds = []Kind{KindCircle, KindSquare, KindRectangle, KindPolygon, KindStar, KindHeart}

// Kinds returns all kinds selectable by a host, including KindMixed.
func Kinds() []Kind {
	return append(append([]Kind(nil), concreteKinds...), KindMixed)
}

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	case KindRectangle:
		return "rectangle"
	case KindPolygon:
		return "polygon"
	case KindStar:
		return "star"
	case KindHeart:
		return "heart"
	case KindMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ParseKind converts a config name into a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return KindCircle, &ParamError{Field: "shape", Reason: fmt.Sprintf("unknown shape %q", s)}
}

// Next returns the following selectable kind, wrapping after KindMixed.
func (k Kind) Next() Kind {
	if k >= KindMixed || k < KindCircle {
		return KindCircle
	}
	return k + 1
}

// rectangleAspect is the height-to-width ratio of rectangle bodies.
const rectangleAspect = 0.6

// Body is one simulated entity. Fields are mutated in place by Tick.
type Body struct {
	Pos    r2.Point // Center position
	Vel    r2.Point // Displacement per tick
	Extent float64  // Bounding half-size, fixed at spawn
	Mass   float64  // Derived from Extent, informational only
	Angle  float64  // Orientation in radians
	Spin   float64  // Angular velocity in radians per tick
	Kind   Kind
}

// NewBody creates a body of the given kind and extent at rest.
func NewBody(kind Kind, extent float64, pos r2.Point) Body {
	return Body{
		Pos:    pos,
		Extent: extent,
		Mass:   math.Pi * extent * extent,
		Kind:   kind,
	}
}

// HalfSize returns the half-width and half-height of the body's
// unrotated bounding box.
func (b Body) HalfSize() (hw, hh float64) {
	if b.Kind == KindRectangle {
		return b.Extent, b.Extent * rectangleAspect
	}
	return b.Extent, b.Extent
}

// EffectiveRadius is the wall-collision proxy: the larger half-extent,
// regardless of rotation. Rotated rectangles and polygons can visibly
// overlap a wall by up to their corner overhang.
func (b Body) EffectiveRadius() float64 {
	hw, hh := b.HalfSize()
	return math.Max(hw, hh)
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 {
	return b.Vel.Norm()
}

// KineticEnergy returns ½·m·|v|².
func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * b.Vel.Dot(b.Vel)
}
