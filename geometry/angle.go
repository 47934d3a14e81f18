package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Angle is a signed angle in radians, with an ordering that treats angles of
// opposite sign as reversed relative to a plain numeric comparison. This
// matches the convention used when walking a polygon's edges by minimal
// turning angle: once the comparison crosses from positive to negative (or
// back), the "smallest turn" is the other sign's largest magnitude, not the
// smallest raw value.
type Angle float32

// Less reports whether a sorts before b under the sign-aware ordering: when
// a and b have different signs, the usual numeric comparison is reversed.
func (a Angle) Less(b Angle) bool {
	cmp := a < b
	if signOf(float32(a)) != signOf(float32(b)) {
		return !cmp
	}
	return cmp
}

func signOf(f float32) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

// vec2Angle is the angle (in radians) of vec relative to the positive
// X-axis, in (-pi, pi].
func vec2Angle(vec mgl32.Vec2) float32 {
	return float32(math.Atan2(float64(vec.Y()), float64(vec.X())))
}

// signedAngleBetween is the signed angle (in radians) of the rotation that
// carries a onto b, positive counter-clockwise.
func signedAngleBetween(a, b mgl32.Vec2) float32 {
	cross := a.X()*b.Y() - a.Y()*b.X()
	dot := a.Dot(b)
	return float32(math.Atan2(float64(cross), float64(dot)))
}

// angleBetween is the signed angle from the direction center->p1 to the
// direction center->p2, negated when clockwise is true. This flips which
// "sign" of turn counts as smallest under Angle.Less, so the same code path
// can walk a polygon contour in either winding direction.
func angleBetween(p1, p2, center mgl32.Vec2, clockwise bool) Angle {
	ac := p1.Sub(center)
	bc := p2.Sub(center)
	ang := signedAngleBetween(ac, bc)
	if clockwise {
		ang = -ang
	}
	return Angle(ang)
}
