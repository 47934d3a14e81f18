package geometry

import "github.com/go-gl/mathgl/mgl32"

// Plane is a sector floor/ceiling surface: either a flat horizontal plane at
// a fixed height, or a sloped plane given by its equation coefficients
// (Ax + By + Cz + D = 0, with A, B, C the components of the plane's normal).
type Plane struct {
	flat   bool
	height float32
	a, b, c, d float32
}

// FlatPlane builds a horizontal plane at the given height.
func FlatPlane(height float32) Plane {
	return Plane{flat: true, height: height}
}

// SlopedPlane builds a plane directly from its equation coefficients.
func SlopedPlane(a, b, c, d float32) Plane {
	return Plane{a: a, b: b, c: c, d: d}
}

// IsFlat reports whether this is a flat (constant-height) plane.
func (p Plane) IsFlat() bool { return p.flat }

// Height returns the plane's height, valid only when IsFlat is true.
func (p Plane) Height() float32 { return p.height }

// Coefficients returns the plane equation's A, B, C, D terms, valid only
// when IsFlat is false.
func (p Plane) Coefficients() (a, b, c, d float32) { return p.a, p.b, p.c, p.d }

// ZAt returns the plane's height at the given XY position.
func (p Plane) ZAt(pos mgl32.Vec2) float32 {
	if p.flat {
		return p.height
	}
	dividend := p.a*pos.X() + p.b*pos.Y() + p.d
	return dividend / -p.c
}

// Normal returns the plane's unit normal vector, inverted if reverse is
// true.
func (p Plane) Normal(reverse bool) mgl32.Vec3 {
	if p.flat {
		if reverse {
			return mgl32.Vec3{0, 0, -1}
		}
		return mgl32.Vec3{0, 0, 1}
	}
	if reverse {
		return mgl32.Vec3{-p.a, -p.b, -p.c}
	}
	return mgl32.Vec3{p.a, p.b, p.c}
}

// FromTriangle builds the Plane passing through three 3D points. If all
// three share the same Z, the result is a FlatPlane at that height rather
// than a degenerate sloped plane with a zero-length normal.
func FromTriangle(v1, v2, v3 mgl32.Vec3) Plane {
	if v1.Z() == v2.Z() && v1.Z() == v3.Z() {
		return FlatPlane(v1.Z())
	}
	d1 := v2.Sub(v1)
	d2 := v3.Sub(v1)
	abc := d1.Cross(d2)
	if l := abc.Len(); l != 0 {
		abc = abc.Mul(1 / l)
	}
	a, b, c := abc.X(), abc.Y(), abc.Z()
	d := -(a*v1.X() + b*v1.Y() + c*v1.Z())
	return SlopedPlane(a, b, c, d)
}

// Intersection finds where this plane and other cross, restricted to the
// line segment from a to b (both treated as XY positions, with Z taken from
// each plane's ZAt). Returns false if the planes don't cross within that
// segment.
func (p Plane) Intersection(a, b mgl32.Vec2, other Plane) (mgl32.Vec3, bool) {
	xy := b.Sub(a)
	lineLen := xy.Len()
	if lineLen == 0 {
		return mgl32.Vec3{}, false
	}

	zas := p.ZAt(a)
	zbs := p.ZAt(b)
	zao := other.ZAt(a)
	zbo := other.ZAt(b)

	sa, ya := (zbs-zas)/lineLen, zas
	sb, yb := (zbo-zao)/lineLen, zao

	if sa == sb {
		return mgl32.Vec3{}, false
	}
	ptx := (yb - ya) / (sa - sb)
	if ptx <= 0 || ptx > lineLen {
		return mgl32.Vec3{}, false
	}
	pt := xy.Mul(ptx / lineLen)
	ptz := sa*ptx + ya
	return mgl32.Vec3{a.X() + pt.X(), a.Y() + pt.Y(), ptz}, true
}
