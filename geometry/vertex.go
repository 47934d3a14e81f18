package geometry

import "github.com/go-gl/mathgl/mgl32"

// mapVertex pairs a 2D point with its index into the map's vertex array, so
// that a set of points can be sorted back to the original index of the
// "largest" (rightmost, then topmost) point.
type mapVertex struct {
	p mgl32.Vec2
	i VertexIndex
}

// less orders mapVertex by X ascending, then by Y ascending when X is tied
// -- so the maximum under this order is the rightmost vertex, breaking ties
// by picking the topmost of those.
func (v mapVertex) less(o mapVertex) bool {
	if v.p.X() == o.p.X() {
		return v.p.Y() < o.p.Y()
	}
	return v.p.X() < o.p.X()
}

// maxMapVertex returns the mapVertex that sorts highest (rightmost, then
// topmost) among vs. vs must be non-empty.
func maxMapVertex(vs []mapVertex) mapVertex {
	best := vs[0]
	for _, v := range vs[1:] {
		if best.less(v) {
			best = v
		}
	}
	return best
}
