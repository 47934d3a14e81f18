// Package geometry turns a flat set of map vertices and linedef-derived
// edges into sector floor/ceiling polygons (with holes), triangulates them,
// and models the sloped floor/ceiling planes those polygons sit on.
package geometry

import "fmt"

// VertexIndex indexes into a map's vertex array.
type VertexIndex = int32

// Edge connects two vertices. Vertex order is not significant to identity:
// NewEdge always stores the lower index first, so NewEdge(4, 1) and
// NewEdge(1, 4) compare equal and hash identically when used as a map key.
type Edge struct {
	lo, hi VertexIndex
}

// NewEdge builds an Edge from two vertex indices, sorting them into
// canonical (lo, hi) order. It panics if a == b: a zero-length edge is a
// caller bug, not a data condition this package tolerates.
func NewEdge(a, b VertexIndex) Edge {
	if a == b {
		panic(fmt.Sprintf("geometry: edge endpoints must differ, got %d twice", a))
	}
	if b < a {
		a, b = b, a
	}
	return Edge{lo: a, hi: b}
}

// Lo returns the lower vertex index.
func (e Edge) Lo() VertexIndex { return e.lo }

// Hi returns the higher vertex index.
func (e Edge) Hi() VertexIndex { return e.hi }

// Contains reports whether v is one of this edge's endpoints.
func (e Edge) Contains(v VertexIndex) bool {
	return e.lo == v || e.hi == v
}

// Other returns the endpoint opposite v, and whether v was actually one of
// this edge's endpoints.
func (e Edge) Other(v VertexIndex) (VertexIndex, bool) {
	switch v {
	case e.lo:
		return e.hi, true
	case e.hi:
		return e.lo, true
	default:
		return 0, false
	}
}

// OtherUnchecked returns the endpoint opposite v without verifying v is
// actually one of this edge's endpoints: if v is lo, hi is returned;
// otherwise lo is returned (even if v doesn't match hi either).
func (e Edge) OtherUnchecked(v VertexIndex) VertexIndex {
	if v == e.lo {
		return e.hi
	}
	return e.lo
}
