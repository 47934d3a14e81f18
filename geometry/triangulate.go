package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// Triangulate converts one sector polygon (plus the holes cut out of it, if
// any) into a flat list of triangle vertex indices, each group of three
// forming one triangle, referencing the same vertex indices as polygon and
// holes.
//
// There is no off-the-shelf unconstrained-Delaunay library that can express
// "fill this polygon, but not these holes in it" -- an unconstrained
// Delaunay triangulation fills the convex hull of its input points, holes
// included. Instead this is a hand-rolled ear-clipping triangulator: each
// hole is first stitched into the outer contour as a zero-width channel
// (the "slit" technique), producing one simple polygon with no holes, which
// ear-clipping can then consume directly.
func Triangulate(polygon SectorPolygon, holes []SectorPolygon, vertices []mgl32.Vec2) []VertexIndex {
	contour := canonicalWinding(polygon.Vertices, vertices, true)
	for _, h := range holes {
		hole := canonicalWinding(h.Vertices, vertices, false)
		contour = stitchHole(contour, hole, vertices)
	}
	return earClip(contour, vertices)
}

// AutoTriangulate triangulates every top-level (non-hole) polygon in
// polygons, automatically gathering each one's holes by HoleOf. The result
// has one entry per polygon; entries for hole polygons are nil.
func AutoTriangulate(polygons []SectorPolygon, vertices []mgl32.Vec2) [][]VertexIndex {
	out := make([][]VertexIndex, len(polygons))
	for i, p := range polygons {
		if p.HoleOf != nil {
			continue
		}
		var holes []SectorPolygon
		for j, other := range polygons {
			if other.HoleOf != nil && *other.HoleOf == i {
				holes = append(holes, polygons[j])
			}
		}
		out[i] = Triangulate(p, holes, vertices)
	}
	return out
}

func signedArea(ring []VertexIndex, verts []mgl32.Vec2) float32 {
	var area float32
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := verts[ring[i]], verts[ring[j]]
		area += pi.X()*pj.Y() - pj.X()*pi.Y()
	}
	return area / 2
}

// canonicalWinding returns a copy of ring, reversed if necessary so that its
// signed area has the requested sign (positive for ccw, negative for cw).
func canonicalWinding(ring []VertexIndex, verts []mgl32.Vec2, ccw bool) []VertexIndex {
	out := append([]VertexIndex(nil), ring...)
	area := signedArea(out, verts)
	if (ccw && area < 0) || (!ccw && area > 0) {
		for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
			out[l], out[r] = out[r], out[l]
		}
	}
	return out
}

func segOrientation(a, b, c mgl32.Vec2) float32 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

func onSegment(a, b, p mgl32.Vec2) bool {
	return p.X() <= max(a.X(), b.X()) && p.X() >= min(a.X(), b.X()) &&
		p.Y() <= max(a.Y(), b.Y()) && p.Y() >= min(a.Y(), b.Y())
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// segmentsCross reports whether closed segments (p1,p2) and (p3,p4)
// properly or collinearly intersect; touching at an endpoint counts.
func segmentsCross(p1, p2, p3, p4 mgl32.Vec2) bool {
	o1 := segOrientation(p1, p2, p3)
	o2 := segOrientation(p1, p2, p4)
	o3 := segOrientation(p3, p4, p1)
	o4 := segOrientation(p3, p4, p2)

	if ((o1 > 0) != (o2 > 0)) && o1 != 0 && o2 != 0 &&
		((o3 > 0) != (o4 > 0)) && o3 != 0 && o4 != 0 {
		return true
	}
	if o1 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if o2 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	if o3 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if o4 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	return false
}

func dist2(a, b mgl32.Vec2) float32 {
	d := a.Sub(b)
	return d.X()*d.X() + d.Y()*d.Y()
}

// stitchHole splices hole into contour via the shortest bridge edge that
// crosses no other edge of either ring, connecting the two into a single
// simple polygon with a zero-width channel in place of the bridge.
func stitchHole(contour, hole []VertexIndex, verts []mgl32.Vec2) []VertexIndex {
	bestCi, bestHi := -1, -1
	var bestDist float32
	for ci, cIdx := range contour {
		for hi, hIdx := range hole {
			if !bridgeIsClear(contour, hole, ci, hi, verts) {
				continue
			}
			d := dist2(verts[cIdx], verts[hIdx])
			if bestCi == -1 || d < bestDist {
				bestCi, bestHi, bestDist = ci, hi, d
			}
		}
	}
	if bestCi == -1 {
		// No clear bridge found (degenerate/self-touching geometry); fall
		// back to the closest pair regardless, rather than dropping the
		// hole silently.
		for ci, cIdx := range contour {
			for hi, hIdx := range hole {
				d := dist2(verts[cIdx], verts[hIdx])
				if bestCi == -1 || d < bestDist {
					bestCi, bestHi, bestDist = ci, hi, d
				}
			}
		}
	}

	merged := make([]VertexIndex, 0, len(contour)+len(hole)+2)
	merged = append(merged, contour[:bestCi+1]...)
	merged = append(merged, hole[bestHi:]...)
	merged = append(merged, hole[:bestHi+1]...)
	merged = append(merged, contour[bestCi:]...)
	return merged
}

func bridgeIsClear(contour, hole []VertexIndex, ci, hi int, verts []mgl32.Vec2) bool {
	p1 := verts[contour[ci]]
	p2 := verts[hole[hi]]
	if !edgesClear(contour, ci, p1, p2, verts) {
		return false
	}
	if !edgesClear(hole, hi, p1, p2, verts) {
		return false
	}
	return true
}

// edgesClear reports whether segment (p1,p2) crosses no edge of ring, other
// than the two edges incident to skipIdx (which necessarily share an
// endpoint with the bridge and so would register a false "crossing" at that
// shared point).
func edgesClear(ring []VertexIndex, skipIdx int, p1, p2 mgl32.Vec2, verts []mgl32.Vec2) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if i == skipIdx || j == skipIdx {
			continue
		}
		if segmentsCross(p1, p2, verts[ring[i]], verts[ring[j]]) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies strictly inside triangle (a,b,c),
// excluding its edges and vertices. Ear-clipping needs this exclusive: a
// stitched-in bridge duplicates one contour vertex and one hole vertex, and
// those duplicates sit exactly on the bridge edge of every ear candidate
// next to them -- an inclusive boundary test would count each as "inside"
// and block every ear from ever being cut.
func pointInTriangle(p, a, b, c mgl32.Vec2) bool {
	d1 := segOrientation(p, a, b)
	d2 := segOrientation(p, b, c)
	d3 := segOrientation(p, c, a)
	allPos := d1 > 0 && d2 > 0 && d3 > 0
	allNeg := d1 < 0 && d2 < 0 && d3 < 0
	return allPos || allNeg
}

// earClip triangulates a single simple polygon (no holes; holes must
// already be stitched in by the caller) by repeatedly cutting convex
// "ears" -- vertices whose triangle with their two contour neighbours
// contains no other contour vertex.
func earClip(contour []VertexIndex, verts []mgl32.Vec2) []VertexIndex {
	indices := append([]VertexIndex(nil), contour...)
	var triangles []VertexIndex
	if len(indices) < 3 {
		return nil
	}

	guard := 0
	i := 0
	for len(indices) > 3 {
		n := len(indices)
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		a, b, c := indices[prev], indices[i], indices[next]
		pa, pb, pc := verts[a], verts[b], verts[c]

		isEar := segOrientation(pa, pb, pc) > 0
		if isEar {
			for k, vi := range indices {
				if k == prev || k == i || k == next {
					continue
				}
				if pointInTriangle(verts[vi], pa, pb, pc) {
					isEar = false
					break
				}
			}
		}

		if isEar {
			triangles = append(triangles, a, b, c)
			indices = append(indices[:i], indices[i+1:]...)
			if i >= len(indices) {
				i = 0
			}
			guard = 0
		} else {
			i = (i + 1) % len(indices)
			guard++
			if guard > len(indices)+1 {
				// Degenerate input (self-intersecting or fully collinear);
				// stop rather than spin forever.
				break
			}
		}
	}
	if len(indices) == 3 {
		triangles = append(triangles, indices[0], indices[1], indices[2])
	}
	return triangles
}
