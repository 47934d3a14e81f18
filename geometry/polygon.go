package geometry

import "github.com/go-gl/mathgl/mgl32"

// SectorPolygon is one contour of a sector's floor/ceiling: the vertex
// indices (into the map vertex array) that trace the contour, and, if this
// contour is a hole cut out of another polygon, that polygon's index.
type SectorPolygon struct {
	Vertices []VertexIndex
	HoleOf   *int
}

// pointInPolygon is the standard even-odd ray-casting test: whether point
// lies inside the closed polygon described by poly.
func pointInPolygon(point mgl32.Vec2, poly []mgl32.Vec2) bool {
	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		j := i - 1
		if i == 0 {
			j = n - 1
		}
		vi, vj := poly[i], poly[j]
		if (vi.Y() > point.Y()) != (vj.Y() > point.Y()) &&
			point.X() < (vj.X()-vi.X())*(point.Y()-vi.Y())/(vj.Y()-vi.Y())+vi.X() {
			inside = !inside
		}
	}
	return inside
}

// edgeInPolygon reports whether edge's midpoint lies inside the polygon
// described by the given contour vertex indices.
func edgeInPolygon(edge Edge, contour []VertexIndex, verts []mgl32.Vec2) bool {
	a := verts[edge.Lo()]
	b := verts[edge.Hi()]
	mid := a.Add(b).Mul(0.5)
	poly := make([]mgl32.Vec2, len(contour))
	for i, vi := range contour {
		poly[i] = verts[vi]
	}
	return pointInPolygon(mid, poly)
}

// orderedPair is a directed (start, end) vertex-index pair: the order in
// which a new polygon contour's first two vertices should be pushed.
type orderedPair struct {
	a, b VertexIndex
}

// findNextStartEdge picks a starting edge for a new polygon contour: the
// edge from the rightmost (then topmost) unused vertex to whichever of its
// usable neighbours has the smallest turning angle for the requested
// winding direction.
func findNextStartEdge(clockwise bool, used map[Edge]bool, verts []mgl32.Vec2) (orderedPair, bool) {
	seen := map[VertexIndex]bool{}
	var mvs []mapVertex
	for e, isUsed := range used {
		if isUsed {
			continue
		}
		for _, vi := range [2]VertexIndex{e.Lo(), e.Hi()} {
			if !seen[vi] {
				seen[vi] = true
				mvs = append(mvs, mapVertex{p: verts[vi], i: vi})
			}
		}
	}
	if len(mvs) == 0 {
		return orderedPair{}, false
	}
	rightmost := maxMapVertex(mvs)
	rightmostVertex := verts[rightmost.i]

	haveCurrent := false
	var currentIndex VertexIndex
	for e, isUsed := range used {
		if isUsed || !e.Contains(rightmost.i) {
			continue
		}
		otherIndex := e.OtherUnchecked(rightmost.i)
		if !haveCurrent {
			currentIndex = otherIndex
			haveCurrent = true
			continue
		}
		currentAngle := vec2Angle(rightmostVertex.Sub(verts[currentIndex]))
		otherAngle := vec2Angle(rightmostVertex.Sub(verts[otherIndex]))
		if clockwise {
			if otherAngle > currentAngle {
				currentIndex = otherIndex
			}
		} else {
			if otherAngle < currentAngle {
				currentIndex = otherIndex
			}
		}
	}
	if !haveCurrent {
		return orderedPair{}, false
	}
	return orderedPair{a: currentIndex, b: rightmost.i}, true
}

// findNextVertex picks the next contour vertex to visit from "from", having
// just come from "previous", by minimal turning angle among from's unused,
// still-usable edges.
func findNextVertex(from, previous VertexIndex, clockwise bool, used map[Edge]bool, verts []mgl32.Vec2) (VertexIndex, bool) {
	var candidates []VertexIndex
	for e, isUsed := range used {
		if isUsed || !e.Contains(from) || e.Contains(previous) {
			continue
		}
		candidates = append(candidates, e.OtherUnchecked(from))
	}
	if len(candidates) == 0 {
		return 0, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}

	previousVertex := verts[previous]
	fromVertex := verts[from]
	best := candidates[0]
	bestAngle := angleBetween(previousVertex, verts[best], fromVertex, clockwise)
	for _, cand := range candidates[1:] {
		candAngle := angleBetween(previousVertex, verts[cand], fromVertex, clockwise)
		if candAngle.Less(bestAngle) {
			best = cand
			bestAngle = candAngle
		}
	}
	return best, true
}

func isPolygonComplete(contour []VertexIndex, last VertexIndex) bool {
	if len(contour) < 3 {
		return false
	}
	return contour[0] == last
}

// BuildPolygons walks lines (derived from a sector's linedefs) into closed
// polygon contours over vertices, detecting hole nesting between them.
//
// A contour that cannot be closed (no usable next edge before returning to
// its start) is dropped rather than failing the whole build: the lines
// already consumed by it are left marked used, and the walk continues with
// whatever start edges remain.
func BuildPolygons(lines []Edge, vertices []mgl32.Vec2) []SectorPolygon {
	used := make(map[Edge]bool, len(lines))
	for _, l := range lines {
		used[l] = false
	}

	first, ok := findNextStartEdge(false, used, vertices)
	if !ok {
		return nil
	}
	used[NewEdge(first.a, first.b)] = true

	polygons := []SectorPolygon{{Vertices: []VertexIndex{first.a, first.b}}}
	var boundingBoxes []BoundingBox
	clockwise := false

	for {
		cur := polygons[len(polygons)-1]
		n := len(cur.Vertices)
		currentVertex := cur.Vertices[n-1]
		previousVertex := cur.Vertices[n-2]

		next, ok := findNextVertex(currentVertex, previousVertex, clockwise, used, vertices)
		newPolygon := false
		if ok {
			used[NewEdge(currentVertex, next)] = true
			if isPolygonComplete(cur.Vertices, next) {
				newPolygon = true
				boundingBoxes = append(boundingBoxes, boundingBoxOf(cur.Vertices, vertices))
			} else {
				polygons[len(polygons)-1].Vertices = append(polygons[len(polygons)-1].Vertices, next)
			}
		} else {
			// The current contour could not be closed; drop it and move on.
			logger.Printf("geometry: dropping incomplete contour starting at vertex %d (%d vertices walked)", cur.Vertices[0], len(cur.Vertices))
			polygons = polygons[:len(polygons)-1]
			newPolygon = true
		}

		if newPolygon {
			start, ok := findNextStartEdge(clockwise, used, vertices)
			if !ok {
				break
			}
			used[NewEdge(start.a, start.b)] = true

			var holeOf *int
			clockwise = false
			for i, poly := range polygons {
				bb := boundingBoxes[i]
				e := NewEdge(start.a, start.b)
				mid := vertices[e.Lo()].Add(vertices[e.Hi()]).Mul(0.5)
				if bb.IsInside(mid) && edgeInPolygon(e, poly.Vertices, vertices) {
					clockwise = !clockwise
					if clockwise {
						idx := i
						holeOf = &idx
					} else {
						holeOf = nil
					}
				}
			}
			polygons = append(polygons, SectorPolygon{
				Vertices: []VertexIndex{start.a, start.b},
				HoleOf:   holeOf,
			})
		}
	}

	return polygons
}
