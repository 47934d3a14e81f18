package geometry

import "github.com/go-gl/mathgl/mgl32"

// BoundingBox is an axis-aligned rectangle over a polygon's vertices, used
// to cheaply reject hole-containment candidates before the exact
// point-in-polygon test.
type BoundingBox struct {
	Top, Left, Right, Bottom float32
}

// IsInside reports whether v falls within (inclusive) the box.
func (b BoundingBox) IsInside(v mgl32.Vec2) bool {
	return v.X() >= b.Left && v.Y() <= b.Top && v.X() <= b.Right && v.Y() >= b.Bottom
}

// boundingBoxOf computes the bounding box of a polygon's vertices, given as
// indices into verts.
func boundingBoxOf(indices []VertexIndex, verts []mgl32.Vec2) BoundingBox {
	first := verts[indices[0]]
	bb := BoundingBox{Top: first.Y(), Left: first.X(), Right: first.X(), Bottom: first.Y()}
	for _, i := range indices {
		p := verts[i]
		if p.X() < bb.Left {
			bb.Left = p.X()
		}
		if p.X() > bb.Right {
			bb.Right = p.X()
		}
		if p.Y() < bb.Bottom {
			bb.Bottom = p.Y()
		}
		if p.Y() > bb.Top {
			bb.Top = p.Y()
		}
	}
	return bb
}
