package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestFlatPlaneZAt(t *testing.T) {
	p := FlatPlane(16)
	positions := []mgl32.Vec2{{16, 16}, {-16, 16}, {-16, -16}, {16, -16}}
	for _, pos := range positions {
		if got := p.ZAt(pos); got != 16 {
			t.Fatalf("ZAt(%v) = %v, want 16", pos, got)
		}
	}
}

func TestFromTriangleFlat(t *testing.T) {
	p := FromTriangle(
		mgl32.Vec3{16, 16, 5},
		mgl32.Vec3{-16, 16, 5},
		mgl32.Vec3{-16, -16, 5},
	)
	if !p.IsFlat() || p.Height() != 5 {
		t.Fatalf("expected a flat plane at height 5, got %+v", p)
	}
}

func TestFromTriangleSloped(t *testing.T) {
	p := FromTriangle(
		mgl32.Vec3{16, 16, 21},
		mgl32.Vec3{-16, 16, 5},
		mgl32.Vec3{-16, -16, -11},
	)
	if p.IsFlat() {
		t.Fatal("expected a sloped plane")
	}
	positions := []mgl32.Vec2{{16, 16}, {-16, 16}, {-16, -16}, {16, -16}}
	want := []float32{21, 5, -11, 5}
	for i, pos := range positions {
		if got := p.ZAt(pos); !almostEqual(got, want[i]) {
			t.Fatalf("ZAt(%v) = %v, want %v", pos, got, want[i])
		}
	}
}

func TestPlaneNormalFlat(t *testing.T) {
	p := FlatPlane(5)
	n := p.Normal(false)
	want := mgl32.Vec3{0, 0, 1}
	if n != want {
		t.Fatalf("Normal(false) = %v, want %v", n, want)
	}
	if r := p.Normal(true); r != (mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("Normal(true) = %v, want {0,0,-1}", r)
	}
}

func TestPlaneIntersection(t *testing.T) {
	pa := FromTriangle(mgl32.Vec3{0, -1, 1}, mgl32.Vec3{-2, -1, 1}, mgl32.Vec3{0, 1, 2})
	pb := FlatPlane(1.5)
	got, ok := pa.Intersection(mgl32.Vec2{0, 1}, mgl32.Vec2{0, -1}, pb)
	if !ok {
		t.Fatal("expected an intersection within the segment")
	}
	if got.Z() < 1 || got.Z() > 2 {
		t.Fatalf("intersection Z %v out of the expected range", got.Z())
	}
}
