package geometry

import "testing"

func TestNewEdgeSortsEndpoints(t *testing.T) {
	if NewEdge(4, 1) != NewEdge(1, 4) {
		t.Fatal("edges with swapped endpoints should compare equal")
	}
}

func TestEdgeContainsAndOther(t *testing.T) {
	e := NewEdge(4, 1)
	if !e.Contains(4) || !e.Contains(1) {
		t.Fatal("edge should contain both its endpoints")
	}
	if e.Contains(2) {
		t.Fatal("edge should not contain an unrelated index")
	}
	other, ok := e.Other(4)
	if !ok || other != 1 {
		t.Fatalf("Other(4) = (%d, %v), want (1, true)", other, ok)
	}
	if _, ok := e.Other(2); ok {
		t.Fatal("Other(2) should report not-found")
	}
}

func TestEdgeOtherUnchecked(t *testing.T) {
	e := NewEdge(4, 1)
	if got := e.OtherUnchecked(4); got != 1 {
		t.Fatalf("OtherUnchecked(4) = %d, want 1", got)
	}
	if got := e.OtherUnchecked(2); got != 1 {
		t.Fatalf("OtherUnchecked(2) = %d, want 1", got)
	}
}

func TestNewEdgePanicsOnSameVertex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a zero-length edge")
		}
	}()
	NewEdge(3, 3)
}
