package wad

import "testing"

func lumpsNamed(names ...string) []Lump {
	lumps := make([]Lump, len(names))
	for i, n := range names {
		lumps[i] = Lump{Name: MustLumpName(n)}
	}
	return lumps
}

func TestNamespaceSimpleRange(t *testing.T) {
	lumps := lumpsNamed("P_START", "PATCH1", "PATCH2", "P_END")
	out := Namespace(lumps, PatchNamespaceStart, PatchNamespaceEnd, nil)
	if len(out) != 1 || len(out[0]) != 2 {
		t.Fatalf("got %v, want one range of 2 lumps", out)
	}
	if out[0][0].Name.String() != "PATCH1" || out[0][1].Name.String() != "PATCH2" {
		t.Fatalf("got %v", out[0])
	}
}

func TestNamespaceMissingMarkerYieldsNil(t *testing.T) {
	lumps := lumpsNamed("PATCH1", "PATCH2")
	if out := Namespace(lumps, PatchNamespaceStart, PatchNamespaceEnd, nil); out != nil {
		t.Fatalf("got %v, want nil", out)
	}
}

func TestNamespaceSubsections(t *testing.T) {
	lumps := lumpsNamed(
		"P_START",
		"P1_START", "WALL1", "P1_END",
		"P2_START", "WALL2", "WALL3", "P2_END",
		"P_END",
	)
	sub := [2][]string{PatchSubsectionStart, PatchSubsectionEnd}
	out := Namespace(lumps, PatchNamespaceStart, PatchNamespaceEnd, &sub)
	if len(out) != 2 {
		t.Fatalf("got %d subsections, want 2", len(out))
	}
	if len(out[0]) != 1 || out[0][0].Name.String() != "WALL1" {
		t.Fatalf("got first subsection %v", out[0])
	}
	if len(out[1]) != 2 || out[1][0].Name.String() != "WALL2" || out[1][1].Name.String() != "WALL3" {
		t.Fatalf("got second subsection %v", out[1])
	}
}
