package texture

import "testing"

func TestHashKnownValues(t *testing.T) {
	cases := map[string]uint16{
		"H77":    20269,
		"?":      111,
		"SPACEB": 44097,
	}
	for name, want := range cases {
		if got := Hash(name); got != want {
			t.Errorf("Hash(%q) = %d, want %d", name, got, want)
		}
	}
}

func TestHashOnlyUsesFirstEightBytes(t *testing.T) {
	if Hash("SPACEBXXXX") != Hash("SPACEBXX") {
		t.Error("Hash should ignore bytes past the 8th")
	}
}
