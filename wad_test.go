package wad

import (
	"bytes"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	name := MustLumpName("F_SKY1")
	orig := &Archive{Kind: PWAD, Lumps: []Lump{{Name: name, Data: []byte{83, 75, 89, 10}}}}

	var buf bytes.Buffer
	if err := orig.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(buf.Bytes())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.Kind != PWAD {
		t.Fatalf("got kind %v, want PWAD", got.Kind)
	}
	if len(got.Lumps) != 1 {
		t.Fatalf("got %d lumps, want 1", len(got.Lumps))
	}
	if got.Lumps[0].Name != name {
		t.Fatalf("got name %v, want %v", got.Lumps[0].Name, name)
	}
	if !bytes.Equal(got.Lumps[0].Data, []byte{83, 75, 89, 10}) {
		t.Fatalf("got data %v, want [83 75 89 10]", got.Lumps[0].Data)
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read([]byte("XWAD\x00\x00\x00\x00\x00\x00\x00\x00"))
	if err == nil {
		t.Fatal("expected an error for an invalid magic")
	}
}

func TestReadRejectsTruncatedInput(t *testing.T) {
	_, err := Read([]byte("IWAD"))
	if err == nil {
		t.Fatal("expected an error for truncated input")
	}
}

func TestLumpNameCanonicalization(t *testing.T) {
	ln, err := NewLumpName("floor1")
	if err != nil {
		t.Fatalf("NewLumpName failed: %v", err)
	}
	if ln.String() != "FLOOR1" {
		t.Fatalf("got %q, want FLOOR1", ln.String())
	}
}

func TestLumpNameRejectsNonASCII(t *testing.T) {
	if _, err := NewLumpName("fl\xffr1"); err == nil {
		t.Fatal("expected an error for a non-ASCII lump name")
	}
}
