package texture

import (
	"bytes"
	"encoding/binary"
	"testing"

	doomimage "github.com/doomkit/wad/image"
)

func buildPnames(names ...string) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, int32(len(names)))
	for _, n := range names {
		var raw [8]byte
		copy(raw[:], n)
		buf.Write(raw[:])
	}
	return buf.Bytes()
}

func TestReadPNames(t *testing.T) {
	data := buildPnames("WALL01", "DOOR3")
	names, err := ReadPNames(data)
	if err != nil {
		t.Fatalf("ReadPNames: %v", err)
	}
	if len(names) != 2 || names[0] != "WALL01" || names[1] != "DOOR3" {
		t.Fatalf("got %v", names)
	}
}

func buildTexture1(defs []Definition) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, int32(len(defs)))
	offsetsPos := buf.Len()
	buf.Write(make([]byte, 4*len(defs)))

	offsets := make([]int32, len(defs))
	for i, d := range defs {
		offsets[i] = int32(buf.Len())
		var nameBuf [8]byte
		copy(nameBuf[:], d.Name)
		buf.Write(nameBuf[:])
		binary.Write(buf, binary.LittleEndian, int32(0))
		binary.Write(buf, binary.LittleEndian, int16(d.Width))
		binary.Write(buf, binary.LittleEndian, int16(d.Height))
		binary.Write(buf, binary.LittleEndian, int32(0))
		binary.Write(buf, binary.LittleEndian, int16(len(d.Patches)))
		for _, p := range d.Patches {
			binary.Write(buf, binary.LittleEndian, int16(p.X))
			binary.Write(buf, binary.LittleEndian, int16(p.Y))
			binary.Write(buf, binary.LittleEndian, int16(0)) // patch index filled below
			binary.Write(buf, binary.LittleEndian, int32(0))
		}
	}

	out := buf.Bytes()
	for i, off := range offsets {
		pos := offsetsPos + i*4
		out[pos] = byte(off)
		out[pos+1] = byte(off >> 8)
		out[pos+2] = byte(off >> 16)
		out[pos+3] = byte(off >> 24)
	}
	return out
}

func TestReadTextureXResolvesPatchNames(t *testing.T) {
	data := buildTexture1([]Definition{
		{Name: "WALL1", Width: 128, Height: 128, Patches: []Patch{{X: 0, Y: 0}}},
	})
	pnames := []string{"WALL01"}

	defs, err := ReadTextureX(data, pnames)
	if err != nil {
		t.Fatalf("ReadTextureX: %v", err)
	}
	if len(defs.Textures) != 1 {
		t.Fatalf("got %d textures, want 1", len(defs.Textures))
	}
	tex := defs.Textures[0]
	if tex.Name != "WALL1" || tex.Width != 128 || tex.Height != 128 {
		t.Fatalf("unexpected texture: %+v", tex)
	}
	if len(tex.Patches) != 1 || tex.Patches[0].Name != "WALL01" {
		t.Fatalf("unexpected patches: %+v", tex.Patches)
	}
}

func TestBuildSkipsMissingPatch(t *testing.T) {
	def := Definition{
		Name: "BROKEN", Width: 4, Height: 4,
		Patches: []Patch{{Name: "MISSING", X: 0, Y: 0}},
	}
	img, err := def.Build(func(name string) (*doomimage.Image, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if img.Width != 4 || img.Height != 4 {
		t.Fatalf("got %dx%d, want 4x4", img.Width, img.Height)
	}
}
