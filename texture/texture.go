package texture

import (
	"bytes"
	"encoding/binary"
	"fmt"

	doomimage "github.com/doomkit/wad/image"

	"github.com/doomkit/wad"
)

// Patch places one named patch lump at an offset within a composite
// texture.
type Patch struct {
	Name string
	X, Y int
}

// Definition describes one composite texture: its final dimensions and the
// ordered list of patches drawn to build it, each blitted in turn so later
// patches draw over earlier ones.
type Definition struct {
	Name          string
	Width, Height int
	Patches       []Patch
}

// Definitions is a parsed TEXTUREx lump, with patch names already resolved
// from PNAMES.
type Definitions struct {
	Textures []Definition
}

type texturexHeader struct {
	Flags          int32
	Width, Height  int16
	ColumnDir      int32 // unused since the Doom alpha, kept for layout
	PatchCount     int16
}

type texturexPatch struct {
	X, Y       int16
	PatchIndex int16
	Flags      int32
}

// ReadTextureX decodes a TEXTURE1 or TEXTURE2 lump. pnames resolves the
// per-patch index stored in the lump to a lump name; it is normally the
// result of ReadPNames on the companion PNAMES lump.
func ReadTextureX(data []byte, pnames []string) (*Definitions, error) {
	r := bytes.NewReader(data)
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("texture: reading texture count: %w", wad.ErrTruncatedInput)
	}
	if count < 0 {
		return nil, fmt.Errorf("texture: negative texture count %d: %w", count, wad.ErrBadEncoding)
	}

	offsets := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return nil, fmt.Errorf("texture: reading texture offset table: %w", wad.ErrTruncatedInput)
	}

	defs := &Definitions{Textures: make([]Definition, count)}
	for i, offset := range offsets {
		if _, err := r.Seek(int64(offset), 0); err != nil {
			return nil, fmt.Errorf("texture: seeking to texture %d: %w", i, wad.ErrTruncatedInput)
		}
		var nameBuf [8]byte
		if err := binary.Read(r, binary.LittleEndian, &nameBuf); err != nil {
			return nil, fmt.Errorf("texture: reading texture %d name: %w", i, wad.ErrTruncatedInput)
		}
		ln, err := wad.NewLumpName(trimNUL(nameBuf[:]))
		if err != nil {
			return nil, fmt.Errorf("texture: texture %d: %w", i, err)
		}

		var header texturexHeader
		if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
			return nil, fmt.Errorf("texture: reading texture %d header: %w", i, wad.ErrTruncatedInput)
		}

		def := Definition{
			Name:    ln.String(),
			Width:   int(header.Width),
			Height:  int(header.Height),
			Patches: make([]Patch, header.PatchCount),
		}
		for p := 0; p < int(header.PatchCount); p++ {
			var tp texturexPatch
			if err := binary.Read(r, binary.LittleEndian, &tp); err != nil {
				return nil, fmt.Errorf("texture: reading texture %d patch %d: %w", i, p, wad.ErrTruncatedInput)
			}
			name := ""
			if int(tp.PatchIndex) >= 0 && int(tp.PatchIndex) < len(pnames) {
				name = pnames[tp.PatchIndex]
			}
			def.Patches[p] = Patch{Name: name, X: int(tp.X), Y: int(tp.Y)}
		}
		defs.Textures[i] = def
	}
	return defs, nil
}

// PatchLookup resolves a patch lump name to its decoded image. Implementations
// typically decode picture lumps (image.DecodePicture) on demand or from a
// cache.
type PatchLookup func(name string) (*doomimage.Image, error)

// Build composes one texture definition into a finished IndexedAlpha image
// by blitting each of its patches, in order, via lookup. A patch whose name
// cannot be resolved (lookup returns an error or a nil image, or the
// definition references an out-of-range PNAMES index and so carries an empty
// name) is skipped, with a message to this package's logger: TEXTUREx lumps
// shipped with missing patches are common in the
// wild and a single bad patch should not sink the whole texture.
func (d *Definition) Build(lookup PatchLookup) (*doomimage.Image, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("texture: %s has non-positive dimensions %dx%d", d.Name, d.Width, d.Height)
	}
	out := doomimage.New(d.Width, d.Height, doomimage.IndexedAlpha)
	for _, p := range d.Patches {
		if p.Name == "" {
			logger.Printf("texture: %s: patch at (%d,%d) has an unresolved PNAMES index, skipping", d.Name, p.X, p.Y)
			continue
		}
		patchImg, err := lookup(p.Name)
		if err != nil || patchImg == nil {
			logger.Printf("texture: %s: patch %s could not be resolved, skipping: %v", d.Name, p.Name, err)
			continue
		}
		_ = out.Blit(patchImg, p.X, p.Y)
	}
	return out, nil
}
