package image

import (
	"fmt"

	"github.com/doomkit/wad"
)

// Palette is 256 RGB triples, stored flat: Palette[i*3], [i*3+1], [i*3+2].
type Palette [768]byte

// PaletteCollection is the decoded contents of a PLAYPAL lump: one or more
// 768-byte palettes, selected by game situation (pain, item pickup, and so
// on).
type PaletteCollection []Palette

// DecodePlaypal decodes a PLAYPAL lump into its component palettes. The lump
// length must be a non-zero multiple of 768; any remainder is rejected as
// truncated rather than silently dropped.
func DecodePlaypal(data []byte) (PaletteCollection, error) {
	if len(data) == 0 || len(data)%768 != 0 {
		return nil, fmt.Errorf("image: playpal length %d is not a multiple of 768: %w", len(data), wad.ErrTruncatedInput)
	}
	out := make(PaletteCollection, len(data)/768)
	for i := range out {
		copy(out[i][:], data[i*768:(i+1)*768])
	}
	return out, nil
}

// At returns the palette at index i. An index outside the collection
// (including any index into an empty collection) fails with ErrOutOfRange;
// there is no grayscale fallback here.
func (pc PaletteCollection) At(i int) (*Palette, error) {
	if i < 0 || i >= len(pc) {
		return nil, fmt.Errorf("image: palette index %d: %w", i, wad.ErrOutOfRange)
	}
	return &pc[i], nil
}
