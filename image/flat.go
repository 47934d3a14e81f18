package image

import (
	"fmt"

	"github.com/doomkit/wad"
)

// FlatWidth is the fixed column count of a flat image; Doom flats are always
// 64 pixels wide, with height implied by the lump's length.
const FlatWidth = 64

// DecodeFlat decodes a flat lump: a row-major, 64-wide block of raw palette
// indices with no header. Height is ceil(len(data) / 64); a short final row
// is zero-padded rather than rejected, matching the leniency of the original
// renderer towards malformed flats.
func DecodeFlat(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image: empty flat lump: %w", wad.ErrTruncatedInput)
	}
	height := (len(data) + FlatWidth - 1) / FlatWidth
	buf := make([]byte, FlatWidth*height)
	copy(buf, data)
	return &Image{
		Width:        FlatWidth,
		Height:       height,
		IndexedBytes: buf,
	}, nil
}
