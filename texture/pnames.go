// Package texture reads the TEXTURE1/TEXTURE2 composite-texture
// definitions and the PNAMES patch name table, and composes the named
// patches into finished images.
package texture

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/doomkit/wad"
)

// ReadPNames decodes a PNAMES lump into its ordered list of patch lump
// names, indexed by the patch index stored in each TEXTUREx patch entry.
func ReadPNames(data []byte) ([]string, error) {
	r := bytes.NewReader(data)
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("texture: reading pnames count: %w", wad.ErrTruncatedInput)
	}
	if count < 0 {
		return nil, fmt.Errorf("texture: negative pnames count %d: %w", count, wad.ErrBadEncoding)
	}
	names := make([]string, count)
	var raw [8]byte
	for i := range names {
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, fmt.Errorf("texture: reading pnames entry %d: %w", i, wad.ErrTruncatedInput)
		}
		ln, err := wad.NewLumpName(trimNUL(raw[:]))
		if err != nil {
			return nil, fmt.Errorf("texture: pnames entry %d: %w", i, err)
		}
		names[i] = ln.String()
	}
	return names, nil
}

func trimNUL(b []byte) string {
	i := 0
	for i < len(b) && b[i] != 0 {
		i++
	}
	return string(b[:i])
}
