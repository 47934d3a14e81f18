package mapdata

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/doomkit/wad"
)

// Vertex is a single map vertex: a 2D coordinate in map units.
type Vertex struct {
	X, Y int16
}

// LinedefFlags is the 16-bit Linedef flag bitfield. See the DoomWiki
// Linedef#Linedef_flags page for the authoritative bit meanings.
type LinedefFlags uint16

const (
	FlagBlockPlayers  LinedefFlags = 0x01
	FlagBlockMonsters LinedefFlags = 0x02
	FlagTwoSided      LinedefFlags = 0x04
	FlagUpperUnpegged LinedefFlags = 0x08
	FlagLowerUnpegged LinedefFlags = 0x10
	FlagAutomapSolid  LinedefFlags = 0x20
	FlagBlockSound    LinedefFlags = 0x40
	FlagAutomapHidden LinedefFlags = 0x80
	FlagAutomapShown  LinedefFlags = 0x100
)

// Has reports whether every bit set in want is also set in f.
func (f LinedefFlags) Has(want LinedefFlags) bool {
	return f&want == want
}

// Linedef connects two vertices and references the sidedef(s) that texture
// it and the sector(s) it borders.
type Linedef struct {
	A, B    uint16
	Flags   LinedefFlags
	Special uint16
	Tag     uint16
	Front   uint16
	Back    uint16 // 0xFFFF (NoSidedef) when the line is one-sided
}

// NoSidedef is the sentinel Linedef.Back/Front value meaning "no sidedef on
// this side".
const NoSidedef = 0xFFFF

// Sidedef textures one side of a linedef and binds it to a sector.
type Sidedef struct {
	X, Y                  int16
	Upper, Lower, Middle  [8]byte
	Sector                uint16
}

// Sector is a convex region of floor/ceiling with shared height, texture,
// light, and special behaviour.
type Sector struct {
	FloorHeight, CeilingHeight int16
	FloorFlat, CeilingFlat     [8]byte
	Light                      int16
	Special                    int16
	Tag                        int16
}

// Thing places a monster, item, player start, or other map entity.
type Thing struct {
	X, Y, Angle int16
	Type        int16
	Flags       int16
}

func decodeFixed[T any](data []byte, recordSize int) ([]T, error) {
	if recordSize <= 0 {
		panic("mapdata: non-positive record size")
	}
	if len(data)%recordSize != 0 {
		return nil, fmt.Errorf("mapdata: lump length %d is not a multiple of record size %d: %w",
			len(data), recordSize, wad.ErrTruncatedInput)
	}
	count := len(data) / recordSize
	out := make([]T, count)
	r := bytes.NewReader(data)
	for i := range out {
		if err := binary.Read(r, binary.LittleEndian, &out[i]); err != nil {
			return nil, fmt.Errorf("mapdata: decoding record %d: %w", i, wad.ErrTruncatedInput)
		}
	}
	return out, nil
}

// DecodeVertexes decodes a VERTEXES lump's 4-byte-stride records.
func DecodeVertexes(data []byte) ([]Vertex, error) { return decodeFixed[Vertex](data, 4) }

// DecodeLinedefs decodes a LINEDEFS lump's 14-byte-stride records.
func DecodeLinedefs(data []byte) ([]Linedef, error) { return decodeFixed[Linedef](data, 14) }

// DecodeSidedefs decodes a SIDEDEFS lump's 30-byte-stride records.
func DecodeSidedefs(data []byte) ([]Sidedef, error) { return decodeFixed[Sidedef](data, 30) }

// DecodeSectors decodes a SECTORS lump's 26-byte-stride records.
func DecodeSectors(data []byte) ([]Sector, error) { return decodeFixed[Sector](data, 26) }

// DecodeThings decodes a THINGS lump's 10-byte-stride records.
func DecodeThings(data []byte) ([]Thing, error) { return decodeFixed[Thing](data, 10) }
