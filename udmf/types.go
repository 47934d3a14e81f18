package udmf

import (
	"strconv"
)

// ObjectType identifies which of the five known UDMF data block kinds a
// block declares itself as.
type ObjectType int

const (
	Unknown ObjectType = iota
	Thing
	Linedef
	Sidedef
	Sector
	Vertex
)

func (t ObjectType) String() string {
	switch t {
	case Thing:
		return "thing"
	case Linedef:
		return "linedef"
	case Sidedef:
		return "sidedef"
	case Sector:
		return "sector"
	case Vertex:
		return "vertex"
	default:
		return "unknown"
	}
}

func objectTypeFromName(name string) ObjectType {
	switch name {
	case "thing":
		return Thing
	case "linedef":
		return Linedef
	case "sidedef":
		return Sidedef
	case "sector":
		return Sector
	case "vertex":
		return Vertex
	default:
		return Unknown
	}
}

// LightLevel is a sector's lightlevel property; UDMF defaults it to 160
// when absent.
type LightLevel int32

const defaultLightLevel LightLevel = 160

// SidedefTexture is a texture-name property; UDMF defaults it to "-"
// (no texture) when absent.
type SidedefTexture string

const defaultSidedefTexture SidedefTexture = "-"

// SidedefIndex is a linedef's reference to one of its sidedefs; UDMF
// defaults it to -1 (no sidedef on that side) when absent.
type SidedefIndex int32

const defaultSidedefIndex SidedefIndex = -1

// Colour is an RGB triple decoded from a UDMF colour property (a decimal,
// octal, or 0x-prefixed hex 24-bit integer).
type Colour struct {
	R, G, B uint8
}

var defaultMultiplicativeColour = Colour{R: 255, G: 255, B: 255}
var defaultAdditiveColour = Colour{}

func parseColour(s string) (Colour, error) {
	base := 10
	trimmed := s
	switch {
	case len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		base = 16
		trimmed = s[2:]
	case len(s) >= 2 && s[0] == '0':
		base = 8
		trimmed = s[1:]
	}
	rgba, err := strconv.ParseUint(trimmed, base, 32)
	if err != nil {
		return Colour{}, err
	}
	return Colour{
		R: uint8((rgba & 0x00FF0000) >> 16),
		G: uint8((rgba & 0x0000FF00) >> 8),
		B: uint8(rgba & 0x000000FF),
	}, nil
}

// Thing is a parsed UDMF "thing" data block.
type Thing struct {
	X, Y   float32
	Height float32
	Angle  int32
	EdNum  uint32
	ID     uint32
	Props  PropMap
}

// Linedef is a parsed UDMF "linedef" data block.
type Linedef struct {
	V1, V2    uint32
	ID        uint32
	SideFront uint32
	SideBack  SidedefIndex
	Props     PropMap
}

// Sidedef is a parsed UDMF "sidedef" data block.
type Sidedef struct {
	Sector                              uint32
	OffsetX, OffsetY                    int32
	TextureTop, TextureMiddle, TextureBottom SidedefTexture
	Props                               PropMap
}

// Sector is a parsed UDMF "sector" data block.
type Sector struct {
	TextureFloor, TextureCeiling string
	HeightFloor, HeightCeiling   int32
	LightLevel                   LightLevel
	Special                      uint32
	ID                           uint32
	ColorSprites, ColorWallTop, ColorCeiling, ColorFloor, ColorWallBottom Colour
	Props                        PropMap
}

// Vertex is a parsed UDMF "vertex" data block.
type Vertex struct {
	X, Y  float32
	Props PropMap
}

// Map is a fully parsed TEXTMAP lump: the namespace declaration plus every
// typed object found in it, in source order within each object kind.
type Map struct {
	Namespace string
	Things    []Thing
	Linedefs  []Linedef
	Sidedefs  []Sidedef
	Vertices  []Vertex
	Sectors   []Sector
}
