// Package mapdata locates and decodes the binary map lumps of a WAD: the
// per-map header plus its run of fixed-format VERTEXES/LINEDEFS/SIDEDEFS/
// SECTORS/THINGS (and the format-specific lumps that distinguish Vanilla,
// Hexen, PSX, and Doom 64 maps).
package mapdata

import "github.com/doomkit/wad"

var requiredLumps = []string{"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SECTORS"}

var baseLumps = []string{
	"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SEGS",
	"SSECTORS", "NODES", "SECTORS", "REJECT", "BLOCKMAP",
}

var hexenLump = "BEHAVIOR"

var psxLumps = []string{"LEAFS", "LIGHTS"}

var d64Lumps = []string{"LEAFS", "LIGHTS", "MACROS"}

var allLumps = []string{
	"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SECTORS",
	"SEGS", "SSECTORS", "NODES", "REJECT", "BLOCKMAP",
	"LEAFS", "LIGHTS", "MACROS", "BEHAVIOR", "SCRIPTS", "DIALOGUE",
}

func nameIn(n wad.LumpName, set []string) bool {
	for _, s := range set {
		if n.String() == s {
			return true
		}
	}
	return false
}

func allIn(names []wad.LumpName, set []string) bool {
	for _, n := range names {
		if !nameIn(n, set) {
			return false
		}
	}
	return true
}

func anyIn(names []wad.LumpName, set []string) bool {
	for _, n := range names {
		if nameIn(n, set) {
			return true
		}
	}
	return false
}
