package mapdata

import (
	"fmt"

	"github.com/doomkit/wad"
)

// Format identifies the dialect of a decoded map's lumps.
type Format int

const (
	Vanilla Format = iota
	Hexen
	PSX
	Doom64
)

func (f Format) String() string {
	switch f {
	case Hexen:
		return "Hexen"
	case PSX:
		return "PSX"
	case Doom64:
		return "Doom64"
	default:
		return "Vanilla"
	}
}

// Map is one located map: its header lump's name, detected format, and the
// contiguous run of lumps (starting just after the header) that belong to
// it.
type Map struct {
	Name   wad.LumpName
	Format Format
	Lumps  []wad.Lump
}

// Lump returns the first lump in m whose name matches name, or false if
// none does.
func (m *Map) Lump(name string) (wad.Lump, bool) {
	for _, l := range m.Lumps {
		if l.Name.String() == name {
			return l, true
		}
	}
	return wad.Lump{}, false
}

// OpenMap inspects the lump at lumps[index] to see whether it is a map
// header: a lump that is not itself one of the known map sub-lump names,
// immediately followed by a contiguous run of lumps drawn from that same
// known set, containing at minimum THINGS/LINEDEFS/SIDEDEFS/VERTEXES/
// SECTORS. It returns nil if lumps[index] does not start a map.
//
// The end of the lump run is the first subsequent lump whose name is NOT
// one of the known map sub-lump names (allLumps); every lump up to but
// excluding that one belongs to the map.
func OpenMap(lumps []wad.Lump, index int) (*Map, error) {
	if index < 0 || index >= len(lumps) {
		return nil, fmt.Errorf("mapdata: lump index %d: %w", index, wad.ErrOutOfRange)
	}
	head := lumps[index]
	if nameIn(head.Name, allLumps) {
		return nil, nil
	}

	end := len(lumps)
	for i := index + 1; i < len(lumps); i++ {
		if !nameIn(lumps[i].Name, allLumps) {
			end = i
			break
		}
	}
	mapLumps := lumps[index+1 : end]

	names := make([]wad.LumpName, len(mapLumps))
	for i, l := range mapLumps {
		names[i] = l.Name
	}

	for _, req := range requiredLumps {
		if !anyIn(names, []string{req}) {
			return nil, nil
		}
	}

	var format Format
	switch {
	case anyIn(names, []string{hexenLump}):
		format = Hexen
	case containsAll(names, d64Lumps):
		format = Doom64
	case containsAll(names, psxLumps):
		format = PSX
	default:
		format = Vanilla
	}

	return &Map{Name: head.Name, Format: format, Lumps: mapLumps}, nil
}

// containsAll reports whether every name in want appears somewhere in have.
func containsAll(have []wad.LumpName, want []string) bool {
	for _, w := range want {
		if !anyIn(have, []string{w}) {
			return false
		}
	}
	return true
}

// FindMaps scans every lump in lumps and returns every map found, in
// directory order. Lumps consumed by one map's record run are not
// re-examined as potential headers for another.
func FindMaps(lumps []wad.Lump) ([]*Map, error) {
	var maps []*Map
	i := 0
	for i < len(lumps) {
		m, err := OpenMap(lumps, i)
		if err != nil {
			return nil, err
		}
		if m == nil {
			i++
			continue
		}
		maps = append(maps, m)
		i += 1 + len(m.Lumps)
	}
	return maps, nil
}
