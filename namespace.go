package wad

// Standard namespace marker pairs used by PWADs to delimit ranges of patch
// and flat lumps, with DeuTex-style subsections.
var (
	PatchNamespaceStart    = []string{"P_START", "PP_START"}
	PatchNamespaceEnd      = []string{"P_END", "PP_END"}
	PatchSubsectionStart   = []string{"P1_START", "P2_START", "P3_START"}
	PatchSubsectionEnd     = []string{"P1_END", "P2_END", "P3_END"}
	FlatNamespaceStart     = []string{"F_START", "FF_START"}
	FlatNamespaceEnd       = []string{"F_END", "FF_END"}
	FlatSubsectionStart    = []string{"F1_START", "F2_START", "F3_START"}
	FlatSubsectionEnd      = []string{"F1_END", "F2_END", "F3_END"}
	SpriteNamespaceStart   = []string{"S_START", "SS_START"}
	SpriteNamespaceEnd     = []string{"S_END", "SS_END"}
)

func nameInSet(n LumpName, set []string) bool {
	for _, s := range set {
		if namesEqualFold(n, s) {
			return true
		}
	}
	return false
}

// indexOfAny returns the index, relative to lumps[0], of the first lump whose
// name is in set, or -1 if none match.
func indexOfAny(lumps []Lump, set []string) int {
	for i, l := range lumps {
		if nameInSet(l.Name, set) {
			return i
		}
	}
	return -1
}

// subsectionPair records, for one subsection-start marker found inside a
// namespace, the index (relative to the namespace slice) where it starts and
// the end-marker name positionally paired with it in the start/end sets.
type subsectionPair struct {
	startIndex int
	endName    string
}

// Namespace finds the lumps strictly between the first lump whose name is in
// start and the first subsequent lump whose name is in end (neither marker
// is included), and returns them as a single-element slice-of-slices (unless
// subsections split it further). If either marker is absent, it returns nil.
//
// When sub is non-nil and the very first lump of the namespace matches one of
// sub's start markers, the namespace is instead re-partitioned: each lump
// matching a subsection-start marker opens a new range of the lumps after it,
// up to (not including) the next lump matching the correspondingly-positioned
// subsection-end marker.
// Positions returned by a search over a suffix of the lump sequence are
// relative to that suffix's first element; every such relative position is
// added back to the absolute offset of that suffix before it is used to index
// into the full lump sequence.
func Namespace(lumps []Lump, start, end []string, sub *[2][]string) [][]Lump {
	startRel := indexOfAny(lumps, start)
	if startRel < 0 {
		logger.Printf("namespace: no start marker found among %v", start)
		return nil
	}
	nsStart := startRel + 1 // lumps[nsStart:] begins just after the marker

	endRel := indexOfAny(lumps[nsStart:], end)
	if endRel < 0 {
		logger.Printf("namespace: no end marker found among %v after lump %d", end, startRel)
		return nil
	}
	nsEnd := nsStart + endRel // exclusive upper bound: the end-marker lump itself

	nsSlice := lumps[nsStart:nsEnd]

	hasSubsections := sub != nil && len(nsSlice) > 0 && nameInSet(nsSlice[0].Name, sub[0])
	if !hasSubsections {
		return [][]Lump{nsSlice}
	}

	subStart, subEnd := sub[0], sub[1]
	var pairs []subsectionPair
	for i, l := range nsSlice {
		for si, sname := range subStart {
			if namesEqualFold(l.Name, sname) {
				pairs = append(pairs, subsectionPair{startIndex: i, endName: subEnd[si]})
				break
			}
		}
	}

	var out [][]Lump
	for _, p := range pairs {
		// Search over the suffix starting at p.startIndex; the result is
		// relative to that suffix, so add p.startIndex back before indexing.
		endRel := indexOfAny(nsSlice[p.startIndex:], []string{p.endName})
		if endRel < 0 {
			logger.Printf("namespace: subsection starting at lump %d has no %s marker", p.startIndex, p.endName)
			continue
		}
		endAbs := p.startIndex + endRel
		out = append(out, nsSlice[p.startIndex+1:endAbs])
	}
	return out
}
