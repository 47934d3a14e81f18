package wad

import (
	"io"
	"log"
)

// logger receives diagnostic messages about this package's own soft
// failures, such as a requested namespace whose start or end marker lump is
// missing. It is silent by default; callers that want to see these should
// call SetLogger. The image, texture, and geometry packages each keep an
// equivalent logger var of their own for their own soft failures (short
// picture reads, missing composite-texture patches, dropped incomplete
// polygons), set independently via their own SetLogger.
var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger installs l as the destination for this package's diagnostic
// messages.
func SetLogger(l *log.Logger) {
	logger = l
}
