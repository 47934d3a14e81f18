package image

import (
	"io"
	"log"
)

// logger receives diagnostic messages about this package's soft failures:
// picture columns whose post data runs past the end of the lump. It is
// silent by default; callers that want to see these should call SetLogger.
var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger installs l as the destination for this package's diagnostic
// messages.
func SetLogger(l *log.Logger) {
	logger = l
}
