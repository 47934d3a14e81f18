package wad

import "errors"

// Sentinel errors returned by the decoders in this module. Callers should use
// errors.Is to test for these, since they are frequently wrapped with extra
// context via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidContainer is returned when a WAD's magic bytes are neither
	// "IWAD" nor "PWAD".
	ErrInvalidContainer = errors.New("wad: invalid container magic")
	// ErrTruncatedInput is returned when a binary structure is cut short.
	ErrTruncatedInput = errors.New("wad: truncated input")
	// ErrBadEncoding is returned for non-ASCII lump names or malformed text.
	ErrBadEncoding = errors.New("wad: bad encoding")
	// ErrRequiredLumpMissing is returned when a map or texture resource is
	// missing one of its mandatory sub-resources.
	ErrRequiredLumpMissing = errors.New("wad: required lump missing")
	// ErrOutOfRange is returned for an out-of-bounds palette, vertex, or
	// coordinate lookup.
	ErrOutOfRange = errors.New("wad: index out of range")
	// ErrImageFormatMismatch is returned when blit operands are incompatible.
	ErrImageFormatMismatch = errors.New("wad: incompatible image formats")
)
