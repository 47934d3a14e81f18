// Package wad provides access to Doom's data archives also known as WAD
// files. The file format is documented in The Unofficial DOOM Specs:
// http://www.gamers.org/dhs/helpdocs/dmsp1666.html
package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Kind distinguishes the two WAD container flavours.
type Kind int

const (
	// IWAD is an internal WAD: a complete, standalone game data archive.
	IWAD Kind = iota
	// PWAD is a patch WAD: lumps meant to be merged on top of an IWAD.
	PWAD
)

func (k Kind) magic() [4]byte {
	if k == IWAD {
		return [4]byte{'I', 'W', 'A', 'D'}
	}
	return [4]byte{'P', 'W', 'A', 'D'}
}

func (k Kind) String() string {
	if k == IWAD {
		return "IWAD"
	}
	return "PWAD"
}

// Archive is an in-memory representation of a WAD file: its kind (IWAD or
// PWAD) and its ordered sequence of lumps. Order is significant: namespace
// markers and map headers rely on lump position, and duplicate lump names
// are permitted.
type Archive struct {
	Kind  Kind
	Lumps []Lump
}

type directoryEntry struct {
	Pos  uint32
	Size uint32
	Name LumpName
}

// Read parses a complete WAD file from data. It fails with ErrInvalidContainer
// if the magic bytes don't match IWAD/PWAD, and with ErrTruncatedInput if the
// directory or any lump runs past the end of data.
func Read(data []byte) (*Archive, error) {
	r := bytes.NewReader(data)

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("wad: reading magic: %w", ErrTruncatedInput)
	}
	var kind Kind
	switch magic {
	case (Kind(IWAD)).magic():
		kind = IWAD
	case (Kind(PWAD)).magic():
		kind = PWAD
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidContainer, magic)
	}

	var lumpCount uint32
	if err := binary.Read(r, binary.LittleEndian, &lumpCount); err != nil {
		return nil, fmt.Errorf("wad: reading lump count: %w", ErrTruncatedInput)
	}
	var dirOffset uint32
	if err := binary.Read(r, binary.LittleEndian, &dirOffset); err != nil {
		return nil, fmt.Errorf("wad: reading directory offset: %w", ErrTruncatedInput)
	}

	if _, err := r.Seek(int64(dirOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("wad: seeking to directory: %w", ErrTruncatedInput)
	}

	directory := make([]directoryEntry, lumpCount)
	for i := range directory {
		if err := binary.Read(r, binary.LittleEndian, &directory[i]); err != nil {
			return nil, fmt.Errorf("wad: reading directory entry %d: %w", i, ErrTruncatedInput)
		}
	}

	lumps := make([]Lump, lumpCount)
	for i, entry := range directory {
		if _, err := r.Seek(int64(entry.Pos), io.SeekStart); err != nil {
			return nil, fmt.Errorf("wad: seeking to lump %d (%s): %w", i, entry.Name, ErrTruncatedInput)
		}
		buf := make([]byte, entry.Size)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("wad: reading lump %d (%s): %w", i, entry.Name, ErrTruncatedInput)
		}
		lumps[i] = Lump{Name: entry.Name, Data: buf}
	}

	return &Archive{Kind: kind, Lumps: lumps}, nil
}

// Write serialises the archive to sink as header + concatenated lump data +
// directory, in the archive's existing lump order. The output round-trips
// byte-exactly through Read for any archive Read itself produced.
func (a *Archive) Write(sink io.Writer) error {
	const headerSize = 12
	magic := a.Kind.magic()
	if _, err := sink.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(sink, binary.LittleEndian, uint32(len(a.Lumps))); err != nil {
		return err
	}

	var totalSize uint32
	for _, lump := range a.Lumps {
		totalSize += uint32(len(lump.Data))
	}
	dirOffset := uint32(headerSize) + totalSize
	if err := binary.Write(sink, binary.LittleEndian, dirOffset); err != nil {
		return err
	}

	directory := make([]directoryEntry, len(a.Lumps))
	pos := uint32(headerSize)
	for i, lump := range a.Lumps {
		if _, err := sink.Write(lump.Data); err != nil {
			return err
		}
		directory[i] = directoryEntry{Pos: pos, Size: uint32(len(lump.Data)), Name: lump.Name}
		pos += uint32(len(lump.Data))
	}

	for _, entry := range directory {
		if err := binary.Write(sink, binary.LittleEndian, entry); err != nil {
			return err
		}
	}
	return nil
}
