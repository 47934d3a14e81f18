package image

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/doomkit/wad"
)

type pictureHeader struct {
	Width, Height      int16
	LeftOffset, TopOffset int16
}

const postEnd = 0xFF

// DecodePicture decodes a "patch" picture lump: a header giving width,
// height and draw offset, followed by one column-offset table entry per
// column, each pointing at a run-length-encoded sequence of opaque posts
// terminated by a 0xFF marker byte.
//
// Posts use the DeePsea tall-patch convention for patches taller than 254
// pixels: a post's starting row is normally topDelta, but if topDelta does
// not exceed the previous post's starting row in the same column, it is
// added to (rather than replacing) the running total, allowing topDelta
// bytes to encode offsets beyond a single byte's range.
//
// A column whose post data runs past the end of the lump is treated as a
// soft failure: decoding stops for that column only, and DecodePicture
// still returns the image built so far rather than an error. A lump too
// short to hold even the header and offset table yields an empty (0x0)
// image, also without an error.
func DecodePicture(data []byte) (*Image, error) {
	r := bytes.NewReader(data)
	var header pictureHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return &Image{IndexedBytes: []byte{}}, nil
	}
	width, height := int(header.Width), int(header.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image: invalid picture dimensions %dx%d: %w", width, height, wad.ErrBadEncoding)
	}

	offsets := make([]int32, width)
	if err := binary.Read(r, binary.LittleEndian, offsets); err != nil {
		return &Image{IndexedBytes: []byte{}}, nil
	}

	img := &Image{
		Width:        width,
		Height:       height,
		XOffset:      int(header.LeftOffset),
		YOffset:      int(header.TopOffset),
		IndexedBytes: make([]byte, width*height*2),
		HasAlpha:     true,
	}

	for col, offset := range offsets {
		decodeColumn(img, data, col, int(offset))
	}

	return img, nil
}

// decodeColumn walks the posts of one column starting at byte offset in
// data, writing opaque {index, 255} pixels into img. It stops silently (a
// soft failure, not an error) the moment it would read past the end of
// data.
func decodeColumn(img *Image, data []byte, col, offset int) {
	runningTop := -1
	for {
		if offset >= len(data) {
			logger.Printf("image: column %d: post data truncated before topDelta byte", col)
			return
		}
		topDelta := int(data[offset])
		offset++
		if topDelta == postEnd {
			return
		}
		if topDelta <= runningTop {
			runningTop += topDelta
		} else {
			runningTop = topDelta
		}

		if offset >= len(data) {
			logger.Printf("image: column %d: post data truncated before numPixels byte", col)
			return
		}
		numPixels := int(data[offset])
		offset++
		offset++ // unused padding byte before the pixel data

		for i := 0; i < numPixels; i++ {
			if offset >= len(data) {
				logger.Printf("image: column %d: post data truncated at pixel %d of %d", col, i, numPixels)
				return
			}
			y := runningTop + i
			if y >= 0 && y < img.Height {
				pos := (y*img.Width + col) * 2
				img.IndexedBytes[pos] = data[offset]
				img.IndexedBytes[pos+1] = 255
			}
			offset++
		}
		offset++ // unused padding byte after the pixel data
	}
}
