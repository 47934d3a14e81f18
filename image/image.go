// Package image decodes the pixel-data lumps of a WAD (flats, patch
// pictures, and palettes) into a common in-memory Image representation, and
// provides the blit and palette-application operations renderers need.
package image

import (
	"fmt"
)

// Format names which pixel representation an Image carries.
type Format int

const (
	// Indexed is one palette-index byte per pixel.
	Indexed Format = iota
	// IndexedAlpha is an {index, alpha} byte pair per pixel.
	IndexedAlpha
	// RGBA is four bytes (red, green, blue, alpha) per pixel.
	RGBA
)

// Channels reports the number of bytes per pixel for the format.
func (f Format) Channels() int {
	switch f {
	case RGBA:
		return 4
	case IndexedAlpha:
		return 2
	default:
		return 1
	}
}

func (f Format) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case IndexedAlpha:
		return "IndexedAlpha"
	default:
		return "Indexed"
	}
}

// Image is a decoded picture: a rectangular buffer of either indexed or
// truecolor pixels (never both meaningfully at once, though both fields may
// be populated after ToRGB), plus the patch draw origin.
type Image struct {
	Width, Height  int
	XOffset        int
	YOffset        int
	IndexedBytes   []byte // len == Width*Height*(1+boolToInt(HasAlpha)) when non-nil
	HasAlpha       bool
	TruecolorBytes []byte // len == Width*Height*4 when non-nil (always RGBA)
}

// Format reports which indexed representation this image currently carries.
// It does not look at TruecolorBytes: an image can carry both an indexed
// buffer and a truecolor buffer (after ToRGB), and Format only describes the
// indexed side.
func (img *Image) Format() Format {
	if img.IndexedBytes == nil {
		return RGBA
	}
	if img.HasAlpha {
		return IndexedAlpha
	}
	return Indexed
}

// New allocates a zeroed image buffer for the given format.
func New(width, height int, format Format) *Image {
	img := &Image{Width: width, Height: height}
	switch format {
	case RGBA:
		img.TruecolorBytes = make([]byte, width*height*4)
	case IndexedAlpha:
		img.IndexedBytes = make([]byte, width*height*2)
		img.HasAlpha = true
	default:
		img.IndexedBytes = make([]byte, width*height)
	}
	return img
}

// xyToBufPos returns the byte offset of pixel (x, y) in a row-major buffer of
// the given width/height/channel count, or -1 if the coordinate falls
// outside the buffer.
func xyToBufPos(x, y, w, h, channels int) int {
	if x < 0 || x >= w || y < 0 || y >= h {
		return -1
	}
	pos := (y*w + x) * channels
	size := w * h * channels
	if pos < 0 || pos >= size {
		return -1
	}
	return pos
}

// clipRange returns [lo, hi) intersected with [0, bound).
func clipRange(lo, hi, bound int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > bound {
		hi = bound
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Blit draws other onto img at (x, y), modifying img in place. Both images
// must carry indexed pixel data (Indexed or IndexedAlpha); RGBA images
// cannot be blitted. The destination rectangle is clipped to the
// intersection of both images' bounds; rows/columns entirely outside that
// intersection are left untouched.
//
// Channel combination rules:
//   - Indexed dst, Indexed src: straight copy.
//   - IndexedAlpha dst, IndexedAlpha src: copy {index,alpha} pairs where the
//     source alpha is non-zero; leave the destination alone elsewhere.
//   - IndexedAlpha dst, Indexed src: write {src index, 255}.
//   - Indexed dst, IndexedAlpha src: copy the index only where source alpha
//     is non-zero.
func (img *Image) Blit(other *Image, x, y int) error {
	if img.IndexedBytes == nil || other.IndexedBytes == nil {
		return fmt.Errorf("image: blit requires indexed pixel data on both images")
	}
	if x >= img.Width || y >= img.Height || x+other.Width <= 0 || y+other.Height <= 0 {
		return fmt.Errorf("image: blit destination (%d,%d) is out of bounds", x, y)
	}

	dstX0, dstX1 := clipRange(x, x+other.Width, img.Width)
	dstY0, dstY1 := clipRange(y, y+other.Height, img.Height)
	if dstX0 >= dstX1 || dstY0 >= dstY1 {
		return fmt.Errorf("%w: blit rectangle clips to nothing", errOutOfBounds)
	}

	for dy := dstY0; dy < dstY1; dy++ {
		sy := dy - y
		for dx := dstX0; dx < dstX1; dx++ {
			sx := dx - x
			switch {
			case !img.HasAlpha && !other.HasAlpha:
				dp := xyToBufPos(dx, dy, img.Width, img.Height, 1)
				sp := xyToBufPos(sx, sy, other.Width, other.Height, 1)
				img.IndexedBytes[dp] = other.IndexedBytes[sp]
			case img.HasAlpha && other.HasAlpha:
				dp := xyToBufPos(dx, dy, img.Width, img.Height, 2)
				sp := xyToBufPos(sx, sy, other.Width, other.Height, 2)
				if other.IndexedBytes[sp+1] != 0 {
					img.IndexedBytes[dp] = other.IndexedBytes[sp]
					img.IndexedBytes[dp+1] = other.IndexedBytes[sp+1]
				}
			case img.HasAlpha && !other.HasAlpha:
				dp := xyToBufPos(dx, dy, img.Width, img.Height, 2)
				sp := xyToBufPos(sx, sy, other.Width, other.Height, 1)
				img.IndexedBytes[dp] = other.IndexedBytes[sp]
				img.IndexedBytes[dp+1] = 255
			default: // !img.HasAlpha && other.HasAlpha
				dp := xyToBufPos(dx, dy, img.Width, img.Height, 1)
				sp := xyToBufPos(sx, sy, other.Width, other.Height, 2)
				if other.IndexedBytes[sp+1] != 0 {
					img.IndexedBytes[dp] = other.IndexedBytes[sp]
				}
			}
		}
	}
	return nil
}

var errOutOfBounds = fmt.Errorf("image: out of bounds")

// AddAlpha converts an Indexed image to IndexedAlpha in place, with every
// existing pixel made fully opaque. No-op if the image is already
// IndexedAlpha or has no indexed data at all. Reports whether it changed
// anything.
func (img *Image) AddAlpha() bool {
	if img.IndexedBytes == nil || img.HasAlpha {
		return false
	}
	out := make([]byte, img.Width*img.Height*2)
	for i, b := range img.IndexedBytes {
		out[i*2] = b
		out[i*2+1] = 255
	}
	img.IndexedBytes = out
	img.HasAlpha = true
	return true
}

// GrayscalePalette is the built-in fallback palette used by ToRGB when no
// palette is supplied: channel value equals palette index.
var GrayscalePalette = func() Palette {
	var p Palette
	for i := 0; i < 256; i++ {
		p[i*3] = byte(i)
		p[i*3+1] = byte(i)
		p[i*3+2] = byte(i)
	}
	return p
}()

// ToRGB populates (overwriting) TruecolorBytes from the image's indexed
// data, using pal (or GrayscalePalette if pal is nil) to map palette indices
// to colour. Alpha is taken from the IndexedAlpha buffer's alpha byte when
// present, else forced to 255. Returns false (doing nothing) if the image
// has no indexed data to convert.
func (img *Image) ToRGB(pal *Palette) bool {
	if img.IndexedBytes == nil {
		return false
	}
	if pal == nil {
		pal = &GrayscalePalette
	}
	channels := 1
	if img.HasAlpha {
		channels = 2
	}
	out := make([]byte, img.Width*img.Height*4)
	for i := 0; i < img.Width*img.Height; i++ {
		idx := img.IndexedBytes[i*channels]
		alpha := byte(255)
		if img.HasAlpha {
			alpha = img.IndexedBytes[i*channels+1]
		}
		out[i*4] = pal[int(idx)*3]
		out[i*4+1] = pal[int(idx)*3+1]
		out[i*4+2] = pal[int(idx)*3+2]
		out[i*4+3] = alpha
	}
	img.TruecolorBytes = out
	return true
}
