package image

import "testing"

func TestDecodeFlatPadsShortData(t *testing.T) {
	data := make([]byte, 64*10+3)
	for i := range data {
		data[i] = byte(i % 7)
	}
	img, err := DecodeFlat(data)
	if err != nil {
		t.Fatalf("DecodeFlat: %v", err)
	}
	if img.Width != FlatWidth || img.Height != 11 {
		t.Fatalf("got %dx%d, want 64x11", img.Width, img.Height)
	}
	if len(img.IndexedBytes) != FlatWidth*11 {
		t.Fatalf("buffer length %d, want %d", len(img.IndexedBytes), FlatWidth*11)
	}
	// the padded tail of the final row must be zero
	for i := 64*10 + 3; i < len(img.IndexedBytes); i++ {
		if img.IndexedBytes[i] != 0 {
			t.Fatalf("byte %d = %d, want 0 padding", i, img.IndexedBytes[i])
		}
	}
}

func TestDecodeFlatRejectsEmpty(t *testing.T) {
	if _, err := DecodeFlat(nil); err == nil {
		t.Fatal("expected error for empty flat data")
	}
}

func buildPicture(width, height int16, left, top int16, columns [][]byte) []byte {
	// columns[i] is a complete post stream (topDelta, numPixels, pad,
	// pixels..., pad, 0xFF) for column i.
	buf := make([]byte, 8+4*int(width))
	writeInt16 := func(off int, v int16) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	writeInt16(0, width)
	writeInt16(2, height)
	writeInt16(4, left)
	writeInt16(6, top)

	offsets := make([]int32, width)
	for i, col := range columns {
		offsets[i] = int32(len(buf))
		buf = append(buf, col...)
	}
	for i, off := range offsets {
		pos := 8 + i*4
		buf[pos] = byte(off)
		buf[pos+1] = byte(off >> 8)
		buf[pos+2] = byte(off >> 16)
		buf[pos+3] = byte(off >> 24)
	}
	return buf
}

func TestDecodePictureSingleColumn(t *testing.T) {
	col := []byte{0, 3, 0, 10, 11, 12, 0, postEnd}
	data := buildPicture(1, 5, 0, 0, [][]byte{col})

	img, err := DecodePicture(data)
	if err != nil {
		t.Fatalf("DecodePicture: %v", err)
	}
	if img.Width != 1 || img.Height != 5 {
		t.Fatalf("got %dx%d, want 1x5", img.Width, img.Height)
	}
	want := []byte{10, 11, 12}
	for y, v := range want {
		pos := y * 2
		if img.IndexedBytes[pos] != v || img.IndexedBytes[pos+1] != 255 {
			t.Fatalf("row %d = (%d,%d), want (%d,255)", y, img.IndexedBytes[pos], img.IndexedBytes[pos+1], v)
		}
	}
	pos := 3 * 2
	if img.IndexedBytes[pos+1] != 0 {
		t.Fatalf("row 3 should be transparent, alpha=%d", img.IndexedBytes[pos+1])
	}
}

func TestDecodePictureChainedTallPatchPosts(t *testing.T) {
	// Three DeePsea tall-patch posts chained onto one column: topDelta 5,
	// then 3 (3<=5, continues from 5 to 8), then 4 (4<=8, continues from 8
	// to 12). A comparator that checks the raw previous topDelta (3) instead
	// of the running Y (8) would wrongly treat the third post as a restart
	// and place it at y=4 instead of y=12.
	col := []byte{
		5, 1, 0, 100, 0,
		3, 1, 0, 101, 0,
		4, 1, 0, 102, 0,
		postEnd,
	}
	data := buildPicture(1, 13, 0, 0, [][]byte{col})

	img, err := DecodePicture(data)
	if err != nil {
		t.Fatalf("DecodePicture: %v", err)
	}
	want := map[int]byte{5: 100, 8: 101, 12: 102}
	for y, v := range want {
		pos := y * 2
		if img.IndexedBytes[pos] != v || img.IndexedBytes[pos+1] != 255 {
			t.Fatalf("row %d = (%d,%d), want (%d,255)", y, img.IndexedBytes[pos], img.IndexedBytes[pos+1], v)
		}
	}
}

func TestDecodePictureTruncatedColumnIsSoftFailure(t *testing.T) {
	col := []byte{0, 5, 0, 1, 2} // claims 5 pixels, only provides 2
	data := buildPicture(1, 5, 0, 0, [][]byte{col})

	img, err := DecodePicture(data)
	if err != nil {
		t.Fatalf("DecodePicture should not error on a truncated column: %v", err)
	}
	if img.IndexedBytes[0] != 1 || img.IndexedBytes[2] != 2 {
		t.Fatalf("expected the two readable pixels to be decoded")
	}
}
