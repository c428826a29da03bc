package xbm

// The wire format packs each row independently: eight pixels per byte,
// least significant bit leftmost, rows padded out to a whole byte.

const bitsPerWord = 8

// rowStride is the number of bytes holding one row of pixels.
func rowStride(width int) int {
	return (width + bitsPerWord - 1) / bitsPerWord
}

// unpackBits expands packed bytes into a row-major pixel matrix. The
// byte count must match the dimensions exactly. Padding bits beyond
// width are dropped without inspection unless strict is set.
func unpackBits(data []byte, width, height int, strict bool) ([][]byte, error) {
	stride := rowStride(width)
	if len(data) != stride*height {
		return nil, &SizeMismatchError{Expected: stride * height, Actual: len(data)}
	}

	pixels := make([][]byte, height)
	for y := range height {
		row := make([]byte, width)
		for x := range width {
			row[x] = (data[y*stride+x/bitsPerWord] >> (x % bitsPerWord)) & 1
		}
		pixels[y] = row
	}

	if strict && width%bitsPerWord != 0 {
		mask := byte(0xff) << (width % bitsPerWord)
		for y := range height {
			if data[y*stride+stride-1]&mask != 0 {
				return nil, ErrPaddingBits
			}
		}
	}
	return pixels, nil
}

// packBits is the inverse construction; padding bits are always zero.
func packBits(m *Image) []byte {
	stride := rowStride(m.Width)
	data := make([]byte, stride*m.Height)

	for y := range m.Height {
		for x := range m.Width {
			data[y*stride+x/bitsPerWord] |= (m.GetBit(x, y) & 1) << (x % bitsPerWord)
		}
	}
	return data
}
