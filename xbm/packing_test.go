package xbm

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestUnpackBitOrder(t *testing.T) {
	// LSB of each byte is the leftmost pixel of its 8-pixel group.
	pixels, err := unpackBits([]byte{0x01}, 8, 1, false)
	if err != nil {
		t.Fatalf("unpackBits failed: %v", err)
	}
	want := []byte{1, 0, 0, 0, 0, 0, 0, 0}
	for x, w := range want {
		if pixels[0][x] != w {
			t.Errorf("pixel %d = %d, want %d", x, pixels[0][x], w)
		}
	}
}

func TestUnpackRowPadding(t *testing.T) {
	pixels, err := unpackBits([]byte{0x05, 0x02}, 3, 2, false)
	if err != nil {
		t.Fatalf("unpackBits failed: %v", err)
	}
	want := [][]byte{{1, 0, 1}, {0, 1, 0}}
	for y := range want {
		for x := range want[y] {
			if pixels[y][x] != want[y][x] {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, pixels[y][x], want[y][x])
			}
		}
	}
}

func TestUnpackSizeMismatch(t *testing.T) {
	// width 9 needs a stride of 2 bytes per row.
	_, err := unpackBits([]byte{0x00}, 9, 1, false)
	var serr *SizeMismatchError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want SizeMismatchError", err)
	}
	if serr.Expected != 2 || serr.Actual != 1 {
		t.Errorf("got expected=%d actual=%d, want 2 and 1", serr.Expected, serr.Actual)
	}
}

func TestUnpackStrictPadding(t *testing.T) {
	// 0xf5 has bits set beyond width 3.
	if _, err := unpackBits([]byte{0xf5}, 3, 1, false); err != nil {
		t.Errorf("lenient unpack rejected padding bits: %v", err)
	}
	if _, err := unpackBits([]byte{0xf5}, 3, 1, true); !errors.Is(err, ErrPaddingBits) {
		t.Errorf("strict unpack got %v, want ErrPaddingBits", err)
	}
	if _, err := unpackBits([]byte{0x05}, 3, 1, true); err != nil {
		t.Errorf("strict unpack rejected clean padding: %v", err)
	}
}

func TestRowStride(t *testing.T) {
	cases := []struct{ width, stride int }{{1, 1}, {7, 1}, {8, 1}, {9, 2}, {16, 2}, {17, 3}}
	for _, c := range cases {
		if got := rowStride(c.width); got != c.stride {
			t.Errorf("rowStride(%d) = %d, want %d", c.width, got, c.stride)
		}
	}
}

func aRandomImage() *Image {
	width, height := 1+rand.IntN(100), 1+rand.IntN(100)
	pixels := make([][]byte, height)
	for y := range height {
		row := make([]byte, width)
		for x := range width {
			row[x] = byte(rand.IntN(2))
		}
		pixels[y] = row
	}

	m := &Image{Name: "image", Width: width, Height: height, Pixels: pixels}
	return m
}

func assertImagesIdentical(t *testing.T, m1, m2 *Image) {
	t.Helper()
	if m1.Name != m2.Name {
		t.Errorf("Names not equal: %q vs %q", m1.Name, m2.Name)
	}
	if m1.Width != m2.Width {
		t.Errorf("Images not of equal width: %s %s", m1, m2)
	}
	if m1.Height != m2.Height {
		t.Errorf("Images not of equal height: %s %s", m1, m2)
	}
	if (m1.Hotspot == nil) != (m2.Hotspot == nil) {
		t.Errorf("Hotspot presence differs: %v vs %v", m1.Hotspot, m2.Hotspot)
	} else if m1.Hotspot != nil && *m1.Hotspot != *m2.Hotspot {
		t.Errorf("Hotspots not equal: %v vs %v", m1.Hotspot, m2.Hotspot)
	}

	for y := range m1.Height {
		for x := range m1.Width {
			bit1, bit2 := m1.GetBit(x, y), m2.GetBit(x, y)
			if bit1 != bit2 {
				t.Errorf("Bit at (%v, %v) doesn't match: %v vs %v", x, y, bit1, bit2)
			}
		}
	}
}

func TestPackUnpackMany(t *testing.T) {
	const testCaseCount = 30

	for i := range testCaseCount {
		m := aRandomImage()
		t.Run(fmt.Sprintf("test %v: %s", i, m.String()), func(t *testing.T) {
			data := packBits(m)
			if len(data) != rowStride(m.Width)*m.Height {
				t.Fatalf("packed %d bytes, want %d", len(data), rowStride(m.Width)*m.Height)
			}
			pixels, err := unpackBits(data, m.Width, m.Height, true)
			if err != nil {
				t.Fatalf("unpackBits failed: %v", err)
			}
			copied := &Image{Name: m.Name, Width: m.Width, Height: m.Height, Pixels: pixels}
			assertImagesIdentical(t, m, copied)
		})
	}
}
