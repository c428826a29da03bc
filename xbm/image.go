package xbm

import (
	"fmt"
	"image"
)

// Image is a decoded X bitmap: a named, row-major matrix of one-bit
// pixels, optionally carrying a cursor hotspot. A pixel value of 1 is a
// set (foreground) pixel, 0 is background.
type Image struct {
	Name   string
	Width  int
	Height int

	// Hotspot is the optional cursor anchor point. When present both
	// coordinates must lie inside the image.
	Hotspot *image.Point

	// Pixels holds one byte per pixel, each 0 or 1, Height rows of
	// Width columns.
	Pixels [][]byte
}

// GetBit returns the pixel at (x, y), either 0 or 1.
func (m *Image) GetBit(x, y int) byte {
	return m.Pixels[y][x]
}

func (m *Image) String() string {
	return fmt.Sprintf("Image(%s,%d,%d)", m.Name, m.Width, m.Height)
}

// validate checks the invariants the encoder relies on. Decoded images
// satisfy these by construction; caller-built ones may not.
func (m *Image) validate() error {
	if !validName(m.Name) {
		return &InvalidIdentifierError{Name: m.Name}
	}
	if m.Width <= 0 || m.Width > maxDimension {
		return &RangeError{Field: "width", Value: m.Width}
	}
	if m.Height <= 0 || m.Height > maxDimension {
		return &RangeError{Field: "height", Value: m.Height}
	}
	if h := m.Hotspot; h != nil {
		if h.X < 0 || h.X >= m.Width {
			return &RangeError{Field: "x_hot", Value: h.X}
		}
		if h.Y < 0 || h.Y >= m.Height {
			return &RangeError{Field: "y_hot", Value: h.Y}
		}
	}
	if len(m.Pixels) != m.Height {
		return &SizeMismatchError{Expected: m.Height, Actual: len(m.Pixels)}
	}
	for _, row := range m.Pixels {
		if len(row) != m.Width {
			return &SizeMismatchError{Expected: m.Width, Actual: len(row)}
		}
		for _, p := range row {
			if p > 1 {
				return &RangeError{Field: "pixel", Value: int(p)}
			}
		}
	}
	return nil
}

// maxDimension bounds width and height to what a 32-bit unsigned field
// can carry in the wire format.
const maxDimension = 1<<31 - 1
