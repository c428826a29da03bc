// Package raster converts between generic image.Image rasters and the
// one-bit pixel matrices used by the xbm codec.
package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/makeworld-the-better-one/dither/v2"
	"golang.org/x/image/draw"

	"xbmkit/xbm"
)

// DefaultThreshold is the luminance cutoff used when Options.Threshold
// is zero: pixels darker than this become set bits.
const DefaultThreshold = 128

// Options controls the raster to bitmap conversion.
type Options struct {
	// Name becomes the document name of the produced bitmap, "image"
	// when empty.
	Name string

	// Threshold is the 8-bit luminance cutoff; a pixel below it is a
	// set (foreground) bit. Zero means DefaultThreshold.
	Threshold uint8

	// Dither selects Floyd-Steinberg dithering instead of a hard
	// threshold.
	Dither bool

	// MaxWidth scales the source down to at most this many pixels wide
	// before conversion, preserving aspect ratio. Zero disables scaling.
	MaxWidth int

	// Hotspot, when set, is carried through to the produced bitmap.
	Hotspot *image.Point
}

// FromImage converts an arbitrary raster into a one-bit bitmap.
func FromImage(src image.Image, o Options) (*xbm.Image, error) {
	if src.Bounds().Dx() < 1 || src.Bounds().Dy() < 1 {
		return nil, fmt.Errorf("raster: source image is empty")
	}
	if o.MaxWidth > 0 && src.Bounds().Dx() > o.MaxWidth {
		src = scaleToWidth(src, o.MaxWidth)
	}

	var m *xbm.Image
	if o.Dither {
		palette := []color.Color{color.Black, color.White}
		ditherer := dither.NewDitherer(palette)
		ditherer.Matrix = dither.FloydSteinberg
		ditherer.Serpentine = true
		var err error
		m, err = FromPaletted(ditherer.DitherPaletted(src))
		if err != nil {
			return nil, err
		}
	} else {
		m = threshold(src, o.Threshold)
	}

	m.Name = o.Name
	if m.Name == "" {
		m.Name = "image"
	}
	m.Hotspot = o.Hotspot
	return m, nil
}

// FromPaletted converts a two-colour paletted image directly, mapping
// whichever palette entry is closer to white to the background bit.
func FromPaletted(src *image.Paletted) (*xbm.Image, error) {
	if len(src.Palette) != 2 {
		return nil, fmt.Errorf("raster: palette must have exactly 2 colours, got %d", len(src.Palette))
	}

	// colorMap[i] is the bit value of palette index i.
	var colorMap [2]byte
	if src.Palette.Index(color.White) == 0 {
		colorMap = [2]byte{0, 1}
	} else {
		colorMap = [2]byte{1, 0}
	}

	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	pixels := make([][]byte, height)
	for y := range height {
		row := make([]byte, width)
		for x := range width {
			row[x] = colorMap[src.ColorIndexAt(b.Min.X+x, b.Min.Y+y)]
		}
		pixels[y] = row
	}

	return &xbm.Image{Name: "image", Width: width, Height: height, Pixels: pixels}, nil
}

// ToImage renders the bitmap as a two-colour paletted image with white
// background and black foreground.
func ToImage(m *xbm.Image) *image.Paletted {
	dst := image.NewPaletted(image.Rect(0, 0, m.Width, m.Height), color.Palette{color.White, color.Black})
	for y := range m.Height {
		for x := range m.Width {
			dst.SetColorIndex(x, y, m.GetBit(x, y))
		}
	}
	return dst
}

// ToGray renders the bitmap as an 8-bit grayscale image, set bits black.
func ToGray(m *xbm.Image) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := range m.Height {
		for x := range m.Width {
			v := uint8(0xff)
			if m.GetBit(x, y) == 1 {
				v = 0x00
			}
			dst.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return dst
}

func threshold(src image.Image, cutoff uint8) *xbm.Image {
	if cutoff == 0 {
		cutoff = DefaultThreshold
	}

	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	pixels := make([][]byte, height)
	for y := range height {
		row := make([]byte, width)
		for x := range width {
			gray := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if gray.Y < cutoff {
				row[x] = 1
			}
		}
		pixels[y] = row
	}

	return &xbm.Image{Width: width, Height: height, Pixels: pixels}
}

func scaleToWidth(src image.Image, width int) image.Image {
	b := src.Bounds()
	scaled := image.Rect(0, 0, width, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(scaled)
	draw.CatmullRom.Scale(dst, scaled, src, b, draw.Over, nil)
	return dst
}
