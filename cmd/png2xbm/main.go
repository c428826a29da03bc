// Command png2xbm converts a raster image file (PNG, JPEG, BMP, ...) to
// an XBM file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"xbmkit/raster"
	"xbmkit/xbm"
)

var (
	output    = flag.String("out", "", "output XBM file (default: input name with .xbm extension)")
	name      = flag.String("name", "", "bitmap name (default: input file stem)")
	width     = flag.Int("width", 0, "resize to this width before conversion")
	threshold = flag.Int("threshold", raster.DefaultThreshold, "luminance cutoff for foreground pixels")
	useDither = flag.Bool("dither", false, "use Floyd-Steinberg dithering instead of a hard threshold")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: png2xbm [options] input.png")
		flag.PrintDefaults()
		os.Exit(2)
	}
	in := flag.Arg(0)

	cutoff, err := thresholdValue(*threshold)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	img, err := imaging.Open(in)
	if err != nil {
		slog.Error("Couldn't open input image", "err", err)
		os.Exit(1)
	}
	if *width > 0 {
		img = imaging.Resize(img, *width, 0, imaging.Lanczos)
	}

	n := *name
	if n == "" {
		n = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}

	m, err := raster.FromImage(img, raster.Options{
		Name:      n,
		Threshold: cutoff,
		Dither:    *useDither,
	})
	if err != nil {
		slog.Error("Couldn't convert image", "err", err)
		os.Exit(1)
	}

	text, err := xbm.Encode(m)
	if err != nil {
		slog.Error("Couldn't encode XBM", "err", err)
		os.Exit(1)
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".xbm"
	}
	if err := os.WriteFile(out, text, 0o644); err != nil {
		slog.Error("Couldn't write output file", "err", err)
		os.Exit(1)
	}
}

// thresholdValue checks the flag fits the 8-bit luminance range before
// it is narrowed.
func thresholdValue(v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("threshold must be between 0 and 255, got %d", v)
	}
	return uint8(v), nil
}
