// Command xbm2png converts an XBM file to a PNG or BMP image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"xbmkit/raster"
	"xbmkit/xbm"
)

var output = flag.String("out", "", "output image file (default: input name with .png extension)")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: xbm2png [options] input.xbm")
		flag.PrintDefaults()
		os.Exit(2)
	}
	in := flag.Arg(0)

	src, err := os.ReadFile(in)
	if err != nil {
		slog.Error("Couldn't read input file", "err", err)
		os.Exit(1)
	}

	m, err := xbm.Decode(src)
	if err != nil {
		slog.Error("Couldn't decode XBM", "err", err)
		os.Exit(1)
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}

	f, err := os.Create(out)
	if err != nil {
		slog.Error("Couldn't create output file", "err", err)
		os.Exit(1)
	}
	defer f.Close()

	img := raster.ToImage(m)
	switch filepath.Ext(out) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		slog.Error("Couldn't encode output image", "err", err)
		os.Exit(1)
	}
}
