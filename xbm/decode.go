package xbm

import "image"

// Decode parses XBM source text into an Image. It fails fast on the
// first error encountered; a partially decoded image is never returned.
//
// Padding bits at the end of each row are ignored, matching the
// historically lenient behaviour of the format.
func Decode(src []byte) (*Image, error) {
	return decode(src, false)
}

// DecodeStrict is Decode, but additionally rejects documents whose row
// padding bits are not zero with ErrPaddingBits.
func DecodeStrict(src []byte) (*Image, error) {
	return decode(src, true)
}

func decode(src []byte, strict bool) (*Image, error) {
	toks, err := tokenize(string(src))
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	h, err := parseHeader(p)
	if err != nil {
		return nil, err
	}
	if err := h.checkRanges(); err != nil {
		return nil, err
	}

	data, err := parseArray(p, h.name)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != tokenEOF {
		return nil, syntaxErrorAt(t, "trailing content after array declaration")
	}

	pixels, err := unpackBits(data, h.width, h.height, strict)
	if err != nil {
		return nil, err
	}

	m := &Image{
		Name:   h.name,
		Width:  h.width,
		Height: h.height,
		Pixels: pixels,
	}
	if h.hasHotspot() {
		m.Hotspot = &image.Point{X: h.xHot, Y: h.yHot}
	}
	return m, nil
}
