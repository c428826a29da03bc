package xbm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// bytesPerLine is the canonical number of byte literals per source line.
const bytesPerLine = 12

// Encode renders an Image as canonical XBM source text. The output uses
// lowercase zero-padded hex literals, twelve per line, and re-decodes to
// an image equal to the input. Validation happens before anything is
// formatted, so a failed Encode produces no partial output.
func Encode(m *Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the canonical XBM rendition of m to w.
func EncodeTo(w io.Writer, m *Image) error {
	if err := m.validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#define %s_width %d\n", m.Name, m.Width)
	fmt.Fprintf(bw, "#define %s_height %d\n", m.Name, m.Height)
	if h := m.Hotspot; h != nil {
		fmt.Fprintf(bw, "#define %s_x_hot %d\n", m.Name, h.X)
		fmt.Fprintf(bw, "#define %s_y_hot %d\n", m.Name, h.Y)
	}
	fmt.Fprintf(bw, "static unsigned char %s_bits[] = {\n", m.Name)

	data := packBits(m)
	line := make([]string, 0, bytesPerLine)
	for i, b := range data {
		line = append(line, fmt.Sprintf("0x%02x", b))
		if len(line) == bytesPerLine || i == len(data)-1 {
			fmt.Fprintf(bw, "    %s,\n", strings.Join(line, ", "))
			line = line[:0]
		}
	}
	fmt.Fprintln(bw, "};")
	return bw.Flush()
}
