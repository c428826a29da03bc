package xbm

import (
	"fmt"
	"strings"
)

// parser walks the token sequence produced by the lexer.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(tt tokenType) (token, error) {
	t := p.next()
	if t.typ != tt {
		return token{}, syntaxErrorAt(t, fmt.Sprintf("expected %s, got %s", tt, describe(t)))
	}
	return t, nil
}

func (p *parser) expectKeyword(kw string) error {
	t := p.next()
	if t.typ != tokenKeyword || t.text != kw {
		return syntaxErrorAt(t, fmt.Sprintf("expected %q, got %s", kw, describe(t)))
	}
	return nil
}

func syntaxErrorAt(t token, msg string) *SyntaxError {
	return &SyntaxError{Offset: t.offset, Line: t.line, Msg: msg}
}

func describe(t token) string {
	if t.typ == tokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

// header holds the fields recovered from the #define block.
type header struct {
	name          string
	width, height int
	xHot, yHot    int
	seen          map[string]bool
}

// headerSuffixes are the recognized #define suffixes, keyed to whether
// the field is mandatory.
var headerSuffixes = []string{"width", "height", "x_hot", "y_hot"}

// parseHeader consumes the run of #define entries at the start of the
// document. The name prefix captured from the first entry must match
// every later one; width and height must both be present, and the two
// hotspot fields must appear as a pair or not at all.
func parseHeader(p *parser) (*header, error) {
	h := &header{seen: make(map[string]bool)}
	for p.peek().typ == tokenHash {
		p.next()
		if err := p.expectKeyword("define"); err != nil {
			return nil, err
		}
		t := p.next()
		if t.typ != tokenIdent && t.typ != tokenInt {
			return nil, syntaxErrorAt(t, fmt.Sprintf("expected identifier, got %s", describe(t)))
		}
		name, suffix := splitDefine(t.text)
		if suffix == "" {
			return nil, syntaxErrorAt(t, fmt.Sprintf("unrecognized #define %q", t.text))
		}
		if h.seen[suffix] {
			return nil, syntaxErrorAt(t, fmt.Sprintf("duplicate #define %q", t.text))
		}
		if len(h.seen) == 0 {
			if !validName(name) {
				return nil, &InvalidIdentifierError{Name: name}
			}
			h.name = name
		} else if name != h.name {
			return nil, &MismatchError{Expected: h.name, Found: name}
		}
		vt, err := p.expect(tokenInt)
		if err != nil {
			return nil, err
		}
		value, err := parseDimension(vt, suffix)
		if err != nil {
			return nil, err
		}
		h.seen[suffix] = true
		switch suffix {
		case "width":
			h.width = value
		case "height":
			h.height = value
		case "x_hot":
			h.xHot = value
		case "y_hot":
			h.yHot = value
		}
	}

	if !h.seen["width"] {
		return nil, &MissingFieldError{Field: "width"}
	}
	if !h.seen["height"] {
		return nil, &MissingFieldError{Field: "height"}
	}
	if h.seen["x_hot"] != h.seen["y_hot"] {
		missing := "x_hot"
		if h.seen["x_hot"] {
			missing = "y_hot"
		}
		return nil, &MissingFieldError{Field: missing}
	}
	return h, nil
}

func (h *header) hasHotspot() bool {
	return h.seen["x_hot"]
}

// checkRanges validates the numeric invariants once all fields are known.
func (h *header) checkRanges() error {
	if h.width <= 0 {
		return &RangeError{Field: "width", Value: h.width}
	}
	if h.height <= 0 {
		return &RangeError{Field: "height", Value: h.height}
	}
	if h.hasHotspot() {
		if h.xHot < 0 || h.xHot >= h.width {
			return &RangeError{Field: "x_hot", Value: h.xHot}
		}
		if h.yHot < 0 || h.yHot >= h.height {
			return &RangeError{Field: "y_hot", Value: h.yHot}
		}
	}
	return nil
}

// splitDefine separates "image_width" into its name prefix and known
// suffix. An empty suffix means none of the recognized ones matched.
func splitDefine(ident string) (name, suffix string) {
	for _, s := range headerSuffixes {
		if n, ok := strings.CutSuffix(ident, "_"+s); ok {
			return n, s
		}
	}
	return "", ""
}

// parseDimension reads a header value, which unlike the array elements is
// not confined to a byte. A literal that does not parse at all is a
// grammar violation; one that parses but does not fit is a range error.
func parseDimension(t token, field string) (int, error) {
	v, neg, ok := parseUint(t.text)
	if !ok {
		return 0, syntaxErrorAt(t, fmt.Sprintf("invalid integer literal %q", t.text))
	}
	if v > maxDimension {
		return 0, &RangeError{Field: field, Value: maxDimension}
	}
	if neg {
		return 0, &RangeError{Field: field, Value: -int(v)}
	}
	return int(v), nil
}
