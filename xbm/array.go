package xbm

import (
	"fmt"
	"strings"
)

// parseArray consumes the static array declaration holding the packed
// pixel bytes:
//
//	static unsigned char <name>_bits[] = { 0x00, 0x1c, ... };
//
// The type keyword set is fixed (char, unsigned char, short) but carries
// no packing semantics. The array name must share the header's prefix; a
// trailing comma before the closing brace is permitted.
func parseArray(p *parser, expected string) ([]byte, error) {
	if err := p.expectKeyword("static"); err != nil {
		return nil, err
	}
	if err := parseTypeKeyword(p); err != nil {
		return nil, err
	}

	t := p.next()
	if t.typ != tokenIdent && t.typ != tokenInt {
		return nil, syntaxErrorAt(t, fmt.Sprintf("expected identifier, got %s", describe(t)))
	}
	name, ok := strings.CutSuffix(t.text, "_bits")
	if !ok {
		return nil, syntaxErrorAt(t, fmt.Sprintf("expected %q, got %q", expected+"_bits", t.text))
	}
	if name != expected {
		return nil, &MismatchError{Expected: expected, Found: name}
	}

	for _, tt := range []tokenType{tokenLBracket, tokenRBracket, tokenAssign, tokenLBrace} {
		if _, err := p.expect(tt); err != nil {
			return nil, err
		}
	}

	var data []byte
	for {
		vt, err := p.expect(tokenInt)
		if err != nil {
			return nil, err
		}
		b, err := parseByteValue(vt.text)
		if err != nil {
			return nil, err
		}
		data = append(data, b)

		switch t := p.next(); t.typ {
		case tokenComma:
			if p.peek().typ == tokenRBrace {
				p.next()
				goto done
			}
		case tokenRBrace:
			goto done
		default:
			return nil, syntaxErrorAt(t, fmt.Sprintf("expected ',' or '}', got %s", describe(t)))
		}
	}
done:
	if _, err := p.expect(tokenSemicolon); err != nil {
		return nil, err
	}
	return data, nil
}

// parseTypeKeyword accepts one of the recognized element types. The
// two-word form "unsigned char" is the only compound one.
func parseTypeKeyword(p *parser) error {
	t := p.next()
	if t.typ != tokenKeyword {
		return syntaxErrorAt(t, fmt.Sprintf("expected type keyword, got %s", describe(t)))
	}
	switch t.text {
	case "char", "short":
		return nil
	case "unsigned":
		return p.expectKeyword("char")
	}
	return syntaxErrorAt(t, fmt.Sprintf("unexpected keyword %q", t.text))
}
