package xbm

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// lexer scans XBM source text into a flat token sequence. It classifies
// lexical shape only; identifier and number validation happens later.
type lexer struct {
	src  string
	pos  int
	line int
}

func tokenize(src string) ([]token, error) {
	lx := &lexer{src: src, line: 1}
	var toks []token
	for {
		t, err := lx.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.typ == tokenEOF {
			return toks, nil
		}
	}
}

func (lx *lexer) next() (token, error) {
	lx.skipSpace()
	start, line := lx.pos, lx.line
	if lx.pos >= len(lx.src) {
		return token{typ: tokenEOF, offset: start, line: line}, nil
	}

	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	switch {
	case r == '#':
		lx.pos += size
		return token{typ: tokenHash, text: "#", offset: start, line: line}, nil
	case r == '{':
		lx.pos += size
		return token{typ: tokenLBrace, text: "{", offset: start, line: line}, nil
	case r == '}':
		lx.pos += size
		return token{typ: tokenRBrace, text: "}", offset: start, line: line}, nil
	case r == '[':
		lx.pos += size
		return token{typ: tokenLBracket, text: "[", offset: start, line: line}, nil
	case r == ']':
		lx.pos += size
		return token{typ: tokenRBracket, text: "]", offset: start, line: line}, nil
	case r == '=':
		lx.pos += size
		return token{typ: tokenAssign, text: "=", offset: start, line: line}, nil
	case r == ',':
		lx.pos += size
		return token{typ: tokenComma, text: ",", offset: start, line: line}, nil
	case r == ';':
		lx.pos += size
		return token{typ: tokenSemicolon, text: ";", offset: start, line: line}, nil
	case r == '-':
		lx.pos += size
		next, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !unicode.IsDigit(next) {
			return token{}, &SyntaxError{Offset: start, Line: line, Msg: "'-' not followed by a digit"}
		}
		lx.scanWord()
		return token{typ: tokenInt, text: lx.src[start:lx.pos], offset: start, line: line}, nil
	case unicode.IsDigit(r):
		lx.scanWord()
		return token{typ: tokenInt, text: lx.src[start:lx.pos], offset: start, line: line}, nil
	case isIdentStart(r):
		lx.scanWord()
		text := lx.src[start:lx.pos]
		typ := tokenIdent
		if keywords[text] {
			typ = tokenKeyword
		}
		return token{typ: typ, text: text, offset: start, line: line}, nil
	}
	return token{}, &SyntaxError{Offset: start, Line: line, Msg: fmt.Sprintf("unexpected character %q", r)}
}

// scanWord consumes a maximal run of identifier-continue runes. Numeric
// literals share this shape ("0x1c" is letters and digits), so a word
// starting with a digit becomes an integer token.
func (lx *lexer) scanWord() {
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !isIdentContinue(r) {
			return
		}
		lx.pos += size
	}
}

func (lx *lexer) skipSpace() {
	for lx.pos < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		if r == '\n' {
			lx.line++
		}
		lx.pos += size
	}
}
