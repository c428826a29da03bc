package xbm

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	src := "#define img_width 8\nstatic unsigned char img_bits[] = { 0x01, };"
	toks, err := tokenize(src)
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}

	want := []struct {
		typ  tokenType
		text string
	}{
		{tokenHash, "#"},
		{tokenKeyword, "define"},
		{tokenIdent, "img_width"},
		{tokenInt, "8"},
		{tokenKeyword, "static"},
		{tokenKeyword, "unsigned"},
		{tokenKeyword, "char"},
		{tokenIdent, "img_bits"},
		{tokenLBracket, "["},
		{tokenRBracket, "]"},
		{tokenAssign, "="},
		{tokenLBrace, "{"},
		{tokenInt, "0x01"},
		{tokenComma, ","},
		{tokenRBrace, "}"},
		{tokenSemicolon, ";"},
		{tokenEOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].typ != w.typ || toks[i].text != w.text {
			t.Errorf("token %d: got (%v, %q), want (%v, %q)", i, toks[i].typ, toks[i].text, w.typ, w.text)
		}
	}
}

func TestTokenizeDigitLeadingWord(t *testing.T) {
	// A word starting with a digit is classified by shape as an integer
	// literal; whether it is a meaningful number is decided later.
	toks, err := tokenize("1bmp_width")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if toks[0].typ != tokenInt || toks[0].text != "1bmp_width" {
		t.Errorf("got (%v, %q), want single integer token", toks[0].typ, toks[0].text)
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	_, err := tokenize("#define a_width 8\n$")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want SyntaxError", err)
	}
	if serr.Line != 2 {
		t.Errorf("got line %d, want 2", serr.Line)
	}
	if serr.Offset != 18 {
		t.Errorf("got offset %d, want 18", serr.Offset)
	}
}

func TestTokenizeBareMinus(t *testing.T) {
	_, err := tokenize("- 1")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want SyntaxError", err)
	}
}

func TestTokenizeNegativeLiteral(t *testing.T) {
	toks, err := tokenize("-17")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if toks[0].typ != tokenInt || toks[0].text != "-17" {
		t.Errorf("got (%v, %q), want (-17, integer)", toks[0].typ, toks[0].text)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	toks, err := tokenize("  \n\t ")
	if err != nil {
		t.Fatalf("tokenize failed: %v", err)
	}
	if len(toks) != 1 || toks[0].typ != tokenEOF {
		t.Errorf("got %d tokens, want only EOF", len(toks))
	}
}
