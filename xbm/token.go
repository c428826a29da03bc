package xbm

type tokenType uint8

const (
	tokenEOF       tokenType = iota
	tokenHash                // #
	tokenKeyword             // define, static, char, unsigned, short
	tokenIdent               // image_width, image_bits
	tokenInt                 // 12, 0x1c, 017, -1
	tokenLBrace              // {
	tokenRBrace              // }
	tokenLBracket            // [
	tokenRBracket            // ]
	tokenAssign              // =
	tokenComma               // ,
	tokenSemicolon           // ;
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenHash:
		return "'#'"
	case tokenKeyword:
		return "keyword"
	case tokenIdent:
		return "identifier"
	case tokenInt:
		return "integer"
	case tokenLBrace:
		return "'{'"
	case tokenRBrace:
		return "'}'"
	case tokenLBracket:
		return "'['"
	case tokenRBracket:
		return "']'"
	case tokenAssign:
		return "'='"
	case tokenComma:
		return "','"
	case tokenSemicolon:
		return "';'"
	}
	return "unknown"
}

// token is a single lexeme with its position in the source.
type token struct {
	typ    tokenType
	text   string
	offset int
	line   int
}

// keywords recognized by the lexer. Everything else identifier-shaped is
// a plain identifier.
var keywords = map[string]bool{
	"define":   true,
	"static":   true,
	"char":     true,
	"unsigned": true,
	"short":    true,
}
