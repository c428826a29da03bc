package xbm

import (
	"strconv"
	"strings"
)

// parseByteValue interprets a C-style integer literal as one packed byte.
// Decimal, leading-zero octal and 0x/0X hexadecimal forms are accepted.
// A unary minus wraps to the two's-complement byte, so "-1" is 0xff.
func parseByteValue(raw string) (byte, error) {
	v, neg, ok := parseUint(raw)
	if !ok || v > 0xff {
		return 0, &InvalidByteValueError{Raw: raw}
	}
	b := byte(v)
	if neg {
		b = -b
	}
	return b, nil
}

// parseUint splits off an optional unary minus and parses the magnitude
// in the base implied by its prefix.
func parseUint(raw string) (v uint64, neg, ok bool) {
	s, neg := strings.CutPrefix(raw, "-")
	var err error
	switch {
	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 64)
	case len(s) > 1 && s[0] == '0':
		v, err = strconv.ParseUint(s[1:], 8, 64)
	case len(s) > 0:
		v, err = strconv.ParseUint(s, 10, 64)
	default:
		return 0, neg, false
	}
	return v, neg, err == nil
}
