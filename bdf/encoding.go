package bdf

import "golang.org/x/text/encoding/charmap"

// Codepoint maps r to the single-byte code point used by ENCODING
// records. Fonts in this format are addressed in ISO-8859-1, so runes
// outside Latin-1 have no code point and ok is false.
func Codepoint(r rune) (cp rune, ok bool) {
	b, ok := charmap.ISO8859_1.EncodeRune(r)
	if !ok {
		return 0, false
	}
	return rune(b), true
}

// Rune is the inverse of Codepoint.
func Rune(cp byte) rune {
	return charmap.ISO8859_1.DecodeByte(cp)
}
