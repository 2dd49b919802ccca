// Package bdf reads bitmap fonts in the Glyph Bitmap Distribution Format
// and decodes individual glyphs into sets of lit pixels.
//
// A font is loaded once and kept as its immutable list of source lines.
// Glyphs are decoded on demand: ShapeChar scans for the glyph's ENCODING
// record, then decodes the hex rows between BITMAP and ENDCHAR. Decoded
// glyphs are cached per font, so each code point is decoded at most once.
//
//	f, err := bdf.Load("fonts/6x8.bdf")
//	if err != nil {
//	    return err
//	}
//	bm, err := f.ShapeChar('A')
//	if errors.Is(err, bdf.ErrGlyphNotFound) {
//	    // draw a placeholder instead
//	}
//
// Only ENCODING, BITMAP and ENDCHAR drive glyph decoding. The header
// records FONT, FONTBOUNDINGBOX, FONT_ASCENT, FONT_DESCENT and
// DEFAULT_CHAR are read into Metrics; everything else is ignored.
//
// Code points are single bytes (0-255). Codepoint maps a rune to its
// Latin-1 byte.
//
// Font is safe for concurrent use.
package bdf
