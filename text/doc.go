// Package text draws strings with bitmap fonts from package bdf.
//
// Text is monospaced: the i-th rune of a string is drawn with its glyph
// origin at (x + i*advance, y), where the advance defaults to 6 pixels.
// There is no wrapping and no kerning.
//
//	pm := softras.NewPixmap(320, 240)
//	r := softras.NewRasterizer(pm)
//	f, _ := bdf.Load("fonts/6x8.bdf")
//
//	err := text.Draw(r, "Hello", f, 10, 10, softras.White)
//
// A rune the font cannot draw does not stop the string. Its cell gets the
// font's DEFAULT_CHAR glyph if it has one, else the fallback font if one is
// configured with WithFallback, else it stays blank. Draw still reports
// every such rune in its error, which matches bdf.ErrGlyphNotFound.
package text
