package bdf

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/softras"
)

// maxRowDigits is the widest bitmap row that fits a uint64.
const maxRowDigits = 16

// shape decodes the glyph for cp by scanning the source lines.
func (f *Font) shape(cp rune) (Bitmap, error) {
	if f.onScan != nil {
		f.onScan(cp)
	}
	softras.Logger().Debug("bdf: decoding glyph", slog.Int("codepoint", int(cp)))

	enc := f.findEncoding(cp)
	if enc < 0 {
		return nil, &ParseError{Codepoint: cp, Err: ErrGlyphNotFound}
	}

	start, err := f.findBitmap(cp, enc)
	if err != nil {
		return nil, err
	}
	return f.decodeRows(cp, start)
}

// findEncoding returns the index of the ENCODING line for cp, or -1.
func (f *Font) findEncoding(cp rune) int {
	for i, line := range f.lines {
		if n, ok := parseEncoding(line); ok && n == cp {
			return i
		}
	}
	return -1
}

// findBitmap returns the index of the first bitmap row after the
// ENCODING line at enc.
func (f *Font) findBitmap(cp rune, enc int) (int, error) {
	for i := enc + 1; i < len(f.lines); i++ {
		switch keyword(f.lines[i]) {
		case "BITMAP":
			return i + 1, nil
		case "ENDCHAR", "STARTCHAR", "ENCODING":
			return 0, &ParseError{Codepoint: cp, Line: i + 1, Reason: "no BITMAP record", Err: ErrMalformed}
		}
	}
	return 0, &ParseError{Codepoint: cp, Line: len(f.lines), Reason: "no BITMAP record", Err: ErrMalformed}
}

// decodeRows decodes hex rows from start until ENDCHAR.
func (f *Font) decodeRows(cp rune, start int) (Bitmap, error) {
	bm := Bitmap{}
	y := 0
	for i := start; i < len(f.lines); i++ {
		line := strings.TrimSpace(f.lines[i])
		switch keyword(line) {
		case "ENDCHAR":
			return bm, nil
		case "BITMAP":
			continue
		case "STARTCHAR", "ENCODING":
			return nil, &ParseError{Codepoint: cp, Line: i + 1, Reason: "missing ENDCHAR", Err: ErrMalformed}
		}

		var err error
		bm, err = appendRow(bm, line, y)
		if err != nil {
			return nil, &ParseError{Codepoint: cp, Line: i + 1, Reason: err.Error(), Err: ErrMalformed}
		}
		y++
	}
	return nil, &ParseError{Codepoint: cp, Line: len(f.lines), Reason: "missing ENDCHAR", Err: ErrMalformed}
}

// appendRow decodes one hex row. Rows are whole bytes, each digit holds
// four pixels and the most significant bit is the leftmost pixel, so "80"
// lights x=0.
func appendRow(bm Bitmap, row string, y int) (Bitmap, error) {
	if row == "" || len(row) > maxRowDigits {
		return bm, fmt.Errorf("bitmap row %q: want 2 to %d hex digits", row, maxRowDigits)
	}
	if len(row)%2 != 0 {
		return bm, fmt.Errorf("bitmap row %q: odd number of hex digits", row)
	}
	v, err := strconv.ParseUint(row, 16, 64)
	if err != nil {
		return bm, fmt.Errorf("bitmap row %q: not hexadecimal", row)
	}

	width := 4 * len(row)
	for x := 0; x < width; x++ {
		if v&(1<<uint(width-1-x)) != 0 {
			bm = append(bm, image.Point{X: x, Y: y})
		}
	}
	return bm, nil
}

// keyword returns the first field of a line.
func keyword(line string) string {
	line = strings.TrimSpace(line)
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i]
	}
	return line
}
