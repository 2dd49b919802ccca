package bdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bdf package.
var (
	// ErrConfig is matched by every error from Load, Parse and NewFont.
	// A font that cannot be loaded is a startup failure.
	ErrConfig = errors.New("bdf: cannot load font")

	// ErrEmptyFont is returned when the font source has no content.
	ErrEmptyFont = errors.New("bdf: empty font source")

	// ErrNotText is returned when the font source is not valid UTF-8 text.
	ErrNotText = errors.New("bdf: font source is not text")

	// ErrGlyphNotFound is returned when the font has no ENCODING record
	// for the requested code point.
	ErrGlyphNotFound = errors.New("bdf: glyph not found")

	// ErrMalformed is returned when a glyph record cannot be decoded.
	ErrMalformed = errors.New("bdf: malformed glyph")

	// ErrCodepointRange is returned for code points outside 0-255.
	ErrCodepointRange = errors.New("bdf: code point out of range")
)

// ConfigError reports a font that could not be loaded.
// It matches both ErrConfig and the underlying cause with errors.Is.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return "bdf: load font: " + e.Err.Error()
	}
	return fmt.Sprintf("bdf: load font %q: %v", e.Path, e.Err)
}

// Unwrap returns ErrConfig and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfig, e.Err}
}

// ParseError reports a glyph that could not be shaped.
// Err is ErrGlyphNotFound or ErrMalformed.
type ParseError struct {
	Codepoint rune
	Line      int // 1-based source line, 0 when not tied to a line
	Reason    string
	Err       error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("bdf: glyph %d", e.Codepoint)
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Reason != "" {
		return msg + ": " + e.Reason
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}
