package softras

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every *BoundsError.
var ErrOutOfBounds = errors.New("softras: pixel out of bounds")

// BoundsError reports a pixel access outside the pixmap.
// It is a contract violation: pixmap writes panic with a *BoundsError
// instead of clipping, and callers must clamp before drawing.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("softras: pixel (%d, %d) out of bounds %dx%d", e.X, e.Y, e.Width, e.Height)
}

// Unwrap returns ErrOutOfBounds.
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
