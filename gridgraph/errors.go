package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadGlyph indicates an unknown character in a textual grid.
	ErrBadGlyph = errors.New("gridgraph: unknown cell glyph")
	// ErrEndpoints indicates a textual grid without exactly one start and one target.
	ErrEndpoints = errors.New("gridgraph: grid needs exactly one start and one target")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
)
