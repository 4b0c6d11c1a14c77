package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrDuplicateMarker indicates a maze with more than one 'S' or 'G'.
	ErrDuplicateMarker = errors.New("gridgraph: start or goal marker appears more than once")

	// ErrBadCellID indicates a vertex ID that is not of the form "x,y".
	ErrBadCellID = errors.New("gridgraph: malformed cell ID")

	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")

	// ErrNoPath indicates no breach path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
