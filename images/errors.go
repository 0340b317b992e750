package images

import "github.com/pkg/errors"

// Sentinel errors for the images package. Callers match them with errors.Is;
// returned errors may carry extra context added with errors.Wrap.
var (
	// ErrMalformedGrid is reported when a grid has zero rows, zero columns or
	// ragged rows. Engine entry points panic with it; constructors return it.
	ErrMalformedGrid = errors.New("images: malformed grid")

	// ErrOutOfRangeChannel is returned by NewColor for a channel outside [0, 255].
	ErrOutOfRangeChannel = errors.New("images: channel value out of range")

	// ErrOutOfBounds is the panic value of At/Set for a cell outside the grid.
	ErrOutOfBounds = errors.New("images: cell out of bounds")

	// ErrUnsupportedAngle is returned by RotateByMatrix for angles that are not a
	// multiple of 90 degrees.
	ErrUnsupportedAngle = errors.New("images: rotation angle must be a multiple of 90 degrees")
)
