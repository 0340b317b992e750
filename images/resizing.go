package images

import (
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Resize returns a new width×height grid scaled from g with nfnt's
// nearest-neighbour filter. Used to fit an overlay before Composite.
//
// Arguments:
//   - g: The source grid, not modified.
//   - width: The target width in cells.
//   - height: The target height in cells.
//
// Returns:
//   - *Grid: The resized grid. A copy of g when the size is unchanged.
//   - error: ErrMalformedGrid when width or height is below 1.
func Resize(g *Grid, width, height int) (*Grid, error) {
	mustBeWellFormed(g)
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrMalformedGrid, "resize to %dx%d", width, height)
	}
	if width == g.width && height == g.height {
		return g.Clone(), nil
	}

	scaled := resize.Resize(uint(width), uint(height), ToImage(g), resize.NearestNeighbor)
	return FromImage(scaled)
}

// Fit scales g down, preserving its aspect ratio, so it fits inside
// maxWidth×maxHeight. Grids that already fit are returned as a copy.
func Fit(g *Grid, maxWidth, maxHeight int) (*Grid, error) {
	mustBeWellFormed(g)
	if maxWidth < 1 || maxHeight < 1 {
		return nil, errors.Wrapf(ErrMalformedGrid, "fit into %dx%d", maxWidth, maxHeight)
	}
	if g.width <= maxWidth && g.height <= maxHeight {
		return g.Clone(), nil
	}

	scaled := resize.Thumbnail(uint(maxWidth), uint(maxHeight), ToImage(g), resize.NearestNeighbor)
	return FromImage(scaled)
}
