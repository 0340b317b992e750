package images

import (
	"math"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelgrid/linalg"
)

// RotationReport describes how the algebraic rotation filled its target grid.
type RotationReport struct {
	// Collisions counts source cells that rounded onto an already written
	// target cell. The later cell in row-major source order wins.
	Collisions int
	// Backfilled counts target cells no source cell reached; they are set to Black.
	Backfilled int
}

// RotateByMatrix rotates g by angleDegrees, a multiple of 90, by pushing every
// cell coordinate through linalg.RotationMatrix instead of using a fixed index
// mapping.
//
// Each (row, col) is taken relative to the source midpoint ((H-1)/2, (W-1)/2),
// rotated, moved to the target midpoint and rounded to the nearest integer.
// +90 gives the same grid as RotateCCW, -90 the same as RotateCW and ±180 the
// same as Rotate180 (but as a new grid). Quarter turns leave every rotated
// coordinate within float error of an integer, so the report is zero; the
// last-write-wins and black backfill rules only guard against rounding drift.
//
// Arguments:
//   - g: The source grid, not modified.
//   - angleDegrees: The rotation angle. Positive is counterclockwise on screen.
//
// Returns:
//   - *Grid: The rotated grid, with swapped dimensions for odd quarter turns.
//   - RotationReport: Collision and backfill counts.
//   - error: ErrUnsupportedAngle when angleDegrees is not a multiple of 90.
func RotateByMatrix(g *Grid, angleDegrees float64) (*Grid, RotationReport, error) {
	mustBeWellFormed(g)

	turns, err := quarterTurns(angleDegrees)
	if err != nil {
		return nil, RotationReport{}, err
	}

	h, w := g.height, g.width
	th, tw := h, w
	if turns%2 == 1 {
		th, tw = w, h
	}
	rot := linalg.RotationMatrix(angleDegrees)
	srcCenter := linalg.Vec(float64(h-1)/2, float64(w-1)/2)
	dstCenter := linalg.Vec(float64(th-1)/2, float64(tw-1)/2)

	targets := make([]cell, len(g.pix))
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			p := rot.Apply(linalg.Vec(float64(r), float64(c)).Sub(srcCenter)).Add(dstCenter)
			targets[r*w+c] = cell{row: int(math.Round(p.Row)), col: int(math.Round(p.Col))}
		}
	}

	out, report := scatter(g.pix, targets, th, tw)
	return out, report, nil
}

// cell is a target grid coordinate.
type cell struct{ row, col int }

// scatter writes src[i] to targets[i] in a new th×tw grid. Targets outside the
// grid are dropped, a later source cell overwrites an earlier one on the same
// target, and targets nothing reached are set to Black.
func scatter(src []Color, targets []cell, th, tw int) (*Grid, RotationReport) {
	out := newGrid(th, tw)
	filled := make([]bool, len(out.pix))

	var report RotationReport
	for i, t := range targets {
		if t.row < 0 || t.row >= th || t.col < 0 || t.col >= tw {
			continue
		}
		j := t.row*tw + t.col
		if filled[j] {
			report.Collisions++
		}
		out.pix[j] = src[i]
		filled[j] = true
	}

	for j, ok := range filled {
		if !ok {
			out.pix[j] = Black
			report.Backfilled++
		}
	}
	return out, report
}

// quarterTurns returns the number of counterclockwise quarter turns in [0, 4)
// equivalent to angleDegrees.
func quarterTurns(angleDegrees float64) (int, error) {
	if math.IsNaN(angleDegrees) || math.IsInf(angleDegrees, 0) {
		return 0, errors.Wrapf(ErrUnsupportedAngle, "angle %v", angleDegrees)
	}
	q := angleDegrees / 90
	n := math.Round(q)
	if math.Abs(q-n) > 1e-9 {
		return 0, errors.Wrapf(ErrUnsupportedAngle, "angle %g", angleDegrees)
	}
	return ((int(n) % 4) + 4) % 4, nil
}
