// Package cvmat converts between pixel grids and OpenCV matrices.
package cvmat

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-pixelgrid/images"
)

// ErrUnsupportedMat is returned for matrices that are not 8-bit, 3-channel BGR.
var ErrUnsupportedMat = errors.New("cvmat: expected a non-empty CV_8UC3 matrix")

// ToGrid copies a BGR CV_8UC3 Mat (as produced by gocv.IMRead / VideoCapture)
// into a new grid. Non-continuous Mats such as Region views are accepted.
//
// Arguments:
// - mat: The source Mat. It is not modified or closed.
//
// Returns:
// - *images.Grid: The grid with mat.Rows() rows and mat.Cols() columns.
// - error: ErrUnsupportedMat for empty or non CV_8UC3 matrices.
func ToGrid(mat gocv.Mat) (*images.Grid, error) {
	if mat.Empty() || mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, errors.Wrapf(ErrUnsupportedMat, "got type %v", mat.Type())
	}

	src, release := continuous(mat)
	defer release()
	data, err := src.DataPtrUint8()
	if err != nil {
		return nil, errors.Wrap(err, "cvmat: read mat data")
	}

	rows, cols := src.Rows(), src.Cols()
	g, err := images.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	step := src.Step()
	for r := 0; r < rows; r++ {
		line := data[r*step : r*step+cols*3]
		out := g.Row(r)
		for c := range out {
			p := line[c*3 : c*3+3 : c*3+3]
			out[c] = images.Color{B: p[0], G: p[1], R: p[2]}
		}
	}
	return g, nil
}

// continuous returns mat itself when its rows are packed, or a packed copy
// otherwise. release closes the copy and is a no-op for mat.
func continuous(mat gocv.Mat) (gocv.Mat, func()) {
	if mat.IsContinuous() {
		return mat, func() {}
	}
	packed := mat.Clone()
	return packed, func() { packed.Close() }
}

// FromGrid returns a new BGR CV_8UC3 Mat holding g. The caller owns the Mat and
// must Close it.
func FromGrid(g *images.Grid) gocv.Mat {
	h, w := g.Height(), g.Width()
	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)

	// A freshly allocated Mat is continuous, so its data is h rows of w*3 bytes.
	data, err := mat.DataPtrUint8()
	if err != nil {
		mat.Close()
		panic(errors.Wrap(err, "cvmat: write mat data"))
	}
	for r := 0; r < h; r++ {
		line := data[r*w*3 : (r+1)*w*3]
		for c, px := range g.Row(r) {
			line[c*3], line[c*3+1], line[c*3+2] = px.B, px.G, px.R
		}
	}
	return mat
}

// ComputeMatChecksum generates a deterministic checksum over a Mat's shape,
// type and pixel bytes. Views that share bytes with a larger Mat hash only the
// cells they cover.
//
// Arguments:
// - mat: The Mat to compute checksum for.
//
// Returns:
// - string: A hex-encoded MD5 checksum, or "empty" for an empty Mat.
// - error: Error if the Mat's bytes cannot be read.
func ComputeMatChecksum(mat gocv.Mat) (string, error) {
	if mat.Empty() {
		return "empty", nil
	}

	src, release := continuous(mat)
	defer release()
	data, err := src.DataPtrUint8()
	if err != nil {
		return "", errors.Wrap(err, "cvmat: read mat data")
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d/%d:", src.Rows(), src.Cols(), src.Type())
	rowBytes := src.Cols() * src.ElemSize()
	step := src.Step()
	for r := 0; r < src.Rows(); r++ {
		hash.Write(data[r*step : r*step+rowBytes])
	}
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
