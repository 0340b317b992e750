package matrix2d

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// ToDense copies m into a gorgonia dense tensor of shape (N, M).
func ToDense[T Number](m *Matrix[T]) *tensor.Dense {
	backing := append([]T(nil), m.data...)
	return tensor.New(tensor.WithShape(m.rows, m.cols), tensor.WithBacking(backing))
}

// FromDense copies a 2-dimensional dense tensor into a matrix. Views (for
// example after T()) are materialised first so the row-major order of the
// result follows the tensor's logical shape.
//
// Returns ErrMalformedMatrix when d is not 2-dimensional or its element type is
// not T.
func FromDense[T Number](d *tensor.Dense) (*Matrix[T], error) {
	shape := d.Shape()
	if len(shape) != 2 || shape[0] < 1 || shape[1] < 1 {
		return nil, errors.Wrapf(ErrMalformedMatrix, "tensor shape %v", shape)
	}
	if d.IsMaterializable() {
		mat, ok := d.Materialize().(*tensor.Dense)
		if !ok {
			return nil, errors.Wrap(ErrMalformedMatrix, "cannot materialise tensor view")
		}
		d = mat
	}

	data, ok := d.Data().([]T)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedMatrix, "tensor dtype %v", d.Dtype())
	}
	m := alloc[T](shape[0], shape[1])
	copy(m.data, data)
	return m, nil
}
