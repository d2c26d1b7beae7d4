// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies a float64 Matrix into a *mat.Dense.
// gonum rejects zero-sized matrices, so an empty m yields ErrBadShape.
// Complexity: O(r*c).
func ToGonum(m *Matrix[float64]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil, errors.Wrapf(ErrBadShape, "ToGonum: %d×%d", m.rows, m.cols)
	}

	return mat.NewDense(m.rows, m.cols, m.Data()), nil // Data copies; gonum owns its slice
}

// FromGonum copies any gonum matrix into a float64 Matrix.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Matrix[float64], error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out[i*c+j] = g.At(i, j)
		}
	}

	return wrap(out, r, c), nil
}
