package pearson

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDimMismatch indicates inputs whose time dimensions differ.
	ErrDimMismatch = errors.New("pearson: time dimensions do not match")

	// ErrNotSquare indicates a non-square matrix where a symmetric
	// voxel-by-voxel matrix is required.
	ErrNotSquare = errors.New("pearson: matrix is not square")
)

// Correlate returns the Pearson correlation coefficient of a and b.
//
// The result is in [-1, 1] for well-conditioned inputs and NaN when
// either series has zero variance. NaN results are deliberately not
// remapped; they propagate downstream the way the underlying numeric
// libraries propagate them.
func Correlate(a, b []float64) float64 {
	return stat.Correlation(a, b, nil)
}

// CorrelateRows computes the Pearson correlation between every row of a
// and every row of b. For a of shape (m, time) and b of shape (n, time)
// the result has shape (m, n) with entry (i, j) the correlation of
// a's row i with b's row j.
//
// Each row is centered and scaled by its L2 norm exactly once; the
// all-pairs result is then a single BLAS matrix product, which is the
// performance-critical path for voxel-by-voxel analyses. Zero-variance
// rows normalize to NaN and poison their row/column of the output.
// Neither input is mutated.
func CorrelateRows(a, b *mat.Dense) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ca != cb {
		return nil, fmt.Errorf("%w: %d vs %d", ErrDimMismatch, ca, cb)
	}

	an := normalizeRows(a)
	bn := normalizeRows(b)

	out := mat.NewDense(ra, rb, nil)
	out.Mul(an, bn.T())

	return out, nil
}

// Symmetrize replaces m with (m + m^T) / 2 in place.
func Symmetrize(m *mat.Dense) error {
	r, c := m.Dims()
	if r != c {
		return fmt.Errorf("%w: %d x %d", ErrNotSquare, r, c)
	}

	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			v := (m.At(i, j) + m.At(j, i)) / 2
			m.Set(i, j, v)
			m.Set(j, i, v)
		}
	}

	return nil
}

// normalizeRows returns a copy of m with every row centered on its mean
// and scaled to unit L2 norm. A constant row scales by 1/0 and becomes
// NaN throughout, which is the degenerate-correlation contract.
func normalizeRows(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)

	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		copy(row, m.RawRowView(i))

		mean := floats.Sum(row) / float64(c)
		floats.AddConst(-mean, row)
		floats.Scale(1/floats.Norm(row, 2), row)
	}

	return out
}
