package intersubject

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-isc/tensor"
)

// groupAverage writes the voxel-wise mean time series of every subject
// except leaveOut into dst, using sum as scratch. Both slices must have
// the tensor's timepoint length.
func groupAverage(dst, sum []float64, d *tensor.Tensor, voxel, leaveOut int) {
	_, _, subjects := d.Dims()

	clear(sum)

	for s := 0; s < subjects; s++ {
		if s == leaveOut {
			continue
		}

		vecmath.AddBlockInPlace(sum, d.Series(voxel, s))
	}

	vecmath.ScaleBlock(dst, sum, 1/float64(subjects-1))
}

// collapseMap averages a voxel-by-subject map across subjects. NaN
// entries propagate into the collapsed mean.
func collapseMap(m *Map, prec tensor.Precision) *Map {
	out := newMap(m.voxels, 0)
	acc := make([]float64, len(out.data))

	for s := 0; s < m.subjects; s++ {
		vecmath.AddBlockInPlace(acc, m.Subject(s))
	}

	vecmath.ScaleBlock(out.data, acc, 1/float64(m.subjects))
	prec.RoundSlice(out.data)

	return out
}

// collapseMatrix averages a voxel-by-voxel-by-subject matrix across
// subjects. NaN entries propagate into the collapsed mean.
func collapseMatrix(m *Matrix, prec tensor.Precision) *Matrix {
	out := newMatrix(m.voxels, 0)
	acc := make([]float64, len(out.data))

	for s := 0; s < m.subjects; s++ {
		vecmath.AddBlockInPlace(acc, m.Subject(s))
	}

	vecmath.ScaleBlock(out.data, acc, 1/float64(m.subjects))
	prec.RoundSlice(out.data)

	return out
}
