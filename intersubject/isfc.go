package intersubject

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-isc/pearson"
	"github.com/cwbudde/algo-isc/permtest"
	"github.com/cwbudde/algo-isc/phase"
	"github.com/cwbudde/algo-isc/tensor"
)

// ISFC computes the intersubject functional correlation of d: for each
// left-out subject, the correlation between every voxel timecourse of
// that subject and every voxel timecourse of the other subjects'
// average, symmetrized into a voxel-by-voxel matrix.
//
// The option surface and the permutation fold match ISC; the null
// summary takes each round's extremes jointly over both voxel axes.
// Every per-subject slice of the result is symmetric by construction.
func ISFC(d *tensor.Tensor, opts ...Option) (*Matrix, *Matrix, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	if d == nil {
		return nil, nil, ErrNilTensor
	}

	voxels, timepoints, subjects := d.Dims()
	if subjects < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewSubjects, subjects)
	}

	perms := 0

	var null *permtest.NullSummary

	if cfg.returnP {
		perms = cfg.numPerm

		if null, err = permtest.NewNullSummary(subjects, perms); err != nil {
			return nil, nil, err
		}
	}

	result := newMatrix(voxels, subjects)
	groupMat := mat.NewDense(voxels, timepoints, nil)
	subjMat := mat.NewDense(voxels, timepoints, nil)
	sum := make([]float64, timepoints)

	cur := d

	for p := 0; p <= perms; p++ {
		for s := 0; s < subjects; s++ {
			for v := 0; v < voxels; v++ {
				groupAverage(groupMat.RawRowView(v), sum, cur, v, s)
				copy(subjMat.RawRowView(v), cur.Series(v, s))
			}

			tmp, err := pearson.CorrelateRows(groupMat, subjMat)
			if err != nil {
				return nil, nil, err
			}

			if err := pearson.Symmetrize(tmp); err != nil {
				return nil, nil, err
			}

			if p == 0 {
				slab := result.Subject(s)

				for i := 0; i < voxels; i++ {
					row := tmp.RawRowView(i)
					for j, x := range row {
						slab[i*voxels+j] = cfg.precision.Round(x)
					}
				}
			} else {
				for i := 0; i < voxels; i++ {
					row := tmp.RawRowView(i)
					for _, x := range row {
						null.Observe(s, p-1, cfg.precision.Round(x))
					}
				}
			}
		}

		// Each null round randomizes the previous round's tensor, a
		// strict sequential fold over rounds.
		if p < perms {
			if cur, err = phase.Randomize(cur, cfg.rng, cfg.precision); err != nil {
				return nil, nil, err
			}
		}
	}

	stat := result
	if cfg.collapse {
		stat = collapseMatrix(result, cfg.precision)
	}

	if !cfg.returnP {
		return stat, nil, nil
	}

	maxNull, minNull, err := null.Reduce()
	if err != nil {
		return nil, nil, err
	}

	pvals, err := permtest.PFromNull(stat.data, cfg.twoSided, maxNull, minNull, cfg.precision)
	if err != nil {
		return nil, nil, err
	}

	return stat, &Matrix{voxels: stat.voxels, subjects: stat.subjects, data: pvals}, nil
}
