package intersubject

import (
	"fmt"

	"github.com/cwbudde/algo-isc/pearson"
	"github.com/cwbudde/algo-isc/permtest"
	"github.com/cwbudde/algo-isc/phase"
	"github.com/cwbudde/algo-isc/tensor"
)

// ISC computes the intersubject correlation of d: for each voxel and
// each left-out subject, the Pearson correlation between that subject's
// timecourse and the mean timecourse of all other subjects.
//
// By default the result is collapsed (averaged) across subjects; see
// WithCollapseSubjects. With WithPValues enabled, the permutation fold
// runs num_perm additional rounds on progressively phase-randomized
// data and the second return value holds a p-value per entry of the
// first; otherwise it is nil. The real statistic is always computed
// from the original tensor before any randomization.
//
// Values lie in [-1, 1], except voxels with zero temporal variance,
// which yield NaN and propagate through collapsing and the null
// summary untouched.
func ISC(d *tensor.Tensor, opts ...Option) (*Map, *Map, error) {
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

	result := newMap(voxels, subjects)
	group := make([]float64, timepoints)
	sum := make([]float64, timepoints)

	cur := d

	for p := 0; p <= perms; p++ {
		for s := 0; s < subjects; s++ {
			for v := 0; v < voxels; v++ {
				groupAverage(group, sum, cur, v, s)

				r := cfg.precision.Round(pearson.Correlate(group, cur.Series(v, s)))

				if p == 0 {
					result.set(v, s, r)
				} else {
					null.Observe(s, p-1, r)
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
		stat = collapseMap(result, cfg.precision)
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

	return stat, &Map{voxels: stat.voxels, subjects: stat.subjects, data: pvals}, nil
}
