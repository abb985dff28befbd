package permtest

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-isc/tensor"
)

var (
	// ErrEmptyNull indicates an empty null distribution.
	ErrEmptyNull = errors.New("permtest: null distribution is empty")

	// ErrNullMismatch indicates max and min null arrays of unequal
	// length.
	ErrNullMismatch = errors.New("permtest: max and min null lengths differ")
)

// PFromNull converts observed statistics into p-values against the
// summarized null extremes, elementwise.
//
// One-sided: p is the fraction of permutations whose global maximum
// reached the observed value. Two-sided: p is the fraction of
// permutations at least as extreme in either tail, i.e. with a maximum
// of at least |observed| or a minimum of at most -|observed|. In both
// cases a permutation exactly tying the observed value counts against
// significance.
//
// NaN observations compare false against every extreme and therefore
// map to p = 0, the convention of array comparisons in the numeric
// libraries this mirrors. Results are quantized by prec.
func PFromNull(observed []float64, twoSided bool, maxNull, minNull []float64, prec tensor.Precision) ([]float64, error) {
	if len(maxNull) == 0 {
		return nil, ErrEmptyNull
	}

	if len(maxNull) != len(minNull) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrNullMismatch, len(maxNull), len(minNull))
	}

	n := float64(len(maxNull))
	out := make([]float64, len(observed))

	for i, x := range observed {
		var count int

		if twoSided {
			ax := math.Abs(x)

			for k := range maxNull {
				if maxNull[k] >= ax || minNull[k] <= -ax {
					count++
				}
			}
		} else {
			for k := range maxNull {
				if maxNull[k] >= x {
					count++
				}
			}
		}

		out[i] = prec.Round(float64(count) / n)
	}

	return out, nil
}
