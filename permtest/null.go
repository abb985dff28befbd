package permtest

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

var (
	// ErrEmptySummary indicates a summary with no subjects or no
	// permutations.
	ErrEmptySummary = errors.New("permtest: summary needs at least one subject and one permutation")
)

// NullSummary accumulates the running maximum and minimum statistic per
// (left-out subject, permutation) pair. It is a streaming reduction:
// each observed value updates two scalars and is then discarded.
//
// A NaN observation poisons the extremes of its (subject, permutation)
// cell, matching the NaN propagation of full-array reductions.
type NullSummary struct {
	subjects int
	perms    int
	maxNull  []float64
	minNull  []float64
}

// NewNullSummary allocates a summary for the given subject and
// permutation counts.
func NewNullSummary(subjects, perms int) (*NullSummary, error) {
	if subjects < 1 || perms < 1 {
		return nil, fmt.Errorf("%w: got %d subjects, %d permutations", ErrEmptySummary, subjects, perms)
	}

	n := subjects * perms
	maxNull := make([]float64, n)
	minNull := make([]float64, n)

	for i := range maxNull {
		maxNull[i] = math.Inf(-1)
		minNull[i] = math.Inf(1)
	}

	return &NullSummary{
		subjects: subjects,
		perms:    perms,
		maxNull:  maxNull,
		minNull:  minNull,
	}, nil
}

// Subjects returns the subject count.
func (n *NullSummary) Subjects() int { return n.subjects }

// Perms returns the permutation count.
func (n *NullSummary) Perms() int { return n.perms }

// Observe folds one statistic value into the extremes of the given
// (subject, permutation) cell.
func (n *NullSummary) Observe(subject, perm int, value float64) {
	i := subject*n.perms + perm

	if math.IsNaN(value) {
		n.maxNull[i] = math.NaN()
		n.minNull[i] = math.NaN()

		return
	}

	// Comparisons with a NaN extreme are false, so a poisoned cell
	// stays poisoned.
	if value > n.maxNull[i] {
		n.maxNull[i] = value
	}

	if value < n.minNull[i] {
		n.minNull[i] = value
	}
}

// Reduce collapses the subject axis, returning per-permutation global
// extremes: maxNull[p] is the largest maximum any subject reached in
// permutation p, minNull[p] the smallest minimum. A NaN in any
// subject's cell propagates to that permutation's extremes.
func (n *NullSummary) Reduce() (maxNull, minNull []float64, err error) {
	maxNull = make([]float64, n.perms)
	minNull = make([]float64, n.perms)

	maxCol := make([]float64, n.subjects)
	minCol := make([]float64, n.subjects)

	for p := 0; p < n.perms; p++ {
		poisoned := false

		for s := 0; s < n.subjects; s++ {
			maxCol[s] = n.maxNull[s*n.perms+p]
			minCol[s] = n.minNull[s*n.perms+p]

			if math.IsNaN(maxCol[s]) || math.IsNaN(minCol[s]) {
				poisoned = true
			}
		}

		if poisoned {
			maxNull[p] = math.NaN()
			minNull[p] = math.NaN()

			continue
		}

		if maxNull[p], err = stats.Max(maxCol); err != nil {
			return nil, nil, fmt.Errorf("permtest: reducing max null: %w", err)
		}

		if minNull[p], err = stats.Min(minCol); err != nil {
			return nil, nil, fmt.Errorf("permtest: reducing min null: %w", err)
		}
	}

	return maxNull, minNull, nil
}
