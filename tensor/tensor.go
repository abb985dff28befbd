package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDimension indicates a tensor dimension smaller than one.
	ErrEmptyDimension = errors.New("tensor: dimensions must be at least 1")

	// ErrRaggedInput indicates nested input slices with inconsistent shape.
	ErrRaggedInput = errors.New("tensor: input slices must be rectangular")
)

// Tensor is a voxel x time x subject block of time-series data.
//
// Storage is subject-major: all of a subject's voxel series are adjacent,
// and each (voxel, subject) series occupies a contiguous run of the
// backing slice. Index bounds are checked by the underlying slice
// accesses; callers passing out-of-range indices will panic.
type Tensor struct {
	voxels     int
	timepoints int
	subjects   int
	data       []float64
}

// New allocates a zero-filled tensor with the given dimensions.
func New(voxels, timepoints, subjects int) (*Tensor, error) {
	if voxels < 1 || timepoints < 1 || subjects < 1 {
		return nil, fmt.Errorf("%w: got %d x %d x %d", ErrEmptyDimension, voxels, timepoints, subjects)
	}

	return &Tensor{
		voxels:     voxels,
		timepoints: timepoints,
		subjects:   subjects,
		data:       make([]float64, voxels*timepoints*subjects),
	}, nil
}

// FromSlices builds a tensor from nested slices indexed [voxel][time][subject].
// The input must be rectangular: every voxel has the same number of
// timepoints and every timepoint the same number of subjects.
func FromSlices(d [][][]float64) (*Tensor, error) {
	if len(d) == 0 || len(d[0]) == 0 || len(d[0][0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrEmptyDimension)
	}

	voxels := len(d)
	timepoints := len(d[0])
	subjects := len(d[0][0])

	out, err := New(voxels, timepoints, subjects)
	if err != nil {
		return nil, err
	}

	for v := range d {
		if len(d[v]) != timepoints {
			return nil, fmt.Errorf("%w: voxel %d has %d timepoints, want %d", ErrRaggedInput, v, len(d[v]), timepoints)
		}

		for t := range d[v] {
			if len(d[v][t]) != subjects {
				return nil, fmt.Errorf("%w: voxel %d timepoint %d has %d subjects, want %d", ErrRaggedInput, v, t, len(d[v][t]), subjects)
			}

			for s := range d[v][t] {
				out.Set(v, t, s, d[v][t][s])
			}
		}
	}

	return out, nil
}

// Dims returns the voxel, timepoint, and subject counts.
func (t *Tensor) Dims() (voxels, timepoints, subjects int) {
	return t.voxels, t.timepoints, t.subjects
}

func (t *Tensor) index(v, tm, s int) int {
	return (s*t.voxels+v)*t.timepoints + tm
}

// At returns the sample at (voxel, timepoint, subject).
func (t *Tensor) At(v, tm, s int) float64 {
	return t.data[t.index(v, tm, s)]
}

// Set stores a sample at (voxel, timepoint, subject).
func (t *Tensor) Set(v, tm, s int, x float64) {
	t.data[t.index(v, tm, s)] = x
}

// Series returns the time series of one (voxel, subject) pair as a view
// into the tensor's storage. Mutating the returned slice mutates the
// tensor.
func (t *Tensor) Series(v, s int) []float64 {
	start := t.index(v, 0, s)
	return t.data[start : start+t.timepoints : start+t.timepoints]
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := &Tensor{
		voxels:     t.voxels,
		timepoints: t.timepoints,
		subjects:   t.subjects,
		data:       make([]float64, len(t.data)),
	}
	copy(out.data, t.data)

	return out
}
