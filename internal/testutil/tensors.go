package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-isc/tensor"
)

func mustTensor(voxels, timepoints, subjects int) *tensor.Tensor {
	tn, err := tensor.New(voxels, timepoints, subjects)
	if err != nil {
		panic(err)
	}

	return tn
}

// SharedSignalTensor builds a dataset in which every subject records the
// same per-voxel sine (one extra cycle per voxel index) plus independent
// seeded noise. With small noise amplitudes, intersubject correlations
// are strongly positive at every voxel.
func SharedSignalTensor(voxels, timepoints, subjects int, noiseAmp float64, seed int64) *tensor.Tensor {
	d := mustTensor(voxels, timepoints, subjects)
	rng := rand.New(rand.NewSource(seed))

	for v := 0; v < voxels; v++ {
		signal := DeterministicSine(float64(v+1), 1.0, timepoints)

		for s := 0; s < subjects; s++ {
			series := d.Series(v, s)
			for t := range series {
				series[t] = signal[t] + (rng.Float64()*2-1)*noiseAmp
			}
		}
	}

	return d
}

// IdenticalSubjectsTensor builds a dataset in which every subject's data
// is the same seeded noise matrix, so leave-one-out correlations are
// exactly one at every voxel.
func IdenticalSubjectsTensor(voxels, timepoints, subjects int, seed int64) *tensor.Tensor {
	d := mustTensor(voxels, timepoints, subjects)

	for v := 0; v < voxels; v++ {
		signal := DeterministicNoise(seed+int64(v), 1.0, timepoints)

		for s := 0; s < subjects; s++ {
			copy(d.Series(v, s), signal)
		}
	}

	return d
}

// NegateSeries flips the sign of one (voxel, subject) series in place,
// turning that subject into an anticorrelated outlier at that voxel.
func NegateSeries(d *tensor.Tensor, voxel, subject int) {
	series := d.Series(voxel, subject)
	for i := range series {
		series[i] = -series[i]
	}
}
