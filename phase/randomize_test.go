package phase

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-isc/internal/testutil"
	"github.com/cwbudde/algo-isc/tensor"
)

// dftMagnitudes computes |X_k| for k = 0..n-1 by direct evaluation.
// O(n^2), test-only.
func dftMagnitudes(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)

	for k := 0; k < n; k++ {
		var re, im float64

		for t, v := range x {
			angle := -2 * math.Pi * float64(k) * float64(t) / float64(n)
			re += v * math.Cos(angle)
			im += v * math.Sin(angle)
		}

		out[k] = math.Hypot(re, im)
	}

	return out
}

func mean(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v
	}

	return sum / float64(len(x))
}

func noiseTensor(t *testing.T, voxels, timepoints, subjects int, seed int64) *tensor.Tensor {
	t.Helper()

	d, err := tensor.New(voxels, timepoints, subjects)
	if err != nil {
		t.Fatalf("tensor.New: %v", err)
	}

	noise := testutil.DeterministicNoise(seed, 1.0, voxels*timepoints*subjects)
	i := 0

	for v := 0; v < voxels; v++ {
		for tm := 0; tm < timepoints; tm++ {
			for s := 0; s < subjects; s++ {
				d.Set(v, tm, s, noise[i])
				i++
			}
		}
	}

	return d
}

func TestRandomizePreservesPowerSpectrum(t *testing.T) {
	// Cover the algo-fft path (power of two) and the FFTPACK path
	// (odd and even composite lengths).
	for _, timepoints := range []int{16, 20, 21} {
		d := noiseTensor(t, 3, timepoints, 2, 7)

		rng := rand.New(rand.NewSource(1))

		out, err := Randomize(d, rng, tensor.Float64)
		if err != nil {
			t.Fatalf("Randomize: %v", err)
		}

		for s := 0; s < 2; s++ {
			for v := 0; v < 3; v++ {
				want := dftMagnitudes(d.Series(v, s))
				got := dftMagnitudes(out.Series(v, s))

				testutil.RequireSliceNearlyEqual(t, got, want, 1e-8)
			}
		}
	}
}

func TestRandomizePreservesMean(t *testing.T) {
	d := noiseTensor(t, 2, 50, 3, 8)

	rng := rand.New(rand.NewSource(2))

	out, err := Randomize(d, rng, tensor.Float64)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}

	// The DC bin is never rotated, so the series mean survives.
	for s := 0; s < 3; s++ {
		for v := 0; v < 2; v++ {
			got := mean(out.Series(v, s))
			want := mean(d.Series(v, s))

			if math.Abs(got-want) > 1e-10 {
				t.Fatalf("voxel %d subject %d: mean = %v, want %v", v, s, got, want)
			}
		}
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	d := noiseTensor(t, 2, 50, 2, 9)

	a, err := Randomize(d, rand.New(rand.NewSource(3)), tensor.Float64)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}

	b, err := Randomize(d, rand.New(rand.NewSource(3)), tensor.Float64)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}

	for s := 0; s < 2; s++ {
		for v := 0; v < 2; v++ {
			as := a.Series(v, s)
			bs := b.Series(v, s)

			for i := range as {
				if as[i] != bs[i] {
					t.Fatalf("seeded outputs differ at voxel %d subject %d index %d", v, s, i)
				}
			}
		}
	}
}

func TestRandomizeChangesSignal(t *testing.T) {
	d := noiseTensor(t, 1, 64, 1, 10)

	out, err := Randomize(d, rand.New(rand.NewSource(4)), tensor.Float64)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}

	orig := d.Series(0, 0)
	got := out.Series(0, 0)

	diff := 0.0
	for i := range got {
		diff += math.Abs(got[i] - orig[i])
	}

	if diff < 1e-6 {
		t.Fatalf("randomized series equals input (total diff %v)", diff)
	}
}

func TestRandomizeDoesNotMutateInput(t *testing.T) {
	d := noiseTensor(t, 2, 20, 2, 11)
	orig := d.Clone()

	if _, err := Randomize(d, rand.New(rand.NewSource(5)), tensor.Float64); err != nil {
		t.Fatalf("Randomize: %v", err)
	}

	for s := 0; s < 2; s++ {
		for v := 0; v < 2; v++ {
			ds := d.Series(v, s)
			os := orig.Series(v, s)

			for i := range ds {
				if ds[i] != os[i] {
					t.Fatalf("input mutated at voxel %d subject %d index %d", v, s, i)
				}
			}
		}
	}
}

func TestRandomizeAppliesPrecision(t *testing.T) {
	d := noiseTensor(t, 1, 50, 1, 12)

	out, err := Randomize(d, rand.New(rand.NewSource(6)), tensor.Float32)
	if err != nil {
		t.Fatalf("Randomize: %v", err)
	}

	for i, x := range out.Series(0, 0) {
		if x != float64(float32(x)) {
			t.Fatalf("index %d: %v is not float32-quantized", i, x)
		}
	}
}

func TestRandomizeErrors(t *testing.T) {
	d := noiseTensor(t, 1, 8, 1, 13)

	if _, err := Randomize(nil, rand.New(rand.NewSource(1)), tensor.Float64); !errors.Is(err, ErrNilTensor) {
		t.Fatalf("nil tensor error = %v, want ErrNilTensor", err)
	}

	if _, err := Randomize(d, nil, tensor.Float64); !errors.Is(err, ErrNilRand) {
		t.Fatalf("nil rng error = %v, want ErrNilRand", err)
	}
}
