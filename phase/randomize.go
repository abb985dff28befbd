package phase

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-isc/tensor"
)

var (
	// ErrNilTensor indicates a nil input tensor.
	ErrNilTensor = errors.New("phase: tensor must not be nil")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("phase: random source must not be nil")
)

// Randomize returns a new tensor whose (voxel, subject) series have the
// same power spectrum as d but independently randomized Fourier phases.
// The input tensor is not modified.
//
// Phase angles are drawn from rng in subject-major order (subject, then
// voxel, then ascending frequency), so a seeded source reproduces the
// same surrogate bit for bit. Every stored sample is quantized by prec.
//
// Power-of-two time lengths use an algo-fft plan; other lengths go
// through gonum's FFTPACK port, whose real transform carries the
// conjugate symmetry implicitly. Both paths consume rng identically.
func Randomize(d *tensor.Tensor, rng *rand.Rand, prec tensor.Precision) (*tensor.Tensor, error) {
	if d == nil {
		return nil, ErrNilTensor
	}

	if rng == nil {
		return nil, ErrNilRand
	}

	voxels, timepoints, subjects := d.Dims()

	out, err := tensor.New(voxels, timepoints, subjects)
	if err != nil {
		return nil, err
	}

	var series func(dst, src []float64) error

	if isPowerOfTwo(timepoints) {
		plan, err := algofft.NewPlan64(timepoints)
		if err != nil {
			return nil, fmt.Errorf("phase: NewPlan64: %w", err)
		}

		buf := make([]complex128, timepoints)
		spec := make([]complex128, timepoints)
		series = func(dst, src []float64) error { return randomizeComplex(dst, src, rng, plan, buf, spec) }
	} else {
		fft := fourier.NewFFT(timepoints)
		coeff := make([]complex128, timepoints/2+1)
		seq := make([]float64, timepoints)
		series = func(dst, src []float64) error { return randomizeFFTPACK(dst, src, rng, fft, coeff, seq) }
	}

	for s := 0; s < subjects; s++ {
		for v := 0; v < voxels; v++ {
			if err := series(out.Series(v, s), d.Series(v, s)); err != nil {
				return nil, err
			}

			prec.RoundSlice(out.Series(v, s))
		}
	}

	return out, nil
}

// positiveBins returns the number of rotatable positive-frequency bins
// for a series of length n: everything strictly between DC and the
// Nyquist/mirror boundary.
func positiveBins(n int) int {
	return (n - 1) / 2
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// randomizeComplex rotates phases on the full complex spectrum produced
// by an algo-fft plan. Bin k and its mirror n-k receive conjugate
// rotations so the inverse transform stays real.
func randomizeComplex(dst, src []float64, rng *rand.Rand, plan *algofft.Plan[complex128], buf, spec []complex128) error {
	n := len(src)
	for i, x := range src {
		buf[i] = complex(x, 0)
	}

	if err := plan.Forward(spec, buf); err != nil {
		return fmt.Errorf("phase: forward FFT: %w", err)
	}

	for k := 1; k <= positiveBins(n); k++ {
		rot := cmplx.Exp(complex(0, rng.Float64()*2*math.Pi))
		spec[k] *= rot
		spec[n-k] *= cmplx.Conj(rot)
	}

	if err := plan.Inverse(buf, spec); err != nil {
		return fmt.Errorf("phase: inverse FFT: %w", err)
	}

	for i := range dst {
		dst[i] = real(buf[i])
	}

	return nil
}

// randomizeFFTPACK rotates phases on a half-complex real spectrum. Only
// the positive bins exist, so rotating them is sufficient; the inverse
// real transform reconstructs the conjugate half.
func randomizeFFTPACK(dst, src []float64, rng *rand.Rand, fft *fourier.FFT, coeff []complex128, seq []float64) error {
	n := len(src)
	fft.Coefficients(coeff, src)

	for k := 1; k <= positiveBins(n); k++ {
		coeff[k] *= cmplx.Exp(complex(0, rng.Float64()*2*math.Pi))
	}

	fft.Sequence(seq, coeff)

	// The FFTPACK round trip scales by the sequence length.
	scale := 1 / float64(n)
	for i := range dst {
		dst[i] = seq[i] * scale
	}

	return nil
}
