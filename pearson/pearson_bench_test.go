package pearson

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-isc/internal/testutil"
)

func BenchmarkCorrelate(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1.0, 256)
	y := testutil.DeterministicNoise(2, 1.0, 256)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Correlate(x, y)
	}
}

func BenchmarkCorrelateRows(b *testing.B) {
	const (
		rows = 128
		n    = 256
	)

	x := mat.NewDense(rows, n, testutil.DeterministicNoise(3, 1.0, rows*n))
	y := mat.NewDense(rows, n, testutil.DeterministicNoise(4, 1.0, rows*n))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := CorrelateRows(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
