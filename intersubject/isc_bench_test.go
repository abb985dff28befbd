package intersubject

import (
	"testing"

	"github.com/cwbudde/algo-isc/internal/testutil"
)

func BenchmarkISC(b *testing.B) {
	d := testutil.SharedSignalTensor(64, 128, 8, 0.5, 1)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := ISC(d); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkISCWithPermutations(b *testing.B) {
	d := testutil.SharedSignalTensor(16, 64, 4, 0.5, 2)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := ISC(d, WithPValues(true), WithPermutations(10)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkISFC(b *testing.B) {
	d := testutil.SharedSignalTensor(64, 128, 8, 0.5, 3)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := ISFC(d); err != nil {
			b.Fatal(err)
		}
	}
}
