package intersubject

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-isc/tensor"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := newConfig(nil)
	if err != nil {
		t.Fatalf("newConfig: %v", err)
	}

	if !cfg.collapse {
		t.Fatal("collapse should default to true")
	}

	if cfg.returnP {
		t.Fatal("returnP should default to false")
	}

	if cfg.numPerm != 1000 {
		t.Fatalf("numPerm = %d, want 1000", cfg.numPerm)
	}

	if cfg.twoSided {
		t.Fatal("twoSided should default to false")
	}

	if cfg.precision != tensor.Float64 {
		t.Fatalf("precision = %v, want float64", cfg.precision)
	}

	if cfg.rng == nil {
		t.Fatal("rng not constructed from default seed")
	}
}

func TestOptionsApply(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cfg, err := newConfig([]Option{
		WithCollapseSubjects(false),
		WithPValues(true),
		WithPermutations(50),
		WithTwoSided(true),
		WithPrecision(tensor.Float16),
		WithRand(rng),
		nil, // nil options are ignored
	})
	if err != nil {
		t.Fatalf("newConfig: %v", err)
	}

	if cfg.collapse || !cfg.returnP || !cfg.twoSided {
		t.Fatalf("flags = %+v", cfg)
	}

	if cfg.numPerm != 50 {
		t.Fatalf("numPerm = %d, want 50", cfg.numPerm)
	}

	if cfg.precision != tensor.Float16 {
		t.Fatalf("precision = %v, want float16", cfg.precision)
	}

	if cfg.rng != rng {
		t.Fatal("supplied generator not used")
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
		want error
	}{
		{"negative permutations", []Option{WithPermutations(-5)}, ErrNegativePermutations},
		{"invalid precision", []Option{WithPrecision(tensor.Precision(9))}, ErrInvalidPrecision},
		{"p without permutations", []Option{WithPValues(true), WithPermutations(0)}, ErrNoPermutations},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := newConfig(tc.opts); !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}
