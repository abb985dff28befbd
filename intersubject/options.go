package intersubject

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-isc/tensor"
)

// config holds analysis settings. Defaults mirror the reference
// implementation: collapse across subjects, no p-values, 1000
// permutations, one-sided test, seed 0, full float64 precision.
type config struct {
	collapse  bool
	returnP   bool
	numPerm   int
	twoSided  bool
	seed      int64
	rng       *rand.Rand
	precision tensor.Precision
}

// Option mutates an analysis config.
type Option func(*config)

func defaultConfig() config {
	return config{
		collapse:  true,
		numPerm:   1000,
		precision: tensor.Float64,
	}
}

// WithCollapseSubjects controls whether results are averaged across the
// subject axis before returning. Enabled by default.
func WithCollapseSubjects(collapse bool) Option {
	return func(cfg *config) {
		cfg.collapse = collapse
	}
}

// WithPValues controls whether a phase-randomization null is built and
// p-values returned. Disabled by default.
func WithPValues(returnP bool) Option {
	return func(cfg *config) {
		cfg.returnP = returnP
	}
}

// WithPermutations sets the number of null samples used for p-values.
func WithPermutations(numPerm int) Option {
	return func(cfg *config) {
		cfg.numPerm = numPerm
	}
}

// WithTwoSided selects a two-sided test: extreme negative statistics
// also register small p-values. One-sided by default.
func WithTwoSided(twoSided bool) Option {
	return func(cfg *config) {
		cfg.twoSided = twoSided
	}
}

// WithSeed seeds the phase-randomization generator. Ignored when a
// generator instance is supplied via WithRand.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithRand supplies a random generator instance, taking precedence over
// WithSeed. The generator is consumed by the permutation loop.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		cfg.rng = rng
	}
}

// WithPrecision sets the numeric width applied to every array the
// analysis allocates. Float64 by default.
func WithPrecision(p tensor.Precision) Option {
	return func(cfg *config) {
		cfg.precision = p
	}
}

// newConfig applies options and validates the resulting configuration
// before any allocation or computation happens.
func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.numPerm < 0 {
		return config{}, fmt.Errorf("%w: got %d", ErrNegativePermutations, cfg.numPerm)
	}

	if !cfg.precision.Valid() {
		return config{}, fmt.Errorf("%w: %d", ErrInvalidPrecision, int(cfg.precision))
	}

	if cfg.returnP && cfg.numPerm == 0 {
		return config{}, ErrNoPermutations
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(cfg.seed))
	}

	return cfg, nil
}
