package intersubject

import "errors"

var (
	// ErrNilTensor indicates a nil input tensor.
	ErrNilTensor = errors.New("intersubject: tensor must not be nil")

	// ErrTooFewSubjects indicates fewer than two subjects; leave-one-out
	// needs at least one subject remaining in the group.
	ErrTooFewSubjects = errors.New("intersubject: at least 2 subjects required")

	// ErrNegativePermutations indicates a negative permutation count.
	ErrNegativePermutations = errors.New("intersubject: permutation count must not be negative")

	// ErrNoPermutations indicates p-values were requested with zero
	// permutations; an empty null admits no p-value.
	ErrNoPermutations = errors.New("intersubject: p-values require at least 1 permutation")

	// ErrInvalidPrecision indicates an unsupported precision setting.
	ErrInvalidPrecision = errors.New("intersubject: unsupported precision")
)
