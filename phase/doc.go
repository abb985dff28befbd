// Package phase implements phase randomization for surrogate null data.
//
// Randomization rotates the Fourier phase of each (voxel, subject) time
// series by independent uniform angles while leaving the magnitude
// spectrum untouched, so the surrogate preserves the power spectrum and
// autocorrelation of the original signal. Conjugate-symmetric rotation of
// the negative frequencies keeps the inverse transform real; the DC and
// Nyquist bins are never rotated.
package phase
