// Package intersubject computes intersubject correlation (ISC) and
// intersubject functional correlation (ISFC) over voxel-by-time-by-
// subject data, with optional nonparametric significance testing via
// phase randomization.
//
// ISC measures, per voxel, how well one subject's timecourse tracks the
// average of all other subjects' timecourses (leave-one-out). ISFC
// generalizes this to a voxel-by-voxel matrix: each voxel of the
// left-out subject against every voxel of the group average.
//
// Significance testing builds a null distribution by repeatedly phase-
// randomizing the data and recording only the most extreme statistic of
// each round, a bounded-memory summary that is more conservative than a
// per-voxel null. The randomization is cumulative: each null round
// randomizes the previous round's tensor rather than resampling the
// original, reproducing the reference implementation's fold. This is a
// deliberate behavioral choice, not an optimization.
package intersubject
