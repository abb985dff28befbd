// Package permtest provides the bounded-memory null summary and p-value
// estimation used for phase-randomization significance testing.
//
// Instead of retaining the full per-voxel null distribution, only the
// most extreme positive and negative statistic of each permutation round
// is kept per left-out subject. Testing an observed statistic against
// these global extremes is more conservative than a per-voxel null, and
// costs O(permutations) memory instead of O(permutations x voxels).
package permtest
