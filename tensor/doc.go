// Package tensor provides the voxel-by-time-by-subject signal container
// used by the intersubject analysis engines, along with the numeric
// precision policy applied to every derived array.
//
// The tensor stores one time series per (voxel, subject) pair in a single
// flat allocation, laid out so that each series is a contiguous slice.
package tensor
