// Package similarity provides the scores that compare the two input columns.
package similarity

import "errors"

// ErrLengthMismatch is returned when two columns that must be compared pairwise differ in length.
var ErrLengthMismatch = errors.New("columns differ in length")

// DistanceFunc computes a distance between two equal-length integer columns.
// Lower values indicate closer columns.
type DistanceFunc func(a, b []int) (int, error)
