// Package classify decides whether a single line of integers is safe.
//
// A line is safe when its values are strictly monotonic (entirely increasing
// or entirely decreasing) and every adjacent difference lies in [1, 3].
// Lines with zero or one value are vacuously safe.
//
// The package is pure: every function is a deterministic function of its
// input and no state is carried between calls. Parse failures are reported
// as *FormatError so callers can decide how to fold them into a verdict;
// the stream package treats them as "not safe".
//
// Evaluation order per adjacent pair:
//  1. difference range check ([MinDelta], [MaxDelta])
//  2. direction check against the direction fixed by the first pair
//
// The range check runs first, so a pair of equal values is always rejected
// with [ReasonDelta] regardless of the direction established so far.
package classify
