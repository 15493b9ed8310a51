// Package search animates binary and interpolation search.
//
// Both runners sort a private copy of the input ascending, publish it, pick
// a target (a uniformly random existing value unless WithTarget is given)
// and narrow [low, high] one probe at a time. Every probe repaints the
// array (discarded outside the range, comparing at the probe) and publishes
// it, so the renderer sees the range shrink. A hit is painted found.
//
// A miss is a normal outcome: Result.Found is false and Index is -1.
// Interpolation search guards low == high and equal end values before
// evaluating its formula, so NaN and Inf never reach a snapshot.
package search
