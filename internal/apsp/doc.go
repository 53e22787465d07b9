// Package apsp computes all-pairs shortest paths over a small
// integer-keyed weighted digraph using Floyd-Warshall, detecting
// negative cycles (STN infeasibility) as it goes.
//
// Unlike the textbook algorithm's usual +Inf sentinel for "no edge yet",
// this package uses interval.HUGE so that summing two "unknown" legs
// during relaxation stays a comparable finite number instead of
// producing NaN.
package apsp
