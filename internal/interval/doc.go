// Package interval implements closed numeric intervals [lo, hi] over
// finite doubles, the unit the STN engine uses for durations, admissible
// delays, and derived windows.
//
// "Infinity" in this domain is HUGE, a quarter of math.MaxFloat64, not
// IEEE-754 infinity — that keeps sums of two "unbounded" legs finite
// and comparable during shortest-path relaxation.
package interval
