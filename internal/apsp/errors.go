package apsp

import (
	"errors"
	"fmt"
)

// NegativeCycle reports that the shortest-path relaxation drove a
// self-distance below zero, meaning the underlying constraint network is
// infeasible: some cycle of admissible delays sums to a negative total.
type NegativeCycle struct {
	// At is the node whose self-distance went negative.
	At int64

	// Via is the intermediate node whose two legs produced the
	// violation: D(At, Via) + D(Via, At) < 0.
	Via int64

	// LegOut and LegIn are the two signed weights that summed negative.
	LegOut float64
	LegIn  float64
}

// Error implements the error interface.
func (e *NegativeCycle) Error() string {
	return fmt.Sprintf("negative cycle at node %d via %d: %g + %g < 0", e.At, e.Via, e.LegOut, e.LegIn)
}

// IsNegativeCycle reports whether err is (or wraps) a *NegativeCycle.
func IsNegativeCycle(err error) bool {
	var nc *NegativeCycle
	return errors.As(err, &nc)
}
