package interval

import "math"

// HUGE stands in for +infinity in this domain: the largest finite
// magnitude a bound can take. It is a quarter of math.MaxFloat64, so
// adding two HUGE legs still gives a finite value. Using a large finite value instead of
// math.Inf keeps sums of two "unbounded" legs finite during shortest-path
// relaxation (Inf + Inf - Inf == NaN would otherwise poison the matrix).
const HUGE = math.MaxFloat64 / 4

// Interval is a closed range [Lo, Hi] over finite doubles.
type Interval struct {
	lo, hi float64
}

// New constructs an Interval without validating lo <= hi. Callers that
// need to reject an inverted interval should call IsValid.
func New(lo, hi float64) Interval {
	return Interval{lo: lo, hi: hi}
}

// FromSlice builds an Interval from a two-element [lo, hi] slice.
func FromSlice(pair []float64) Interval {
	if len(pair) != 2 {
		return Interval{lo: -HUGE, hi: HUGE}
	}
	return Interval{lo: pair[0], hi: pair[1]}
}

// Unbounded returns [-HUGE, HUGE], the interval with no known constraint.
func Unbounded() Interval {
	return Interval{lo: -HUGE, hi: HUGE}
}

// Lower returns the lower bound.
func (iv Interval) Lower() float64 { return iv.lo }

// Upper returns the upper bound.
func (iv Interval) Upper() float64 { return iv.hi }

// At returns the bound at position i: 0 for lower, 1 for upper. Any
// other index panics, matching Go slice-index semantics for a
// fixed-width pair type.
func (iv Interval) At(i int) float64 {
	switch i {
	case 0:
		return iv.lo
	case 1:
		return iv.hi
	default:
		panic("interval: index out of range")
	}
}

// Contains reports whether x lies within [lo, hi], inclusive.
func (iv Interval) Contains(x float64) bool {
	return iv.lo <= x && x <= iv.hi
}

// IsValid reports whether lo <= hi.
func (iv Interval) IsValid() bool {
	return iv.lo <= iv.hi
}

// Converged reports whether the interval has narrowed to within 0.001 of
// a point, the threshold the reference implementation uses to decide
// whether repeated propagation has settled.
func (iv Interval) Converged() bool {
	return math.Abs(iv.lo-iv.hi) < 0.001
}

// Union tightens iv against other, returning the intersection of the two
// admissible ranges: [max(lo), min(hi)]. The name follows the operator
// this type exposes elsewhere in the domain, but the operation performed
// is tightening, not a set union — the result is never wider than either
// input.
func (iv Interval) Union(other Interval) Interval {
	return Interval{
		lo: math.Max(iv.lo, other.lo),
		hi: math.Min(iv.hi, other.hi),
	}
}

// Add returns the interval sum: [lo1+lo2, hi1+hi2]. Used to project a
// committed event's window forward across a duration edge.
func (iv Interval) Add(other Interval) Interval {
	return Interval{lo: iv.lo + other.lo, hi: iv.hi + other.hi}
}

// Negate returns [-hi, -lo], the interval for the reversed direction of
// a delay constraint.
func (iv Interval) Negate() Interval {
	return Interval{lo: -iv.hi, hi: -iv.lo}
}

// ToJSON returns the [lo, hi] pair form used on the wire and in golden
// snapshots.
func (iv Interval) ToJSON() [2]float64 {
	return [2]float64{iv.lo, iv.hi}
}

// MarshalJSON implements json.Marshaler, encoding as a two-element array.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return marshalPair(iv.lo, iv.hi)
}

// UnmarshalJSON implements json.Unmarshaler, decoding a two-element array.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	lo, hi, err := unmarshalPair(data)
	if err != nil {
		return err
	}
	iv.lo, iv.hi = lo, hi
	return nil
}

// String renders the interval as "[lo, hi]" for debugging and CLI text
// output.
func (iv Interval) String() string {
	return formatPair(iv.lo, iv.hi)
}
